package auth

import (
	"strings"
	"testing"

	"agadev/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost)
	password := "correct horse battery"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_InvalidHash(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost)

	assert.False(t, hasher.Check("password", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("password", ""))
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}

	hasher := NewBcryptHasher(cfg)
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)

	// Below the bcrypt minimum is raised to it.
	assert.Equal(t, bcrypt.MinCost, newBcryptHasher(1).cost)
}
