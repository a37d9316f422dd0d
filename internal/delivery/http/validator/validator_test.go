package validator

import (
	"testing"

	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerRequest struct {
	Username string   `json:"username" validate:"required,min=3"`
	Email    string   `json:"email" validate:"required,email"`
	Role     string   `json:"role" validate:"required,oneof=admin editor"`
	Budget   *float64 `json:"budget" validate:"omitempty,gte=0"`
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()
	negative := -1.5

	err := v.Validate(registerRequest{Username: "ab", Email: "nope", Role: "root", Budget: &negative})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	byField := map[string]string{}
	for _, f := range validationErr.Fields {
		byField[f.Field] = f.Message
	}

	assert.Equal(t, "must be at least 3 characters", byField["username"])
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "must be one of: admin, editor", byField["role"])
	assert.Equal(t, "must be greater than or equal to 0", byField["budget"])
}

func TestValidator_RequiredMessageNamesField(t *testing.T) {
	err := New().Validate(registerRequest{Email: "a@b.co", Role: "admin"})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Fields, 1)
	assert.Equal(t, domainerrors.FieldError{Field: "username", Message: "username is required"}, validationErr.Fields[0])
}

func TestValidator_Passes(t *testing.T) {
	budget := 1200.0

	assert.NoError(t, New().Validate(registerRequest{Username: "alice", Email: "a@b.co", Role: "editor", Budget: &budget}))
	assert.NoError(t, New().Validate(&registerRequest{Username: "alice", Email: "a@b.co", Role: "admin"}))
}
