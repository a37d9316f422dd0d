package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleEditor.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRole_Permissions(t *testing.T) {
	assert.Contains(t, RoleAdmin.Permissions(), "manage_users")
	assert.NotContains(t, RoleEditor.Permissions(), "manage_users")
	assert.Nil(t, Role("unknown").Permissions())
}

func TestIdentity_HasRole(t *testing.T) {
	editor := Identity{Role: RoleEditor}

	assert.True(t, editor.HasRole(RoleAdmin, RoleEditor))
	assert.False(t, editor.HasRole(RoleAdmin))
}

func TestAdminUser_CanAuthenticate(t *testing.T) {
	var missing *AdminUser

	assert.False(t, missing.CanAuthenticate())
	assert.False(t, (&AdminUser{Active: false}).CanAuthenticate())
	assert.True(t, (&AdminUser{Active: true}).CanAuthenticate())
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		input string
		want  Lang
	}{
		{input: "en", want: LangEN},
		{input: "EN", want: LangEN},
		{input: "fr", want: LangFR},
		{input: "", want: LangFR},
		{input: "de", want: LangFR},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLang(tt.input))
		})
	}

	assert.Equal(t, "hello", LangEN.Pick("bonjour", "hello"))
	assert.Equal(t, "bonjour", LangFR.Pick("bonjour", "hello"))
}

func TestNews_SetPublished(t *testing.T) {
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	n := &News{}
	n.SetPublished(true, first)
	assert.True(t, n.Published)
	assert.Equal(t, first, *n.PublishedAt)

	// Re-publishing keeps the original timestamp.
	n.SetPublished(true, later)
	assert.Equal(t, first, *n.PublishedAt)

	n.SetPublished(false, later)
	assert.False(t, n.Published)
	assert.Nil(t, n.PublishedAt)
}

func TestProjectStatus_IsValid(t *testing.T) {
	assert.True(t, ProjectStatusActive.IsValid())
	assert.True(t, ProjectStatusCompleted.IsValid())
	assert.True(t, ProjectStatusPlanned.IsValid())
	assert.False(t, ProjectStatus("archived").IsValid())
}
