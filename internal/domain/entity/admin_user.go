// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is an account allowed into the back office.
// Accounts are never hard-deleted; Active is cleared instead.
type AdminUser struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the account.
	Username     string     // Unique, case-sensitive login name.
	Email        string     // Unique contact email.
	FullName     string     // Display name.
	PasswordHash string     // Bcrypt hash. Never serialised.
	Role         Role       // admin or editor.
	Active       bool       // Only active accounts may authenticate.
	LastLogin    *time.Time // Set on every successful login.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanAuthenticate reports whether the account may log in or keep using a token.
func (u *AdminUser) CanAuthenticate() bool {
	return u != nil && u.Active
}

// Identity returns the principal attached to authenticated requests.
func (u *AdminUser) Identity() Identity {
	return Identity{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// Identity is the resolved principal of an authenticated request.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     Role
	// TokenID and ExpiresAt identify the presented token so it can be revoked.
	TokenID   string
	ExpiresAt time.Time
}

// HasRole reports whether the identity holds one of the given roles.
func (i Identity) HasRole(roles ...Role) bool {
	return Roles(roles).Contains(i.Role)
}
