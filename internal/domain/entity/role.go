// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an admin account can have.
type Role string

const (
	// RoleAdmin can manage accounts and delete content.
	RoleAdmin Role = "admin"
	// RoleEditor can create, edit and publish content.
	RoleEditor Role = "editor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor:
		return true
	default:
		return false
	}
}

// Permissions lists what the role may do in the admin area.
func (r Role) Permissions() []string {
	switch r {
	case RoleAdmin:
		return []string{"manage_users", "manage_content", "delete_content", "manage_media", "maintenance"}
	case RoleEditor:
		return []string{"manage_content", "manage_media"}
	default:
		return nil
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
