// Package model holds the GORM persistence models. They mirror the tables created
// by the goose migrations and never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminUserModel mirrors the 'admin_users' table. IDs are UUIDv7 generated in Go.
type AdminUserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username     string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string     `gorm:"column:full_name;type:varchar(255)"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(20);not null"`
	Active       bool       `gorm:"not null"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminUserModel) TableName() string {
	return "admin_users"
}
