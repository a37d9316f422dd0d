package model

import (
	"time"

	"github.com/google/uuid"
)

// MediaModel mirrors the 'media' table. UploadedBy references admin_users.id.
type MediaModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Filename         string          `gorm:"type:varchar(500);not null"`
	OriginalFilename string          `gorm:"column:original_filename;type:varchar(500);not null"`
	URL              string          `gorm:"column:url;type:text;not null"`
	MimeType         string          `gorm:"column:mime_type;type:varchar(100)"`
	Size             int64           `gorm:"not null"`
	UploadedBy       uuid.UUID       `gorm:"column:uploaded_by;type:uuid;not null;index"`
	Uploader         *AdminUserModel `gorm:"foreignKey:UploadedBy;constraint:OnDelete:RESTRICT"`
	CreatedAt        time.Time       `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MediaModel) TableName() string {
	return "media"
}
