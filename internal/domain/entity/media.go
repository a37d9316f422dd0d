package entity

import (
	"time"

	"github.com/google/uuid"
)

// Media is the metadata of one uploaded asset. The bytes live on the asset host.
type Media struct {
	ID               uuid.UUID
	Filename         string // Storage key on the asset host.
	OriginalFilename string
	URL              string // Opaque, "#" when no asset host is configured.
	MimeType         string
	Size             int64
	UploadedBy       uuid.UUID
	UploaderUsername string // Filled by list queries only.
	CreatedAt        time.Time
}
