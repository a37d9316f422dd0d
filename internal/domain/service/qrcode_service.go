package service

import "agadev/internal/domain/entity"

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// ContentURL returns the public website URL of a content page.
	ContentURL(kind entity.ContentKind, slug string) string

	// GenerateContentQR renders a PNG QR code pointing at the content page.
	GenerateContentQR(kind entity.ContentKind, slug string) ([]byte, error)
}
