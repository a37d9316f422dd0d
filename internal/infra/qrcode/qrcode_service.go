package qrcode

import (
	"net/url"
	"strings"

	"agadev/config"
	"agadev/internal/domain/entity"
	"agadev/internal/domain/service"
	"agadev/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://agadev-gabon.com"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "M", defaultBaseURL)
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ContentURL returns the public page of a content record, e.g. https://site/news/essai
func (s *qrcodeService) ContentURL(kind entity.ContentKind, slug string) string {
	return s.baseURL + "/" + string(kind) + "/" + url.PathEscape(slug)
}

// GenerateContentQR renders a PNG QR code pointing at the content page
func (s *qrcodeService) GenerateContentQR(kind entity.ContentKind, slug string) ([]byte, error) {
	if slug == "" {
		return nil, errors.New("slug is required")
	}

	qrCode, err := qrcode.New(s.ContentURL(kind, slug), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
