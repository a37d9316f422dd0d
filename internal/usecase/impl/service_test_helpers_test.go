package impl

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"agadev/internal/domain/entity"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

func fixedClock() time.Time {
	return fixedNow
}

// scriptStripper removes script tags, enough to observe that sanitising ran.
type scriptStripper struct{}

func (scriptStripper) Sanitize(html string) string {
	return strings.ReplaceAll(html, "<script>alert(1)</script>", "")
}

// stubQR records the last request and returns a fixed payload.
type stubQR struct {
	kind entity.ContentKind
	slug string
}

func (s *stubQR) ContentURL(kind entity.ContentKind, slug string) string {
	return "https://agadev-gabon.com/" + string(kind) + "/" + slug
}

func (s *stubQR) GenerateContentQR(kind entity.ContentKind, slug string) ([]byte, error) {
	s.kind = kind
	s.slug = slug

	return []byte("png"), nil
}
