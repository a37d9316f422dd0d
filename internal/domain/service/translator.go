package service

import (
	"context"
	"errors"

	"agadev/internal/domain/entity"
)

// ErrTranslatorDisabled is returned when no translation provider is configured.
var ErrTranslatorDisabled = errors.New("translation provider not configured")

// Translator fills missing language variants of content.
type Translator interface {
	Translate(ctx context.Context, text string, source, target entity.Lang) (string, error)
}
