package repository

import (
	"context"
	"errors"

	"agadev/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMediaNotFound is returned when no media row matches the lookup.
var ErrMediaNotFound = errors.New("media not found")

// MediaRepository persists upload metadata.
type MediaRepository interface {
	// List returns one page with the uploader username filled, newest first, and the total.
	List(ctx context.Context, page Page) ([]*entity.Media, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Media, error)
	Create(ctx context.Context, media *entity.Media) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
