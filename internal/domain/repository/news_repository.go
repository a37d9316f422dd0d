package repository

import (
	"context"
	"errors"
	"time"

	"agadev/internal/domain/entity"
)

// ErrNewsNotFound is returned when no news row matches the lookup.
var ErrNewsNotFound = errors.New("news not found")

// NewsFilter narrows a news listing.
type NewsFilter struct {
	Page          Page
	PublishedOnly bool
}

// NewsRepository persists news articles.
type NewsRepository interface {
	// List returns one page ordered by creation date, newest first, and the total row count.
	List(ctx context.Context, filter NewsFilter) ([]*entity.News, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.News, error)
	// FindBySlug only matches published rows when publishedOnly is set.
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.News, error)
	// Create inserts the article. A duplicate slug yields ErrNewsSlugConflict.
	Create(ctx context.Context, news *entity.News) error
	Update(ctx context.Context, news *entity.News) error
	// SetPublished updates only the publish flag and timestamp.
	SetPublished(ctx context.Context, id int64, published bool, publishedAt *time.Time) (*entity.News, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (ContentStats, error)
	// FillMissingCover sets coverURL on every row without a cover and returns the affected count.
	FillMissingCover(ctx context.Context, coverURL string) (int64, error)
}
