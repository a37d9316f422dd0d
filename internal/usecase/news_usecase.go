package usecase

import (
	"context"

	"agadev/internal/domain/entity"
	"agadev/internal/domain/repository"
)

// NewsInput carries a news write. Nil fields are left untouched on update.
type NewsInput struct {
	TitleFR       *string
	TitleEN       *string
	ContentFR     *string
	ContentEN     *string
	ExcerptFR     *string
	ExcerptEN     *string
	Slug          *string
	CoverImageURL *string
	Published     *bool
	AutoTranslate bool
}

// NewsUsecase defines the news operations.
type NewsUsecase interface {
	// ListPublished returns published articles only.
	ListPublished(ctx context.Context, page repository.Page) ([]*entity.News, Pagination, error)
	GetPublished(ctx context.Context, slug string) (*entity.News, error)
	ListAll(ctx context.Context, page repository.Page) ([]*entity.News, Pagination, error)
	Get(ctx context.Context, id int64) (*entity.News, error)
	Create(ctx context.Context, input NewsInput) (*entity.News, error)
	Update(ctx context.Context, id int64, input NewsInput) (*entity.News, error)
	SetPublished(ctx context.Context, id int64, published bool) (*entity.News, error)
	Delete(ctx context.Context, id int64) error
	// QRCode renders a PNG share code for a published article.
	QRCode(ctx context.Context, slug string) ([]byte, error)
}
