package usecase

import (
	"context"
	"time"

	"agadev/internal/domain/entity"
	"agadev/internal/domain/repository"
)

// ProjectInput carries a project write. Nil fields are left untouched on update.
type ProjectInput struct {
	TitleFR             *string
	TitleEN             *string
	DescriptionFR       *string
	DescriptionEN       *string
	ContentFR           *string
	ContentEN           *string
	Slug                *string
	CoverImageURL       *string
	PresentationFileURL *string
	Status              *entity.ProjectStatus
	StartDate           *time.Time
	EndDate             *time.Time
	Budget              *float64
	Location            *string
	Partners            *string
	Published           *bool
	AutoTranslate       bool
}

// ProjectUsecase defines the project operations.
type ProjectUsecase interface {
	// ListPublished returns published projects, optionally narrowed to one status.
	ListPublished(ctx context.Context, page repository.Page, status entity.ProjectStatus) ([]*entity.Project, Pagination, error)
	GetPublished(ctx context.Context, slug string) (*entity.Project, error)
	ListAll(ctx context.Context, page repository.Page) ([]*entity.Project, Pagination, error)
	Get(ctx context.Context, id int64) (*entity.Project, error)
	Create(ctx context.Context, input ProjectInput) (*entity.Project, error)
	Update(ctx context.Context, id int64, input ProjectInput) (*entity.Project, error)
	SetPublished(ctx context.Context, id int64, published bool) (*entity.Project, error)
	Delete(ctx context.Context, id int64) error
	QRCode(ctx context.Context, slug string) ([]byte, error)
}
