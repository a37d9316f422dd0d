package repository

import (
	"context"
	"errors"
	"time"

	"agadev/internal/domain/entity"
)

// ErrProjectNotFound is returned when no project row matches the lookup.
var ErrProjectNotFound = errors.New("project not found")

// ProjectFilter narrows a project listing.
type ProjectFilter struct {
	Page          Page
	PublishedOnly bool
	Status        entity.ProjectStatus // empty means any status
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	List(ctx context.Context, filter ProjectFilter) ([]*entity.Project, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Project, error)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.Project, error)
	// Create inserts the project. A duplicate slug yields ErrProjectSlugConflict.
	Create(ctx context.Context, project *entity.Project) error
	Update(ctx context.Context, project *entity.Project) error
	SetPublished(ctx context.Context, id int64, published bool, publishedAt *time.Time) (*entity.Project, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (ContentStats, error)
	// FillMissingCover sets coverURL on every row without a cover, publishing them when publish is set.
	FillMissingCover(ctx context.Context, coverURL string, publish bool, now time.Time) (int64, error)
}
