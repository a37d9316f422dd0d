package usecase

import (
	"context"

	"agadev/internal/domain/entity"
	"agadev/internal/domain/repository"

	"github.com/google/uuid"
)

// ProfileOutput is the admin profile with its role's permissions.
type ProfileOutput struct {
	User        *entity.AdminUser
	Permissions []string
}

// DashboardOutput summarises the content store.
type DashboardOutput struct {
	News     repository.ContentStats
	Projects repository.ContentStats
	Media    int64
}

// FixCoversInput requests a bulk cover fix-up. An empty ImageURL falls back to the configured default.
type FixCoversInput struct {
	ImageURL        string
	PublishProjects bool
}

// FixCoversOutput reports how many rows each table received.
type FixCoversOutput struct {
	ImageURL        string
	NewsUpdated     int64
	ProjectsUpdated int64
}

// MaintenanceStatusOutput reports cover coverage per table.
type MaintenanceStatusOutput struct {
	News     repository.ContentStats
	Projects repository.ContentStats
}

// AdminUsecase defines the admin area operations.
type AdminUsecase interface {
	Profile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	Dashboard(ctx context.Context) (*DashboardOutput, error)
	// FixCovers runs in one transaction; any failure rolls every table back.
	FixCovers(ctx context.Context, input FixCoversInput) (*FixCoversOutput, error)
	MaintenanceStatus(ctx context.Context) (*MaintenanceStatusOutput, error)
}
