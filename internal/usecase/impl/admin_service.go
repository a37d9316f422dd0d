package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"agadev/config"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	"agadev/internal/errors"
	"agadev/internal/usecase"

	"github.com/google/uuid"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager    repository.TransactionManager
	users        repository.AdminUserRepository
	news         repository.NewsRepository
	projects     repository.ProjectRepository
	media        repository.MediaRepository
	defaultCover string
	logger       *slog.Logger
	now          func() time.Time
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	users repository.AdminUserRepository,
	news repository.NewsRepository,
	projects repository.ProjectRepository,
	media repository.MediaRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminUsecase {
	srv := &adminService{
		txManager: txManager,
		users:     users,
		news:      news,
		projects:  projects,
		media:     media,
		logger:    logger,
		now:       time.Now,
	}
	if cfg.Maintenance != nil {
		srv.defaultCover = cfg.Maintenance.DefaultCoverURL
	}

	return srv
}

func (srv *adminService) Profile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return &usecase.ProfileOutput{
		User:        user,
		Permissions: user.Role.Permissions(),
	}, nil
}

func (srv *adminService) Dashboard(ctx context.Context) (*usecase.DashboardOutput, error) {
	newsStats, err := srv.news.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load news stats")
	}
	projectStats, err := srv.projects.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load project stats")
	}
	mediaCount, err := srv.media.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count media")
	}

	return &usecase.DashboardOutput{
		News:     newsStats,
		Projects: projectStats,
		Media:    mediaCount,
	}, nil
}

// FixCovers updates both tables in one transaction.
func (srv *adminService) FixCovers(ctx context.Context, input usecase.FixCoversInput) (*usecase.FixCoversOutput, error) {
	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL == "" {
		imageURL = srv.defaultCover
	}
	if imageURL == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "image_url",
			Message: "image_url is required when no default cover is configured",
		})
	}

	out := &usecase.FixCoversOutput{ImageURL: imageURL}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		newsUpdated, err := repoFactory.NewNewsRepository().FillMissingCover(ctx, imageURL)
		if err != nil {
			return errors.Wrap(err, "failed to fix news covers")
		}

		projectsUpdated, err := repoFactory.NewProjectRepository().FillMissingCover(ctx, imageURL, input.PublishProjects, srv.now())
		if err != nil {
			return errors.Wrap(err, "failed to fix project covers")
		}

		out.NewsUpdated = newsUpdated
		out.ProjectsUpdated = projectsUpdated

		return nil
	})
	if err != nil {
		scopedLogger(ctx, srv.logger).Error("Cover fix-up rolled back", slog.Any("error", err))

		return nil, domainerrors.ErrTransactionFailed.WithDetails(err.Error())
	}

	scopedLogger(ctx, srv.logger).Info("Cover fix-up applied",
		slog.Int64("news", out.NewsUpdated),
		slog.Int64("projects", out.ProjectsUpdated),
		slog.Bool("publish_projects", input.PublishProjects),
	)

	return out, nil
}

func (srv *adminService) MaintenanceStatus(ctx context.Context) (*usecase.MaintenanceStatusOutput, error) {
	newsStats, err := srv.news.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load news stats")
	}
	projectStats, err := srv.projects.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load project stats")
	}

	return &usecase.MaintenanceStatusOutput{
		News:     newsStats,
		Projects: projectStats,
	}, nil
}
