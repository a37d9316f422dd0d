package impl

import (
	"context"
	"log/slog"
	"time"

	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	"agadev/internal/domain/service"
	"agadev/internal/errors"
	"agadev/internal/usecase"
)

// projectService implements the ProjectUsecase interface.
type projectService struct {
	contentTools

	repo repository.ProjectRepository
}

// NewProjectService is the constructor for projectService.
func NewProjectService(
	repo repository.ProjectRepository,
	translator service.Translator,
	sanitizer service.HTMLSanitizer,
	publisher service.EventPublisher,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.ProjectUsecase {
	return &projectService{
		contentTools: contentTools{
			translator: translator,
			sanitizer:  sanitizer,
			publisher:  publisher,
			qr:         qr,
			logger:     logger,
			now:        time.Now,
		},
		repo: repo,
	}
}

func (srv *projectService) ListPublished(ctx context.Context, page repository.Page, status entity.ProjectStatus) ([]*entity.Project, usecase.Pagination, error) {
	if status != "" && !status.IsValid() {
		return nil, usecase.Pagination{}, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "status",
			Message: "must be one of active, completed, planned",
		})
	}

	return srv.list(ctx, repository.ProjectFilter{Page: page, PublishedOnly: true, Status: status})
}

func (srv *projectService) ListAll(ctx context.Context, page repository.Page) ([]*entity.Project, usecase.Pagination, error) {
	return srv.list(ctx, repository.ProjectFilter{Page: page})
}

func (srv *projectService) list(ctx context.Context, filter repository.ProjectFilter) ([]*entity.Project, usecase.Pagination, error) {
	items, total, err := srv.repo.List(ctx, filter)
	if err != nil {
		return nil, usecase.Pagination{}, errors.Wrap(err, "failed to list projects")
	}

	return items, usecase.NewPagination(filter.Page, total), nil
}

func (srv *projectService) GetPublished(ctx context.Context, slug string) (*entity.Project, error) {
	project, err := srv.repo.FindBySlug(ctx, slug, true)
	if err != nil {
		return nil, mapProjectError(err)
	}

	return project, nil
}

func (srv *projectService) Get(ctx context.Context, id int64) (*entity.Project, error) {
	project, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProjectError(err)
	}

	return project, nil
}

func (srv *projectService) Create(ctx context.Context, input usecase.ProjectInput) (*entity.Project, error) {
	project := &entity.Project{Status: entity.ProjectStatusActive}
	applyProjectInput(project, input)

	if err := srv.prepare(ctx, project, input, true); err != nil {
		return nil, err
	}
	if deref(input.Published) {
		project.SetPublished(true, srv.now())
	}

	if err := srv.repo.Create(ctx, project); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Project created", slog.Int64("id", project.ID), slog.String("slug", project.Slug))

	return project, nil
}

// Update merges the supplied fields into the stored project.
func (srv *projectService) Update(ctx context.Context, id int64, input usecase.ProjectInput) (*entity.Project, error) {
	project, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProjectInput(project, input)
	regenerateSlug := input.Slug != nil || input.TitleFR != nil
	if err := srv.prepare(ctx, project, input, regenerateSlug); err != nil {
		return nil, err
	}
	if input.Published != nil {
		project.SetPublished(*input.Published, srv.now())
	}

	if err := srv.repo.Update(ctx, project); err != nil {
		return nil, mapProjectError(err)
	}

	srv.log(ctx).Info("Project updated", slog.Int64("id", project.ID))

	return project, nil
}

func (srv *projectService) prepare(ctx context.Context, project *entity.Project, input usecase.ProjectInput, resolve bool) error {
	var statusErr *domainerrors.FieldError
	if !project.Status.IsValid() {
		statusErr = &domainerrors.FieldError{Field: "status", Message: "must be one of active, completed, planned"}
	}
	var datesErr *domainerrors.FieldError
	if project.StartDate != nil && project.EndDate != nil && project.EndDate.Before(*project.StartDate) {
		datesErr = &domainerrors.FieldError{Field: "end_date", Message: "must not be before start_date"}
	}
	if err := collectFieldErrors(
		requireText("title_fr", project.TitleFR, "French title is required"),
		requireText("description_fr", project.DescriptionFR, "French description is required"),
		requireText("content_fr", project.ContentFR, "French content is required"),
		statusErr,
		datesErr,
	); err != nil {
		return err
	}

	if resolve {
		slug, err := resolveSlug(input.Slug, project.TitleFR)
		if err != nil {
			return err
		}
		project.Slug = slug
	}

	if input.AutoTranslate {
		srv.autoTranslate(ctx,
			translationPair{field: "title_en", fr: project.TitleFR, en: &project.TitleEN},
			translationPair{field: "description_en", fr: project.DescriptionFR, en: &project.DescriptionEN},
			translationPair{field: "content_en", fr: project.ContentFR, en: &project.ContentEN},
		)
	}

	project.ContentFR = srv.sanitizer.Sanitize(project.ContentFR)
	project.ContentEN = srv.sanitizer.Sanitize(project.ContentEN)

	return nil
}

// SetPublished keeps the first publish date when a project is re-published.
func (srv *projectService) SetPublished(ctx context.Context, id int64, published bool) (*entity.Project, error) {
	project, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	project.SetPublished(published, srv.now())
	updated, err := srv.repo.SetPublished(ctx, id, published, project.PublishedAt)
	if err != nil {
		return nil, mapProjectError(err)
	}

	srv.emit(ctx, publishEventType(published), entity.ContentKindProject, updated.ID, updated.Slug, updated.Published)

	return updated, nil
}

func (srv *projectService) Delete(ctx context.Context, id int64) error {
	project, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.repo.Delete(ctx, id); err != nil {
		return mapProjectError(err)
	}

	srv.log(ctx).Info("Project deleted", slog.Int64("id", id), slog.String("slug", project.Slug))
	srv.emit(ctx, entity.ContentEventDeleted, entity.ContentKindProject, id, project.Slug, false)

	return nil
}

func (srv *projectService) QRCode(ctx context.Context, slug string) ([]byte, error) {
	project, err := srv.GetPublished(ctx, slug)
	if err != nil {
		return nil, err
	}

	png, err := srv.qr.GenerateContentQR(entity.ContentKindProject, project.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate project QR code")
	}

	return png, nil
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return scopedLogger(ctx, srv.logger)
}

func applyProjectInput(project *entity.Project, input usecase.ProjectInput) {
	setIfPresent(&project.TitleFR, input.TitleFR)
	setIfPresent(&project.TitleEN, input.TitleEN)
	setIfPresent(&project.DescriptionFR, input.DescriptionFR)
	setIfPresent(&project.DescriptionEN, input.DescriptionEN)
	setIfPresent(&project.ContentFR, input.ContentFR)
	setIfPresent(&project.ContentEN, input.ContentEN)
	setIfPresent(&project.CoverImageURL, input.CoverImageURL)
	setIfPresent(&project.PresentationFileURL, input.PresentationFileURL)
	setIfPresent(&project.Status, input.Status)
	setIfPresent(&project.Location, input.Location)
	setIfPresent(&project.Partners, input.Partners)
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}
	if input.Budget != nil {
		project.Budget = input.Budget
	}
}

func mapProjectError(err error) error {
	if errors.Is(err, repository.ErrProjectNotFound) {
		return domainerrors.ErrProjectNotFound
	}

	return errors.WithStack(err)
}
