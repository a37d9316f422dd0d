package postgres

import (
	"context"
	"time"

	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	"agadev/internal/errors"
	"agadev/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (repo *projectRepository) List(ctx context.Context, filter repository.ProjectFilter) ([]*entity.Project, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProjectModel{})
	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count projects")
	}

	var rows []*model.ProjectModel
	if err := query.Order("created_at DESC, id DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list projects")
	}

	items := make([]*entity.Project, 0, len(rows))
	for _, m := range rows {
		items = append(items, toProjectDomain(m))
	}

	return items, total, nil
}

func (repo *projectRepository) FindByID(ctx context.Context, id int64) (*entity.Project, error) {
	var m model.ProjectModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by id")
	}

	return toProjectDomain(&m), nil
}

func (repo *projectRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.Project, error) {
	query := repo.db.WithContext(ctx).Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var m model.ProjectModel
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by slug")
	}

	return toProjectDomain(&m), nil
}

func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	m := fromProjectDomain(project)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateProjectWriteError(err, "failed to create project")
	}

	project.ID = m.ID
	project.CreatedAt = m.CreatedAt
	project.UpdatedAt = m.UpdatedAt

	return nil
}

// Update overwrites every editable column, zero values included.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	m := fromProjectDomain(project)
	result := repo.db.WithContext(ctx).Model(m).Select("*").Omit("id", "created_at").Updates(m)
	if result.Error != nil {
		return translateProjectWriteError(result.Error, "failed to update project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	project.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *projectRepository) SetPublished(ctx context.Context, id int64, published bool, publishedAt *time.Time) (*entity.Project, error) {
	result := repo.db.WithContext(ctx).Model(&model.ProjectModel{}).Where("id = ?", id).Updates(map[string]any{
		"published":    published,
		"publish_date": publishedAt,
	})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update project publish state")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProjectNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *projectRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func (repo *projectRepository) Stats(ctx context.Context) (repository.ContentStats, error) {
	return contentStats(ctx, repo.db, model.ProjectModel{}.TableName())
}

// FillMissingCover keeps an existing publish date when publishing.
func (repo *projectRepository) FillMissingCover(ctx context.Context, coverURL string, publish bool, now time.Time) (int64, error) {
	columns := map[string]any{"cover_image_url": coverURL}
	if publish {
		columns["published"] = true
		columns["publish_date"] = gorm.Expr("COALESCE(publish_date, ?)", now)
	}

	result := repo.db.WithContext(ctx).Model(&model.ProjectModel{}).
		Where(missingCoverCondition).
		Updates(columns)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to fill project covers")
	}

	return result.RowsAffected, nil
}

func translateProjectWriteError(err error, msg string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrProjectSlugConflict
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid project field")
	}

	return domainerrors.NewDatabaseExecuteError(err, msg)
}

// --- Mapper Functions ---

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	return &entity.Project{
		ID:                  data.ID,
		TitleFR:             data.TitleFR,
		TitleEN:             data.TitleEN,
		DescriptionFR:       data.DescriptionFR,
		DescriptionEN:       data.DescriptionEN,
		ContentFR:           data.ContentFR,
		ContentEN:           data.ContentEN,
		Slug:                data.Slug,
		CoverImageURL:       data.CoverImageURL,
		PresentationFileURL: data.PresentationFileURL,
		Status:              entity.ProjectStatus(data.Status),
		StartDate:           data.StartDate,
		EndDate:             data.EndDate,
		Budget:              data.Budget,
		Location:            data.Location,
		Partners:            data.Partners,
		Published:           data.Published,
		PublishedAt:         data.PublishDate,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:                  data.ID,
		TitleFR:             data.TitleFR,
		TitleEN:             data.TitleEN,
		DescriptionFR:       data.DescriptionFR,
		DescriptionEN:       data.DescriptionEN,
		ContentFR:           data.ContentFR,
		ContentEN:           data.ContentEN,
		Slug:                data.Slug,
		CoverImageURL:       data.CoverImageURL,
		PresentationFileURL: data.PresentationFileURL,
		Status:              string(data.Status),
		StartDate:           data.StartDate,
		EndDate:             data.EndDate,
		Budget:              data.Budget,
		Location:            data.Location,
		Partners:            data.Partners,
		Published:           data.Published,
		PublishDate:         data.PublishedAt,
		CreatedAt:           data.CreatedAt,
	}
}
