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

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{db: db}
}

// List orders published listings by publish date and admin listings by creation date.
func (repo *newsRepository) List(ctx context.Context, filter repository.NewsFilter) ([]*entity.News, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.NewsModel{})
	order := "created_at DESC, id DESC"
	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
		order = "publish_date DESC, id DESC"
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count news")
	}

	var rows []*model.NewsModel
	if err := query.Order(order).
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list news")
	}

	items := make([]*entity.News, 0, len(rows))
	for _, m := range rows {
		items = append(items, toNewsDomain(m))
	}

	return items, total, nil
}

func (repo *newsRepository) FindByID(ctx context.Context, id int64) (*entity.News, error) {
	var m model.NewsModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsNotFound
		}

		return nil, errors.Wrap(err, "failed to find news by id")
	}

	return toNewsDomain(&m), nil
}

func (repo *newsRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.News, error) {
	query := repo.db.WithContext(ctx).Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var m model.NewsModel
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsNotFound
		}

		return nil, errors.Wrap(err, "failed to find news by slug")
	}

	return toNewsDomain(&m), nil
}

func (repo *newsRepository) Create(ctx context.Context, news *entity.News) error {
	m := fromNewsDomain(news)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateNewsWriteError(err, "failed to create news")
	}

	news.ID = m.ID
	news.CreatedAt = m.CreatedAt
	news.UpdatedAt = m.UpdatedAt

	return nil
}

// Update overwrites every editable column, zero values included.
func (repo *newsRepository) Update(ctx context.Context, news *entity.News) error {
	m := fromNewsDomain(news)
	result := repo.db.WithContext(ctx).Model(m).Select("*").Omit("id", "created_at").Updates(m)
	if result.Error != nil {
		return translateNewsWriteError(result.Error, "failed to update news")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNewsNotFound
	}

	news.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *newsRepository) SetPublished(ctx context.Context, id int64, published bool, publishedAt *time.Time) (*entity.News, error) {
	result := repo.db.WithContext(ctx).Model(&model.NewsModel{}).Where("id = ?", id).Updates(map[string]any{
		"published":    published,
		"publish_date": publishedAt,
	})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update news publish state")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNewsNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *newsRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NewsModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete news")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNewsNotFound
	}

	return nil
}

func (repo *newsRepository) Stats(ctx context.Context) (repository.ContentStats, error) {
	return contentStats(ctx, repo.db, model.NewsModel{}.TableName())
}

func (repo *newsRepository) FillMissingCover(ctx context.Context, coverURL string) (int64, error) {
	result := repo.db.WithContext(ctx).Model(&model.NewsModel{}).
		Where(missingCoverCondition).
		Update("cover_image_url", coverURL)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to fill news covers")
	}

	return result.RowsAffected, nil
}

func translateNewsWriteError(err error, msg string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrNewsSlugConflict
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("missing required news field")
	}

	return domainerrors.NewDatabaseExecuteError(err, msg)
}

// --- Mapper Functions ---

func toNewsDomain(data *model.NewsModel) *entity.News {
	if data == nil {
		return nil
	}

	return &entity.News{
		ID:            data.ID,
		TitleFR:       data.TitleFR,
		TitleEN:       data.TitleEN,
		ContentFR:     data.ContentFR,
		ContentEN:     data.ContentEN,
		ExcerptFR:     data.ExcerptFR,
		ExcerptEN:     data.ExcerptEN,
		Slug:          data.Slug,
		CoverImageURL: data.CoverImageURL,
		Published:     data.Published,
		PublishedAt:   data.PublishDate,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromNewsDomain(data *entity.News) *model.NewsModel {
	if data == nil {
		return nil
	}

	return &model.NewsModel{
		ID:            data.ID,
		TitleFR:       data.TitleFR,
		TitleEN:       data.TitleEN,
		ContentFR:     data.ContentFR,
		ContentEN:     data.ContentEN,
		ExcerptFR:     data.ExcerptFR,
		ExcerptEN:     data.ExcerptEN,
		Slug:          data.Slug,
		CoverImageURL: data.CoverImageURL,
		Published:     data.Published,
		PublishDate:   data.PublishedAt,
		CreatedAt:     data.CreatedAt,
	}
}
