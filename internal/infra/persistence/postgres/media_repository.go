package postgres

import (
	"context"

	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	"agadev/internal/errors"
	"agadev/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository is the constructor for mediaRepository.
func NewMediaRepository(db *gorm.DB) repository.MediaRepository {
	return &mediaRepository{db: db}
}

func (repo *mediaRepository) List(ctx context.Context, page repository.Page) ([]*entity.Media, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.MediaModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count media")
	}

	var rows []*model.MediaModel
	if err := repo.db.WithContext(ctx).
		Preload("Uploader").
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list media")
	}

	items := make([]*entity.Media, 0, len(rows))
	for _, m := range rows {
		items = append(items, toMediaDomain(m))
	}

	return items, total, nil
}

func (repo *mediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	var m model.MediaModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMediaNotFound
		}

		return nil, errors.Wrap(err, "failed to find media by id")
	}

	return toMediaDomain(&m), nil
}

// Create persists the metadata, assigning a UUIDv7 when the ID is empty.
func (repo *mediaRepository) Create(ctx context.Context, media *entity.Media) error {
	if media.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate media id")
		}
		media.ID = id
	}

	m := fromMediaDomain(media)
	if err := repo.db.WithContext(ctx).Omit("Uploader").Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("uploader does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create media")
	}

	media.CreatedAt = m.CreatedAt

	return nil
}

func (repo *mediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MediaModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete media")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMediaNotFound
	}

	return nil
}

func (repo *mediaRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.MediaModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count media")
	}

	return total, nil
}

// --- Mapper Functions ---

func toMediaDomain(data *model.MediaModel) *entity.Media {
	if data == nil {
		return nil
	}

	media := &entity.Media{
		ID:               data.ID,
		Filename:         data.Filename,
		OriginalFilename: data.OriginalFilename,
		URL:              data.URL,
		MimeType:         data.MimeType,
		Size:             data.Size,
		UploadedBy:       data.UploadedBy,
		CreatedAt:        data.CreatedAt,
	}
	if data.Uploader != nil {
		media.UploaderUsername = data.Uploader.Username
	}

	return media
}

func fromMediaDomain(data *entity.Media) *model.MediaModel {
	if data == nil {
		return nil
	}

	return &model.MediaModel{
		ID:               data.ID,
		Filename:         data.Filename,
		OriginalFilename: data.OriginalFilename,
		URL:              data.URL,
		MimeType:         data.MimeType,
		Size:             data.Size,
		UploadedBy:       data.UploadedBy,
		CreatedAt:        data.CreatedAt,
	}
}
