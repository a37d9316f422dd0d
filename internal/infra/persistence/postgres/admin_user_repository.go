package postgres

import (
	"context"
	"time"

	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	"agadev/internal/errors"
	"agadev/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// adminUserRepository implements repository.AdminUserRepository using GORM.
type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository is the constructor for adminUserRepository.
func NewAdminUserRepository(db *gorm.DB) repository.AdminUserRepository {
	return &adminUserRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *adminUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	var m model.AdminUserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin user by id")
	}

	return toAdminUserDomain(&m), nil
}

// FindByUsername retrieves a single account by its exact username.
func (repo *adminUserRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	var m model.AdminUserModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin user by username")
	}

	return toAdminUserDomain(&m), nil
}

func (repo *adminUserRepository) List(ctx context.Context) ([]*entity.AdminUser, error) {
	var rows []*model.AdminUserModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list admin users")
	}

	users := make([]*entity.AdminUser, 0, len(rows))
	for _, m := range rows {
		users = append(users, toAdminUserDomain(m))
	}

	return users, nil
}

// Create persists a new account, assigning a UUIDv7 when the ID is empty.
func (repo *adminUserRepository) Create(ctx context.Context, user *entity.AdminUser) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate admin user id")
		}
		user.ID = id
	}

	m := fromAdminUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid admin user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin user")
	}

	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *adminUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumns(ctx, id, map[string]any{"password_hash": passwordHash}, "failed to update password")
}

func (repo *adminUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.updateColumns(ctx, id, map[string]any{"last_login": at}, "failed to update last login")
}

func (repo *adminUserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return repo.updateColumns(ctx, id, map[string]any{"active": active}, "failed to update active flag")
}

func (repo *adminUserRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any, msg string) error {
	result := repo.db.WithContext(ctx).Model(&model.AdminUserModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, msg)
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAdminUserDomain(data *model.AdminUserModel) *entity.AdminUser {
	if data == nil {
		return nil
	}

	return &entity.AdminUser{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FullName:     data.FullName,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Active:       data.Active,
		LastLogin:    data.LastLogin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAdminUserDomain(data *entity.AdminUser) *model.AdminUserModel {
	if data == nil {
		return nil
	}

	return &model.AdminUserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FullName:     data.FullName,
		PasswordHash: data.PasswordHash,
		Role:         string(data.Role),
		Active:       data.Active,
		LastLogin:    data.LastLogin,
	}
}
