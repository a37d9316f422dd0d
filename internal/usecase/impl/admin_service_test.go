package impl

import (
	"context"
	"testing"

	"agadev/config"
	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	mockRepo "agadev/internal/mocks/repository"
	"agadev/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	users     *mockRepo.MockAdminUserRepository
	news      *mockRepo.MockNewsRepository
	projects  *mockRepo.MockProjectRepository
	media     *mockRepo.MockMediaRepository
}

func createTestAdminService(t *testing.T, defaultCover string) adminServiceFixtures {
	fx := adminServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		users:     mockRepo.NewMockAdminUserRepository(t),
		news:      mockRepo.NewMockNewsRepository(t),
		projects:  mockRepo.NewMockProjectRepository(t),
		media:     mockRepo.NewMockMediaRepository(t),
	}
	cfg := &config.Config{Maintenance: &config.MaintenanceConfig{DefaultCoverURL: defaultCover}}

	srv := NewAdminService(fx.txManager, fx.users, fx.news, fx.projects, fx.media, cfg, newDiscardLogger())
	srv.(*adminService).now = fixedClock
	fx.service = srv

	return fx
}

// runInTx makes the mocked transaction manager call through with the mocked factory.
func (fx adminServiceFixtures) runInTx(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestAdminService_Profile(t *testing.T) {
	fx := createTestAdminService(t, "")
	ctx := context.Background()
	user := &entity.AdminUser{ID: uuid.New(), Username: "editor", Role: entity.RoleEditor, Active: true}

	fx.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	out, err := fx.service.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "editor", out.User.Username)
	assert.Equal(t, []string{"manage_content", "manage_media"}, out.Permissions)
}

func TestAdminService_Dashboard(t *testing.T) {
	fx := createTestAdminService(t, "")
	ctx := context.Background()

	fx.news.EXPECT().Stats(ctx).Return(repository.ContentStats{Total: 4, Published: 3}, nil)
	fx.projects.EXPECT().Stats(ctx).Return(repository.ContentStats{Total: 2, Published: 1}, nil)
	fx.media.EXPECT().Count(ctx).Return(int64(12), nil)

	out, err := fx.service.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.News.Total)
	assert.Equal(t, int64(1), out.Projects.Published)
	assert.Equal(t, int64(12), out.Media)
}

func TestAdminService_FixCovers(t *testing.T) {
	ctx := context.Background()

	t.Run("uses configured default", func(t *testing.T) {
		fx := createTestAdminService(t, "https://cdn/default.jpg")
		fx.runInTx(ctx)
		fx.factory.EXPECT().NewNewsRepository().Return(fx.news)
		fx.factory.EXPECT().NewProjectRepository().Return(fx.projects)
		fx.news.EXPECT().FillMissingCover(ctx, "https://cdn/default.jpg").Return(int64(3), nil)
		fx.projects.EXPECT().FillMissingCover(ctx, "https://cdn/default.jpg", true, fixedNow).Return(int64(2), nil)

		out, err := fx.service.FixCovers(ctx, usecase.FixCoversInput{PublishProjects: true})
		require.NoError(t, err)
		assert.Equal(t, usecase.FixCoversOutput{ImageURL: "https://cdn/default.jpg", NewsUpdated: 3, ProjectsUpdated: 2}, *out)
	})

	t.Run("failure surfaces as transaction error", func(t *testing.T) {
		fx := createTestAdminService(t, "")
		fx.runInTx(ctx)
		fx.factory.EXPECT().NewNewsRepository().Return(fx.news)
		fx.factory.EXPECT().NewProjectRepository().Return(fx.projects)
		fx.news.EXPECT().FillMissingCover(ctx, "https://cdn/x.jpg").Return(int64(3), nil)
		fx.projects.EXPECT().FillMissingCover(ctx, "https://cdn/x.jpg", false, fixedNow).Return(int64(0), assert.AnError)

		_, err := fx.service.FixCovers(ctx, usecase.FixCoversInput{ImageURL: "https://cdn/x.jpg"})
		assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	})

	t.Run("missing image url", func(t *testing.T) {
		fx := createTestAdminService(t, "")

		_, err := fx.service.FixCovers(ctx, usecase.FixCoversInput{})
		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "image_url", validationErr.Fields[0].Field)
	})
}

func TestAdminService_MaintenanceStatus(t *testing.T) {
	fx := createTestAdminService(t, "")
	ctx := context.Background()

	fx.news.EXPECT().Stats(ctx).Return(repository.ContentStats{Total: 4, WithCover: 1, WithoutCover: 3}, nil)
	fx.projects.EXPECT().Stats(ctx).Return(repository.ContentStats{Total: 2, WithCover: 2}, nil)

	out, err := fx.service.MaintenanceStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.News.WithoutCover)
	assert.Equal(t, int64(2), out.Projects.WithCover)
}
