package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	"agadev/internal/errors"
	"agadev/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, username string, role entity.Role) *entity.AdminUser {
	t.Helper()

	user := &entity.AdminUser{
		Username:     username,
		Email:        username + "@agadev-gabon.com",
		FullName:     "Test " + username,
		PasswordHash: "hash",
		Role:         role,
		Active:       true,
	}
	require.NoError(t, NewAdminUserRepository(db).Create(context.Background(), user))

	return user
}

func TestAdminUserRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAdminUserRepository(db)

	admin := seedAdmin(t, db, "admin", entity.RoleAdmin)
	assert.NotEqual(t, uuid.Nil, admin.ID)
	assert.Equal(t, uuid.Version(7), admin.ID.Version())

	t.Run("find by username is exact", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, found.ID)
		assert.Equal(t, entity.RoleAdmin, found.Role)

		_, err = repo.FindByUsername(ctx, "Admin")
		assert.ErrorIs(t, err, repository.ErrAdminUserNotFound)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		dup := &entity.AdminUser{Username: "admin", Email: "other@agadev-gabon.com", PasswordHash: "x", Role: entity.RoleEditor, Active: true}
		err := repo.Create(ctx, dup)
		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})

	t.Run("inactive flag persists as false", func(t *testing.T) {
		user := &entity.AdminUser{Username: "sleepy", Email: "sleepy@agadev-gabon.com", PasswordHash: "x", Role: entity.RoleEditor}
		require.NoError(t, repo.Create(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, found.Active)
	})

	t.Run("updates", func(t *testing.T) {
		at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
		require.NoError(t, repo.UpdateLastLogin(ctx, admin.ID, at))
		require.NoError(t, repo.UpdatePassword(ctx, admin.ID, "new-hash"))
		require.NoError(t, repo.SetActive(ctx, admin.ID, false))

		found, err := repo.FindByID(ctx, admin.ID)
		require.NoError(t, err)
		require.NotNil(t, found.LastLogin)
		assert.True(t, at.Equal(*found.LastLogin))
		assert.Equal(t, "new-hash", found.PasswordHash)
		assert.False(t, found.Active)

		assert.ErrorIs(t, repo.SetActive(ctx, uuid.New(), true), repository.ErrAdminUserNotFound)
	})

	t.Run("list", func(t *testing.T) {
		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestNewsRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewNewsRepository(db)
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	draft := &entity.News{TitleFR: "Essai", ContentFR: "Contenu", Slug: "essai"}
	require.NoError(t, repo.Create(ctx, draft))
	assert.NotZero(t, draft.ID)

	live := &entity.News{TitleFR: "En ligne", ContentFR: "Contenu", Slug: "en-ligne", CoverImageURL: "https://cdn/x.jpg"}
	live.SetPublished(true, now)
	require.NoError(t, repo.Create(ctx, live))

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &entity.News{TitleFR: "Essai", ContentFR: "Autre", Slug: "essai"})
		assert.True(t, errors.Is(err, domainerrors.ErrNewsSlugConflict))
	})

	t.Run("public listing hides drafts", func(t *testing.T) {
		items, total, err := repo.List(ctx, repository.NewsFilter{Page: repository.Page{Number: 1, Limit: 10}, PublishedOnly: true})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "en-ligne", items[0].Slug)

		_, err = repo.FindBySlug(ctx, "essai", true)
		assert.ErrorIs(t, err, repository.ErrNewsNotFound)
	})

	t.Run("admin listing returns everything", func(t *testing.T) {
		items, total, err := repo.List(ctx, repository.NewsFilter{Page: repository.Page{Number: 1, Limit: 20}})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, items, 2)
	})

	t.Run("pagination", func(t *testing.T) {
		items, total, err := repo.List(ctx, repository.NewsFilter{Page: repository.Page{Number: 2, Limit: 1}})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, items, 1)
	})

	t.Run("update keeps zero values", func(t *testing.T) {
		live.TitleEN = "Online"
		live.CoverImageURL = ""
		require.NoError(t, repo.Update(ctx, live))

		found, err := repo.FindByID(ctx, live.ID)
		require.NoError(t, err)
		assert.Equal(t, "Online", found.TitleEN)
		assert.Empty(t, found.CoverImageURL)
		assert.True(t, found.Published)

		assert.ErrorIs(t, repo.Update(ctx, &entity.News{ID: 999, TitleFR: "x", ContentFR: "y", Slug: "z"}), repository.ErrNewsNotFound)
	})

	t.Run("set published", func(t *testing.T) {
		published, err := repo.SetPublished(ctx, draft.ID, true, &now)
		require.NoError(t, err)
		assert.True(t, published.Published)
		require.NotNil(t, published.PublishedAt)

		unpublished, err := repo.SetPublished(ctx, draft.ID, false, nil)
		require.NoError(t, err)
		assert.False(t, unpublished.Published)
		assert.Nil(t, unpublished.PublishedAt)

		_, err = repo.SetPublished(ctx, 999, true, &now)
		assert.ErrorIs(t, err, repository.ErrNewsNotFound)
	})

	t.Run("stats and cover fix", func(t *testing.T) {
		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, repository.ContentStats{Total: 2, Published: 1, WithCover: 0, WithoutCover: 2}, stats)

		n, err := repo.FillMissingCover(ctx, "https://cdn/default.jpg")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		stats, err = repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.WithCover)
		assert.Zero(t, stats.WithoutCover)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, draft.ID))
		assert.ErrorIs(t, repo.Delete(ctx, draft.ID), repository.ErrNewsNotFound)
	})
}

func TestProjectRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProjectRepository(db)
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	budget := 125000.5

	active := &entity.Project{TitleFR: "Forage", DescriptionFR: "d", ContentFR: "c", Slug: "forage", Status: entity.ProjectStatusActive, Budget: &budget}
	active.SetPublished(true, now)
	require.NoError(t, repo.Create(ctx, active))

	planned := &entity.Project{TitleFR: "Ecole", DescriptionFR: "d", ContentFR: "c", Slug: "ecole", Status: entity.ProjectStatusPlanned, CoverImageURL: "https://cdn/e.jpg"}
	require.NoError(t, repo.Create(ctx, planned))

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Project{TitleFR: "Forage", DescriptionFR: "d", ContentFR: "c", Slug: "forage", Status: entity.ProjectStatusActive})
		assert.True(t, errors.Is(err, domainerrors.ErrProjectSlugConflict))
	})

	t.Run("status filter", func(t *testing.T) {
		items, total, err := repo.List(ctx, repository.ProjectFilter{Page: repository.Page{Number: 1, Limit: 10}, Status: entity.ProjectStatusPlanned})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "ecole", items[0].Slug)
	})

	t.Run("public listing", func(t *testing.T) {
		items, total, err := repo.List(ctx, repository.ProjectFilter{Page: repository.Page{Number: 1, Limit: 10}, PublishedOnly: true})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].Budget)
		assert.InDelta(t, budget, *items[0].Budget, 0.001)
	})

	t.Run("fill covers and publish", func(t *testing.T) {
		n, err := repo.FillMissingCover(ctx, "https://cdn/default.jpg", true, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		found, err := repo.FindBySlug(ctx, "forage", true)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/default.jpg", found.CoverImageURL)

		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, repository.ContentStats{Total: 2, Published: 1, WithCover: 2, WithoutCover: 0}, stats)
	})
}

func TestMediaRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewMediaRepository(db)
	uploader := seedAdmin(t, db, "editor", entity.RoleEditor)

	for i := range 3 {
		media := &entity.Media{
			Filename:         fmt.Sprintf("agadev/%d.png", i),
			OriginalFilename: fmt.Sprintf("%d.png", i),
			URL:              "#",
			MimeType:         "image/png",
			Size:             int64(100 + i),
			UploadedBy:       uploader.ID,
		}
		require.NoError(t, repo.Create(ctx, media))
		assert.NotEqual(t, uuid.Nil, media.ID)
	}

	items, total, err := repo.List(ctx, repository.Page{Number: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	assert.Equal(t, "editor", items[0].UploaderUsername)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, repo.Delete(ctx, items[0].ID))
	_, err = repo.FindByID(ctx, items[0].ID)
	assert.ErrorIs(t, err, repository.ErrMediaNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, items[0].ID), repository.ErrMediaNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewNewsRepository().Create(ctx, &entity.News{TitleFR: "a", ContentFR: "b", Slug: "a"}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, total, err := NewNewsRepository(db).List(ctx, repository.NewsFilter{Page: repository.Page{Number: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Zero(t, total)

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewNewsRepository().Create(ctx, &entity.News{TitleFR: "a", ContentFR: "b", Slug: "a"})
	}))
	_, total, err = NewNewsRepository(db).List(ctx, repository.NewsFilter{Page: repository.Page{Number: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRedactSQL(t *testing.T) {
	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	got := redactSQL(`UPDATE "admin_users" SET "password_hash"='` + hash + `'`)

	assert.NotContains(t, got, hash)
	assert.Contains(t, got, "[REDACTED]")
}
