package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"agadev/config"
	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	mockRepo "agadev/internal/mocks/repository"
	mockSvc "agadev/internal/mocks/service"
	"agadev/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

type mediaServiceFixtures struct {
	service usecase.MediaUsecase
	repo    *mockRepo.MockMediaRepository
	storage *mockSvc.MockAssetStorage
}

func createTestMediaService(t *testing.T, maxSize int64) mediaServiceFixtures {
	repo := mockRepo.NewMockMediaRepository(t)
	storage := mockSvc.NewMockAssetStorage(t)
	cfg := &config.Config{Assets: &config.AssetsConfig{Folder: "agadev", MaxUploadSize: maxSize}}

	return mediaServiceFixtures{
		service: NewMediaService(repo, storage, cfg, newDiscardLogger()),
		repo:    repo,
		storage: storage,
	}
}

func TestMediaService_Upload_Success(t *testing.T) {
	fx := createTestMediaService(t, 1024)
	ctx := context.Background()
	uploader := uuid.New()

	fx.storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "agadev/") && strings.HasSuffix(key, "-logo-final.png")
		}), pngHeader, "image/png").
		Return("https://cdn.agadev-gabon.com/agadev/logo.png", nil)
	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Media")).
		Run(func(_ context.Context, media *entity.Media) {
			assert.Equal(t, uploader, media.UploadedBy)
			assert.Equal(t, int64(len(pngHeader)), media.Size)
		}).
		Return(nil)

	media, err := fx.service.Upload(ctx, uploader, usecase.UploadFile{OriginalFilename: "Logo Final.PNG", Data: pngHeader})
	require.NoError(t, err)
	assert.Equal(t, "image/png", media.MimeType)
	assert.Equal(t, "https://cdn.agadev-gabon.com/agadev/logo.png", media.URL)
	assert.Equal(t, "Logo Final.PNG", media.OriginalFilename)
}

func TestMediaService_Upload_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		fx := createTestMediaService(t, 1024)
		_, err := fx.service.Upload(ctx, uuid.New(), usecase.UploadFile{OriginalFilename: "a.png"})
		assert.ErrorIs(t, err, domainerrors.ErrNoFileProvided)
	})

	t.Run("too large", func(t *testing.T) {
		fx := createTestMediaService(t, 16)
		_, err := fx.service.Upload(ctx, uuid.New(), usecase.UploadFile{OriginalFilename: "a.png", Data: pngHeader})
		assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
	})

	t.Run("sniffed type wins over extension", func(t *testing.T) {
		fx := createTestMediaService(t, 1024)
		_, err := fx.service.Upload(ctx, uuid.New(), usecase.UploadFile{OriginalFilename: "evil.png", Data: []byte("#!/bin/sh\necho pwned\n")})
		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
	})
}

func TestMediaService_Upload_StorageFailureCreatesNoRecord(t *testing.T) {
	fx := createTestMediaService(t, 1024)
	ctx := context.Background()

	fx.storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything).Return("", assert.AnError)

	_, err := fx.service.Upload(ctx, uuid.New(), usecase.UploadFile{OriginalFilename: "a.png", Data: pngHeader})
	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMediaService_Upload_RecordFailure(t *testing.T) {
	fx := createTestMediaService(t, 1024)
	ctx := context.Background()

	fx.storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything).Return("#", nil)
	fx.repo.EXPECT().Create(ctx, mock.Anything).Return(assert.AnError)

	_, err := fx.service.Upload(ctx, uuid.New(), usecase.UploadFile{OriginalFilename: "a.png", Data: pngHeader})
	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}

func TestMediaService_UploadMultiple(t *testing.T) {
	ctx := context.Background()

	t.Run("reports each file", func(t *testing.T) {
		fx := createTestMediaService(t, 1024)
		fx.storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, "image/png").Return("#", nil)
		fx.repo.EXPECT().Create(ctx, mock.Anything).Return(nil)

		files := []usecase.UploadFile{
			{OriginalFilename: "ok.png", Data: pngHeader},
			{OriginalFilename: "bad.txt", Data: []byte("plain text")},
			{OriginalFilename: "ok2.png", Data: bytes.Clone(pngHeader)},
		}
		results, err := fx.service.UploadMultiple(ctx, uuid.New(), files)
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.NoError(t, results[0].Err)
		assert.NotNil(t, results[0].Media)
		assert.ErrorIs(t, results[1].Err, domainerrors.ErrUnsupportedFileType)
		assert.Nil(t, results[1].Media)
		assert.NoError(t, results[2].Err)
		assert.Equal(t, "bad.txt", results[1].OriginalFilename)
	})

	t.Run("too many files", func(t *testing.T) {
		fx := createTestMediaService(t, 1024)
		files := make([]usecase.UploadFile, usecase.MaxFilesPerBatch+1)

		_, err := fx.service.UploadMultiple(ctx, uuid.New(), files)
		assert.ErrorIs(t, err, domainerrors.ErrTooManyFiles)
	})

	t.Run("no files", func(t *testing.T) {
		fx := createTestMediaService(t, 1024)

		_, err := fx.service.UploadMultiple(ctx, uuid.New(), nil)
		assert.ErrorIs(t, err, domainerrors.ErrNoFileProvided)
	})
}

func TestMediaService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("remote failure still deletes metadata", func(t *testing.T) {
		fx := createTestMediaService(t, 1024)
		fx.repo.EXPECT().FindByID(ctx, id).Return(&entity.Media{ID: id, Filename: "agadev/x.png"}, nil)
		fx.storage.EXPECT().Enabled().Return(true)
		fx.storage.EXPECT().Delete(ctx, "agadev/x.png").Return(assert.AnError)
		fx.repo.EXPECT().Delete(ctx, id).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, id))
	})

	t.Run("placeholder storage skips remote delete", func(t *testing.T) {
		fx := createTestMediaService(t, 1024)
		fx.repo.EXPECT().FindByID(ctx, id).Return(&entity.Media{ID: id, Filename: "agadev/x.png", URL: "#"}, nil)
		fx.storage.EXPECT().Enabled().Return(false)
		fx.repo.EXPECT().Delete(ctx, id).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, id))
	})

	t.Run("unknown id", func(t *testing.T) {
		fx := createTestMediaService(t, 1024)
		fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMediaNotFound)

		assert.ErrorIs(t, fx.service.Delete(ctx, id), domainerrors.ErrMediaNotFound)
	})
}

func TestMediaService_List(t *testing.T) {
	fx := createTestMediaService(t, 1024)
	ctx := context.Background()
	page := repository.Page{Number: 1, Limit: 50}

	fx.repo.EXPECT().List(ctx, page).Return([]*entity.Media{{UploaderUsername: "admin"}}, int64(1), nil)

	items, pagination, err := fx.service.List(ctx, page)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, pagination.Pages)
}
