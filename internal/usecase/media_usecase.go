package usecase

import (
	"context"

	"agadev/internal/domain/entity"
	"agadev/internal/domain/repository"

	"github.com/google/uuid"
)

// MaxFilesPerBatch bounds upload-multiple.
const MaxFilesPerBatch = 5

// UploadFile is one received file, fully buffered in memory.
type UploadFile struct {
	OriginalFilename string
	Data             []byte
}

// UploadResult reports the outcome of one file in a batch.
type UploadResult struct {
	OriginalFilename string
	Media            *entity.Media
	Err              error
}

// MediaUsecase defines the media library operations.
type MediaUsecase interface {
	Upload(ctx context.Context, uploaderID uuid.UUID, file UploadFile) (*entity.Media, error)
	// UploadMultiple uploads concurrently and reports each file separately.
	UploadMultiple(ctx context.Context, uploaderID uuid.UUID, files []UploadFile) ([]UploadResult, error)
	List(ctx context.Context, page repository.Page) ([]*entity.Media, Pagination, error)
	// Delete removes the metadata; the remote asset is deleted best-effort.
	Delete(ctx context.Context, id uuid.UUID) error
}
