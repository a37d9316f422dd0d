package impl

import (
	"context"
	"log/slog"

	"agadev/config"
	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	"agadev/internal/domain/service"
	"agadev/internal/errors"
	"agadev/internal/usecase"
	"agadev/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// allowedMediaTypes are matched against the sniffed content, never the client's header.
var allowedMediaTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	repo          repository.MediaRepository
	storage       service.AssetStorage
	logger        *slog.Logger
	folder        string
	maxUploadSize int64
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(
	repo repository.MediaRepository,
	storage service.AssetStorage,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MediaUsecase {
	srv := &mediaService{
		repo:          repo,
		storage:       storage,
		logger:        logger,
		folder:        "agadev",
		maxUploadSize: 10 << 20,
	}
	if cfg.Assets != nil {
		if cfg.Assets.Folder != "" {
			srv.folder = cfg.Assets.Folder
		}
		if cfg.Assets.MaxUploadSize > 0 {
			srv.maxUploadSize = cfg.Assets.MaxUploadSize
		}
	}

	return srv
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return scopedLogger(ctx, srv.logger)
}

// Upload stores the payload remotely first, then records it. A failed record leaves an orphaned asset, which is logged.
func (srv *mediaService) Upload(ctx context.Context, uploaderID uuid.UUID, file usecase.UploadFile) (*entity.Media, error) {
	mimeType, err := srv.validate(file)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate media id")
	}
	key := srv.folder + "/" + id.String() + "-" + util.SanitizeFilename(file.OriginalFilename)

	url, err := srv.storage.Upload(ctx, key, file.Data, mimeType)
	if err != nil {
		srv.log(ctx).Error("Asset upload failed", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	media := &entity.Media{
		ID:               id,
		Filename:         key,
		OriginalFilename: file.OriginalFilename,
		URL:              url,
		MimeType:         mimeType,
		Size:             int64(len(file.Data)),
		UploadedBy:       uploaderID,
	}
	if err := srv.repo.Create(ctx, media); err != nil {
		srv.log(ctx).Error("Media record failed, asset orphaned",
			slog.String("key", key),
			slog.String("url", url),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	srv.log(ctx).Info("Media uploaded",
		slog.String("id", id.String()),
		slog.String("mime_type", mimeType),
		slog.String("size", util.FormatBytes(media.Size)),
	)

	return media, nil
}

func (srv *mediaService) validate(file usecase.UploadFile) (string, error) {
	if len(file.Data) == 0 {
		return "", domainerrors.ErrNoFileProvided
	}
	if int64(len(file.Data)) > srv.maxUploadSize {
		return "", domainerrors.ErrFileTooLarge.WithDetails(
			"limit is " + util.FormatBytes(srv.maxUploadSize),
		)
	}

	detected := mimetype.Detect(file.Data)
	for _, allowed := range allowedMediaTypes {
		if detected.Is(allowed) {
			return allowed, nil
		}
	}

	return "", domainerrors.ErrUnsupportedFileType.WithDetails("detected " + detected.String())
}

// UploadMultiple never fails as a whole once the batch size is accepted.
func (srv *mediaService) UploadMultiple(ctx context.Context, uploaderID uuid.UUID, files []usecase.UploadFile) ([]usecase.UploadResult, error) {
	if len(files) == 0 {
		return nil, domainerrors.ErrNoFileProvided
	}
	if len(files) > usecase.MaxFilesPerBatch {
		return nil, domainerrors.ErrTooManyFiles.WithDetails("at most 5 files per request")
	}

	results := make([]usecase.UploadResult, len(files))
	var g errgroup.Group
	for i, file := range files {
		g.Go(func() error {
			media, err := srv.Upload(ctx, uploaderID, file)
			results[i] = usecase.UploadResult{
				OriginalFilename: file.OriginalFilename,
				Media:            media,
				Err:              err,
			}

			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

func (srv *mediaService) List(ctx context.Context, page repository.Page) ([]*entity.Media, usecase.Pagination, error) {
	items, total, err := srv.repo.List(ctx, page)
	if err != nil {
		return nil, usecase.Pagination{}, errors.Wrap(err, "failed to list media")
	}

	return items, usecase.NewPagination(page, total), nil
}

func (srv *mediaService) Delete(ctx context.Context, id uuid.UUID) error {
	media, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return domainerrors.ErrMediaNotFound
		}

		return errors.Wrap(err, "failed to find media")
	}

	if srv.storage.Enabled() {
		if err := srv.storage.Delete(ctx, media.Filename); err != nil {
			srv.log(ctx).Warn("Remote asset delete failed, asset orphaned",
				slog.String("key", media.Filename),
				slog.Any("error", err),
			)
		}
	}

	if err := srv.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return domainerrors.ErrMediaNotFound
		}

		return errors.Wrap(err, "failed to delete media")
	}

	return nil
}
