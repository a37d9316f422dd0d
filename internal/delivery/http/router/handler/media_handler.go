package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"agadev/config"
	"agadev/internal/delivery/http/response"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/errors"
	"agadev/internal/usecase"
	"agadev/internal/util"

	"github.com/labstack/echo/v4"
)

const (
	singleFileField   = "file"
	multipleFileField = "files"
)

// uploadResultView reports one file of a batch.
type uploadResultView struct {
	OriginalFilename string     `json:"original_filename"`
	Success          bool       `json:"success"`
	Media            *mediaView `json:"media,omitempty"`
	Error            string     `json:"error,omitempty"`
	Code             string     `json:"code,omitempty"`
}

// MediaHandler serves the media library endpoints.
type MediaHandler struct {
	uc            usecase.MediaUsecase
	maxUploadSize int64
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uc usecase.MediaUsecase, cfg *config.Config) *MediaHandler {
	h := &MediaHandler{uc: uc, maxUploadSize: 10 << 20}
	if cfg.Assets != nil && cfg.Assets.MaxUploadSize > 0 {
		h.maxUploadSize = cfg.Assets.MaxUploadSize
	}

	return h
}

// Upload handles POST /api/media/upload with a single "file" part.
func (h *MediaHandler) Upload(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile(singleFileField)
	if err != nil {
		return domainerrors.ErrNoFileProvided
	}

	file, err := h.read(header)
	if err != nil {
		return err
	}

	media, err := h.uc.Upload(c.Request().Context(), id.UserID, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, response.Body{
		"message": "File uploaded successfully",
		"media":   newMediaView(media),
	})
}

// UploadMultiple handles POST /api/media/upload-multiple with up to five "files" parts.
// Each file succeeds or fails on its own.
func (h *MediaHandler) UploadMultiple(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return domainerrors.ErrNoFileProvided
	}

	headers := form.File[multipleFileField]
	if len(headers) == 0 {
		return domainerrors.ErrNoFileProvided
	}
	if len(headers) > usecase.MaxFilesPerBatch {
		return domainerrors.ErrTooManyFiles.WithDetails("at most 5 files per request")
	}

	views := make([]uploadResultView, len(headers))
	files := make([]usecase.UploadFile, 0, len(headers))
	// positions maps each file handed to the usecase back to its slot in views.
	positions := make([]int, 0, len(headers))
	for i, header := range headers {
		file, err := h.read(header)
		if err != nil {
			views[i] = failedUpload(header.Filename, err)

			continue
		}
		files = append(files, file)
		positions = append(positions, i)
	}

	if len(files) > 0 {
		results, err := h.uc.UploadMultiple(c.Request().Context(), id.UserID, files)
		if err != nil {
			return errors.WithStack(err)
		}
		for j, result := range results {
			if result.Err != nil {
				views[positions[j]] = failedUpload(result.OriginalFilename, result.Err)

				continue
			}
			view := newMediaView(result.Media)
			views[positions[j]] = uploadResultView{
				OriginalFilename: result.OriginalFilename,
				Success:          true,
				Media:            &view,
			}
		}
	}

	uploaded := 0
	for _, v := range views {
		if v.Success {
			uploaded++
		}
	}

	return response.OK(c, response.Body{
		"files":    views,
		"uploaded": uploaded,
		"failed":   len(views) - uploaded,
	})
}

// List handles GET /api/media.
func (h *MediaHandler) List(c echo.Context) error {
	items, pagination, err := h.uc.List(c.Request().Context(), pageParam(c, usecase.DefaultMediaPageSize))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, "media", newMediaViews(items), pagination)
}

// Delete handles DELETE /api/media/:id.
func (h *MediaHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Media deleted successfully")
}

// read buffers one part, stopping one byte past the limit.
func (h *MediaHandler) read(header *multipart.FileHeader) (usecase.UploadFile, error) {
	if header.Size > h.maxUploadSize {
		return usecase.UploadFile{}, domainerrors.ErrFileTooLarge.WithDetails("limit is " + util.FormatBytes(h.maxUploadSize))
	}

	src, err := header.Open()
	if err != nil {
		return usecase.UploadFile{}, domainerrors.ErrBadRequest.WithDetails(err.Error())
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.maxUploadSize+1))
	if err != nil {
		return usecase.UploadFile{}, domainerrors.ErrBadRequest.WithDetails(err.Error())
	}

	return usecase.UploadFile{OriginalFilename: header.Filename, Data: data}, nil
}

func failedUpload(filename string, err error) uploadResultView {
	view := uploadResultView{OriginalFilename: filename, Error: domainerrors.ErrUploadFailed.Message()}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		view.Error = appErr.Message()
		view.Code = appErr.ErrorCode()
	}

	return view
}
