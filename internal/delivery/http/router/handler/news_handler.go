package handler

import (
	"net/http"

	"agadev/internal/delivery/http/response"
	"agadev/internal/errors"
	"agadev/internal/usecase"

	"github.com/labstack/echo/v4"
)

// newsRequest is shared by create and update; omitted fields keep their stored value on update.
type newsRequest struct {
	TitleFR       *string `json:"title_fr" validate:"omitempty,max=255"`
	TitleEN       *string `json:"title_en" validate:"omitempty,max=255"`
	ContentFR     *string `json:"content_fr"`
	ContentEN     *string `json:"content_en"`
	ExcerptFR     *string `json:"excerpt_fr"`
	ExcerptEN     *string `json:"excerpt_en"`
	Slug          *string `json:"slug" validate:"omitempty,max=255"`
	CoverImageURL *string `json:"cover_image_url"`
	Published     *bool   `json:"published"`
	AutoTranslate bool    `json:"auto_translate"`
}

func (r newsRequest) input() usecase.NewsInput {
	return usecase.NewsInput{
		TitleFR:       r.TitleFR,
		TitleEN:       r.TitleEN,
		ContentFR:     r.ContentFR,
		ContentEN:     r.ContentEN,
		ExcerptFR:     r.ExcerptFR,
		ExcerptEN:     r.ExcerptEN,
		Slug:          r.Slug,
		CoverImageURL: r.CoverImageURL,
		Published:     r.Published,
		AutoTranslate: r.AutoTranslate,
	}
}

type publishRequest struct {
	Published *bool `json:"published" validate:"required"`
}

// NewsHandler serves the public and admin news endpoints.
type NewsHandler struct {
	uc usecase.NewsUsecase
}

// NewNewsHandler is the constructor for NewsHandler, injected by Fx.
func NewNewsHandler(uc usecase.NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// ListPublished handles GET /api/news.
func (h *NewsHandler) ListPublished(c echo.Context) error {
	items, pagination, err := h.uc.ListPublished(c.Request().Context(), pageParam(c, usecase.DefaultPublicPageSize))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, "news", newPublicNewsViews(items, langParam(c)), pagination)
}

// GetPublished handles GET /api/news/:slug.
func (h *NewsHandler) GetPublished(c echo.Context) error {
	news, err := h.uc.GetPublished(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{"news": newPublicNewsView(news, langParam(c))})
}

// QRCode handles GET /api/news/:slug/qrcode.
func (h *NewsHandler) QRCode(c echo.Context) error {
	png, err := h.uc.QRCode(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}

// ListAll handles GET /api/news/admin/all.
func (h *NewsHandler) ListAll(c echo.Context) error {
	items, pagination, err := h.uc.ListAll(c.Request().Context(), pageParam(c, usecase.DefaultAdminPageSize))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, "news", newNewsViews(items), pagination)
}

// Get handles GET /api/news/admin/:id.
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	news, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{"news": newNewsView(news)})
}

// Create handles POST /api/news.
func (h *NewsHandler) Create(c echo.Context) error {
	var req newsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	news, err := h.uc.Create(c.Request().Context(), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, response.Body{"news": newNewsView(news)})
}

// Update handles PUT /api/news/:id.
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	var req newsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	news, err := h.uc.Update(c.Request().Context(), id, req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{"news": newNewsView(news)})
}

// SetPublished handles PATCH /api/news/:id/publish.
func (h *NewsHandler) SetPublished(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	var req publishRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	news, err := h.uc.SetPublished(c.Request().Context(), id, *req.Published)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{"news": newNewsView(news)})
}

// Delete handles DELETE /api/news/:id (admin only).
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "News deleted successfully")
}
