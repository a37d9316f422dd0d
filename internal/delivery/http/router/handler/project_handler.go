package handler

import (
	"net/http"

	"agadev/internal/delivery/http/response"
	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/errors"
	"agadev/internal/usecase"

	"github.com/labstack/echo/v4"
)

type projectRequest struct {
	TitleFR             *string  `json:"title_fr" validate:"omitempty,max=255"`
	TitleEN             *string  `json:"title_en" validate:"omitempty,max=255"`
	DescriptionFR       *string  `json:"description_fr"`
	DescriptionEN       *string  `json:"description_en"`
	ContentFR           *string  `json:"content_fr"`
	ContentEN           *string  `json:"content_en"`
	Slug                *string  `json:"slug" validate:"omitempty,max=255"`
	CoverImageURL       *string  `json:"cover_image_url"`
	PresentationFileURL *string  `json:"presentation_file_url"`
	Status              *string  `json:"status" validate:"omitempty,oneof=active completed planned"`
	StartDate           *string  `json:"start_date"`
	EndDate             *string  `json:"end_date"`
	Budget              *float64 `json:"budget" validate:"omitempty,gte=0"`
	Location            *string  `json:"location"`
	Partners            *string  `json:"partners"`
	Published           *bool    `json:"published"`
	AutoTranslate       bool     `json:"auto_translate"`
}

func (r projectRequest) input() (usecase.ProjectInput, error) {
	start, startErr := parseDate("start_date", r.StartDate)
	end, endErr := parseDate("end_date", r.EndDate)

	var fields []domainerrors.FieldError
	for _, fe := range []*domainerrors.FieldError{startErr, endErr} {
		if fe != nil {
			fields = append(fields, *fe)
		}
	}
	if len(fields) > 0 {
		return usecase.ProjectInput{}, domainerrors.NewValidationError(fields...)
	}

	var status *entity.ProjectStatus
	if r.Status != nil && *r.Status != "" {
		s := entity.ProjectStatus(*r.Status)
		status = &s
	}

	return usecase.ProjectInput{
		TitleFR:             r.TitleFR,
		TitleEN:             r.TitleEN,
		DescriptionFR:       r.DescriptionFR,
		DescriptionEN:       r.DescriptionEN,
		ContentFR:           r.ContentFR,
		ContentEN:           r.ContentEN,
		Slug:                r.Slug,
		CoverImageURL:       r.CoverImageURL,
		PresentationFileURL: r.PresentationFileURL,
		Status:              status,
		StartDate:           start,
		EndDate:             end,
		Budget:              r.Budget,
		Location:            r.Location,
		Partners:            r.Partners,
		Published:           r.Published,
		AutoTranslate:       r.AutoTranslate,
	}, nil
}

// ProjectHandler serves the public and admin project endpoints.
type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// ListPublished handles GET /api/projects, optionally filtered by ?status.
func (h *ProjectHandler) ListPublished(c echo.Context) error {
	status := entity.ProjectStatus(c.QueryParam("status"))
	if status != "" && !status.IsValid() {
		return domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "status",
			Message: "must be one of: active, completed, planned",
		})
	}

	items, pagination, err := h.uc.ListPublished(c.Request().Context(), pageParam(c, usecase.DefaultPublicPageSize), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, "projects", newPublicProjectViews(items, langParam(c)), pagination)
}

// GetPublished handles GET /api/projects/:slug.
func (h *ProjectHandler) GetPublished(c echo.Context) error {
	project, err := h.uc.GetPublished(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{"project": newPublicProjectView(project, langParam(c))})
}

// QRCode handles GET /api/projects/:slug/qrcode.
func (h *ProjectHandler) QRCode(c echo.Context) error {
	png, err := h.uc.QRCode(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}

// ListAll handles GET /api/projects/admin/all.
func (h *ProjectHandler) ListAll(c echo.Context) error {
	items, pagination, err := h.uc.ListAll(c.Request().Context(), pageParam(c, usecase.DefaultAdminPageSize))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, "projects", newProjectViews(items), pagination)
}

// Get handles GET /api/projects/admin/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	project, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{"project": newProjectView(project)})
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.input()
	if err != nil {
		return err
	}

	project, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, response.Body{"project": newProjectView(project)})
}

// Update handles PUT /api/projects/:id.
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	var req projectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.input()
	if err != nil {
		return err
	}

	project, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{"project": newProjectView(project)})
}

// SetPublished handles PATCH /api/projects/:id/publish.
func (h *ProjectHandler) SetPublished(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	var req publishRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.uc.SetPublished(c.Request().Context(), id, *req.Published)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{"project": newProjectView(project)})
}

// Delete handles DELETE /api/projects/:id (admin only).
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Project deleted successfully")
}
