package handler

import (
	"agadev/internal/delivery/http/response"
	"agadev/internal/errors"
	"agadev/internal/usecase"

	"github.com/labstack/echo/v4"
)

type fixCoversRequest struct {
	ImageURL        string `json:"image_url" validate:"omitempty,url"`
	PublishProjects bool   `json:"publish_projects"`
}

// AdminHandler serves the admin area and the maintenance endpoints.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Profile handles GET /api/admin/profile.
func (h *AdminHandler) Profile(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.Profile(c.Request().Context(), id.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{
		"user":        newUserView(profile.User),
		"permissions": profile.Permissions,
	})
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{
		"stats": response.Body{
			"news":     dashboard.News,
			"projects": dashboard.Projects,
			"media":    dashboard.Media,
		},
	})
}

// FixCovers handles POST /api/admin/maintenance/fix-covers (admin only).
func (h *AdminHandler) FixCovers(c echo.Context) error {
	var req fixCoversRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.uc.FixCovers(c.Request().Context(), usecase.FixCoversInput{
		ImageURL:        req.ImageURL,
		PublishProjects: req.PublishProjects,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{
		"message": "Missing covers fixed",
		"results": response.Body{
			"image_url":        result.ImageURL,
			"news_updated":     result.NewsUpdated,
			"projects_updated": result.ProjectsUpdated,
		},
	})
}

// MaintenanceStatus handles GET /api/admin/maintenance/status.
func (h *AdminHandler) MaintenanceStatus(c echo.Context) error {
	status, err := h.uc.MaintenanceStatus(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{
		"news":     status.News,
		"projects": status.Projects,
	})
}
