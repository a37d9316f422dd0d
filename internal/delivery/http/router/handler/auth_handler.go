// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"agadev/internal/delivery/http/response"
	"agadev/internal/domain/entity"
	"agadev/internal/errors"
	"agadev/internal/usecase"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin editor"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{
		"message":    "Login successful",
		"token":      output.Token,
		"expires_at": output.ExpiresAt.UTC().Format(time.RFC3339),
		"user":       newUserView(output.User),
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	user, err := h.uc.Me(c.Request().Context(), id.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{"user": newUserView(user)})
}

// ChangePassword handles POST /api/auth/change-password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		UserID:          id.UserID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Password changed successfully")
}

// Register handles POST /api/auth/register (admin only).
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, response.Body{
		"message": "User created successfully",
		"user":    newUserView(user),
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Successfully logged out")
}

// ListUsers handles GET /api/auth/users (admin only).
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{"users": newUserViews(users)})
}

// SetActive handles PATCH /api/auth/users/:id/active (admin only).
func (h *AuthHandler) SetActive(c echo.Context) error {
	actor, err := identity(c)
	if err != nil {
		return err
	}

	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req setActiveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.SetActive(c.Request().Context(), actor, userID, *req.Active)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Body{"user": newUserView(user)})
}
