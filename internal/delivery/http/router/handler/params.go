package handler

import (
	"strconv"
	"strings"
	"time"

	deliverycontext "agadev/internal/delivery/context"
	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	"agadev/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// bindAndValidate decodes the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrBadRequest.WithDetails(err.Error())
	}

	return c.Validate(req)
}

// pageParam reads ?page and ?limit, falling back to defaultLimit.
func pageParam(c echo.Context, defaultLimit int) repository.Page {
	number, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return usecase.NormalizePage(number, limit, defaultLimit)
}

func langParam(c echo.Context) entity.Lang {
	return entity.ParseLang(c.QueryParam("lang"))
}

func int64Param(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, domainerrors.NewValidationError(domainerrors.FieldError{Field: name, Message: "must be a positive integer"})
	}

	return id, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: name, Message: "must be a valid identifier"})
	}

	return id, nil
}

// identity returns the principal attached by the auth middleware.
func identity(c echo.Context) (entity.Identity, error) {
	id, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return entity.Identity{}, domainerrors.ErrUnauthenticated
	}

	return id, nil
}

// parseDate accepts 2006-01-02 or RFC 3339. Blank input yields nil.
func parseDate(field string, value *string) (*time.Time, *domainerrors.FieldError) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}

	raw := strings.TrimSpace(*value)
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	return nil, &domainerrors.FieldError{Field: field, Message: "must be a date (YYYY-MM-DD)"}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.Format(dateLayout)

	return &s
}
