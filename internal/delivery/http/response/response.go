package response

import (
	"net/http"

	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Body is a success payload keyed by resource name, e.g. {"news": ...}.
type Body map[string]any

// OK 200 response
func OK(c echo.Context, body Body) error {
	return c.JSON(http.StatusOK, body)
}

// Created 201 response
func Created(c echo.Context, body Body) error {
	return c.JSON(http.StatusCreated, body)
}

// Paginated writes a list under key together with its pagination metadata.
func Paginated(c echo.Context, key string, items any, pagination usecase.Pagination) error {
	return c.JSON(http.StatusOK, Body{
		key:          items,
		"pagination": pagination,
	})
}

// Message writes {"message": message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Body{"message": message})
}

// Error writes the uniform failure body.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error:   message,
		Code:    errorCode,
		Details: details,
	})
}

// ValidationFailed 400 response listing every rejected field.
func ValidationFailed(c echo.Context, fields []domainerrors.FieldError) error {
	if fields == nil {
		fields = []domainerrors.FieldError{}
	}

	return c.JSON(http.StatusBadRequest, domainerrors.ValidationErrorResponse{Errors: fields})
}

// PNG writes an inline image.
func PNG(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, "image/png", data)
}
