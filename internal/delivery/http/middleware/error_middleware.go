package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"agadev/config"
	deliverycontext "agadev/internal/delivery/context"
	"agadev/internal/delivery/http/response"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.ValidationFailed(c, validationErr.Fields)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		details := appErr.Details()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
			if details == "" {
				details = err.Error()
			}
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), m.visible(details))

		return
	}

	// Unknown routes surface as echo.ErrNotFound from the router.
	if errors.Is(err, echo.ErrNotFound) {
		_ = response.Error(c, http.StatusNotFound, domainerrors.ErrRouteNotFound.ErrorCode(), domainerrors.ErrRouteNotFound.Message(), "")

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		} else if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}

		details := ""
		if httpErr.Internal != nil {
			details = httpErr.Internal.Error()
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, m.visible(details))

		return
	}

	m.logUnhandled(c, err)

	_ = response.Error(c, http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), m.visible(err.Error()))
}

// visible drops details in production.
func (m *ErrorMiddleware) visible(details string) string {
	if m.production {
		return ""
	}

	return details
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	logger := deliverycontext.LoggerFromContext(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
