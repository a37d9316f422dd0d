package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"agadev/config"
	deliverycontext "agadev/internal/delivery/context"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthPath = "/health"

// LoggerMiddleware writes one access line per request. Lines for authenticated
// requests carry the acting account so admin writes can be traced back to a user.
type LoggerMiddleware struct {
	logger  *slog.Logger
	verbose bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		verbose: cfg.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := responseStatus(c, err)

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	// Set by the auth middleware further down the chain.
	if identity, ok := deliverycontext.GetIdentity(c); ok {
		fields = append(fields,
			slog.String("user_id", identity.UserID.String()),
			slog.String("role", identity.Role.String()),
		)
	}

	if m.verbose {
		fields = append(fields, slog.String("user_agent", req.UserAgent()))
		if req.URL.RawQuery != "" {
			fields = append(fields, slog.String("query", req.URL.RawQuery))
		}
	}

	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			fields = append(fields, slog.String("error_code", appErr.ErrorCode()))
		}
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	case req.URL.Path == healthPath:
		level = slog.LevelDebug
	}

	m.logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}

// responseStatus predicts the status the error handler will write, since it runs
// only after the middleware chain has returned.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
