package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces the values the HTTP layer stores on contexts.
type ContextKey string

const (
	// KeyRequestID holds the correlation id echoed in X-Request-Id and stamped on content events.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger holds the request-scoped logger used by handlers and use cases.
	KeyLogger ContextKey = "logger"

	maxRequestIDLength = 128
)

// NewRequestID returns a time-ordered id, the same UUID version used for accounts and media.
func NewRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// AcceptRequestID reports whether a client-supplied id can be reused as is.
// Only short ids made of letters, digits and . _ : - are kept, so the value is safe
// to echo in headers, logs and published event attributes.
func AcceptRequestID(raw string) bool {
	if raw == "" || len(raw) > maxRequestIDLength {
		return false
	}
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == ':', r == '-':
		default:
			return false
		}
	}

	return true
}

// SetRequestID stores the id on echo.Context and on the request context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), requestID)))
}

// GetRequestID returns the id assigned by the request id middleware, or "" outside a request.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// RequestIDFromContext returns the id carried by ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// LoggerFromContext returns the request-scoped logger, or fallback when ctx has none.
func LoggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
