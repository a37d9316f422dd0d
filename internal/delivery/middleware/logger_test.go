package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"agadev/config"
	deliverycontext "agadev/internal/delivery/context"
	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	return line
}

func TestLoggerMiddleware_IncludesAuthenticatedAccount(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(newCapturingLogger(&buf), &config.Config{})
	userID := uuid.MustParse("0190f5a4-0000-7000-8000-000000000042")

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/news/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/news/:id")

	handler := mw.Handle(func(c echo.Context) error {
		deliverycontext.SetIdentity(c, entity.Identity{UserID: userID, Role: entity.RoleEditor})

		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, handler(c))

	line := decodeLine(t, &buf)
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, float64(http.StatusNoContent), line["status"])
	assert.Equal(t, "/api/news/:id", line["route"])
	assert.Equal(t, userID.String(), line["user_id"])
	assert.Equal(t, "editor", line["role"])
	assert.NotContains(t, line, "user_agent")
}

func TestLoggerMiddleware_AnonymousRequestHasNoAccount(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(newCapturingLogger(&buf), cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/news?lang=en", nil)
	req.Header.Set("User-Agent", "site-frontend")
	c := e.NewContext(req, httptest.NewRecorder())

	require.NoError(t, mw.Handle(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c))

	line := decodeLine(t, &buf)
	assert.NotContains(t, line, "user_id")
	assert.NotContains(t, line, "role")
	assert.Equal(t, "site-frontend", line["user_agent"])
	assert.Equal(t, "lang=en", line["query"])
}

func TestLoggerMiddleware_StatusFollowsReturnedError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		level     string
		errorCode string
	}{
		{
			name:      "domain error",
			err:       domainerrors.ErrNewsNotFound,
			status:    http.StatusNotFound,
			level:     "WARN",
			errorCode: "NEWS_NOT_FOUND",
		},
		{
			name:   "echo error",
			err:    echo.NewHTTPError(http.StatusRequestEntityTooLarge),
			status: http.StatusRequestEntityTooLarge,
			level:  "WARN",
		},
		{
			name:   "unexpected error",
			err:    assert.AnError,
			status: http.StatusInternalServerError,
			level:  "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := NewLoggerMiddleware(newCapturingLogger(&buf), &config.Config{})

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/news/missing", nil), httptest.NewRecorder())

			err := mw.Handle(func(echo.Context) error { return tt.err })(c)
			assert.ErrorIs(t, err, tt.err)

			line := decodeLine(t, &buf)
			assert.Equal(t, float64(tt.status), line["status"])
			assert.Equal(t, tt.level, line["level"])
			if tt.errorCode != "" {
				assert.Equal(t, tt.errorCode, line["error_code"])
			} else {
				assert.NotContains(t, line, "error_code")
			}
		})
	}
}

func TestLoggerMiddleware_HealthCheckIsDebug(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(newCapturingLogger(&buf), &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

	require.NoError(t, mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c))

	assert.Equal(t, "DEBUG", decodeLine(t, &buf)["level"])
}
