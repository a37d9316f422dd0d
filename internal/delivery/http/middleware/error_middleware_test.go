package middleware

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		production  bool
		wantStatus  int
		wantError   string
		wantDetails string
	}{
		{
			name:       "app error",
			err:        errors.WithStack(domainerrors.ErrNewsNotFound),
			wantStatus: http.StatusNotFound,
			wantError:  "News not found",
		},
		{
			name:       "conflict keeps domain message",
			err:        domainerrors.ErrUserAlreadyExists.WrapMessage("insert admin user"),
			wantStatus: http.StatusConflict,
			wantError:  "Username or email already exists",
		},
		{
			name:        "details outside production",
			err:         domainerrors.ErrUploadFailed.WithDetails("bucket unreachable"),
			wantStatus:  http.StatusInternalServerError,
			wantError:   "Upload failed",
			wantDetails: "bucket unreachable",
		},
		{
			name:       "details hidden in production",
			err:        domainerrors.ErrUploadFailed.WithDetails("bucket unreachable"),
			production: true,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Upload failed",
		},
		{
			name:        "unknown error",
			err:         errors.New("connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantError:   "Internal server error",
			wantDetails: "connection reset by peer",
		},
		{
			name:       "unknown error in production",
			err:        errors.New("connection reset by peer"),
			production: true,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantError:  "Request Entity Too Large",
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "Route not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t, tt.production)
			e.GET("/boom", func(echo.Context) error { return tt.err })

			rec := serve(e, http.MethodGet, "/boom", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := errorBody(t, rec)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantDetails, body.Details)
		})
	}
}

func TestErrorMiddleware_ValidationShape(t *testing.T) {
	e := newTestEcho(t, true)
	e.POST("/news", func(echo.Context) error {
		return errors.WithStack(domainerrors.NewValidationError(
			domainerrors.FieldError{Field: "title_fr", Message: "French title is required"},
			domainerrors.FieldError{Field: "content_fr", Message: "French content is required"},
		))
	})

	rec := serve(e, http.MethodPost, "/news", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body domainerrors.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []domainerrors.FieldError{
		{Field: "title_fr", Message: "French title is required"},
		{Field: "content_fr", Message: "French content is required"},
	}, body.Errors)
}
