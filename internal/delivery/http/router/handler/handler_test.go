package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agadev/config"
	deliverycontext "agadev/internal/delivery/context"
	"agadev/internal/delivery/http/validator"
	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	"agadev/internal/errors"
	mockusecase "agadev/internal/mocks/usecase"
	"agadev/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContext(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestNewsHandler_ListPublished_SelectsLanguageAndPage(t *testing.T) {
	uc := mockusecase.NewMockNewsUsecase(t)
	published := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	items := []*entity.News{{
		ID:          7,
		TitleFR:     "Inauguration",
		TitleEN:     "Opening",
		ExcerptFR:   "Résumé",
		ExcerptEN:   "Summary",
		Slug:        "inauguration",
		Published:   true,
		PublishedAt: &published,
	}}
	page := repository.Page{Number: 2, Limit: 100}
	uc.EXPECT().ListPublished(mock.Anything, page).Return(items, usecase.NewPagination(page, 101), nil)

	c, rec := newContext(http.MethodGet, "/api/news?page=2&limit=500&lang=en", "")
	require.NoError(t, NewNewsHandler(uc).ListPublished(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	news := body["news"].([]any)[0].(map[string]any)
	assert.Equal(t, "Opening", news["title"])
	assert.Equal(t, "Summary", news["excerpt"])
	assert.NotContains(t, news, "title_fr")
	assert.Equal(t, map[string]any{"page": float64(2), "limit": float64(100), "total": float64(101), "pages": float64(2)}, body["pagination"])
}

func TestNewsHandler_Update_PassesOnlySuppliedFields(t *testing.T) {
	uc := mockusecase.NewMockNewsUsecase(t)
	uc.EXPECT().Update(mock.Anything, int64(3), mock.MatchedBy(func(in usecase.NewsInput) bool {
		return in.TitleFR == nil && in.Published != nil && !*in.Published && in.AutoTranslate
	})).Return(&entity.News{ID: 3, Slug: "x"}, nil)

	c, rec := newContext(http.MethodPut, "/api/news/3", `{"published":false,"auto_translate":true}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, NewNewsHandler(uc).Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewsHandler_SetPublished_RequiresFlag(t *testing.T) {
	uc := mockusecase.NewMockNewsUsecase(t)

	c, _ := newContext(http.MethodPatch, "/api/news/3/publish", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := NewNewsHandler(uc).SetPublished(c)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "published", validationErr.Fields[0].Field)
}

func TestNewsHandler_RejectsNonNumericID(t *testing.T) {
	c, _ := newContext(http.MethodDelete, "/api/news/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := NewNewsHandler(mockusecase.NewMockNewsUsecase(t)).Delete(c)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestProjectHandler_Create_ParsesDates(t *testing.T) {
	uc := mockusecase.NewMockProjectUsecase(t)
	uc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in usecase.ProjectInput) bool {
		return in.StartDate != nil && in.StartDate.Equal(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)) &&
			in.Status != nil && *in.Status == entity.ProjectStatusPlanned &&
			in.Budget != nil && *in.Budget == 250000
	})).RunAndReturn(func(_ context.Context, in usecase.ProjectInput) (*entity.Project, error) {
		return &entity.Project{ID: 1, TitleFR: *in.TitleFR, Slug: "forage", Status: *in.Status, StartDate: in.StartDate}, nil
	})

	c, rec := newContext(http.MethodPost, "/api/projects",
		`{"title_fr":"Forage","content_fr":"Puits","status":"planned","start_date":"2026-01-15","budget":250000}`)

	require.NoError(t, NewProjectHandler(uc).Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "2026-01-15", decodeBody(t, rec)["project"].(map[string]any)["start_date"])
}

func TestProjectHandler_Create_RejectsBadInput(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/api/projects",
		`{"title_fr":"Forage","content_fr":"Puits","status":"archived","budget":-3}`)

	err := NewProjectHandler(mockusecase.NewMockProjectUsecase(t)).Create(c)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Fields, 2)

	c, _ = newContext(http.MethodPost, "/api/projects",
		`{"title_fr":"Forage","content_fr":"Puits","end_date":"15/01/2026"}`)

	err = NewProjectHandler(mockusecase.NewMockProjectUsecase(t)).Create(c)
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "end_date", validationErr.Fields[0].Field)
}

func TestProjectHandler_ListPublished_RejectsUnknownStatus(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/api/projects?status=archived", "")

	err := NewProjectHandler(mockusecase.NewMockProjectUsecase(t)).ListPublished(c)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func multipartContext(t *testing.T, target, field string, files map[string][]byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, data := range files {
		part, err := writer.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetIdentity(c, entity.Identity{UserID: uuid.MustParse("0190f5a4-0000-7000-8000-000000000001"), Role: entity.RoleEditor})

	return c, rec
}

func TestMediaHandler_UploadMultiple_ReportsEachFile(t *testing.T) {
	cfg := &config.Config{Assets: &config.AssetsConfig{MaxUploadSize: 16}}
	uc := mockusecase.NewMockMediaUsecase(t)
	uc.EXPECT().UploadMultiple(mock.Anything, mock.Anything, mock.MatchedBy(func(files []usecase.UploadFile) bool {
		return len(files) == 1 && files[0].OriginalFilename == "ok.png"
	})).Return([]usecase.UploadResult{{
		OriginalFilename: "ok.png",
		Media:            &entity.Media{ID: uuid.New(), OriginalFilename: "ok.png", URL: "#"},
	}}, nil)

	c, rec := multipartContext(t, "/api/media/upload-multiple", "files", map[string][]byte{
		"ok.png":  []byte("small"),
		"big.pdf": bytes.Repeat([]byte("x"), 64),
	})

	require.NoError(t, NewMediaHandler(uc, cfg).UploadMultiple(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["uploaded"])
	assert.Equal(t, float64(1), body["failed"])

	byName := map[string]map[string]any{}
	for _, f := range body["files"].([]any) {
		entry := f.(map[string]any)
		byName[entry["original_filename"].(string)] = entry
	}
	assert.Equal(t, true, byName["ok.png"]["success"])
	assert.Equal(t, false, byName["big.pdf"]["success"])
	assert.Equal(t, domainerrors.ErrFileTooLarge.ErrorCode(), byName["big.pdf"]["code"])
}

func TestMediaHandler_UploadMultiple_TooManyFiles(t *testing.T) {
	files := map[string][]byte{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		files[name+".png"] = []byte(name)
	}
	c, _ := multipartContext(t, "/api/media/upload-multiple", "files", files)

	err := NewMediaHandler(mockusecase.NewMockMediaUsecase(t), &config.Config{}).UploadMultiple(c)

	assert.True(t, errors.Is(err, domainerrors.ErrTooManyFiles))
}

func TestMediaHandler_Upload_MissingFile(t *testing.T) {
	c, _ := multipartContext(t, "/api/media/upload", "other", map[string][]byte{"a.png": []byte("a")})

	err := NewMediaHandler(mockusecase.NewMockMediaUsecase(t), &config.Config{}).Upload(c)

	assert.True(t, errors.Is(err, domainerrors.ErrNoFileProvided))
}

func TestAdminHandler_Dashboard(t *testing.T) {
	uc := mockusecase.NewMockAdminUsecase(t)
	uc.EXPECT().Dashboard(mock.Anything).Return(&usecase.DashboardOutput{
		News:     repository.ContentStats{Total: 4, Published: 3},
		Projects: repository.ContentStats{Total: 2, Published: 1},
		Media:    9,
	}, nil)

	c, rec := newContext(http.MethodGet, "/api/admin/dashboard", "")
	require.NoError(t, NewAdminHandler(uc).Dashboard(c))

	stats := decodeBody(t, rec)["stats"].(map[string]any)
	assert.Equal(t, float64(9), stats["media"])
	assert.Equal(t, float64(3), stats["news"].(map[string]any)["published"])
}

func TestAuthHandler_Me_RequiresIdentity(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/api/auth/me", "")

	err := NewAuthHandler(mockusecase.NewMockAuthUsecase(t)).Me(c)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
