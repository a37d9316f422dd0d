package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agadev/config"
	httpmiddleware "agadev/internal/delivery/http/middleware"
	"agadev/internal/delivery/http/router"
	"agadev/internal/delivery/http/router/handler"
	"agadev/internal/domain/entity"
	"agadev/internal/domain/repository"
	"agadev/internal/domain/service"
	"agadev/internal/infra/auth"
	"agadev/internal/infra/persistence/model"
	"agadev/internal/infra/persistence/postgres"
	"agadev/internal/infra/pubsub"
	"agadev/internal/infra/qrcode"
	"agadev/internal/infra/revocation"
	"agadev/internal/infra/sanitize"
	"agadev/internal/infra/storage"
	"agadev/internal/infra/translation"
	"agadev/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	echo   *echo.Echo
	users  repository.AdminUserRepository
	hasher service.PasswordHasher
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.SecretKey.Access = "integration-secret"
	cfg.HTTP.MaxRequestBodySize = "2M"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost, TokenTTL: time.Hour}
	cfg.Assets = &config.AssetsConfig{Folder: "agadev", MaxUploadSize: 1 << 20}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)
	db := newTestDB(t)

	users := postgres.NewAdminUserRepository(db)
	newsRepo := postgres.NewNewsRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	mediaRepo := postgres.NewMediaRepository(db)

	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{Lc: lc, Ctx: context.Background(), Config: cfg, Logger: log})
	require.NoError(t, err)
	assets, err := storage.NewAssetStorage(storage.Params{Config: cfg, Logger: log, Lifecycle: lc})
	require.NoError(t, err)
	translator := translation.NewTranslator(translation.Params{Config: cfg, Logger: log})
	sanitizer := sanitize.NewHTMLSanitizer()
	qr := qrcode.NewQRCodeService(cfg)

	authUC := impl.NewAuthService(users, hasher, tokens, revocation.NewMemoryRevoker(nil), log)
	newsUC := impl.NewNewsService(newsRepo, translator, sanitizer, publisher, qr, log)
	projectUC := impl.NewProjectService(projectRepo, translator, sanitizer, publisher, qr, log)
	mediaUC := impl.NewMediaService(mediaRepo, assets, cfg, log)
	adminUC := impl.NewAdminService(postgres.NewTransactionManager(db), users, newsRepo, projectRepo, mediaRepo, cfg, log)

	routes := router.NewRouter(router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC),
		NewsHandler:    handler.NewNewsHandler(newsUC),
		ProjectHandler: handler.NewProjectHandler(projectUC),
		MediaHandler:   handler.NewMediaHandler(mediaUC, cfg),
		AdminHandler:   handler.NewAdminHandler(adminUC),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(authUC),
	})

	return &testApp{
		echo:   NewEcho(cfg, log, httpmiddleware.NewErrorMiddleware(log, cfg), routes),
		users:  users,
		hasher: hasher,
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func (a *testApp) seedUser(t *testing.T, username, password string, role entity.Role) *entity.AdminUser {
	t.Helper()

	hash, err := a.hasher.Hash(password)
	require.NoError(t, err)

	user := &entity.AdminUser{
		Username:     username,
		Email:        username + "@agadev-gabon.com",
		FullName:     "Test " + username,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	require.NoError(t, a.users.Create(context.Background(), user))

	return user
}

func (a *testApp) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func (a *testApp) login(t *testing.T, username, password string) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode(t, rec)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	return token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestServer_LoginThenCreateNews(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "admin", "admin-password", entity.RoleAdmin)

	rec := app.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "admin-password"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user := body["user"].(map[string]any)
	assert.Equal(t, "admin", user["role"])
	assert.NotContains(t, user, "password_hash")

	rec = app.do(t, http.MethodPost, "/api/news", map[string]string{"title_fr": "Essai", "content_fr": "Contenu"}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	news := decode(t, rec)["news"].(map[string]any)
	assert.Equal(t, "essai", news["slug"])
	assert.Equal(t, false, news["published"])
	assert.Equal(t, "", news["title_en"])
}

func TestServer_LoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "admin", "admin-password", entity.RoleAdmin)

	wrongPassword := app.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "nope"}, "")
	unknownUser := app.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "ghost", "password": "nope"}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, decode(t, wrongPassword)["error"], decode(t, unknownUser)["error"])
}

func TestServer_ProtectedRoutes(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "editor", "editor-password", entity.RoleEditor)
	editorToken := app.login(t, "editor", "editor-password")

	t.Run("missing token", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/auth/me", nil, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotEmpty(t, decode(t, rec)["error"])
	})

	t.Run("tampered token", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/auth/me", nil, editorToken+"x")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("editor on admin route", func(t *testing.T) {
		rec := app.do(t, http.MethodDelete, "/api/news/1", nil, editorToken)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Admin access required", decode(t, rec)["error"])
	})

	t.Run("editor on authenticated route", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/auth/me", nil, editorToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "editor", decode(t, rec)["user"].(map[string]any)["username"])
	})
}

func TestServer_PublicNewsOnlyShowsPublished(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "admin", "admin-password", entity.RoleAdmin)
	token := app.login(t, "admin", "admin-password")

	rec := app.do(t, http.MethodPost, "/api/news", map[string]any{
		"title_fr":   "Brouillon",
		"content_fr": "Pas encore",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/news", map[string]any{
		"title_fr":   "Lancement",
		"title_en":   "Launch",
		"content_fr": "<p>Bonjour</p><script>alert(1)</script>",
		"published":  true,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	published := decode(t, rec)["news"].(map[string]any)
	assert.NotContains(t, published["content_fr"], "<script>")
	assert.NotNil(t, published["publish_date"])

	rec = app.do(t, http.MethodGet, "/api/news", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	items := body["news"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Lancement", items[0].(map[string]any)["title"])
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pagination["total"])
	assert.Equal(t, float64(10), pagination["limit"])

	rec = app.do(t, http.MethodGet, "/api/news/lancement?lang=en", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Launch", decode(t, rec)["news"].(map[string]any)["title"])

	rec = app.do(t, http.MethodGet, "/api/news/brouillon", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/news/admin/all", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["news"].([]any), 2)
}

func TestServer_DuplicateSlugConflicts(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "admin", "admin-password", entity.RoleAdmin)
	token := app.login(t, "admin", "admin-password")

	payload := map[string]string{"title_fr": "Même titre", "description_fr": "Résumé", "content_fr": "Contenu"}

	first := app.do(t, http.MethodPost, "/api/projects", payload, token)
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	assert.Equal(t, "meme-titre", decode(t, first)["project"].(map[string]any)["slug"])
	assert.Equal(t, "active", decode(t, first)["project"].(map[string]any)["status"])

	second := app.do(t, http.MethodPost, "/api/projects", payload, token)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.NotEmpty(t, decode(t, second)["error"])
}

func TestServer_ValidationErrorShape(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "admin", "admin-password", entity.RoleAdmin)
	token := app.login(t, "admin", "admin-password")

	rec := app.do(t, http.MethodPost, "/api/news", map[string]string{}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errs := decode(t, rec)["errors"].([]any)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.(map[string]any)["field"].(string))
	}
	assert.ElementsMatch(t, []string{"title_fr", "content_fr"}, fields)

	rec = app.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username":  "ab",
		"email":     "not-an-email",
		"password":  "short",
		"full_name": "X",
		"role":      "owner",
	}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decode(t, rec)["errors"].([]any), 4)
}

func TestServer_LogoutRevokesToken(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "admin", "admin-password", entity.RoleAdmin)
	token := app.login(t, "admin", "admin-password")

	rec := app.do(t, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/auth/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_DeactivatedAccountIsRejectedImmediately(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "admin", "admin-password", entity.RoleAdmin)
	editor := app.seedUser(t, "editor", "editor-password", entity.RoleEditor)
	adminToken := app.login(t, "admin", "admin-password")
	editorToken := app.login(t, "editor", "editor-password")

	rec := app.do(t, http.MethodPatch, "/api/auth/users/"+editor.ID.String()+"/active", map[string]bool{"active": false}, adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, false, decode(t, rec)["user"].(map[string]any)["active"])

	rec = app.do(t, http.MethodGet, "/api/auth/me", nil, editorToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_OversizedUploadIsDomainError(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "editor", "editor-password", entity.RoleEditor)
	token := app.login(t, "editor", "editor-password")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "scan.pdf")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), 1<<20+1))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "FILE_TOO_LARGE", decode(t, rec)["code"])
}

func TestServer_MediaUploadWithoutAssetHost(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "admin", "admin-password", entity.RoleAdmin)
	token := app.login(t, "admin", "admin-password")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "Logo Agadev.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	media := decode(t, rec)["media"].(map[string]any)
	assert.Equal(t, storage.PlaceholderURL, media["url"])
	assert.Equal(t, "image/png", media["mime_type"])
	assert.Equal(t, "Logo Agadev.png", media["original_filename"])

	rec = app.do(t, http.MethodGet, "/api/media", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Len(t, body["media"].([]any), 1)
	assert.Equal(t, "admin", body["media"].([]any)[0].(map[string]any)["uploader_username"])
	assert.Equal(t, float64(50), body["pagination"].(map[string]any)["limit"])
}

func TestServer_HealthAndUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decode(t, rec)["status"])
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = app.do(t, http.MethodGet, "/does-not-exist", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode(t, rec)["error"])
}
