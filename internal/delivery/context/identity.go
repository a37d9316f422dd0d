package context

import (
	"context"
	"log/slog"

	"agadev/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the authenticated principal.
const KeyIdentity ContextKey = "identity"

// SetIdentity attaches the authenticated principal to both echo.Context and the request context.
// A request-scoped logger, when present, is narrowed to the acting account.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(string(KeyIdentity), identity)

	ctx := WithIdentity(c.Request().Context(), identity)
	if logger := LoggerFromContext(ctx, nil); logger != nil {
		ctx = WithLogger(ctx, logger.With(
			slog.String("user_id", identity.UserID.String()),
			slog.String("role", identity.Role.String()),
		))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetIdentity returns the principal attached by the auth middleware.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(entity.Identity)

	return identity, ok
}

// WithIdentity returns a new context carrying the principal.
func WithIdentity(ctx context.Context, identity entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// IdentityFromContext extracts the principal from a standard context.Context.
func IdentityFromContext(ctx context.Context) (entity.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(entity.Identity)

	return identity, ok
}
