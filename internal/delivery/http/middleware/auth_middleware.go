package middleware

import (
	"strings"

	deliverycontext "agadev/internal/delivery/context"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/entity"
	"agadev/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate resolves the bearer token into an identity and attaches it to the request.
// Handlers behind it never look at the token again.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		identity, err := m.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole admits only identities holding one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	denied := domainerrors.ErrForbidden
	if len(roles) == 1 && roles[0] == entity.RoleAdmin {
		denied = domainerrors.ErrAdminRequired
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}

			if !identity.HasRole(roles...) {
				return denied
			}

			return next(c)
		}
	}
}

// RequireAdmin is RequireRole(entity.RoleAdmin).
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.RequireRole(entity.RoleAdmin)
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
