package middleware

import (
	"strings"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware attaches the caller's identity to the request context.
type AuthMiddleware struct {
	identity usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate rejects the request unless it carries a credential for an active user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		identity, err := m.identity.ResolveMandatory(req.Context(), credentialFrom(c))
		if err != nil {
			return err
		}

		c.SetRequest(req.WithContext(deliverycontext.WithIdentity(req.Context(), identity)))

		return next(c)
	}
}

// OptionalAuthenticate attaches the identity when one can be resolved and
// otherwise lets the request continue anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		if identity := m.identity.ResolveOptional(req.Context(), credentialFrom(c)); identity != nil {
			c.SetRequest(req.WithContext(deliverycontext.WithIdentity(req.Context(), identity)))
		}

		return next(c)
	}
}

// credentialFrom strips the Bearer prefix from the Authorization header. A header
// with another scheme is passed through whole and fails validation.
func credentialFrom(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)

	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}
