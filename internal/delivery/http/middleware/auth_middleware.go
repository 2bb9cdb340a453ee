package middleware

import (
	"strings"

	"mercado/internal/delivery/http/response"
	"mercado/internal/domain/entity"
	"mercado/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyPrincipal is the echo context key the authenticated principal is
// stored under.
const ContextKeyPrincipal = "principal"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the resolved
// principal on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		principal, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(ContextKeyPrincipal, principal)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the principal holds at
// least the given role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(ContextKeyPrincipal).(entity.Principal)
			if !ok {
				return response.Forbidden(c, "MISSING_PRINCIPAL", "Permission denied: identity information missing")
			}

			if !principal.Roles.Highest().AtLeast(required) {
				return response.Forbidden(c, "INSUFFICIENT_ROLE", "Permission denied: require '"+required.String()+"' role")
			}

			return next(c)
		}
	}
}
