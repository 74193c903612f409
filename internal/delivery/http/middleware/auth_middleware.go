package middleware

import (
	"strings"

	"backoffice/config"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// userContextKey is the echo context key the resolved user lives under.
const userContextKey = "user"

// AuthMiddleware provides middleware for token authentication and
// write-role authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, cfg: cfg}
}

// Authenticate validates the bearer token, resolves the subject to a
// live user, and attaches it to the request context. Every failure mode
// answers 401: missing or malformed header, bad token, unknown subject,
// inactive account.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil || !user.Active {
			return response.Unauthorized(c, "UNAUTHORIZED", "Unknown or inactive user")
		}

		c.Set(userContextKey, user)

		return next(c)
	}
}

// RequireWriteRole gates mutating endpoints. With role enforcement
// disabled every authenticated user passes; otherwise the user's
// normalized role set must intersect the configured allow-list. This
// answers 403, distinct from the 401s of Authenticate, and must run
// after it.
func (m *AuthMiddleware) RequireWriteRole(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.cfg.Auth == nil || !m.cfg.Auth.EnforceRoles {
			return next(c)
		}

		user, ok := CurrentUser(c)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: user information missing")
		}

		if !user.Roles().ContainsAny(m.cfg.Auth.WriteRoles) {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: write role required")
		}

		return next(c)
	}
}

// CurrentUser returns the authenticated user attached by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(userContextKey).(*entity.User)

	return user, ok
}
