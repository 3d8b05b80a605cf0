// Package middleware contains HTTP-delivery middleware: the request identity
// resolver and the centralized error handler.
package middleware

import (
	"strings"

	deliverycontext "tasktrack/internal/delivery/context"
	"tasktrack/internal/delivery/http/response"
	"tasktrack/internal/domain/repository"
	"tasktrack/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the request identity from the bearer token. It runs
// once per protected request, synchronously before the handler: validate the
// token, then look the subject up in the credential store so a token for a
// deleted identity is rejected.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and injects the resolved identity
// into the request context. Every failure mode here (missing header, wrong
// scheme, malformed/tampered/expired token, unknown subject) produces the
// same generic 401 so callers learn nothing about which check failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.UnauthorizedBearer(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.UnauthorizedBearer(c)
		}

		username, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.UnauthorizedBearer(c)
		}

		user, err := m.userRepo.FindByUsername(c.Request().Context(), username)
		if err != nil {
			// Covers an identity deleted after the token was issued; any
			// store failure is also treated as unauthorized rather than
			// leaking state through a 500.
			return response.UnauthorizedBearer(c)
		}

		deliverycontext.SetIdentity(c, user)

		return next(c)
	}
}
