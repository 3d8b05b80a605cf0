package context

import (
	"context"

	"tasktrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for the identity resolved from the bearer token.
// The identity lives only for the duration of one request.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the resolved user on the echo context and the request's
// context.Context so both handlers and services can reach it.
func SetIdentity(c echo.Context, user *entity.User) {
	c.Set(string(KeyIdentity), user)

	ctx := context.WithValue(c.Request().Context(), KeyIdentity, user)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetIdentity extracts the resolved user from echo.Context.
// Returns nil when no identity has been resolved (unauthenticated route).
func GetIdentity(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyIdentity)).(*entity.User); ok {
		return user
	}

	return nil
}
