// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tasktrack/internal/delivery/http/response"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the JSON payload for POST /register.
type registerRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=1,max=255"`
	Password string `json:"password" form:"password" validate:"required,min=1,max=255"`
}

// loginRequest is the form (or JSON) payload for POST /token.
type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// userResponse is the public view of an identity. The password hash never
// appears in any response.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// tokenResponse mirrors the OAuth2 password-grant token payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "bind registration payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "validate registration payload")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, userResponse{
		ID:        output.User.ID,
		Username:  output.User.Username,
		CreatedAt: output.User.CreatedAt,
	}, "User registered successfully")
}

// Token handles the login request and issues a bearer token.
func (h *AuthHandler) Token(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "bind login payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "validate login payload")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	}, "Login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
