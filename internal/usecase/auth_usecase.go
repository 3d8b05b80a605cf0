// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tasktrack/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// It is transient: the plaintext password lives only for the duration of the
// call and is never logged or persisted.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new identity. Fails with
	// domainerrors.ErrDuplicateUsername when the username is taken.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a bearer token. Unknown usernames
	// and wrong passwords both fail with domainerrors.ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
