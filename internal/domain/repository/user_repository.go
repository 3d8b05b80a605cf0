// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tasktrack/internal/domain/entity"
)

// Domain-specific errors for user persistence. The application layer handles
// these outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when no user exists for the given username.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when a registration collides with an
	// existing username. The storage-level unique index is the authority; any
	// application-level pre-check is only a fast path.
	ErrDuplicateUsername = errors.New("username already taken")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves a single user by their unique username.
	// Returns ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. Returns ErrDuplicateUsername when the
	// username is already registered.
	Create(ctx context.Context, user *entity.User) error
}
