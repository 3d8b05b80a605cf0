// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the stored identity of a registered account. The username is the
// login identifier and is immutable after registration; PasswordHash is an
// opaque bcrypt string and must never leave the persistence/auth layers.
type User struct {
	ID           uuid.UUID // The unique identifier for the user record.
	Username     string    // Case-sensitive login identifier, unique across all users.
	PasswordHash string    // Salted bcrypt hash of the user's password.
	CreatedAt    time.Time // Timestamp of when this account was registered.
}
