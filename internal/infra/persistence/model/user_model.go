// Package model holds the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The unique index on username is the
// authority for duplicate registrations; the service layer's existence check
// is only a fast path.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex:idx_users_username;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	Tasks []TaskModel `gorm:"foreignKey:Owner;references:Username"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
