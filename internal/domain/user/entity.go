package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents the users table. Accounts are created at signup and never
// mutated or deleted by this service.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
}

// AuthToken represents the auth_tokens table. One row per login; a user may
// hold several concurrent tokens. The opaque token itself is never stored,
// only its SHA-256 digest.
type AuthToken struct {
	TokenHash string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}
