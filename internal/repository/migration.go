package repository

import (
	"fmt"

	"gorm.io/gorm"

	"parley-chat/internal/domain/chatroom"
	"parley-chat/internal/domain/message"
	"parley-chat/internal/domain/user"
)

// InitSchema handles the database schema migration.
// It creates necessary extensions and runs Gorm auto-migration.
func InitSchema(db *gorm.DB) error {
	// Note: Creating extensions usually requires superuser privileges.
	// If this fails, ensure the extension is pre-installed or the user has permissions.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("failed to create extension: %w", err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&user.AuthToken{},
		&chatroom.ChatRoom{},
		&chatroom.Member{},
		&message.Message{},
		&message.Recipient{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	return nil
}
