package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"parley-chat/internal/domain/chatroom"
	"parley-chat/internal/domain/message"
	"parley-chat/internal/domain/user"
	parley_errors "parley-chat/pkg/errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedConfig holds configuration for seeding the database
type SeedConfig struct {
	Usernames []string
	Password  string
	RoomName  string
}

// DefaultSeedConfig returns default seed configuration
func DefaultSeedConfig() *SeedConfig {
	return &SeedConfig{
		Usernames: []string{"alice", "bob", "charlie"},
		Password:  "password123",
		RoomName:  "General",
	}
}

// SeedResult holds the result of the seeding operation
type SeedResult struct {
	Users    []*user.User
	Room     *chatroom.ChatRoom
	Messages []*message.Message
}

// Seed creates demo users, a shared room with everyone as a member, and a
// greeting message. Existing users are reused, so seeding is idempotent.
func Seed(db *gorm.DB, cfg *SeedConfig) (*SeedResult, error) {
	if cfg == nil {
		cfg = DefaultSeedConfig()
	}

	result := &SeedResult{}

	log.Println("Starting database seeding...")

	for _, username := range cfg.Usernames {
		u, err := seedUser(db, username, cfg.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", username, err)
		}
		result.Users = append(result.Users, u)
	}

	room, err := seedRoom(db, cfg.RoomName, result.Users)
	if err != nil {
		return nil, fmt.Errorf("failed to seed room: %w", err)
	}
	result.Room = room

	if len(result.Users) >= 2 {
		msg, err := seedGreeting(db, room, result.Users)
		if err != nil {
			return nil, fmt.Errorf("failed to seed message: %w", err)
		}
		result.Messages = append(result.Messages, msg)
	}

	log.Println("Database seeding completed successfully!")
	return result, nil
}

func seedUser(db *gorm.DB, username, password string) (*user.User, error) {
	var existing user.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		log.Printf("User %s already exists, skipping creation", username)
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}
	if err := db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, parley_errors.ErrAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

func seedRoom(db *gorm.DB, name string, users []*user.User) (*chatroom.ChatRoom, error) {
	var existing chatroom.ChatRoom
	err := db.Preload("Members").Where("name = ?", name).First(&existing).Error
	if err == nil {
		log.Printf("Room %s already exists, skipping creation", name)
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room := &chatroom.ChatRoom{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for _, u := range users {
		room.Members = append(room.Members, chatroom.Member{
			ChatRoomID: room.ID,
			UserID:     u.ID,
			JoinedAt:   time.Now(),
		})
	}
	if err := db.Create(room).Error; err != nil {
		return nil, err
	}
	return room, nil
}

func seedGreeting(db *gorm.DB, room *chatroom.ChatRoom, users []*user.User) (*message.Message, error) {
	sender := users[0]
	msg := &message.Message{
		ID:         uuid.New(),
		SenderID:   sender.ID,
		ChatRoomID: room.ID,
		Content:    "Hello everyone!",
		CreatedAt:  time.Now(),
	}
	for _, u := range users[1:] {
		msg.Recipients = append(msg.Recipients, message.Recipient{
			MessageID: msg.ID,
			UserID:    u.ID,
		})
	}
	if err := db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}
