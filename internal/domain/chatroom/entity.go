package chatroom

import (
	"time"

	"github.com/google/uuid"
)

// ChatRoom represents the chat_rooms table
type ChatRoom struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Members []Member `gorm:"foreignKey:ChatRoomID"`
}

// Member represents the chat_room_members table. The composite primary key
// keeps the member set free of duplicate users.
type Member struct {
	ChatRoomID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	JoinedAt   time.Time
}

// MemberIDs returns the user ids of the member set.
func (c ChatRoom) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Members))
	for _, m := range c.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}

// HasMember reports whether userID is in the member set.
func (c ChatRoom) HasMember(userID uuid.UUID) bool {
	for _, m := range c.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}

func (Member) TableName() string {
	return "chat_room_members"
}
