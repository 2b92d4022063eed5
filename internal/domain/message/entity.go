package message

import (
	"time"

	"github.com/google/uuid"
)

// Message represents the messages table. Rows are immutable once created;
// CreatedAt is assigned at persistence time and defines the only ordering.
type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ChatRoomID uuid.UUID `gorm:"type:uuid;index;not null"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time

	// Relationships
	Recipients []Recipient `gorm:"foreignKey:MessageID"`
}

// Recipient represents the message_recipients table. The receiver set is
// optional and distinct from chat-room membership.
type Recipient struct {
	MessageID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// RecipientIDs returns the user ids of the receiver set.
func (m Message) RecipientIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m.Recipients))
	for _, r := range m.Recipients {
		ids = append(ids, r.UserID)
	}
	return ids
}

func (Message) TableName() string {
	return "messages"
}

func (Recipient) TableName() string {
	return "message_recipients"
}
