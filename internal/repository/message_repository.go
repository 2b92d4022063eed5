package repository

import (
	"context"
	"errors"

	"parley-chat/internal/domain/message"
	parley_errors "parley-chat/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &PostgresMessageRepository{db: db}
}

// Create inserts the message row and its recipient rows. Callers that need
// atomicity run this inside a transaction-scoped repository.
func (r *PostgresMessageRepository) Create(ctx context.Context, msg *message.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *PostgresMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (message.Message, error) {
	var msg message.Message
	err := r.db.WithContext(ctx).
		Preload("Recipients").
		Where("id = ?", id).
		First(&msg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return message.Message{}, parley_errors.ErrNotFound
		}
		return message.Message{}, err
	}
	return msg, nil
}

func (r *PostgresMessageRepository) ListByChatRoom(ctx context.Context, chatRoomID uuid.UUID) ([]message.Message, error) {
	var messages []message.Message
	err := r.db.WithContext(ctx).
		Preload("Recipients").
		Where("chat_room_id = ?", chatRoomID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
