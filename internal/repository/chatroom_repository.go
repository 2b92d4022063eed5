package repository

import (
	"context"
	"errors"

	"parley-chat/internal/domain/chatroom"
	parley_errors "parley-chat/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresChatRoomRepository struct {
	db *gorm.DB
}

func NewChatRoomRepository(db *gorm.DB) ChatRoomRepository {
	return &PostgresChatRoomRepository{db: db}
}

func (r *PostgresChatRoomRepository) Create(ctx context.Context, room *chatroom.ChatRoom) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *PostgresChatRoomRepository) GetByID(ctx context.Context, id uuid.UUID) (chatroom.ChatRoom, error) {
	var room chatroom.ChatRoom
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chatroom.ChatRoom{}, parley_errors.ErrNotFound
		}
		return chatroom.ChatRoom{}, err
	}
	return room, nil
}

func (r *PostgresChatRoomRepository) Update(ctx context.Context, room chatroom.ChatRoom) error {
	res := r.db.WithContext(ctx).
		Model(&chatroom.ChatRoom{}).
		Where("id = ?", room.ID).
		Update("name", room.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return parley_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresChatRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&chatroom.ChatRoom{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return parley_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresChatRoomRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]chatroom.ChatRoom, error) {
	var rooms []chatroom.ChatRoom

	subQuery := r.db.Model(&chatroom.Member{}).
		Select("chat_room_id").
		Where("user_id = ?", userID)

	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("id IN (?)", subQuery).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *PostgresChatRoomRepository) AddMember(ctx context.Context, m *chatroom.Member) error {
	res := r.db.WithContext(ctx).Create(m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return parley_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresChatRoomRepository) RemoveMember(ctx context.Context, chatRoomID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Delete(&chatroom.Member{}, "chat_room_id = ? AND user_id = ?", chatRoomID, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return parley_errors.ErrNotFound
	}
	return nil
}
