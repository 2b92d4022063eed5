package repository

import (
	"context"

	"github.com/google/uuid"

	"parley-chat/internal/domain/chatroom"
	"parley-chat/internal/domain/message"
	"parley-chat/internal/domain/user"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByUsername(ctx context.Context, username string) (user.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]user.User, error)

	CreateToken(ctx context.Context, t *user.AuthToken) error
	GetToken(ctx context.Context, tokenHash string) (user.AuthToken, error)
	DeleteToken(ctx context.Context, tokenHash string) error

	// DeleteUserTokens removes every token bound to the user and returns the
	// hashes of the deleted rows so callers can drop cache entries.
	DeleteUserTokens(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type ChatRoomRepository interface {
	Create(ctx context.Context, room *chatroom.ChatRoom) error
	GetByID(ctx context.Context, id uuid.UUID) (chatroom.ChatRoom, error)
	Update(ctx context.Context, room chatroom.ChatRoom) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByMember returns exactly the rooms whose member set contains userID.
	ListByMember(ctx context.Context, userID uuid.UUID) ([]chatroom.ChatRoom, error)

	AddMember(ctx context.Context, m *chatroom.Member) error
	RemoveMember(ctx context.Context, chatRoomID, userID uuid.UUID) error
}

type MessageRepository interface {
	// Create persists the message together with its recipient rows.
	Create(ctx context.Context, msg *message.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (message.Message, error)
	ListByChatRoom(ctx context.Context, chatRoomID uuid.UUID) ([]message.Message, error)
}
