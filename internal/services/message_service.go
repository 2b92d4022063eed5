package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"parley-chat/internal/domain/message"
	"parley-chat/internal/repository"
	parley_errors "parley-chat/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageService owns the validate-then-persist path for messages. A send
// either writes the message row and every recipient row, or writes nothing.
type MessageService struct {
	db          *gorm.DB
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	roomRepo    repository.ChatRoomRepository
}

// NewMessageService creates the message service. db may be nil; the send then
// skips the transaction wrapper and writes through the injected repository
// directly.
func NewMessageService(db *gorm.DB, messageRepo repository.MessageRepository, userRepo repository.UserRepository, roomRepo repository.ChatRoomRepository) *MessageService {
	return &MessageService{
		db:          db,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		roomRepo:    roomRepo,
	}
}

// SendInput carries the raw send request fields. Ids arrive as strings and are
// validated field by field so the caller gets one structured error list.
type SendInput struct {
	Sender    string
	ChatRoom  string
	Content   string
	Receivers []string
}

// Send validates the input and persists a new message with a server-assigned
// creation timestamp and the resolved receiver set. Any unresolvable id fails
// the whole operation; nothing is written on failure.
func (s *MessageService) Send(ctx context.Context, in SendInput) (message.Message, error) {
	msg, err := s.validateSend(ctx, in)
	if err != nil {
		return message.Message{}, err
	}

	if s.db == nil {
		if err := s.messageRepo.Create(ctx, &msg); err != nil {
			return message.Message{}, err
		}
		return msg, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.NewMessageRepository(tx).Create(ctx, &msg)
	})
	if err != nil {
		return message.Message{}, err
	}
	return msg, nil
}

func (s *MessageService) GetByID(ctx context.Context, id uuid.UUID) (message.Message, error) {
	return s.messageRepo.GetByID(ctx, id)
}

func (s *MessageService) ListByChatRoom(ctx context.Context, chatRoomID uuid.UUID) ([]message.Message, error) {
	return s.messageRepo.ListByChatRoom(ctx, chatRoomID)
}

// validateSend checks every field and resolves every reference before
// anything is written. All failures for a request are collected into a single
// ValidationError.
func (s *MessageService) validateSend(ctx context.Context, in SendInput) (message.Message, error) {
	ve := parley_errors.NewValidationError()

	if strings.TrimSpace(in.Content) == "" {
		ve.Add("content", "must not be empty")
	}

	senderID, err := s.resolveUserID(ctx, in.Sender, "sender", ve)
	if err != nil {
		return message.Message{}, err
	}

	var roomID uuid.UUID
	if in.ChatRoom == "" {
		ve.Add("chat_room", "is required")
	} else if roomID, err = uuid.Parse(in.ChatRoom); err != nil {
		ve.Add("chat_room", "must be a valid chat room id")
	} else if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, parley_errors.ErrNotFound) {
			ve.Add("chat_room", "chat room does not exist")
		} else {
			return message.Message{}, err
		}
	}

	receiverIDs, err := s.resolveReceiverIDs(ctx, in.Receivers, ve)
	if err != nil {
		return message.Message{}, err
	}

	if ve.HasErrors() {
		return message.Message{}, ve
	}

	msg := message.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ChatRoomID: roomID,
		Content:    in.Content,
		CreatedAt:  time.Now(),
	}
	for _, id := range receiverIDs {
		msg.Recipients = append(msg.Recipients, message.Recipient{
			MessageID: msg.ID,
			UserID:    id,
		})
	}
	return msg, nil
}

func (s *MessageService) resolveUserID(ctx context.Context, raw, field string, ve *parley_errors.ValidationError) (uuid.UUID, error) {
	if raw == "" {
		ve.Add(field, "is required")
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		ve.Add(field, "must be a valid user id")
		return uuid.Nil, nil
	}
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, parley_errors.ErrNotFound) {
			ve.Add(field, "user does not exist")
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return id, nil
}

// resolveReceiverIDs parses and resolves the receiver set. The set may be
// empty; duplicates collapse into one recipient.
func (s *MessageService) resolveReceiverIDs(ctx context.Context, raw []string, ve *parley_errors.ValidationError) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	seen := make(map[uuid.UUID]bool, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			ve.Add("receiver", "must contain valid user ids")
			return nil, nil
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	found, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		ve.Add("receiver", "one or more users do not exist")
		return nil, nil
	}
	return ids, nil
}
