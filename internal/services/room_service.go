package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"parley-chat/internal/domain/chatroom"
	"parley-chat/internal/repository"
	parley_errors "parley-chat/pkg/errors"

	"github.com/google/uuid"
)

// RoomService manages chat rooms and their member sets. Listing is the only
// operation with an access rule: a user never observes a room they are not a
// member of. Update and delete are intentionally left open to any
// authenticated caller.
type RoomService struct {
	roomRepo repository.ChatRoomRepository
	userRepo repository.UserRepository
}

func NewRoomService(roomRepo repository.ChatRoomRepository, userRepo repository.UserRepository) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
		userRepo: userRepo,
	}
}

// Create persists a new room with an empty member set.
func (s *RoomService) Create(ctx context.Context, name string) (chatroom.ChatRoom, error) {
	if err := validateRoomName(name); err != nil {
		return chatroom.ChatRoom{}, err
	}

	room := chatroom.ChatRoom{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.roomRepo.Create(ctx, &room); err != nil {
		return chatroom.ChatRoom{}, err
	}
	return room, nil
}

// ListVisible returns exactly the rooms whose member set contains the caller.
func (s *RoomService) ListVisible(ctx context.Context, callerID uuid.UUID) ([]chatroom.ChatRoom, error) {
	return s.roomRepo.ListByMember(ctx, callerID)
}

func (s *RoomService) Get(ctx context.Context, id uuid.UUID) (chatroom.ChatRoom, error) {
	return s.roomRepo.GetByID(ctx, id)
}

// Rename updates the room's display name.
func (s *RoomService) Rename(ctx context.Context, id uuid.UUID, name string) (chatroom.ChatRoom, error) {
	if err := validateRoomName(name); err != nil {
		return chatroom.ChatRoom{}, err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return chatroom.ChatRoom{}, err
	}

	room.Name = strings.TrimSpace(name)
	if err := s.roomRepo.Update(ctx, room); err != nil {
		return chatroom.ChatRoom{}, err
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.roomRepo.Delete(ctx, id)
}

// AddMember puts a user into the room's member set. Adding an existing member
// is a no-op; the member set never holds duplicates.
func (s *RoomService) AddMember(ctx context.Context, roomID, userID uuid.UUID) error {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return err
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, parley_errors.ErrNotFound) {
			ve := parley_errors.NewValidationError()
			ve.Add("user", "user does not exist")
			return ve
		}
		return err
	}

	member := &chatroom.Member{
		ChatRoomID: roomID,
		UserID:     userID,
		JoinedAt:   time.Now(),
	}
	if err := s.roomRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, parley_errors.ErrAlreadyExists) {
			return nil
		}
		return err
	}
	return nil
}

// RemoveMember takes a user out of the room's member set.
func (s *RoomService) RemoveMember(ctx context.Context, roomID, userID uuid.UUID) error {
	return s.roomRepo.RemoveMember(ctx, roomID, userID)
}

func validateRoomName(name string) error {
	if strings.TrimSpace(name) == "" {
		ve := parley_errors.NewValidationError()
		ve.Add("name", "must not be empty")
		return ve
	}
	return nil
}
