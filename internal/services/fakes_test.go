package services

import (
	"context"
	"time"

	"parley-chat/internal/domain/chatroom"
	"parley-chat/internal/domain/message"
	"parley-chat/internal/domain/user"
	parley_errors "parley-chat/pkg/errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	users  map[uuid.UUID]user.User
	tokens map[string]user.AuthToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[uuid.UUID]user.User),
		tokens: make(map[string]user.AuthToken),
	}
}

func (r *fakeUserRepo) addUser(username, password string) user.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	u := user.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return parley_errors.ErrAlreadyExists
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, parley_errors.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, parley_errors.ErrNotFound
}

func (r *fakeUserRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]user.User, error) {
	found := make([]user.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			found = append(found, u)
		}
	}
	return found, nil
}

func (r *fakeUserRepo) CreateToken(_ context.Context, t *user.AuthToken) error {
	r.tokens[t.TokenHash] = *t
	return nil
}

func (r *fakeUserRepo) GetToken(_ context.Context, tokenHash string) (user.AuthToken, error) {
	t, ok := r.tokens[tokenHash]
	if !ok {
		return user.AuthToken{}, parley_errors.ErrNotFound
	}
	return t, nil
}

func (r *fakeUserRepo) DeleteToken(_ context.Context, tokenHash string) error {
	if _, ok := r.tokens[tokenHash]; !ok {
		return parley_errors.ErrNotFound
	}
	delete(r.tokens, tokenHash)
	return nil
}

func (r *fakeUserRepo) DeleteUserTokens(_ context.Context, userID uuid.UUID) ([]string, error) {
	var hashes []string
	for hash, t := range r.tokens {
		if t.UserID == userID {
			hashes = append(hashes, hash)
			delete(r.tokens, hash)
		}
	}
	return hashes, nil
}

// fakeChatRoomRepo is an in-memory ChatRoomRepository for service tests.
type fakeChatRoomRepo struct {
	rooms map[uuid.UUID]chatroom.ChatRoom
}

func newFakeChatRoomRepo() *fakeChatRoomRepo {
	return &fakeChatRoomRepo{rooms: make(map[uuid.UUID]chatroom.ChatRoom)}
}

func (r *fakeChatRoomRepo) addRoom(name string, memberIDs ...uuid.UUID) chatroom.ChatRoom {
	room := chatroom.ChatRoom{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for _, id := range memberIDs {
		room.Members = append(room.Members, chatroom.Member{
			ChatRoomID: room.ID,
			UserID:     id,
			JoinedAt:   time.Now(),
		})
	}
	r.rooms[room.ID] = room
	return room
}

func (r *fakeChatRoomRepo) Create(_ context.Context, room *chatroom.ChatRoom) error {
	r.rooms[room.ID] = *room
	return nil
}

func (r *fakeChatRoomRepo) GetByID(_ context.Context, id uuid.UUID) (chatroom.ChatRoom, error) {
	room, ok := r.rooms[id]
	if !ok {
		return chatroom.ChatRoom{}, parley_errors.ErrNotFound
	}
	return room, nil
}

func (r *fakeChatRoomRepo) Update(_ context.Context, room chatroom.ChatRoom) error {
	existing, ok := r.rooms[room.ID]
	if !ok {
		return parley_errors.ErrNotFound
	}
	existing.Name = room.Name
	existing.UpdatedAt = time.Now()
	r.rooms[room.ID] = existing
	return nil
}

func (r *fakeChatRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rooms[id]; !ok {
		return parley_errors.ErrNotFound
	}
	delete(r.rooms, id)
	return nil
}

func (r *fakeChatRoomRepo) ListByMember(_ context.Context, userID uuid.UUID) ([]chatroom.ChatRoom, error) {
	visible := make([]chatroom.ChatRoom, 0)
	for _, room := range r.rooms {
		if room.HasMember(userID) {
			visible = append(visible, room)
		}
	}
	return visible, nil
}

func (r *fakeChatRoomRepo) AddMember(_ context.Context, m *chatroom.Member) error {
	room, ok := r.rooms[m.ChatRoomID]
	if !ok {
		return parley_errors.ErrNotFound
	}
	if room.HasMember(m.UserID) {
		return parley_errors.ErrAlreadyExists
	}
	room.Members = append(room.Members, *m)
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeChatRoomRepo) RemoveMember(_ context.Context, chatRoomID, userID uuid.UUID) error {
	room, ok := r.rooms[chatRoomID]
	if !ok {
		return parley_errors.ErrNotFound
	}
	members := room.Members[:0]
	for _, m := range room.Members {
		if m.UserID != userID {
			members = append(members, m)
		}
	}
	room.Members = members
	r.rooms[room.ID] = room
	return nil
}

// fakeMessageRepo is an in-memory MessageRepository for service tests.
type fakeMessageRepo struct {
	messages []message.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(_ context.Context, msg *message.Message) error {
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeMessageRepo) GetByID(_ context.Context, id uuid.UUID) (message.Message, error) {
	for _, msg := range r.messages {
		if msg.ID == id {
			return msg, nil
		}
	}
	return message.Message{}, parley_errors.ErrNotFound
}

func (r *fakeMessageRepo) ListByChatRoom(_ context.Context, chatRoomID uuid.UUID) ([]message.Message, error) {
	found := make([]message.Message, 0)
	for _, msg := range r.messages {
		if msg.ChatRoomID == chatRoomID {
			found = append(found, msg)
		}
	}
	return found, nil
}
