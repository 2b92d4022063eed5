package httpdto

import "parley-chat/internal/domain/chatroom"

// CreateChatRoomRequest is used for POST /chat_rooms. The name is validated
// by the room service so an empty value comes back as a field error.
type CreateChatRoomRequest struct {
	Name string `json:"name"`
}

// UpdateChatRoomRequest is used for PUT /chat_rooms/:id
type UpdateChatRoomRequest struct {
	Name string `json:"name"`
}

// AddMemberRequest is used for POST /chat_rooms/:id/members
type AddMemberRequest struct {
	User string `json:"user" binding:"required"`
}

// ChatRoomDTO represents a chat room in API responses
type ChatRoomDTO struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

func ToChatRoomDTO(room chatroom.ChatRoom) ChatRoomDTO {
	ids := room.MemberIDs()
	members := make([]string, 0, len(ids))
	for _, id := range ids {
		members = append(members, id.String())
	}
	return ChatRoomDTO{
		ID:      room.ID.String(),
		Name:    room.Name,
		Members: members,
	}
}

func ToChatRoomDTOs(rooms []chatroom.ChatRoom) []ChatRoomDTO {
	dtos := make([]ChatRoomDTO, 0, len(rooms))
	for _, room := range rooms {
		dtos = append(dtos, ToChatRoomDTO(room))
	}
	return dtos
}
