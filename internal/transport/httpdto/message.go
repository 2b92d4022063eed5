package httpdto

import (
	"time"

	"parley-chat/internal/domain/message"
)

// SendMessageRequest is used for POST /messages. Content is deliberately not
// bound as required; the message service validates it and reports a field
// error for empty content.
type SendMessageRequest struct {
	Sender   string   `json:"sender" binding:"required"`
	Receiver []string `json:"receiver"`
	Content  string   `json:"content"`
	ChatRoom string   `json:"chat_room" binding:"required"`
}

// SendMessageResponse is returned after a successful send
type SendMessageResponse struct {
	Message string `json:"message"`
}

// MessageDTO represents a persisted message in API responses
type MessageDTO struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Receiver  []string  `json:"receiver"`
	Content   string    `json:"content"`
	ChatRoom  string    `json:"chat_room"`
	Timestamp time.Time `json:"timestamp"`
}

func ToMessageDTO(msg message.Message) MessageDTO {
	receivers := make([]string, 0, len(msg.Recipients))
	for _, r := range msg.Recipients {
		receivers = append(receivers, r.UserID.String())
	}
	return MessageDTO{
		ID:        msg.ID.String(),
		Sender:    msg.SenderID.String(),
		Receiver:  receivers,
		Content:   msg.Content,
		ChatRoom:  msg.ChatRoomID.String(),
		Timestamp: msg.CreatedAt,
	}
}

func ToMessageDTOs(messages []message.Message) []MessageDTO {
	dtos := make([]MessageDTO, 0, len(messages))
	for _, msg := range messages {
		dtos = append(dtos, ToMessageDTO(msg))
	}
	return dtos
}
