package handler

import (
	"net/http"

	"parley-chat/internal/services"
	"parley-chat/internal/transport/httpdto"
	parley_errors "parley-chat/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessageHandler handles message HTTP endpoints.
type MessageHandler struct {
	service *services.MessageService
}

// NewMessageHandler creates a message handler.
func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Send validates and persists a new message with its receiver set.
func (h *MessageHandler) Send(c *gin.Context) {
	var req httpdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, httpdto.BindingError(err))
		return
	}

	_, err := h.service.Send(c.Request.Context(), services.SendInput{
		Sender:    req.Sender,
		ChatRoom:  req.ChatRoom,
		Content:   req.Content,
		Receivers: req.Receiver,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.SendMessageResponse{
		Message: "Message sent successfully",
	})
}

// Get returns a single message by id.
func (h *MessageHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, parley_errors.ErrNotFound)
		return
	}

	msg, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.ToMessageDTO(msg))
}

// ListByChatRoom returns a room's messages ordered by creation time.
func (h *MessageHandler) ListByChatRoom(c *gin.Context) {
	chatRoomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, parley_errors.ErrNotFound)
		return
	}

	messages, err := h.service.ListByChatRoom(c.Request.Context(), chatRoomID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.ToMessageDTOs(messages))
}
