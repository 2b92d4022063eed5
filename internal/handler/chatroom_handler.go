package handler

import (
	"net/http"

	"parley-chat/internal/services"
	"parley-chat/internal/transport/httpdto"
	parley_errors "parley-chat/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatRoomHandler handles chat room HTTP endpoints. Listing is filtered to
// the caller's rooms; the remaining CRUD operations are open to any
// authenticated user.
type ChatRoomHandler struct {
	service *services.RoomService
}

// NewChatRoomHandler creates a chat room handler.
func NewChatRoomHandler(service *services.RoomService) *ChatRoomHandler {
	return &ChatRoomHandler{service: service}
}

// List returns the rooms the caller is a member of.
func (h *ChatRoomHandler) List(c *gin.Context) {
	caller, ok := services.UserFromContext(c.Request.Context())
	if !ok {
		writeError(c, parley_errors.ErrUnauthenticated)
		return
	}

	rooms, err := h.service.ListVisible(c.Request.Context(), caller.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.ToChatRoomDTOs(rooms))
}

// Create persists a new room with an empty member set.
func (h *ChatRoomHandler) Create(c *gin.Context) {
	var req httpdto.CreateChatRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, httpdto.BindingError(err))
		return
	}

	room, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.ToChatRoomDTO(room))
}

// Get returns a single room by id.
func (h *ChatRoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, parley_errors.ErrNotFound)
		return
	}

	room, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.ToChatRoomDTO(room))
}

// Update renames a room.
func (h *ChatRoomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, parley_errors.ErrNotFound)
		return
	}

	var req httpdto.UpdateChatRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, httpdto.BindingError(err))
		return
	}

	room, err := h.service.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.ToChatRoomDTO(room))
}

// Delete removes a room.
func (h *ChatRoomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, parley_errors.ErrNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMember puts a user into the room's member set.
func (h *ChatRoomHandler) AddMember(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, parley_errors.ErrNotFound)
		return
	}

	var req httpdto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, httpdto.BindingError(err))
		return
	}

	userID, err := uuid.Parse(req.User)
	if err != nil {
		ve := parley_errors.NewValidationError()
		ve.Add("user", "must be a valid user id")
		writeError(c, ve)
		return
	}

	if err := h.service.AddMember(c.Request.Context(), roomID, userID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// RemoveMember takes a user out of the room's member set.
func (h *ChatRoomHandler) RemoveMember(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, parley_errors.ErrNotFound)
		return
	}

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		writeError(c, parley_errors.ErrNotFound)
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), roomID, userID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
