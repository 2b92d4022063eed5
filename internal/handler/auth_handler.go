// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"parley-chat/internal/services"
	"parley-chat/internal/transport/httpdto"
	parley_errors "parley-chat/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP endpoints.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles user authentication.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, httpdto.BindingError(err))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.LoginResponse{
		Token:  res.Token,
		UserID: res.User.ID.String(),
	})
}

// Logout invalidates the caller's token.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := services.TokenFromContext(c.Request.Context())
	if !ok {
		writeError(c, parley_errors.ErrUnauthenticated)
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// LogoutAll invalidates every session the caller holds.
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	caller, ok := services.UserFromContext(c.Request.Context())
	if !ok {
		writeError(c, parley_errors.ErrUnauthenticated)
		return
	}

	if err := h.service.LogoutAll(c.Request.Context(), caller.ID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
