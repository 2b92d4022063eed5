package server

import (
	"parley-chat/internal/handler"
	"parley-chat/internal/middleware"
	"parley-chat/internal/services"
	"parley-chat/internal/transport/httpdto"
	"parley-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP surface. Everything except login and message
// creation sits behind the auth middleware; message creation is deliberately
// open, matching the upstream behavior.
func NewRouter(
	mode string,
	log *logger.Logger,
	authService *services.AuthService,
	roomService *services.RoomService,
	messageService *services.MessageService,
) *gin.Engine {
	if mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	httpdto.RegisterTagNames()

	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewChatRoomHandler(roomService)
	messageHandler := handler.NewMessageHandler(messageService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(log))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/login", authHandler.Login)
	r.POST("/messages", messageHandler.Send)
	r.GET("/messages/:id", messageHandler.Get)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.POST("/logout", authHandler.Logout)
		protected.POST("/logout_all", authHandler.LogoutAll)

		protected.GET("/chat_rooms", roomHandler.List)
		protected.POST("/chat_rooms", roomHandler.Create)
		protected.GET("/chat_rooms/:id", roomHandler.Get)
		protected.PUT("/chat_rooms/:id", roomHandler.Update)
		protected.DELETE("/chat_rooms/:id", roomHandler.Delete)
		protected.POST("/chat_rooms/:id/members", roomHandler.AddMember)
		protected.DELETE("/chat_rooms/:id/members/:user_id", roomHandler.RemoveMember)
		protected.GET("/chat_rooms/:id/messages", messageHandler.ListByChatRoom)
	}

	return r
}
