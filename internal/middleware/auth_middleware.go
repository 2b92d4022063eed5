package middleware

import (
	"context"
	"net/http"
	"strings"

	"parley-chat/internal/services"
	"parley-chat/internal/transport/httpdto"
	"parley-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token on every protected request and
// stores the caller on the request context. Requests without a resolvable
// token are rejected with 401 regardless of payload.
func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		u, err := service.Resolve(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("authentication required"))
			c.Abort()
			return
		}

		ctx := services.WithAuthContext(c.Request.Context(), u, token)
		ctx = context.WithValue(ctx, logger.UserIdKey, u.ID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractToken pulls the credential out of the Authorization header. Both the
// "Bearer" and "Token" schemes are accepted.
func extractToken(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") && !strings.EqualFold(parts[0], "Token") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
