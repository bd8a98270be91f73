package middleware

import (
	"net/http"
	"strings"

	"mesa-game-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func JWTAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		hostID, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("host_id", hostID)
		c.Next()
	}
}

// MemberAuth resolves the web token from the X-Web-Token header or the
// web_token query parameter. Tokens are mesa-scoped, so validation happens
// in the handlers once the mesa is known.
func MemberAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Web-Token")
		if token == "" {
			token = c.Query("web_token")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "web token required"})
			return
		}
		c.Set("web_token", token)
		c.Next()
	}
}
