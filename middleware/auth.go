package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"food-ordering-api/auth"
)

const usernameKey = "username"

// AuthRequired validates the bearer token and injects the subject username
// into the request context. Requests without a valid token never reach the
// handler.
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		username, err := tokens.Verify(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(usernameKey, username)
		c.Next()
	}
}

// GetUsername extracts the authenticated username from the context. Empty
// outside AuthRequired routes.
func GetUsername(c *gin.Context) string {
	val, _ := c.Get(usernameKey)
	username, _ := val.(string)
	return username
}
