package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AccessValidator resolves an access token to the admin id it was issued for.
type AccessValidator interface {
	ValidateAccess(token string) (string, error)
}

const UserIDKey = "userId"

func AuthMiddleware(auth AccessValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "unauthorized", "Authorization header is required")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, http.StatusUnauthorized, "unauthorized", "Invalid authorization header format")
			return
		}

		userID, err := auth.ValidateAccess(parts[1])
		if err != nil {
			abort(c, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"message": message, "code": code}})
}
