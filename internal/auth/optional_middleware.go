package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware inspects for a token and sets the identity if present and valid,
// but does not fail if the token is missing or invalid. Used on public routes
// such as the leaderboards and profile search.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if userID, email, err := parseToken(parts[1]); err == nil {
					c.Set("userID", userID)
					c.Set("userEmail", email)
				}
			}
		}
		c.Next()
	}
}
