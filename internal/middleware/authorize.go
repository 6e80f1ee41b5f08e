package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miniblog/api/internal/models"
)

// RequireRoles gates a route group to the listed roles. Runs after Auth.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	roleSet := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		accountVal, exists := c.Get("current_account")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		account, ok := accountVal.(models.Account)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_account"})
			return
		}

		if _, ok := roleSet[account.Role()]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
