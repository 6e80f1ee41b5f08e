package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"miniblog/api/internal/config"
	"miniblog/api/internal/security"
	"miniblog/api/internal/store"
)

// Auth resolves the bearer token to a live account. The account is looked
// up fresh so profile edits are reflected immediately; a token naming an
// account that no longer exists is rejected.
func Auth(cfg *config.AppConfig, identity *store.IdentityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseAccessToken(tokenStr, cfg.Security.JWTAccessSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		account, err := identity.GetByID(claims.AccountID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account_not_found"})
			return
		}

		c.Set("current_account", account)
		c.Next()
	}
}
