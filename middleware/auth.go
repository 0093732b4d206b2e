package middleware

import (
	"net/http"
	"strings"

	"ecoscan/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by BearerAuthMiddleware.
const (
	ContextAccountID = "accountID"
	ContextEmail     = "accountEmail"
)

// BearerAuthMiddleware guards ledger and classification endpoints. Token
// verification is a pure computation (signature plus expiry), it never
// touches storage: there is no revocation list.
func BearerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}

		accountID, email, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextAccountID, accountID)
		c.Set(ContextEmail, email)
		c.Next()
	}
}
