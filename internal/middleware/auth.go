package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uvcaspaces/booking-portal/internal/auth"
)

const (
	ContextUserID      = "userID"
	ContextUserRole    = "userRole"
	ContextTokenID     = "tokenID"
	ContextTokenExpiry = "tokenExpiry"
)

// AuthMiddleware resolves the Bearer token into a request identity. Every
// failure short-circuits as 401; the code distinguishes missing, malformed
// and expired credentials.
func AuthMiddleware(tokens *auth.TokenService, denylist *auth.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			code := "invalid_token"
			if errors.Is(err, auth.ErrExpired) {
				code = "token_expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code})
			return
		}

		if denylist.IsRevoked(c.Request.Context(), claims.TokenID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextTokenID, claims.TokenID)
		c.Set(ContextTokenExpiry, claims.ExpiresAt)

		c.Next()
	}
}

// Identity reads the authenticated user id and role set by AuthMiddleware.
func Identity(c *gin.Context) (uint, string) {
	userID := c.MustGet(ContextUserID).(uint)
	role := c.MustGet(ContextUserRole).(string)
	return userID, role
}
