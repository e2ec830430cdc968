package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uvcaspaces/booking-portal/internal/authz"
)

// Authorize gates a route on the policy table. Ownership-scoped rules are
// finished inside the use-case queries; this middleware settles the role
// part. Must run after AuthMiddleware on non-public routes.
func Authorize(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var role string
		if v, ok := c.Get(ContextUserRole); ok {
			role, _ = v.(string)
		}

		if !authz.Can(role, resource, action, true) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
