package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/robharvey123/cricket-platform-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware gates a route on the roles carried in the validated token.
// Roles are asserted by the external identity service; the claims are the
// source of truth here.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRoles, err := middleware.GetRolesFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		hasRequiredRole := false
		for _, userRole := range userRoles {
			for _, requiredRole := range requiredRoles {
				if strings.EqualFold(userRole, requiredRole) {
					hasRequiredRole = true
					break
				}
			}
			if hasRequiredRole {
				break
			}
		}

		if !hasRequiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "Forbidden",
				"message":    "You don't have permission to access this resource",
				"required":   requiredRoles,
				"user_roles": userRoles,
			})
			return
		}

		c.Next()
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("admin")
}

// ScorerOrAdminMiddleware is a convenience middleware for scorer or admin access
func ScorerOrAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("scorer", "admin")
}
