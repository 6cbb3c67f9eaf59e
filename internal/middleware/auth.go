package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/robharvey123/cricket-platform-sub001/pkg/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserIDKey = "auth_user_id"
	AuthRolesKey  = "auth_roles"
)

// AuthMiddleware validates bearer tokens issued by the external identity
// service. There is no local session state; the token is the whole story.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		c.Set(AuthUserIDKey, claims.UserID)
		c.Set(AuthRolesKey, claims.Roles)
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the context
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}

	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}

	return uid, nil
}

// GetRolesFromContext extracts the token roles from the context.
func GetRolesFromContext(c *gin.Context) ([]string, error) {
	roles, exists := c.Get(AuthRolesKey)
	if !exists {
		return nil, errors.New("roles not found in context")
	}

	rs, ok := roles.([]string)
	if !ok {
		return nil, fmt.Errorf("roles have unexpected type: %T", roles)
	}

	return rs, nil
}
