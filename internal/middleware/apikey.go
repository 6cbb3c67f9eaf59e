package middleware

import (
	"net/http"

	"github.com/robharvey123/cricket-platform-sub001/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const APIKeyClubIDKey = "api_key_club_id"

// ClubAPIKeyMiddleware authenticates scorecard-import callers with the
// club-scoped API key presented in the X-Api-Key header. The key is matched
// against the bcrypt hash stored on the club addressed by the route.
func ClubAPIKeyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-Api-Key")
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-Api-Key header is required"})
			return
		}

		publicID := c.Param("club_public_id")
		if publicID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "club public ID is required"})
			return
		}

		var club struct {
			ID         uint
			APIKeyHash string
		}
		err := db.Table("clubs").
			Select("id", "api_key_hash").
			Where("public_id = ? AND deleted_at IS NULL", publicID).
			Scan(&club).Error
		if err != nil || club.ID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown club"})
			return
		}

		if !utils.CheckAPIKey(club.APIKeyHash, apiKey) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Set(APIKeyClubIDKey, club.ID)
		c.Next()
	}
}
