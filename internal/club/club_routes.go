package club

import (
	mw "github.com/robharvey123/cricket-platform-sub001/internal/middleware"
	"github.com/robharvey123/cricket-platform-sub001/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClubRoutes sets up all club-related routes
func ClubRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	clubRepo := NewClubRepository(db)
	clubController := NewClubController(clubRepo)

	// Public club routes
	router.GET("/clubs", clubController.GetAllClubs)
	router.GET("/clubs/:club_id", clubController.GetClubByID)

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/clubs", clubController.CreateClub)
		adminRoutes.PUT("/clubs/:club_id", clubController.UpdateClub)
		adminRoutes.DELETE("/clubs/:club_id", clubController.DeleteClub)
		adminRoutes.POST("/clubs/:club_id/api-key", clubController.RotateAPIKey)
	}
}
