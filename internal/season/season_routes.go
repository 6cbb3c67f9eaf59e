package season

import (
	mw "github.com/robharvey123/cricket-platform-sub001/internal/middleware"
	"github.com/robharvey123/cricket-platform-sub001/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SeasonRoutes sets up all season-related routes
func SeasonRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	seasonRepo := NewSeasonRepository(db)
	seasonController := NewSeasonController(seasonRepo)

	// Public season routes
	router.GET("/seasons/:season_id", seasonController.GetSeasonByID)
	router.GET("/clubs/:club_id/seasons", seasonController.GetClubSeasons)

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/seasons", seasonController.CreateSeason)
		adminRoutes.PUT("/seasons/:season_id", seasonController.UpdateSeason)
		adminRoutes.DELETE("/seasons/:season_id", seasonController.DeleteSeason)
		adminRoutes.POST("/seasons/:season_id/activate", seasonController.ActivateSeason)
	}
}
