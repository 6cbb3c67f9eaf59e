package player

import (
	mw "github.com/robharvey123/cricket-platform-sub001/internal/middleware"
	"github.com/robharvey123/cricket-platform-sub001/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlayerRoutes sets up all player-related routes
func PlayerRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	playerRepo := NewPlayerRepository(db)
	playerController := NewPlayerController(playerRepo)

	// Public player routes
	router.GET("/players/:player_id", playerController.GetPlayerByID)
	router.GET("/clubs/:club_id/players", playerController.GetClubPlayers)

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/players", playerController.CreatePlayer)
		adminRoutes.PUT("/players/:player_id", playerController.UpdatePlayer)
		adminRoutes.DELETE("/players/:player_id", playerController.DeletePlayer)
	}
}
