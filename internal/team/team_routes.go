package team

import (
	mw "github.com/robharvey123/cricket-platform-sub001/internal/middleware"
	"github.com/robharvey123/cricket-platform-sub001/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo)

	// Public team routes
	router.GET("/teams/:team_id", teamController.GetTeamByID)
	router.GET("/teams/:team_id/squad", teamController.GetSquad)
	router.GET("/seasons/:season_id/teams", teamController.GetSeasonTeams)

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/teams", teamController.CreateTeam)
		adminRoutes.PUT("/teams/:team_id", teamController.UpdateTeam)
		adminRoutes.DELETE("/teams/:team_id", teamController.DeleteTeam)
		adminRoutes.POST("/teams/:team_id/squad", teamController.AddSquadMember)
		adminRoutes.DELETE("/teams/:team_id/squad/:player_id", teamController.RemoveSquadMember)
	}
}
