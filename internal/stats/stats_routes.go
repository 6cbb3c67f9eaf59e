package stats

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsRoutes sets up the public leaderboard routes
func StatsRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	statsRepo := NewStatsRepository(db)
	statsController := NewStatsController(statsRepo)

	router.GET("/seasons/:season_id/stats/batting", statsController.GetBattingLeaderboard)
	router.GET("/seasons/:season_id/stats/bowling", statsController.GetBowlingLeaderboard)
	router.GET("/seasons/:season_id/stats/points", statsController.GetPointsLeaderboard)
	router.GET("/seasons/:season_id/players/:player_id/summary", statsController.GetPlayerSeasonSummary)
}
