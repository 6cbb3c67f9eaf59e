package match

import (
	mw "github.com/robharvey123/cricket-platform-sub001/internal/middleware"
	"github.com/robharvey123/cricket-platform-sub001/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MatchRoutes sets up all match and scorecard routes
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	matchRepo := NewGormMatchRepository(db)
	matchController := NewMatchController(matchRepo)

	// Public match routes
	router.GET("/matches", matchController.GetMatches)
	router.GET("/matches/:match_id", matchController.GetMatchByID)
	router.GET("/matches/:match_id/scorecard", matchController.GetScorecard)
	router.GET("/matches/:match_id/innings", matchController.GetInnings)

	// Scorecard import, authenticated by the club scorer API key rather than
	// a user token. Called by the upstream extraction pipeline.
	importRoutes := router.Group("/import")
	importRoutes.Use(mw.ClubAPIKeyMiddleware(db))
	{
		importRoutes.POST("/clubs/:club_public_id/matches/:match_id/scorecard", matchController.ImportScorecard)
	}

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/matches", matchController.CreateMatch)
		adminRoutes.PUT("/matches/:match_id", matchController.UpdateMatch)
		adminRoutes.DELETE("/matches/:match_id", matchController.DeleteMatch)
		adminRoutes.GET("/matches/:match_id/import-batches", matchController.GetImportBatches)

		// Draft scorecard corrections; all of these refuse published matches
		adminRoutes.PUT("/matches/:match_id/innings/:innings_id", matchController.UpdateInnings)
		adminRoutes.PUT("/matches/:match_id/batting-cards/:card_id", matchController.UpdateBattingCard)
		adminRoutes.DELETE("/matches/:match_id/batting-cards/:card_id", matchController.DeleteBattingCard)
		adminRoutes.PUT("/matches/:match_id/bowling-cards/:card_id", matchController.UpdateBowlingCard)
		adminRoutes.DELETE("/matches/:match_id/bowling-cards/:card_id", matchController.DeleteBowlingCard)
	}
}
