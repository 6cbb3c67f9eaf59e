package scoring

import (
	mw "github.com/robharvey123/cricket-platform-sub001/internal/middleware"
	"github.com/robharvey123/cricket-platform-sub001/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ScoringRoutes sets up the publication pipeline routes
func ScoringRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewGormScoringRepository(db)
	scoringController := NewScoringController(repo)

	// Publication and resolution are open to club scorers; the destructive
	// operations stay admin-only.
	scorerRoutes := router.Group("/admin")
	scorerRoutes.Use(mw.AuthMiddleware(jwtSecret))
	scorerRoutes.Use(rmiddleware.ScorerOrAdminMiddleware())
	{
		scorerRoutes.POST("/matches/:match_id/publish", scoringController.PublishMatch)
		scorerRoutes.POST("/matches/:match_id/resolve-players", scoringController.ResolvePlayers)
	}

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/matches/:match_id/recalculate", scoringController.RecalculateMatch)
		adminRoutes.POST("/clubs/:club_id/zero-rows/backfill", scoringController.BackfillClub)
		adminRoutes.POST("/players/:player_id/merge", scoringController.MergePlayers)
	}
}
