package formula

import (
	mw "github.com/robharvey123/cricket-platform-sub001/internal/middleware"
	"github.com/robharvey123/cricket-platform-sub001/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FormulaRoutes sets up all scoring formula routes
func FormulaRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	formulaRepo := NewFormulaRepository(db)
	formulaController := NewFormulaController(formulaRepo)

	// Public formula routes
	router.GET("/formulas/:formula_id", formulaController.GetFormulaByID)
	router.GET("/seasons/:season_id/formulas", formulaController.GetSeasonFormulas)

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/formulas", formulaController.CreateFormula)
		adminRoutes.PUT("/formulas/:formula_id", formulaController.UpdateFormula)
		adminRoutes.DELETE("/formulas/:formula_id", formulaController.DeleteFormula)
		adminRoutes.POST("/formulas/:formula_id/activate", formulaController.ActivateFormula)
	}
}
