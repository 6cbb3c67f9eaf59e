package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/robharvey123/cricket-platform-sub001/internal/club"
	"github.com/robharvey123/cricket-platform-sub001/internal/formula"
	"github.com/robharvey123/cricket-platform-sub001/internal/match"
	"github.com/robharvey123/cricket-platform-sub001/internal/player"
	"github.com/robharvey123/cricket-platform-sub001/internal/scoring"
	"github.com/robharvey123/cricket-platform-sub001/internal/season"
	"github.com/robharvey123/cricket-platform-sub001/internal/stats"
	"github.com/robharvey123/cricket-platform-sub001/internal/team"
)

func SetupRoutes(db *gorm.DB, jwtSecret string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Club Cricket</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Club Cricket Platform 🏏</h1>
					<p><a href="/swagger/index.html">API documentation</a></p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	club.ClubRoutes(api, db, jwtSecret)
	player.PlayerRoutes(api, db, jwtSecret)
	season.SeasonRoutes(api, db, jwtSecret)
	formula.FormulaRoutes(api, db, jwtSecret)
	team.TeamRoutes(api, db, jwtSecret)
	match.MatchRoutes(api, db, jwtSecret)
	scoring.ScoringRoutes(api, db, jwtSecret)
	stats.StatsRoutes(api, db, jwtSecret)

	return r
}
