package main

import (
	"log"

	"github.com/robharvey123/cricket-platform-sub001/config"
	_ "github.com/robharvey123/cricket-platform-sub001/docs"
	"github.com/robharvey123/cricket-platform-sub001/internal/club"
	"github.com/robharvey123/cricket-platform-sub001/internal/formula"
	"github.com/robharvey123/cricket-platform-sub001/internal/match"
	"github.com/robharvey123/cricket-platform-sub001/internal/player"
	"github.com/robharvey123/cricket-platform-sub001/internal/scoring"
	"github.com/robharvey123/cricket-platform-sub001/internal/season"
	"github.com/robharvey123/cricket-platform-sub001/internal/team"
	"github.com/robharvey123/cricket-platform-sub001/routes"
)

// @title Club Cricket Platform REST API
// @version 1.0
// @description Match publication and scoring for club cricket 🏏
// @host localhost:8090
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&club.Club{}, &player.Player{},
		&season.Season{}, &formula.ScoringFormula{},
		&team.Team{}, &team.SquadMember{},
		&match.Match{}, &match.Innings{},
		&match.BattingCard{}, &match.BowlingCard{}, &match.FieldingCard{},
		&match.ImportBatch{},
		&scoring.PointsEvent{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if cfg.Scoring.BackfillEnabled {
		scoringRepo := scoring.NewGormScoringRepository(config.DB)
		sched, err := scoring.StartBackfillScheduler(scoringRepo, cfg.Scoring.BackfillEveryMins)
		if err != nil {
			log.Fatalf("Failed to start backfill scheduler: %v", err)
		}
		defer func() { _ = sched.Shutdown() }()
		log.Printf("Zero-row backfill scheduled every %d minutes", cfg.Scoring.BackfillEveryMins)
	}

	r := routes.SetupRoutes(config.DB, cfg.JWT.AccessTokenSecret)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
