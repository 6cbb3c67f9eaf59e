package season

import (
	"errors"
	"testing"

	"github.com/robharvey123/cricket-platform-sub001/internal/club"

	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(moderncSqlite.New(moderncSqlite.Config{
		DSN:        ":memory:",
		DriverName: "sqlite",
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Expected in-memory database to open, got %v", err)
	}
	if err := db.AutoMigrate(&club.Club{}, &Season{}); err != nil {
		t.Fatalf("Expected migration to succeed, got %v", err)
	}
	return db
}

func mustCreateSeason(t *testing.T, repo SeasonRepository, s *Season) {
	t.Helper()
	if err := repo.CreateSeason(s); err != nil {
		t.Fatalf("Expected season %q to be created, got %v", s.Name, err)
	}
}

func TestActivateSeasonClearsPreviousActive(t *testing.T) {
	repo := NewSeasonRepository(openTestDB(t))

	current := Season{ClubID: 1, Name: "Season 2024", Slug: "season-2024", IsActive: true}
	next := Season{ClubID: 1, Name: "Season 2025", Slug: "season-2025"}
	otherClub := Season{ClubID: 2, Name: "Season 2025", Slug: "season-2025", IsActive: true}
	mustCreateSeason(t, repo, &current)
	mustCreateSeason(t, repo, &next)
	mustCreateSeason(t, repo, &otherClub)

	if err := repo.ActivateSeason(1, next.ID); err != nil {
		t.Fatalf("Expected activation to succeed, got %v", err)
	}

	active, err := repo.GetActiveSeason(1)
	if err != nil {
		t.Fatalf("Expected active season lookup to succeed, got %v", err)
	}
	if active == nil || active.ID != next.ID {
		t.Errorf("Expected season %d to be the club's active season, got %+v", next.ID, active)
	}

	old, _ := repo.GetSeasonByID(current.ID)
	if old == nil || old.IsActive {
		t.Errorf("Expected previously active season to be cleared, got %+v", old)
	}

	unrelated, _ := repo.GetActiveSeason(2)
	if unrelated == nil || unrelated.ID != otherClub.ID {
		t.Errorf("Expected the other club's active season to be untouched, got %+v", unrelated)
	}
}

func TestActivateSeasonUnknownID(t *testing.T) {
	repo := NewSeasonRepository(openTestDB(t))

	current := Season{ClubID: 1, Name: "Season 2024", Slug: "season-2024", IsActive: true}
	mustCreateSeason(t, repo, &current)

	err := repo.ActivateSeason(1, current.ID+100)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Expected record-not-found for an unknown season, got %v", err)
	}

	// The failed activation must roll back the sibling clear.
	active, _ := repo.GetActiveSeason(1)
	if active == nil || active.ID != current.ID {
		t.Errorf("Expected the existing active season to survive the failed activation, got %+v", active)
	}
}

func TestActivateSeasonWrongClub(t *testing.T) {
	repo := NewSeasonRepository(openTestDB(t))

	s := Season{ClubID: 1, Name: "Season 2025", Slug: "season-2025"}
	mustCreateSeason(t, repo, &s)

	if err := repo.ActivateSeason(2, s.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected record-not-found when activating another club's season, got %v", err)
	}
}
