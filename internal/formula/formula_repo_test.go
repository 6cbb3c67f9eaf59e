package formula

import (
	"errors"
	"testing"

	"github.com/robharvey123/cricket-platform-sub001/internal/club"
	"github.com/robharvey123/cricket-platform-sub001/internal/season"

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
	if err := db.AutoMigrate(&club.Club{}, &season.Season{}, &ScoringFormula{}); err != nil {
		t.Fatalf("Expected migration to succeed, got %v", err)
	}
	return db
}

func mustCreateFormula(t *testing.T, repo FormulaRepository, f *ScoringFormula) {
	t.Helper()
	if err := repo.CreateFormula(f); err != nil {
		t.Fatalf("Expected formula %q to be created, got %v", f.Name, err)
	}
}

func TestActivateFormulaClearsPreviousActive(t *testing.T) {
	repo := NewFormulaRepository(openTestDB(t))

	current := ScoringFormula{SeasonID: 1, Name: "Standard", IsActive: true}
	next := ScoringFormula{SeasonID: 1, Name: "T20 variant"}
	otherSeason := ScoringFormula{SeasonID: 2, Name: "Standard", IsActive: true}
	mustCreateFormula(t, repo, &current)
	mustCreateFormula(t, repo, &next)
	mustCreateFormula(t, repo, &otherSeason)

	if err := repo.ActivateFormula(1, next.ID); err != nil {
		t.Fatalf("Expected activation to succeed, got %v", err)
	}

	active, err := repo.GetActiveFormula(1)
	if err != nil {
		t.Fatalf("Expected active formula lookup to succeed, got %v", err)
	}
	if active == nil || active.ID != next.ID {
		t.Errorf("Expected formula %d to be the season's active formula, got %+v", next.ID, active)
	}

	old, _ := repo.GetFormulaByID(current.ID)
	if old == nil || old.IsActive {
		t.Errorf("Expected previously active formula to be cleared, got %+v", old)
	}

	unrelated, _ := repo.GetActiveFormula(2)
	if unrelated == nil || unrelated.ID != otherSeason.ID {
		t.Errorf("Expected the other season's active formula to be untouched, got %+v", unrelated)
	}
}

func TestActivateFormulaUnknownID(t *testing.T) {
	repo := NewFormulaRepository(openTestDB(t))

	current := ScoringFormula{SeasonID: 1, Name: "Standard", IsActive: true}
	mustCreateFormula(t, repo, &current)

	err := repo.ActivateFormula(1, current.ID+100)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Expected record-not-found for an unknown formula, got %v", err)
	}

	// The failed activation must roll back the sibling clear.
	active, _ := repo.GetActiveFormula(1)
	if active == nil || active.ID != current.ID {
		t.Errorf("Expected the existing active formula to survive the failed activation, got %+v", active)
	}
}

func TestActivateFormulaWrongSeason(t *testing.T) {
	repo := NewFormulaRepository(openTestDB(t))

	f := ScoringFormula{SeasonID: 1, Name: "Standard"}
	mustCreateFormula(t, repo, &f)

	if err := repo.ActivateFormula(2, f.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected record-not-found when activating against the wrong season, got %v", err)
	}
}
