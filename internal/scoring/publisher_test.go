package scoring

import (
	"errors"
	"testing"

	"github.com/robharvey123/cricket-platform-sub001/internal/match"
)

// seedPublishFixture builds a draft match with imported cards carrying raw
// names only, and an active formula for its season.
func seedPublishFixture(repo *fakeRepo) uint {
	m := match.Match{ClubID: 1, SeasonID: 100, TeamID: 10}
	m.ID = 1
	repo.addMatch(m)
	repo.formulas[100] = standardFormula()

	repo.addBattingCard(match.BattingCard{
		MatchID: 1, PlayerName: "Joe Root",
		Position: 1, Runs: 52, BallsFaced: 40, Fours: 6, Sixes: 2,
		HowOut: "c Smith b Jones", Dismissed: true,
	})
	repo.addBattingCard(match.BattingCard{
		MatchID: 1, PlayerName: "Ben Stokes",
		Position: 2, Runs: 0, HowOut: "b Jones", Dismissed: true,
	})
	repo.addBowlingCard(match.BowlingCard{
		MatchID: 1, PlayerName: "Jofra Archer",
		Overs: 8, Maidens: 1, RunsConceded: 24, Wickets: 2,
	})
	return 1
}

func TestPublishRunsFullPipeline(t *testing.T) {
	repo := newFakeRepo()
	matchID := seedPublishFixture(repo)

	report, err := NewPublisher(repo).Publish(PublishInput{MatchID: matchID})
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	if !repo.matches[matchID].Published {
		t.Error("Match must be published after a successful run")
	}
	if report.ResolvedCards != 3 {
		t.Errorf("Expected 3 resolved cards, got %d", report.ResolvedCards)
	}
	if report.CreatedPlayers != 3 {
		t.Errorf("Expected 3 players created from card names, got %d", report.CreatedPlayers)
	}
	if len(report.SkippedNames) != 0 {
		t.Errorf("Expected no skipped names, got %v", report.SkippedNames)
	}

	// All three created players join the squad, so the completer fills one
	// batting gap (the bowler) and two bowling gaps (the batters).
	if report.DerivedRows.BattingRows != 1 {
		t.Errorf("Expected 1 derived batting row, got %d", report.DerivedRows.BattingRows)
	}
	if report.DerivedRows.BowlingRows != 2 {
		t.Errorf("Expected 2 derived bowling rows, got %d", report.DerivedRows.BowlingRows)
	}
	if report.DerivedRows.FieldingRows != 3 {
		t.Errorf("Expected 3 derived fielding rows, got %d", report.DerivedRows.FieldingRows)
	}

	// Joe Root: 52 runs + 6 fours + 2 sixes at 2 + fifty bonus = 72 over 4
	// events. Ben Stokes: duck -5. Archer: 2 wickets at 20, a maiden at 5,
	// economy 3.0 bonus 5 = 50 over 3 events.
	if report.EventsCreated != 8 {
		t.Errorf("Expected 8 events, got %d", report.EventsCreated)
	}
	if report.TotalPoints != 117 {
		t.Errorf("Expected 117 total points, got %d", report.TotalPoints)
	}
	if len(repo.events) != report.EventsCreated {
		t.Errorf("Report says %d events, store has %d", report.EventsCreated, len(repo.events))
	}
}

func TestPublishIsSingleShot(t *testing.T) {
	repo := newFakeRepo()
	matchID := seedPublishFixture(repo)
	publisher := NewPublisher(repo)

	if _, err := publisher.Publish(PublishInput{MatchID: matchID}); err != nil {
		t.Fatalf("First publish failed: %v", err)
	}
	_, err := publisher.Publish(PublishInput{MatchID: matchID})
	if !errors.Is(err, ErrAlreadyPublished) {
		t.Errorf("Expected ErrAlreadyPublished on the second publish, got %v", err)
	}
}

func TestPublishRollsBackOnLateFailure(t *testing.T) {
	repo := newFakeRepo()
	matchID := seedPublishFixture(repo)
	repo.appendEventsErr = errors.New("event store unavailable")

	_, err := NewPublisher(repo).Publish(PublishInput{MatchID: matchID})
	if err == nil {
		t.Fatal("Expected publish to fail when event persistence fails")
	}

	if repo.matches[matchID].Published {
		t.Error("A failed publish must leave the match unpublished")
	}
	if len(repo.events) != 0 {
		t.Errorf("A failed publish must persist no events, got %d", len(repo.events))
	}
	unresolved, _ := repo.ListUnresolvedBattingCards(matchID)
	if len(unresolved) != 2 {
		t.Errorf("Card assignments must roll back with the claim, %d cards still unresolved", len(unresolved))
	}

	// The match is still publishable once the failure clears.
	repo.appendEventsErr = nil
	if _, err := NewPublisher(repo).Publish(PublishInput{MatchID: matchID}); err != nil {
		t.Errorf("Retry after a cleared failure must succeed, got %v", err)
	}
}

func TestPublishRequiresActiveFormula(t *testing.T) {
	repo := newFakeRepo()
	matchID := seedPublishFixture(repo)
	delete(repo.formulas, 100)

	_, err := NewPublisher(repo).Publish(PublishInput{MatchID: matchID})
	if !errors.Is(err, ErrNoActiveFormula) {
		t.Errorf("Expected ErrNoActiveFormula, got %v", err)
	}
	if repo.matches[matchID].Published {
		t.Error("Match must stay unpublished without an active formula")
	}
}

func TestPublishUnknownMatch(t *testing.T) {
	repo := newFakeRepo()

	_, err := NewPublisher(repo).Publish(PublishInput{MatchID: 42})
	if !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("Expected ErrMatchNotFound, got %v", err)
	}
}

func TestPublishSkipsUnresolvableNames(t *testing.T) {
	repo := newFakeRepo()
	matchID := seedPublishFixture(repo)
	cardID := repo.addBattingCard(match.BattingCard{
		MatchID: matchID, PlayerName: "Smith", Position: 3, Runs: 12, Dismissed: true,
	})

	report, err := NewPublisher(repo).Publish(PublishInput{MatchID: matchID})
	if err != nil {
		t.Fatalf("Publish must succeed past an unresolvable name, got %v", err)
	}
	if len(report.SkippedNames) != 1 || report.SkippedNames[0] != "Smith" {
		t.Errorf("Expected skipped name Smith, got %v", report.SkippedNames)
	}
	if repo.batting[cardID].PlayerID != nil {
		t.Error("A skipped card must stay unassigned")
	}
}

func TestPublishHonorsExplicitMappings(t *testing.T) {
	repo := newFakeRepo()
	matchID := seedPublishFixture(repo)
	existingID := repo.addPlayer(1, "Joseph", "Root")

	report, err := NewPublisher(repo).Publish(PublishInput{
		MatchID:        matchID,
		PlayerMappings: map[string]uint{"Joe Root": existingID},
	})
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	// Only Stokes and Archer should be auto-created.
	if report.CreatedPlayers != 2 {
		t.Errorf("Expected 2 players created with an explicit mapping in place, got %d", report.CreatedPlayers)
	}
	found := false
	for _, c := range repo.batting {
		if c.PlayerName == "Joe Root" && c.PlayerID != nil && *c.PlayerID == existingID {
			found = true
		}
	}
	if !found {
		t.Error("The mapped card must be assigned to the existing player")
	}
}

func TestRecalculateRequiresPublishedMatch(t *testing.T) {
	repo := newFakeRepo()
	matchID := seedPublishFixture(repo)

	_, err := NewPublisher(repo).Recalculate(matchID)
	if !errors.Is(err, ErrNotPublished) {
		t.Errorf("Expected ErrNotPublished for a draft match, got %v", err)
	}
}

func TestRecalculateAppliesCurrentFormula(t *testing.T) {
	repo := newFakeRepo()
	matchID := seedPublishFixture(repo)
	publisher := NewPublisher(repo)

	first, err := publisher.Publish(PublishInput{MatchID: matchID})
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	// Double the run value, then regenerate.
	updated := standardFormula()
	updated.RunPoints = intPtr(2)
	updated.ID = 2
	repo.formulas[100] = updated

	report, err := publisher.Recalculate(matchID)
	if err != nil {
		t.Fatalf("Recalculate failed: %v", err)
	}
	if report.FormulaID != 2 {
		t.Errorf("Expected recalculation under formula 2, got %d", report.FormulaID)
	}
	// Joe Root's 52 runs now score 104 instead of 52.
	if report.TotalPoints != first.TotalPoints+52 {
		t.Errorf("Expected %d total points after doubling runs, got %d", first.TotalPoints+52, report.TotalPoints)
	}
	if len(repo.events) != report.EventsCreated {
		t.Errorf("Old events must be deleted before regeneration; store has %d, report %d", len(repo.events), report.EventsCreated)
	}
}

func TestMergePlayersFoldsDuplicate(t *testing.T) {
	repo := newFakeRepo()
	matchID := seedPublishFixture(repo)
	publisher := NewPublisher(repo)

	if _, err := publisher.Publish(PublishInput{MatchID: matchID}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	// Find the auto-created Joe Root and a target to fold him into.
	var sourceID uint
	for id, p := range repo.players {
		if p.NormalizedName == "joe root" {
			sourceID = id
		}
	}
	if sourceID == 0 {
		t.Fatal("Fixture player missing")
	}
	targetID := repo.addPlayer(1, "Joseph", "Root")

	if err := publisher.MergePlayers(sourceID, targetID); err != nil {
		t.Fatalf("MergePlayers failed: %v", err)
	}

	if _, ok := repo.players[sourceID]; ok {
		t.Error("Source player must be deleted after the merge")
	}
	for _, c := range repo.batting {
		if c.PlayerID != nil && *c.PlayerID == sourceID {
			t.Error("No card may still reference the source player")
		}
	}
	for _, e := range repo.events {
		if e.PlayerID == sourceID {
			t.Error("No event may still reference the source player")
		}
	}
	// The target inherits the 72-point innings.
	targetPoints := 0
	for _, e := range repo.events {
		if e.PlayerID == targetID {
			targetPoints += e.Points
		}
	}
	if targetPoints != 72 {
		t.Errorf("Expected the target to inherit 72 points, got %d", targetPoints)
	}
}

func TestMergePlayersRejectsSelfMerge(t *testing.T) {
	repo := newFakeRepo()
	id := repo.addPlayer(1, "Joe", "Root")

	if err := NewPublisher(repo).MergePlayers(id, id); err == nil {
		t.Error("Merging a player into itself must fail")
	}
}
