package scoring

import (
	"context"
	"testing"

	"github.com/robharvey123/cricket-platform-sub001/internal/match"
)

func seedCompleterFixture(repo *fakeRepo) (matchID uint, squad []uint) {
	m := match.Match{ClubID: 1, SeasonID: 100, TeamID: 10, Published: true}
	m.ID = 1
	repo.addMatch(m)

	for i := 0; i < 11; i++ {
		id := repo.addPlayer(1, "Player", string(rune('A'+i)))
		squad = append(squad, id)
		repo.squads[10] = append(repo.squads[10], id)
	}

	// Eight of the eleven batted.
	for i := 0; i < 8; i++ {
		pid := squad[i]
		repo.addBattingCard(match.BattingCard{
			MatchID:  1,
			PlayerID: &pid,
			Position: i + 1,
			Runs:     10 * i,
		})
	}
	return 1, squad
}

func TestCompleteMatchFillsOnlyMissingPlayers(t *testing.T) {
	repo := newFakeRepo()
	matchID, squad := seedCompleterFixture(repo)

	result, err := NewCompleter(repo).CompleteMatch(matchID, squad)
	if err != nil {
		t.Fatalf("CompleteMatch failed: %v", err)
	}
	if result.BattingRows != 3 {
		t.Errorf("Expected 3 derived batting rows for the 3 players who did not bat, got %d", result.BattingRows)
	}
	if result.BowlingRows != 11 {
		t.Errorf("Expected 11 derived bowling rows when nobody bowled, got %d", result.BowlingRows)
	}
	if result.FieldingRows != 11 {
		t.Errorf("Expected 11 derived fielding rows, got %d", result.FieldingRows)
	}

	// Every squad member now has exactly one batting card.
	ids, _ := repo.ListBattingPlayerIDs(matchID)
	if len(ids) != 11 {
		t.Errorf("Expected 11 distinct batting players after completion, got %d", len(ids))
	}
}

func TestCompleteMatchDerivedRowShape(t *testing.T) {
	repo := newFakeRepo()
	matchID, squad := seedCompleterFixture(repo)

	if _, err := NewCompleter(repo).CompleteMatch(matchID, squad); err != nil {
		t.Fatalf("CompleteMatch failed: %v", err)
	}

	for _, c := range repo.batting {
		if !c.Derived {
			continue
		}
		if c.Runs != 0 || c.BallsFaced != 0 || c.Fours != 0 || c.Sixes != 0 {
			t.Errorf("Derived batting row must be all-zero, got %+v", c)
		}
		if c.Dismissed {
			t.Error("Derived batting row must not be dismissed")
		}
		if c.HowOut != match.DidNotBatMarker {
			t.Errorf("Expected %q marker, got %q", match.DidNotBatMarker, c.HowOut)
		}
		if c.Position != match.DerivedBattingPosition {
			t.Errorf("Expected derived position %d, got %d", match.DerivedBattingPosition, c.Position)
		}
	}
}

func TestCompleteMatchIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	matchID, squad := seedCompleterFixture(repo)
	completer := NewCompleter(repo)

	if _, err := completer.CompleteMatch(matchID, squad); err != nil {
		t.Fatalf("First CompleteMatch failed: %v", err)
	}
	result, err := completer.CompleteMatch(matchID, squad)
	if err != nil {
		t.Fatalf("Second CompleteMatch failed: %v", err)
	}
	if result.Total() != 0 {
		t.Errorf("Second run must insert nothing, got %d rows", result.Total())
	}
}

func TestBackfillClubSkipsUnpublishedMatches(t *testing.T) {
	repo := newFakeRepo()
	matchID, _ := seedCompleterFixture(repo)

	draft := match.Match{ClubID: 1, SeasonID: 100, TeamID: 10, Published: false}
	draft.ID = 2
	repo.addMatch(draft)

	outcomes, err := NewCompleter(repo).BackfillClub(context.Background(), 1)
	if err != nil {
		t.Fatalf("BackfillClub failed: %v", err)
	}
	if len(outcomes) != 1 {
		t.Fatalf("Expected one outcome (draft skipped), got %d", len(outcomes))
	}
	if outcomes[0].MatchID != matchID {
		t.Errorf("Expected outcome for match %d, got %d", matchID, outcomes[0].MatchID)
	}
	if outcomes[0].Rows != 25 {
		t.Errorf("Expected 25 rows (3 batting + 11 bowling + 11 fielding), got %d", outcomes[0].Rows)
	}
}

func TestBackfillClubHonorsCancellation(t *testing.T) {
	repo := newFakeRepo()
	seedCompleterFixture(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCompleter(repo).BackfillClub(ctx, 1)
	if err == nil {
		t.Error("Expected a context error from a cancelled backfill")
	}
}
