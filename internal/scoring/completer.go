package scoring

import (
	"context"
	"fmt"
	"log"

	"github.com/robharvey123/cricket-platform-sub001/internal/match"
)

// Completer fills participation gaps: every squad member of a match's team
// gets a batting, bowling and fielding row, so season aggregates divide by
// the same denominator for everyone. Derived rows are all-zero, flagged, and
// never overwrite real entries.
type Completer struct {
	repo Repository
}

func NewCompleter(repo Repository) *Completer {
	return &Completer{repo: repo}
}

// CompletionResult counts the derived rows inserted per card kind.
type CompletionResult struct {
	BattingRows  int `json:"batting_rows"`
	BowlingRows  int `json:"bowling_rows"`
	FieldingRows int `json:"fielding_rows"`
}

func (r CompletionResult) Total() int {
	return r.BattingRows + r.BowlingRows + r.FieldingRows
}

// CompleteMatch inserts derived zero-rows for every squad player missing a
// card of each kind. A failed insert is logged and skipped; one bad row must
// not abort the rest of the fill.
func (c *Completer) CompleteMatch(matchID uint, squadPlayerIDs []uint) (*CompletionResult, error) {
	result := &CompletionResult{}

	battingIDs, err := c.repo.ListBattingPlayerIDs(matchID)
	if err != nil {
		return nil, fmt.Errorf("listing batting players: %w", err)
	}
	for _, playerID := range missingFrom(squadPlayerIDs, battingIDs) {
		pid := playerID
		card := &match.BattingCard{
			MatchID:  matchID,
			PlayerID: &pid,
			Position: match.DerivedBattingPosition,
			HowOut:   match.DidNotBatMarker,
			Derived:  true,
		}
		if err := c.repo.InsertDerivedBattingCard(card); err != nil {
			log.Printf("completer: batting zero-row for player %d in match %d: %v", playerID, matchID, err)
			continue
		}
		result.BattingRows++
	}

	bowlingIDs, err := c.repo.ListBowlingPlayerIDs(matchID)
	if err != nil {
		return nil, fmt.Errorf("listing bowling players: %w", err)
	}
	for _, playerID := range missingFrom(squadPlayerIDs, bowlingIDs) {
		pid := playerID
		card := &match.BowlingCard{
			MatchID:  matchID,
			PlayerID: &pid,
			Derived:  true,
		}
		if err := c.repo.InsertDerivedBowlingCard(card); err != nil {
			log.Printf("completer: bowling zero-row for player %d in match %d: %v", playerID, matchID, err)
			continue
		}
		result.BowlingRows++
	}

	fieldingIDs, err := c.repo.ListFieldingPlayerIDs(matchID)
	if err != nil {
		return nil, fmt.Errorf("listing fielding players: %w", err)
	}
	for _, playerID := range missingFrom(squadPlayerIDs, fieldingIDs) {
		pid := playerID
		card := &match.FieldingCard{
			MatchID:  matchID,
			PlayerID: &pid,
			Derived:  true,
		}
		if err := c.repo.InsertDerivedFieldingCard(card); err != nil {
			log.Printf("completer: fielding zero-row for player %d in match %d: %v", playerID, matchID, err)
			continue
		}
		result.FieldingRows++
	}

	return result, nil
}

// MatchOutcome is the per-match result of a club-wide backfill run.
type MatchOutcome struct {
	MatchID uint   `json:"match_id"`
	Rows    int    `json:"rows_inserted"`
	Error   string `json:"error,omitempty"`
}

// BackfillClub re-runs gap filling across every published match of a club.
// It is idempotent (a complete match inserts nothing) and respects ctx
// cancellation between matches. One match's failure is recorded in its
// outcome and does not stop the sweep.
func (c *Completer) BackfillClub(ctx context.Context, clubID uint) ([]MatchOutcome, error) {
	matches, err := c.repo.ListMatchesByClub(clubID)
	if err != nil {
		return nil, fmt.Errorf("listing club matches: %w", err)
	}

	var outcomes []MatchOutcome
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		if !m.Published {
			continue
		}

		squadIDs, err := c.repo.ListSquadPlayerIDs(m.TeamID)
		if err != nil {
			outcomes = append(outcomes, MatchOutcome{MatchID: m.ID, Error: err.Error()})
			continue
		}
		result, err := c.CompleteMatch(m.ID, squadIDs)
		if err != nil {
			outcomes = append(outcomes, MatchOutcome{MatchID: m.ID, Error: err.Error()})
			continue
		}
		outcomes = append(outcomes, MatchOutcome{MatchID: m.ID, Rows: result.Total()})
	}
	return outcomes, nil
}

// missingFrom returns the squad IDs with no entry in present.
func missingFrom(squad, present []uint) []uint {
	seen := make(map[uint]bool, len(present))
	for _, id := range present {
		seen[id] = true
	}
	var missing []uint
	for _, id := range squad {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
