package scoring

import (
	"errors"
	"fmt"
	"log"

	"github.com/robharvey123/cricket-platform-sub001/internal/formula"
)

// Publisher drives the publication pipeline: claim the one-way published
// flag, resolve card identities, fill zero-rows, compute point events. The
// whole run executes inside a single repository transaction with the claim
// first, so concurrent publishers serialize on the match row and any later
// failure rolls the claim back.
type Publisher struct {
	repo Repository
}

func NewPublisher(repo Repository) *Publisher {
	return &Publisher{repo: repo}
}

// PublishInput carries the publish request. PlayerMappings are explicit
// name-to-player overrides, keyed by the card's raw name; unmapped names
// fall back to automatic resolution.
type PublishInput struct {
	MatchID        uint
	PlayerMappings map[string]uint
}

// PublishReport summarizes one publication run.
type PublishReport struct {
	MatchID        uint             `json:"match_id"`
	FormulaID      uint             `json:"formula_id"`
	ResolvedCards  int              `json:"resolved_cards"`
	CreatedPlayers int              `json:"created_players"`
	SkippedNames   []string         `json:"skipped_names,omitempty"`
	DerivedRows    CompletionResult `json:"derived_rows"`
	EventsCreated  int              `json:"events_created"`
	TotalPoints    int              `json:"total_points"`
}

// Publish runs the full pipeline for one match. It returns
// ErrAlreadyPublished when the match is already out, ErrMatchNotFound when
// it does not exist, and ErrNoActiveFormula when the match's season has no
// active scoring configuration. On any error the match remains unpublished.
func (p *Publisher) Publish(input PublishInput) (*PublishReport, error) {
	report := &PublishReport{MatchID: input.MatchID}

	err := p.repo.WithTransaction(func(tx Repository) error {
		m, err := tx.GetMatch(input.MatchID)
		if err != nil {
			return err
		}
		if m == nil {
			return ErrMatchNotFound
		}
		if m.Published {
			return ErrAlreadyPublished
		}

		// Claim before doing any work. The conditional update locks the
		// match row for the rest of the transaction, so a concurrent
		// publisher blocks here and then observes zero rows affected.
		claimed, err := tx.ClaimPublish(m.ID)
		if err != nil {
			return err
		}
		if !claimed {
			return ErrAlreadyPublished
		}

		f, err := tx.GetActiveFormula(m.SeasonID)
		if err != nil {
			return err
		}
		if f == nil {
			return ErrNoActiveFormula
		}
		if f.ThresholdsOverlap() {
			log.Printf("publisher: formula %d has overlapping economy thresholds, both rules will fire", f.ID)
		}
		report.FormulaID = f.ID

		resolver, err := NewResolver(tx, m.ClubID, m.TeamID, m.SeasonID)
		if err != nil {
			return err
		}
		if err := p.resolveCards(tx, resolver, m.ID, input.PlayerMappings, report); err != nil {
			return err
		}
		report.CreatedPlayers = resolver.CreatedCount()

		// Squad is read after resolution so players created from card
		// names are part of the zero-row denominator.
		squadIDs, err := tx.ListSquadPlayerIDs(m.TeamID)
		if err != nil {
			return err
		}
		completion, err := NewCompleter(tx).CompleteMatch(m.ID, squadIDs)
		if err != nil {
			return err
		}
		report.DerivedRows = *completion

		events, err := computeMatchEvents(tx, m.ID, f)
		if err != nil {
			return err
		}
		if err := tx.AppendEvents(events); err != nil {
			return err
		}
		report.EventsCreated = len(events)
		for _, e := range events {
			report.TotalPoints += e.Points
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// resolveCards assigns a player to every card still missing one. Explicit
// mappings win; otherwise the resolver matches or creates a player from the
// raw name. A name the resolver rejects skips its card and is reported, not
// fatal.
func (p *Publisher) resolveCards(tx Repository, resolver *Resolver, matchID uint, mappings map[string]uint, report *PublishReport) error {
	resolve := func(rawName string) (uint, bool, error) {
		if id, ok := mappings[rawName]; ok {
			return id, true, nil
		}
		id, err := resolver.Resolve(rawName)
		if err != nil {
			if isSkippable(err) {
				report.SkippedNames = append(report.SkippedNames, rawName)
				return 0, false, nil
			}
			return 0, false, err
		}
		return id, true, nil
	}

	batting, err := tx.ListUnresolvedBattingCards(matchID)
	if err != nil {
		return err
	}
	for _, card := range batting {
		id, ok, err := resolve(card.PlayerName)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := tx.AssignBattingPlayer(card.ID, id); err != nil {
			return err
		}
		report.ResolvedCards++
	}

	bowling, err := tx.ListUnresolvedBowlingCards(matchID)
	if err != nil {
		return err
	}
	for _, card := range bowling {
		id, ok, err := resolve(card.PlayerName)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := tx.AssignBowlingPlayer(card.ID, id); err != nil {
			return err
		}
		report.ResolvedCards++
	}

	fielding, err := tx.ListUnresolvedFieldingCards(matchID)
	if err != nil {
		return err
	}
	for _, card := range fielding {
		id, ok, err := resolve(card.PlayerName)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := tx.AssignFieldingPlayer(card.ID, id); err != nil {
			return err
		}
		report.ResolvedCards++
	}
	return nil
}

// ResolveReport summarizes a standalone identity resolution pass.
type ResolveReport struct {
	MatchID        uint     `json:"match_id"`
	ResolvedCards  int      `json:"resolved_cards"`
	CreatedPlayers int      `json:"created_players"`
	SkippedNames   []string `json:"skipped_names,omitempty"`
}

// ResolvePlayers runs identity resolution over a match's unresolved cards
// without publishing. Useful for fixing up a draft before the publish run;
// the publish pipeline repeats resolution for anything still unresolved.
func (p *Publisher) ResolvePlayers(matchID uint, mappings map[string]uint) (*ResolveReport, error) {
	report := &ResolveReport{MatchID: matchID}

	err := p.repo.WithTransaction(func(tx Repository) error {
		m, err := tx.GetMatch(matchID)
		if err != nil {
			return err
		}
		if m == nil {
			return ErrMatchNotFound
		}
		if m.Published {
			return ErrAlreadyPublished
		}

		resolver, err := NewResolver(tx, m.ClubID, m.TeamID, m.SeasonID)
		if err != nil {
			return err
		}
		inner := &PublishReport{}
		if err := p.resolveCards(tx, resolver, m.ID, mappings, inner); err != nil {
			return err
		}
		report.ResolvedCards = inner.ResolvedCards
		report.SkippedNames = inner.SkippedNames
		report.CreatedPlayers = resolver.CreatedCount()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// RecalculateReport summarizes a recalculation run.
type RecalculateReport struct {
	MatchID        uint `json:"match_id"`
	FormulaID      uint `json:"formula_id"`
	PlayersCleared int  `json:"players_cleared"`
	EventsCreated  int  `json:"events_created"`
	TotalPoints    int  `json:"total_points"`
}

// Recalculate regenerates point events for an already published match under
// the season's current active formula. Prior events for the match's players
// are deleted first so the append-only store never double counts. Matches
// not yet published are rejected with ErrNotPublished.
func (p *Publisher) Recalculate(matchID uint) (*RecalculateReport, error) {
	report := &RecalculateReport{MatchID: matchID}

	err := p.repo.WithTransaction(func(tx Repository) error {
		m, err := tx.GetMatch(matchID)
		if err != nil {
			return err
		}
		if m == nil {
			return ErrMatchNotFound
		}
		if !m.Published {
			return ErrNotPublished
		}

		f, err := tx.GetActiveFormula(m.SeasonID)
		if err != nil {
			return err
		}
		if f == nil {
			return ErrNoActiveFormula
		}
		report.FormulaID = f.ID

		playerIDs, err := matchPlayerIDs(tx, matchID)
		if err != nil {
			return err
		}
		if err := tx.DeleteEventsForPlayers(matchID, playerIDs); err != nil {
			return err
		}
		report.PlayersCleared = len(playerIDs)

		events, err := computeMatchEvents(tx, matchID, f)
		if err != nil {
			return err
		}
		if err := tx.AppendEvents(events); err != nil {
			return err
		}
		report.EventsCreated = len(events)
		for _, e := range events {
			report.TotalPoints += e.Points
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// MergePlayers folds one player record into another: every card of the
// source is reassigned to the target, events for every published match the
// source appeared in are regenerated under the target identity, and the
// source record is removed. Used when the resolver created a duplicate from
// a name variant.
func (p *Publisher) MergePlayers(sourceID, targetID uint) error {
	if sourceID == targetID {
		return fmt.Errorf("cannot merge player %d into itself", sourceID)
	}

	return p.repo.WithTransaction(func(tx Repository) error {
		for _, id := range []uint{sourceID, targetID} {
			p, err := tx.GetPlayer(id)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("player %d: %w", id, ErrPlayerNotFound)
			}
		}

		source, err := tx.ListMatchIDsForPlayer(sourceID)
		if err != nil {
			return err
		}
		if err := tx.ReassignCards(sourceID, targetID); err != nil {
			return err
		}
		if err := tx.DeletePlayerRecord(sourceID); err != nil {
			return err
		}

		for _, matchID := range source {
			m, err := tx.GetMatch(matchID)
			if err != nil {
				return err
			}
			if m == nil || !m.Published {
				continue
			}
			f, err := tx.GetActiveFormula(m.SeasonID)
			if err != nil {
				return err
			}
			if f == nil {
				return fmt.Errorf("match %d: %w", matchID, ErrNoActiveFormula)
			}
			if err := tx.DeleteEventsForPlayers(matchID, []uint{sourceID, targetID}); err != nil {
				return err
			}
			events, err := computePlayerEvents(tx, matchID, targetID, f)
			if err != nil {
				return err
			}
			if err := tx.AppendEvents(events); err != nil {
				return err
			}
		}
		return nil
	})
}

// computeMatchEvents runs the calculator over every resolved card of a
// match and stamps the identifiers the calculator leaves blank.
func computeMatchEvents(tx Repository, matchID uint, f *formula.ScoringFormula) ([]PointsEvent, error) {
	batting, err := tx.ListBattingCardsForScoring(matchID)
	if err != nil {
		return nil, err
	}
	bowling, err := tx.ListBowlingCardsForScoring(matchID)
	if err != nil {
		return nil, err
	}

	var events []PointsEvent
	for i := range batting {
		for _, e := range BattingEvents(&batting[i], f) {
			e.MatchID = matchID
			e.PlayerID = *batting[i].PlayerID
			e.FormulaID = f.ID
			events = append(events, e)
		}
	}
	for i := range bowling {
		for _, e := range BowlingEvents(&bowling[i], f) {
			e.MatchID = matchID
			e.PlayerID = *bowling[i].PlayerID
			e.FormulaID = f.ID
			events = append(events, e)
		}
	}
	return events, nil
}

// computePlayerEvents recomputes events for a single player within a match.
func computePlayerEvents(tx Repository, matchID, playerID uint, f *formula.ScoringFormula) ([]PointsEvent, error) {
	all, err := computeMatchEvents(tx, matchID, f)
	if err != nil {
		return nil, err
	}
	var events []PointsEvent
	for _, e := range all {
		if e.PlayerID == playerID {
			events = append(events, e)
		}
	}
	return events, nil
}

// matchPlayerIDs collects the distinct players holding any card in a match.
func matchPlayerIDs(tx Repository, matchID uint) ([]uint, error) {
	batting, err := tx.ListBattingPlayerIDs(matchID)
	if err != nil {
		return nil, err
	}
	bowling, err := tx.ListBowlingPlayerIDs(matchID)
	if err != nil {
		return nil, err
	}
	fielding, err := tx.ListFieldingPlayerIDs(matchID)
	if err != nil {
		return nil, err
	}
	seen := make(map[uint]bool, len(batting))
	ids := make([]uint, 0, len(batting))
	for _, group := range [][]uint{batting, bowling, fielding} {
		for _, id := range group {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

// isSkippable reports whether a resolution failure should skip the card
// rather than abort publication.
func isSkippable(err error) bool {
	return errors.Is(err, ErrInvalidNameFormat)
}
