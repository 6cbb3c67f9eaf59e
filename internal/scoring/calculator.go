package scoring

import (
	"github.com/robharvey123/cricket-platform-sub001/internal/formula"
	"github.com/robharvey123/cricket-platform-sub001/internal/match"
)

// The calculator is a pure mapping from a card and a formula to a list of
// event drafts. It never touches storage; persistence belongs to the
// publisher. A nil formula field means the rule is unconfigured and produces
// nothing; an explicit zero is a configured rule and still produces its
// event. Count-gated rules (runs, boundaries, wickets, maidens) additionally
// require a non-zero observed count.

// BattingEvents derives the point events a batting card earns under the
// given formula. The returned drafts carry category, type, points and
// metadata; the caller stamps match/player/formula identifiers.
func BattingEvents(card *match.BattingCard, f *formula.ScoringFormula) []PointsEvent {
	var events []PointsEvent

	if f.RunPoints != nil && card.Runs > 0 {
		events = append(events, PointsEvent{
			Category:  CategoryBatting,
			EventType: EventRuns,
			Points:    card.Runs * *f.RunPoints,
			Metadata:  metaJSON(map[string]interface{}{"runs": card.Runs}),
		})
	}

	// Boundary bonuses are separate reward categories from the raw run
	// total, so they stack with the runs rule.
	if f.FourPoints != nil && card.Fours > 0 {
		events = append(events, PointsEvent{
			Category:  CategoryBatting,
			EventType: EventFour,
			Points:    card.Fours * *f.FourPoints,
			Metadata:  metaJSON(map[string]interface{}{"fours": card.Fours}),
		})
	}
	if f.SixPoints != nil && card.Sixes > 0 {
		events = append(events, PointsEvent{
			Category:  CategoryBatting,
			EventType: EventSix,
			Points:    card.Sixes * *f.SixPoints,
			Metadata:  metaJSON(map[string]interface{}{"sixes": card.Sixes}),
		})
	}

	// Milestones are mutually exclusive: highest qualifying tier wins, so a
	// century never also collects the fifty bonus.
	if card.Runs >= 100 && f.Milestone100Points != nil {
		events = append(events, PointsEvent{
			Category:  CategoryBatting,
			EventType: EventMilestone100,
			Points:    *f.Milestone100Points,
			Metadata:  metaJSON(map[string]interface{}{"runs": card.Runs}),
		})
	} else if card.Runs >= 50 && f.Milestone50Points != nil {
		events = append(events, PointsEvent{
			Category:  CategoryBatting,
			EventType: EventMilestone50,
			Points:    *f.Milestone50Points,
			Metadata:  metaJSON(map[string]interface{}{"runs": card.Runs}),
		})
	}

	// Duck: dismissed for nought. "Not out" and "did not bat" rows never
	// qualify; derived zero-rows are never dismissed.
	if f.DuckPoints != nil && card.Runs == 0 && card.Dismissed {
		events = append(events, PointsEvent{
			Category:  CategoryBatting,
			EventType: EventDuck,
			Points:    *f.DuckPoints,
			Metadata:  metaJSON(map[string]interface{}{"how_out": card.HowOut}),
		})
	}

	return events
}

// BowlingEvents derives the point events a bowling card earns under the
// given formula.
func BowlingEvents(card *match.BowlingCard, f *formula.ScoringFormula) []PointsEvent {
	var events []PointsEvent

	if f.WicketPoints != nil && card.Wickets > 0 {
		events = append(events, PointsEvent{
			Category:  CategoryBowling,
			EventType: EventWicket,
			Points:    card.Wickets * *f.WicketPoints,
			Metadata:  metaJSON(map[string]interface{}{"wickets": card.Wickets}),
		})
	}
	if f.MaidenPoints != nil && card.Maidens > 0 {
		events = append(events, PointsEvent{
			Category:  CategoryBowling,
			EventType: EventMaiden,
			Points:    card.Maidens * *f.MaidenPoints,
			Metadata:  metaJSON(map[string]interface{}{"maidens": card.Maidens}),
		})
	}

	// Wicket milestones mirror the run milestones: highest tier only.
	if card.Wickets >= 5 && f.FiveWicketPoints != nil {
		events = append(events, PointsEvent{
			Category:  CategoryBowling,
			EventType: EventFiveWickets,
			Points:    *f.FiveWicketPoints,
			Metadata:  metaJSON(map[string]interface{}{"wickets": card.Wickets}),
		})
	} else if card.Wickets >= 3 && f.ThreeWicketPoints != nil {
		events = append(events, PointsEvent{
			Category:  CategoryBowling,
			EventType: EventThreeWickets,
			Points:    *f.ThreeWicketPoints,
			Metadata:  metaJSON(map[string]interface{}{"wickets": card.Wickets}),
		})
	}

	// Economy is undefined without overs; neither rule fires then. When the
	// configured thresholds overlap, both rules fire — that is the observed
	// behavior for a misconfigured formula and is deliberately not resolved
	// here (the formula layer warns on save).
	if card.Overs > 0 {
		economy := float64(card.RunsConceded) / card.Overs
		if f.EconomyBonusThreshold != nil && f.EconomyBonusPoints != nil && economy <= *f.EconomyBonusThreshold {
			events = append(events, PointsEvent{
				Category:  CategoryBowling,
				EventType: EventEconomyBonus,
				Points:    *f.EconomyBonusPoints,
				Metadata:  metaJSON(map[string]interface{}{"economy": economy, "threshold": *f.EconomyBonusThreshold}),
			})
		}
		if f.EconomyPenaltyThreshold != nil && f.EconomyPenaltyPoints != nil && economy >= *f.EconomyPenaltyThreshold {
			events = append(events, PointsEvent{
				Category:  CategoryBowling,
				EventType: EventEconomyPenalty,
				Points:    *f.EconomyPenaltyPoints,
				Metadata:  metaJSON(map[string]interface{}{"economy": economy, "threshold": *f.EconomyPenaltyThreshold}),
			})
		}
	}

	return events
}
