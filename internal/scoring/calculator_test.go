package scoring

import (
	"testing"

	"github.com/robharvey123/cricket-platform-sub001/internal/formula"
	"github.com/robharvey123/cricket-platform-sub001/internal/match"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func standardFormula() *formula.ScoringFormula {
	f := &formula.ScoringFormula{
		RunPoints:               intPtr(1),
		FourPoints:              intPtr(1),
		SixPoints:               intPtr(2),
		Milestone50Points:       intPtr(10),
		Milestone100Points:      intPtr(25),
		DuckPoints:              intPtr(-5),
		WicketPoints:            intPtr(20),
		MaidenPoints:            intPtr(5),
		ThreeWicketPoints:       intPtr(10),
		FiveWicketPoints:        intPtr(25),
		EconomyBonusThreshold:   floatPtr(4.0),
		EconomyBonusPoints:      intPtr(5),
		EconomyPenaltyThreshold: floatPtr(8.0),
		EconomyPenaltyPoints:    intPtr(-5),
	}
	f.ID = 1
	return f
}

func totalPoints(events []PointsEvent) int {
	total := 0
	for _, e := range events {
		total += e.Points
	}
	return total
}

func hasEventType(events []PointsEvent, eventType string) bool {
	for _, e := range events {
		if e.EventType == eventType {
			return true
		}
	}
	return false
}

func TestBattingEventsUnconfiguredFormulaProducesNothing(t *testing.T) {
	card := &match.BattingCard{Runs: 52, Fours: 6, Sixes: 2, Dismissed: true}
	empty := &formula.ScoringFormula{}

	events := BattingEvents(card, empty)
	if len(events) != 0 {
		t.Errorf("Expected no events from an unconfigured formula, got %d", len(events))
	}
}

func TestBattingEventsHalfCenturyInnings(t *testing.T) {
	// 52 off 40 with 6 fours and 2 sixes: runs, fours, sixes and the fifty
	// bonus, and nothing else.
	card := &match.BattingCard{Runs: 52, BallsFaced: 40, Fours: 6, Sixes: 2, Dismissed: true}

	events := BattingEvents(card, standardFormula())
	if len(events) != 4 {
		t.Fatalf("Expected 4 events, got %d", len(events))
	}
	if got := totalPoints(events); got != 72 {
		t.Errorf("Expected 72 total points (52 runs + 6 fours + 4 six points + 10 fifty bonus), got %d", got)
	}
	if !hasEventType(events, EventMilestone50) {
		t.Error("Expected a fifty milestone event")
	}
	if hasEventType(events, EventMilestone100) {
		t.Error("Did not expect a century milestone event for 52 runs")
	}
	if hasEventType(events, EventDuck) {
		t.Error("Did not expect a duck event for 52 runs")
	}
}

func TestBattingEventsCenturySuppressesFifty(t *testing.T) {
	card := &match.BattingCard{Runs: 104, Dismissed: true}

	events := BattingEvents(card, standardFormula())
	if !hasEventType(events, EventMilestone100) {
		t.Error("Expected a century milestone event")
	}
	if hasEventType(events, EventMilestone50) {
		t.Error("Century must suppress the fifty bonus; both fired")
	}
}

func TestBattingEventsCenturyFallsBackToFiftyWhenUnconfigured(t *testing.T) {
	f := standardFormula()
	f.Milestone100Points = nil
	card := &match.BattingCard{Runs: 104, Dismissed: true}

	events := BattingEvents(card, f)
	if !hasEventType(events, EventMilestone50) {
		t.Error("Expected the fifty bonus when the century tier is unconfigured")
	}
	if hasEventType(events, EventMilestone100) {
		t.Error("Unconfigured century tier must not produce an event")
	}
}

func TestBattingEventsDuck(t *testing.T) {
	card := &match.BattingCard{Runs: 0, HowOut: "b Smith", Dismissed: true}

	events := BattingEvents(card, standardFormula())
	if len(events) != 1 {
		t.Fatalf("Expected only the duck event, got %d events", len(events))
	}
	if events[0].EventType != EventDuck || events[0].Points != -5 {
		t.Errorf("Expected duck event worth -5, got %s worth %d", events[0].EventType, events[0].Points)
	}
}

func TestBattingEventsNotOutZeroIsNotADuck(t *testing.T) {
	card := &match.BattingCard{Runs: 0, HowOut: match.NotOutMarker, Dismissed: false}

	events := BattingEvents(card, standardFormula())
	if len(events) != 0 {
		t.Errorf("A not-out nought must not score a duck, got %d events", len(events))
	}
}

func TestBattingEventsExplicitZeroStillFires(t *testing.T) {
	// A configured rule worth zero points is not the same as an
	// unconfigured rule; the event still appears with zero points.
	f := &formula.ScoringFormula{RunPoints: intPtr(0)}
	card := &match.BattingCard{Runs: 30}

	events := BattingEvents(card, f)
	if len(events) != 1 {
		t.Fatalf("Expected a zero-point runs event, got %d events", len(events))
	}
	if events[0].Points != 0 {
		t.Errorf("Expected 0 points, got %d", events[0].Points)
	}
}

func TestBowlingEventsEconomyBonus(t *testing.T) {
	// 24 off 8 overs is an economy of exactly 3.0, inside the 4.0 gate.
	card := &match.BowlingCard{Overs: 8, RunsConceded: 24, Wickets: 2, Maidens: 1}

	events := BowlingEvents(card, standardFormula())
	if !hasEventType(events, EventEconomyBonus) {
		t.Error("Expected an economy bonus at 3.0 against a 4.0 threshold")
	}
	if hasEventType(events, EventEconomyPenalty) {
		t.Error("Did not expect an economy penalty at 3.0")
	}
	// 2 wickets at 20 + 1 maiden at 5 + bonus 5 = 50.
	if got := totalPoints(events); got != 50 {
		t.Errorf("Expected 50 total points, got %d", got)
	}
}

func TestBowlingEventsNoOversNoEconomy(t *testing.T) {
	card := &match.BowlingCard{Overs: 0, RunsConceded: 0}

	events := BowlingEvents(card, standardFormula())
	if hasEventType(events, EventEconomyBonus) || hasEventType(events, EventEconomyPenalty) {
		t.Error("Economy rules must not fire without overs bowled")
	}
}

func TestBowlingEventsFiveWicketsSuppressesThree(t *testing.T) {
	card := &match.BowlingCard{Overs: 10, RunsConceded: 45, Wickets: 5}

	events := BowlingEvents(card, standardFormula())
	if !hasEventType(events, EventFiveWickets) {
		t.Error("Expected a five-wicket milestone")
	}
	if hasEventType(events, EventThreeWickets) {
		t.Error("Five-wicket haul must suppress the three-wicket bonus")
	}
}

func TestBowlingEventsOverlappingThresholdsBothFire(t *testing.T) {
	f := standardFormula()
	f.EconomyBonusThreshold = floatPtr(6.0)
	f.EconomyPenaltyThreshold = floatPtr(5.0)
	// Economy 5.5 satisfies both gates.
	card := &match.BowlingCard{Overs: 10, RunsConceded: 55}

	events := BowlingEvents(card, f)
	if !hasEventType(events, EventEconomyBonus) || !hasEventType(events, EventEconomyPenalty) {
		t.Error("Overlapping thresholds must fire both economy rules")
	}
}
