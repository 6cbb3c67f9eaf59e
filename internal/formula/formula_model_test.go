package formula

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestThresholdsOverlap(t *testing.T) {
	f := &ScoringFormula{}
	if f.ThresholdsOverlap() {
		t.Error("Unconfigured thresholds must not overlap")
	}

	f.EconomyBonusThreshold = floatPtr(4.0)
	if f.ThresholdsOverlap() {
		t.Error("A single configured threshold must not overlap")
	}

	f.EconomyPenaltyThreshold = floatPtr(8.0)
	if f.ThresholdsOverlap() {
		t.Error("Bonus 4.0 against penalty 8.0 must not overlap")
	}

	f.EconomyBonusThreshold = floatPtr(8.0)
	if !f.ThresholdsOverlap() {
		t.Error("Equal thresholds must overlap; an economy of exactly 8.0 satisfies both gates")
	}

	f.EconomyBonusThreshold = floatPtr(9.0)
	if !f.ThresholdsOverlap() {
		t.Error("Bonus above penalty must overlap")
	}
}
