package formula

import (
	"github.com/robharvey123/cricket-platform-sub001/internal/season"

	"gorm.io/gorm"
)

// ScoringFormula is the season-scoped scoring configuration. Every point
// value is a pointer: nil means the rule is not configured and produces no
// events, while an explicit zero is a configured rule worth zero points. The
// two must not be conflated.
type ScoringFormula struct {
	gorm.Model
	SeasonID uint          `json:"season_id" gorm:"index;not null"`
	Season   season.Season `json:"-" gorm:"foreignKey:SeasonID"`

	Name     string `json:"name" gorm:"not null"`
	IsActive bool   `json:"is_active" gorm:"index;default:false"`

	// Batting
	RunPoints          *int `json:"run_points,omitempty"`
	FourPoints         *int `json:"four_points,omitempty"`
	SixPoints          *int `json:"six_points,omitempty"`
	Milestone50Points  *int `json:"milestone_50_points,omitempty"`
	Milestone100Points *int `json:"milestone_100_points,omitempty"`
	DuckPoints         *int `json:"duck_points,omitempty"`

	// Bowling
	WicketPoints            *int     `json:"wicket_points,omitempty"`
	MaidenPoints            *int     `json:"maiden_points,omitempty"`
	ThreeWicketPoints       *int     `json:"three_wicket_points,omitempty"`
	FiveWicketPoints        *int     `json:"five_wicket_points,omitempty"`
	EconomyBonusThreshold   *float64 `json:"economy_bonus_threshold,omitempty"`
	EconomyBonusPoints      *int     `json:"economy_bonus_points,omitempty"`
	EconomyPenaltyThreshold *float64 `json:"economy_penalty_threshold,omitempty"`
	EconomyPenaltyPoints    *int     `json:"economy_penalty_points,omitempty"`
}

// ThresholdsOverlap reports whether a bowling figure could satisfy both the
// economy bonus and penalty gates at once (bonus threshold >= penalty
// threshold). That is a configuration mistake; when it happens both rules
// fire, which is the observed behavior, so we warn rather than pick a winner.
func (f *ScoringFormula) ThresholdsOverlap() bool {
	if f.EconomyBonusThreshold == nil || f.EconomyPenaltyThreshold == nil {
		return false
	}
	return *f.EconomyBonusThreshold >= *f.EconomyPenaltyThreshold
}
