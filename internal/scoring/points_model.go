package scoring

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Point event categories.
const (
	CategoryBatting  = "batting"
	CategoryBowling  = "bowling"
	CategoryFielding = "fielding"
)

// Point event types, one per scoring rule.
const (
	EventRuns           = "runs"
	EventFour           = "four"
	EventSix            = "six"
	EventMilestone50    = "milestone_50"
	EventMilestone100   = "milestone_100"
	EventDuck           = "duck"
	EventWicket         = "wicket"
	EventMaiden         = "maiden"
	EventThreeWickets   = "milestone_3_wickets"
	EventFiveWickets    = "milestone_5_wickets"
	EventEconomyBonus   = "economy_bonus"
	EventEconomyPenalty = "economy_penalty"
)

// PointsEvent is an immutable append-only record of a single triggered
// scoring rule. Events are generated exactly once per (match, formula) pair
// during publication and are never mutated — only deleted and regenerated by
// an explicit recalculation scoped to the affected players.
type PointsEvent struct {
	gorm.Model
	MatchID   uint   `json:"match_id" gorm:"index;not null"`
	PlayerID  uint   `json:"player_id" gorm:"index;not null"`
	FormulaID uint   `json:"formula_id" gorm:"index;not null"`
	Category  string `json:"category" gorm:"not null"`
	EventType string `json:"event_type" gorm:"not null"`
	Points    int    `json:"points" gorm:"not null"`
	Metadata  string `json:"metadata,omitempty" gorm:"type:json"`
}

// metaJSON renders event metadata; marshal failures degrade to empty.
func metaJSON(fields map[string]interface{}) string {
	b, err := json.Marshal(fields)
	if err != nil {
		return ""
	}
	return string(b)
}
