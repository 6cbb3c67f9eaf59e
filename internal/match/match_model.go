package match

import (
	"time"

	"github.com/robharvey123/cricket-platform-sub001/internal/club"
	"github.com/robharvey123/cricket-platform-sub001/internal/player"
	"github.com/robharvey123/cricket-platform-sub001/internal/season"
	"github.com/robharvey123/cricket-platform-sub001/internal/team"

	"gorm.io/gorm"
)

// HomeAway identifies which side was batting in an innings.
type HomeAway string

const (
	SideHome HomeAway = "home"
	SideAway HomeAway = "away"
)

// Dismissal markers used on batting cards. Anything not in the non-dismissal
// set counts as out for duck detection.
const (
	NotOutMarker    = "not out"
	DidNotBatMarker = "did not bat"
)

// DerivedBattingPosition sorts machine-generated zero-rows after every real
// batting entry in a card listing.
const DerivedBattingPosition = 99

// Match belongs to one team/season. The published flag is a one-way gate:
// once true, scorecard edits and repeated scoring are rejected.
type Match struct {
	gorm.Model
	ClubID   uint          `json:"club_id" gorm:"index;not null"`
	Club     club.Club     `json:"-" gorm:"foreignKey:ClubID"`
	SeasonID uint          `json:"season_id" gorm:"index;not null"`
	Season   season.Season `json:"-" gorm:"foreignKey:SeasonID"`
	TeamID   uint          `json:"team_id" gorm:"index;not null"`
	Team     team.Team     `json:"-" gorm:"foreignKey:TeamID"`

	Opponent  string    `json:"opponent" gorm:"not null"`
	PlayedAt  time.Time `json:"played_at" gorm:"index"`
	Venue     string    `json:"venue,omitempty"`
	HomeAway  HomeAway  `json:"home_away" gorm:"default:'home'"`
	Result    string    `json:"result,omitempty"` // e.g. "Won by 24 runs"
	Published bool      `json:"published" gorm:"index;default:false"`

	Innings      []Innings     `json:"innings,omitempty" gorm:"foreignKey:MatchID"`
	BattingCards []BattingCard `json:"batting_cards,omitempty" gorm:"foreignKey:MatchID"`
	BowlingCards []BowlingCard `json:"bowling_cards,omitempty" gorm:"foreignKey:MatchID"`
}

// Innings records one side's aggregate batting totals for a match.
type Innings struct {
	gorm.Model
	MatchID uint     `json:"match_id" gorm:"index;not null"`
	Match   Match    `json:"-" gorm:"foreignKey:MatchID"`
	Side    HomeAway `json:"side" gorm:"not null"`

	Runs    int     `json:"runs" gorm:"default:0"`
	Wickets int     `json:"wickets" gorm:"default:0"`
	Overs   float64 `json:"overs" gorm:"default:0"`
	Extras  int     `json:"extras" gorm:"default:0"`
}

// BattingCard is a per-player batting line. PlayerID is nullable: it is
// populated at import time or by the identity resolver during publication.
// Derived rows are machine-generated placeholders for squad members who did
// not bat.
type BattingCard struct {
	gorm.Model
	MatchID   uint     `json:"match_id" gorm:"index;not null"`
	Match     Match    `json:"-" gorm:"foreignKey:MatchID"`
	InningsID *uint    `json:"innings_id,omitempty" gorm:"index"`
	Innings   *Innings `json:"-" gorm:"foreignKey:InningsID"`

	PlayerID   *uint          `json:"player_id,omitempty" gorm:"index"`
	Player     *player.Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
	PlayerName string         `json:"player_name,omitempty"` // raw name from import

	Position   int    `json:"position" gorm:"default:0"` // batting order, 1-indexed
	Runs       int    `json:"runs" gorm:"default:0"`
	BallsFaced int    `json:"balls_faced" gorm:"default:0"`
	Fours      int    `json:"fours" gorm:"default:0"`
	Sixes      int    `json:"sixes" gorm:"default:0"`
	HowOut     string `json:"how_out,omitempty"` // dismissal text, "not out" or "did not bat"
	Dismissed  bool   `json:"dismissed" gorm:"default:false"`
	Derived    bool   `json:"derived" gorm:"index;default:false"`
}

// BowlingCard is a per-player bowling line; same identity rules as BattingCard.
type BowlingCard struct {
	gorm.Model
	MatchID   uint     `json:"match_id" gorm:"index;not null"`
	Match     Match    `json:"-" gorm:"foreignKey:MatchID"`
	InningsID *uint    `json:"innings_id,omitempty" gorm:"index"`
	Innings   *Innings `json:"-" gorm:"foreignKey:InningsID"`

	PlayerID   *uint          `json:"player_id,omitempty" gorm:"index"`
	Player     *player.Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
	PlayerName string         `json:"player_name,omitempty"`

	Overs        float64 `json:"overs" gorm:"default:0"`
	Maidens      int     `json:"maidens" gorm:"default:0"`
	RunsConceded int     `json:"runs_conceded" gorm:"default:0"`
	Wickets      int     `json:"wickets" gorm:"default:0"`
	Wides        int     `json:"wides" gorm:"default:0"`
	NoBalls      int     `json:"no_balls" gorm:"default:0"`
	Derived      bool    `json:"derived" gorm:"index;default:false"`
}

// FieldingCard is a per-player fielding line for a match.
type FieldingCard struct {
	gorm.Model
	MatchID uint  `json:"match_id" gorm:"index;not null"`
	Match   Match `json:"-" gorm:"foreignKey:MatchID"`

	PlayerID   *uint          `json:"player_id,omitempty" gorm:"index"`
	Player     *player.Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
	PlayerName string         `json:"player_name,omitempty"`

	Catches   int  `json:"catches" gorm:"default:0"`
	Stumpings int  `json:"stumpings" gorm:"default:0"`
	RunOuts   int  `json:"run_outs" gorm:"default:0"`
	Derived   bool `json:"derived" gorm:"index;default:false"`
}

// ImportBatch records one scorecard-draft ingestion (the JSON produced
// upstream by the external document-understanding step).
type ImportBatch struct {
	gorm.Model
	ClubID    uint   `json:"club_id" gorm:"index;not null"`
	MatchID   uint   `json:"match_id" gorm:"index;not null"`
	Reference string `json:"reference" gorm:"uniqueIndex;not null"` // uuid handed back to the caller
	CardCount int    `json:"card_count" gorm:"default:0"`
	Source    string `json:"source,omitempty"` // e.g. original document name
}
