package team

import (
	"time"

	"github.com/robharvey123/cricket-platform-sub001/internal/club"
	"github.com/robharvey123/cricket-platform-sub001/internal/player"
	"github.com/robharvey123/cricket-platform-sub001/internal/season"

	"gorm.io/gorm"
)

// Team belongs to exactly one season. Deleting a team cascades to its matches
// (destructive, admin-only).
type Team struct {
	gorm.Model
	ClubID   uint          `json:"club_id" gorm:"index;not null"`
	Club     club.Club     `json:"-" gorm:"foreignKey:ClubID"`
	SeasonID uint          `json:"season_id" gorm:"index;not null;uniqueIndex:idx_teams_season_slug"`
	Season   season.Season `json:"-" gorm:"foreignKey:SeasonID"`

	Name string `json:"name" gorm:"not null"`
	Slug string `json:"slug" gorm:"not null;uniqueIndex:idx_teams_season_slug"`

	Squad []SquadMember `json:"squad,omitempty" gorm:"foreignKey:TeamID"`
}

// SquadMember registers a player to a team for its season, independent of
// whether they played in any specific match.
type SquadMember struct {
	gorm.Model
	TeamID   uint          `json:"team_id" gorm:"not null;uniqueIndex:idx_squad_team_player"`
	Team     Team          `json:"-" gorm:"foreignKey:TeamID"`
	PlayerID uint          `json:"player_id" gorm:"not null;index;uniqueIndex:idx_squad_team_player"`
	Player   player.Player `json:"player" gorm:"foreignKey:PlayerID"`

	Role     string    `json:"role,omitempty"` // e.g. "captain", "wicket_keeper"
	JoinedAt time.Time `json:"joined_at"`
}
