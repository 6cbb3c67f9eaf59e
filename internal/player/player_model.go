package player

import (
	"strings"

	"github.com/robharvey123/cricket-platform-sub001/internal/club"

	"gorm.io/gorm"
)

// Player is a club-scoped identity record. Players are created by admin
// action or by the identity resolver during scorecard import, persist across
// seasons, and are never auto-deleted — only explicitly merged or removed.
type Player struct {
	gorm.Model
	ClubID uint      `json:"club_id" gorm:"not null;uniqueIndex:idx_players_club_normalized"`
	Club   club.Club `json:"-" gorm:"foreignKey:ClubID"`

	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name" gorm:"not null"`
	// NormalizedName backs the resolver's club-scoped uniqueness constraint,
	// so concurrent imports of the same name upsert instead of duplicating.
	NormalizedName string `json:"-" gorm:"not null;uniqueIndex:idx_players_club_normalized"`

	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	// AccountID links to the external identity service's account, when the
	// player has claimed their profile.
	AccountID *uint `json:"account_id,omitempty" gorm:"index"`
}

// NormalizeName canonicalizes a free-text player name for lookup: trim,
// collapse internal whitespace, case-fold.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}
