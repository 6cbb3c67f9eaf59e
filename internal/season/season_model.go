package season

import (
	"time"

	"github.com/robharvey123/cricket-platform-sub001/internal/club"

	"gorm.io/gorm"
)

// Season is a club-scoped time window. At most one season per club is active
// at a time; activation clears the flag on all siblings in one transaction.
type Season struct {
	gorm.Model
	ClubID uint      `json:"club_id" gorm:"index;not null;uniqueIndex:idx_seasons_club_slug"`
	Club   club.Club `json:"-" gorm:"foreignKey:ClubID"`

	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"not null;uniqueIndex:idx_seasons_club_slug"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active" gorm:"index;default:false"`
}
