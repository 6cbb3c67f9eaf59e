package club

import (
	"gorm.io/gorm"
)

// Club is the top-level tenant. Every player, season, team and match belongs
// to exactly one club.
type Club struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null;uniqueIndex"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	// PublicID is the stable external reference used in import URLs.
	PublicID string `json:"public_id" gorm:"uniqueIndex;not null"`
	// APIKeyHash is the bcrypt hash of the scorer API key. The plaintext key
	// is returned exactly once, when generated.
	APIKeyHash string `json:"-"`
}
