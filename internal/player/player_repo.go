package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines the interface for player data operations
type PlayerRepository interface {
	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetPlayerByNormalizedName(clubID uint, normalizedName string) (*Player, error)
	GetPlayersByClub(clubID uint, page, limit int, nameFilter string) ([]Player, int64, error)
	ListClubPlayers(clubID uint) ([]Player, error)
	UpdatePlayer(player *Player) error
	DeletePlayer(id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(player *Player) error {
	return r.db.Create(player).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetPlayerByNormalizedName(clubID uint, normalizedName string) (*Player, error) {
	var p Player
	err := r.db.Where("club_id = ? AND normalized_name = ?", clubID, normalizedName).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetPlayersByClub(clubID uint, page, limit int, nameFilter string) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{}).Where("club_id = ?", clubID)
	if nameFilter != "" {
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ?", "%"+nameFilter+"%", "%"+nameFilter+"%")
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("last_name asc, first_name asc").Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

// ListClubPlayers returns the full club roster; the resolver builds its
// per-operation lookup map from this, once per publish/import.
func (r *playerRepository) ListClubPlayers(clubID uint) ([]Player, error) {
	var players []Player
	if err := r.db.Where("club_id = ?", clubID).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) UpdatePlayer(player *Player) error {
	return r.db.Save(player).Error
}

func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Delete(&Player{}, id).Error
}
