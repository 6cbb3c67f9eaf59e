package season

import (
	"errors"

	"gorm.io/gorm"
)

// SeasonRepository defines the interface for season data operations
type SeasonRepository interface {
	CreateSeason(season *Season) error
	GetSeasonByID(id uint) (*Season, error)
	GetSeasonBySlug(clubID uint, slug string) (*Season, error)
	GetActiveSeason(clubID uint) (*Season, error)
	GetSeasonsByClub(clubID uint, page, limit int) ([]Season, int64, error)
	UpdateSeason(season *Season) error
	DeleteSeason(id uint) error
	// ActivateSeason flips the given season active and clears the flag on
	// every other season in the same club, atomically.
	ActivateSeason(clubID, seasonID uint) error
}

type seasonRepository struct {
	db *gorm.DB
}

// NewSeasonRepository creates a new instance of SeasonRepository
func NewSeasonRepository(db *gorm.DB) SeasonRepository {
	return &seasonRepository{db: db}
}

func (r *seasonRepository) CreateSeason(season *Season) error {
	return r.db.Create(season).Error
}

func (r *seasonRepository) GetSeasonByID(id uint) (*Season, error) {
	var s Season
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *seasonRepository) GetSeasonBySlug(clubID uint, slug string) (*Season, error) {
	var s Season
	err := r.db.Where("club_id = ? AND slug = ?", clubID, slug).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *seasonRepository) GetActiveSeason(clubID uint) (*Season, error) {
	var s Season
	err := r.db.Where("club_id = ? AND is_active = ?", clubID, true).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *seasonRepository) GetSeasonsByClub(clubID uint, page, limit int) ([]Season, int64, error) {
	var seasons []Season
	var total int64

	query := r.db.Model(&Season{}).Where("club_id = ?", clubID)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("start_date desc").Find(&seasons).Error; err != nil {
		return nil, 0, err
	}
	return seasons, total, nil
}

func (r *seasonRepository) UpdateSeason(season *Season) error {
	return r.db.Save(season).Error
}

func (r *seasonRepository) DeleteSeason(id uint) error {
	return r.db.Delete(&Season{}, id).Error
}

func (r *seasonRepository) ActivateSeason(clubID, seasonID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Season{}).
			Where("club_id = ? AND id <> ?", clubID, seasonID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		result := tx.Model(&Season{}).
			Where("id = ? AND club_id = ?", seasonID, clubID).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
