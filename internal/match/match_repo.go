package match

import (
	"errors"

	"gorm.io/gorm"
)

// ErrMatchPublished is returned for any scorecard or match write attempted
// after the match has been published. The flag is one-way; published
// scorecards are immutable.
var ErrMatchPublished = errors.New("match is published")

// MatchRepository defines methods to interact with match and scorecard data
type MatchRepository interface {
	// Match methods
	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetMatches(filters map[string]interface{}, page, pageSize int) ([]Match, int64, error)
	UpdateMatch(match *Match) error
	DeleteMatch(id uint) error

	// Innings methods
	CreateInnings(innings *Innings) error
	GetInningsForMatch(matchID uint) ([]Innings, error)
	UpdateInnings(innings *Innings) error

	// Card methods
	CreateBattingCard(card *BattingCard) error
	CreateBowlingCard(card *BowlingCard) error
	CreateFieldingCard(card *FieldingCard) error
	GetBattingCards(matchID uint) ([]BattingCard, error)
	GetBowlingCards(matchID uint) ([]BowlingCard, error)
	GetFieldingCards(matchID uint) ([]FieldingCard, error)
	UpdateBattingCard(card *BattingCard) error
	UpdateBowlingCard(card *BowlingCard) error
	DeleteBattingCard(id uint) error
	DeleteBowlingCard(id uint) error

	// Import batches
	CreateImportBatch(batch *ImportBatch) error
	GetImportBatches(matchID uint) ([]ImportBatch, error)

	// Transaction support
	WithTransaction(txFunc func(MatchRepository) error) error
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction implements transaction support
func (r *GormMatchRepository) WithTransaction(txFunc func(MatchRepository) error) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormMatchRepository{db: tx}
	err := txFunc(txRepo)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// --- Match methods ---

func (r *GormMatchRepository) CreateMatch(match *Match) error {
	return r.db.Create(match).Error
}

func (r *GormMatchRepository) GetMatchByID(id uint) (*Match, error) {
	var m Match
	result := r.db.Preload("Innings").First(&m, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &m, nil
}

func (r *GormMatchRepository) GetMatches(filters map[string]interface{}, page, pageSize int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{})
	if clubID, ok := filters["club_id"]; ok {
		query = query.Where("club_id = ?", clubID)
	}
	if seasonID, ok := filters["season_id"]; ok {
		query = query.Where("season_id = ?", seasonID)
	}
	if teamID, ok := filters["team_id"]; ok {
		query = query.Where("team_id = ?", teamID)
	}
	if published, ok := filters["published"]; ok {
		query = query.Where("published = ?", published)
	}

	query.Count(&total)
	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Order("played_at desc").Find(&matches).Error; err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *GormMatchRepository) UpdateMatch(match *Match) error {
	return r.db.Save(match).Error
}

// DeleteMatch removes the match and everything it owns.
func (r *GormMatchRepository) DeleteMatch(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&BattingCard{}).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", id).Delete(&BowlingCard{}).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", id).Delete(&FieldingCard{}).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", id).Delete(&Innings{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Match{}, id).Error
	})
}

// --- Innings methods ---

func (r *GormMatchRepository) CreateInnings(innings *Innings) error {
	return r.db.Create(innings).Error
}

func (r *GormMatchRepository) GetInningsForMatch(matchID uint) ([]Innings, error) {
	var innings []Innings
	if err := r.db.Where("match_id = ?", matchID).Order("id asc").Find(&innings).Error; err != nil {
		return nil, err
	}
	return innings, nil
}

func (r *GormMatchRepository) UpdateInnings(innings *Innings) error {
	return r.db.Save(innings).Error
}

// --- Card methods ---

func (r *GormMatchRepository) CreateBattingCard(card *BattingCard) error {
	return r.db.Create(card).Error
}

func (r *GormMatchRepository) CreateBowlingCard(card *BowlingCard) error {
	return r.db.Create(card).Error
}

func (r *GormMatchRepository) CreateFieldingCard(card *FieldingCard) error {
	return r.db.Create(card).Error
}

// GetBattingCards lists a match's batting cards, real entries before derived
// zero-rows.
func (r *GormMatchRepository) GetBattingCards(matchID uint) ([]BattingCard, error) {
	var cards []BattingCard
	err := r.db.Preload("Player").Where("match_id = ?", matchID).Order("position asc, id asc").Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *GormMatchRepository) GetBowlingCards(matchID uint) ([]BowlingCard, error) {
	var cards []BowlingCard
	err := r.db.Preload("Player").Where("match_id = ?", matchID).Order("derived asc, id asc").Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *GormMatchRepository) GetFieldingCards(matchID uint) ([]FieldingCard, error) {
	var cards []FieldingCard
	err := r.db.Preload("Player").Where("match_id = ?", matchID).Order("derived asc, id asc").Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *GormMatchRepository) UpdateBattingCard(card *BattingCard) error {
	return r.db.Save(card).Error
}

func (r *GormMatchRepository) UpdateBowlingCard(card *BowlingCard) error {
	return r.db.Save(card).Error
}

func (r *GormMatchRepository) DeleteBattingCard(id uint) error {
	return r.db.Delete(&BattingCard{}, id).Error
}

func (r *GormMatchRepository) DeleteBowlingCard(id uint) error {
	return r.db.Delete(&BowlingCard{}, id).Error
}

// --- Import batches ---

func (r *GormMatchRepository) CreateImportBatch(batch *ImportBatch) error {
	return r.db.Create(batch).Error
}

func (r *GormMatchRepository) GetImportBatches(matchID uint) ([]ImportBatch, error) {
	var batches []ImportBatch
	if err := r.db.Where("match_id = ?", matchID).Order("created_at desc").Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}
