package formula

import (
	"errors"

	"gorm.io/gorm"
)

// FormulaRepository defines the interface for scoring formula data operations
type FormulaRepository interface {
	CreateFormula(formula *ScoringFormula) error
	GetFormulaByID(id uint) (*ScoringFormula, error)
	// GetActiveFormula returns the single active formula for the season, or
	// nil when none is configured.
	GetActiveFormula(seasonID uint) (*ScoringFormula, error)
	GetFormulasBySeason(seasonID uint) ([]ScoringFormula, error)
	UpdateFormula(formula *ScoringFormula) error
	DeleteFormula(id uint) error
	// ActivateFormula flips the given formula active and clears the flag on
	// every other formula in the same season, atomically.
	ActivateFormula(seasonID, formulaID uint) error
}

type formulaRepository struct {
	db *gorm.DB
}

// NewFormulaRepository creates a new instance of FormulaRepository
func NewFormulaRepository(db *gorm.DB) FormulaRepository {
	return &formulaRepository{db: db}
}

func (r *formulaRepository) CreateFormula(formula *ScoringFormula) error {
	return r.db.Create(formula).Error
}

func (r *formulaRepository) GetFormulaByID(id uint) (*ScoringFormula, error) {
	var f ScoringFormula
	if err := r.db.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *formulaRepository) GetActiveFormula(seasonID uint) (*ScoringFormula, error) {
	var f ScoringFormula
	err := r.db.Where("season_id = ? AND is_active = ?", seasonID, true).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *formulaRepository) GetFormulasBySeason(seasonID uint) ([]ScoringFormula, error) {
	var formulas []ScoringFormula
	if err := r.db.Where("season_id = ?", seasonID).Order("created_at desc").Find(&formulas).Error; err != nil {
		return nil, err
	}
	return formulas, nil
}

func (r *formulaRepository) UpdateFormula(formula *ScoringFormula) error {
	return r.db.Save(formula).Error
}

func (r *formulaRepository) DeleteFormula(id uint) error {
	return r.db.Delete(&ScoringFormula{}, id).Error
}

func (r *formulaRepository) ActivateFormula(seasonID, formulaID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ScoringFormula{}).
			Where("season_id = ? AND id <> ?", seasonID, formulaID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		result := tx.Model(&ScoringFormula{}).
			Where("id = ? AND season_id = ?", formulaID, seasonID).
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
