package club

import (
	"errors"

	"gorm.io/gorm"
)

// ClubRepository defines the interface for club data operations
type ClubRepository interface {
	CreateClub(club *Club) error
	GetClubByID(id uint) (*Club, error)
	GetClubByPublicID(publicID string) (*Club, error)
	GetClubByName(name string) (*Club, error)
	GetAllClubs(page, limit int) ([]Club, int64, error)
	UpdateClub(club *Club) error
	DeleteClub(id uint) error
}

type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new instance of ClubRepository
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) CreateClub(club *Club) error {
	return r.db.Create(club).Error
}

func (r *clubRepository) GetClubByID(id uint) (*Club, error) {
	var club Club
	if err := r.db.First(&club, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) GetClubByPublicID(publicID string) (*Club, error) {
	var club Club
	if err := r.db.Where("public_id = ?", publicID).First(&club).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) GetClubByName(name string) (*Club, error) {
	var club Club
	if err := r.db.Where("name = ?", name).First(&club).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) GetAllClubs(page, limit int) ([]Club, int64, error) {
	var clubs []Club
	var total int64

	query := r.db.Model(&Club{})
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&clubs).Error; err != nil {
		return nil, 0, err
	}
	return clubs, total, nil
}

func (r *clubRepository) UpdateClub(club *Club) error {
	return r.db.Save(club).Error
}

func (r *clubRepository) DeleteClub(id uint) error {
	return r.db.Delete(&Club{}, id).Error
}
