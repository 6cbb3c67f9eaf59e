package team

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	// Team operations
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeamBySlug(seasonID uint, slug string) (*Team, error)
	GetTeamsBySeason(seasonID uint, page, limit int) ([]Team, int64, error)
	GetTeamsByClub(clubID uint, page, limit int) ([]Team, int64, error)
	UpdateTeam(team *Team) error
	DeleteTeam(id uint) error

	// Squad operations
	AddSquadMember(member *SquadMember) error
	GetSquadMembers(teamID uint) ([]SquadMember, error)
	ListSquadPlayerIDs(teamID uint) ([]uint, error)
	RemoveSquadMember(teamID, playerID uint) error
	IsPlayerInSquad(teamID, playerID uint) (bool, error)

	WithTransaction(txFunc func(TeamRepository) error) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// --- Team Operations ---

func (r *teamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	if err := r.db.Preload("Season").First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamBySlug(seasonID uint, slug string) (*Team, error) {
	var team Team
	err := r.db.Preload("Season").Where("season_id = ? AND slug = ?", seasonID, slug).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamsBySeason(seasonID uint, page, limit int) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{}).Where("season_id = ?", seasonID)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) GetTeamsByClub(clubID uint, page, limit int) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{}).Where("club_id = ?", clubID).Preload("Season")
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) UpdateTeam(team *Team) error {
	return r.db.Save(team).Error
}

// DeleteTeam removes the team, its squad rows and, by ownership, its matches.
// Match/card/innings cleanup is handled by the match repository's cascade;
// here we clear the squad association.
func (r *teamRepository) DeleteTeam(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&SquadMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Team{}, id).Error
	})
}

// --- Squad Operations ---

func (r *teamRepository) AddSquadMember(member *SquadMember) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at", "deleted_at"}),
	}).Create(member).Error
}

func (r *teamRepository) GetSquadMembers(teamID uint) ([]SquadMember, error) {
	var members []SquadMember
	err := r.db.Preload("Player").Where("team_id = ?", teamID).Order("created_at asc").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamRepository) ListSquadPlayerIDs(teamID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&SquadMember{}).Where("team_id = ?", teamID).Pluck("player_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *teamRepository) RemoveSquadMember(teamID, playerID uint) error {
	return r.db.Where("team_id = ? AND player_id = ?", teamID, playerID).Delete(&SquadMember{}).Error
}

func (r *teamRepository) IsPlayerInSquad(teamID, playerID uint) (bool, error) {
	var count int64
	err := r.db.Model(&SquadMember{}).Where("team_id = ? AND player_id = ?", teamID, playerID).Count(&count).Error
	return count > 0, err
}

func (r *teamRepository) WithTransaction(txFunc func(TeamRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &teamRepository{db: tx}
		return txFunc(txRepo)
	})
}
