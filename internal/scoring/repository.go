package scoring

import (
	"errors"

	"github.com/robharvey123/cricket-platform-sub001/internal/formula"
	"github.com/robharvey123/cricket-platform-sub001/internal/match"
	"github.com/robharvey123/cricket-platform-sub001/internal/player"
	"github.com/robharvey123/cricket-platform-sub001/internal/team"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the storage surface the publication engine works against.
// Everything the publisher, resolver and completer need runs through this
// interface so the engine can be exercised without a database.
type Repository interface {
	GetMatch(id uint) (*match.Match, error)
	// ClaimPublish flips the one-way published flag. It reports false when
	// the match was already published (or does not exist); exactly one
	// concurrent caller can observe true.
	ClaimPublish(matchID uint) (bool, error)
	ListMatchesByClub(clubID uint) ([]match.Match, error)
	ListMatchIDsForPlayer(playerID uint) ([]uint, error)

	GetActiveFormula(seasonID uint) (*formula.ScoringFormula, error)

	GetPlayer(id uint) (*player.Player, error)
	ListClubPlayers(clubID uint) ([]player.Player, error)
	// CreatePlayerIfAbsent inserts the player unless one with the same
	// (club, normalized name) already exists, and returns the surviving row
	// either way.
	CreatePlayerIfAbsent(p *player.Player) (*player.Player, error)
	DeletePlayerRecord(id uint) error

	AddSquadMember(m *team.SquadMember) error
	ListSquadPlayerIDs(teamID uint) ([]uint, error)

	ListUnresolvedBattingCards(matchID uint) ([]match.BattingCard, error)
	ListUnresolvedBowlingCards(matchID uint) ([]match.BowlingCard, error)
	ListUnresolvedFieldingCards(matchID uint) ([]match.FieldingCard, error)
	AssignBattingPlayer(cardID, playerID uint) error
	AssignBowlingPlayer(cardID, playerID uint) error
	AssignFieldingPlayer(cardID, playerID uint) error

	ListBattingCardsForScoring(matchID uint) ([]match.BattingCard, error)
	ListBowlingCardsForScoring(matchID uint) ([]match.BowlingCard, error)

	ListBattingPlayerIDs(matchID uint) ([]uint, error)
	ListBowlingPlayerIDs(matchID uint) ([]uint, error)
	ListFieldingPlayerIDs(matchID uint) ([]uint, error)
	InsertDerivedBattingCard(card *match.BattingCard) error
	InsertDerivedBowlingCard(card *match.BowlingCard) error
	InsertDerivedFieldingCard(card *match.FieldingCard) error
	ReassignCards(fromPlayerID, toPlayerID uint) error

	AppendEvents(events []PointsEvent) error
	DeleteEventsForPlayers(matchID uint, playerIDs []uint) error

	ListClubIDs() ([]uint, error)

	// WithTransaction runs txFunc against a repository bound to a single
	// database transaction, committing on nil and rolling back on error.
	WithTransaction(txFunc func(Repository) error) error
}

// GormScoringRepository implements Repository on gorm.
type GormScoringRepository struct {
	db *gorm.DB
}

func NewGormScoringRepository(db *gorm.DB) *GormScoringRepository {
	return &GormScoringRepository{db: db}
}

func (r *GormScoringRepository) GetMatch(id uint) (*match.Match, error) {
	var m match.Match
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *GormScoringRepository) ClaimPublish(matchID uint) (bool, error) {
	result := r.db.Model(&match.Match{}).
		Where("id = ? AND published = ?", matchID, false).
		Update("published", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *GormScoringRepository) ListMatchesByClub(clubID uint) ([]match.Match, error) {
	var matches []match.Match
	if err := r.db.Where("club_id = ?", clubID).Order("played_at asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *GormScoringRepository) ListMatchIDsForPlayer(playerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&match.BattingCard{}).
		Distinct("match_id").
		Where("player_id = ?", playerID).
		Pluck("match_id", &ids).Error
	if err != nil {
		return nil, err
	}
	var bowling []uint
	err = r.db.Model(&match.BowlingCard{}).
		Distinct("match_id").
		Where("player_id = ?", playerID).
		Pluck("match_id", &bowling).Error
	if err != nil {
		return nil, err
	}
	var fielding []uint
	err = r.db.Model(&match.FieldingCard{}).
		Distinct("match_id").
		Where("player_id = ?", playerID).
		Pluck("match_id", &fielding).Error
	if err != nil {
		return nil, err
	}
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range append(bowling, fielding...) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *GormScoringRepository) GetActiveFormula(seasonID uint) (*formula.ScoringFormula, error) {
	var f formula.ScoringFormula
	err := r.db.Where("season_id = ? AND is_active = ?", seasonID, true).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *GormScoringRepository) GetPlayer(id uint) (*player.Player, error) {
	var p player.Player
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormScoringRepository) ListClubPlayers(clubID uint) ([]player.Player, error) {
	var players []player.Player
	if err := r.db.Where("club_id = ?", clubID).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *GormScoringRepository) CreatePlayerIfAbsent(p *player.Player) (*player.Player, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "club_id"}, {Name: "normalized_name"}},
		DoNothing: true,
	}).Create(p).Error
	if err != nil {
		return nil, err
	}
	// The insert is skipped on conflict, so refetch to get the surviving row.
	var existing player.Player
	err = r.db.Where("club_id = ? AND normalized_name = ?", p.ClubID, p.NormalizedName).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *GormScoringRepository) DeletePlayerRecord(id uint) error {
	return r.db.Delete(&player.Player{}, id).Error
}

func (r *GormScoringRepository) AddSquadMember(m *team.SquadMember) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}, {Name: "player_id"}},
		DoNothing: true,
	}).Create(m).Error
}

func (r *GormScoringRepository) ListSquadPlayerIDs(teamID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&team.SquadMember{}).
		Where("team_id = ?", teamID).
		Pluck("player_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *GormScoringRepository) ListUnresolvedBattingCards(matchID uint) ([]match.BattingCard, error) {
	var cards []match.BattingCard
	err := r.db.Where("match_id = ? AND player_id IS NULL", matchID).
		Order("position asc").Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *GormScoringRepository) ListUnresolvedBowlingCards(matchID uint) ([]match.BowlingCard, error) {
	var cards []match.BowlingCard
	err := r.db.Where("match_id = ? AND player_id IS NULL", matchID).Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *GormScoringRepository) ListUnresolvedFieldingCards(matchID uint) ([]match.FieldingCard, error) {
	var cards []match.FieldingCard
	err := r.db.Where("match_id = ? AND player_id IS NULL", matchID).Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *GormScoringRepository) AssignBattingPlayer(cardID, playerID uint) error {
	return r.db.Model(&match.BattingCard{}).Where("id = ?", cardID).
		Update("player_id", playerID).Error
}

func (r *GormScoringRepository) AssignBowlingPlayer(cardID, playerID uint) error {
	return r.db.Model(&match.BowlingCard{}).Where("id = ?", cardID).
		Update("player_id", playerID).Error
}

func (r *GormScoringRepository) AssignFieldingPlayer(cardID, playerID uint) error {
	return r.db.Model(&match.FieldingCard{}).Where("id = ?", cardID).
		Update("player_id", playerID).Error
}

func (r *GormScoringRepository) ListBattingCardsForScoring(matchID uint) ([]match.BattingCard, error) {
	var cards []match.BattingCard
	err := r.db.Where("match_id = ? AND player_id IS NOT NULL", matchID).
		Order("position asc").Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *GormScoringRepository) ListBowlingCardsForScoring(matchID uint) ([]match.BowlingCard, error) {
	var cards []match.BowlingCard
	err := r.db.Where("match_id = ? AND player_id IS NOT NULL", matchID).Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *GormScoringRepository) ListBattingPlayerIDs(matchID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&match.BattingCard{}).
		Distinct("player_id").
		Where("match_id = ? AND player_id IS NOT NULL", matchID).
		Pluck("player_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *GormScoringRepository) ListBowlingPlayerIDs(matchID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&match.BowlingCard{}).
		Distinct("player_id").
		Where("match_id = ? AND player_id IS NOT NULL", matchID).
		Pluck("player_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *GormScoringRepository) ListFieldingPlayerIDs(matchID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&match.FieldingCard{}).
		Distinct("player_id").
		Where("match_id = ? AND player_id IS NOT NULL", matchID).
		Pluck("player_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *GormScoringRepository) InsertDerivedBattingCard(card *match.BattingCard) error {
	return r.db.Create(card).Error
}

func (r *GormScoringRepository) InsertDerivedBowlingCard(card *match.BowlingCard) error {
	return r.db.Create(card).Error
}

func (r *GormScoringRepository) InsertDerivedFieldingCard(card *match.FieldingCard) error {
	return r.db.Create(card).Error
}

func (r *GormScoringRepository) ReassignCards(fromPlayerID, toPlayerID uint) error {
	err := r.db.Model(&match.BattingCard{}).Where("player_id = ?", fromPlayerID).
		Update("player_id", toPlayerID).Error
	if err != nil {
		return err
	}
	err = r.db.Model(&match.BowlingCard{}).Where("player_id = ?", fromPlayerID).
		Update("player_id", toPlayerID).Error
	if err != nil {
		return err
	}
	return r.db.Model(&match.FieldingCard{}).Where("player_id = ?", fromPlayerID).
		Update("player_id", toPlayerID).Error
}

func (r *GormScoringRepository) AppendEvents(events []PointsEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.Create(&events).Error
}

func (r *GormScoringRepository) DeleteEventsForPlayers(matchID uint, playerIDs []uint) error {
	if len(playerIDs) == 0 {
		return nil
	}
	return r.db.Unscoped().
		Where("match_id = ? AND player_id IN ?", matchID, playerIDs).
		Delete(&PointsEvent{}).Error
}

func (r *GormScoringRepository) ListClubIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Table("clubs").Where("deleted_at IS NULL").Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *GormScoringRepository) WithTransaction(txFunc func(Repository) error) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	txRepo := &GormScoringRepository{db: tx}
	if err := txFunc(txRepo); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
