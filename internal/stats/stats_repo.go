package stats

import (
	"gorm.io/gorm"
)

// StatsRepository reads season aggregates. Everything here is derived from
// published matches; drafts never leak into a leaderboard.
type StatsRepository interface {
	GetBattingLeaderboard(seasonID uint, limit int) ([]BattingLeaderboardEntry, error)
	GetBowlingLeaderboard(seasonID uint, limit int) ([]BowlingLeaderboardEntry, error)
	GetPointsLeaderboard(seasonID uint, limit int) ([]PointsLeaderboardEntry, error)
	GetPlayerSeasonSummary(seasonID, playerID uint) (*PlayerSeasonSummary, error)
}

// GormStatsRepository implements StatsRepository using gorm
type GormStatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

type battingRow struct {
	PlayerID   uint
	PlayerName string
	Matches    int
	Innings    int
	Runs       int
	BallsFaced int
	HighScore  int
	Fours      int
	Sixes      int
	Fifties    int
	Hundreds   int
	Ducks      int
	Dismissals int
}

func (r *GormStatsRepository) battingQuery(seasonID uint) *gorm.DB {
	return r.db.Table("batting_cards").
		Select(`batting_cards.player_id,
			CONCAT(players.first_name, ' ', players.last_name) AS player_name,
			COUNT(DISTINCT batting_cards.match_id) AS matches,
			COUNT(CASE WHEN batting_cards.derived = false THEN 1 END) AS innings,
			COALESCE(SUM(batting_cards.runs), 0) AS runs,
			COALESCE(SUM(batting_cards.balls_faced), 0) AS balls_faced,
			COALESCE(MAX(batting_cards.runs), 0) AS high_score,
			COALESCE(SUM(batting_cards.fours), 0) AS fours,
			COALESCE(SUM(batting_cards.sixes), 0) AS sixes,
			COUNT(CASE WHEN batting_cards.runs >= 50 AND batting_cards.runs < 100 THEN 1 END) AS fifties,
			COUNT(CASE WHEN batting_cards.runs >= 100 THEN 1 END) AS hundreds,
			COUNT(CASE WHEN batting_cards.runs = 0 AND batting_cards.dismissed THEN 1 END) AS ducks,
			COUNT(CASE WHEN batting_cards.dismissed THEN 1 END) AS dismissals`).
		Joins("JOIN matches ON matches.id = batting_cards.match_id").
		Joins("JOIN players ON players.id = batting_cards.player_id").
		Where("matches.season_id = ? AND matches.published = ?", seasonID, true).
		Where("batting_cards.player_id IS NOT NULL").
		Where("batting_cards.deleted_at IS NULL AND matches.deleted_at IS NULL AND players.deleted_at IS NULL").
		Group("batting_cards.player_id, players.first_name, players.last_name")
}

func (r *GormStatsRepository) GetBattingLeaderboard(seasonID uint, limit int) ([]BattingLeaderboardEntry, error) {
	var rows []battingRow
	err := r.battingQuery(seasonID).
		Order("runs DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]BattingLeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, newBattingEntry(row))
	}
	return entries, nil
}

func newBattingEntry(row battingRow) BattingLeaderboardEntry {
	entry := BattingLeaderboardEntry{
		PlayerID:   row.PlayerID,
		PlayerName: row.PlayerName,
		Matches:    row.Matches,
		Innings:    row.Innings,
		Runs:       row.Runs,
		HighScore:  row.HighScore,
		Fours:      row.Fours,
		Sixes:      row.Sixes,
		Fifties:    row.Fifties,
		Hundreds:   row.Hundreds,
		Ducks:      row.Ducks,
		Dismissals: row.Dismissals,
	}
	if row.Dismissals > 0 {
		entry.Average = float64(row.Runs) / float64(row.Dismissals)
	}
	if row.BallsFaced > 0 {
		entry.StrikeRate = float64(row.Runs) / float64(row.BallsFaced) * 100
	}
	return entry
}

type bowlingRow struct {
	PlayerID     uint
	PlayerName   string
	Matches      int
	Overs        float64
	Maidens      int
	RunsConceded int
	Wickets      int
	FiveFors     int
}

func (r *GormStatsRepository) bowlingQuery(seasonID uint) *gorm.DB {
	return r.db.Table("bowling_cards").
		Select(`bowling_cards.player_id,
			CONCAT(players.first_name, ' ', players.last_name) AS player_name,
			COUNT(DISTINCT bowling_cards.match_id) AS matches,
			COALESCE(SUM(bowling_cards.overs), 0) AS overs,
			COALESCE(SUM(bowling_cards.maidens), 0) AS maidens,
			COALESCE(SUM(bowling_cards.runs_conceded), 0) AS runs_conceded,
			COALESCE(SUM(bowling_cards.wickets), 0) AS wickets,
			COUNT(CASE WHEN bowling_cards.wickets >= 5 THEN 1 END) AS five_fors`).
		Joins("JOIN matches ON matches.id = bowling_cards.match_id").
		Joins("JOIN players ON players.id = bowling_cards.player_id").
		Where("matches.season_id = ? AND matches.published = ?", seasonID, true).
		Where("bowling_cards.player_id IS NOT NULL").
		Where("bowling_cards.deleted_at IS NULL AND matches.deleted_at IS NULL AND players.deleted_at IS NULL").
		Group("bowling_cards.player_id, players.first_name, players.last_name")
}

func (r *GormStatsRepository) GetBowlingLeaderboard(seasonID uint, limit int) ([]BowlingLeaderboardEntry, error) {
	var rows []bowlingRow
	err := r.bowlingQuery(seasonID).
		Order("wickets DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]BowlingLeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, newBowlingEntry(row))
	}
	return entries, nil
}

func newBowlingEntry(row bowlingRow) BowlingLeaderboardEntry {
	entry := BowlingLeaderboardEntry{
		PlayerID:     row.PlayerID,
		PlayerName:   row.PlayerName,
		Matches:      row.Matches,
		Overs:        row.Overs,
		Maidens:      row.Maidens,
		RunsConceded: row.RunsConceded,
		Wickets:      row.Wickets,
		FiveFors:     row.FiveFors,
	}
	if row.Overs > 0 {
		entry.Economy = float64(row.RunsConceded) / row.Overs
	}
	return entry
}

func (r *GormStatsRepository) pointsQuery(seasonID uint) *gorm.DB {
	return r.db.Table("points_events").
		Select(`points_events.player_id,
			CONCAT(players.first_name, ' ', players.last_name) AS player_name,
			COALESCE(SUM(CASE WHEN points_events.category = 'batting' THEN points_events.points ELSE 0 END), 0) AS batting_points,
			COALESCE(SUM(CASE WHEN points_events.category = 'bowling' THEN points_events.points ELSE 0 END), 0) AS bowling_points,
			COALESCE(SUM(CASE WHEN points_events.category = 'fielding' THEN points_events.points ELSE 0 END), 0) AS fielding_points,
			COALESCE(SUM(points_events.points), 0) AS total_points`).
		Joins("JOIN matches ON matches.id = points_events.match_id").
		Joins("JOIN players ON players.id = points_events.player_id").
		Where("matches.season_id = ?", seasonID).
		Where("points_events.deleted_at IS NULL AND matches.deleted_at IS NULL AND players.deleted_at IS NULL").
		Group("points_events.player_id, players.first_name, players.last_name")
}

func (r *GormStatsRepository) GetPointsLeaderboard(seasonID uint, limit int) ([]PointsLeaderboardEntry, error) {
	var entries []PointsLeaderboardEntry
	err := r.pointsQuery(seasonID).
		Order("total_points DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *GormStatsRepository) GetPlayerSeasonSummary(seasonID, playerID uint) (*PlayerSeasonSummary, error) {
	summary := &PlayerSeasonSummary{}

	var batting []battingRow
	err := r.battingQuery(seasonID).
		Having("batting_cards.player_id = ?", playerID).
		Scan(&batting).Error
	if err != nil {
		return nil, err
	}
	if len(batting) > 0 {
		summary.Batting = newBattingEntry(batting[0])
	}

	var bowling []bowlingRow
	err = r.bowlingQuery(seasonID).
		Having("bowling_cards.player_id = ?", playerID).
		Scan(&bowling).Error
	if err != nil {
		return nil, err
	}
	if len(bowling) > 0 {
		summary.Bowling = newBowlingEntry(bowling[0])
	}

	var points []PointsLeaderboardEntry
	err = r.pointsQuery(seasonID).
		Having("points_events.player_id = ?", playerID).
		Scan(&points).Error
	if err != nil {
		return nil, err
	}
	if len(points) > 0 {
		summary.Points = points[0]
	}

	return summary, nil
}
