package stats

// BattingLeaderboardEntry is one row of the season batting table. Aggregates
// cover published matches only and include derived zero-rows, so every squad
// member divides by the same match count.
type BattingLeaderboardEntry struct {
	PlayerID   uint    `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Matches    int     `json:"matches"`
	Innings    int     `json:"innings"`
	Runs       int     `json:"runs"`
	HighScore  int     `json:"high_score"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	Fifties    int     `json:"fifties"`
	Hundreds   int     `json:"hundreds"`
	Ducks      int     `json:"ducks"`
	Dismissals int     `json:"dismissals"`
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strike_rate"`
}

// BowlingLeaderboardEntry is one row of the season bowling table.
type BowlingLeaderboardEntry struct {
	PlayerID     uint    `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	Matches      int     `json:"matches"`
	Overs        float64 `json:"overs"`
	Maidens      int     `json:"maidens"`
	RunsConceded int     `json:"runs_conceded"`
	Wickets      int     `json:"wickets"`
	FiveFors     int     `json:"five_fors"`
	Economy      float64 `json:"economy"`
}

// PointsLeaderboardEntry is one row of the season points table, summed from
// the append-only event store.
type PointsLeaderboardEntry struct {
	PlayerID       uint   `json:"player_id"`
	PlayerName     string `json:"player_name"`
	BattingPoints  int    `json:"batting_points"`
	BowlingPoints  int    `json:"bowling_points"`
	FieldingPoints int    `json:"fielding_points"`
	TotalPoints    int    `json:"total_points"`
}

// PlayerSeasonSummary bundles a player's season figures with their event
// breakdown for the player detail page.
type PlayerSeasonSummary struct {
	Batting BattingLeaderboardEntry `json:"batting"`
	Bowling BowlingLeaderboardEntry `json:"bowling"`
	Points  PointsLeaderboardEntry  `json:"points"`
}
