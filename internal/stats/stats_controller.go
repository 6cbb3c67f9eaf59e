package stats

import (
	"net/http"
	"strconv"

	"github.com/robharvey123/cricket-platform-sub001/pkg/responses"

	"github.com/gin-gonic/gin"
)

// StatsController serves the public season leaderboards
type StatsController struct {
	repo StatsRepository
}

// NewStatsController creates a new stats controller
func NewStatsController(repo StatsRepository) *StatsController {
	return &StatsController{repo: repo}
}

func parseLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	if limit < 1 || limit > 200 {
		limit = 25
	}
	return limit
}

// GetBattingLeaderboard godoc
// @Summary Season batting leaderboard
// @Tags Stats
// @Produce json
// @Param season_id path uint true "Season ID"
// @Param limit query int false "Max rows" default(25)
// @Success 200 {object} responses.SuccessResponse{data=[]BattingLeaderboardEntry} "Leaderboard"
// @Router /seasons/{season_id}/stats/batting [get]
func (sc *StatsController) GetBattingLeaderboard(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
		return
	}

	entries, err := sc.repo.GetBattingLeaderboard(uint(seasonID), parseLimit(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve batting leaderboard: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Batting leaderboard retrieved successfully", entries)
}

// GetBowlingLeaderboard godoc
// @Summary Season bowling leaderboard
// @Tags Stats
// @Produce json
// @Param season_id path uint true "Season ID"
// @Param limit query int false "Max rows" default(25)
// @Success 200 {object} responses.SuccessResponse{data=[]BowlingLeaderboardEntry} "Leaderboard"
// @Router /seasons/{season_id}/stats/bowling [get]
func (sc *StatsController) GetBowlingLeaderboard(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
		return
	}

	entries, err := sc.repo.GetBowlingLeaderboard(uint(seasonID), parseLimit(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve bowling leaderboard: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Bowling leaderboard retrieved successfully", entries)
}

// GetPointsLeaderboard godoc
// @Summary Season points leaderboard
// @Description Totals from the point event store, broken down by category.
// @Tags Stats
// @Produce json
// @Param season_id path uint true "Season ID"
// @Param limit query int false "Max rows" default(25)
// @Success 200 {object} responses.SuccessResponse{data=[]PointsLeaderboardEntry} "Leaderboard"
// @Router /seasons/{season_id}/stats/points [get]
func (sc *StatsController) GetPointsLeaderboard(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
		return
	}

	entries, err := sc.repo.GetPointsLeaderboard(uint(seasonID), parseLimit(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve points leaderboard: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Points leaderboard retrieved successfully", entries)
}

// GetPlayerSeasonSummary godoc
// @Summary A player's season summary
// @Tags Stats
// @Produce json
// @Param season_id path uint true "Season ID"
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=PlayerSeasonSummary} "Summary"
// @Router /seasons/{season_id}/players/{player_id}/summary [get]
func (sc *StatsController) GetPlayerSeasonSummary(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
		return
	}
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	summary, err := sc.repo.GetPlayerSeasonSummary(uint(seasonID), uint(playerID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve player summary: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player summary retrieved successfully", summary)
}
