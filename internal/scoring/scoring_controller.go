package scoring

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/robharvey123/cricket-platform-sub001/pkg/responses"
	"github.com/robharvey123/cricket-platform-sub001/pkg/validator"

	"github.com/gin-gonic/gin"
)

// ScoringController handles publication, recalculation and the operations
// around them.
type ScoringController struct {
	publisher *Publisher
	completer *Completer
}

// NewScoringController creates a new scoring controller
func NewScoringController(repo Repository) *ScoringController {
	return &ScoringController{
		publisher: NewPublisher(repo),
		completer: NewCompleter(repo),
	}
}

// --- DTOs for requests ---

type PublishMatchRequest struct {
	// PlayerMappings maps raw card names to existing player IDs, overriding
	// automatic resolution for those names.
	PlayerMappings map[string]uint `json:"player_mappings"`
}

type ResolvePlayersRequest struct {
	PlayerMappings map[string]uint `json:"player_mappings"`
}

type MergePlayersRequest struct {
	TargetPlayerID uint `json:"target_player_id" binding:"required"`
}

// PublishMatch godoc
// @Summary Publish a match
// @Description Runs the full publication pipeline: resolves card identities, fills zero-rows for squad members without cards, and generates point events under the season's active formula. One-way; a published match cannot be republished.
// @Tags Scoring
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param request body PublishMatchRequest false "Optional explicit name mappings"
// @Success 200 {object} responses.SuccessResponse{data=PublishReport} "Publication report"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Already published or no active formula"
// @Security ApiKeyAuth
// @Router /admin/matches/{match_id}/publish [post]
func (sc *ScoringController) PublishMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	var req PublishMatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
			return
		}
	}

	report, err := sc.publisher.Publish(PublishInput{
		MatchID:        uint(matchID),
		PlayerMappings: req.PlayerMappings,
	})
	if err != nil {
		sc.sendPipelineError(c, err, "Failed to publish match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match published successfully", report)
}

// RecalculateMatch godoc
// @Summary Recalculate point events for a published match
// @Description Deletes the match's prior events and regenerates them under the season's current active formula. Only valid for published matches.
// @Tags Scoring
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=RecalculateReport} "Recalculation report"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Match not published or no active formula"
// @Security ApiKeyAuth
// @Router /admin/matches/{match_id}/recalculate [post]
func (sc *ScoringController) RecalculateMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	report, err := sc.publisher.Recalculate(uint(matchID))
	if err != nil {
		sc.sendPipelineError(c, err, "Failed to recalculate match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match recalculated successfully", report)
}

// ResolvePlayers godoc
// @Summary Resolve card identities for a draft match
// @Description Matches raw scorecard names against the club roster, creating players and squad memberships for new names. Names that cannot be split into first and last name are skipped and reported.
// @Tags Scoring
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param request body ResolvePlayersRequest false "Optional explicit name mappings"
// @Success 200 {object} responses.SuccessResponse{data=ResolveReport} "Resolution report"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Match already published"
// @Security ApiKeyAuth
// @Router /admin/matches/{match_id}/resolve-players [post]
func (sc *ScoringController) ResolvePlayers(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	var req ResolvePlayersRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
			return
		}
	}

	report, err := sc.publisher.ResolvePlayers(uint(matchID), req.PlayerMappings)
	if err != nil {
		sc.sendPipelineError(c, err, "Failed to resolve players")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Players resolved successfully", report)
}

// BackfillClub godoc
// @Summary Backfill zero-rows across a club's published matches
// @Description Re-runs participation gap filling for every published match of the club. Idempotent; reports per-match outcomes.
// @Tags Scoring
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=[]MatchOutcome} "Per-match outcomes"
// @Security ApiKeyAuth
// @Router /admin/clubs/{club_id}/zero-rows/backfill [post]
func (sc *ScoringController) BackfillClub(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Minute)
	defer cancel()

	outcomes, err := sc.completer.BackfillClub(ctx, uint(clubID))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			responses.SendError(c, http.StatusRequestTimeout, "Backfill cancelled; partial outcomes discarded")
			return
		}
		responses.InternalServerError(c, "Failed to backfill club: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Backfill completed", outcomes)
}

// MergePlayers godoc
// @Summary Merge a duplicate player into another
// @Description Reassigns every card of the source player to the target, regenerates point events for the affected published matches, and deletes the source record. Used when name variants created duplicates.
// @Tags Scoring
// @Accept json
// @Produce json
// @Param player_id path uint true "Source player ID"
// @Param request body MergePlayersRequest true "Merge target"
// @Success 200 {object} responses.SuccessResponse "Players merged"
// @Failure 409 {object} responses.ErrorResponse "No active formula for an affected match"
// @Security ApiKeyAuth
// @Router /admin/players/{player_id}/merge [post]
func (sc *ScoringController) MergePlayers(c *gin.Context) {
	sourceID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	var req MergePlayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	if err := sc.publisher.MergePlayers(uint(sourceID), req.TargetPlayerID); err != nil {
		sc.sendPipelineError(c, err, "Failed to merge players")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Players merged successfully", nil)
}

// sendPipelineError maps pipeline sentinels onto HTTP statuses.
func (sc *ScoringController) sendPipelineError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrMatchNotFound):
		responses.NotFound(c, "Match")
	case errors.Is(err, ErrPlayerNotFound):
		responses.NotFound(c, "Player")
	case errors.Is(err, ErrAlreadyPublished):
		responses.Conflict(c, "Match is already published")
	case errors.Is(err, ErrNotPublished):
		responses.Conflict(c, "Match has not been published yet")
	case errors.Is(err, ErrNoActiveFormula):
		responses.Conflict(c, "No active scoring formula for the match's season; activate one first")
	default:
		responses.InternalServerError(c, fallback+": "+err.Error())
	}
}
