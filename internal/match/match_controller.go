package match

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/robharvey123/cricket-platform-sub001/internal/middleware"
	"github.com/robharvey123/cricket-platform-sub001/pkg/responses"
	"github.com/robharvey123/cricket-platform-sub001/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchController handles match and scorecard HTTP requests
type MatchController struct {
	repo MatchRepository
}

// NewMatchController creates a new match controller
func NewMatchController(repo MatchRepository) *MatchController {
	return &MatchController{repo: repo}
}

// --- DTOs for requests ---

type CreateMatchRequest struct {
	ClubID   uint      `json:"club_id" binding:"required"`
	SeasonID uint      `json:"season_id" binding:"required"`
	TeamID   uint      `json:"team_id" binding:"required"`
	Opponent string    `json:"opponent" binding:"required,min=2,max=150"`
	PlayedAt time.Time `json:"played_at" binding:"required"`
	Venue    string    `json:"venue" binding:"max=200"`
	HomeAway HomeAway  `json:"home_away" binding:"omitempty,oneof=home away"`
}

type UpdateMatchRequest struct {
	Opponent *string    `json:"opponent" binding:"omitempty,min=2,max=150"`
	PlayedAt *time.Time `json:"played_at"`
	Venue    *string    `json:"venue" binding:"omitempty,max=200"`
	HomeAway *HomeAway  `json:"home_away" binding:"omitempty,oneof=home away"`
	Result   *string    `json:"result" binding:"omitempty,max=200"`
}

type BattingCardDraft struct {
	PlayerName string `json:"player_name" binding:"required"`
	Position   int    `json:"position" binding:"gte=0"`
	Runs       int    `json:"runs" binding:"gte=0"`
	BallsFaced int    `json:"balls_faced" binding:"gte=0"`
	Fours      int    `json:"fours" binding:"gte=0"`
	Sixes      int    `json:"sixes" binding:"gte=0"`
	HowOut     string `json:"how_out"`
	Dismissed  bool   `json:"dismissed"`
}

type BowlingCardDraft struct {
	PlayerName   string  `json:"player_name" binding:"required"`
	Overs        float64 `json:"overs" binding:"gte=0"`
	Maidens      int     `json:"maidens" binding:"gte=0"`
	RunsConceded int     `json:"runs_conceded" binding:"gte=0"`
	Wickets      int     `json:"wickets" binding:"gte=0"`
	Wides        int     `json:"wides" binding:"gte=0"`
	NoBalls      int     `json:"no_balls" binding:"gte=0"`
}

type FieldingCardDraft struct {
	PlayerName string `json:"player_name" binding:"required"`
	Catches    int    `json:"catches" binding:"gte=0"`
	Stumpings  int    `json:"stumpings" binding:"gte=0"`
	RunOuts    int    `json:"run_outs" binding:"gte=0"`
}

type InningsDraft struct {
	Side    HomeAway `json:"side" binding:"required,oneof=home away"`
	Runs    int      `json:"runs" binding:"gte=0"`
	Wickets int      `json:"wickets" binding:"gte=0,lte=10"`
	Overs   float64  `json:"overs" binding:"gte=0"`
	Extras  int      `json:"extras" binding:"gte=0"`
}

type UpdateBattingCardRequest struct {
	PlayerName *string `json:"player_name" binding:"omitempty,min=1"`
	Position   *int    `json:"position" binding:"omitempty,gte=0"`
	Runs       *int    `json:"runs" binding:"omitempty,gte=0"`
	BallsFaced *int    `json:"balls_faced" binding:"omitempty,gte=0"`
	Fours      *int    `json:"fours" binding:"omitempty,gte=0"`
	Sixes      *int    `json:"sixes" binding:"omitempty,gte=0"`
	HowOut     *string `json:"how_out"`
	Dismissed  *bool   `json:"dismissed"`
}

type UpdateBowlingCardRequest struct {
	PlayerName   *string  `json:"player_name" binding:"omitempty,min=1"`
	Overs        *float64 `json:"overs" binding:"omitempty,gte=0"`
	Maidens      *int     `json:"maidens" binding:"omitempty,gte=0"`
	RunsConceded *int     `json:"runs_conceded" binding:"omitempty,gte=0"`
	Wickets      *int     `json:"wickets" binding:"omitempty,gte=0"`
	Wides        *int     `json:"wides" binding:"omitempty,gte=0"`
	NoBalls      *int     `json:"no_balls" binding:"omitempty,gte=0"`
}

type UpdateInningsRequest struct {
	Runs    *int     `json:"runs" binding:"omitempty,gte=0"`
	Wickets *int     `json:"wickets" binding:"omitempty,gte=0,lte=10"`
	Overs   *float64 `json:"overs" binding:"omitempty,gte=0"`
	Extras  *int     `json:"extras" binding:"omitempty,gte=0"`
}

// ImportScorecardRequest is the JSON produced upstream by the external
// document-understanding step.
type ImportScorecardRequest struct {
	Source        string              `json:"source" binding:"max=300"`
	Innings       []InningsDraft      `json:"innings" binding:"dive"`
	BattingCards  []BattingCardDraft  `json:"batting_cards" binding:"dive"`
	BowlingCards  []BowlingCardDraft  `json:"bowling_cards" binding:"dive"`
	FieldingCards []FieldingCardDraft `json:"fielding_cards" binding:"dive"`
}

type importResultResponse struct {
	BatchReference string `json:"batch_reference"`
	CardsCreated   int    `json:"cards_created"`
}

// loadEditable fetches a match for a write. A missing match yields (nil, nil);
// a published one yields ErrMatchPublished since the lock is one-way.
func (mc *MatchController) loadEditable(matchID uint) (*Match, error) {
	m, err := mc.repo.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}
	if m != nil && m.Published {
		return nil, ErrMatchPublished
	}
	return m, nil
}

// editableMatch wraps loadEditable with the HTTP mapping shared by every
// scorecard edit handler: 404 for a missing match, 409 for a published one.
// The bool reports whether the caller may proceed.
func (mc *MatchController) editableMatch(c *gin.Context, matchID uint) (*Match, bool) {
	m, err := mc.loadEditable(matchID)
	if err != nil {
		if errors.Is(err, ErrMatchPublished) {
			responses.Conflict(c, "Match is published; scorecard and match edits are locked")
		} else {
			responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		}
		return nil, false
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return nil, false
	}
	return m, true
}

// CreateMatch godoc
// @Summary Create a new match
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=Match} "Match created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Security ApiKeyAuth
// @Router /admin/matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	m := Match{
		ClubID:   req.ClubID,
		SeasonID: req.SeasonID,
		TeamID:   req.TeamID,
		Opponent: req.Opponent,
		PlayedAt: req.PlayedAt,
		Venue:    req.Venue,
		HomeAway: req.HomeAway,
	}
	if m.HomeAway == "" {
		m.HomeAway = SideHome
	}
	if err := mc.repo.CreateMatch(&m); err != nil {
		responses.InternalServerError(c, "Failed to create match: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", m)
}

// GetMatchByID godoc
// @Summary Get a match by ID
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match} "Match details"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{match_id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", m)
}

// GetMatches godoc
// @Summary List matches
// @Tags Matches
// @Produce json
// @Param club_id query uint false "Club filter"
// @Param season_id query uint false "Season filter"
// @Param team_id query uint false "Team filter"
// @Param published query bool false "Published filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} responses.PaginatedResponse "Matches"
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filters := map[string]interface{}{}
	if v := c.Query("club_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			filters["club_id"] = uint(id)
		}
	}
	if v := c.Query("season_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			filters["season_id"] = uint(id)
		}
	}
	if v := c.Query("team_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			filters["team_id"] = uint(id)
		}
	}
	if v := c.Query("published"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filters["published"] = b
		}
	}

	matches, total, err := mc.repo.GetMatches(filters, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve matches: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", matches, total, page, limit)
}

// UpdateMatch godoc
// @Summary Update a match
// @Description Rejected once the match has been published.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param match body UpdateMatchRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Match} "Match updated"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Match already published"
// @Security ApiKeyAuth
// @Router /admin/matches/{match_id} [put]
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	m, ok := mc.editableMatch(c, uint(matchID))
	if !ok {
		return
	}

	if req.Opponent != nil {
		m.Opponent = *req.Opponent
	}
	if req.PlayedAt != nil {
		m.PlayedAt = *req.PlayedAt
	}
	if req.Venue != nil {
		m.Venue = *req.Venue
	}
	if req.HomeAway != nil {
		m.HomeAway = *req.HomeAway
	}
	if req.Result != nil {
		m.Result = *req.Result
	}

	if err := mc.repo.UpdateMatch(m); err != nil {
		responses.InternalServerError(c, "Failed to update match: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated successfully", m)
}

// DeleteMatch godoc
// @Summary Delete a match
// @Description Destructive: removes the match with its innings and cards.
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse "Match deleted"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Security ApiKeyAuth
// @Router /admin/matches/{match_id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	if err := mc.repo.DeleteMatch(uint(matchID)); err != nil {
		responses.InternalServerError(c, "Failed to delete match: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match deleted successfully", nil)
}

// GetScorecard godoc
// @Summary Get a match's full scorecard
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse "Scorecard"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{match_id}/scorecard [get]
func (mc *MatchController) GetScorecard(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	batting, err := mc.repo.GetBattingCards(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve batting cards: "+err.Error())
		return
	}
	bowling, err := mc.repo.GetBowlingCards(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve bowling cards: "+err.Error())
		return
	}
	fielding, err := mc.repo.GetFieldingCards(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve fielding cards: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Scorecard retrieved successfully", gin.H{
		"match":          m,
		"batting_cards":  batting,
		"bowling_cards":  bowling,
		"fielding_cards": fielding,
	})
}

// ImportScorecard godoc
// @Summary Import a scorecard draft for a match
// @Description Accepts the extracted scorecard JSON and records it as draft cards with raw player names. Authenticated by the club scorer API key.
// @Tags Matches
// @Accept json
// @Produce json
// @Param club_public_id path string true "Club public ID"
// @Param match_id path uint true "Match ID"
// @Param scorecard body ImportScorecardRequest true "Extracted scorecard"
// @Success 201 {object} responses.SuccessResponse "Import recorded"
// @Failure 401 {object} responses.ErrorResponse "Invalid API key"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Match already published"
// @Router /import/clubs/{club_public_id}/matches/{match_id}/scorecard [post]
func (mc *MatchController) ImportScorecard(c *gin.Context) {
	clubID, ok := c.Get(middleware.APIKeyClubIDKey)
	if !ok {
		responses.Unauthorized(c, "")
		return
	}

	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	var req ImportScorecardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	m, err := mc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return
	}
	if m == nil || m.ClubID != clubID.(uint) {
		responses.NotFound(c, "Match")
		return
	}
	if m.Published {
		responses.Conflict(c, "Match is published; scorecard imports are locked")
		return
	}

	batch := ImportBatch{
		ClubID:    m.ClubID,
		MatchID:   m.ID,
		Reference: uuid.NewString(),
		Source:    req.Source,
	}

	err = mc.repo.WithTransaction(func(repo MatchRepository) error {
		for _, d := range req.Innings {
			innings := Innings{
				MatchID: m.ID,
				Side:    d.Side,
				Runs:    d.Runs,
				Wickets: d.Wickets,
				Overs:   d.Overs,
				Extras:  d.Extras,
			}
			if err := repo.CreateInnings(&innings); err != nil {
				return err
			}
		}
		for _, d := range req.BattingCards {
			card := BattingCard{
				MatchID:    m.ID,
				PlayerName: d.PlayerName,
				Position:   d.Position,
				Runs:       d.Runs,
				BallsFaced: d.BallsFaced,
				Fours:      d.Fours,
				Sixes:      d.Sixes,
				HowOut:     d.HowOut,
				Dismissed:  d.Dismissed,
			}
			if err := repo.CreateBattingCard(&card); err != nil {
				return err
			}
			batch.CardCount++
		}
		for _, d := range req.BowlingCards {
			card := BowlingCard{
				MatchID:      m.ID,
				PlayerName:   d.PlayerName,
				Overs:        d.Overs,
				Maidens:      d.Maidens,
				RunsConceded: d.RunsConceded,
				Wickets:      d.Wickets,
				Wides:        d.Wides,
				NoBalls:      d.NoBalls,
			}
			if err := repo.CreateBowlingCard(&card); err != nil {
				return err
			}
			batch.CardCount++
		}
		for _, d := range req.FieldingCards {
			card := FieldingCard{
				MatchID:    m.ID,
				PlayerName: d.PlayerName,
				Catches:    d.Catches,
				Stumpings:  d.Stumpings,
				RunOuts:    d.RunOuts,
			}
			if err := repo.CreateFieldingCard(&card); err != nil {
				return err
			}
			batch.CardCount++
		}
		return repo.CreateImportBatch(&batch)
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to import scorecard: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Scorecard imported successfully", importResultResponse{
		BatchReference: batch.Reference,
		CardsCreated:   batch.CardCount,
	})
}

// GetInnings godoc
// @Summary List a match's innings totals
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Innings} "Innings"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{match_id}/innings [get]
func (mc *MatchController) GetInnings(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	innings, err := mc.repo.GetInningsForMatch(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve innings: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Innings retrieved successfully", innings)
}

// UpdateInnings godoc
// @Summary Update an innings line
// @Description Rejected once the match has been published.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param innings_id path uint true "Innings ID"
// @Param innings body UpdateInningsRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Innings} "Innings updated"
// @Failure 404 {object} responses.ErrorResponse "Match or innings not found"
// @Failure 409 {object} responses.ErrorResponse "Match already published"
// @Security ApiKeyAuth
// @Router /admin/matches/{match_id}/innings/{innings_id} [put]
func (mc *MatchController) UpdateInnings(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}
	inningsID, err := strconv.ParseUint(c.Param("innings_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid innings ID")
		return
	}

	var req UpdateInningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	if _, ok := mc.editableMatch(c, uint(matchID)); !ok {
		return
	}

	all, err := mc.repo.GetInningsForMatch(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve innings: "+err.Error())
		return
	}
	var innings *Innings
	for i := range all {
		if all[i].ID == uint(inningsID) {
			innings = &all[i]
			break
		}
	}
	if innings == nil {
		responses.NotFound(c, "Innings")
		return
	}

	if req.Runs != nil {
		innings.Runs = *req.Runs
	}
	if req.Wickets != nil {
		innings.Wickets = *req.Wickets
	}
	if req.Overs != nil {
		innings.Overs = *req.Overs
	}
	if req.Extras != nil {
		innings.Extras = *req.Extras
	}

	if err := mc.repo.UpdateInnings(innings); err != nil {
		responses.InternalServerError(c, "Failed to update innings: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Innings updated successfully", innings)
}

// UpdateBattingCard godoc
// @Summary Update a batting card
// @Description Rejected once the match has been published. Renaming the player clears the card's resolved identity.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param card_id path uint true "Batting card ID"
// @Param card body UpdateBattingCardRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=BattingCard} "Card updated"
// @Failure 404 {object} responses.ErrorResponse "Match or card not found"
// @Failure 409 {object} responses.ErrorResponse "Match already published"
// @Security ApiKeyAuth
// @Router /admin/matches/{match_id}/batting-cards/{card_id} [put]
func (mc *MatchController) UpdateBattingCard(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}
	cardID, err := strconv.ParseUint(c.Param("card_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid card ID")
		return
	}

	var req UpdateBattingCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	if _, ok := mc.editableMatch(c, uint(matchID)); !ok {
		return
	}

	cards, err := mc.repo.GetBattingCards(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve batting cards: "+err.Error())
		return
	}
	var card *BattingCard
	for i := range cards {
		if cards[i].ID == uint(cardID) {
			card = &cards[i]
			break
		}
	}
	if card == nil {
		responses.NotFound(c, "Batting card")
		return
	}

	if req.PlayerName != nil && *req.PlayerName != card.PlayerName {
		card.PlayerName = *req.PlayerName
		// A renamed card must go through identity resolution again.
		card.PlayerID = nil
		card.Player = nil
	}
	if req.Position != nil {
		card.Position = *req.Position
	}
	if req.Runs != nil {
		card.Runs = *req.Runs
	}
	if req.BallsFaced != nil {
		card.BallsFaced = *req.BallsFaced
	}
	if req.Fours != nil {
		card.Fours = *req.Fours
	}
	if req.Sixes != nil {
		card.Sixes = *req.Sixes
	}
	if req.HowOut != nil {
		card.HowOut = *req.HowOut
	}
	if req.Dismissed != nil {
		card.Dismissed = *req.Dismissed
	}

	if err := mc.repo.UpdateBattingCard(card); err != nil {
		responses.InternalServerError(c, "Failed to update batting card: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Batting card updated successfully", card)
}

// DeleteBattingCard godoc
// @Summary Delete a batting card
// @Description Rejected once the match has been published.
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param card_id path uint true "Batting card ID"
// @Success 200 {object} responses.SuccessResponse "Card deleted"
// @Failure 404 {object} responses.ErrorResponse "Match or card not found"
// @Failure 409 {object} responses.ErrorResponse "Match already published"
// @Security ApiKeyAuth
// @Router /admin/matches/{match_id}/batting-cards/{card_id} [delete]
func (mc *MatchController) DeleteBattingCard(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}
	cardID, err := strconv.ParseUint(c.Param("card_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid card ID")
		return
	}

	if _, ok := mc.editableMatch(c, uint(matchID)); !ok {
		return
	}

	cards, err := mc.repo.GetBattingCards(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve batting cards: "+err.Error())
		return
	}
	found := false
	for i := range cards {
		if cards[i].ID == uint(cardID) {
			found = true
			break
		}
	}
	if !found {
		responses.NotFound(c, "Batting card")
		return
	}

	if err := mc.repo.DeleteBattingCard(uint(cardID)); err != nil {
		responses.InternalServerError(c, "Failed to delete batting card: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Batting card deleted successfully", nil)
}

// UpdateBowlingCard godoc
// @Summary Update a bowling card
// @Description Rejected once the match has been published. Renaming the player clears the card's resolved identity.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param card_id path uint true "Bowling card ID"
// @Param card body UpdateBowlingCardRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=BowlingCard} "Card updated"
// @Failure 404 {object} responses.ErrorResponse "Match or card not found"
// @Failure 409 {object} responses.ErrorResponse "Match already published"
// @Security ApiKeyAuth
// @Router /admin/matches/{match_id}/bowling-cards/{card_id} [put]
func (mc *MatchController) UpdateBowlingCard(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}
	cardID, err := strconv.ParseUint(c.Param("card_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid card ID")
		return
	}

	var req UpdateBowlingCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	if _, ok := mc.editableMatch(c, uint(matchID)); !ok {
		return
	}

	cards, err := mc.repo.GetBowlingCards(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve bowling cards: "+err.Error())
		return
	}
	var card *BowlingCard
	for i := range cards {
		if cards[i].ID == uint(cardID) {
			card = &cards[i]
			break
		}
	}
	if card == nil {
		responses.NotFound(c, "Bowling card")
		return
	}

	if req.PlayerName != nil && *req.PlayerName != card.PlayerName {
		card.PlayerName = *req.PlayerName
		card.PlayerID = nil
		card.Player = nil
	}
	if req.Overs != nil {
		card.Overs = *req.Overs
	}
	if req.Maidens != nil {
		card.Maidens = *req.Maidens
	}
	if req.RunsConceded != nil {
		card.RunsConceded = *req.RunsConceded
	}
	if req.Wickets != nil {
		card.Wickets = *req.Wickets
	}
	if req.Wides != nil {
		card.Wides = *req.Wides
	}
	if req.NoBalls != nil {
		card.NoBalls = *req.NoBalls
	}

	if err := mc.repo.UpdateBowlingCard(card); err != nil {
		responses.InternalServerError(c, "Failed to update bowling card: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Bowling card updated successfully", card)
}

// DeleteBowlingCard godoc
// @Summary Delete a bowling card
// @Description Rejected once the match has been published.
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param card_id path uint true "Bowling card ID"
// @Success 200 {object} responses.SuccessResponse "Card deleted"
// @Failure 404 {object} responses.ErrorResponse "Match or card not found"
// @Failure 409 {object} responses.ErrorResponse "Match already published"
// @Security ApiKeyAuth
// @Router /admin/matches/{match_id}/bowling-cards/{card_id} [delete]
func (mc *MatchController) DeleteBowlingCard(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}
	cardID, err := strconv.ParseUint(c.Param("card_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid card ID")
		return
	}

	if _, ok := mc.editableMatch(c, uint(matchID)); !ok {
		return
	}

	cards, err := mc.repo.GetBowlingCards(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve bowling cards: "+err.Error())
		return
	}
	found := false
	for i := range cards {
		if cards[i].ID == uint(cardID) {
			found = true
			break
		}
	}
	if !found {
		responses.NotFound(c, "Bowling card")
		return
	}

	if err := mc.repo.DeleteBowlingCard(uint(cardID)); err != nil {
		responses.InternalServerError(c, "Failed to delete bowling card: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Bowling card deleted successfully", nil)
}

// GetImportBatches godoc
// @Summary List a match's scorecard import batches
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]ImportBatch} "Import batches"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Security ApiKeyAuth
// @Router /admin/matches/{match_id}/import-batches [get]
func (mc *MatchController) GetImportBatches(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	batches, err := mc.repo.GetImportBatches(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve import batches: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Import batches retrieved successfully", batches)
}
