package player

import (
	"net/http"
	"strconv"

	"github.com/robharvey123/cricket-platform-sub001/pkg/responses"

	"github.com/gin-gonic/gin"
)

// PlayerController handles player-related HTTP requests
type PlayerController struct {
	repo PlayerRepository
}

// NewPlayerController creates a new player controller
func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

// --- DTOs for requests ---

type CreatePlayerRequest struct {
	ClubID    uint   `json:"club_id" binding:"required"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"omitempty,max=30"`
}

type UpdatePlayerRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=30"`
	AccountID *uint   `json:"account_id"`
}

// CreatePlayer godoc
// @Summary Create a new player
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=Player} "Player created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "Player already exists"
// @Security ApiKeyAuth
// @Router /admin/players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	normalized := NormalizeName(req.FirstName + " " + req.LastName)
	existing, err := pc.repo.GetPlayerByNormalizedName(req.ClubID, normalized)
	if err != nil {
		responses.InternalServerError(c, "Failed to check existing player: "+err.Error())
		return
	}
	if existing != nil {
		responses.Conflict(c, "A player with this name already exists in the club")
		return
	}

	p := Player{
		ClubID:         req.ClubID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		NormalizedName: normalized,
		Email:          req.Email,
		Phone:          req.Phone,
	}
	if err := pc.repo.CreatePlayer(&p); err != nil {
		responses.InternalServerError(c, "Failed to create player: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", p)
}

// GetPlayerByID godoc
// @Summary Get a player by ID
// @Tags Players
// @Produce json
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player} "Player details"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /players/{player_id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve player: "+err.Error())
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player retrieved successfully", p)
}

// GetClubPlayers godoc
// @Summary List a club's players
// @Tags Players
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(25)
// @Param name query string false "Name filter"
// @Success 200 {object} responses.PaginatedResponse "Players"
// @Router /clubs/{club_id}/players [get]
func (pc *PlayerController) GetClubPlayers(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}

	players, total, err := pc.repo.GetPlayersByClub(uint(clubID), page, limit, c.Query("name"))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve players: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", players, total, page, limit)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player_id path uint true "Player ID"
// @Param player body UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Player} "Player updated"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Security ApiKeyAuth
// @Router /admin/players/{player_id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve player: "+err.Error())
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.FirstName != nil || req.LastName != nil {
		p.NormalizedName = NormalizeName(p.FirstName + " " + p.LastName)
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.AccountID != nil {
		p.AccountID = req.AccountID
	}

	if err := pc.repo.UpdatePlayer(p); err != nil {
		responses.InternalServerError(c, "Failed to update player: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", p)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Description Removes a player record. Players are never deleted automatically; this is an explicit admin action.
// @Tags Players
// @Produce json
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse "Player deleted"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Security ApiKeyAuth
// @Router /admin/players/{player_id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve player: "+err.Error())
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if err := pc.repo.DeletePlayer(uint(playerID)); err != nil {
		responses.InternalServerError(c, "Failed to delete player: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", nil)
}
