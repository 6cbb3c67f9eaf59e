package season

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/robharvey123/cricket-platform-sub001/pkg/responses"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// SeasonController handles season-related HTTP requests
type SeasonController struct {
	repo SeasonRepository
}

// NewSeasonController creates a new season controller
func NewSeasonController(repo SeasonRepository) *SeasonController {
	return &SeasonController{repo: repo}
}

// --- DTOs for requests ---

type CreateSeasonRequest struct {
	ClubID    uint      `json:"club_id" binding:"required"`
	Name      string    `json:"name" binding:"required,min=3,max=100"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
}

type UpdateSeasonRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=3,max=100"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// CreateSeason godoc
// @Summary Create a new season
// @Tags Seasons
// @Accept json
// @Produce json
// @Param season body CreateSeasonRequest true "Season Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=Season} "Season created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Security ApiKeyAuth
// @Router /admin/seasons [post]
func (sc *SeasonController) CreateSeason(c *gin.Context) {
	var req CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	s := Season{
		ClubID:    req.ClubID,
		Name:      req.Name,
		Slug:      slug.Make(req.Name),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := sc.repo.CreateSeason(&s); err != nil {
		responses.InternalServerError(c, "Failed to create season: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Season created successfully", s)
}

// GetSeasonByID godoc
// @Summary Get a season by ID
// @Tags Seasons
// @Produce json
// @Param season_id path uint true "Season ID"
// @Success 200 {object} responses.SuccessResponse{data=Season} "Season details"
// @Failure 404 {object} responses.ErrorResponse "Season not found"
// @Router /seasons/{season_id} [get]
func (sc *SeasonController) GetSeasonByID(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
		return
	}

	s, err := sc.repo.GetSeasonByID(uint(seasonID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve season: "+err.Error())
		return
	}
	if s == nil {
		responses.NotFound(c, "Season")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Season retrieved successfully", s)
}

// GetClubSeasons godoc
// @Summary List a club's seasons
// @Tags Seasons
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} responses.PaginatedResponse "Seasons"
// @Router /clubs/{club_id}/seasons [get]
func (sc *SeasonController) GetClubSeasons(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	seasons, total, err := sc.repo.GetSeasonsByClub(uint(clubID), page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve seasons: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", seasons, total, page, limit)
}

// UpdateSeason godoc
// @Summary Update a season
// @Tags Seasons
// @Accept json
// @Produce json
// @Param season_id path uint true "Season ID"
// @Param season body UpdateSeasonRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Season} "Season updated"
// @Failure 404 {object} responses.ErrorResponse "Season not found"
// @Security ApiKeyAuth
// @Router /admin/seasons/{season_id} [put]
func (sc *SeasonController) UpdateSeason(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
		return
	}

	var req UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	s, err := sc.repo.GetSeasonByID(uint(seasonID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve season: "+err.Error())
		return
	}
	if s == nil {
		responses.NotFound(c, "Season")
		return
	}

	if req.Name != nil {
		s.Name = *req.Name
		s.Slug = slug.Make(*req.Name)
	}
	if req.StartDate != nil {
		s.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		s.EndDate = *req.EndDate
	}

	if err := sc.repo.UpdateSeason(s); err != nil {
		responses.InternalServerError(c, "Failed to update season: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Season updated successfully", s)
}

// ActivateSeason godoc
// @Summary Activate a season
// @Description Marks the season active and deactivates every other season in the club.
// @Tags Seasons
// @Produce json
// @Param season_id path uint true "Season ID"
// @Success 200 {object} responses.SuccessResponse{data=Season} "Season activated"
// @Failure 404 {object} responses.ErrorResponse "Season not found"
// @Security ApiKeyAuth
// @Router /admin/seasons/{season_id}/activate [post]
func (sc *SeasonController) ActivateSeason(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
		return
	}

	s, err := sc.repo.GetSeasonByID(uint(seasonID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve season: "+err.Error())
		return
	}
	if s == nil {
		responses.NotFound(c, "Season")
		return
	}

	if err := sc.repo.ActivateSeason(s.ClubID, s.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Season")
			return
		}
		responses.InternalServerError(c, "Failed to activate season: "+err.Error())
		return
	}

	s.IsActive = true
	responses.SendSuccess(c, http.StatusOK, "Season activated successfully", s)
}

// DeleteSeason godoc
// @Summary Delete a season
// @Tags Seasons
// @Produce json
// @Param season_id path uint true "Season ID"
// @Success 200 {object} responses.SuccessResponse "Season deleted"
// @Failure 404 {object} responses.ErrorResponse "Season not found"
// @Security ApiKeyAuth
// @Router /admin/seasons/{season_id} [delete]
func (sc *SeasonController) DeleteSeason(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
		return
	}

	s, err := sc.repo.GetSeasonByID(uint(seasonID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve season: "+err.Error())
		return
	}
	if s == nil {
		responses.NotFound(c, "Season")
		return
	}

	if err := sc.repo.DeleteSeason(uint(seasonID)); err != nil {
		responses.InternalServerError(c, "Failed to delete season: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Season deleted successfully", nil)
}
