package club

import (
	"net/http"
	"strconv"

	"github.com/robharvey123/cricket-platform-sub001/pkg/responses"
	"github.com/robharvey123/cricket-platform-sub001/pkg/utils"
	apputils "github.com/robharvey123/cricket-platform-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const apiKeyLength = 40

// ClubController handles club-related HTTP requests
type ClubController struct {
	repo ClubRepository
}

// NewClubController creates a new club controller
func NewClubController(repo ClubRepository) *ClubController {
	return &ClubController{repo: repo}
}

// --- DTOs for requests ---

type CreateClubRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

type UpdateClubRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

type clubWithKeyResponse struct {
	Club *Club `json:"club"`
	// APIKey is the plaintext scorer key. Store it; it cannot be retrieved again.
	APIKey string `json:"api_key"`
}

// CreateClub godoc
// @Summary Create a new club
// @Description Creates a club and generates its scorer API key. The plaintext key is returned once.
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club body CreateClubRequest true "Club Creation Data"
// @Success 201 {object} responses.SuccessResponse "Club created successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "Club name already exists"
// @Security ApiKeyAuth
// @Router /admin/clubs [post]
func (cc *ClubController) CreateClub(c *gin.Context) {
	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	existing, _ := cc.repo.GetClubByName(req.Name)
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Club name already exists")
		return
	}

	apiKey := utils.GenerateRandomToken(apiKeyLength)
	if apiKey == "" {
		responses.InternalServerError(c, "Failed to generate API key")
		return
	}
	hash, err := apputils.HashAPIKey(apiKey)
	if err != nil {
		responses.InternalServerError(c, "Failed to hash API key: "+err.Error())
		return
	}

	club := Club{
		Name:        req.Name,
		Description: req.Description,
		PublicID:    uuid.NewString(),
		APIKeyHash:  hash,
	}
	if err := cc.repo.CreateClub(&club); err != nil {
		responses.InternalServerError(c, "Failed to create club: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Club created successfully", clubWithKeyResponse{Club: &club, APIKey: apiKey})
}

// GetClubByID godoc
// @Summary Get a club by its ID
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=Club} "Club details"
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Router /clubs/{club_id} [get]
func (cc *ClubController) GetClubByID(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID")
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve club: "+err.Error())
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club retrieved successfully", club)
}

// GetAllClubs godoc
// @Summary List clubs
// @Tags Clubs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} responses.PaginatedResponse "Clubs"
// @Router /clubs [get]
func (cc *ClubController) GetAllClubs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	clubs, total, err := cc.repo.GetAllClubs(page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve clubs: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", clubs, total, page, limit)
}

// UpdateClub godoc
// @Summary Update a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param club body UpdateClubRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Club} "Club updated"
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Security ApiKeyAuth
// @Router /admin/clubs/{club_id} [put]
func (cc *ClubController) UpdateClub(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID")
		return
	}

	var req UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve club: "+err.Error())
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.Description != nil {
		club.Description = *req.Description
	}

	if err := cc.repo.UpdateClub(club); err != nil {
		responses.InternalServerError(c, "Failed to update club: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club updated successfully", club)
}

// RotateAPIKey godoc
// @Summary Rotate a club's scorer API key
// @Description Generates a new scorer API key, invalidating the previous one. The plaintext key is returned once.
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} responses.SuccessResponse "New API key"
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Security ApiKeyAuth
// @Router /admin/clubs/{club_id}/api-key [post]
func (cc *ClubController) RotateAPIKey(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID")
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve club: "+err.Error())
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}

	apiKey := utils.GenerateRandomToken(apiKeyLength)
	if apiKey == "" {
		responses.InternalServerError(c, "Failed to generate API key")
		return
	}
	hash, err := apputils.HashAPIKey(apiKey)
	if err != nil {
		responses.InternalServerError(c, "Failed to hash API key: "+err.Error())
		return
	}

	club.APIKeyHash = hash
	if err := cc.repo.UpdateClub(club); err != nil {
		responses.InternalServerError(c, "Failed to rotate API key: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "API key rotated successfully", clubWithKeyResponse{Club: club, APIKey: apiKey})
}

// DeleteClub godoc
// @Summary Delete a club
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} responses.SuccessResponse "Club deleted"
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Security ApiKeyAuth
// @Router /admin/clubs/{club_id} [delete]
func (cc *ClubController) DeleteClub(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID")
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve club: "+err.Error())
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}

	if err := cc.repo.DeleteClub(uint(clubID)); err != nil {
		responses.InternalServerError(c, "Failed to delete club: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club deleted successfully", nil)
}
