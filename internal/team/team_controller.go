package team

import (
	"net/http"
	"strconv"
	"time"

	"github.com/robharvey123/cricket-platform-sub001/pkg/responses"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// --- DTOs for requests ---

type CreateTeamRequest struct {
	ClubID   uint   `json:"club_id" binding:"required"`
	SeasonID uint   `json:"season_id" binding:"required"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
}

type UpdateTeamRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100"`
}

type AddSquadMemberRequest struct {
	PlayerID uint   `json:"player_id" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=player captain vice_captain wicket_keeper"`
}

// CreateTeam godoc
// @Summary Create a new team
// @Description Creates a team within a season. Season and club identifiers are required; there is no fallback to "whatever season exists".
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=Team} "Team created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Security ApiKeyAuth
// @Router /admin/teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	existing, _ := tc.repo.GetTeamBySlug(req.SeasonID, slug.Make(req.Name))
	if existing != nil {
		responses.Conflict(c, "A team with this name already exists in the season")
		return
	}

	team := Team{
		ClubID:   req.ClubID,
		SeasonID: req.SeasonID,
		Name:     req.Name,
		Slug:     slug.Make(req.Name),
	}
	if err := tc.repo.CreateTeam(&team); err != nil {
		responses.InternalServerError(c, "Failed to create team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// GetTeamByID godoc
// @Summary Get a team by its ID
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team} "Team details"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// GetSeasonTeams godoc
// @Summary List a season's teams
// @Tags Teams
// @Produce json
// @Param season_id path uint true "Season ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} responses.PaginatedResponse "Teams"
// @Router /seasons/{season_id}/teams [get]
func (tc *TeamController) GetSeasonTeams(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
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

	teams, total, err := tc.repo.GetTeamsBySeason(uint(seasonID), page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", teams, total, page, limit)
}

// GetSquad godoc
// @Summary List a team's squad
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse "Squad members"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{team_id}/squad [get]
func (tc *TeamController) GetSquad(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	members, err := tc.repo.GetSquadMembers(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve squad: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Squad retrieved successfully", members)
}

// AddSquadMember godoc
// @Summary Add a player to a team's squad
// @Description Idempotent; re-adding an existing member updates their role.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param member body AddSquadMemberRequest true "Squad member"
// @Success 201 {object} responses.SuccessResponse{data=SquadMember} "Member added"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /admin/teams/{team_id}/squad [post]
func (tc *TeamController) AddSquadMember(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	var req AddSquadMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	member := SquadMember{
		TeamID:   uint(teamID),
		PlayerID: req.PlayerID,
		Role:     req.Role,
		JoinedAt: time.Now(),
	}
	if err := tc.repo.AddSquadMember(&member); err != nil {
		responses.InternalServerError(c, "Failed to add squad member: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Squad member added successfully", member)
}

// RemoveSquadMember godoc
// @Summary Remove a player from a team's squad
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse "Member removed"
// @Security ApiKeyAuth
// @Router /admin/teams/{team_id}/squad/{player_id} [delete]
func (tc *TeamController) RemoveSquadMember(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	if err := tc.repo.RemoveSquadMember(uint(teamID), uint(playerID)); err != nil {
		responses.InternalServerError(c, "Failed to remove squad member: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Squad member removed successfully", nil)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param team body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Team} "Team updated"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /admin/teams/{team_id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	if req.Name != nil {
		team.Name = *req.Name
		team.Slug = slug.Make(*req.Name)
	}

	if err := tc.repo.UpdateTeam(team); err != nil {
		responses.InternalServerError(c, "Failed to update team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Destructive: removes the team and cascades to its matches and cards.
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse "Team deleted"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /admin/teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	if err := tc.repo.DeleteTeam(uint(teamID)); err != nil {
		responses.InternalServerError(c, "Failed to delete team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}
