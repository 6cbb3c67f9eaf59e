package formula

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/robharvey123/cricket-platform-sub001/pkg/responses"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FormulaController handles scoring formula HTTP requests
type FormulaController struct {
	repo FormulaRepository
}

// NewFormulaController creates a new formula controller
func NewFormulaController(repo FormulaRepository) *FormulaController {
	return &FormulaController{repo: repo}
}

// --- DTOs for requests ---

// FormulaValuesRequest carries the configurable point values. Omitted fields
// stay unconfigured; an explicit zero configures the rule at zero points.
type FormulaValuesRequest struct {
	RunPoints          *int `json:"run_points"`
	FourPoints         *int `json:"four_points"`
	SixPoints          *int `json:"six_points"`
	Milestone50Points  *int `json:"milestone_50_points"`
	Milestone100Points *int `json:"milestone_100_points"`
	DuckPoints         *int `json:"duck_points"`

	WicketPoints            *int     `json:"wicket_points"`
	MaidenPoints            *int     `json:"maiden_points"`
	ThreeWicketPoints       *int     `json:"three_wicket_points"`
	FiveWicketPoints        *int     `json:"five_wicket_points"`
	EconomyBonusThreshold   *float64 `json:"economy_bonus_threshold"`
	EconomyBonusPoints      *int     `json:"economy_bonus_points"`
	EconomyPenaltyThreshold *float64 `json:"economy_penalty_threshold"`
	EconomyPenaltyPoints    *int     `json:"economy_penalty_points"`
}

type CreateFormulaRequest struct {
	SeasonID uint   `json:"season_id" binding:"required"`
	Name     string `json:"name" binding:"required,min=3,max=100"`
	FormulaValuesRequest
}

func applyValues(f *ScoringFormula, v FormulaValuesRequest) {
	f.RunPoints = v.RunPoints
	f.FourPoints = v.FourPoints
	f.SixPoints = v.SixPoints
	f.Milestone50Points = v.Milestone50Points
	f.Milestone100Points = v.Milestone100Points
	f.DuckPoints = v.DuckPoints
	f.WicketPoints = v.WicketPoints
	f.MaidenPoints = v.MaidenPoints
	f.ThreeWicketPoints = v.ThreeWicketPoints
	f.FiveWicketPoints = v.FiveWicketPoints
	f.EconomyBonusThreshold = v.EconomyBonusThreshold
	f.EconomyBonusPoints = v.EconomyBonusPoints
	f.EconomyPenaltyThreshold = v.EconomyPenaltyThreshold
	f.EconomyPenaltyPoints = v.EconomyPenaltyPoints
}

// CreateFormula godoc
// @Summary Create a scoring formula for a season
// @Tags Formulas
// @Accept json
// @Produce json
// @Param formula body CreateFormulaRequest true "Formula Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=ScoringFormula} "Formula created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Security ApiKeyAuth
// @Router /admin/formulas [post]
func (fc *FormulaController) CreateFormula(c *gin.Context) {
	var req CreateFormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	f := ScoringFormula{
		SeasonID: req.SeasonID,
		Name:     req.Name,
	}
	applyValues(&f, req.FormulaValuesRequest)

	if f.ThresholdsOverlap() {
		log.Printf("WARNING: formula %q for season %d has overlapping economy thresholds (bonus %.2f >= penalty %.2f); both rules will fire for qualifying figures",
			f.Name, f.SeasonID, *f.EconomyBonusThreshold, *f.EconomyPenaltyThreshold)
	}

	if err := fc.repo.CreateFormula(&f); err != nil {
		responses.InternalServerError(c, "Failed to create formula: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Formula created successfully", f)
}

// GetFormulaByID godoc
// @Summary Get a scoring formula by ID
// @Tags Formulas
// @Produce json
// @Param formula_id path uint true "Formula ID"
// @Success 200 {object} responses.SuccessResponse{data=ScoringFormula} "Formula details"
// @Failure 404 {object} responses.ErrorResponse "Formula not found"
// @Router /formulas/{formula_id} [get]
func (fc *FormulaController) GetFormulaByID(c *gin.Context) {
	formulaID, err := strconv.ParseUint(c.Param("formula_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid formula ID")
		return
	}

	f, err := fc.repo.GetFormulaByID(uint(formulaID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve formula: "+err.Error())
		return
	}
	if f == nil {
		responses.NotFound(c, "Formula")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Formula retrieved successfully", f)
}

// GetSeasonFormulas godoc
// @Summary List a season's formulas
// @Tags Formulas
// @Produce json
// @Param season_id path uint true "Season ID"
// @Success 200 {object} responses.SuccessResponse "Formulas"
// @Router /seasons/{season_id}/formulas [get]
func (fc *FormulaController) GetSeasonFormulas(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
		return
	}

	formulas, err := fc.repo.GetFormulasBySeason(uint(seasonID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve formulas: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Formulas retrieved successfully", formulas)
}

// UpdateFormula godoc
// @Summary Update a scoring formula
// @Description Replaces the formula's point values. Fields omitted from the request become unconfigured.
// @Tags Formulas
// @Accept json
// @Produce json
// @Param formula_id path uint true "Formula ID"
// @Param formula body FormulaValuesRequest true "Point values"
// @Success 200 {object} responses.SuccessResponse{data=ScoringFormula} "Formula updated"
// @Failure 404 {object} responses.ErrorResponse "Formula not found"
// @Security ApiKeyAuth
// @Router /admin/formulas/{formula_id} [put]
func (fc *FormulaController) UpdateFormula(c *gin.Context) {
	formulaID, err := strconv.ParseUint(c.Param("formula_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid formula ID")
		return
	}

	var req FormulaValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	f, err := fc.repo.GetFormulaByID(uint(formulaID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve formula: "+err.Error())
		return
	}
	if f == nil {
		responses.NotFound(c, "Formula")
		return
	}

	applyValues(f, req)
	if f.ThresholdsOverlap() {
		log.Printf("WARNING: formula %q for season %d has overlapping economy thresholds (bonus %.2f >= penalty %.2f); both rules will fire for qualifying figures",
			f.Name, f.SeasonID, *f.EconomyBonusThreshold, *f.EconomyPenaltyThreshold)
	}

	if err := fc.repo.UpdateFormula(f); err != nil {
		responses.InternalServerError(c, "Failed to update formula: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Formula updated successfully", f)
}

// ActivateFormula godoc
// @Summary Activate a scoring formula
// @Description Marks the formula active and deactivates every other formula in the season.
// @Tags Formulas
// @Produce json
// @Param formula_id path uint true "Formula ID"
// @Success 200 {object} responses.SuccessResponse{data=ScoringFormula} "Formula activated"
// @Failure 404 {object} responses.ErrorResponse "Formula not found"
// @Security ApiKeyAuth
// @Router /admin/formulas/{formula_id}/activate [post]
func (fc *FormulaController) ActivateFormula(c *gin.Context) {
	formulaID, err := strconv.ParseUint(c.Param("formula_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid formula ID")
		return
	}

	f, err := fc.repo.GetFormulaByID(uint(formulaID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve formula: "+err.Error())
		return
	}
	if f == nil {
		responses.NotFound(c, "Formula")
		return
	}

	if err := fc.repo.ActivateFormula(f.SeasonID, f.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Formula")
			return
		}
		responses.InternalServerError(c, "Failed to activate formula: "+err.Error())
		return
	}

	f.IsActive = true
	responses.SendSuccess(c, http.StatusOK, "Formula activated successfully", f)
}

// DeleteFormula godoc
// @Summary Delete a scoring formula
// @Tags Formulas
// @Produce json
// @Param formula_id path uint true "Formula ID"
// @Success 200 {object} responses.SuccessResponse "Formula deleted"
// @Failure 404 {object} responses.ErrorResponse "Formula not found"
// @Security ApiKeyAuth
// @Router /admin/formulas/{formula_id} [delete]
func (fc *FormulaController) DeleteFormula(c *gin.Context) {
	formulaID, err := strconv.ParseUint(c.Param("formula_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid formula ID")
		return
	}

	f, err := fc.repo.GetFormulaByID(uint(formulaID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve formula: "+err.Error())
		return
	}
	if f == nil {
		responses.NotFound(c, "Formula")
		return
	}

	if err := fc.repo.DeleteFormula(uint(formulaID)); err != nil {
		responses.InternalServerError(c, "Failed to delete formula: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Formula deleted successfully", nil)
}
