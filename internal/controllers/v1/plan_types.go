package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/models"
	"github.com/sikuang/backend/internal/types"
	sk_uuid "github.com/sikuang/backend/internal/uuid"
)

// PlanEditable represents all user configurable parameters
type PlanEditable struct {
	BudgetYearID uuid.UUID  `json:"budgetYearId" example:"d3c4b1a8-1c0e-4c41-9b2a-6a1e1c4d8f7e"` // ID of the budget year the plan belongs to
	CategoryID   uuid.UUID  `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`   // ID of the category of the plan
	Name         string     `json:"name" example:"Rapat koordinasi" default:""`                  // Name of the plan
	Description  string     `json:"description" example:"Rapat bulanan pengurus" default:""`     // Description of the plan
	StartDate    types.Date `json:"startDate" example:"2024-03-01"`                              // Planned start of the activity
	EndDate      types.Date `json:"endDate" example:"2024-03-02"`                                // Planned end of the activity
	finance.Ekuivalen
}

func (editable PlanEditable) model() models.Plan {
	return models.Plan{
		BudgetYearID: editable.BudgetYearID,
		CategoryID:   editable.CategoryID,
		Name:         editable.Name,
		Description:  editable.Description,
		StartDate:    editable.StartDate,
		EndDate:      editable.EndDate,
		Ekuivalen:    editable.Ekuivalen,
	}
}

func (editable PlanEditable) apply(model *models.Plan) {
	model.BudgetYearID = editable.BudgetYearID
	model.CategoryID = editable.CategoryID
	model.Name = editable.Name
	model.Description = editable.Description
	model.StartDate = editable.StartDate
	model.EndDate = editable.EndDate
	model.Ekuivalen = editable.Ekuivalen
}

type PlanLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/plans/0c3e9ab6-3f0d-4c38-a0e2-6b6f7f4f0d1c"`                     // The plan itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?plan=0c3e9ab6-3f0d-4c38-a0e2-6b6f7f4f0d1c"` // Transactions linked to the plan
	Realization  string `json:"realization" example:"https://example.com/api/v1/plans/0c3e9ab6-3f0d-4c38-a0e2-6b6f7f4f0d1c/realization"`  // Fresh realization of the plan
}

type Plan struct {
	models.DefaultModel
	PlanEditable
	Links PlanLinks `json:"links"`

	// These fields are computed
	Kind          finance.Kind    `json:"kind" example:"expense"`                    // Kind of the plan's category
	PlannedAmount decimal.Decimal `json:"plannedAmount" example:"1000000"`           // Planned amount, computed from the ekuivalen
	Breakdown     string          `json:"breakdown" example:"5 paket × @ Rp200.000"` // Human readable ekuivalen

	// Cached realization. Use the realization link for current values
	TotalRealized   decimal.Decimal `json:"totalRealized" example:"250000"`
	PercentRealized decimal.Decimal `json:"percentRealized" example:"25"`
	Remaining       decimal.Decimal `json:"remaining" example:"750000"`
	RealizedAt      *time.Time      `json:"realizedAt" example:"2024-04-02T19:28:44.491514Z"` // Time the cached realization was computed
}

// newPlan returns the API representation. The Category of the model must be loaded.
func newPlan(c *gin.Context, model models.Plan) Plan {
	url := c.GetString(string(models.DBContextURL))

	return Plan{
		DefaultModel: model.DefaultModel,
		PlanEditable: PlanEditable{
			BudgetYearID: model.BudgetYearID,
			CategoryID:   model.CategoryID,
			Name:         model.Name,
			Description:  model.Description,
			StartDate:    model.StartDate,
			EndDate:      model.EndDate,
			Ekuivalen:    model.Ekuivalen,
		},
		Links: PlanLinks{
			Self:         fmt.Sprintf("%s/v1/plans/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?plan=%s", url, model.ID),
			Realization:  fmt.Sprintf("%s/v1/plans/%s/realization", url, model.ID),
		},
		Kind:            model.Category.Kind,
		PlannedAmount:   model.PlannedAmount,
		Breakdown:       finance.FormatBreakdown(model.Ekuivalen),
		TotalRealized:   model.TotalRealized,
		PercentRealized: model.PercentRealized,
		Remaining:       model.Remaining,
		RealizedAt:      model.RealizedAt,
	}
}

type PlanListResponse struct {
	Data       []Plan      `json:"data"`                                                          // List of plans
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PlanCreateResponse struct {
	Data  []PlanResponse `json:"data"`                                                          // List of the created plans or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *PlanCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, PlanResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PlanResponse struct {
	Data  *Plan   `json:"data"`                                                          // Data for the plan
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PlanQueryFilter struct {
	BudgetYearID sk_uuid.UUID `form:"budgetYear"`                      // By ID of the budget year
	CategoryID   sk_uuid.UUID `form:"category"`                        // By ID of the category
	Name         string       `form:"name" filterField:"false"`        // By name
	Description  string       `form:"description" filterField:"false"` // By description
	Search       string       `form:"search" filterField:"false"`      // By string in name or description
	Offset       uint         `form:"offset" filterField:"false"`      // The offset of the first plan returned. Defaults to 0.
	Limit        int          `form:"limit" filterField:"false"`       // Maximum number of plans to return. Defaults to 50.
}

func (f PlanQueryFilter) model() models.Plan {
	return models.Plan{
		BudgetYearID: f.BudgetYearID.UUID,
		CategoryID:   f.CategoryID.UUID,
	}
}

// PlanRealization is the current realization of a plan.
type PlanRealization struct {
	PlanID        uuid.UUID       `json:"planId" example:"0c3e9ab6-3f0d-4c38-a0e2-6b6f7f4f0d1c"` // ID of the plan
	PlannedAmount decimal.Decimal `json:"plannedAmount" example:"1000000"`                       // Planned amount of the plan
	finance.Realization
}

type PlanRealizationResponse struct {
	Data  *PlanRealization `json:"data"`                                                          // Realization of the plan
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
