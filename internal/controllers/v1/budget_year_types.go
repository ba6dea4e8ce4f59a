package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sikuang/backend/internal/models"
	"github.com/sikuang/backend/internal/types"
)

// BudgetYearEditable represents all user configurable parameters
type BudgetYearEditable struct {
	Name      string     `json:"name" example:"TA 2024" default:""`     // Name of the budget year
	StartDate types.Date `json:"startDate" example:"2024-01-01"`        // First day of the budget year
	EndDate   types.Date `json:"endDate" example:"2024-12-31"`          // Last day of the budget year
	Active    bool       `json:"active" example:"true" default:"false"` // Is this the active budget year? Activating a budget year deactivates all others
}

func (editable BudgetYearEditable) model() models.BudgetYear {
	return models.BudgetYear{
		Name:      editable.Name,
		StartDate: editable.StartDate,
		EndDate:   editable.EndDate,
		Active:    editable.Active,
	}
}

// apply sets the editable fields on the model.
func (editable BudgetYearEditable) apply(model *models.BudgetYear) {
	model.Name = editable.Name
	model.StartDate = editable.StartDate
	model.EndDate = editable.EndDate
	model.Active = editable.Active
}

type BudgetYearLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/budget-years/d3c4b1a8-1c0e-4c41-9b2a-6a1e1c4d8f7e"`                          // The budget year itself
	Plans       string `json:"plans" example:"https://example.com/api/v1/plans?budgetYear=d3c4b1a8-1c0e-4c41-9b2a-6a1e1c4d8f7e"`                     // Plans of this budget year
	Realization string `json:"realization" example:"https://example.com/api/v1/reports/realization?budgetYear=d3c4b1a8-1c0e-4c41-9b2a-6a1e1c4d8f7e"` // Realization report for this budget year
}

type BudgetYear struct {
	models.DefaultModel
	BudgetYearEditable
	Links BudgetYearLinks `json:"links"`
}

func newBudgetYear(c *gin.Context, model models.BudgetYear) BudgetYear {
	url := c.GetString(string(models.DBContextURL))

	return BudgetYear{
		DefaultModel: model.DefaultModel,
		BudgetYearEditable: BudgetYearEditable{
			Name:      model.Name,
			StartDate: model.StartDate,
			EndDate:   model.EndDate,
			Active:    model.Active,
		},
		Links: BudgetYearLinks{
			Self:        fmt.Sprintf("%s/v1/budget-years/%s", url, model.ID),
			Plans:       fmt.Sprintf("%s/v1/plans?budgetYear=%s", url, model.ID),
			Realization: fmt.Sprintf("%s/v1/reports/realization?budgetYear=%s", url, model.ID),
		},
	}
}

type BudgetYearListResponse struct {
	Data       []BudgetYear `json:"data"`                                                          // List of budget years
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type BudgetYearCreateResponse struct {
	Data  []BudgetYearResponse `json:"data"`                                                          // List of the created budget years or their respective error
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetYearCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetYearResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetYearResponse struct {
	Data  *BudgetYear `json:"data"`                                                          // Data for the budget year
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetYearQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Active bool   `form:"active"`                     // Is the budget year active?
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first budget year returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of budget years to return. Defaults to 50.
}

func (f BudgetYearQueryFilter) model() models.BudgetYear {
	return models.BudgetYear{
		Active: f.Active,
	}
}
