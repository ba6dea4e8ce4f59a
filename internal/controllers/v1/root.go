package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sikuang/backend/internal/httputil"
	"github.com/sikuang/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	BudgetYears  string `json:"budgetYears" example:"https://example.com/api/v1/budget-years"`           // URL of budget year list endpoint
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`              // URL of category list endpoint
	Plans        string `json:"plans" example:"https://example.com/api/v1/plans"`                        // URL of plan list endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`          // URL of transaction list endpoint
	Settings     string `json:"settings" example:"https://example.com/api/v1/settings"`                  // URL of setting list endpoint
	Reports      string `json:"reports" example:"https://example.com/api/v1/reports"`                    // Base URL of the report endpoints
	Summary      string `json:"summary" example:"https://example.com/api/v1/reports/summary"`            // URL of the summary report
	CashBook     string `json:"cashBook" example:"https://example.com/api/v1/reports/cash-book"`         // URL of the cash book report
	Realization  string `json:"realization" example:"https://example.com/api/v1/reports/realization"`    // URL of the realization report
	BalanceSheet string `json:"balanceSheet" example:"https://example.com/api/v1/reports/balance-sheet"` // URL of the balance sheet report
	PlanReport   string `json:"planReport" example:"https://example.com/api/v1/reports/plans"`           // URL of the plan list report
}

// RegisterRootRoutes registers the routes for the v1 root with
// the RouterGroup that is passed.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			BudgetYears:  url + "/budget-years",
			Categories:   url + "/categories",
			Plans:        url + "/plans",
			Transactions: url + "/transactions",
			Settings:     url + "/settings",
			Reports:      url + "/reports",
			Summary:      url + "/reports/summary",
			CashBook:     url + "/reports/cash-book",
			Realization:  url + "/reports/realization",
			BalanceSheet: url + "/reports/balance-sheet",
			PlanReport: url + "/reports/plans",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
