package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/sikuang/backend/internal/controllers/v1"
	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/models"
	"github.com/sikuang/backend/internal/types"
	"github.com/sikuang/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransactionsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	tests := []struct {
		name string // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestTransaction(t, v1.TransactionEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/transactions", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.TransactionListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
		{
			"GET with description fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?description=snack", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestTransactionsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name   string
		id     string // path at the endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No transaction with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Transaction exists", createTestTransaction(suite.T(), v1.TransactionEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	p := createTestPlan(suite.T(), v1.PlanEditable{})

	tr := createTestTransaction(suite.T(), v1.TransactionEditable{
		PlanID:      &p.Data.ID,
		Date:        date(2024, time.March, 1),
		Description: " Snack rapat ",
		EvidenceURL: "https://example.com/receipts/1.jpg",
		Ekuivalen:   ekuivalen(5, 50000),
	})

	assert.Equal(suite.T(), "Snack rapat", tr.Data.Description)
	assert.Equal(suite.T(), "250000", tr.Data.Amount.String())
	assert.Equal(suite.T(), "5 paket × @ Rp50.000", tr.Data.Breakdown)
	assert.Equal(suite.T(), p.Data.Links.Self, tr.Data.Links.Plan)
	assert.True(suite.T(), date(2024, time.March, 1).Equal(tr.Data.Date))
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaults() {
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{})

	assert.Nil(suite.T(), tr.Data.PlanID)
	assert.Equal(suite.T(), "", tr.Data.Links.Plan)
	assert.True(suite.T(), types.DateOf(time.Now().In(time.UTC)).Equal(tr.Data.Date), "The date must default to today")
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	missingPlan := uuid.New()

	tests := []struct {
		name     string
		editable v1.TransactionEditable
		status   int
		err      error
	}{
		{"Invalid type", v1.TransactionEditable{Type: "transfer", Ekuivalen: ekuivalen(1, 1000)}, http.StatusBadRequest, models.ErrTransactionTypeInvalid},
		{"No quantity", v1.TransactionEditable{Type: finance.KindExpense, Ekuivalen: ekuivalen(0, 1000)}, http.StatusBadRequest, models.ErrQuantityRequired},
		{"Negative price", v1.TransactionEditable{Type: finance.KindExpense, Ekuivalen: ekuivalen(1, -1000)}, http.StatusBadRequest, models.ErrUnitPriceRequired},
		{"Unknown plan", v1.TransactionEditable{PlanID: &missingPlan, Type: finance.KindExpense, Ekuivalen: ekuivalen(1, 1000)}, http.StatusNotFound, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.Contains(t, *response.Data[0].Error, tt.err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetList() {
	p := createTestPlan(suite.T(), v1.PlanEditable{})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{PlanID: &p.Data.ID, Date: date(2024, time.March, 1), Description: "Snack rapat koordinasi"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{PlanID: &p.Data.ID, Date: date(2024, time.March, 15), Description: "Makan siang rapat"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: date(2024, time.April, 1), Description: "Iuran April", Type: finance.KindIncome})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: date(2024, time.April, 2)})

	tests := []struct {
		name         string
		query        string
		descriptions []string
		total        int64
		status       int
	}{
		{"All, newest first", "", []string{"", "Iuran April", "Makan siang rapat", "Snack rapat koordinasi"}, 4, http.StatusOK},
		{"Plan", fmt.Sprintf("plan=%s", p.Data.ID), []string{"Makan siang rapat", "Snack rapat koordinasi"}, 2, http.StatusOK},
		{"Without plan", "plan=", []string{"", "Iuran April"}, 2, http.StatusOK},
		{"Type", "type=income", []string{"Iuran April"}, 1, http.StatusOK},
		{"From date", "fromDate=2024-03-15", []string{"", "Iuran April", "Makan siang rapat"}, 3, http.StatusOK},
		{"Until date", "untilDate=2024-03-15", []string{"Makan siang rapat", "Snack rapat koordinasi"}, 2, http.StatusOK},
		{"Date range", "fromDate=2024-03-02&untilDate=2024-04-01", []string{"Iuran April", "Makan siang rapat"}, 2, http.StatusOK},
		{"Description substring", "description=RAPAT", []string{"Makan siang rapat", "Snack rapat koordinasi"}, 2, http.StatusOK},
		{"Description glob", "description=" + url.QueryEscape("snack*koordinasi"), []string{"Snack rapat koordinasi"}, 1, http.StatusOK},
		{"Description glob prefix", "description=" + url.QueryEscape("makan*"), []string{"Makan siang rapat"}, 1, http.StatusOK},
		{"Empty description", "description=", []string{""}, 1, http.StatusOK},
		{"Description with pagination", "description=rapat&limit=1&offset=1", []string{"Snack rapat koordinasi"}, 2, http.StatusOK},
		{"Limit", "limit=1", []string{""}, 4, http.StatusOK},
		{"Invalid type", "type=transfer", nil, 0, http.StatusBadRequest},
		{"Invalid date", "fromDate=2024-13-01", nil, 0, http.StatusBadRequest},
		{"Invalid plan", "plan=NotAUUID", nil, 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			descriptions := make([]string, 0)
			for _, tr := range response.Data {
				descriptions = append(descriptions, tr.Description)
			}
			assert.Equal(t, tt.descriptions, descriptions)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing transaction", tr.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No transaction with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"PATCH No transaction with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
		{"DELETE No transaction with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestTransactionsUpdateMovesRealization verifies that moving a transaction
// to another plan updates the realization of both plans.
func (suite *TestSuiteStandard) TestTransactionsCreateLenientQuantities() {
	tests := []struct {
		name   string
		body   string
		amount string
	}{
		{"Empty optional quantity", `[{"type": "expense", "quantity1": "2", "quantity2": "", "unitPrice": "50000"}]`, "100000"},
		{"Invalid optional quantities", `[{"type": "expense", "quantity1": "2", "quantity2": "abc", "quantity3": "-4", "unitPrice": "50000"}]`, "100000"},
		{"JSON numbers", `[{"type": "expense", "quantity1": 2, "quantity2": 3, "unitPrice": 50000}]`, "300000"},
		{"Comma separator", `[{"type": "expense", "quantity1": "1,5", "unitPrice": "1000"}]`, "1500"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusCreated)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.Equal(t, tt.amount, response.Data[0].Data.Amount.String())
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdateClearsQuantity() {
	e := ekuivalen(2, 1000)
	e.Quantity2 = decimal.NewNullDecimal(decimal.NewFromInt(5))
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{Ekuivalen: e})
	assert.Equal(suite.T(), "10000", tr.Data.Amount.String())

	r := test.Request(suite.T(), http.MethodPatch, tr.Data.Links.Self, `{ "quantity2": "" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.False(suite.T(), updated.Data.Quantity2.Valid, "An empty optional quantity must be removed")
	assert.Equal(suite.T(), "2000", updated.Data.Amount.String())
	assert.Equal(suite.T(), "2", updated.Data.Quantity1.String(), "Fields that are not set must be kept")
}

func (suite *TestSuiteStandard) TestTransactionsUpdateKeepsPreviousPlan() {
	first := createTestPlan(suite.T(), v1.PlanEditable{Ekuivalen: ekuivalen(1, 1000)})
	second := createTestPlan(suite.T(), v1.PlanEditable{Ekuivalen: ekuivalen(1, 1000)})
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{PlanID: &first.Data.ID, Ekuivalen: ekuivalen(1, 400)})

	r := test.Request(suite.T(), http.MethodPatch, tr.Data.Links.Self, map[string]any{"planId": second.Data.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The plan the transaction was moved away from is refreshed, too
	r = test.Request(suite.T(), http.MethodGet, first.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var plan v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &plan)
	assert.True(suite.T(), plan.Data.TotalRealized.IsZero(), "got %s", plan.Data.TotalRealized)
	assert.Equal(suite.T(), "1000", plan.Data.Remaining.String())
}

func (suite *TestSuiteStandard) TestTransactionsUpdateMovesRealization() {
	first := createTestPlan(suite.T(), v1.PlanEditable{})
	second := createTestPlan(suite.T(), v1.PlanEditable{})

	tr := createTestTransaction(suite.T(), v1.TransactionEditable{PlanID: &first.Data.ID, Ekuivalen: ekuivalen(2, 100000)})

	r := test.Request(suite.T(), http.MethodPatch, tr.Data.Links.Self, map[string]any{
		"planId":    second.Data.ID,
		"quantity1": "3",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "300000", updated.Data.Amount.String())
	assert.Equal(suite.T(), second.Data.Links.Self, updated.Data.Links.Plan)

	for _, tt := range []struct {
		plan     v1.PlanResponse
		realized string
	}{
		{first, "0"},
		{second, "300000"},
	} {
		r := test.Request(suite.T(), http.MethodGet, tt.plan.Data.Links.Self, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var plan v1.PlanResponse
		test.DecodeResponse(suite.T(), &r, &plan)
		assert.Equal(suite.T(), tt.realized, plan.Data.TotalRealized.String())
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdateUnlink() {
	p := createTestPlan(suite.T(), v1.PlanEditable{})
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{PlanID: &p.Data.ID})

	r := test.Request(suite.T(), http.MethodPatch, tr.Data.Links.Self, `{ "planId": null }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Nil(suite.T(), updated.Data.PlanID)
	assert.Equal(suite.T(), "", updated.Data.Links.Plan)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateInvalid() {
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken JSON", `{ "description": 2 }`, http.StatusBadRequest},
		{"Invalid type", map[string]any{"type": "transfer"}, http.StatusBadRequest},
		{"Unknown plan", map[string]any{"planId": uuid.New()}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tr.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	p := createTestPlan(suite.T(), v1.PlanEditable{})
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{PlanID: &p.Data.ID, Ekuivalen: ekuivalen(1, 400000)})

	r := test.Request(suite.T(), http.MethodDelete, tr.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, tr.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The realization of the plan is updated
	r = test.Request(suite.T(), http.MethodGet, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var plan v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &plan)
	assert.Equal(suite.T(), "0", plan.Data.TotalRealized.String())
	assert.Equal(suite.T(), "1000000", plan.Data.Remaining.String())
}
