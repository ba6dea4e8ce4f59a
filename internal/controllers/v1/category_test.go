package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/sikuang/backend/internal/controllers/v1"
	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/models"
	"github.com/sikuang/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	tests := []struct {
		name string // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestCategory(t, v1.CategoryEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/categories", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CategoryListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
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

// TestCategoriesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		id     string // path at the endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/categories", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	tests := []struct {
		name     string
		editable v1.CategoryEditable
		status   int
	}{
		{"Income", v1.CategoryEditable{Name: "Iuran anggota", Kind: finance.KindIncome}, http.StatusCreated},
		{"Expense", v1.CategoryEditable{Name: "Konsumsi", Description: " Makan dan minum ", Kind: finance.KindExpense}, http.StatusCreated},
		{"Invalid kind", v1.CategoryEditable{Name: "Broken", Kind: "transfer"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			c := createTestCategory(t, tt.editable, tt.status)
			if tt.status != http.StatusCreated {
				return
			}

			assert.Equal(t, tt.editable.Name, c.Data.Name)
			assert.Equal(t, tt.editable.Kind, c.Data.Kind)
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/plans?category=%s", c.Data.ID), c.Data.Links.Plans)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreateTrimsDescription() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Konsumsi", Description: " Makan dan minum "})

	r := test.Request(suite.T(), http.MethodGet, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Makan dan minum", response.Data.Description)
}

func (suite *TestSuiteStandard) TestCategoriesCreateDuplicateName() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Konsumsi"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{
		{Name: "Konsumsi", Kind: finance.KindExpense},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), models.ErrCategoryNameNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestCategoriesGetList() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Iuran anggota", Description: "Bulanan", Kind: finance.KindIncome})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Konsumsi", Description: "Makan dan minum", Kind: finance.KindExpense})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Transportasi", Kind: finance.KindExpense})

	tests := []struct {
		name   string
		query  string
		names  []string
		status int
	}{
		{"All", "", []string{"Iuran anggota", "Konsumsi", "Transportasi"}, http.StatusOK},
		{"Kind income", "kind=income", []string{"Iuran anggota"}, http.StatusOK},
		{"Kind expense", "kind=expense", []string{"Konsumsi", "Transportasi"}, http.StatusOK},
		{"Name", "name=kons", []string{"Konsumsi"}, http.StatusOK},
		{"Empty description", "description=", []string{"Transportasi"}, http.StatusOK},
		{"Search", "search=bulan", []string{"Iuran anggota"}, http.StatusOK},
		{"Limit and offset", "limit=1&offset=1", []string{"Konsumsi"}, http.StatusOK},
		{"Invalid kind", "kind=transfer", nil, http.StatusBadRequest},
		{"Invalid limit", "limit=many", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)

			var names []string
			for _, c := range response.Data {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Konsumsi", Description: "Makan"})

	r := test.Request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{
		"description": "Makan dan minum",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Konsumsi", response.Data.Name)
	assert.Equal(suite.T(), "Makan dan minum", response.Data.Description)
	assert.Equal(suite.T(), finance.KindExpense, response.Data.Kind)

	r = test.Request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{"kind": "transfer"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodDelete, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
