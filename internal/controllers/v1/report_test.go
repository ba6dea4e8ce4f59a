package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/sikuang/backend/internal/controllers/v1"
	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/report"
	"github.com/sikuang/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeReportError(t *testing.T, r *httptest.ResponseRecorder) string {
	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(t, r, &response)
	return response.Error
}

type reportFixture struct {
	budgetYear v1.BudgetYear
	income     v1.Category
	food       v1.Category
	stationery v1.Category
}

// createReportFixture creates the active budget year 2024 with three plans
// starting in January and February and five transactions, one of them
// outside of the budget year.
func (suite *TestSuiteStandard) createReportFixture() reportFixture {
	t := suite.T()

	f := reportFixture{
		budgetYear: *createTestBudgetYear(t, v1.BudgetYearEditable{Name: "TA 2024", Active: true}).Data,
		income:     *createTestCategory(t, v1.CategoryEditable{Name: "Iuran", Kind: finance.KindIncome}).Data,
		food:       *createTestCategory(t, v1.CategoryEditable{Name: "Konsumsi"}).Data,
		stationery: *createTestCategory(t, v1.CategoryEditable{Name: "ATK"}).Data,
	}

	dues := createTestPlan(t, v1.PlanEditable{
		BudgetYearID: f.budgetYear.ID,
		CategoryID:   f.income.ID,
		Name:         "Iuran anggota",
		StartDate:    date(2024, time.January, 1),
		Ekuivalen:    ekuivalen(10, 100000),
	})

	meeting := createTestPlan(t, v1.PlanEditable{
		BudgetYearID: f.budgetYear.ID,
		CategoryID:   f.food.ID,
		Name:         "Rapat",
		StartDate:    date(2024, time.February, 10),
		EndDate:      date(2024, time.February, 11),
		Ekuivalen:    ekuivalen(4, 250000),
	})

	pens := createTestPlan(t, v1.PlanEditable{
		BudgetYearID: f.budgetYear.ID,
		CategoryID:   f.stationery.ID,
		Name:         "Alat tulis",
		StartDate:    date(2024, time.February, 20),
		Ekuivalen:    ekuivalen(1, 200000),
	})

	createTestTransaction(t, v1.TransactionEditable{
		PlanID:      &dues.Data.ID,
		Date:        date(2024, time.January, 5),
		Description: "Iuran Januari",
		Type:        finance.KindIncome,
		Ekuivalen:   ekuivalen(1, 600000),
	})

	createTestTransaction(t, v1.TransactionEditable{
		PlanID:      &meeting.Data.ID,
		Date:        date(2024, time.February, 10),
		Description: "Snack rapat",
		Ekuivalen:   ekuivalen(3, 50000),
	})

	createTestTransaction(t, v1.TransactionEditable{
		PlanID:      &pens.Data.ID,
		Date:        date(2024, time.February, 20),
		Description: "Pulpen",
		Ekuivalen:   ekuivalen(10, 5000),
	})

	createTestTransaction(t, v1.TransactionEditable{
		Date:        date(2024, time.March, 1),
		Description: "Parkir",
		Ekuivalen:   ekuivalen(1, 30000),
	})

	createTestTransaction(t, v1.TransactionEditable{
		Date:        date(2023, time.December, 31),
		Description: "Tahun lalu",
		Ekuivalen:   ekuivalen(1, 999),
	})

	return f
}

func (suite *TestSuiteStandard) TestReportsOptions() {
	for _, path := range []string{"summary", "cash-book", "realization", "balance-sheet", "plans"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/reports/"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestReportsDBClosed() {
	suite.CloseDB()

	for _, path := range []string{"summary", "cash-book", "realization", "balance-sheet", "plans"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/reports/"+path+"?year=2024", "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}

func (suite *TestSuiteStandard) TestReportsSummary() {
	f := suite.createReportFixture()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	s := response.Data

	require.NotNil(suite.T(), s.BudgetYearID)
	assert.Equal(suite.T(), f.budgetYear.ID, *s.BudgetYearID)
	assert.Equal(suite.T(), "2024-01-01", s.Period.Start.String())
	assert.Equal(suite.T(), "2024-12-31", s.Period.End.String())

	assert.Equal(suite.T(), "1000000", s.TotalPlannedIncome.String())
	assert.Equal(suite.T(), "1200000", s.TotalPlannedExpense.String())
	assert.Equal(suite.T(), "600000", s.TotalRealizedIncome.String())
	assert.Equal(suite.T(), "230000", s.TotalRealizedExpense.String())
	assert.Equal(suite.T(), "370000", s.NetBalance.String())

	expected := []struct {
		id       *uuid.UUID
		name     string
		kind     finance.Kind
		planned  string
		realized string
	}{
		{&f.income.ID, "Iuran", finance.KindIncome, "1000000", "600000"},
		{&f.stationery.ID, "ATK", finance.KindExpense, "200000", "50000"},
		{&f.food.ID, "Konsumsi", finance.KindExpense, "1000000", "150000"},
		{nil, finance.OtherCategoryName, finance.KindExpense, "0", "30000"},
	}

	require.Len(suite.T(), s.ByCategory, len(expected))
	for i, e := range expected {
		c := s.ByCategory[i]
		assert.Equal(suite.T(), e.id, c.CategoryID, e.name)
		assert.Equal(suite.T(), e.name, c.CategoryName)
		assert.Equal(suite.T(), e.kind, c.Kind, e.name)
		assert.Equal(suite.T(), e.planned, c.PlannedTotal.String(), e.name)
		assert.Equal(suite.T(), e.realized, c.RealizedTotal.String(), e.name)
	}
}

func (suite *TestSuiteStandard) TestReportsSummaryOtherBudgetYear() {
	suite.createReportFixture()
	next := createTestBudgetYear(suite.T(), v1.BudgetYearEditable{
		Name:      "TA 2025",
		StartDate: date(2025, time.January, 1),
		EndDate:   date(2025, time.December, 31),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/summary?budgetYear=%s", next.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), next.Data.ID, *response.Data.BudgetYearID)
	assert.Equal(suite.T(), "2025-01-01", response.Data.Period.Start.String())
	assert.True(suite.T(), response.Data.NetBalance.IsZero())
	assert.True(suite.T(), response.Data.TotalPlannedExpense.IsZero())
	assert.NotNil(suite.T(), response.Data.ByCategory)
	assert.Len(suite.T(), response.Data.ByCategory, 0)
}

func (suite *TestSuiteStandard) TestReportsMonthOfOtherBudgetYear() {
	suite.createReportFixture()
	previous := createTestBudgetYear(suite.T(), v1.BudgetYearEditable{
		Name:      "TA 2023",
		StartDate: date(2023, time.January, 1),
		EndDate:   date(2023, time.December, 31),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/cash-book?budgetYear=%s&month=12", previous.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CashBookReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "2023-12-01", response.Data.Period.Start.String())
	assert.Equal(suite.T(), "2023-12-31", response.Data.Period.End.String())
	require.Len(suite.T(), response.Data.Entries, 1)
	assert.Equal(suite.T(), "Tahun lalu", response.Data.Entries[0].Description)
}

func (suite *TestSuiteStandard) TestReportsWithoutBudgetYear() {
	createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:      date(2024, time.May, 2),
		Type:      finance.KindIncome,
		Ekuivalen: ekuivalen(2, 75000),
	})

	// Without a budget year, the period must be given
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), decodeReportError(suite.T(), &r), finance.ErrInvalidYear.Error())

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/summary?year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Nil(suite.T(), response.Data.BudgetYearID)
	assert.True(suite.T(), response.Data.TotalPlannedIncome.IsZero())
	assert.Equal(suite.T(), "150000", response.Data.TotalRealizedIncome.String())
	require.Len(suite.T(), response.Data.ByCategory, 1)
	assert.Equal(suite.T(), finance.OtherCategoryName, response.Data.ByCategory[0].CategoryName)
	assert.Equal(suite.T(), finance.KindIncome, response.Data.ByCategory[0].Kind)
}

func (suite *TestSuiteStandard) TestReportsCashBook() {
	suite.createReportFixture()

	tests := []struct {
		name         string
		query        string
		descriptions []string
		balances     []string
		income       string
		expense      string
		final        string
	}{
		{
			"Budget year",
			"",
			[]string{"Iuran Januari", "Snack rapat", "Pulpen", "Parkir"},
			[]string{"600000", "450000", "400000", "370000"},
			"600000", "230000", "370000",
		},
		{
			"Month",
			"year=2024&month=2",
			[]string{"Snack rapat", "Pulpen"},
			[]string{"-150000", "-200000"},
			"0", "200000", "-200000",
		},
		{
			"Month of the budget year",
			"month=2",
			[]string{"Snack rapat", "Pulpen"},
			[]string{"-150000", "-200000"},
			"0", "200000", "-200000",
		},
		{
			"Full year 2023",
			"year=2023",
			[]string{"Tahun lalu"},
			[]string{"-999"},
			"0", "999", "-999",
		},
		{
			"Explicit range",
			"startDate=2024-02-01&endDate=2024-02-15",
			[]string{"Snack rapat"},
			[]string{"-150000"},
			"0", "150000", "-150000",
		},
		{
			"Only a start date uses the year",
			"startDate=2024-02-01&year=2024&month=3",
			[]string{"Parkir"},
			[]string{"-30000"},
			"0", "30000", "-30000",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/reports/cash-book?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CashBookReportResponse
			test.DecodeResponse(t, &r, &response)
			c := response.Data

			require.Len(t, c.Entries, len(tt.descriptions))
			for i, e := range c.Entries {
				assert.Equal(t, tt.descriptions[i], e.Description)
				assert.Equal(t, tt.balances[i], e.RunningBalance.String(), e.Description)
			}

			assert.Equal(t, tt.income, c.TotalIncome.String())
			assert.Equal(t, tt.expense, c.TotalExpense.String())
			assert.Equal(t, tt.final, c.FinalBalance.String())
		})
	}
}

func (suite *TestSuiteStandard) TestReportsCashBookEntry() {
	suite.createReportFixture()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/cash-book?year=2024&month=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CashBookReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data.Entries, 2)

	e := response.Data.Entries[0]
	assert.Equal(suite.T(), "2024-02-10", e.Date.String())
	assert.Equal(suite.T(), "Rapat", e.PlanName)
	assert.Equal(suite.T(), finance.KindExpense, e.Type)
	assert.Equal(suite.T(), "3 paket × @ Rp50.000", e.Breakdown)
	assert.True(suite.T(), e.Income.IsZero())
	assert.Equal(suite.T(), "150000", e.Expense.String())
}

func (suite *TestSuiteStandard) TestReportsRealization() {
	suite.createReportFixture()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/realization", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RealizationReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	realization := response.Data

	expected := []struct {
		name      string
		kind      finance.Kind
		planned   string
		realized  string
		percent   string
		remaining string
	}{
		{"Alat tulis", finance.KindExpense, "200000", "50000", "25", "150000"},
		{"Iuran anggota", finance.KindIncome, "1000000", "600000", "60", "400000"},
		{"Rapat", finance.KindExpense, "1000000", "150000", "15", "850000"},
	}

	require.Len(suite.T(), realization.Rows, len(expected))
	for i, e := range expected {
		row := realization.Rows[i]
		assert.Equal(suite.T(), e.name, row.PlanName)
		assert.Equal(suite.T(), e.kind, row.Kind, e.name)
		assert.Equal(suite.T(), e.planned, row.PlannedAmount.String(), e.name)
		assert.Equal(suite.T(), e.realized, row.TotalRealized.String(), e.name)
		assert.Equal(suite.T(), e.percent, row.PercentRealized.String(), e.name)
		assert.Equal(suite.T(), e.remaining, row.Remaining.String(), e.name)
		assert.Nil(suite.T(), row.Error, e.name)
	}

	assert.Equal(suite.T(), "2200000", realization.TotalPlanned.String())
	assert.Equal(suite.T(), "800000", realization.TotalRealized.String())
	assert.Equal(suite.T(), "1400000", realization.TotalRemaining.String())
}

func (suite *TestSuiteStandard) TestReportsBalanceSheet() {
	suite.createReportFixture()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/balance-sheet", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BalanceSheetReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	b := response.Data

	assert.Equal(suite.T(), "370000", b.Cash.String())
	assert.Equal(suite.T(), "370000", b.TotalAssets.String())
	assert.Equal(suite.T(), "600000", b.TotalIncome.String())
	assert.Equal(suite.T(), "230000", b.TotalExpense.String())

	require.Len(suite.T(), b.Income, 1)
	assert.Equal(suite.T(), "Iuran", b.Income[0].Name)

	names := make([]string, 0, len(b.Expense))
	for _, line := range b.Expense {
		names = append(names, line.Name)
	}
	assert.Equal(suite.T(), []string{"ATK", "Konsumsi", finance.OtherCategoryName}, names)
}

func (suite *TestSuiteStandard) TestReportsFiles() {
	suite.createReportFixture()

	tests := []struct {
		path        string
		format      string
		contentType string
		magic       string
		filename    string
	}{
		{"summary", "xlsx", report.XLSXContentType, "PK", "ringkasan_2024-01-01_2024-12-31.xlsx"},
		{"summary", "pdf", report.PDFContentType, "%PDF", "ringkasan_2024-01-01_2024-12-31.pdf"},
		{"cash-book", "xlsx", report.XLSXContentType, "PK", "buku-kas-umum_2024-01-01_2024-12-31.xlsx"},
		{"cash-book", "pdf", report.PDFContentType, "%PDF", "buku-kas-umum_2024-01-01_2024-12-31.pdf"},
		{"realization", "xlsx", report.XLSXContentType, "PK", "realisasi-anggaran_2024-01-01_2024-12-31.xlsx"},
		{"realization", "pdf", report.PDFContentType, "%PDF", "realisasi-anggaran_2024-01-01_2024-12-31.pdf"},
		{"balance-sheet", "xlsx", report.XLSXContentType, "PK", "neraca_2024-01-01_2024-12-31.xlsx"},
		{"balance-sheet", "pdf", report.PDFContentType, "%PDF", "neraca_2024-01-01_2024-12-31.pdf"},
		{"plans", "xlsx", report.XLSXContentType, "PK", "rencana-kegiatan_2024-01-01_2024-12-31.xlsx"},
		{"plans", "pdf", report.PDFContentType, "%PDF", "rencana-kegiatan_2024-01-01_2024-12-31.pdf"},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s %s", tt.path, tt.format), func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s?format=%s", tt.path, tt.format), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			assert.Equal(t, tt.contentType, r.Header().Get("Content-Type"))
			assert.Equal(t, fmt.Sprintf("attachment; filename=%q", tt.filename), r.Header().Get("Content-Disposition"))
			assert.True(t, len(r.Body.Bytes()) > len(tt.magic))
			assert.Equal(t, tt.magic, string(r.Body.Bytes()[:len(tt.magic)]))
		})
	}
}

func (suite *TestSuiteStandard) TestReportsInvalid() {
	suite.createReportFixture()

	tests := []struct {
		name   string
		query  string
		status int
		err    string
	}{
		{"Format", "format=docx", http.StatusBadRequest, "the format must be one of"},
		{"Month too high", "year=2024&month=13", http.StatusBadRequest, finance.ErrInvalidMonth.Error()},
		{"Negative month", "year=2024&month=-1", http.StatusBadRequest, finance.ErrInvalidMonth.Error()},
		{"Date range", "startDate=2024-03-01&endDate=2024-02-01", http.StatusBadRequest, finance.ErrInvalidDateRange.Error()},
		{"Broken date", "startDate=2024-02-30", http.StatusBadRequest, ""},
		{"Budget year not a UUID", "budgetYear=TA-2024", http.StatusBadRequest, ""},
		{"Budget year not found", "budgetYear=" + uuid.NewString(), http.StatusNotFound, "budget year"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/reports/summary?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				assert.Contains(t, decodeReportError(t, &r), tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestReportsPlans() {
	f := suite.createReportFixture()

	tests := []struct {
		name     string
		query    string
		plans    []string
		start    string
		end      string
		planned  string
		income   string
		expense  string
		balance  string
		category bool
	}{
		{"Budget year", "", []string{"Iuran anggota", "Rapat", "Alat tulis"}, "2024-01-01", "2024-12-31", "2200000", "1000000", "1200000", "-200000", false},
		{"Month", "month=2", []string{"Rapat", "Alat tulis"}, "2024-02-01", "2024-02-29", "1200000", "0", "1200000", "-1200000", false},
		{"Category", "category=" + f.food.ID.String(), []string{"Rapat"}, "2024-01-01", "2024-12-31", "1000000", "0", "1000000", "-1000000", true},
		{"Category and month", fmt.Sprintf("category=%s&month=1", f.food.ID), []string{}, "2024-01-01", "2024-01-31", "0", "0", "0", "0", true},
		{"Explicit budget year", "budgetYear=" + f.budgetYear.ID.String(), []string{"Iuran anggota", "Rapat", "Alat tulis"}, "2024-01-01", "2024-12-31", "2200000", "1000000", "1200000", "-200000", false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/reports/plans?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PlanReportResponse
			test.DecodeResponse(t, &r, &response)
			p := response.Data

			names := make([]string, 0, len(p.Rows))
			for _, row := range p.Rows {
				names = append(names, row.PlanName)
			}
			assert.Equal(t, tt.plans, names)

			assert.Equal(t, f.budgetYear.ID, *p.BudgetYearID)
			assert.Equal(t, tt.start, p.Period.Start.String())
			assert.Equal(t, tt.end, p.Period.End.String())
			assert.Equal(t, tt.planned, p.TotalPlanned.String())
			assert.Equal(t, tt.income, p.TotalPlannedIncome.String())
			assert.Equal(t, tt.expense, p.TotalPlannedExpense.String())
			assert.Equal(t, tt.balance, p.PlannedBalance.String())

			if tt.category {
				require.NotNil(t, p.CategoryID)
				assert.Equal(t, f.food.ID, *p.CategoryID)
			} else {
				assert.Nil(t, p.CategoryID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestReportsPlansRow() {
	f := suite.createReportFixture()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/plans?month=2&category="+f.food.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PlanReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data.Rows, 1)

	row := response.Data.Rows[0]
	assert.Equal(suite.T(), "Rapat", row.PlanName)
	assert.Equal(suite.T(), f.food.ID, row.CategoryID)
	assert.Equal(suite.T(), "Konsumsi", row.CategoryName)
	assert.Equal(suite.T(), finance.KindExpense, row.Kind)
	assert.Equal(suite.T(), "2024-02-10", row.StartDate.String())
	assert.Equal(suite.T(), "2024-02-11", row.EndDate.String())
	assert.Equal(suite.T(), "4 paket × @ Rp250.000", row.Breakdown)
	assert.Equal(suite.T(), "1000000", row.PlannedAmount.String())
}

func (suite *TestSuiteStandard) TestReportsPlansWithoutBudgetYear() {
	createTestPlan(suite.T(), v1.PlanEditable{})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/plans", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), decodeReportError(suite.T(), &r), "a budget year must be selected")
}

func (suite *TestSuiteStandard) TestReportsPlansInvalid() {
	suite.createReportFixture()

	tests := []struct {
		name   string
		query  string
		status int
		err    string
	}{
		{"Format", "format=docx", http.StatusBadRequest, "the format must be one of"},
		{"Month too high", "month=13", http.StatusBadRequest, finance.ErrInvalidMonth.Error()},
		{"Negative month", "month=-1", http.StatusBadRequest, finance.ErrInvalidMonth.Error()},
		{"Category not a UUID", "category=konsumsi", http.StatusBadRequest, ""},
		{"Category not found", "category=" + uuid.NewString(), http.StatusNotFound, "category"},
		{"Budget year not found", "budgetYear=" + uuid.NewString(), http.StatusNotFound, "budget year"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/reports/plans?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				assert.Contains(t, decodeReportError(t, &r), tt.err)
			}
		})
	}
}
