package v1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/models"
	"github.com/sikuang/backend/internal/types"
	sk_uuid "github.com/sikuang/backend/internal/uuid"
)

// Output formats for reports
const (
	formatJSON = "json"
	formatXLSX = "xlsx"
	formatPDF  = "pdf"
)

type ReportQuery struct {
	BudgetYearID sk_uuid.UUID `form:"budgetYear"` // ID of the budget year. Defaults to the active budget year
	Year         int          `form:"year"`       // Year of the period
	Month        int          `form:"month"`      // Month of the period, 1 to 12. 0 selects the full year
	StartDate    types.Date   `form:"startDate"`  // First day of an explicit period. Takes precedence over year and month
	EndDate      types.Date   `form:"endDate"`    // Last day of an explicit period. Takes precedence over year and month
	Format       string       `form:"format"`     // Output format: json, xlsx or pdf
}

// dateRange resolves the period of the report. Without an explicit
// period or a year, the period of the budget year is used. A month
// without a year is a month of the year the budget year starts in.
func (q ReportQuery) dateRange(budgetYear *models.BudgetYear) (finance.DateRange, error) {
	explicit := !q.StartDate.IsZero() && !q.EndDate.IsZero()
	if !explicit && q.Year == 0 && budgetYear != nil {
		if q.Month == 0 {
			return finance.DateRange{Start: budgetYear.StartDate, End: budgetYear.EndDate}, nil
		}
		q.Year = budgetYear.StartDate.Year()
	}

	return finance.ResolveDateRange(q.Year, q.Month, q.StartDate, q.EndDate)
}

// ReportMeta describes what a report covers.
type ReportMeta struct {
	BudgetYearID *uuid.UUID        `json:"budgetYearId" example:"d3c4b1a8-1c0e-4c41-9b2a-6a1e1c4d8f7e"` // Budget year of the plans. null if there is none
	Period       finance.DateRange `json:"period"`                                                      // Period of the transactions
}

func newReportMeta(snapshot models.Snapshot) ReportMeta {
	m := ReportMeta{Period: snapshot.Range}
	if snapshot.BudgetYear != nil {
		id := snapshot.BudgetYear.ID
		m.BudgetYearID = &id
	}
	return m
}

type SummaryReport struct {
	ReportMeta
	finance.Summary
}

type SummaryReportResponse struct {
	Data *SummaryReport `json:"data"` // The summary
}

type CashBookEntry struct {
	TransactionID  uuid.UUID       `json:"transactionId" example:"7f1e2f3a-4b5c-4d6e-8f90-a1b2c3d4e5f6"`
	Date           types.Date      `json:"date" example:"2024-03-01"`
	Description    string          `json:"description" example:"Snack rapat koordinasi"`
	PlanID         *uuid.UUID      `json:"planId" example:"0c3e9ab6-3f0d-4c38-a0e2-6b6f7f4f0d1c"`
	PlanName       string          `json:"planName" example:"Rapat koordinasi"`
	Type           finance.Kind    `json:"type" example:"expense"`
	Breakdown      string          `json:"breakdown" example:"5 paket × @ Rp50.000"`
	Income         decimal.Decimal `json:"income" example:"0"`
	Expense        decimal.Decimal `json:"expense" example:"250000"`
	RunningBalance decimal.Decimal `json:"runningBalance" example:"750000"` // Balance after this transaction
}

type CashBookReport struct {
	ReportMeta
	Entries      []CashBookEntry `json:"entries"`
	TotalIncome  decimal.Decimal `json:"totalIncome" example:"1000000"`
	TotalExpense decimal.Decimal `json:"totalExpense" example:"250000"`
	FinalBalance decimal.Decimal `json:"finalBalance" example:"750000"`
}

func newCashBookReport(snapshot models.Snapshot, ledger finance.Ledger) CashBookReport {
	r := CashBookReport{
		ReportMeta:   newReportMeta(snapshot),
		Entries:      make([]CashBookEntry, 0, len(ledger.Entries)),
		TotalIncome:  ledger.TotalIncome,
		TotalExpense: ledger.TotalExpense,
		FinalBalance: ledger.FinalBalance,
	}

	for _, e := range ledger.Entries {
		r.Entries = append(r.Entries, CashBookEntry{
			TransactionID:  e.Transaction.ID,
			Date:           e.Transaction.Date,
			Description:    e.Transaction.Description,
			PlanID:         e.Transaction.PlanID,
			PlanName:       e.Transaction.PlanName,
			Type:           e.Transaction.Type,
			Breakdown:      finance.FormatBreakdown(e.Transaction.Ekuivalen),
			Income:         e.Income,
			Expense:        e.Expense,
			RunningBalance: e.RunningBalance,
		})
	}

	return r
}

type CashBookReportResponse struct {
	Data *CashBookReport `json:"data"` // The cash book
}

type RealizationRow struct {
	PlanID        uuid.UUID       `json:"planId" example:"0c3e9ab6-3f0d-4c38-a0e2-6b6f7f4f0d1c"`
	PlanName      string          `json:"planName" example:"Rapat koordinasi"`
	Kind          finance.Kind    `json:"kind" example:"expense"`
	Breakdown     string          `json:"breakdown" example:"5 paket × @ Rp200.000"`
	PlannedAmount decimal.Decimal `json:"plannedAmount" example:"1000000"`
	finance.Realization
	Error *string `json:"error" example:"the planned amount must not be negative"` // Set if the realization could not be computed
}

type RealizationReport struct {
	ReportMeta
	Rows           []RealizationRow `json:"rows"`
	TotalPlanned   decimal.Decimal  `json:"totalPlanned" example:"1000000"`
	TotalRealized  decimal.Decimal  `json:"totalRealized" example:"250000"`
	TotalRemaining decimal.Decimal  `json:"totalRemaining" example:"750000"`
}

func newRealizationReport(snapshot models.Snapshot, report finance.RealizationReport) RealizationReport {
	r := RealizationReport{
		ReportMeta:     newReportMeta(snapshot),
		Rows:           make([]RealizationRow, 0, len(report.Rows)),
		TotalPlanned:   report.TotalPlanned,
		TotalRealized:  report.TotalRealized,
		TotalRemaining: report.TotalRemaining,
	}

	for _, row := range report.Rows {
		rr := RealizationRow{
			PlanID:        row.Plan.ID,
			PlanName:      row.Plan.Name,
			Kind:          row.Plan.Kind,
			Breakdown:     finance.FormatBreakdown(row.Plan.Ekuivalen),
			PlannedAmount: row.Plan.PlannedAmount,
			Realization:   row.Realization,
		}

		if row.Err != nil {
			s := row.Err.Error()
			rr.Error = &s
		}

		r.Rows = append(r.Rows, rr)
	}

	return r
}

type RealizationReportResponse struct {
	Data *RealizationReport `json:"data"` // The realization report
}

type BalanceSheetReport struct {
	ReportMeta
	finance.BalanceSheet
}

type BalanceSheetReportResponse struct {
	Data *BalanceSheetReport `json:"data"` // The balance sheet
}

type PlanReportQuery struct {
	BudgetYearID sk_uuid.UUID `form:"budgetYear"` // ID of the budget year. Defaults to the active budget year
	CategoryID   sk_uuid.UUID `form:"category"`   // ID of the category. Empty for all categories
	Month        int          `form:"month"`      // Month the plans start in, 1 to 12. 0 selects all plans
	Format       string       `form:"format"`     // Output format: json, xlsx or pdf
}

// filter returns the filter for the plans of the budget year and the
// period they start in. The month is one of the year the budget year
// starts in.
func (q PlanReportQuery) filter(budgetYear models.BudgetYear) (models.PlanFilter, finance.DateRange, error) {
	f := models.PlanFilter{
		BudgetYearID: budgetYear.ID,
		CategoryID:   q.CategoryID.UUID,
	}

	if q.Month == 0 {
		return f, finance.DateRange{Start: budgetYear.StartDate, End: budgetYear.EndDate}, nil
	}

	r, err := finance.ResolveDateRange(budgetYear.StartDate.Year(), q.Month, types.Date{}, types.Date{})
	if err != nil {
		return models.PlanFilter{}, finance.DateRange{}, err
	}
	f.Starting = &r

	return f, r, nil
}

type PlanReportRow struct {
	PlanID        uuid.UUID       `json:"planId" example:"0c3e9ab6-3f0d-4c38-a0e2-6b6f7f4f0d1c"`
	PlanName      string          `json:"planName" example:"Rapat koordinasi"`
	CategoryID    uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	CategoryName  string          `json:"categoryName" example:"Konsumsi"`
	Kind          finance.Kind    `json:"kind" example:"expense"`
	StartDate     types.Date      `json:"startDate" example:"2024-03-01"`
	EndDate       types.Date      `json:"endDate" example:"2024-03-02"`
	Breakdown     string          `json:"breakdown" example:"5 paket × @ Rp200.000"`
	PlannedAmount decimal.Decimal `json:"plannedAmount" example:"1000000"`
}

type PlanReport struct {
	ReportMeta
	CategoryID          *uuid.UUID      `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // Category of the plans. null for all categories
	Rows                []PlanReportRow `json:"rows"`
	TotalPlanned        decimal.Decimal `json:"totalPlanned" example:"2500000"`
	TotalPlannedIncome  decimal.Decimal `json:"totalPlannedIncome" example:"1500000"`
	TotalPlannedExpense decimal.Decimal `json:"totalPlannedExpense" example:"1000000"`
	PlannedBalance      decimal.Decimal `json:"plannedBalance" example:"500000"` // Planned income minus planned expense
}

func newPlanReport(filter models.PlanFilter, period finance.DateRange, list finance.PlanList) PlanReport {
	budgetYearID := filter.BudgetYearID

	r := PlanReport{
		ReportMeta:          ReportMeta{BudgetYearID: &budgetYearID, Period: period},
		Rows:                make([]PlanReportRow, 0, len(list.Plans)),
		TotalPlanned:        list.TotalPlanned,
		TotalPlannedIncome:  list.TotalPlannedIncome,
		TotalPlannedExpense: list.TotalPlannedExpense,
		PlannedBalance:      list.PlannedBalance,
	}

	if filter.CategoryID != uuid.Nil {
		id := filter.CategoryID
		r.CategoryID = &id
	}

	for _, p := range list.Plans {
		r.Rows = append(r.Rows, PlanReportRow{
			PlanID:        p.ID,
			PlanName:      p.Name,
			CategoryID:    p.CategoryID,
			CategoryName:  p.CategoryName,
			Kind:          p.Kind,
			StartDate:     p.StartDate,
			EndDate:       p.EndDate,
			Breakdown:     finance.FormatBreakdown(p.Ekuivalen),
			PlannedAmount: p.PlannedAmount,
		})
	}

	return r
}

type PlanReportResponse struct {
	Data *PlanReport `json:"data"` // The plan list
}
