package v1

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/httputil"
	"github.com/sikuang/backend/internal/models"
	"github.com/sikuang/backend/internal/report"
	"github.com/sikuang/backend/internal/types"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", httputil.OptionsGet)
	r.GET("/summary", GetSummaryReport)

	r.OPTIONS("/cash-book", httputil.OptionsGet)
	r.GET("/cash-book", GetCashBookReport)

	r.OPTIONS("/realization", httputil.OptionsGet)
	r.GET("/realization", GetRealizationReport)

	r.OPTIONS("/balance-sheet", httputil.OptionsGet)
	r.GET("/balance-sheet", GetBalanceSheetReport)

	r.OPTIONS("/plans", httputil.OptionsGet)
	r.GET("/plans", GetPlanReport)
}

// checkFormat defaults the format to json and rejects unknown formats.
func checkFormat(format *string) error {
	switch *format {
	case "":
		*format = formatJSON
	case formatJSON, formatXLSX, formatPDF:
	default:
		return errFormatInvalid
	}
	return nil
}

// selectBudgetYear loads the budget year with the ID or, for uuid.Nil,
// the active budget year. It returns nil if there is no active budget year.
func selectBudgetYear(id uuid.UUID) (*models.BudgetYear, error) {
	if id != uuid.Nil {
		var b models.BudgetYear
		err := models.DB.First(&b, id).Error
		if err != nil {
			return nil, err
		}
		return &b, nil
	}

	b, err := models.ActiveBudgetYear(models.DB)
	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// loadSnapshot binds the report query, resolves the period and loads all
// data for the report. On failure, the error response is already written.
func loadSnapshot(c *gin.Context) (ReportQuery, models.Snapshot, bool) {
	var query ReportQuery
	if err := c.Bind(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return ReportQuery{}, models.Snapshot{}, false
	}

	if err := checkFormat(&query.Format); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return ReportQuery{}, models.Snapshot{}, false
	}

	budgetYear, err := selectBudgetYear(query.BudgetYearID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return ReportQuery{}, models.Snapshot{}, false
	}

	dateRange, err := query.dateRange(budgetYear)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return ReportQuery{}, models.Snapshot{}, false
	}

	budgetYearID := uuid.Nil
	if budgetYear != nil {
		budgetYearID = budgetYear.ID
	}

	snapshot, err := models.LoadSnapshot(models.DB, budgetYearID, dateRange)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return ReportQuery{}, models.Snapshot{}, false
	}

	return query, snapshot, true
}

// render writes the report in the requested format. For xlsx and pdf,
// the table is laid out with the header built from the settings.
func render(c *gin.Context, format string, period finance.DateRange, response any, title, name string, layout func(report.Header) report.Table) {
	if format == formatJSON {
		c.JSON(http.StatusOK, response)
		return
	}

	settings, err := models.Settings(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	letterhead := report.Letterhead{
		AppName:       settings[models.SettingAppName],
		CityName:      settings[models.SettingCityName],
		TreasurerName: settings[models.SettingTreasurerName],
		LeaderName:    settings[models.SettingLeaderName],
	}

	table := layout(report.NewHeader(letterhead, title, period, types.DateOf(time.Now())))

	write, contentType := report.WriteXLSX, report.XLSXContentType
	if format == formatPDF {
		write, contentType = report.WritePDF, report.PDFContentType
	}

	var buf bytes.Buffer
	err = write(io.Writer(&buf), table)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("%s_%s_%s.%s", name, period.Start, period.End, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// @Summary		Summary
// @Description	Returns the planned and realized totals overall and by category. Plans are those of the budget year, transactions those in the period.
// @Tags			Reports
// @Produce		json
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce		application/pdf
// @Success		200			{object}	SummaryReportResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			budgetYear	query		string	false	"ID of the budget year. Defaults to the active budget year"
// @Param			year		query		int		false	"Year of the period"
// @Param			month		query		int		false	"Month of the period. 0 selects the full year"
// @Param			startDate	query		string	false	"First day of an explicit period"
// @Param			endDate		query		string	false	"Last day of an explicit period"
// @Param			format		query		string	false	"Output format"	Enums(json, xlsx, pdf)
// @Router			/v1/reports/summary [get]
func GetSummaryReport(c *gin.Context) {
	query, snapshot, ok := loadSnapshot(c)
	if !ok {
		return
	}

	summary := finance.Summarize(snapshot.Plans, snapshot.Transactions, snapshot.Categories)

	render(c, query.Format, snapshot.Range, SummaryReportResponse{Data: &SummaryReport{
		ReportMeta: newReportMeta(snapshot),
		Summary:    summary,
	}}, report.TitleSummary, "ringkasan", func(h report.Header) report.Table {
		return report.Summary(summary, h)
	})
}

// @Summary		Cash book
// @Description	Returns the general cash book with the running balance for the transactions in the period
// @Tags			Reports
// @Produce		json
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce		application/pdf
// @Success		200			{object}	CashBookReportResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			budgetYear	query		string	false	"ID of the budget year. Defaults to the active budget year"
// @Param			year		query		int		false	"Year of the period"
// @Param			month		query		int		false	"Month of the period. 0 selects the full year"
// @Param			startDate	query		string	false	"First day of an explicit period"
// @Param			endDate		query		string	false	"Last day of an explicit period"
// @Param			format		query		string	false	"Output format"	Enums(json, xlsx, pdf)
// @Router			/v1/reports/cash-book [get]
func GetCashBookReport(c *gin.Context) {
	query, snapshot, ok := loadSnapshot(c)
	if !ok {
		return
	}

	ledger := finance.ComputeLedger(snapshot.Transactions)
	data := newCashBookReport(snapshot, ledger)

	render(c, query.Format, snapshot.Range, CashBookReportResponse{Data: &data}, report.TitleCashBook, "buku-kas-umum", func(h report.Header) report.Table {
		return report.CashBook(ledger, h)
	})
}

// @Summary		Realization
// @Description	Returns the realization of all plans of the budget year by the transactions in the period
// @Tags			Reports
// @Produce		json
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce		application/pdf
// @Success		200			{object}	RealizationReportResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			budgetYear	query		string	false	"ID of the budget year. Defaults to the active budget year"
// @Param			year		query		int		false	"Year of the period"
// @Param			month		query		int		false	"Month of the period. 0 selects the full year"
// @Param			startDate	query		string	false	"First day of an explicit period"
// @Param			endDate		query		string	false	"Last day of an explicit period"
// @Param			format		query		string	false	"Output format"	Enums(json, xlsx, pdf)
// @Router			/v1/reports/realization [get]
func GetRealizationReport(c *gin.Context) {
	query, snapshot, ok := loadSnapshot(c)
	if !ok {
		return
	}

	realization := finance.AggregateAll(snapshot.Plans, snapshot.Transactions)
	data := newRealizationReport(snapshot, realization)

	render(c, query.Format, snapshot.Range, RealizationReportResponse{Data: &data}, report.TitleRealization, "realisasi-anggaran", func(h report.Header) report.Table {
		return report.Realization(realization, h)
	})
}

// @Summary		Balance sheet
// @Description	Returns the balance sheet for the period: cash and the realized income and expense by category
// @Tags			Reports
// @Produce		json
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce		application/pdf
// @Success		200			{object}	BalanceSheetReportResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			budgetYear	query		string	false	"ID of the budget year. Defaults to the active budget year"
// @Param			year		query		int		false	"Year of the period"
// @Param			month		query		int		false	"Month of the period. 0 selects the full year"
// @Param			startDate	query		string	false	"First day of an explicit period"
// @Param			endDate		query		string	false	"Last day of an explicit period"
// @Param			format		query		string	false	"Output format"	Enums(json, xlsx, pdf)
// @Router			/v1/reports/balance-sheet [get]
func GetBalanceSheetReport(c *gin.Context) {
	query, snapshot, ok := loadSnapshot(c)
	if !ok {
		return
	}

	sheet := finance.Summarize(snapshot.Plans, snapshot.Transactions, snapshot.Categories).BalanceSheet()

	render(c, query.Format, snapshot.Range, BalanceSheetReportResponse{Data: &BalanceSheetReport{
		ReportMeta:   newReportMeta(snapshot),
		BalanceSheet: sheet,
	}}, report.TitleBalanceSheet, "neraca", func(h report.Header) report.Table {
		return report.BalanceSheet(sheet, h)
	})
}

// @Summary		Plans
// @Description	Returns the plans of the budget year with their planned totals. Plans can be filtered by category and by the month they start in.
// @Tags			Reports
// @Produce		json
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce		application/pdf
// @Success		200			{object}	PlanReportResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			budgetYear	query		string	false	"ID of the budget year. Defaults to the active budget year"
// @Param			category	query		string	false	"ID of the category"
// @Param			month		query		int		false	"Month the plans start in. 0 selects all plans"
// @Param			format		query		string	false	"Output format"	Enums(json, xlsx, pdf)
// @Router			/v1/reports/plans [get]
func GetPlanReport(c *gin.Context) {
	var query PlanReportQuery
	if err := c.Bind(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	if err := checkFormat(&query.Format); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	budgetYear, err := selectBudgetYear(query.BudgetYearID.UUID)
	if err == nil && budgetYear == nil {
		err = errBudgetYearRequired
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if query.CategoryID.UUID != uuid.Nil {
		err = models.DB.First(&models.Category{}, query.CategoryID.UUID).Error
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
	}

	filter, period, err := query.filter(*budgetYear)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	plans, err := models.FilterPlans(models.DB, filter)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	list := finance.ListPlans(plans)
	data := newPlanReport(filter, period, list)

	render(c, query.Format, period, PlanReportResponse{Data: &data}, report.TitlePlans, "rencana-kegiatan", func(h report.Header) report.Table {
		return report.Plans(list, h)
	})
}
