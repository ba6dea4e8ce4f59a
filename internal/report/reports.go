package report

import (
	"github.com/shopspring/decimal"
	"github.com/sikuang/backend/internal/finance"
)

// Report titles
const (
	TitleCashBook     = "Buku Kas Umum"
	TitleRealization  = "Laporan Realisasi Anggaran"
	TitleSummary      = "Ringkasan Keuangan"
	TitleBalanceSheet = "Neraca Keuangan"
	TitlePlans        = "Laporan Rencana Kegiatan"
)

// CashBook lays out the general cash book.
func CashBook(ledger finance.Ledger, h Header) Table {
	t := Table{
		Header: h,
		Columns: []Column{
			{Title: "No", Width: 1},
			{Title: "Tanggal", Width: 3},
			{Title: "Uraian", Width: 6},
			{Title: "Ekuivalen", Width: 5},
			{Title: "Penerimaan", Width: 3, Numeric: true},
			{Title: "Pengeluaran", Width: 3, Numeric: true},
			{Title: "Saldo", Width: 3, Numeric: true},
		},
		Rows:       make([]Row, 0, len(ledger.Entries)),
		Signatures: true,
	}

	for i, e := range ledger.Entries {
		t.Rows = append(t.Rows, Row{
			i + 1,
			FormatDate(e.Transaction.Date),
			e.Transaction.Description,
			finance.FormatBreakdown(e.Transaction.Ekuivalen),
			e.Income,
			e.Expense,
			e.RunningBalance,
		})
	}

	t.Footer = []Row{
		{"", "", "Jumlah", "", ledger.TotalIncome, ledger.TotalExpense, ledger.FinalBalance},
	}

	return t
}

// Realization lays out the realization report. Plans whose realization
// could not be computed show the error instead of the figures.
func Realization(r finance.RealizationReport, h Header) Table {
	t := Table{
		Header: h,
		Columns: []Column{
			{Title: "No", Width: 1},
			{Title: "Rencana Kegiatan", Width: 6},
			{Title: "Ekuivalen", Width: 5},
			{Title: "Anggaran", Width: 3, Numeric: true},
			{Title: "Realisasi", Width: 3, Numeric: true},
			{Title: "%", Width: 2, Numeric: true},
			{Title: "Sisa", Width: 3, Numeric: true},
		},
		Rows:       make([]Row, 0, len(r.Rows)),
		Signatures: true,
	}

	for i, row := range r.Rows {
		if row.Err != nil {
			t.Rows = append(t.Rows, Row{i + 1, row.Plan.Name, row.Err.Error(), row.Plan.PlannedAmount, "", "", ""})
			continue
		}

		t.Rows = append(t.Rows, Row{
			i + 1,
			row.Plan.Name,
			finance.FormatBreakdown(row.Plan.Ekuivalen),
			row.Plan.PlannedAmount,
			row.TotalRealized,
			percent(row.PercentRealized),
			row.Remaining,
		})
	}

	totalPercent := decimal.Zero
	if !r.TotalPlanned.IsZero() {
		totalPercent = r.TotalRealized.Div(r.TotalPlanned).Mul(decimal.NewFromInt(100)).Round(2)
	}

	t.Footer = []Row{
		{"", "Jumlah", "", r.TotalPlanned, r.TotalRealized, percent(totalPercent), r.TotalRemaining},
	}

	return t
}

// Summary lays out the period summary by category.
func Summary(s finance.Summary, h Header) Table {
	t := Table{
		Header: h,
		Columns: []Column{
			{Title: "Kategori", Width: 6},
			{Title: "Jenis", Width: 2},
			{Title: "Anggaran", Width: 3, Numeric: true},
			{Title: "Realisasi", Width: 3, Numeric: true},
		},
		Rows: make([]Row, 0, len(s.ByCategory)),
	}

	for _, c := range s.ByCategory {
		t.Rows = append(t.Rows, Row{c.CategoryName, kindName(c.Kind), c.PlannedTotal, c.RealizedTotal})
	}

	t.Footer = []Row{
		{"Total Pendapatan", "", s.TotalPlannedIncome, s.TotalRealizedIncome},
		{"Total Belanja", "", s.TotalPlannedExpense, s.TotalRealizedExpense},
		{"Saldo", "", "", s.NetBalance},
	}

	return t
}

// BalanceSheet lays out the balance sheet.
func BalanceSheet(b finance.BalanceSheet, h Header) Table {
	t := Table{
		Header: h,
		Columns: []Column{
			{Title: "Uraian", Width: 8},
			{Title: "Jumlah", Width: 3, Numeric: true},
		},
		Signatures: true,
	}

	t.Rows = append(t.Rows,
		Row{"ASET", ""},
		Row{"Kas dan Setara Kas", b.Cash},
		Row{"Total Aset", b.TotalAssets},
		Row{"PENDAPATAN", ""},
	)
	for _, l := range b.Income {
		t.Rows = append(t.Rows, Row{l.Name, l.Amount})
	}
	t.Rows = append(t.Rows,
		Row{"Total Pendapatan", b.TotalIncome},
		Row{"BELANJA", ""},
	)
	for _, l := range b.Expense {
		t.Rows = append(t.Rows, Row{l.Name, l.Amount})
	}
	t.Rows = append(t.Rows, Row{"Total Belanja", b.TotalExpense})

	t.Footer = []Row{
		{"Saldo Akhir", b.Cash},
	}

	return t
}

// Plans lays out the list of plans with their planned totals.
func Plans(l finance.PlanList, h Header) Table {
	t := Table{
		Header: h,
		Columns: []Column{
			{Title: "No", Width: 1},
			{Title: "Nama Kegiatan", Width: 5},
			{Title: "Kategori", Width: 3},
			{Title: "Tanggal Mulai", Width: 3},
			{Title: "Tanggal Selesai", Width: 3},
			{Title: "Rincian", Width: 5},
			{Title: "Total", Width: 3, Numeric: true},
		},
		Rows: make([]Row, 0, len(l.Plans)),
	}

	for i, p := range l.Plans {
		t.Rows = append(t.Rows, Row{
			i + 1,
			p.Name,
			p.CategoryName,
			FormatDate(p.StartDate),
			FormatDate(p.EndDate),
			finance.FormatBreakdown(p.Ekuivalen),
			p.PlannedAmount,
		})
	}

	t.Footer = []Row{
		{"", "Total Rencana", "", "", "", "", l.TotalPlanned},
		{"", "Total Pemasukan", "", "", "", "", l.TotalPlannedIncome},
		{"", "Total Pengeluaran", "", "", "", "", l.TotalPlannedExpense},
		{"", "Saldo", "", "", "", "", l.PlannedBalance},
	}

	return t
}

func percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

func kindName(k finance.Kind) string {
	if k == finance.KindIncome {
		return "Pendapatan"
	}
	return "Belanja"
}
