package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the worksheet that holds the report.
const SheetName = "Laporan"

// XLSXContentType is the MIME type of Excel workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type xlsxStyles struct {
	title  int
	head   int
	text   int
	amount int
	footer int
}

// WriteXLSX renders the table as an Excel workbook.
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName("Sheet1", SheetName)
	if err != nil {
		return err
	}

	styles, err := newXLSXStyles(f)
	if err != nil {
		return err
	}

	last, err := excelize.ColumnNumberToName(len(t.Columns))
	if err != nil {
		return err
	}

	// Header lines, merged across the full width
	row := 1
	for _, line := range []string{t.Header.AppName, t.Header.Title, t.Header.Period} {
		if line == "" {
			continue
		}

		err = setRow(f, row, styles.title, line)
		if err == nil {
			err = f.MergeCell(SheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", last, row))
		}
		if err != nil {
			return err
		}
		row++
	}
	row++

	for i, c := range t.Columns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		err = f.SetColWidth(SheetName, name, name, c.Width*5)
		if err != nil {
			return err
		}
	}

	titles := make([]any, 0, len(t.Columns))
	for _, c := range t.Columns {
		titles = append(titles, c.Title)
	}
	err = setRow(f, row, styles.head, titles...)
	if err != nil {
		return err
	}
	row++

	for _, r := range t.Rows {
		err = writeXLSXRow(f, row, r, styles.text, styles.amount)
		if err != nil {
			return err
		}
		row++
	}

	for _, r := range t.Footer {
		err = writeXLSXRow(f, row, r, styles.footer, styles.footer)
		if err != nil {
			return err
		}
		row++
	}

	if t.Signatures {
		row++
		left, right := t.Header.signatures()
		leftCol, rightCol := signatureColumns(len(t.Columns))

		lines := [][2]string{
			{left.Place, right.Place},
			{left.Role, right.Role},
			{"", ""},
			{"", ""},
			{left.Name, right.Name},
		}
		for _, l := range lines {
			if err := f.SetCellValue(SheetName, fmt.Sprintf("%s%d", leftCol, row), l[0]); err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, fmt.Sprintf("%s%d", rightCol, row), l[1]); err != nil {
				return err
			}
			row++
		}
	}

	return f.Write(w)
}

// signatureColumns returns the columns of the leader and the treasurer
// signature. Narrow tables sign in the first two columns.
func signatureColumns(columns int) (string, string) {
	left := 2
	if columns < 4 {
		left = 1
	}
	right := max(columns-1, left+1)

	l, _ := excelize.ColumnNumberToName(left)
	r, _ := excelize.ColumnNumberToName(right)
	return l, r
}

func newXLSXStyles(f *excelize.File) (xlsxStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	definitions := []*excelize.Style{
		{Font: &excelize.Font{Bold: true, Size: 12}, Alignment: &excelize.Alignment{Horizontal: "center"}},
		{Font: &excelize.Font{Bold: true}, Border: border, Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true}},
		{Border: border, Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}},
		{Border: border, NumFmt: 3},
		{Font: &excelize.Font{Bold: true}, Border: border, NumFmt: 3},
	}

	ids := make([]int, 0, len(definitions))
	for _, d := range definitions {
		id, err := f.NewStyle(d)
		if err != nil {
			return xlsxStyles{}, err
		}
		ids = append(ids, id)
	}

	return xlsxStyles{title: ids[0], head: ids[1], text: ids[2], amount: ids[3], footer: ids[4]}, nil
}

// setRow writes the values into the row starting at column A and styles them.
func setRow(f *excelize.File, row, style int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}

		err = f.SetCellValue(SheetName, cell, v)
		if err != nil {
			return err
		}

		err = f.SetCellStyle(SheetName, cell, cell, style)
		if err != nil {
			return err
		}
	}

	return nil
}

// writeXLSXRow writes amounts as numbers so that they can be used in formulas.
func writeXLSXRow(f *excelize.File, row int, r Row, textStyle, amountStyle int) error {
	for i, v := range r {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}

		style := textStyle
		if d, ok := v.(decimal.Decimal); ok {
			err = f.SetCellValue(SheetName, cell, d.InexactFloat64())
			style = amountStyle
		} else {
			err = f.SetCellValue(SheetName, cell, cellText(v))
		}
		if err != nil {
			return err
		}

		err = f.SetCellStyle(SheetName, cell, cell, style)
		if err != nil {
			return err
		}
	}

	return nil
}
