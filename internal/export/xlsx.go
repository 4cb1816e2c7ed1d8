package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"baletrack/internal/services"
)

const (
	summarySheet  = "Summary"
	expensesSheet = "Expenses"
)

// WriteXLSX writes a workbook with a summary sheet and an expense breakdown
// sheet.
func WriteXLSX(w io.Writer, r *services.FinancialReport) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(expensesSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	rows := [][]interface{}{
		{"BaleTrack Financial Report"},
		{"Period", PeriodLabel(r.Period)},
		{"Generated", r.GeneratedAt.Format("2006-01-02 15:04 MST")},
		{},
		{"Metric", "Value", "Unit"},
	}
	for _, row := range summaryRows(r) {
		rows = append(rows, []interface{}{row.label, row.value, row.unit})
	}
	if err := setRows(f, summarySheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", bold); err != nil {
		return fmt.Errorf("styling summary: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, "A5", "C5", bold); err != nil {
		return fmt.Errorf("styling summary: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return fmt.Errorf("sizing summary: %w", err)
	}

	expenseRows := [][]interface{}{{"Category", "Total", "Count", "Share (%)"}}
	for _, name := range r.ExpenseCategoryOrder {
		c := r.ExpenseBreakdown[name]
		expenseRows = append(expenseRows, []interface{}{name, c.Total, c.Count, c.Percentage})
	}
	if r.HighestExpenseCategory != "" {
		expenseRows = append(expenseRows, []interface{}{}, []interface{}{"Highest category", r.HighestExpenseCategory})
	}
	if err := setRows(f, expensesSheet, expenseRows); err != nil {
		return err
	}
	if err := f.SetCellStyle(expensesSheet, "A1", "D1", bold); err != nil {
		return fmt.Errorf("styling expenses: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("resolving cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
