package export

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"baletrack/internal/services"
)

// WritePDF writes a single-page A4 report.
func WritePDF(w io.Writer, r *services.FinancialReport) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("BaleTrack Financial Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BaleTrack Financial Report")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", PeriodLabel(r.Period)))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", r.GeneratedAt.Format("2006-01-02 15:04 MST")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Profit: %.2f", r.Profit))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(70, 7, "Metric")
	pdf.Cell(50, 7, "Value")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range summaryRows(r) {
		pdf.Cell(70, 7, row.label)
		pdf.Cell(50, 7, formatValue(row))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Expense Breakdown")
	pdf.Ln(8)

	if len(r.ExpenseCategoryOrder) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 7, "No expenses recorded in this period.")
		pdf.Ln(7)
	} else {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(60, 7, "Category")
		pdf.Cell(40, 7, "Amount")
		pdf.Cell(30, 7, "Count")
		pdf.Cell(30, 7, "%")
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 11)
		for _, name := range r.ExpenseCategoryOrder {
			c := r.ExpenseBreakdown[name]
			pdf.Cell(60, 7, name)
			pdf.Cell(40, 7, fmt.Sprintf("%.2f", c.Total))
			pdf.Cell(30, 7, fmt.Sprintf("%d", c.Count))
			pdf.Cell(30, 7, fmt.Sprintf("%.1f%%", c.Percentage))
			pdf.Ln(7)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func formatValue(row summaryRow) string {
	switch row.unit {
	case "%":
		return fmt.Sprintf("%.1f%%", row.value)
	case "":
		return fmt.Sprintf("%.2f", row.value)
	}
	return fmt.Sprintf("%g %s", row.value, row.unit)
}
