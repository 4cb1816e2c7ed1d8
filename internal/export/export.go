// Package export renders financial reports as downloadable spreadsheets and
// PDFs.
package export

import (
	"fmt"
	"io"
	"strings"

	"baletrack/internal/period"
	"baletrack/internal/services"
)

// Format is a supported export file type.
type Format string

const (
	XLSX Format = "xlsx"
	PDF  Format = "pdf"
)

// ParseFormat accepts "xlsx" or "pdf" in any case.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case XLSX, PDF:
		return f, true
	}
	return "", false
}

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	if f == PDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Filename names the download, e.g. baletrack-report-2024-q1.pdf.
func Filename(r *services.FinancialReport, f Format) string {
	slug := strings.ToLower(strings.ReplaceAll(PeriodLabel(r.Period), " ", "-"))
	return fmt.Sprintf("baletrack-report-%s.%s", slug, f)
}

// Write renders r in format f.
func Write(w io.Writer, r *services.FinancialReport, f Format) error {
	switch f {
	case XLSX:
		return WriteXLSX(w, r)
	case PDF:
		return WritePDF(w, r)
	}
	return fmt.Errorf("unsupported export format %q", f)
}

// PeriodLabel renders a period filter for humans.
func PeriodLabel(f period.Filter) string {
	switch {
	case f.Year == nil:
		return "All time"
	case f.Month != nil:
		return fmt.Sprintf("%04d-%02d", *f.Year, *f.Month)
	case f.Quarter != nil:
		return fmt.Sprintf("%04d Q%d", *f.Year, *f.Quarter)
	}
	return fmt.Sprintf("%04d", *f.Year)
}

type summaryRow struct {
	label string
	value float64
	unit  string
}

// summaryRows is the shared line layout of both formats.
func summaryRows(r *services.FinancialReport) []summaryRow {
	return []summaryRow{
		{"Sales", r.Sales, ""},
		{"Bale purchases", r.Purchases, ""},
		{"Operating expenses", r.Expenses, ""},
		{"Total costs", r.TotalCosts, ""},
		{"Profit", r.Profit, ""},
		{"Profit margin", r.ProfitMargin, "%"},
		{"Expense ratio", r.ExpenseRatio, "%"},
		{"Quantity sold", r.QuantitySold, "bales"},
		{"Quantity purchased", r.QuantityPurchased, "bales"},
	}
}
