package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"baletrack/internal/period"
	"baletrack/internal/services"
	"baletrack/internal/stats"
)

func intPtr(v int) *int { return &v }

func sampleReport() *services.FinancialReport {
	return &services.FinancialReport{
		Period:       period.Filter{Selector: period.CustomQuarter, Year: intPtr(2024), Quarter: intPtr(1)},
		Sales:        10000,
		Purchases:    6000,
		Expenses:     1500,
		TotalCosts:   7500,
		Profit:       2500,
		ProfitMargin: 25,
		ExpenseRatio: 75,
		QuantitySold: 20,
		ExpenseBreakdown: map[string]stats.CategoryTotal{
			"transport": {Total: 1000, Count: 2, Percentage: 66.7},
			"utilities": {Total: 500, Count: 1, Percentage: 33.3},
		},
		ExpenseCategoryOrder:   []string{"transport", "utilities"},
		HighestExpenseCategory: "transport",
		GeneratedAt:            time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"xlsx", XLSX, true},
		{" PDF ", PDF, true},
		{"csv", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		name   string
		filter period.Filter
		want   string
	}{
		{"all", period.Filter{Selector: period.All}, "All time"},
		{"month", period.Filter{Year: intPtr(2024), Month: intPtr(3)}, "2024-03"},
		{"quarter", period.Filter{Year: intPtr(2024), Quarter: intPtr(2)}, "2024 Q2"},
		{"year", period.Filter{Year: intPtr(2023)}, "2023"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeriodLabel(tt.filter); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(sampleReport(), PDF); got != "baletrack-report-2024-q1.pdf" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected workbook bytes")
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	if got, _ := f.GetCellValue(summarySheet, "B2"); got != "2024 Q1" {
		t.Errorf("expected period label, got %q", got)
	}
	label, _ := f.GetCellValue(summarySheet, "A10")
	profit, _ := f.GetCellValue(summarySheet, "B10")
	if label != "Profit" || profit != "2500" {
		t.Errorf("expected Profit 2500 in row 10, got %q %q", label, profit)
	}

	rows, err := f.GetRows(expensesSheet)
	if err != nil {
		t.Fatalf("failed to read expenses: %v", err)
	}
	if len(rows) < 3 || rows[1][0] != "transport" || rows[2][0] != "utilities" {
		t.Errorf("unexpected expense rows %v", rows)
	}
}

func TestWritePDF(t *testing.T) {
	t.Run("with_expenses", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WritePDF(&buf, sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Error("expected PDF header")
		}
	})

	t.Run("empty_report", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, &services.FinancialReport{}, PDF); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.Len() == 0 {
			t.Error("expected PDF bytes")
		}
	})

	t.Run("unsupported_format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, sampleReport(), Format("csv")); err == nil {
			t.Error("expected error for unsupported format")
		}
	})
}
