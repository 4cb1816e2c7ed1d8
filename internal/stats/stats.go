// Package stats aggregates monetary records into dashboard summaries.
//
// Sums are carried in decimal and only converted to float64 on output:
// money rounded to 2 places, percentages to 1.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"baletrack/internal/period"
)

var hundred = decimal.NewFromInt(100)

// Record is the minimal view of an expense or savings row.
type Record struct {
	Category string
	Amount   float64
	At       time.Time
}

// CategoryTotal is one row of a category breakdown.
type CategoryTotal struct {
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Comparison relates a period's total to the one before it.
type Comparison struct {
	Available     bool          `json:"available"`
	Previous      period.Filter `json:"previous_period"`
	PreviousTotal float64       `json:"previous_total"`
	PreviousCount int           `json:"previous_count"`
	ChangePercent *float64      `json:"change_percent,omitempty"`
}

// Summary is the aggregate over one period.
type Summary struct {
	Total             float64                  `json:"total"`
	Count             int                      `json:"count"`
	Average           float64                  `json:"average"`
	CategoryBreakdown map[string]CategoryTotal `json:"category_breakdown"`
	CategoryOrder     []string                 `json:"category_order"`
	HighestCategory   string                   `json:"highest_category,omitempty"`
	Period            period.Filter            `json:"period"`
	PeriodComparison  *Comparison              `json:"period_comparison,omitempty"`
}

type bucket struct {
	total decimal.Decimal
	count int
}

// Summarize aggregates records. Categories keep first-seen order, and ties
// for highest category go to the one seen first, so callers should pass
// records in a stable order.
func Summarize(records []Record) Summary {
	total := decimal.Zero
	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for _, r := range records {
		amt := decimal.NewFromFloat(r.Amount)
		total = total.Add(amt)
		b, ok := buckets[r.Category]
		if !ok {
			b = &bucket{total: decimal.Zero}
			buckets[r.Category] = b
			order = append(order, r.Category)
		}
		b.total = b.total.Add(amt)
		b.count++
	}

	s := Summary{
		Total:             Money(total),
		Count:             len(records),
		CategoryBreakdown: make(map[string]CategoryTotal, len(buckets)),
		CategoryOrder:     order,
	}
	if len(records) > 0 {
		s.Average = Money(total.Div(decimal.NewFromInt(int64(len(records)))))
	}

	var highest *bucket
	for _, name := range order {
		b := buckets[name]
		s.CategoryBreakdown[name] = CategoryTotal{
			Total:      Money(b.total),
			Count:      b.count,
			Percentage: Percent(b.total, total),
		}
		if highest == nil || b.total.GreaterThan(highest.total) {
			highest = b
			s.HighestCategory = name
		}
	}
	return s
}

// Compare builds the period comparison of the current records against the
// records of the previous window. Both totals stay unrounded until the change
// percentage is computed. It is unavailable when the previous window is empty.
func Compare(current []Record, previous period.Filter, prevRecords []Record) *Comparison {
	prevTotal := Sum(prevRecords)
	c := &Comparison{
		Previous:      previous,
		PreviousTotal: Money(prevTotal),
		PreviousCount: len(prevRecords),
	}
	if len(prevRecords) == 0 || prevTotal.IsZero() {
		return c
	}
	change := Sum(current).Sub(prevTotal).Div(prevTotal.Abs()).Mul(hundred)
	pct := change.Round(1).InexactFloat64()
	c.Available = true
	c.ChangePercent = &pct
	return c
}

// Sum adds record amounts.
func Sum(records []Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(decimal.NewFromFloat(r.Amount))
	}
	return total
}

// Money rounds to two decimal places.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Percent returns part/whole*100 rounded to one place, or 0 when whole is 0.
func Percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(1).InexactFloat64()
}
