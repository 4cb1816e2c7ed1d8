package services

import (
	"context"

	"github.com/shopspring/decimal"

	"baletrack/internal/period"
	"baletrack/internal/stats"
)

// reportService derives the profit and loss view from bale and expense data.
type reportService struct {
	bales    BaleServicer
	expenses ExpenseServicer
	clock    period.Clock
}

// NewReportService creates a new ReportServicer.
func NewReportService(bales BaleServicer, expenses ExpenseServicer, clock period.Clock) ReportServicer {
	return &reportService{bales: bales, expenses: expenses, clock: clock}
}

// GetFinancialReport computes, for the period:
//
//	total costs   = purchases + expenses
//	profit        = sales - total costs
//	profit margin = profit / sales * 100
//	expense ratio = total costs / sales * 100
//
// Both ratios are 0 when there were no sales.
func (s *reportService) GetFinancialReport(ctx context.Context, userID string, p period.Params) (*FinancialReport, error) {
	baleStats, err := s.bales.GetBaleStats(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	expenseStats, err := s.expenses.GetExpenseStats(ctx, userID, p)
	if err != nil {
		return nil, err
	}

	sales := decimal.NewFromFloat(baleStats.TotalSales)
	purchases := decimal.NewFromFloat(baleStats.TotalPurchases)
	expenses := decimal.NewFromFloat(expenseStats.Total)
	totalCosts := purchases.Add(expenses)
	profit := sales.Sub(totalCosts)

	return &FinancialReport{
		Period:                 baleStats.Period,
		Sales:                  stats.Money(sales),
		Purchases:              stats.Money(purchases),
		Expenses:               stats.Money(expenses),
		TotalCosts:             stats.Money(totalCosts),
		Profit:                 stats.Money(profit),
		ProfitMargin:           stats.Percent(profit, sales),
		ExpenseRatio:           stats.Percent(totalCosts, sales),
		QuantitySold:           baleStats.QuantitySold,
		QuantityPurchased:      baleStats.QuantityPurchased,
		ExpenseBreakdown:       expenseStats.CategoryBreakdown,
		ExpenseCategoryOrder:   expenseStats.CategoryOrder,
		HighestExpenseCategory: expenseStats.HighestCategory,
		GeneratedAt:            s.clock.Now().UTC(),
	}, nil
}
