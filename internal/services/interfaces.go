package services

import (
	"context"
	"time"

	"baletrack/internal/listing"
	"baletrack/internal/models"
	"baletrack/internal/period"
	"baletrack/internal/stats"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// CreateBaleInput holds the fields of a new bale transaction. An empty
// BaleType defaults to cotton.
type CreateBaleInput struct {
	BaleType        models.BaleType
	TransactionType models.BaleTransactionType
	Quantity        float64
	PricePerUnit    float64
	Notes           string
}

// UpdateBaleInput holds a partial update; nil fields are left unchanged.
type UpdateBaleInput struct {
	BaleType        *models.BaleType
	TransactionType *models.BaleTransactionType
	Quantity        *float64
	PricePerUnit    *float64
	Notes           *string
}

// BaleFilter narrows a bale listing. Type filters on bale type.
type BaleFilter struct {
	listing.Request
	TransactionType string
}

// BaleStats summarises bale trading over a period.
type BaleStats struct {
	Period            period.Filter               `json:"period"`
	Count             int                         `json:"count"`
	TotalPurchases    float64                     `json:"total_purchases"`
	TotalSales        float64                     `json:"total_sales"`
	TotalRevenue      float64                     `json:"total_revenue"`
	QuantityPurchased float64                     `json:"quantity_purchased"`
	QuantitySold      float64                     `json:"quantity_sold"`
	Stock             map[models.BaleType]float64 `json:"stock"`
}

// BaleServicer defines the contract for bale transaction business logic.
type BaleServicer interface {
	CreateBale(ctx context.Context, userID string, in CreateBaleInput) (*models.Bale, error)
	ListBales(ctx context.Context, userID string, filter BaleFilter) ([]models.Bale, error)
	GetBale(ctx context.Context, userID, baleID string) (*models.Bale, error)
	UpdateBale(ctx context.Context, userID, baleID string, in UpdateBaleInput) (*models.Bale, error)
	DeleteBale(ctx context.Context, userID, baleID string) error
	GetBaleStats(ctx context.Context, userID string, p period.Params) (*BaleStats, error)
}

// CreateExpenseInput holds the fields of a new expense.
type CreateExpenseInput struct {
	Category    models.ExpenseCategory
	Description string
	Amount      float64
}

// UpdateExpenseInput holds a partial update; nil fields are left unchanged.
type UpdateExpenseInput struct {
	Category    *models.ExpenseCategory
	Description *string
	Amount      *float64
}

// ExpenseServicer defines the contract for expense business logic.
type ExpenseServicer interface {
	CreateExpense(ctx context.Context, userID string, in CreateExpenseInput) (*models.Expense, error)
	ListExpenses(ctx context.Context, userID string, req listing.Request) ([]models.Expense, error)
	GetExpense(ctx context.Context, userID, expenseID string) (*models.Expense, error)
	UpdateExpense(ctx context.Context, userID, expenseID string, in UpdateExpenseInput) (*models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
	GetExpenseStats(ctx context.Context, userID string, p period.Params) (*stats.Summary, error)
}

// CreateSavingsInput holds the fields of a new savings contribution. A zero
// SavingsDate defaults to now.
type CreateSavingsInput struct {
	SavingsType  models.SavingsType
	Amount       float64
	TargetName   *string
	TargetAmount *float64
	SavingsDate  time.Time
}

// UpdateSavingsInput holds a partial update; nil fields are left unchanged.
type UpdateSavingsInput struct {
	SavingsType  *models.SavingsType
	Amount       *float64
	TargetName   *string
	TargetAmount *float64
	SavingsDate  *time.Time
	// ClearTargetAmount sets target_amount to NULL; TargetAmount is ignored.
	ClearTargetAmount bool
}

// SavingsTypeTotals are per-type totals within a period.
type SavingsTypeTotals struct {
	Personal float64 `json:"personal"`
	Business float64 `json:"business"`
	Target   float64 `json:"target"`
	Overall  float64 `json:"overall"`
}

// SavingsStats is the period summary plus per-type totals.
type SavingsStats struct {
	stats.Summary
	ByType SavingsTypeTotals `json:"by_type"`
}

// SavingsGoal is the progress towards one named target.
type SavingsGoal struct {
	Name          string  `json:"name"`
	Saved         float64 `json:"saved"`
	Target        float64 `json:"target"`
	Remaining     float64 `json:"remaining"`
	Progress      float64 `json:"progress"`
	Contributions int     `json:"contributions"`
}

// SavingsServicer defines the contract for savings business logic.
type SavingsServicer interface {
	CreateSavings(ctx context.Context, userID string, in CreateSavingsInput) (*models.Savings, error)
	ListSavings(ctx context.Context, userID string, req listing.Request) ([]models.Savings, error)
	GetSavings(ctx context.Context, userID, savingsID string) (*models.Savings, error)
	UpdateSavings(ctx context.Context, userID, savingsID string, in UpdateSavingsInput) (*models.Savings, error)
	DeleteSavings(ctx context.Context, userID, savingsID string) error
	GetSavingsStats(ctx context.Context, userID string, p period.Params) (*SavingsStats, error)
	GetSavingsGoals(ctx context.Context, userID string) ([]SavingsGoal, error)
}

// FinancialReport is the profit and loss view of one period.
type FinancialReport struct {
	Period                 period.Filter                  `json:"period"`
	Sales                  float64                        `json:"sales"`
	Purchases              float64                        `json:"purchases"`
	Expenses               float64                        `json:"expenses"`
	TotalCosts             float64                        `json:"total_costs"`
	Profit                 float64                        `json:"profit"`
	ProfitMargin           float64                        `json:"profit_margin"`
	ExpenseRatio           float64                        `json:"expense_ratio"`
	QuantitySold           float64                        `json:"quantity_sold"`
	QuantityPurchased      float64                        `json:"quantity_purchased"`
	ExpenseBreakdown       map[string]stats.CategoryTotal `json:"expense_breakdown"`
	ExpenseCategoryOrder   []string                       `json:"expense_category_order"`
	HighestExpenseCategory string                         `json:"highest_expense_category,omitempty"`
	GeneratedAt            time.Time                      `json:"generated_at"`
}

// ReportServicer defines the contract for derived reports.
type ReportServicer interface {
	GetFinancialReport(ctx context.Context, userID string, p period.Params) (*FinancialReport, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
