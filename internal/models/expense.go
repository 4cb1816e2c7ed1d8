package models

// ExpenseCategory classifies an operating expense.
type ExpenseCategory string

const (
	ExpenseCategoryTransport ExpenseCategory = "transport"
	ExpenseCategoryUtilities ExpenseCategory = "utilities"
	ExpenseCategorySalaries  ExpenseCategory = "salaries"
	ExpenseCategorySupplies  ExpenseCategory = "supplies"
	ExpenseCategoryOther     ExpenseCategory = "other"
)

// Valid reports whether c is a known expense category.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseCategoryTransport, ExpenseCategoryUtilities, ExpenseCategorySalaries,
		ExpenseCategorySupplies, ExpenseCategoryOther:
		return true
	}
	return false
}

// ExpenseDescriptionMaxLen caps the free-text description.
const ExpenseDescriptionMaxLen = 500

// Expense is an operating cost. Its reporting period is derived from
// CreatedAt.
type Expense struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Category    ExpenseCategory `gorm:"not null;index" json:"category"`
	Description string          `gorm:"size:500" json:"description"`
	Amount      float64         `gorm:"not null" json:"amount"`
}
