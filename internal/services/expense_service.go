package services

import (
	"context"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	apperrors "baletrack/internal/errors"
	"baletrack/internal/listing"
	"baletrack/internal/models"
	"baletrack/internal/period"
	"baletrack/internal/stats"
)

var expenseSortColumns = listing.Base.With(listing.Columns{
	"amount":   "amount",
	"category": "category",
})

// expenseService handles expense business logic.
type expenseService struct {
	store
	clock period.Clock
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, clock period.Clock, opts ...Option) ExpenseServicer {
	return &expenseService{store: newStore(db, opts), clock: clock}
}

func validateAmount(a float64) error {
	if !(a > 0) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than 0")
	}
	return nil
}

func validateExpenseCategory(c models.ExpenseCategory) error {
	if !c.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput,
			"category must be one of transport, utilities, salaries, supplies, other")
	}
	return nil
}

func validateDescription(d string) error {
	if utf8.RuneCountInString(d) > models.ExpenseDescriptionMaxLen {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description must be at most 500 characters")
	}
	return nil
}

func expenseAt(e *models.Expense) time.Time { return e.CreatedAt }

func expenseRecords(expenses []models.Expense) []stats.Record {
	records := make([]stats.Record, len(expenses))
	for i, e := range expenses {
		records[i] = stats.Record{Category: string(e.Category), Amount: e.Amount, At: e.CreatedAt}
	}
	return records
}

// CreateExpense records an operating expense for the user.
func (s *expenseService) CreateExpense(ctx context.Context, userID string, in CreateExpenseInput) (*models.Expense, error) {
	if err := validateExpenseCategory(in.Category); err != nil {
		return nil, err
	}
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}
	if err := validateDescription(in.Description); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:      userID,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
	}

	db, cancel := s.conn(ctx)
	defer cancel()
	if err := db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// ListExpenses returns the user's expenses, optionally filtered by category.
func (s *expenseService) ListExpenses(ctx context.Context, userID string, req listing.Request) ([]models.Expense, error) {
	order, err := req.OrderClause(expenseSortColumns)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	db, cancel := s.conn(ctx)
	defer cancel()

	q := db.Where("user_id = ?", userID)
	if req.Type != "" {
		if err := validateExpenseCategory(models.ExpenseCategory(req.Type)); err != nil {
			return nil, err
		}
		q = q.Where("category = ?", req.Type)
	}

	var expenses []models.Expense
	if err := q.Scopes(listing.Order(order)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetExpense returns an expense by ID if it belongs to the user.
func (s *expenseService) GetExpense(ctx context.Context, userID, expenseID string) (*models.Expense, error) {
	db, cancel := s.conn(ctx)
	defer cancel()

	var expense models.Expense
	if err := findOwned(db, &expense, userID, expenseID, apperrors.ErrExpenseNotFound); err != nil {
		return nil, err
	}
	return &expense, nil
}

// UpdateExpense applies the fields present in in. An empty update is rejected.
func (s *expenseService) UpdateExpense(ctx context.Context, userID, expenseID string, in UpdateExpenseInput) (*models.Expense, error) {
	updates := make(map[string]interface{})
	if in.Category != nil {
		if err := validateExpenseCategory(*in.Category); err != nil {
			return nil, err
		}
		updates["category"] = *in.Category
	}
	if in.Description != nil {
		if err := validateDescription(*in.Description); err != nil {
			return nil, err
		}
		updates["description"] = *in.Description
	}
	if in.Amount != nil {
		if err := validateAmount(*in.Amount); err != nil {
			return nil, err
		}
		updates["amount"] = *in.Amount
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrNoFieldsToSet
	}

	db, cancel := s.conn(ctx)
	defer cancel()

	if err := updateOwned(db, &models.Expense{}, userID, expenseID, updates, apperrors.ErrExpenseNotFound); err != nil {
		return nil, err
	}

	var expense models.Expense
	if err := findOwned(db, &expense, userID, expenseID, apperrors.ErrExpenseNotFound); err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense soft-deletes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	db, cancel := s.conn(ctx)
	defer cancel()
	return deleteOwned(db, &models.Expense{}, userID, expenseID, apperrors.ErrExpenseNotFound)
}

// GetExpenseStats summarises the user's expenses over the requested period
// and, for month and quarter periods, compares against the one before.
func (s *expenseService) GetExpenseStats(ctx context.Context, userID string, p period.Params) (*stats.Summary, error) {
	filter := period.Resolve(p, s.clock.Now())

	db, cancel := s.conn(ctx)
	defer cancel()

	current, err := loadInPeriod(db, userID, "created_at", filter, expenseAt)
	if err != nil {
		return nil, err
	}

	records := expenseRecords(current)
	summary := stats.Summarize(records)
	summary.Period = filter

	if prev, ok := filter.Previous(); ok {
		previous, err := loadInPeriod(db, userID, "created_at", prev, expenseAt)
		if err != nil {
			return nil, err
		}
		summary.PeriodComparison = stats.Compare(records, prev, expenseRecords(previous))
	}
	return &summary, nil
}
