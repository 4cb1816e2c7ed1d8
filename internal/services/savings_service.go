package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "baletrack/internal/errors"
	"baletrack/internal/listing"
	"baletrack/internal/models"
	"baletrack/internal/period"
	"baletrack/internal/stats"
)

var savingsSortColumns = listing.Base.With(listing.Columns{
	"amount":       "amount",
	"savings_type": "savings_type",
	"savingsType":  "savings_type",
	"savings_date": "savings_date",
	"savingsDate":  "savings_date",
})

// savingsService handles savings business logic.
type savingsService struct {
	store
	clock period.Clock
}

// NewSavingsService creates a new SavingsServicer.
func NewSavingsService(db *gorm.DB, clock period.Clock, opts ...Option) SavingsServicer {
	return &savingsService{store: newStore(db, opts), clock: clock}
}

func validateSavingsType(t models.SavingsType) error {
	if !t.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "savings type must be one of personal, business, target")
	}
	return nil
}

func validateTargetAmount(a *float64) error {
	if a != nil && !(*a > 0) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than 0")
	}
	return nil
}

func savingsAt(s *models.Savings) time.Time { return s.SavingsDate }

func savingsRecords(entries []models.Savings) []stats.Record {
	records := make([]stats.Record, len(entries))
	for i, e := range entries {
		records[i] = stats.Record{Category: string(e.SavingsType), Amount: e.Amount, At: e.SavingsDate}
	}
	return records
}

func trimmedName(name *string) *string {
	if name == nil {
		return nil
	}
	n := strings.TrimSpace(*name)
	if n == "" {
		return nil
	}
	return &n
}

// CreateSavings records a contribution. Target fields are kept regardless of
// savings type.
func (s *savingsService) CreateSavings(ctx context.Context, userID string, in CreateSavingsInput) (*models.Savings, error) {
	if err := validateSavingsType(in.SavingsType); err != nil {
		return nil, err
	}
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}
	if err := validateTargetAmount(in.TargetAmount); err != nil {
		return nil, err
	}

	date := in.SavingsDate
	if date.IsZero() {
		date = s.clock.Now()
	}

	entry := &models.Savings{
		UserID:       userID,
		SavingsType:  in.SavingsType,
		Amount:       in.Amount,
		TargetName:   trimmedName(in.TargetName),
		TargetAmount: in.TargetAmount,
		SavingsDate:  date.UTC(),
	}

	db, cancel := s.conn(ctx)
	defer cancel()
	if err := db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entry, nil
}

// ListSavings returns the user's savings, optionally filtered by type.
func (s *savingsService) ListSavings(ctx context.Context, userID string, req listing.Request) ([]models.Savings, error) {
	order, err := req.OrderClause(savingsSortColumns)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	db, cancel := s.conn(ctx)
	defer cancel()

	q := db.Where("user_id = ?", userID)
	if req.Type != "" {
		if err := validateSavingsType(models.SavingsType(req.Type)); err != nil {
			return nil, err
		}
		q = q.Where("savings_type = ?", req.Type)
	}

	var entries []models.Savings
	if err := q.Scopes(listing.Order(order)).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}

// GetSavings returns a savings entry by ID if it belongs to the user.
func (s *savingsService) GetSavings(ctx context.Context, userID, savingsID string) (*models.Savings, error) {
	db, cancel := s.conn(ctx)
	defer cancel()

	var entry models.Savings
	if err := findOwned(db, &entry, userID, savingsID, apperrors.ErrSavingsNotFound); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateSavings applies the fields present in in. An empty update is rejected.
func (s *savingsService) UpdateSavings(ctx context.Context, userID, savingsID string, in UpdateSavingsInput) (*models.Savings, error) {
	updates := make(map[string]interface{})
	if in.SavingsType != nil {
		if err := validateSavingsType(*in.SavingsType); err != nil {
			return nil, err
		}
		updates["savings_type"] = *in.SavingsType
	}
	if in.Amount != nil {
		if err := validateAmount(*in.Amount); err != nil {
			return nil, err
		}
		updates["amount"] = *in.Amount
	}
	if in.TargetName != nil {
		updates["target_name"] = trimmedName(in.TargetName)
	}
	if in.ClearTargetAmount {
		updates["target_amount"] = nil
	} else if in.TargetAmount != nil {
		if err := validateTargetAmount(in.TargetAmount); err != nil {
			return nil, err
		}
		updates["target_amount"] = *in.TargetAmount
	}
	if in.SavingsDate != nil {
		if in.SavingsDate.IsZero() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "savings date must be a valid date")
		}
		updates["savings_date"] = in.SavingsDate.UTC()
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrNoFieldsToSet
	}

	db, cancel := s.conn(ctx)
	defer cancel()

	if err := updateOwned(db, &models.Savings{}, userID, savingsID, updates, apperrors.ErrSavingsNotFound); err != nil {
		return nil, err
	}

	var entry models.Savings
	if err := findOwned(db, &entry, userID, savingsID, apperrors.ErrSavingsNotFound); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteSavings soft-deletes a savings entry.
func (s *savingsService) DeleteSavings(ctx context.Context, userID, savingsID string) error {
	db, cancel := s.conn(ctx)
	defer cancel()
	return deleteOwned(db, &models.Savings{}, userID, savingsID, apperrors.ErrSavingsNotFound)
}

// GetSavingsStats summarises contributions over the period by savings type.
func (s *savingsService) GetSavingsStats(ctx context.Context, userID string, p period.Params) (*SavingsStats, error) {
	filter := period.Resolve(p, s.clock.Now())

	db, cancel := s.conn(ctx)
	defer cancel()

	current, err := loadInPeriod(db, userID, "savings_date", filter, savingsAt)
	if err != nil {
		return nil, err
	}

	records := savingsRecords(current)
	summary := stats.Summarize(records)
	summary.Period = filter

	if prev, ok := filter.Previous(); ok {
		previous, err := loadInPeriod(db, userID, "savings_date", prev, savingsAt)
		if err != nil {
			return nil, err
		}
		summary.PeriodComparison = stats.Compare(records, prev, savingsRecords(previous))
	}

	bd := summary.CategoryBreakdown
	return &SavingsStats{
		Summary: summary,
		ByType: SavingsTypeTotals{
			Personal: bd[string(models.SavingsTypePersonal)].Total,
			Business: bd[string(models.SavingsTypeBusiness)].Total,
			Target:   bd[string(models.SavingsTypeTarget)].Total,
			Overall:  summary.Total,
		},
	}, nil
}

type goalAccumulator struct {
	saved  decimal.Decimal
	target decimal.Decimal
	count  int
}

// GetSavingsGoals groups named-target contributions and reports progress
// towards each, in the order the goals were first funded.
func (s *savingsService) GetSavingsGoals(ctx context.Context, userID string) ([]SavingsGoal, error) {
	db, cancel := s.conn(ctx)
	defer cancel()

	var entries []models.Savings
	err := db.Where("user_id = ? AND target_name IS NOT NULL AND target_name <> ''", userID).
		Order("savings_date ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	goals := make(map[string]*goalAccumulator)
	order := make([]string, 0)
	for _, e := range entries {
		name := *e.TargetName
		g, ok := goals[name]
		if !ok {
			g = &goalAccumulator{saved: decimal.Zero, target: decimal.Zero}
			goals[name] = g
			order = append(order, name)
		}
		g.saved = g.saved.Add(decimal.NewFromFloat(e.Amount))
		g.count++
		if e.TargetAmount != nil {
			if t := decimal.NewFromFloat(*e.TargetAmount); t.GreaterThan(g.target) {
				g.target = t
			}
		}
	}

	result := make([]SavingsGoal, 0, len(order))
	for _, name := range order {
		g := goals[name]
		remaining := g.target.Sub(g.saved)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		result = append(result, SavingsGoal{
			Name:          name,
			Saved:         stats.Money(g.saved),
			Target:        stats.Money(g.target),
			Remaining:     stats.Money(remaining),
			Progress:      stats.Percent(g.saved, g.target),
			Contributions: g.count,
		})
	}
	return result, nil
}
