package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "baletrack/internal/errors"
	"baletrack/internal/listing"
	"baletrack/internal/models"
	"baletrack/internal/period"
	"baletrack/internal/stats"
)

var baleSortColumns = listing.Base.With(listing.Columns{
	"quantity":         "quantity",
	"price_per_unit":   "price_per_unit",
	"pricePerUnit":     "price_per_unit",
	"bale_type":        "bale_type",
	"baleType":         "bale_type",
	"transaction_type": "transaction_type",
	"transactionType":  "transaction_type",
})

// baleService handles bale transaction business logic.
type baleService struct {
	store
	clock period.Clock
}

// NewBaleService creates a new BaleServicer.
func NewBaleService(db *gorm.DB, clock period.Clock, opts ...Option) BaleServicer {
	return &baleService{store: newStore(db, opts), clock: clock}
}

func validateQuantity(q float64) error {
	if !(q > 0) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be greater than 0")
	}
	return nil
}

func validatePrice(p float64) error {
	if !(p >= 0) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "price per unit must not be negative")
	}
	return nil
}

func validateBaleType(t models.BaleType) error {
	if !t.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "bale type must be one of cotton, jute, wool")
	}
	return nil
}

func validateBaleTransactionType(t models.BaleTransactionType) error {
	if !t.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction type must be purchase or sale")
	}
	return nil
}

// CreateBale records a purchase or sale for the user.
func (s *baleService) CreateBale(ctx context.Context, userID string, in CreateBaleInput) (*models.Bale, error) {
	if in.BaleType == "" {
		in.BaleType = models.BaleTypeCotton
	}
	if err := validateBaleType(in.BaleType); err != nil {
		return nil, err
	}
	if err := validateBaleTransactionType(in.TransactionType); err != nil {
		return nil, err
	}
	if err := validateQuantity(in.Quantity); err != nil {
		return nil, err
	}
	if err := validatePrice(in.PricePerUnit); err != nil {
		return nil, err
	}

	bale := &models.Bale{
		UserID:          userID,
		BaleType:        in.BaleType,
		TransactionType: in.TransactionType,
		Quantity:        in.Quantity,
		PricePerUnit:    in.PricePerUnit,
		Notes:           in.Notes,
	}

	db, cancel := s.conn(ctx)
	defer cancel()
	if err := db.Create(bale).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bale, nil
}

// ListBales returns the user's bales matching filter, newest first by default.
func (s *baleService) ListBales(ctx context.Context, userID string, filter BaleFilter) ([]models.Bale, error) {
	order, err := filter.OrderClause(baleSortColumns)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	db, cancel := s.conn(ctx)
	defer cancel()

	q := db.Where("user_id = ?", userID)
	if filter.Type != "" {
		if err := validateBaleType(models.BaleType(filter.Type)); err != nil {
			return nil, err
		}
		q = q.Where("bale_type = ?", filter.Type)
	}
	if filter.TransactionType != "" {
		if err := validateBaleTransactionType(models.BaleTransactionType(filter.TransactionType)); err != nil {
			return nil, err
		}
		q = q.Where("transaction_type = ?", filter.TransactionType)
	}

	var bales []models.Bale
	if err := q.Scopes(listing.Order(order)).Find(&bales).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bales, nil
}

// GetBale returns a bale by ID if it belongs to the user.
func (s *baleService) GetBale(ctx context.Context, userID, baleID string) (*models.Bale, error) {
	db, cancel := s.conn(ctx)
	defer cancel()

	var bale models.Bale
	if err := findOwned(db, &bale, userID, baleID, apperrors.ErrBaleNotFound); err != nil {
		return nil, err
	}
	return &bale, nil
}

// UpdateBale applies the fields present in in. An empty update is rejected.
func (s *baleService) UpdateBale(ctx context.Context, userID, baleID string, in UpdateBaleInput) (*models.Bale, error) {
	updates := make(map[string]interface{})
	if in.BaleType != nil {
		if err := validateBaleType(*in.BaleType); err != nil {
			return nil, err
		}
		updates["bale_type"] = *in.BaleType
	}
	if in.TransactionType != nil {
		if err := validateBaleTransactionType(*in.TransactionType); err != nil {
			return nil, err
		}
		updates["transaction_type"] = *in.TransactionType
	}
	if in.Quantity != nil {
		if err := validateQuantity(*in.Quantity); err != nil {
			return nil, err
		}
		updates["quantity"] = *in.Quantity
	}
	if in.PricePerUnit != nil {
		if err := validatePrice(*in.PricePerUnit); err != nil {
			return nil, err
		}
		updates["price_per_unit"] = *in.PricePerUnit
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrNoFieldsToSet
	}

	db, cancel := s.conn(ctx)
	defer cancel()

	if err := updateOwned(db, &models.Bale{}, userID, baleID, updates, apperrors.ErrBaleNotFound); err != nil {
		return nil, err
	}

	var bale models.Bale
	if err := findOwned(db, &bale, userID, baleID, apperrors.ErrBaleNotFound); err != nil {
		return nil, err
	}
	return &bale, nil
}

// DeleteBale soft-deletes a bale.
func (s *baleService) DeleteBale(ctx context.Context, userID, baleID string) error {
	db, cancel := s.conn(ctx)
	defer cancel()
	return deleteOwned(db, &models.Bale{}, userID, baleID, apperrors.ErrBaleNotFound)
}

// GetBaleStats totals purchases and sales for the period and derives stock
// on hand per bale type.
func (s *baleService) GetBaleStats(ctx context.Context, userID string, p period.Params) (*BaleStats, error) {
	filter := period.Resolve(p, s.clock.Now())

	db, cancel := s.conn(ctx)
	defer cancel()

	bales, err := loadInPeriod(db, userID, "created_at", filter, func(b *models.Bale) time.Time { return b.CreatedAt })
	if err != nil {
		return nil, err
	}

	purchases, sales := decimal.Zero, decimal.Zero
	qtyIn, qtyOut := decimal.Zero, decimal.Zero
	stock := make(map[models.BaleType]decimal.Decimal, len(models.BaleTypes))
	for _, t := range models.BaleTypes {
		stock[t] = decimal.Zero
	}

	for i := range bales {
		b := &bales[i]
		qty := decimal.NewFromFloat(b.Quantity)
		value := qty.Mul(decimal.NewFromFloat(b.PricePerUnit))
		switch b.TransactionType {
		case models.BaleTransactionPurchase:
			purchases = purchases.Add(value)
			qtyIn = qtyIn.Add(qty)
			stock[b.BaleType] = stock[b.BaleType].Add(qty)
		case models.BaleTransactionSale:
			sales = sales.Add(value)
			qtyOut = qtyOut.Add(qty)
			stock[b.BaleType] = stock[b.BaleType].Sub(qty)
		}
	}

	result := &BaleStats{
		Period:            filter,
		Count:             len(bales),
		TotalPurchases:    stats.Money(purchases),
		TotalSales:        stats.Money(sales),
		TotalRevenue:      stats.Money(sales.Sub(purchases)),
		QuantityPurchased: stats.Money(qtyIn),
		QuantitySold:      stats.Money(qtyOut),
		Stock:             make(map[models.BaleType]float64, len(stock)),
	}
	for t, q := range stock {
		result.Stock[t] = stats.Money(q)
	}
	return result, nil
}
