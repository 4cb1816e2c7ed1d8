package models

// BaleType is the commodity a bale holds.
type BaleType string

const (
	BaleTypeCotton BaleType = "cotton"
	BaleTypeJute   BaleType = "jute"
	BaleTypeWool   BaleType = "wool"
)

// BaleTypes lists every bale type in display order.
var BaleTypes = []BaleType{BaleTypeCotton, BaleTypeJute, BaleTypeWool}

// Valid reports whether t is a known bale type.
func (t BaleType) Valid() bool {
	switch t {
	case BaleTypeCotton, BaleTypeJute, BaleTypeWool:
		return true
	}
	return false
}

// BaleTransactionType distinguishes bought from sold bales.
type BaleTransactionType string

const (
	BaleTransactionPurchase BaleTransactionType = "purchase"
	BaleTransactionSale     BaleTransactionType = "sale"
)

// Valid reports whether t is a known transaction type.
func (t BaleTransactionType) Valid() bool {
	return t == BaleTransactionPurchase || t == BaleTransactionSale
}

// Bale is a single purchase or sale of baled commodity.
type Bale struct {
	Base
	UserID          string              `gorm:"type:uuid;not null;index" json:"user_id"`
	BaleType        BaleType            `gorm:"not null;default:cotton" json:"bale_type"`
	TransactionType BaleTransactionType `gorm:"not null;index" json:"transaction_type"`
	Quantity        float64             `gorm:"not null" json:"quantity"`
	PricePerUnit    float64             `gorm:"not null" json:"price_per_unit"`
	Notes           string              `json:"notes"`
}

// TotalValue is quantity times unit price.
func (b *Bale) TotalValue() float64 {
	return b.Quantity * b.PricePerUnit
}
