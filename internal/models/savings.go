package models

import (
	"time"

	"gorm.io/gorm"
)

// SavingsType is the pot a savings contribution goes into.
type SavingsType string

const (
	SavingsTypePersonal SavingsType = "personal"
	SavingsTypeBusiness SavingsType = "business"
	SavingsTypeTarget   SavingsType = "target"
)

// Valid reports whether t is a known savings type.
func (t SavingsType) Valid() bool {
	switch t {
	case SavingsTypePersonal, SavingsTypeBusiness, SavingsTypeTarget:
		return true
	}
	return false
}

// Savings is a single contribution. TargetName and TargetAmount are kept for
// every type, not only target savings. Its reporting period is derived from
// SavingsDate.
type Savings struct {
	Base
	UserID       string      `gorm:"type:uuid;not null;index" json:"user_id"`
	SavingsType  SavingsType `gorm:"not null;index" json:"savings_type"`
	Amount       float64     `gorm:"not null" json:"amount"`
	TargetName   *string     `json:"target_name,omitempty"`
	TargetAmount *float64    `json:"target_amount,omitempty"`
	SavingsDate  time.Time   `gorm:"not null;index" json:"savings_date"`
}

// TableName keeps the singular noun out of the schema.
func (Savings) TableName() string { return "savings" }

// BeforeCreate assigns the id and defaults the entry date to now.
func (s *Savings) BeforeCreate(tx *gorm.DB) error {
	if err := s.Base.BeforeCreate(tx); err != nil {
		return err
	}
	if s.SavingsDate.IsZero() {
		s.SavingsDate = time.Now().UTC()
	}
	return nil
}
