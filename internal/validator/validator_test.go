package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type sample struct {
	BaleType        string   `binding:"omitempty,bale_type"`
	TransactionType string   `binding:"omitempty,bale_transaction_type"`
	Category        string   `binding:"omitempty,expense_category"`
	SavingsType     string   `binding:"omitempty,savings_type"`
	SortOrder       string   `binding:"omitempty,sort_order"`
	Quantity        *float64 `binding:"omitempty,gt=0"`
}

func TestRegister(t *testing.T) {
	Register()

	zero := 0.0
	tests := []struct {
		name  string
		in    sample
		valid bool
	}{
		{"empty", sample{}, true},
		{"valid_values", sample{BaleType: "wool", TransactionType: "sale", Category: "salaries", SavingsType: "target", SortOrder: "asc"}, true},
		{"bad_bale_type", sample{BaleType: "silk"}, false},
		{"bad_transaction_type", sample{TransactionType: "lease"}, false},
		{"bad_category", sample{Category: "food"}, false},
		{"bad_savings_type", sample{SavingsType: "pension"}, false},
		{"bad_sort_order", sample{SortOrder: "up"}, false},
		{"zero_quantity_pointer", sample{Quantity: &zero}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.in)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
