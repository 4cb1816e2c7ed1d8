// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"baletrack/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bale_type", validateBaleType)
		_ = v.RegisterValidation("bale_transaction_type", validateBaleTransactionType)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("savings_type", validateSavingsType)
		_ = v.RegisterValidation("sort_order", validateSortOrder)
	}
}

func validateBaleType(fl validator.FieldLevel) bool {
	return models.BaleType(fl.Field().String()).Valid()
}

func validateBaleTransactionType(fl validator.FieldLevel) bool {
	return models.BaleTransactionType(fl.Field().String()).Valid()
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.ExpenseCategory(fl.Field().String()).Valid()
}

func validateSavingsType(fl validator.FieldLevel) bool {
	return models.SavingsType(fl.Field().String()).Valid()
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "asc", "desc":
		return true
	}
	return false
}
