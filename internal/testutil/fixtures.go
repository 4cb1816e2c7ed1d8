package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"baletrack/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBale records a bale transaction of the given kind.
func CreateTestBale(t *testing.T, db *gorm.DB, userID string, txType models.BaleTransactionType, baleType models.BaleType, quantity, price float64) *models.Bale {
	t.Helper()

	bale := &models.Bale{
		UserID:          userID,
		BaleType:        baleType,
		TransactionType: txType,
		Quantity:        quantity,
		PricePerUnit:    price,
		Notes:           gofakeit.Sentence(4),
	}
	if err := db.Create(bale).Error; err != nil {
		t.Fatalf("failed to create test bale: %v", err)
	}
	return bale
}

// CreateTestExpense records an expense created at the given instant.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, category models.ExpenseCategory, amount float64, at time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Base:        models.Base{CreatedAt: at.UTC()},
		UserID:      userID,
		Category:    category,
		Description: gofakeit.Sentence(6),
		Amount:      amount,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestSavings records a savings contribution dated at the given instant.
func CreateTestSavings(t *testing.T, db *gorm.DB, userID string, savingsType models.SavingsType, amount float64, date time.Time) *models.Savings {
	t.Helper()

	savings := &models.Savings{
		UserID:      userID,
		SavingsType: savingsType,
		Amount:      amount,
		SavingsDate: date.UTC(),
	}
	if err := db.Create(savings).Error; err != nil {
		t.Fatalf("failed to create test savings: %v", err)
	}
	return savings
}

// CreateTestGoalSavings records a contribution towards a named target.
func CreateTestGoalSavings(t *testing.T, db *gorm.DB, userID, name string, amount, target float64) *models.Savings {
	t.Helper()

	savings := &models.Savings{
		UserID:       userID,
		SavingsType:  models.SavingsTypeTarget,
		Amount:       amount,
		TargetName:   &name,
		TargetAmount: &target,
		SavingsDate:  time.Now().UTC(),
	}
	if err := db.Create(savings).Error; err != nil {
		t.Fatalf("failed to create test goal savings: %v", err)
	}
	return savings
}
