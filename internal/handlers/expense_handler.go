package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"baletrack/internal/listing"
	"baletrack/internal/models"
	"baletrack/internal/period"
	"baletrack/internal/services"
)

// ExpenseHandler handles expense requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateExpenseRequest represents the request payload for recording an expense.
type CreateExpenseRequest struct {
	Category    models.ExpenseCategory `json:"category" binding:"required,expense_category"`
	Description string                 `json:"description"`
	Amount      float64                `json:"amount" binding:"required,gt=0"`
}

// UpdateExpenseRequest represents a partial update; omitted fields are unchanged.
type UpdateExpenseRequest struct {
	Category    *models.ExpenseCategory `json:"category" binding:"omitempty,expense_category"`
	Description *string                 `json:"description"`
	Amount      *float64                `json:"amount" binding:"omitempty,gt=0"`
}

// CreateExpense handles recording an expense.
// @Summary     Record an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense"
// @Success     201 {object} models.Expense "Expense recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), userID, services.CreateExpenseInput{
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditCreate, "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"category": expense.Category, "amount": expense.Amount})

	respondOK(c, http.StatusCreated, expense)
}

// ListExpenses returns the user's expenses.
// @Summary     List expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       type       query string false "Category" Enums(transport, utilities, salaries, supplies, other)
// @Param       sort_by    query string false "Sort column"
// @Param       sort_order query string false "Sort direction" Enums(asc, desc)
// @Success     200 {object} listing.Response[models.Expense]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req listing.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, listing.NewResponse(expenses))
}

// GetExpense returns one expense.
// @Summary     Get an expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, expense)
}

// UpdateExpense applies a partial update.
// @Summary     Update an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to change"
// @Success     200 {object} models.Expense
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /expenses/{id} [patch]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), userID, c.Param("id"), services.UpdateExpenseInput{
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditUpdate, "expense", expense.ID, c.ClientIP(), changes(req))

	respondOK(c, http.StatusOK, expense)
}

// DeleteExpense removes an expense.
// @Summary     Delete an expense
// @Tags        expenses
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     204
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditDelete, "expense", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// GetExpenseStats summarises expenses over a period.
// @Summary     Expense statistics
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       period  query string false "Period selector" Enums(all, thisMonth, lastMonth, thisQuarter, lastQuarter, thisYear, customMonth, customQuarter)
// @Param       year    query int    false "Year for custom periods"
// @Param       month   query int    false "Month for customMonth"
// @Param       quarter query int    false "Quarter for customQuarter"
// @Success     200 {object} stats.Summary
// @Router      /expenses/stats [get]
func (h *ExpenseHandler) GetExpenseStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var p period.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		respondWithError(c, invalidPeriodQuery(err))
		return
	}

	summary, err := h.expenseService.GetExpenseStats(c.Request.Context(), userID, p)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, summary)
}
