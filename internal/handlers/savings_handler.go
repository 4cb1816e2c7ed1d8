package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "baletrack/internal/errors"
	"baletrack/internal/listing"
	"baletrack/internal/models"
	"baletrack/internal/period"
	"baletrack/internal/services"
)

// SavingsHandler handles savings requests.
type SavingsHandler struct {
	savingsService services.SavingsServicer
	auditService   services.AuditServicer
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsService services.SavingsServicer, auditService services.AuditServicer) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService, auditService: auditService}
}

// CreateSavingsRequest represents the request payload for recording a
// savings contribution. savings_date accepts RFC 3339 or YYYY-MM-DD.
type CreateSavingsRequest struct {
	SavingsType  models.SavingsType `json:"savings_type" binding:"required,savings_type"`
	Amount       float64            `json:"amount" binding:"required,gt=0"`
	TargetName   *string            `json:"target_name" binding:"omitempty,max=100"`
	TargetAmount *float64           `json:"target_amount" binding:"omitempty,gt=0"`
	SavingsDate  *string            `json:"savings_date"`
}

// UpdateSavingsRequest represents a partial update; omitted fields are
// unchanged and an explicit null target_amount clears the target.
type UpdateSavingsRequest struct {
	SavingsType  *models.SavingsType `json:"savings_type" binding:"omitempty,savings_type"`
	Amount       *float64            `json:"amount" binding:"omitempty,gt=0"`
	TargetName   *string             `json:"target_name" binding:"omitempty,max=100"`
	TargetAmount nullableFloat       `json:"target_amount" swaggertype:"number"`
	SavingsDate  *string             `json:"savings_date"`
}

// nullableFloat tells an absent JSON field apart from an explicit null.
type nullableFloat struct {
	Set   bool
	Value *float64
}

func (n *nullableFloat) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n nullableFloat) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// parseDate accepts RFC 3339 timestamps and plain dates.
func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err == nil {
		return t.UTC(), nil
	}
	t, err = time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid savings_date format")
	}
	return t, nil
}

// CreateSavings handles recording a contribution.
// @Summary     Record a savings contribution
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSavingsRequest true "Savings entry"
// @Success     201 {object} models.Savings "Savings recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /savings [post]
func (h *SavingsHandler) CreateSavings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	in := services.CreateSavingsInput{
		SavingsType:  req.SavingsType,
		Amount:       req.Amount,
		TargetName:   req.TargetName,
		TargetAmount: req.TargetAmount,
	}
	if req.SavingsDate != nil && *req.SavingsDate != "" {
		if in.SavingsDate, err = parseDate(*req.SavingsDate); err != nil {
			respondWithError(c, err)
			return
		}
	}

	entry, err := h.savingsService.CreateSavings(c.Request.Context(), userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditCreate, "savings", entry.ID, c.ClientIP(),
		map[string]interface{}{"savings_type": entry.SavingsType, "amount": entry.Amount})

	respondOK(c, http.StatusCreated, entry)
}

// ListSavings returns the user's savings entries.
// @Summary     List savings
// @Tags        savings
// @Produce     json
// @Security    BearerAuth
// @Param       type       query string false "Savings type" Enums(personal, business, target)
// @Param       sort_by    query string false "Sort column"
// @Param       sort_order query string false "Sort direction" Enums(asc, desc)
// @Success     200 {object} listing.Response[models.Savings]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /savings [get]
func (h *SavingsHandler) ListSavings(c *gin.Context) {
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

	entries, err := h.savingsService.ListSavings(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, listing.NewResponse(entries))
}

// GetSavings returns one savings entry.
// @Summary     Get a savings entry
// @Tags        savings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Savings ID"
// @Success     200 {object} models.Savings
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /savings/{id} [get]
func (h *SavingsHandler) GetSavings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.savingsService.GetSavings(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, entry)
}

// UpdateSavings applies a partial update.
// @Summary     Update a savings entry
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Savings ID"
// @Param       request body UpdateSavingsRequest true "Fields to change"
// @Success     200 {object} models.Savings
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /savings/{id} [patch]
func (h *SavingsHandler) UpdateSavings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	in := services.UpdateSavingsInput{
		SavingsType:  req.SavingsType,
		Amount:       req.Amount,
		TargetName:   req.TargetName,
		TargetAmount: req.TargetAmount.Value,
	}
	if req.TargetAmount.Set && req.TargetAmount.Value == nil {
		in.ClearTargetAmount = true
	}
	if req.SavingsDate != nil {
		date, err := parseDate(*req.SavingsDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		in.SavingsDate = &date
	}

	entry, err := h.savingsService.UpdateSavings(c.Request.Context(), userID, c.Param("id"), in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fields := changes(req)
	if in.ClearTargetAmount && fields != nil {
		fields["target_amount"] = nil
	}
	h.auditService.Log(userID, services.AuditUpdate, "savings", entry.ID, c.ClientIP(), fields)

	respondOK(c, http.StatusOK, entry)
}

// DeleteSavings removes a savings entry.
// @Summary     Delete a savings entry
// @Tags        savings
// @Security    BearerAuth
// @Param       id path string true "Savings ID"
// @Success     204
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /savings/{id} [delete]
func (h *SavingsHandler) DeleteSavings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.savingsService.DeleteSavings(c.Request.Context(), userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditDelete, "savings", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// GetSavingsStats summarises contributions over a period.
// @Summary     Savings statistics
// @Tags        savings
// @Produce     json
// @Security    BearerAuth
// @Param       period  query string false "Period selector" Enums(all, thisMonth, lastMonth, thisQuarter, lastQuarter, thisYear, customMonth, customQuarter)
// @Param       year    query int    false "Year for custom periods"
// @Param       month   query int    false "Month for customMonth"
// @Param       quarter query int    false "Quarter for customQuarter"
// @Success     200 {object} services.SavingsStats
// @Router      /savings/stats [get]
func (h *SavingsHandler) GetSavingsStats(c *gin.Context) {
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

	st, err := h.savingsService.GetSavingsStats(c.Request.Context(), userID, p)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, st)
}

// GetSavingsGoals reports progress towards each named target.
// @Summary     Savings goals
// @Tags        savings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.SavingsGoal
// @Router      /savings/goals [get]
func (h *SavingsHandler) GetSavingsGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.savingsService.GetSavingsGoals(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, goals)
}
