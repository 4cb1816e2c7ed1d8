package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"baletrack/internal/listing"
	"baletrack/internal/models"
	"baletrack/internal/period"
	"baletrack/internal/services"
)

// BaleHandler handles bale transaction requests.
type BaleHandler struct {
	baleService  services.BaleServicer
	auditService services.AuditServicer
}

// NewBaleHandler creates a new BaleHandler.
func NewBaleHandler(baleService services.BaleServicer, auditService services.AuditServicer) *BaleHandler {
	return &BaleHandler{baleService: baleService, auditService: auditService}
}

// CreateBaleRequest represents the request payload for recording a bale transaction.
type CreateBaleRequest struct {
	BaleType        models.BaleType            `json:"bale_type" binding:"omitempty,bale_type"`
	TransactionType models.BaleTransactionType `json:"transaction_type" binding:"required,bale_transaction_type"`
	Quantity        float64                    `json:"quantity" binding:"required,gt=0"`
	PricePerUnit    *float64                   `json:"price_per_unit" binding:"required,gte=0"`
	Notes           string                     `json:"notes" binding:"max=1000"`
}

// UpdateBaleRequest represents a partial update; omitted fields are unchanged.
type UpdateBaleRequest struct {
	BaleType        *models.BaleType            `json:"bale_type" binding:"omitempty,bale_type"`
	TransactionType *models.BaleTransactionType `json:"transaction_type" binding:"omitempty,bale_transaction_type"`
	Quantity        *float64                    `json:"quantity" binding:"omitempty,gt=0"`
	PricePerUnit    *float64                    `json:"price_per_unit" binding:"omitempty,gte=0"`
	Notes           *string                     `json:"notes" binding:"omitempty,max=1000"`
}

// ListBalesQuery holds the bale listing query parameters.
type ListBalesQuery struct {
	listing.Request
	TransactionType string `form:"transaction_type"`
}

// CreateBale handles recording a purchase or sale.
// @Summary     Record a bale transaction
// @Tags        bales
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBaleRequest true "Bale transaction"
// @Success     201 {object} models.Bale "Bale recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /bales [post]
func (h *BaleHandler) CreateBale(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	bale, err := h.baleService.CreateBale(c.Request.Context(), userID, services.CreateBaleInput{
		BaleType:        req.BaleType,
		TransactionType: req.TransactionType,
		Quantity:        req.Quantity,
		PricePerUnit:    *req.PricePerUnit,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditCreate, "bale", bale.ID, c.ClientIP(),
		map[string]interface{}{"transaction_type": bale.TransactionType, "quantity": bale.Quantity})

	respondOK(c, http.StatusCreated, bale)
}

// ListBales returns the user's bale transactions.
// @Summary     List bale transactions
// @Tags        bales
// @Produce     json
// @Security    BearerAuth
// @Param       type             query string false "Bale type" Enums(cotton, jute, wool)
// @Param       transaction_type query string false "Transaction type" Enums(purchase, sale)
// @Param       sort_by          query string false "Sort column"
// @Param       sort_order       query string false "Sort direction" Enums(asc, desc)
// @Success     200 {object} listing.Response[models.Bale]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /bales [get]
func (h *BaleHandler) ListBales(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q ListBalesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	bales, err := h.baleService.ListBales(c.Request.Context(), userID, services.BaleFilter{
		Request:         q.Request,
		TransactionType: q.TransactionType,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, listing.NewResponse(bales))
}

// GetBale returns one bale transaction.
// @Summary     Get a bale transaction
// @Tags        bales
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Bale ID"
// @Success     200 {object} models.Bale
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /bales/{id} [get]
func (h *BaleHandler) GetBale(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bale, err := h.baleService.GetBale(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, bale)
}

// UpdateBale applies a partial update.
// @Summary     Update a bale transaction
// @Tags        bales
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Bale ID"
// @Param       request body UpdateBaleRequest true "Fields to change"
// @Success     200 {object} models.Bale
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /bales/{id} [patch]
func (h *BaleHandler) UpdateBale(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	bale, err := h.baleService.UpdateBale(c.Request.Context(), userID, c.Param("id"), services.UpdateBaleInput{
		BaleType:        req.BaleType,
		TransactionType: req.TransactionType,
		Quantity:        req.Quantity,
		PricePerUnit:    req.PricePerUnit,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditUpdate, "bale", bale.ID, c.ClientIP(), changes(req))

	respondOK(c, http.StatusOK, bale)
}

// DeleteBale removes a bale transaction.
// @Summary     Delete a bale transaction
// @Tags        bales
// @Security    BearerAuth
// @Param       id path string true "Bale ID"
// @Success     204
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /bales/{id} [delete]
func (h *BaleHandler) DeleteBale(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.baleService.DeleteBale(c.Request.Context(), userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditDelete, "bale", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// GetBaleStats returns purchase, sale and stock totals for a period.
// @Summary     Bale statistics
// @Tags        bales
// @Produce     json
// @Security    BearerAuth
// @Param       period  query string false "Period selector" Enums(all, thisMonth, lastMonth, thisQuarter, lastQuarter, thisYear, customMonth, customQuarter)
// @Param       year    query int    false "Year for custom periods"
// @Param       month   query int    false "Month for customMonth"
// @Param       quarter query int    false "Quarter for customQuarter"
// @Success     200 {object} services.BaleStats
// @Router      /bales/stats [get]
func (h *BaleHandler) GetBaleStats(c *gin.Context) {
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

	st, err := h.baleService.GetBaleStats(c.Request.Context(), userID, p)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, st)
}
