package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "baletrack/internal/errors"
	"baletrack/internal/export"
	"baletrack/internal/period"
	"baletrack/internal/services"
)

// ReportHandler serves derived financial reports.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExportQuery holds the export query parameters.
type ExportQuery struct {
	period.Params
	Format string `form:"format"`
}

// GetFinancialReport returns the profit and loss view of a period.
// @Summary     Financial report
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       period  query string false "Period selector" Enums(all, thisMonth, lastMonth, thisQuarter, lastQuarter, thisYear, customMonth, customQuarter)
// @Param       year    query int    false "Year for custom periods"
// @Param       month   query int    false "Month for customMonth"
// @Param       quarter query int    false "Quarter for customQuarter"
// @Success     200 {object} services.FinancialReport
// @Router      /reports/financial [get]
func (h *ReportHandler) GetFinancialReport(c *gin.Context) {
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

	report, err := h.reportService.GetFinancialReport(c.Request.Context(), userID, p)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, report)
}

// ExportFinancialReport streams the report as a workbook or PDF.
// @Summary     Export financial report
// @Tags        reports
// @Produce     application/pdf
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Param       format  query string true  "File format" Enums(xlsx, pdf)
// @Param       period  query string false "Period selector"
// @Param       year    query int    false "Year for custom periods"
// @Param       month   query int    false "Month for customMonth"
// @Param       quarter query int    false "Quarter for customQuarter"
// @Success     200 {file} file
// @Failure     400 {object} ErrorResponse "Unsupported format"
// @Router      /reports/financial/export [get]
func (h *ReportHandler) ExportFinancialReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, invalidPeriodQuery(err))
		return
	}
	format, ok := export.ParseFormat(q.Format)
	if !ok {
		respondWithError(c, apperrors.ErrUnsupportedFormat)
		return
	}

	report, err := h.reportService.GetFinancialReport(c.Request.Context(), userID, q.Params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, report, format); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename(report, format)))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
