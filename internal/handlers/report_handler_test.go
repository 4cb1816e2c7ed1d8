package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"baletrack/internal/period"
	"baletrack/internal/services"
)

// --- mock report service ---

type mockReportService struct {
	getFinancialReportFn func(userID string, p period.Params) (*services.FinancialReport, error)
}

func (m *mockReportService) GetFinancialReport(_ context.Context, userID string, p period.Params) (*services.FinancialReport, error) {
	if m.getFinancialReportFn != nil {
		return m.getFinancialReportFn(userID, p)
	}
	return &services.FinancialReport{}, nil
}

// verify interface compliance
var _ services.ReportServicer = (*mockReportService)(nil)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/reports/financial", handler.GetFinancialReport)
	auth.GET("/reports/financial/export", handler.ExportFinancialReport)
	return r
}

func quarterReport() *services.FinancialReport {
	year, quarter := 2024, 1
	return &services.FinancialReport{
		Period:       period.Filter{Selector: period.CustomQuarter, Year: &year, Quarter: &quarter},
		Sales:        10000,
		Purchases:    6000,
		Expenses:     1500,
		TotalCosts:   7500,
		Profit:       2500,
		ProfitMargin: 25,
		ExpenseRatio: 75,
		GeneratedAt:  time.Date(2024, time.April, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestReportHandler_GetFinancialReport(t *testing.T) {
	t.Run("returns report for the requested period", func(t *testing.T) {
		var got period.Params
		svc := &mockReportService{
			getFinancialReportFn: func(userID string, p period.Params) (*services.FinancialReport, error) {
				if userID != testUserID {
					t.Errorf("unexpected user %q", userID)
				}
				got = p
				return quarterReport(), nil
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/reports/financial?period=customQuarter&year=2024&quarter=1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Period != "customQuarter" || got.Year == nil || *got.Year != 2024 || got.Quarter == nil || *got.Quarter != 1 {
			t.Errorf("unexpected params %+v", got)
		}
		data := parseData(t, rec)
		if data["profit"] != float64(2500) || data["profit_margin"] != float64(25) {
			t.Errorf("unexpected report %v", data)
		}
	})

	t.Run("returns readable message on non-numeric month", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/reports/financial?period=customMonth&year=2024&month=abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := parseJSON(t, rec)
		assertErrorCode(t, body, "INVALID_INPUT")
		if body["message"] != "year, month and quarter must be integers" {
			t.Errorf("unexpected message %v", body["message"])
		}
		if strings.Contains(rec.Body.String(), "strconv") {
			t.Error("parser error leaked to client")
		}
	})

	t.Run("returns 500 on service failure", func(t *testing.T) {
		svc := &mockReportService{
			getFinancialReportFn: func(string, period.Params) (*services.FinancialReport, error) {
				return nil, errors.New("db down")
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/reports/financial", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		body := parseJSON(t, rec)
		assertErrorCode(t, body, "INTERNAL_ERROR")
		if strings.Contains(rec.Body.String(), "db down") {
			t.Error("internal error leaked to client")
		}
	})
}

func TestReportHandler_ExportFinancialReport(t *testing.T) {
	svc := &mockReportService{
		getFinancialReportFn: func(string, period.Params) (*services.FinancialReport, error) {
			return quarterReport(), nil
		},
	}
	r := setupReportRouter(NewReportHandler(svc))

	t.Run("xlsx attachment", func(t *testing.T) {
		rec := doRequest(r, "GET", "/reports/financial/export?format=xlsx&period=customQuarter&year=2024&quarter=1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
			t.Errorf("unexpected content type %q", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="baletrack-report-2024-q1.xlsx"`) {
			t.Errorf("unexpected content disposition %q", cd)
		}

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		if err != nil {
			t.Fatalf("workbook did not open: %v", err)
		}
		defer f.Close()
		if v, _ := f.GetCellValue("Summary", "B2"); v != "2024 Q1" {
			t.Errorf("expected period label, got %q", v)
		}
	})

	t.Run("pdf attachment", func(t *testing.T) {
		rec := doRequest(r, "GET", "/reports/financial/export?format=pdf", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("unexpected content type %q", ct)
		}
		if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
			t.Error("body is not a PDF document")
		}
	})

	t.Run("rejects unsupported format", func(t *testing.T) {
		for _, q := range []string{"format=csv", ""} {
			rec := doRequest(r, "GET", "/reports/financial/export?"+q, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for %q, got %d", q, rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "UNSUPPORTED_FORMAT")
		}
	})
}
