package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/kamaops/salesops-backend/internal/service"
	"github.com/kamaops/salesops-backend/internal/testutil"
)

func setupDashboardHandler(t *testing.T) (*DashboardHandler, *testutil.MockSalespersonRepository, *testutil.MockCustomerRepository, *testutil.MockInvoiceRepository, *testutil.MockProjectionRepository) {
	t.Helper()

	salespersonRepo := testutil.NewMockSalespersonRepository()
	customerRepo := testutil.NewMockCustomerRepository()
	orderRepo := testutil.NewMockOrderRepository()
	invoiceRepo := testutil.NewMockInvoiceRepository()
	activityRepo := testutil.NewMockActivityRepository()
	projectionRepo := testutil.NewMockProjectionRepository()

	currencyService, err := service.NewCurrencyService(service.DefaultRates())
	if err != nil {
		t.Fatalf("Failed to build currency service: %v", err)
	}
	metricsService := service.NewMetricsService(salespersonRepo, customerRepo, orderRepo,
		invoiceRepo, activityRepo, projectionRepo, currencyService, service.NewProrationService())

	return NewDashboardHandler(metricsService), salespersonRepo, customerRepo, invoiceRepo, projectionRepo
}

func TestGetMetrics_Success(t *testing.T) {
	e := echo.New()
	handler, _, customerRepo, invoiceRepo, projectionRepo := setupDashboardHandler(t)

	customerRepo.Add(&domain.Customer{ID: "c1", Name: "Bombay Boutique", Currency: domain.CurrencyINR, SalespersonID: "sp1"})
	projectionRepo.Add(&domain.Projection{
		CustomerID: "c1",
		YTD:        domain.NewMoney(decimal.NewFromInt(1200000), domain.CurrencyINR),
	})
	invoiceRepo.Add(&domain.Invoice{
		ID: "i1", CustomerID: "c1", SalespersonID: "sp1",
		IssueDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Amount:     domain.NewMoney(decimal.NewFromInt(60000), domain.CurrencyINR),
		PaidAmount: domain.NewMoney(decimal.NewFromInt(60000), domain.CurrencyINR),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/metrics?view=mtd&date=2025-07-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetMetrics(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response MetricsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.View != "mtd" {
		t.Errorf("Expected view 'mtd', got %s", response.View)
	}
	if response.Projection != "120000.00" {
		t.Errorf("Expected projection '120000.00', got %s", response.Projection)
	}
	if response.Achieved != "60000.00" {
		t.Errorf("Expected achieved '60000.00', got %s", response.Achieved)
	}
	if response.AchievedPercent != "50.00" {
		t.Errorf("Expected achieved percent '50.00', got %s", response.AchievedPercent)
	}
}

func TestGetMetrics_DefaultsToMTDAndAllScope(t *testing.T) {
	e := echo.New()
	handler, _, _, _, _ := setupDashboardHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/metrics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetMetrics(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response MetricsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.View != "mtd" {
		t.Errorf("Expected view 'mtd', got %s", response.View)
	}
	if response.SalespersonScope != "all" {
		t.Errorf("Expected scope 'all', got %s", response.SalespersonScope)
	}
}

func TestGetMetrics_InvalidView(t *testing.T) {
	e := echo.New()
	handler, _, _, _, _ := setupDashboardHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/metrics?view=weekly", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetMetrics(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetMetrics_InvalidDate(t *testing.T) {
	e := echo.New()
	handler, _, _, _, _ := setupDashboardHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/metrics?date=01-07-2025", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetMetrics(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetComparison_Success(t *testing.T) {
	e := echo.New()
	handler, salespersonRepo, customerRepo, invoiceRepo, projectionRepo := setupDashboardHandler(t)

	salespersonRepo.Add(&domain.Salesperson{ID: "sp1", Name: "Priya Nair"})
	customerRepo.Add(&domain.Customer{ID: "c1", Name: "Bombay Boutique", Currency: domain.CurrencyINR, SalespersonID: "sp1"})
	projectionRepo.Add(&domain.Projection{
		CustomerID: "c1",
		YTD:        domain.NewMoney(decimal.NewFromInt(1200000), domain.CurrencyINR),
	})
	invoiceRepo.Add(&domain.Invoice{
		ID: "i1", CustomerID: "c1", SalespersonID: "sp1",
		IssueDate:  time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
		Amount:     domain.NewMoney(decimal.NewFromInt(90000), domain.CurrencyINR),
		PaidAmount: domain.NewMoney(decimal.NewFromInt(90000), domain.CurrencyINR),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/comparison?view=mtd&date=2025-07-10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetComparison(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []ComparisonRowResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(response))
	}
	if response[0].SalespersonName != "Priya Nair" {
		t.Errorf("Expected salesperson 'Priya Nair', got %s", response[0].SalespersonName)
	}
	if response[0].Projection != "120000.00" {
		t.Errorf("Expected projection '120000.00', got %s", response[0].Projection)
	}
	if response[0].Achieved != "90000.00" {
		t.Errorf("Expected achieved '90000.00', got %s", response[0].Achieved)
	}
}
