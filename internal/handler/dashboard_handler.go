package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/kamaops/salesops-backend/internal/service"
)

// DashboardHandler handles dashboard metrics HTTP requests
type DashboardHandler struct {
	metricsService *service.MetricsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(metricsService *service.MetricsService) *DashboardHandler {
	return &DashboardHandler{metricsService: metricsService}
}

// OrderResponse represents one order in API responses
type OrderResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customerId"`
	PONumber    string `json:"poNumber"`
	Value       string `json:"value"`
	Currency    string `json:"currency"`
	PromiseDate string `json:"promiseDate"`
	Status      string `json:"status"`
}

// MetricsResponse represents the dashboard KPI set. All monetary figures are
// in the reporting currency.
type MetricsResponse struct {
	View             string `json:"view"`
	SalespersonScope string `json:"salespersonScope"`
	ReferenceDate    string `json:"referenceDate"`

	Projection      string `json:"projection"`
	Achieved        string `json:"achieved"`
	AchievedPercent string `json:"achievedPercent"`
	RequiredRunRate string `json:"requiredRunRate"`
	Shortfall       string `json:"shortfall"`

	MonthlyBookingTarget string `json:"monthlyBookingTarget"`
	MTDBookedValue       string `json:"mtdBookedValue"`
	BookingPercent       string `json:"bookingPercent"`

	OpenOrders            []OrderResponse `json:"openOrders"`
	OpenOrdersValue       string          `json:"openOrdersValue"`
	OverdueOrders         []OrderResponse `json:"overdueOrders"`
	OverdueOrdersValue    string          `json:"overdueOrdersValue"`
	PendingQuotationCount int             `json:"pendingQuotationCount"`
	TotalReceivables      string          `json:"totalReceivables"`
}

// ComparisonRowResponse represents one row of the salesperson comparison
type ComparisonRowResponse struct {
	SalespersonID   string `json:"salespersonId"`
	SalespersonName string `json:"salespersonName"`
	Projection      string `json:"projection"`
	Achieved        string `json:"achieved"`
}

// GetMetrics handles GET /api/v1/dashboard/metrics
// Query params: view (mtd|ytd), salesperson (id or "all"), date (YYYY-MM-DD)
func (h *DashboardHandler) GetMetrics(c echo.Context) error {
	view, err := parseViewParam(c)
	if err != nil {
		return NewValidationError(c, "Invalid view", []ValidationError{{Field: "view", Message: "Must be mtd or ytd"}})
	}
	reference, err := parseDateParam(c, "date")
	if err != nil {
		return NewValidationError(c, "Invalid date", []ValidationError{{Field: "date", Message: "Must be YYYY-MM-DD"}})
	}

	scope := c.QueryParam("salesperson")
	if scope == "" {
		scope = domain.ScopeAll
	}

	result, err := h.metricsService.Compute(domain.MetricsQuery{
		ReferenceDate:    reference,
		SalespersonScope: scope,
		View:             view,
	})
	if err != nil {
		log.Error().Err(err).Str("view", string(view)).Str("scope", scope).Msg("Failed to compute dashboard metrics")
		return NewInternalError(c, "Failed to compute dashboard metrics")
	}

	return c.JSON(http.StatusOK, toMetricsResponse(result))
}

// GetComparison handles GET /api/v1/dashboard/comparison
// Query params: view (mtd|ytd), date (YYYY-MM-DD)
func (h *DashboardHandler) GetComparison(c echo.Context) error {
	view, err := parseViewParam(c)
	if err != nil {
		return NewValidationError(c, "Invalid view", []ValidationError{{Field: "view", Message: "Must be mtd or ytd"}})
	}
	reference, err := parseDateParam(c, "date")
	if err != nil {
		return NewValidationError(c, "Invalid date", []ValidationError{{Field: "date", Message: "Must be YYYY-MM-DD"}})
	}

	rows, err := h.metricsService.CompareSalespeople(reference, view)
	if err != nil {
		log.Error().Err(err).Str("view", string(view)).Msg("Failed to compute salesperson comparison")
		return NewInternalError(c, "Failed to compute salesperson comparison")
	}

	response := make([]ComparisonRowResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, ComparisonRowResponse{
			SalespersonID:   row.SalespersonID,
			SalespersonName: row.SalespersonName,
			Projection:      row.Projection.StringFixed(2),
			Achieved:        row.Achieved.StringFixed(2),
		})
	}
	return c.JSON(http.StatusOK, response)
}

func toMetricsResponse(result *domain.MetricsResult) MetricsResponse {
	return MetricsResponse{
		View:                  string(result.View),
		SalespersonScope:      result.SalespersonScope,
		ReferenceDate:         result.ReferenceDate.Format("2006-01-02"),
		Projection:            result.Projection.StringFixed(2),
		Achieved:              result.Achieved.StringFixed(2),
		AchievedPercent:       result.AchievedPercent.StringFixed(2),
		RequiredRunRate:       result.RequiredRunRate.StringFixed(2),
		Shortfall:             result.Shortfall.StringFixed(2),
		MonthlyBookingTarget:  result.MonthlyBookingTarget.StringFixed(2),
		MTDBookedValue:        result.MTDBookedValue.StringFixed(2),
		BookingPercent:        result.BookingPercent.StringFixed(2),
		OpenOrders:            toOrderResponses(result.OpenOrders),
		OpenOrdersValue:       result.OpenOrdersValue.StringFixed(2),
		OverdueOrders:         toOrderResponses(result.OverdueOrders),
		OverdueOrdersValue:    result.OverdueOrdersValue.StringFixed(2),
		PendingQuotationCount: result.PendingQuotationCount,
		TotalReceivables:      result.TotalReceivables.StringFixed(2),
	}
}

func toOrderResponses(orders []*domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderResponse{
			ID:          o.ID,
			CustomerID:  o.CustomerID,
			PONumber:    o.PONumber,
			Value:       o.Value.Amount.StringFixed(2),
			Currency:    string(o.Value.Currency),
			PromiseDate: o.PromiseDate.Format("2006-01-02"),
			Status:      string(o.Status),
		})
	}
	return out
}

func parseViewParam(c echo.Context) (domain.View, error) {
	raw := c.QueryParam("view")
	if raw == "" {
		return domain.ViewMTD, nil
	}
	view := domain.View(raw)
	if !view.Valid() {
		return "", domain.ErrInvalidInput
	}
	return view, nil
}

// parseDateParam reads an optional YYYY-MM-DD query parameter, defaulting to
// the current time.
func parseDateParam(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}
