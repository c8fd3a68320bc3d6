package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/kamaops/salesops-backend/internal/service"
)

// AdminHandler handles the admin mutations: customer reassignment and
// projection edits.
type AdminHandler struct {
	customerService   *service.CustomerService
	projectionService *service.ProjectionService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(customerService *service.CustomerService, projectionService *service.ProjectionService) *AdminHandler {
	return &AdminHandler{
		customerService:   customerService,
		projectionService: projectionService,
	}
}

// ReassignRequest represents the customer reassignment payload
type ReassignRequest struct {
	SalespersonID string `json:"salespersonId"`
}

// ReassignCustomer handles PUT /api/v1/admin/customers/:id/salesperson
func (h *AdminHandler) ReassignCustomer(c echo.Context) error {
	var req ReassignRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.SalespersonID == "" {
		return NewValidationError(c, "Salesperson is required", []ValidationError{{Field: "salespersonId", Message: "Required"}})
	}

	customer, err := h.customerService.Reassign(c.Param("id"), req.SalespersonID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			return NewNotFoundError(c, "Customer not found")
		case errors.Is(err, domain.ErrSalespersonNotFound):
			return NewValidationError(c, "Unknown salesperson", []ValidationError{{Field: "salespersonId", Message: "Unknown salesperson"}})
		default:
			log.Error().Err(err).Str("customer_id", c.Param("id")).Msg("Failed to reassign customer")
			return NewInternalError(c, "Failed to reassign customer")
		}
	}
	return c.JSON(http.StatusOK, customer)
}

// ListProjections handles GET /api/v1/admin/projections
func (h *AdminHandler) ListProjections(c echo.Context) error {
	projections, err := h.projectionService.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list projections")
		return NewInternalError(c, "Failed to list projections")
	}
	return c.JSON(http.StatusOK, projections)
}

// AnnualTargetRequest represents the annual target payload. The amount is
// denominated in the customer's currency.
type AnnualTargetRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// SetAnnualTarget handles PUT /api/v1/admin/projections/:customerId/annual
func (h *AdminHandler) SetAnnualTarget(c echo.Context) error {
	var req AnnualTargetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	projection, err := h.projectionService.SetAnnualTarget(c.Param("customerId"), req.Amount)
	if err != nil {
		return h.mapProjectionError(c, err, "Failed to set annual target")
	}
	return c.JSON(http.StatusOK, projection)
}

// MonthlyTargetsRequest represents the monthly booking targets payload,
// keyed by fiscal month label (Apr through Mar).
type MonthlyTargetsRequest struct {
	Targets map[string]decimal.Decimal `json:"targets"`
}

// SetMonthlyTargets handles PUT /api/v1/admin/projections/:customerId/monthly
func (h *AdminHandler) SetMonthlyTargets(c echo.Context) error {
	var req MonthlyTargetsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if len(req.Targets) == 0 {
		return NewValidationError(c, "Targets are required", []ValidationError{{Field: "targets", Message: "Required"}})
	}

	projection, err := h.projectionService.SetMonthlyTargets(c.Param("customerId"), req.Targets)
	if err != nil {
		return h.mapProjectionError(c, err, "Failed to set monthly targets")
	}
	return c.JSON(http.StatusOK, projection)
}

func (h *AdminHandler) mapProjectionError(c echo.Context, err error, internalDetail string) error {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return NewNotFoundError(c, "Customer not found")
	case errors.Is(err, domain.ErrInvalidFiscalMonth):
		return NewValidationError(c, "Unknown fiscal month label", []ValidationError{{Field: "targets", Message: "Labels must be Apr through Mar"}})
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, "Amounts must not be negative", nil)
	default:
		log.Error().Err(err).Msg(internalDetail)
		return NewInternalError(c, internalDetail)
	}
}
