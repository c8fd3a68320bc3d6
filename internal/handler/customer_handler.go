package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/kamaops/salesops-backend/internal/service"
)

// CustomerHandler handles customer and salesperson HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// ListCustomers handles GET /api/v1/customers
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerService.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list customers")
		return NewInternalError(c, "Failed to list customers")
	}
	return c.JSON(http.StatusOK, customers)
}

// GetCustomerDetail handles GET /api/v1/customers/:id
// Query params: date (YYYY-MM-DD reference for stock aging)
func (h *CustomerHandler) GetCustomerDetail(c echo.Context) error {
	reference, err := parseDateParam(c, "date")
	if err != nil {
		return NewValidationError(c, "Invalid date", []ValidationError{{Field: "date", Message: "Must be YYYY-MM-DD"}})
	}

	detail, err := h.customerService.Detail(c.Param("id"), reference)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return NewNotFoundError(c, "Customer not found")
		}
		log.Error().Err(err).Str("customer_id", c.Param("id")).Msg("Failed to get customer detail")
		return NewInternalError(c, "Failed to get customer detail")
	}
	return c.JSON(http.StatusOK, detail)
}

// ListSalespeople handles GET /api/v1/salespeople
func (h *CustomerHandler) ListSalespeople(c echo.Context) error {
	salespeople, err := h.customerService.ListSalespeople()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list salespeople")
		return NewInternalError(c, "Failed to list salespeople")
	}
	return c.JSON(http.StatusOK, salespeople)
}
