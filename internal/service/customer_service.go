package service

import (
	"time"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/kamaops/salesops-backend/internal/websocket"
)

// CustomerService handles customer reads and the salesperson reassignment
// admin action.
type CustomerService struct {
	customerRepo    domain.CustomerRepository
	salespersonRepo domain.SalespersonRepository
	orderRepo       domain.OrderRepository
	invoiceRepo     domain.InvoiceRepository
	activityRepo    domain.ActivityRepository
	projectionRepo  domain.ProjectionRepository
	stockRepo       domain.FGStockRepository
	eventPublisher  websocket.EventPublisher
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(
	customerRepo domain.CustomerRepository,
	salespersonRepo domain.SalespersonRepository,
	orderRepo domain.OrderRepository,
	invoiceRepo domain.InvoiceRepository,
	activityRepo domain.ActivityRepository,
	projectionRepo domain.ProjectionRepository,
	stockRepo domain.FGStockRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo:    customerRepo,
		salespersonRepo: salespersonRepo,
		orderRepo:       orderRepo,
		invoiceRepo:     invoiceRepo,
		activityRepo:    activityRepo,
		projectionRepo:  projectionRepo,
		stockRepo:       stockRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates.
func (s *CustomerService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// List returns all customers.
func (s *CustomerService) List() ([]*domain.Customer, error) {
	return s.customerRepo.GetAll()
}

// ListSalespeople returns all salespeople.
func (s *CustomerService) ListSalespeople() ([]*domain.Salesperson, error) {
	return s.salespersonRepo.GetAll()
}

// Reassign moves a customer to another salesperson's book.
func (s *CustomerService) Reassign(customerID, salespersonID string) (*domain.Customer, error) {
	if _, err := s.salespersonRepo.GetByID(salespersonID); err != nil {
		return nil, domain.ErrSalespersonNotFound
	}
	customer, err := s.customerRepo.UpdateAssignment(customerID, salespersonID)
	if err != nil {
		return nil, err
	}
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.CustomerReassigned(customer))
	}
	return customer, nil
}

// StockLine is one finished-goods piece with its shelf age.
type StockLine struct {
	Stock     *domain.FGStock `json:"stock"`
	DaysReady int             `json:"daysReady"`
}

// CustomerDetail bundles everything the customer page shows: the account,
// its salesperson and projection, and the per-customer ledgers.
type CustomerDetail struct {
	Customer    *domain.Customer    `json:"customer"`
	Salesperson *domain.Salesperson `json:"salesperson,omitempty"`
	Projection  *domain.Projection  `json:"projection,omitempty"`
	Activities  []*domain.Activity  `json:"activities"`
	Orders      []*domain.Order     `json:"orders"`
	Invoices    []*domain.Invoice   `json:"invoices"`
	Stock       []StockLine         `json:"stock"`
}

// Detail assembles the full per-customer view. A missing projection or
// salesperson is not an error; those fields are simply absent.
func (s *CustomerService) Detail(customerID string, reference time.Time) (*CustomerDetail, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}

	detail := &CustomerDetail{Customer: customer}

	if sp, err := s.salespersonRepo.GetByID(customer.SalespersonID); err == nil {
		detail.Salesperson = sp
	}
	if projection, err := s.projectionRepo.GetByCustomer(customerID); err == nil {
		detail.Projection = projection
	}

	if detail.Activities, err = s.activityRepo.GetAll(&domain.ActivityFilters{CustomerID: &customerID}); err != nil {
		return nil, err
	}
	if detail.Orders, err = s.orderRepo.GetByCustomer(customerID); err != nil {
		return nil, err
	}
	if detail.Invoices, err = s.invoiceRepo.GetByCustomer(customerID); err != nil {
		return nil, err
	}

	stock, err := s.stockRepo.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	detail.Stock = make([]StockLine, 0, len(stock))
	for _, piece := range stock {
		detail.Stock = append(detail.Stock, StockLine{Stock: piece, DaysReady: piece.DaysReady(reference)})
	}

	return detail, nil
}
