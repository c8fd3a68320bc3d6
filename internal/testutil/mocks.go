// Package testutil provides in-memory mock repositories for service and
// handler tests.
package testutil

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/kamaops/salesops-backend/internal/websocket"
)

// MockSalespersonRepository is a mock implementation of domain.SalespersonRepository
type MockSalespersonRepository struct {
	Salespeople map[string]*domain.Salesperson
}

// NewMockSalespersonRepository creates a new MockSalespersonRepository
func NewMockSalespersonRepository() *MockSalespersonRepository {
	return &MockSalespersonRepository{Salespeople: make(map[string]*domain.Salesperson)}
}

// GetAll retrieves all salespeople ordered by name
func (m *MockSalespersonRepository) GetAll() ([]*domain.Salesperson, error) {
	out := make([]*domain.Salesperson, 0, len(m.Salespeople))
	for _, sp := range m.Salespeople {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetByID retrieves a salesperson by ID
func (m *MockSalespersonRepository) GetByID(id string) (*domain.Salesperson, error) {
	if sp, ok := m.Salespeople[id]; ok {
		return sp, nil
	}
	return nil, domain.ErrSalespersonNotFound
}

// Add adds a salesperson (helper for tests)
func (m *MockSalespersonRepository) Add(sp *domain.Salesperson) {
	m.Salespeople[sp.ID] = sp
}

// MockCustomerRepository is a mock implementation of domain.CustomerRepository
type MockCustomerRepository struct {
	Customers map[string]*domain.Customer
}

// NewMockCustomerRepository creates a new MockCustomerRepository
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{Customers: make(map[string]*domain.Customer)}
}

// GetAll retrieves all customers ordered by name
func (m *MockCustomerRepository) GetAll() ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0, len(m.Customers))
	for _, c := range m.Customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetByID retrieves a customer by ID
func (m *MockCustomerRepository) GetByID(id string) (*domain.Customer, error) {
	if c, ok := m.Customers[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

// UpdateAssignment moves a customer to another salesperson
func (m *MockCustomerRepository) UpdateAssignment(customerID, salespersonID string) (*domain.Customer, error) {
	c, ok := m.Customers[customerID]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	c.SalespersonID = salespersonID
	return c, nil
}

// Add adds a customer (helper for tests)
func (m *MockCustomerRepository) Add(c *domain.Customer) {
	m.Customers[c.ID] = c
}

// MockOrderRepository is a mock implementation of domain.OrderRepository
type MockOrderRepository struct {
	Orders []*domain.Order
}

// NewMockOrderRepository creates a new MockOrderRepository
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

// GetAll retrieves all orders
func (m *MockOrderRepository) GetAll() ([]*domain.Order, error) {
	return m.Orders, nil
}

// GetByCustomer retrieves one customer's orders
func (m *MockOrderRepository) GetByCustomer(customerID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range m.Orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

// Add adds an order (helper for tests)
func (m *MockOrderRepository) Add(o *domain.Order) {
	m.Orders = append(m.Orders, o)
}

// MockInvoiceRepository is a mock implementation of domain.InvoiceRepository
type MockInvoiceRepository struct {
	Invoices []*domain.Invoice
}

// NewMockInvoiceRepository creates a new MockInvoiceRepository
func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{}
}

// GetAll retrieves all invoices
func (m *MockInvoiceRepository) GetAll() ([]*domain.Invoice, error) {
	return m.Invoices, nil
}

// GetByCustomer retrieves one customer's invoices
func (m *MockInvoiceRepository) GetByCustomer(customerID string) ([]*domain.Invoice, error) {
	var out []*domain.Invoice
	for _, inv := range m.Invoices {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

// Add adds an invoice (helper for tests)
func (m *MockInvoiceRepository) Add(inv *domain.Invoice) {
	m.Invoices = append(m.Invoices, inv)
}

// MockActivityRepository is a mock implementation of domain.ActivityRepository
type MockActivityRepository struct {
	Activities map[string]*domain.Activity
	CreateFn   func(activity *domain.Activity) (*domain.Activity, error)
}

// NewMockActivityRepository creates a new MockActivityRepository
func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{Activities: make(map[string]*domain.Activity)}
}

// GetAll retrieves activities matching the filters, newest first
func (m *MockActivityRepository) GetAll(filters *domain.ActivityFilters) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for _, a := range m.Activities {
		if filters != nil {
			if filters.CustomerID != nil && a.CustomerID != *filters.CustomerID {
				continue
			}
			if filters.ActivityType != nil && a.ActivityType != *filters.ActivityType {
				continue
			}
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID retrieves an activity by ID
func (m *MockActivityRepository) GetByID(id string) (*domain.Activity, error) {
	if a, ok := m.Activities[id]; ok {
		return a, nil
	}
	return nil, domain.ErrActivityNotFound
}

// Create creates a new activity
func (m *MockActivityRepository) Create(activity *domain.Activity) (*domain.Activity, error) {
	if m.CreateFn != nil {
		return m.CreateFn(activity)
	}
	activity.ID = uuid.New().String()
	activity.CreatedAt = time.Now().UTC()
	m.Activities[activity.ID] = activity
	return activity, nil
}

// Update updates an existing activity
func (m *MockActivityRepository) Update(activity *domain.Activity) (*domain.Activity, error) {
	if _, ok := m.Activities[activity.ID]; !ok {
		return nil, domain.ErrActivityNotFound
	}
	m.Activities[activity.ID] = activity
	return activity, nil
}

// Delete removes an activity
func (m *MockActivityRepository) Delete(id string) error {
	if _, ok := m.Activities[id]; !ok {
		return domain.ErrActivityNotFound
	}
	delete(m.Activities, id)
	return nil
}

// Add adds an activity (helper for tests)
func (m *MockActivityRepository) Add(a *domain.Activity) {
	m.Activities[a.ID] = a
}

// MockProjectionRepository is a mock implementation of domain.ProjectionRepository
type MockProjectionRepository struct {
	Projections map[string]*domain.Projection
}

// NewMockProjectionRepository creates a new MockProjectionRepository
func NewMockProjectionRepository() *MockProjectionRepository {
	return &MockProjectionRepository{Projections: make(map[string]*domain.Projection)}
}

// GetAll retrieves all projections ordered by customer ID
func (m *MockProjectionRepository) GetAll() ([]*domain.Projection, error) {
	out := make([]*domain.Projection, 0, len(m.Projections))
	for _, p := range m.Projections {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out, nil
}

// GetByCustomer retrieves the projection for one customer
func (m *MockProjectionRepository) GetByCustomer(customerID string) (*domain.Projection, error) {
	if p, ok := m.Projections[customerID]; ok {
		return p, nil
	}
	return nil, domain.ErrProjectionNotFound
}

// UpsertYTD sets a customer's annual target
func (m *MockProjectionRepository) UpsertYTD(customerID string, ytd domain.Money) (*domain.Projection, error) {
	p, ok := m.Projections[customerID]
	if !ok {
		p = &domain.Projection{CustomerID: customerID}
		m.Projections[customerID] = p
	}
	p.YTD = ytd
	return p, nil
}

// UpsertMonthlyTargets replaces a customer's per-month booking targets
func (m *MockProjectionRepository) UpsertMonthlyTargets(customerID string, targets map[domain.FiscalMonth]domain.Money) (*domain.Projection, error) {
	p, ok := m.Projections[customerID]
	if !ok {
		p = &domain.Projection{CustomerID: customerID}
		m.Projections[customerID] = p
	}
	p.MonthlyBookingTargets = targets
	return p, nil
}

// Add adds a projection (helper for tests)
func (m *MockProjectionRepository) Add(p *domain.Projection) {
	m.Projections[p.CustomerID] = p
}

// MockFGStockRepository is a mock implementation of domain.FGStockRepository
type MockFGStockRepository struct {
	Stock []*domain.FGStock
}

// NewMockFGStockRepository creates a new MockFGStockRepository
func NewMockFGStockRepository() *MockFGStockRepository {
	return &MockFGStockRepository{}
}

// GetAll retrieves all finished-goods stock
func (m *MockFGStockRepository) GetAll() ([]*domain.FGStock, error) {
	return m.Stock, nil
}

// GetByCustomer retrieves one customer's finished-goods stock
func (m *MockFGStockRepository) GetByCustomer(customerID string) ([]*domain.FGStock, error) {
	var out []*domain.FGStock
	for _, s := range m.Stock {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

// Add adds a finished-goods piece (helper for tests)
func (m *MockFGStockRepository) Add(s *domain.FGStock) {
	m.Stock = append(m.Stock, s)
}

// MockEventPublisher records published events for assertions
type MockEventPublisher struct {
	Events []websocket.Event
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(event websocket.Event) {
	m.Events = append(m.Events, event)
}
