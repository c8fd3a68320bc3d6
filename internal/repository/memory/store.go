// Package memory implements the repositories over one mutex-guarded
// in-process store. Every read hands back copies, so callers always work on
// an immutable snapshot and the metrics engine never sees live store state.
package memory

import (
	"sync"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// Store owns the ledger. All repositories share one Store.
type Store struct {
	mu sync.RWMutex

	salespeople map[string]*domain.Salesperson
	customers   map[string]*domain.Customer
	orders      map[string]*domain.Order
	invoices    map[string]*domain.Invoice
	activities  map[string]*domain.Activity
	projections map[string]*domain.Projection // keyed by customer id
	stock       map[string]*domain.FGStock
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		salespeople: make(map[string]*domain.Salesperson),
		customers:   make(map[string]*domain.Customer),
		orders:      make(map[string]*domain.Order),
		invoices:    make(map[string]*domain.Invoice),
		activities:  make(map[string]*domain.Activity),
		projections: make(map[string]*domain.Projection),
		stock:       make(map[string]*domain.FGStock),
	}
}

func copyStrPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copySalesperson(sp *domain.Salesperson) *domain.Salesperson {
	c := *sp
	return &c
}

func copyCustomer(c *domain.Customer) *domain.Customer {
	cp := *c
	if c.PreviousYearSales != nil {
		m := *c.PreviousYearSales
		cp.PreviousYearSales = &m
	}
	return &cp
}

func copyOrder(o *domain.Order) *domain.Order {
	c := *o
	return &c
}

func copyInvoice(i *domain.Invoice) *domain.Invoice {
	c := *i
	return &c
}

func copyActivity(a *domain.Activity) *domain.Activity {
	c := *a
	c.Attendees = copyStrPtr(a.Attendees)
	c.Program = copyStrPtr(a.Program)
	c.Notes = copyStrPtr(a.Notes)
	c.Outcome = copyStrPtr(a.Outcome)
	c.Location = copyStrPtr(a.Location)
	c.AssignedMerchandizer = copyStrPtr(a.AssignedMerchandizer)
	c.MetalWt = copyStrPtr(a.MetalWt)
	c.DiamondWt = copyStrPtr(a.DiamondWt)
	c.ReplenishmentSKUs = copyStrPtr(a.ReplenishmentSKUs)
	c.StoreName = copyStrPtr(a.StoreName)
	c.City = copyStrPtr(a.City)
	c.LeadershipMember = copyStrPtr(a.LeadershipMember)
	if a.BriefDueDate != nil {
		t := *a.BriefDueDate
		c.BriefDueDate = &t
	}
	if a.ExpectedPODate != nil {
		t := *a.ExpectedPODate
		c.ExpectedPODate = &t
	}
	if a.BriefProductType != nil {
		bt := *a.BriefProductType
		c.BriefProductType = &bt
	}
	return &c
}

func copyProjection(p *domain.Projection) *domain.Projection {
	c := *p
	if p.MonthlyBookingTargets != nil {
		c.MonthlyBookingTargets = make(map[domain.FiscalMonth]domain.Money, len(p.MonthlyBookingTargets))
		for k, v := range p.MonthlyBookingTargets {
			c.MonthlyBookingTargets[k] = v
		}
	}
	return &c
}

func copyStock(s *domain.FGStock) *domain.FGStock {
	c := *s
	return &c
}

// AddSalesperson inserts a salesperson (seed helper).
func (s *Store) AddSalesperson(sp *domain.Salesperson) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.salespeople[sp.ID] = copySalesperson(sp)
}

// AddCustomer inserts a customer (seed helper).
func (s *Store) AddCustomer(c *domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = copyCustomer(c)
}

// AddOrder inserts an order (seed helper).
func (s *Store) AddOrder(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = copyOrder(o)
}

// AddInvoice inserts an invoice (seed helper).
func (s *Store) AddInvoice(i *domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices[i.ID] = copyInvoice(i)
}

// AddActivity inserts an activity (seed helper).
func (s *Store) AddActivity(a *domain.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities[a.ID] = copyActivity(a)
}

// AddProjection inserts a projection (seed helper).
func (s *Store) AddProjection(p *domain.Projection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projections[p.CustomerID] = copyProjection(p)
}

// AddStock inserts a finished-goods piece (seed helper).
func (s *Store) AddStock(fg *domain.FGStock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[fg.ID] = copyStock(fg)
}
