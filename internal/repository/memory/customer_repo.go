package memory

import (
	"sort"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// CustomerRepository implements domain.CustomerRepository.
type CustomerRepository struct {
	store *Store
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

// GetAll returns all customers sorted by name.
func (r *CustomerRepository) GetAll() ([]*domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Customer, 0, len(r.store.customers))
	for _, c := range r.store.customers {
		out = append(out, copyCustomer(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetByID returns one customer.
func (r *CustomerRepository) GetByID(id string) (*domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return copyCustomer(c), nil
}

// UpdateAssignment moves the customer to another salesperson's book.
func (r *CustomerRepository) UpdateAssignment(customerID, salespersonID string) (*domain.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.customers[customerID]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	c.SalespersonID = salespersonID
	return copyCustomer(c), nil
}
