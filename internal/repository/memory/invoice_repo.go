package memory

import (
	"sort"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// InvoiceRepository implements domain.InvoiceRepository.
type InvoiceRepository struct {
	store *Store
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(store *Store) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

// GetAll returns all invoices, oldest issue date first.
func (r *InvoiceRepository) GetAll() ([]*domain.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Invoice, 0, len(r.store.invoices))
	for _, i := range r.store.invoices {
		out = append(out, copyInvoice(i))
	}
	sortInvoices(out)
	return out, nil
}

// GetByCustomer returns one customer's invoices, oldest issue date first.
func (r *InvoiceRepository) GetByCustomer(customerID string) ([]*domain.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*domain.Invoice
	for _, i := range r.store.invoices {
		if i.CustomerID == customerID {
			out = append(out, copyInvoice(i))
		}
	}
	sortInvoices(out)
	return out, nil
}

func sortInvoices(invoices []*domain.Invoice) {
	sort.Slice(invoices, func(i, j int) bool {
		if invoices[i].IssueDate.Equal(invoices[j].IssueDate) {
			return invoices[i].ID < invoices[j].ID
		}
		return invoices[i].IssueDate.Before(invoices[j].IssueDate)
	})
}
