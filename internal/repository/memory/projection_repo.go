package memory

import (
	"sort"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// ProjectionRepository implements domain.ProjectionRepository.
type ProjectionRepository struct {
	store *Store
}

// NewProjectionRepository creates a new ProjectionRepository.
func NewProjectionRepository(store *Store) *ProjectionRepository {
	return &ProjectionRepository{store: store}
}

// GetAll returns all projections ordered by customer id.
func (r *ProjectionRepository) GetAll() ([]*domain.Projection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Projection, 0, len(r.store.projections))
	for _, p := range r.store.projections {
		out = append(out, copyProjection(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out, nil
}

// GetByCustomer returns the projection for one customer.
func (r *ProjectionRepository) GetByCustomer(customerID string) (*domain.Projection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.projections[customerID]
	if !ok {
		return nil, domain.ErrProjectionNotFound
	}
	return copyProjection(p), nil
}

// UpsertYTD sets a customer's annual target, creating the projection on first
// edit.
func (r *ProjectionRepository) UpsertYTD(customerID string, ytd domain.Money) (*domain.Projection, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.projections[customerID]
	if !ok {
		p = &domain.Projection{CustomerID: customerID}
		r.store.projections[customerID] = p
	}
	p.YTD = ytd
	return copyProjection(p), nil
}

// UpsertMonthlyTargets replaces a customer's per-month booking targets,
// creating the projection on first edit. A projection created this way has a
// zero annual target until one is set.
func (r *ProjectionRepository) UpsertMonthlyTargets(customerID string, targets map[domain.FiscalMonth]domain.Money) (*domain.Projection, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.projections[customerID]
	if !ok {
		p = &domain.Projection{CustomerID: customerID}
		r.store.projections[customerID] = p
	}
	copied := make(map[domain.FiscalMonth]domain.Money, len(targets))
	for month, amount := range targets {
		copied[month] = amount
	}
	p.MonthlyBookingTargets = copied
	return copyProjection(p), nil
}
