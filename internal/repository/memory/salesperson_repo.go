package memory

import (
	"sort"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// SalespersonRepository implements domain.SalespersonRepository.
type SalespersonRepository struct {
	store *Store
}

// NewSalespersonRepository creates a new SalespersonRepository.
func NewSalespersonRepository(store *Store) *SalespersonRepository {
	return &SalespersonRepository{store: store}
}

// GetAll returns all salespeople sorted by name.
func (r *SalespersonRepository) GetAll() ([]*domain.Salesperson, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Salesperson, 0, len(r.store.salespeople))
	for _, sp := range r.store.salespeople {
		out = append(out, copySalesperson(sp))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetByID returns one salesperson.
func (r *SalespersonRepository) GetByID(id string) (*domain.Salesperson, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sp, ok := r.store.salespeople[id]
	if !ok {
		return nil, domain.ErrSalespersonNotFound
	}
	return copySalesperson(sp), nil
}
