package memory

import (
	"sort"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// FGStockRepository implements domain.FGStockRepository.
type FGStockRepository struct {
	store *Store
}

// NewFGStockRepository creates a new FGStockRepository.
func NewFGStockRepository(store *Store) *FGStockRepository {
	return &FGStockRepository{store: store}
}

// GetAll returns all finished-goods stock, oldest ready date first.
func (r *FGStockRepository) GetAll() ([]*domain.FGStock, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.FGStock, 0, len(r.store.stock))
	for _, s := range r.store.stock {
		out = append(out, copyStock(s))
	}
	sortStock(out)
	return out, nil
}

// GetByCustomer returns one customer's finished-goods stock, oldest first.
func (r *FGStockRepository) GetByCustomer(customerID string) ([]*domain.FGStock, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*domain.FGStock
	for _, s := range r.store.stock {
		if s.CustomerID == customerID {
			out = append(out, copyStock(s))
		}
	}
	sortStock(out)
	return out, nil
}

func sortStock(stock []*domain.FGStock) {
	sort.Slice(stock, func(i, j int) bool {
		if stock[i].ReadySince.Equal(stock[j].ReadySince) {
			return stock[i].ID < stock[j].ID
		}
		return stock[i].ReadySince.Before(stock[j].ReadySince)
	})
}
