package memory

import (
	"sort"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// OrderRepository implements domain.OrderRepository.
type OrderRepository struct {
	store *Store
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// GetAll returns all orders, oldest creation first.
func (r *OrderRepository) GetAll() ([]*domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Order, 0, len(r.store.orders))
	for _, o := range r.store.orders {
		out = append(out, copyOrder(o))
	}
	sortOrders(out)
	return out, nil
}

// GetByCustomer returns one customer's orders, oldest creation first.
func (r *OrderRepository) GetByCustomer(customerID string) ([]*domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*domain.Order
	for _, o := range r.store.orders {
		if o.CustomerID == customerID {
			out = append(out, copyOrder(o))
		}
	}
	sortOrders(out)
	return out, nil
}

func sortOrders(orders []*domain.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID < orders[j].ID
		}
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
}
