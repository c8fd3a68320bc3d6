package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// OrderRepository implements domain.OrderRepository using PostgreSQL
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const orderColumns = `
	id, customer_id, po_number, value, value_currency, promise_date,
	status, created_at, salesperson_id`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o        domain.Order
		amount   decimal.Decimal
		currency string
	)
	err := row.Scan(&o.ID, &o.CustomerID, &o.PONumber, &amount, &currency,
		&o.PromiseDate, &o.Status, &o.CreatedAt, &o.SalespersonID)
	if err != nil {
		return nil, err
	}
	o.Value = domain.NewMoney(amount, domain.Currency(currency))
	return &o, nil
}

func (r *OrderRepository) query(ctx context.Context, where string, args ...any) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		`+where+`
		ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// GetAll retrieves all orders, oldest first
func (r *OrderRepository) GetAll() ([]*domain.Order, error) {
	return r.query(context.Background(), "")
}

// GetByCustomer retrieves one customer's orders, oldest first
func (r *OrderRepository) GetByCustomer(customerID string) ([]*domain.Order, error) {
	return r.query(context.Background(), "WHERE customer_id = $1", customerID)
}
