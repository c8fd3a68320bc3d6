package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// FGStockRepository implements domain.FGStockRepository using PostgreSQL
type FGStockRepository struct {
	pool *pgxpool.Pool
}

// NewFGStockRepository creates a new FGStockRepository
func NewFGStockRepository(pool *pgxpool.Pool) *FGStockRepository {
	return &FGStockRepository{pool: pool}
}

const stockColumns = `id, customer_id, sku, value, value_currency, ready_since`

func scanStock(row pgx.Row) (*domain.FGStock, error) {
	var (
		s        domain.FGStock
		amount   decimal.Decimal
		currency string
	)
	err := row.Scan(&s.ID, &s.CustomerID, &s.SKU, &amount, &currency, &s.ReadySince)
	if err != nil {
		return nil, err
	}
	s.Value = domain.NewMoney(amount, domain.Currency(currency))
	return &s, nil
}

func (r *FGStockRepository) query(ctx context.Context, where string, args ...any) ([]*domain.FGStock, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+stockColumns+`
		FROM fg_stock
		`+where+`
		ORDER BY ready_since, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list fg stock: %w", err)
	}
	defer rows.Close()

	var out []*domain.FGStock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fg stock: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetAll retrieves all finished-goods stock, oldest ready date first
func (r *FGStockRepository) GetAll() ([]*domain.FGStock, error) {
	return r.query(context.Background(), "")
}

// GetByCustomer retrieves one customer's finished-goods stock, oldest first
func (r *FGStockRepository) GetByCustomer(customerID string) ([]*domain.FGStock, error) {
	return r.query(context.Background(), "WHERE customer_id = $1", customerID)
}
