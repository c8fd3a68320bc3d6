package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// CustomerRepository implements domain.CustomerRepository using PostgreSQL
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

const customerColumns = `
	id, name, region, currency, payment_terms, salesperson_id,
	previous_year_sales, previous_year_sales_currency`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var (
		c            domain.Customer
		prevAmount   *decimal.Decimal
		prevCurrency *string
	)
	err := row.Scan(&c.ID, &c.Name, &c.Region, &c.Currency, &c.PaymentTerms,
		&c.SalespersonID, &prevAmount, &prevCurrency)
	if err != nil {
		return nil, err
	}
	if prevAmount != nil && prevCurrency != nil {
		m := domain.NewMoney(*prevAmount, domain.Currency(*prevCurrency))
		c.PreviousYearSales = &m
	}
	return &c, nil
}

// GetAll retrieves all customers ordered by name
func (r *CustomerRepository) GetAll() ([]*domain.Customer, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []*domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID retrieves a customer by id
func (r *CustomerRepository) GetByID(id string) (*domain.Customer, error) {
	ctx := context.Background()
	c, err := scanCustomer(r.pool.QueryRow(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// UpdateAssignment moves a customer to another salesperson
func (r *CustomerRepository) UpdateAssignment(customerID, salespersonID string) (*domain.Customer, error) {
	ctx := context.Background()
	c, err := scanCustomer(r.pool.QueryRow(ctx, `
		UPDATE customers
		SET salesperson_id = $2
		WHERE id = $1
		RETURNING `+customerColumns, customerID, salespersonID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("reassign customer: %w", err)
	}
	return c, nil
}
