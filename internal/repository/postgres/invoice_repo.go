package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// InvoiceRepository implements domain.InvoiceRepository using PostgreSQL
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

const invoiceColumns = `
	id, customer_id, invoice_number, issue_date, due_date,
	amount, paid_amount, currency, salesperson_id`

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var (
		inv      domain.Invoice
		amount   decimal.Decimal
		paid     decimal.Decimal
		currency string
	)
	err := row.Scan(&inv.ID, &inv.CustomerID, &inv.InvoiceNumber, &inv.IssueDate,
		&inv.DueDate, &amount, &paid, &currency, &inv.SalespersonID)
	if err != nil {
		return nil, err
	}
	inv.Amount = domain.NewMoney(amount, domain.Currency(currency))
	inv.PaidAmount = domain.NewMoney(paid, domain.Currency(currency))
	return &inv, nil
}

func (r *InvoiceRepository) query(ctx context.Context, where string, args ...any) ([]*domain.Invoice, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		`+where+`
		ORDER BY issue_date, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var out []*domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// GetAll retrieves all invoices, oldest issue date first
func (r *InvoiceRepository) GetAll() ([]*domain.Invoice, error) {
	return r.query(context.Background(), "")
}

// GetByCustomer retrieves one customer's invoices, oldest issue date first
func (r *InvoiceRepository) GetByCustomer(customerID string) ([]*domain.Invoice, error) {
	return r.query(context.Background(), "WHERE customer_id = $1", customerID)
}
