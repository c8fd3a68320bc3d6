package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// ProjectionRepository implements domain.ProjectionRepository using
// PostgreSQL. Monthly booking targets live in a jsonb column keyed by fiscal
// month label; labels are validated on every read so a bad row surfaces as an
// error instead of a silent lookup miss.
type ProjectionRepository struct {
	pool *pgxpool.Pool
}

// NewProjectionRepository creates a new ProjectionRepository
func NewProjectionRepository(pool *pgxpool.Pool) *ProjectionRepository {
	return &ProjectionRepository{pool: pool}
}

const projectionColumns = `customer_id, ytd_amount, ytd_currency, monthly_targets`

func scanProjection(row pgx.Row) (*domain.Projection, error) {
	var (
		p          domain.Projection
		ytd        decimal.Decimal
		currency   string
		targetsRaw []byte
	)
	if err := row.Scan(&p.CustomerID, &ytd, &currency, &targetsRaw); err != nil {
		return nil, err
	}
	p.YTD = domain.NewMoney(ytd, domain.Currency(currency))
	if len(targetsRaw) > 0 {
		var raw map[string]domain.Money
		if err := json.Unmarshal(targetsRaw, &raw); err != nil {
			return nil, fmt.Errorf("decode monthly targets: %w", err)
		}
		targets, err := domain.NewMonthlyTargets(raw)
		if err != nil {
			return nil, fmt.Errorf("monthly targets for %s: %w", p.CustomerID, err)
		}
		p.MonthlyBookingTargets = targets
	}
	return &p, nil
}

// GetAll retrieves all projections ordered by customer id
func (r *ProjectionRepository) GetAll() ([]*domain.Projection, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+projectionColumns+`
		FROM projections
		ORDER BY customer_id`)
	if err != nil {
		return nil, fmt.Errorf("list projections: %w", err)
	}
	defer rows.Close()

	var out []*domain.Projection
	for rows.Next() {
		p, err := scanProjection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan projection: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByCustomer retrieves the projection for one customer
func (r *ProjectionRepository) GetByCustomer(customerID string) (*domain.Projection, error) {
	ctx := context.Background()
	p, err := scanProjection(r.pool.QueryRow(ctx, `
		SELECT `+projectionColumns+`
		FROM projections
		WHERE customer_id = $1`, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectionNotFound
		}
		return nil, fmt.Errorf("get projection: %w", err)
	}
	return p, nil
}

// UpsertYTD sets a customer's annual target, creating the projection row on
// first edit
func (r *ProjectionRepository) UpsertYTD(customerID string, ytd domain.Money) (*domain.Projection, error) {
	ctx := context.Background()
	p, err := scanProjection(r.pool.QueryRow(ctx, `
		INSERT INTO projections (customer_id, ytd_amount, ytd_currency)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id)
		DO UPDATE SET ytd_amount = EXCLUDED.ytd_amount, ytd_currency = EXCLUDED.ytd_currency
		RETURNING `+projectionColumns,
		customerID, ytd.Amount, string(ytd.Currency)))
	if err != nil {
		return nil, fmt.Errorf("upsert annual target: %w", err)
	}
	return p, nil
}

// UpsertMonthlyTargets replaces a customer's per-month booking targets,
// creating the projection row on first edit
func (r *ProjectionRepository) UpsertMonthlyTargets(customerID string, targets map[domain.FiscalMonth]domain.Money) (*domain.Projection, error) {
	ctx := context.Background()

	encoded, err := json.Marshal(targets)
	if err != nil {
		return nil, fmt.Errorf("encode monthly targets: %w", err)
	}

	p, err := scanProjection(r.pool.QueryRow(ctx, `
		INSERT INTO projections (customer_id, ytd_amount, ytd_currency, monthly_targets)
		VALUES ($1, 0, $2, $3)
		ON CONFLICT (customer_id)
		DO UPDATE SET monthly_targets = EXCLUDED.monthly_targets
		RETURNING `+projectionColumns,
		customerID, string(domain.ReportingCurrency), encoded))
	if err != nil {
		return nil, fmt.Errorf("upsert monthly targets: %w", err)
	}
	return p, nil
}
