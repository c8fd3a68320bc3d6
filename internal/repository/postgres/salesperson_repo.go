package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// SalespersonRepository implements domain.SalespersonRepository using PostgreSQL
type SalespersonRepository struct {
	pool *pgxpool.Pool
}

// NewSalespersonRepository creates a new SalespersonRepository
func NewSalespersonRepository(pool *pgxpool.Pool) *SalespersonRepository {
	return &SalespersonRepository{pool: pool}
}

// GetAll retrieves all salespeople ordered by name
func (r *SalespersonRepository) GetAll() ([]*domain.Salesperson, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email
		FROM salespeople
		ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list salespeople: %w", err)
	}
	defer rows.Close()

	var out []*domain.Salesperson
	for rows.Next() {
		var sp domain.Salesperson
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Email); err != nil {
			return nil, fmt.Errorf("scan salesperson: %w", err)
		}
		out = append(out, &sp)
	}
	return out, rows.Err()
}

// GetByID retrieves a salesperson by id
func (r *SalespersonRepository) GetByID(id string) (*domain.Salesperson, error) {
	ctx := context.Background()
	var sp domain.Salesperson
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email
		FROM salespeople
		WHERE id = $1`, id).Scan(&sp.ID, &sp.Name, &sp.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSalespersonNotFound
		}
		return nil, fmt.Errorf("get salesperson: %w", err)
	}
	return &sp, nil
}
