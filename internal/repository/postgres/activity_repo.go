package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kamaops/salesops-backend/internal/domain"
)

// ActivityRepository implements domain.ActivityRepository using PostgreSQL
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

const activityColumns = `
	id, meeting_date, customer_id, activity_type, attendees, program, notes,
	outcome, location, brief_due_date, assigned_merchandizer, metal_wt,
	diamond_wt, brief_product_type, replenishment_skus, expected_po_date,
	store_name, city, leadership_member, created_at`

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var (
		a         domain.Activity
		briefType *string
	)
	err := row.Scan(&a.ID, &a.MeetingDate, &a.CustomerID, &a.ActivityType,
		&a.Attendees, &a.Program, &a.Notes, &a.Outcome, &a.Location,
		&a.BriefDueDate, &a.AssignedMerchandizer, &a.MetalWt, &a.DiamondWt,
		&briefType, &a.ReplenishmentSKUs, &a.ExpectedPODate,
		&a.StoreName, &a.City, &a.LeadershipMember, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	if briefType != nil {
		bt := domain.BriefProductType(*briefType)
		a.BriefProductType = &bt
	}
	return &a, nil
}

func activityArgs(a *domain.Activity) []any {
	var briefType *string
	if a.BriefProductType != nil {
		s := string(*a.BriefProductType)
		briefType = &s
	}
	return []any{
		a.ID, a.MeetingDate, a.CustomerID, string(a.ActivityType), a.Attendees,
		a.Program, a.Notes, a.Outcome, a.Location, a.BriefDueDate,
		a.AssignedMerchandizer, a.MetalWt, a.DiamondWt, briefType,
		a.ReplenishmentSKUs, a.ExpectedPODate, a.StoreName, a.City,
		a.LeadershipMember, a.CreatedAt,
	}
}

// GetAll retrieves activities matching the filters, newest first
func (r *ActivityRepository) GetAll(filters *domain.ActivityFilters) ([]*domain.Activity, error) {
	ctx := context.Background()

	query := `SELECT ` + activityColumns + ` FROM activities`
	var (
		where []string
		args  []any
	)
	if filters != nil && filters.CustomerID != nil {
		args = append(args, *filters.CustomerID)
		where = append(where, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if filters != nil && filters.ActivityType != nil {
		args = append(args, string(*filters.ActivityType))
		where = append(where, fmt.Sprintf("activity_type = $%d", len(args)))
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var out []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByID retrieves an activity by id
func (r *ActivityRepository) GetByID(id string) (*domain.Activity, error) {
	ctx := context.Background()
	a, err := scanActivity(r.pool.QueryRow(ctx, `
		SELECT `+activityColumns+`
		FROM activities
		WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return a, nil
}

// Create inserts a new activity, assigning its id and creation timestamp
func (r *ActivityRepository) Create(activity *domain.Activity) (*domain.Activity, error) {
	ctx := context.Background()

	stored := *activity
	stored.ID = uuid.New().String()
	stored.CreatedAt = time.Now().UTC()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO activities (`+activityColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		activityArgs(&stored)...)
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}
	return &stored, nil
}

// Update replaces an existing activity
func (r *ActivityRepository) Update(activity *domain.Activity) (*domain.Activity, error) {
	ctx := context.Background()

	cmd, err := r.pool.Exec(ctx, `
		UPDATE activities SET
			meeting_date = $2, customer_id = $3, activity_type = $4,
			attendees = $5, program = $6, notes = $7, outcome = $8,
			location = $9, brief_due_date = $10, assigned_merchandizer = $11,
			metal_wt = $12, diamond_wt = $13, brief_product_type = $14,
			replenishment_skus = $15, expected_po_date = $16, store_name = $17,
			city = $18, leadership_member = $19, created_at = $20
		WHERE id = $1`,
		activityArgs(activity)...)
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrActivityNotFound
	}
	return activity, nil
}

// Delete removes an activity
func (r *ActivityRepository) Delete(id string) error {
	ctx := context.Background()
	cmd, err := r.pool.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}
