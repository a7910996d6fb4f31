// internal/repository/postgres/plans.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sudipjangam/userfeast-manager/internal/domain/billing"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

type PlanRepository struct {
	db *pgxpool.Pool
}

func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create creates a new subscription plan
func (r *PlanRepository) Create(ctx context.Context, plan *billing.Plan) error {
	query := `
		INSERT INTO subscription_plans (id, name, description, price, interval, features, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	if plan.ID == "" {
		plan.ID = ulid.Make().String()
	}

	featuresJSON, err := json.Marshal(plan.Features)
	if err != nil {
		return fmt.Errorf("failed to marshal features: %w", err)
	}

	err = r.db.QueryRow(
		ctx, query,
		plan.ID, plan.Name, plan.Description, plan.Price, plan.Interval, featuresJSON, plan.IsActive,
	).Scan(&plan.CreatedAt, &plan.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	return nil
}

// FindByID retrieves a plan by ID
func (r *PlanRepository) FindByID(ctx context.Context, id string) (*billing.Plan, error) {
	query := `
		SELECT id, name, description, price, interval, features, is_active, created_at, updated_at
		FROM subscription_plans
		WHERE id = $1
	`

	var plan billing.Plan
	var featuresJSON []byte

	err := r.db.QueryRow(ctx, query, id).Scan(
		&plan.ID, &plan.Name, &plan.Description, &plan.Price, &plan.Interval,
		&featuresJSON, &plan.IsActive, &plan.CreatedAt, &plan.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	if len(featuresJSON) > 0 {
		if err := json.Unmarshal(featuresJSON, &plan.Features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal features: %w", err)
		}
	}

	return &plan, nil
}

// ListActive retrieves offerable plans ordered by price ascending
func (r *PlanRepository) ListActive(ctx context.Context) ([]billing.Plan, error) {
	query := `
		SELECT id, name, description, price, interval, features, is_active, created_at, updated_at
		FROM subscription_plans
		WHERE is_active = TRUE
		ORDER BY price ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	plans := []billing.Plan{}
	for rows.Next() {
		var plan billing.Plan
		var featuresJSON []byte

		err := rows.Scan(
			&plan.ID, &plan.Name, &plan.Description, &plan.Price, &plan.Interval,
			&featuresJSON, &plan.IsActive, &plan.CreatedAt, &plan.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}

		if len(featuresJSON) > 0 {
			if err := json.Unmarshal(featuresJSON, &plan.Features); err != nil {
				return nil, fmt.Errorf("failed to unmarshal features: %w", err)
			}
		}

		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

// Update updates a plan
func (r *PlanRepository) Update(ctx context.Context, id string, plan *billing.Plan) error {
	query := `
		UPDATE subscription_plans
		SET name = $1, description = $2, price = $3, interval = $4, features = $5, updated_at = $6
		WHERE id = $7
	`

	featuresJSON, err := json.Marshal(plan.Features)
	if err != nil {
		return fmt.Errorf("failed to marshal features: %w", err)
	}

	result, err := r.db.Exec(
		ctx, query,
		plan.Name, plan.Description, plan.Price, plan.Interval, featuresJSON, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// SetActive toggles whether a plan is offerable
func (r *PlanRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE subscription_plans SET is_active = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update plan active flag: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
