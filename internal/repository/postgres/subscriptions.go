// internal/repository/postgres/subscriptions.go
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

type SubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// FindByRestaurant retrieves the subscription for a restaurant joined
// with its plan. Returns xerrors.ErrNotFound when no row exists.
func (r *SubscriptionRepository) FindByRestaurant(ctx context.Context, restaurantID string) (*billing.Subscription, error) {
	query := `
		SELECT s.id, s.restaurant_id, s.plan_id, s.status,
		       s.current_period_start, s.current_period_end, s.cancel_at_period_end,
		       s.created_at, s.updated_at,
		       p.id, p.name, p.description, p.price, p.interval, p.features, p.is_active,
		       p.created_at, p.updated_at
		FROM restaurant_subscriptions s
		JOIN subscription_plans p ON p.id = s.plan_id
		WHERE s.restaurant_id = $1
	`

	var sub billing.Subscription
	var plan billing.Plan
	var featuresJSON []byte

	err := r.db.QueryRow(ctx, query, restaurantID).Scan(
		&sub.ID, &sub.RestaurantID, &sub.PlanID, &sub.Status,
		&sub.CurrentPeriodStart, &sub.CurrentPeriodEnd, &sub.CancelAtPeriodEnd,
		&sub.CreatedAt, &sub.UpdatedAt,
		&plan.ID, &plan.Name, &plan.Description, &plan.Price, &plan.Interval,
		&featuresJSON, &plan.IsActive, &plan.CreatedAt, &plan.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	if len(featuresJSON) > 0 {
		if err := json.Unmarshal(featuresJSON, &plan.Features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal features: %w", err)
		}
	}
	sub.Plan = &plan

	return &sub, nil
}

// Upsert inserts the subscription or replaces the existing row for the
// same restaurant. The unique constraint on restaurant_id is the only
// concurrency guard needed: concurrent upserts for one restaurant
// resolve last-write-wins on the key, never leaving two rows. The row
// id and created_at survive a replace.
func (r *SubscriptionRepository) Upsert(ctx context.Context, sub *billing.Subscription) error {
	query := `
		INSERT INTO restaurant_subscriptions (
			id, restaurant_id, plan_id, status,
			current_period_start, current_period_end, cancel_at_period_end
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (restaurant_id) DO UPDATE SET
			plan_id              = EXCLUDED.plan_id,
			status               = EXCLUDED.status,
			current_period_start = EXCLUDED.current_period_start,
			current_period_end   = EXCLUDED.current_period_end,
			cancel_at_period_end = EXCLUDED.cancel_at_period_end,
			updated_at           = NOW()
		RETURNING id, created_at, updated_at
	`

	if sub.ID == "" {
		sub.ID = ulid.Make().String()
	}

	err := r.db.QueryRow(
		ctx, query,
		sub.ID, sub.RestaurantID, sub.PlanID, sub.Status,
		sub.CurrentPeriodStart, sub.CurrentPeriodEnd, sub.CancelAtPeriodEnd,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	return nil
}

// SetCancelAtPeriodEnd flips the cancellation flag. The status column is
// left untouched: a cancelled-but-not-lapsed subscription stays active
// until its period end.
func (r *SubscriptionRepository) SetCancelAtPeriodEnd(ctx context.Context, restaurantID string, cancel bool) error {
	query := `
		UPDATE restaurant_subscriptions
		SET cancel_at_period_end = $1, updated_at = $2
		WHERE restaurant_id = $3
	`

	result, err := r.db.Exec(ctx, query, cancel, time.Now(), restaurantID)
	if err != nil {
		return fmt.Errorf("failed to update cancellation flag: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// Reactivate clears the cancellation flag and forces status back to
// active. The billing period is deliberately not recomputed.
func (r *SubscriptionRepository) Reactivate(ctx context.Context, restaurantID string) error {
	query := `
		UPDATE restaurant_subscriptions
		SET status = $1, cancel_at_period_end = FALSE, updated_at = $2
		WHERE restaurant_id = $3
	`

	result, err := r.db.Exec(ctx, query, billing.StatusActive, time.Now(), restaurantID)
	if err != nil {
		return fmt.Errorf("failed to reactivate subscription: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// UpdatePeriod rolls the row onto a new billing period.
func (r *SubscriptionRepository) UpdatePeriod(ctx context.Context, restaurantID string, periodStart, periodEnd time.Time) error {
	query := `
		UPDATE restaurant_subscriptions
		SET status = $1, current_period_start = $2, current_period_end = $3,
		    cancel_at_period_end = FALSE, updated_at = $4
		WHERE restaurant_id = $5
	`

	result, err := r.db.Exec(ctx, query, billing.StatusActive, periodStart, periodEnd, time.Now(), restaurantID)
	if err != nil {
		return fmt.Errorf("failed to update billing period: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
