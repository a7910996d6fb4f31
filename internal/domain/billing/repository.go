// internal/domain/billing/repository.go
package billing

import (
	"context"
	"time"
)

// PlanRepository is the persistence contract for subscription plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	FindByID(ctx context.Context, id string) (*Plan, error)
	// ListActive returns offerable plans ordered by price ascending.
	ListActive(ctx context.Context) ([]Plan, error)
	Update(ctx context.Context, id string, plan *Plan) error
	SetActive(ctx context.Context, id string, active bool) error
}

// SubscriptionRepository is the persistence contract for restaurant
// subscriptions. Implementations must enforce at most one row per
// restaurant (unique constraint on restaurant_id).
type SubscriptionRepository interface {
	// FindByRestaurant returns the subscription joined with its plan,
	// or xerrors.ErrNotFound when the restaurant has no row.
	FindByRestaurant(ctx context.Context, restaurantID string) (*Subscription, error)

	// Upsert inserts the subscription, or fully replaces the mutable
	// fields of the existing row for the same restaurant. The stored
	// row id and created_at survive a replace; sub is refreshed with
	// the persisted values.
	Upsert(ctx context.Context, sub *Subscription) error

	// SetCancelAtPeriodEnd flips the cancellation flag of the
	// restaurant's row. Returns xerrors.ErrNotFound when no row exists.
	SetCancelAtPeriodEnd(ctx context.Context, restaurantID string, cancel bool) error

	// Reactivate clears the cancellation flag and forces status back to
	// active. Returns xerrors.ErrNotFound when no row exists.
	Reactivate(ctx context.Context, restaurantID string) error

	// UpdatePeriod rolls the restaurant's row onto a new billing
	// period, clearing the cancellation flag and forcing status to
	// active. Returns xerrors.ErrNotFound when no row exists.
	UpdatePeriod(ctx context.Context, restaurantID string, periodStart, periodEnd time.Time) error
}
