// internal/testutil/inmemory_subscription_store.go
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/sudipjangam/userfeast-manager/internal/domain/billing"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
)

// InMemorySubscriptionStore implements billing.SubscriptionRepository
// for tests. Rows are keyed by restaurant id, which mirrors the unique
// constraint the real store enforces: an upsert can never produce a
// second row for the same restaurant.
type InMemorySubscriptionStore struct {
	mu   sync.RWMutex
	rows map[string]*billing.Subscription // keyed by restaurant id

	plans *InMemoryPlanStore
}

func NewInMemorySubscriptionStore(plans *InMemoryPlanStore) *InMemorySubscriptionStore {
	return &InMemorySubscriptionStore{
		rows:  make(map[string]*billing.Subscription),
		plans: plans,
	}
}

func copySubscription(sub *billing.Subscription) *billing.Subscription {
	if sub == nil {
		return nil
	}
	copied := *sub
	copied.Plan = copyPlan(sub.Plan)
	return &copied
}

func (s *InMemorySubscriptionStore) FindByRestaurant(ctx context.Context, restaurantID string) (*billing.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.rows[restaurantID]
	if !ok {
		return nil, xerrors.ErrNotFound
	}

	out := copySubscription(sub)
	if plan, err := s.plans.FindByID(ctx, sub.PlanID); err == nil {
		out.Plan = plan
	}
	return out, nil
}

func (s *InMemorySubscriptionStore) Upsert(_ context.Context, sub *billing.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if existing, ok := s.rows[sub.RestaurantID]; ok {
		// Full field replacement, but the row identity survives.
		sub.ID = existing.ID
		sub.CreatedAt = existing.CreatedAt
	} else {
		if sub.ID == "" {
			sub.ID = ulid.Make().String()
		}
		sub.CreatedAt = now
	}
	sub.UpdatedAt = now

	s.rows[sub.RestaurantID] = copySubscription(sub)
	return nil
}

func (s *InMemorySubscriptionStore) SetCancelAtPeriodEnd(_ context.Context, restaurantID string, cancel bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.rows[restaurantID]
	if !ok {
		return xerrors.ErrNotFound
	}
	sub.CancelAtPeriodEnd = cancel
	sub.UpdatedAt = time.Now()
	return nil
}

func (s *InMemorySubscriptionStore) Reactivate(_ context.Context, restaurantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.rows[restaurantID]
	if !ok {
		return xerrors.ErrNotFound
	}
	sub.Status = billing.StatusActive
	sub.CancelAtPeriodEnd = false
	sub.UpdatedAt = time.Now()
	return nil
}

func (s *InMemorySubscriptionStore) UpdatePeriod(_ context.Context, restaurantID string, periodStart, periodEnd time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.rows[restaurantID]
	if !ok {
		return xerrors.ErrNotFound
	}
	sub.Status = billing.StatusActive
	sub.CurrentPeriodStart = periodStart
	sub.CurrentPeriodEnd = periodEnd
	sub.CancelAtPeriodEnd = false
	sub.UpdatedAt = time.Now()
	return nil
}

// Count reports how many rows exist; used to assert the one-row-per-
// restaurant invariant.
func (s *InMemorySubscriptionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}
