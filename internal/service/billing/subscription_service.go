// internal/service/billing/subscription_service.go
package billing

import (
	"context"
	"errors"
	"time"

	"github.com/sudipjangam/userfeast-manager/internal/cache"
	"github.com/sudipjangam/userfeast-manager/internal/domain/billing"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"

	"go.uber.org/zap"
)

// SubscriptionService is the subscription lifecycle engine. It is
// stateless between calls; every mutation is a single store call, so a
// failed call leaves the stored record exactly as it was.
type SubscriptionService struct {
	subRepo  billing.SubscriptionRepository
	planRepo billing.PlanRepository
	plans    *cache.PlanCache
	logger   *zap.Logger
	now      func() time.Time
}

func NewSubscriptionService(
	subRepo billing.SubscriptionRepository,
	planRepo billing.PlanRepository,
	plans *cache.PlanCache,
	logger *zap.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		subRepo:  subRepo,
		planRepo: planRepo,
		plans:    plans,
		logger:   logger,
		now:      time.Now,
	}
}

// GetOfferablePlans returns active plans ordered by price ascending,
// through the read-through cache when one is configured.
func (s *SubscriptionService) GetOfferablePlans(ctx context.Context) ([]billing.Plan, error) {
	if plans, ok := s.plans.Get(ctx); ok {
		return plans, nil
	}

	plans, err := s.planRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	s.plans.Set(ctx, plans)
	return plans, nil
}

// GetDisplayStatus derives the read-time subscription state of a
// restaurant. Absence of a row is a valid state, not an error.
func (s *SubscriptionService) GetDisplayStatus(ctx context.Context, restaurantID string) (billing.DisplayStatus, error) {
	sub, err := s.subRepo.FindByRestaurant(ctx, restaurantID)
	if errors.Is(err, xerrors.ErrNotFound) {
		return billing.DeriveStatus(nil, s.now()), nil
	}
	if err != nil {
		return billing.DisplayStatus{}, err
	}

	return billing.DeriveStatus(sub, s.now()), nil
}

// Subscribe puts the restaurant on the given plan for one fresh billing
// period starting now. The write is a single upsert keyed on the
// restaurant, so re-subscribing to a new plan or after expiry replaces
// the existing row without a separate existence check, and two
// concurrent calls can never produce two rows.
func (s *SubscriptionService) Subscribe(ctx context.Context, restaurantID, planID string) (*billing.Subscription, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if errors.Is(err, xerrors.ErrNotFound) {
		return nil, xerrors.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, xerrors.ErrPlanNotFound
	}

	now := s.now()
	sub := &billing.Subscription{
		RestaurantID:       restaurantID,
		PlanID:             plan.ID,
		Status:             billing.StatusActive,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   billing.NextPeriodEnd(now, plan.Interval),
		CancelAtPeriodEnd:  false,
	}

	if err := s.subRepo.Upsert(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("restaurant subscribed",
		zap.String("restaurant_id", restaurantID),
		zap.String("plan_id", plan.ID),
		zap.String("interval", string(plan.Interval)),
		zap.Time("period_end", sub.CurrentPeriodEnd),
	)

	return s.subRepo.FindByRestaurant(ctx, restaurantID)
}

// Cancel flags the restaurant's subscription to lapse at period end.
// The restaurant keeps access through the current period; the deriver
// reports it as pending cancellation until then.
func (s *SubscriptionService) Cancel(ctx context.Context, restaurantID string) error {
	err := s.subRepo.SetCancelAtPeriodEnd(ctx, restaurantID, true)
	if errors.Is(err, xerrors.ErrNotFound) {
		return xerrors.ErrNotSubscribed
	}
	if err != nil {
		return err
	}

	s.logger.Info("subscription cancellation scheduled",
		zap.String("restaurant_id", restaurantID),
	)
	return nil
}

// Reactivate clears a pending cancellation. This is a manual override
// and deliberately does not recompute the billing period: if the period
// has already lapsed the deriver keeps reporting Expired, and Renew is
// the path to a fresh period.
func (s *SubscriptionService) Reactivate(ctx context.Context, restaurantID string) error {
	err := s.subRepo.Reactivate(ctx, restaurantID)
	if errors.Is(err, xerrors.ErrNotFound) {
		return xerrors.ErrNotSubscribed
	}
	if err != nil {
		return err
	}

	s.logger.Info("subscription reactivated",
		zap.String("restaurant_id", restaurantID),
	)
	return nil
}

// Renew rolls the subscription onto the next billing period of its
// current plan. The new period starts where the old one ends, or now if
// the subscription already lapsed.
func (s *SubscriptionService) Renew(ctx context.Context, restaurantID string) (*billing.Subscription, error) {
	sub, err := s.subRepo.FindByRestaurant(ctx, restaurantID)
	if errors.Is(err, xerrors.ErrNotFound) {
		return nil, xerrors.ErrNotSubscribed
	}
	if err != nil {
		return nil, err
	}

	if sub.Plan == nil || !sub.Plan.IsActive {
		// A retired plan cannot be renewed onto; the console has to
		// re-subscribe the restaurant to a current plan instead.
		return nil, xerrors.ErrPlanNotFound
	}

	now := s.now()
	periodStart := sub.CurrentPeriodEnd
	if periodStart.Before(now) {
		periodStart = now
	}
	periodEnd := billing.NextPeriodEnd(periodStart, sub.Plan.Interval)

	if err := s.subRepo.UpdatePeriod(ctx, restaurantID, periodStart, periodEnd); err != nil {
		return nil, err
	}

	s.logger.Info("subscription renewed",
		zap.String("restaurant_id", restaurantID),
		zap.String("plan_id", sub.PlanID),
		zap.Time("period_start", periodStart),
		zap.Time("period_end", periodEnd),
	)

	return s.subRepo.FindByRestaurant(ctx, restaurantID)
}
