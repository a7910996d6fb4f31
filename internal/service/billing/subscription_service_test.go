// internal/service/billing/subscription_service_test.go
package billing

import (
	"context"
	"testing"
	"time"

	"github.com/sudipjangam/userfeast-manager/internal/domain/billing"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"
	"github.com/sudipjangam/userfeast-manager/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type SubscriptionServiceSuite struct {
	suite.Suite

	planStore *testutil.InMemoryPlanStore
	subStore  *testutil.InMemorySubscriptionStore
	service   *SubscriptionService

	now time.Time
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceSuite))
}

func (s *SubscriptionServiceSuite) SetupTest() {
	s.planStore = testutil.NewInMemoryPlanStore()
	s.subStore = testutil.NewInMemorySubscriptionStore(s.planStore)
	s.now = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

	s.service = NewSubscriptionService(s.subStore, s.planStore, nil, zap.NewNop())
	s.service.now = func() time.Time { return s.now }
}

func (s *SubscriptionServiceSuite) seedPlan(id, name string, price int64, interval billing.PlanInterval, active bool) *billing.Plan {
	plan := &billing.Plan{
		ID:       id,
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Interval: interval,
		Features: []string{"menu management", "reporting"},
		IsActive: active,
	}
	s.Require().NoError(s.planStore.Create(context.Background(), plan))
	return plan
}

func (s *SubscriptionServiceSuite) TestGetOfferablePlans() {
	s.seedPlan("plan_premium", "Premium", 999, billing.IntervalMonthly, true)
	s.seedPlan("plan_basic", "Basic", 499, billing.IntervalMonthly, true)
	s.seedPlan("plan_retired", "Retired", 99, billing.IntervalMonthly, false)

	plans, err := s.service.GetOfferablePlans(context.Background())
	s.NoError(err)
	s.Len(plans, 2)
	// Ordered by price ascending, retired plan excluded.
	s.Equal("plan_basic", plans[0].ID)
	s.Equal("plan_premium", plans[1].ID)
}

func (s *SubscriptionServiceSuite) TestSubscribe() {
	s.seedPlan("plan_basic", "Basic", 499, billing.IntervalMonthly, true)

	sub, err := s.service.Subscribe(context.Background(), "rest_1", "plan_basic")
	s.NoError(err)
	s.Require().NotNil(sub)
	s.Equal("rest_1", sub.RestaurantID)
	s.Equal("plan_basic", sub.PlanID)
	s.Equal(billing.StatusActive, sub.Status)
	s.False(sub.CancelAtPeriodEnd)
	s.True(sub.CurrentPeriodStart.Equal(s.now))
	s.True(sub.CurrentPeriodEnd.Equal(time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)))
	s.Require().NotNil(sub.Plan)
	s.Equal("Basic", sub.Plan.Name)
}

func (s *SubscriptionServiceSuite) TestSubscribeTwiceKeepsOneRow() {
	s.seedPlan("plan_basic", "Basic", 499, billing.IntervalMonthly, true)
	s.seedPlan("plan_premium", "Premium", 999, billing.IntervalYearly, true)

	first, err := s.service.Subscribe(context.Background(), "rest_1", "plan_basic")
	s.Require().NoError(err)

	s.now = s.now.Add(48 * time.Hour)

	second, err := s.service.Subscribe(context.Background(), "rest_1", "plan_premium")
	s.Require().NoError(err)

	s.Equal(1, s.subStore.Count())
	s.Equal(first.ID, second.ID, "row identity survives re-subscribe")
	s.Equal("plan_premium", second.PlanID)
	s.True(second.CurrentPeriodStart.Equal(s.now), "second call's period wins")
	s.True(second.CurrentPeriodEnd.Equal(time.Date(2025, time.January, 17, 10, 0, 0, 0, time.UTC)))
}

func (s *SubscriptionServiceSuite) TestSubscribeUnknownPlan() {
	_, err := s.service.Subscribe(context.Background(), "rest_1", "plan_missing")
	s.ErrorIs(err, xerrors.ErrPlanNotFound)
}

func (s *SubscriptionServiceSuite) TestSubscribeInactivePlanLeavesRowUntouched() {
	s.seedPlan("plan_basic", "Basic", 499, billing.IntervalMonthly, true)
	s.seedPlan("plan_retired", "Retired", 99, billing.IntervalMonthly, false)

	before, err := s.service.Subscribe(context.Background(), "rest_1", "plan_basic")
	s.Require().NoError(err)

	_, err = s.service.Subscribe(context.Background(), "rest_1", "plan_retired")
	s.ErrorIs(err, xerrors.ErrPlanNotFound)

	after, err := s.subStore.FindByRestaurant(context.Background(), "rest_1")
	s.Require().NoError(err)
	s.Equal(before.PlanID, after.PlanID)
	s.True(before.CurrentPeriodEnd.Equal(after.CurrentPeriodEnd))
}

func (s *SubscriptionServiceSuite) TestCancelWithoutSubscription() {
	err := s.service.Cancel(context.Background(), "rest_1")
	s.ErrorIs(err, xerrors.ErrNotSubscribed)
}

func (s *SubscriptionServiceSuite) TestReactivateWithoutSubscription() {
	err := s.service.Reactivate(context.Background(), "rest_1")
	s.ErrorIs(err, xerrors.ErrNotSubscribed)
}

func (s *SubscriptionServiceSuite) TestRenewWithoutSubscription() {
	_, err := s.service.Renew(context.Background(), "rest_1")
	s.ErrorIs(err, xerrors.ErrNotSubscribed)
}

func (s *SubscriptionServiceSuite) TestDisplayStatusWithoutSubscription() {
	status, err := s.service.GetDisplayStatus(context.Background(), "rest_1")
	s.NoError(err)
	s.Equal(billing.StateNoSubscription, status.State)
}

// Mirrors the console's happy-then-lapsed journey: subscribe, cancel,
// lapse, reactivate after lapse.
func (s *SubscriptionServiceSuite) TestLifecycleEndToEnd() {
	ctx := context.Background()
	s.seedPlan("plan_basic", "Basic", 499, billing.IntervalMonthly, true)

	// 2024-01-15: subscribe on a monthly plan.
	_, err := s.service.Subscribe(ctx, "rest_1", "plan_basic")
	s.Require().NoError(err)

	status, err := s.service.GetDisplayStatus(ctx, "rest_1")
	s.NoError(err)
	s.Equal(billing.StateActive, status.State)
	s.Require().NotNil(status.PeriodEnd)
	s.True(status.PeriodEnd.Equal(time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)))
	s.Equal("Basic (499 / monthly)", status.PlanSummary)

	// Cancel: access continues until period end.
	s.NoError(s.service.Cancel(ctx, "rest_1"))

	status, err = s.service.GetDisplayStatus(ctx, "rest_1")
	s.NoError(err)
	s.Equal(billing.StatePendingCancellation, status.State)
	s.Require().NotNil(status.PeriodEnd)
	s.True(status.PeriodEnd.Equal(time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)))

	// 2024-02-16: the period has lapsed.
	s.now = time.Date(2024, time.February, 16, 10, 0, 0, 0, time.UTC)

	status, err = s.service.GetDisplayStatus(ctx, "rest_1")
	s.NoError(err)
	s.Equal(billing.StateExpired, status.State)

	// Reactivation flips flags but grants no fresh period, so the
	// derived state stays Expired.
	s.NoError(s.service.Reactivate(ctx, "rest_1"))

	sub, err := s.subStore.FindByRestaurant(ctx, "rest_1")
	s.Require().NoError(err)
	s.False(sub.CancelAtPeriodEnd)
	s.Equal(billing.StatusActive, sub.Status)

	status, err = s.service.GetDisplayStatus(ctx, "rest_1")
	s.NoError(err)
	s.Equal(billing.StateExpired, status.State)
}

func (s *SubscriptionServiceSuite) TestRenewBeforePeriodEndExtendsFromPeriodEnd() {
	ctx := context.Background()
	s.seedPlan("plan_basic", "Basic", 499, billing.IntervalMonthly, true)

	_, err := s.service.Subscribe(ctx, "rest_1", "plan_basic")
	s.Require().NoError(err)

	// Renew mid-period: the new period starts where the old one ends.
	s.now = time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC)

	sub, err := s.service.Renew(ctx, "rest_1")
	s.Require().NoError(err)
	s.True(sub.CurrentPeriodStart.Equal(time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)))
	s.True(sub.CurrentPeriodEnd.Equal(time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)))
}

func (s *SubscriptionServiceSuite) TestRenewAfterLapseStartsNow() {
	ctx := context.Background()
	s.seedPlan("plan_basic", "Basic", 499, billing.IntervalMonthly, true)

	_, err := s.service.Subscribe(ctx, "rest_1", "plan_basic")
	s.Require().NoError(err)
	s.NoError(s.service.Cancel(ctx, "rest_1"))

	// Well past the period end.
	s.now = time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)

	sub, err := s.service.Renew(ctx, "rest_1")
	s.Require().NoError(err)
	s.True(sub.CurrentPeriodStart.Equal(s.now))
	s.True(sub.CurrentPeriodEnd.Equal(time.Date(2024, time.April, 20, 10, 0, 0, 0, time.UTC)))
	s.False(sub.CancelAtPeriodEnd)

	status, err := s.service.GetDisplayStatus(ctx, "rest_1")
	s.NoError(err)
	s.Equal(billing.StateActive, status.State)
}

func (s *SubscriptionServiceSuite) TestRenewOntoRetiredPlan() {
	ctx := context.Background()
	s.seedPlan("plan_basic", "Basic", 499, billing.IntervalMonthly, true)

	_, err := s.service.Subscribe(ctx, "rest_1", "plan_basic")
	s.Require().NoError(err)

	s.Require().NoError(s.planStore.SetActive(ctx, "plan_basic", false))

	_, err = s.service.Renew(ctx, "rest_1")
	s.ErrorIs(err, xerrors.ErrPlanNotFound)
}
