// internal/domain/billing/status_test.go
package billing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testPlan() *Plan {
	return &Plan{
		ID:       "plan_basic",
		Name:     "Basic",
		Price:    decimal.NewFromInt(499),
		Interval: IntervalMonthly,
		IsActive: true,
	}
}

func TestDeriveStatusNoSubscription(t *testing.T) {
	for _, now := range []time.Time{
		date(2020, time.January, 1),
		date(2024, time.June, 15),
		date(2099, time.December, 31),
	} {
		status := DeriveStatus(nil, now)
		require.Equal(t, StateNoSubscription, status.State)
		require.Nil(t, status.PeriodEnd)
		require.Empty(t, status.PlanSummary)
	}
}

func TestDeriveStatusActive(t *testing.T) {
	end := date(2024, time.February, 15)
	sub := &Subscription{
		Status:            StatusActive,
		CurrentPeriodEnd:  end,
		CancelAtPeriodEnd: false,
		Plan:              testPlan(),
	}

	status := DeriveStatus(sub, date(2024, time.February, 14))
	require.Equal(t, StateActive, status.State)
	require.NotNil(t, status.PeriodEnd)
	require.True(t, status.PeriodEnd.Equal(end))
	require.Equal(t, "Basic (499 / monthly)", status.PlanSummary)
}

func TestDeriveStatusPendingCancellation(t *testing.T) {
	end := date(2024, time.February, 15)
	sub := &Subscription{
		Status:            StatusActive,
		CurrentPeriodEnd:  end,
		CancelAtPeriodEnd: true,
		Plan:              testPlan(),
	}

	status := DeriveStatus(sub, date(2024, time.February, 14))
	require.Equal(t, StatePendingCancellation, status.State)
	require.NotNil(t, status.PeriodEnd)
	require.True(t, status.PeriodEnd.Equal(end))
}

func TestDeriveStatusExpired(t *testing.T) {
	end := date(2024, time.February, 15)

	tests := []struct {
		name string
		sub  *Subscription
		now  time.Time
	}{
		{
			"period lapsed",
			&Subscription{Status: StatusActive, CurrentPeriodEnd: end},
			date(2024, time.February, 16),
		},
		{
			"exactly at period end",
			&Subscription{Status: StatusActive, CurrentPeriodEnd: end},
			end,
		},
		{
			"period lapsed with cancel flag",
			&Subscription{Status: StatusActive, CurrentPeriodEnd: end, CancelAtPeriodEnd: true},
			date(2024, time.March, 1),
		},
		{
			"stored status not active even mid-period",
			&Subscription{Status: StatusCancelled, CurrentPeriodEnd: end},
			date(2024, time.February, 1),
		},
		{
			"stored status pending even mid-period",
			&Subscription{Status: StatusPending, CurrentPeriodEnd: end},
			date(2024, time.February, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := DeriveStatus(tt.sub, tt.now)
			require.Equal(t, StateExpired, status.State)
			require.Nil(t, status.PeriodEnd)
		})
	}
}

func TestDisplayStatusJSONOmitsUnsetPeriodEnd(t *testing.T) {
	payload, err := json.Marshal(DeriveStatus(nil, date(2024, time.June, 15)))
	require.NoError(t, err)
	require.NotContains(t, string(payload), "period_end")

	sub := &Subscription{
		Status:           StatusActive,
		CurrentPeriodEnd: date(2024, time.February, 15),
		Plan:             testPlan(),
	}
	payload, err = json.Marshal(DeriveStatus(sub, date(2024, time.February, 14)))
	require.NoError(t, err)
	require.Contains(t, string(payload), "period_end")
}
