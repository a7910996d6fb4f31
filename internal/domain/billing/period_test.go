// internal/domain/billing/period_test.go
package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextPeriodEnd(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		interval PlanInterval
		want     time.Time
	}{
		{"monthly mid-month", date(2024, time.January, 15), IntervalMonthly, date(2024, time.February, 15)},
		{"monthly clamps to leap February", date(2024, time.January, 31), IntervalMonthly, date(2024, time.February, 29)},
		{"monthly clamps to non-leap February", date(2023, time.January, 31), IntervalMonthly, date(2023, time.February, 28)},
		{"monthly across year boundary", date(2024, time.December, 15), IntervalMonthly, date(2025, time.January, 15)},
		{"monthly from 30th to shorter month keeps day", date(2024, time.November, 30), IntervalMonthly, date(2024, time.December, 30)},
		{"quarterly clamps Aug 31 to Nov 30", date(2024, time.August, 31), IntervalQuarterly, date(2024, time.November, 30)},
		{"quarterly across year boundary", date(2024, time.November, 10), IntervalQuarterly, date(2025, time.February, 10)},
		{"half-yearly clamps Aug 31 to leap Feb 29", date(2023, time.August, 31), IntervalHalfYearly, date(2024, time.February, 29)},
		{"half-yearly plain", date(2024, time.March, 1), IntervalHalfYearly, date(2024, time.September, 1)},
		{"yearly plain", date(2024, time.April, 10), IntervalYearly, date(2025, time.April, 10)},
		{"yearly clamps leap day", date(2024, time.February, 29), IntervalYearly, date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPeriodEnd(tt.start, tt.interval)
			require.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestNextPeriodEndAlwaysAfterStart(t *testing.T) {
	starts := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.December, 31),
		time.Date(2024, time.June, 15, 23, 59, 59, 999999999, time.UTC),
	}
	intervals := []PlanInterval{IntervalMonthly, IntervalQuarterly, IntervalHalfYearly, IntervalYearly}

	for _, start := range starts {
		for _, interval := range intervals {
			end := NextPeriodEnd(start, interval)
			require.True(t, end.After(start), "%s + %s must be after start, got %s", start, interval, end)
		}
	}
}

func TestNextPeriodEndPreservesClock(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	start := time.Date(2024, time.January, 31, 14, 30, 45, 123, loc)

	end := NextPeriodEnd(start, IntervalMonthly)

	require.Equal(t, 14, end.Hour())
	require.Equal(t, 30, end.Minute())
	require.Equal(t, 45, end.Second())
	require.Equal(t, loc, end.Location())
	require.Equal(t, time.February, end.Month())
	require.Equal(t, 29, end.Day())
}
