// internal/domain/billing/period.go
package billing

import "time"

// NextPeriodEnd returns the end of one billing period that starts at
// start. The arithmetic is calendar-based with day clamping: advancing
// Jan 31 by one month lands on the last day of February, never on a
// normalized overflow date. time.AddDate cannot be used here since it
// normalizes Jan 31 + 1 month to Mar 2 (Mar 3 in non-leap years).
func NextPeriodEnd(start time.Time, interval PlanInterval) time.Time {
	return addMonthsClamped(start, interval.Months())
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	total := int(month) - 1 + months
	year += total / 12
	month = time.Month(total%12 + 1)

	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
