// internal/domain/billing/status.go
package billing

import "time"

// DisplayState is the read-time subscription state shown to the console.
type DisplayState string

const (
	StateNoSubscription      DisplayState = "no_subscription"
	StateActive              DisplayState = "active"
	StatePendingCancellation DisplayState = "pending_cancellation"
	StateExpired             DisplayState = "expired"
)

// DisplayStatus is what the admin console renders for a restaurant.
// PeriodEnd and PlanSummary are only set for the active and
// pending-cancellation states; the pointer keeps period_end out of the
// JSON entirely for the other states.
type DisplayStatus struct {
	State       DisplayState `json:"state"`
	PeriodEnd   *time.Time   `json:"period_end,omitempty"`
	PlanSummary string       `json:"plan_summary,omitempty"`
}

// DeriveStatus computes the display state of a subscription at the given
// instant. It never touches the store: expiry is a derived fact, the
// stored status column is not written back when a period lapses.
//
// Rule order:
//  1. no row                                      -> NoSubscription
//  2. active, now before period end, no cancel    -> Active
//  3. active, now before period end, cancel set   -> PendingCancellation
//  4. everything else                             -> Expired
func DeriveStatus(sub *Subscription, now time.Time) DisplayStatus {
	if sub == nil {
		return DisplayStatus{State: StateNoSubscription}
	}

	if sub.Status == StatusActive && now.Before(sub.CurrentPeriodEnd) {
		state := StateActive
		if sub.CancelAtPeriodEnd {
			state = StatePendingCancellation
		}
		end := sub.CurrentPeriodEnd
		return DisplayStatus{
			State:       state,
			PeriodEnd:   &end,
			PlanSummary: sub.Plan.Summary(),
		}
	}

	return DisplayStatus{State: StateExpired}
}
