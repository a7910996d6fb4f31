// internal/domain/billing/entity.go
package billing

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// PlanInterval is the billing cycle of a subscription plan.
type PlanInterval string

const (
	IntervalMonthly    PlanInterval = "monthly"
	IntervalQuarterly  PlanInterval = "quarterly"
	IntervalHalfYearly PlanInterval = "half_yearly"
	IntervalYearly     PlanInterval = "yearly"
)

// Valid reports whether the interval is one of the known billing cycles.
func (i PlanInterval) Valid() bool {
	switch i {
	case IntervalMonthly, IntervalQuarterly, IntervalHalfYearly, IntervalYearly:
		return true
	}
	return false
}

// Months returns the length of one billing period in calendar months.
func (i PlanInterval) Months() int {
	switch i {
	case IntervalMonthly:
		return 1
	case IntervalQuarterly:
		return 3
	case IntervalHalfYearly:
		return 6
	case IntervalYearly:
		return 12
	default:
		return 1
	}
}

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusExpired   SubscriptionStatus = "expired"
	StatusPending   SubscriptionStatus = "pending"
)

// Plan is a subscription plan a restaurant can be put on. Plans are
// managed through the admin surface; the lifecycle engine only reads them.
type Plan struct {
	ID          string          `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description sql.NullString  `json:"description,omitempty" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Interval    PlanInterval    `json:"interval" db:"interval"`
	Features    []string        `json:"features" db:"features"`
	IsActive    bool            `json:"is_active" db:"is_active"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Summary renders the short plan description shown next to a
// subscription status, e.g. "Premium (499 / monthly)".
func (p *Plan) Summary() string {
	if p == nil {
		return ""
	}
	return p.Name + " (" + p.Price.String() + " / " + string(p.Interval) + ")"
}

// Subscription is the single billing record of a restaurant. At most one
// row exists per restaurant; the store enforces this with a unique
// constraint on restaurant_id.
type Subscription struct {
	ID                 string             `json:"id" db:"id"`
	RestaurantID       string             `json:"restaurant_id" db:"restaurant_id"`
	PlanID             string             `json:"plan_id" db:"plan_id"`
	Status             SubscriptionStatus `json:"status" db:"status"`
	CurrentPeriodStart time.Time          `json:"current_period_start" db:"current_period_start"`
	CurrentPeriodEnd   time.Time          `json:"current_period_end" db:"current_period_end"`
	CancelAtPeriodEnd  bool               `json:"cancel_at_period_end" db:"cancel_at_period_end"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Plan is populated when the subscription is fetched joined with
	// its plan. May be nil on partial reads.
	Plan *Plan `json:"plan,omitempty"`
}
