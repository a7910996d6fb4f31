// internal/domain/billing/dto.go
package billing

import "github.com/shopspring/decimal"

// SubscribeRequest puts a restaurant on a plan.
type SubscribeRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// CreatePlanRequest creates a new subscription plan (admin surface).
type CreatePlanRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Interval    PlanInterval    `json:"interval" binding:"required"`
	Features    []string        `json:"features"`
}

// UpdatePlanRequest updates mutable plan fields (admin surface).
// Interval and price changes only affect future subscribe/renew calls;
// running periods keep their stored dates.
type UpdatePlanRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Interval    *PlanInterval    `json:"interval"`
	Features    []string         `json:"features"`
}
