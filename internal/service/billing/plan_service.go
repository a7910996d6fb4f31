// internal/service/billing/plan_service.go
package billing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sudipjangam/userfeast-manager/internal/cache"
	"github.com/sudipjangam/userfeast-manager/internal/domain/billing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PlanService is the plan administration surface. The lifecycle engine
// only ever reads plans; creation and retirement happen here.
type PlanService struct {
	planRepo billing.PlanRepository
	plans    *cache.PlanCache
	logger   *zap.Logger
}

func NewPlanService(planRepo billing.PlanRepository, plans *cache.PlanCache, logger *zap.Logger) *PlanService {
	return &PlanService{
		planRepo: planRepo,
		plans:    plans,
		logger:   logger,
	}
}

// CreatePlan creates a new subscription plan
func (s *PlanService) CreatePlan(ctx context.Context, req *billing.CreatePlanRequest) (*billing.Plan, error) {
	if !req.Interval.Valid() {
		return nil, fmt.Errorf("invalid billing interval: %s", req.Interval)
	}
	if req.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("plan price cannot be negative")
	}

	plan := &billing.Plan{
		Name:        req.Name,
		Description: sql.NullString{String: req.Description, Valid: req.Description != ""},
		Price:       req.Price,
		Interval:    req.Interval,
		Features:    req.Features,
		IsActive:    true,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		s.logger.Error("failed to create plan", zap.Error(err))
		return nil, err
	}

	s.plans.Invalidate(ctx)

	s.logger.Info("subscription plan created",
		zap.String("plan_id", plan.ID),
		zap.String("name", plan.Name),
		zap.String("interval", string(plan.Interval)),
	)

	return plan, nil
}

// GetPlan retrieves a plan by ID
func (s *PlanService) GetPlan(ctx context.Context, id string) (*billing.Plan, error) {
	return s.planRepo.FindByID(ctx, id)
}

// UpdatePlan updates mutable plan fields. Running subscriptions keep
// their stored period dates; changes only matter to future subscribe
// and renew calls.
func (s *PlanService) UpdatePlan(ctx context.Context, id string, req *billing.UpdatePlanRequest) (*billing.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		plan.Name = req.Name
	}
	if req.Description != nil {
		plan.Description = sql.NullString{String: *req.Description, Valid: *req.Description != ""}
	}
	if req.Price != nil {
		if req.Price.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("plan price cannot be negative")
		}
		plan.Price = *req.Price
	}
	if req.Interval != nil {
		if !req.Interval.Valid() {
			return nil, fmt.Errorf("invalid billing interval: %s", *req.Interval)
		}
		plan.Interval = *req.Interval
	}
	if req.Features != nil {
		plan.Features = req.Features
	}

	if err := s.planRepo.Update(ctx, id, plan); err != nil {
		return nil, err
	}

	s.plans.Invalidate(ctx)

	s.logger.Info("subscription plan updated", zap.String("plan_id", id))
	return plan, nil
}

// DeactivatePlan retires a plan from the offerable set. Restaurants
// already on it keep their subscription rows untouched.
func (s *PlanService) DeactivatePlan(ctx context.Context, id string) error {
	if err := s.planRepo.SetActive(ctx, id, false); err != nil {
		return err
	}

	s.plans.Invalidate(ctx)

	s.logger.Info("subscription plan deactivated", zap.String("plan_id", id))
	return nil
}
