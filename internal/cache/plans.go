// internal/cache/plans.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sudipjangam/userfeast-manager/internal/domain/billing"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	plansKey = "userfeast:plans:offerable"

	// DefaultPlanTTL bounds how stale the offerable-plan list may get.
	DefaultPlanTTL = 5 * time.Minute
)

// PlanCache is a read-through Redis cache over the offerable-plan list.
// Cache failures never fail the caller; they fall back to the store.
type PlanCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewPlanCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *PlanCache {
	if ttl <= 0 {
		ttl = DefaultPlanTTL
	}
	return &PlanCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached plan list, or ok=false on miss or error.
func (c *PlanCache) Get(ctx context.Context) ([]billing.Plan, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, plansKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("plan cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var plans []billing.Plan
	if err := json.Unmarshal([]byte(raw), &plans); err != nil {
		c.logger.Warn("plan cache payload corrupt, dropping", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}

	return plans, true
}

// Set stores the plan list with the configured TTL.
func (c *PlanCache) Set(ctx context.Context, plans []billing.Plan) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(plans)
	if err != nil {
		c.logger.Warn("plan cache marshal failed", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, plansKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("plan cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached list; called after plan admin mutations.
func (c *PlanCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, plansKey).Err(); err != nil {
		c.logger.Warn("plan cache invalidate failed", zap.Error(err))
	}
}
