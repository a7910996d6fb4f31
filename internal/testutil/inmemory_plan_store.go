// internal/testutil/inmemory_plan_store.go
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sudipjangam/userfeast-manager/internal/domain/billing"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
)

// InMemoryPlanStore implements billing.PlanRepository for tests.
type InMemoryPlanStore struct {
	mu    sync.RWMutex
	plans map[string]*billing.Plan
}

func NewInMemoryPlanStore() *InMemoryPlanStore {
	return &InMemoryPlanStore{plans: make(map[string]*billing.Plan)}
}

func copyPlan(p *billing.Plan) *billing.Plan {
	if p == nil {
		return nil
	}
	copied := *p
	copied.Features = lo.Map(p.Features, func(f string, _ int) string { return f })
	return &copied
}

func (s *InMemoryPlanStore) Create(_ context.Context, plan *billing.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if plan.ID == "" {
		plan.ID = ulid.Make().String()
	}
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	s.plans[plan.ID] = copyPlan(plan)
	return nil
}

func (s *InMemoryPlanStore) FindByID(_ context.Context, id string) (*billing.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.plans[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return copyPlan(plan), nil
}

func (s *InMemoryPlanStore) ListActive(_ context.Context) ([]billing.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := []billing.Plan{}
	for _, plan := range s.plans {
		if plan.IsActive {
			active = append(active, *copyPlan(plan))
		}
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].Price.LessThan(active[j].Price)
	})

	return active, nil
}

func (s *InMemoryPlanStore) Update(_ context.Context, id string, plan *billing.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.plans[id]
	if !ok {
		return xerrors.ErrNotFound
	}

	updated := copyPlan(plan)
	updated.ID = id
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	s.plans[id] = updated
	return nil
}

func (s *InMemoryPlanStore) SetActive(_ context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, ok := s.plans[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	plan.IsActive = active
	plan.UpdatedAt = time.Now()
	return nil
}
