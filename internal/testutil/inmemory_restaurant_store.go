// internal/testutil/inmemory_restaurant_store.go
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sudipjangam/userfeast-manager/internal/domain/restaurant"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
)

// InMemoryRestaurantStore implements restaurant.Repository for tests.
type InMemoryRestaurantStore struct {
	mu          sync.RWMutex
	restaurants map[string]*restaurant.Restaurant
}

func NewInMemoryRestaurantStore() *InMemoryRestaurantStore {
	return &InMemoryRestaurantStore{restaurants: make(map[string]*restaurant.Restaurant)}
}

func (s *InMemoryRestaurantStore) Create(_ context.Context, r *restaurant.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = ulid.Make().String()
	}
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now

	copied := *r
	s.restaurants[r.ID] = &copied
	return nil
}

func (s *InMemoryRestaurantStore) FindByID(_ context.Context, id string) (*restaurant.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.restaurants[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (s *InMemoryRestaurantStore) List(_ context.Context, filters *restaurant.ListFilters) ([]restaurant.Restaurant, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []restaurant.Restaurant{}
	needle := strings.ToLower(filters.Search)
	for _, r := range s.restaurants {
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Name), needle) &&
			!strings.Contains(strings.ToLower(r.Address.String), needle) {
			continue
		}
		matched = append(matched, *r)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched, int64(len(matched)), nil
}

func (s *InMemoryRestaurantStore) Update(_ context.Context, id string, r *restaurant.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.restaurants[id]
	if !ok {
		return xerrors.ErrNotFound
	}

	updated := *r
	updated.ID = id
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	s.restaurants[id] = &updated
	return nil
}

func (s *InMemoryRestaurantStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.restaurants[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(s.restaurants, id)
	return nil
}

func (s *InMemoryRestaurantStore) Exists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.restaurants[id]
	return ok, nil
}
