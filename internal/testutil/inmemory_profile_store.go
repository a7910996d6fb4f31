// internal/testutil/inmemory_profile_store.go
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sudipjangam/userfeast-manager/internal/domain/profile"
	xerrors "github.com/sudipjangam/userfeast-manager/internal/pkg/errors"

	"github.com/google/uuid"
)

// InMemoryProfileStore implements profile.Repository for tests.
type InMemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]*profile.Profile
}

func NewInMemoryProfileStore() *InMemoryProfileStore {
	return &InMemoryProfileStore{profiles: make(map[string]*profile.Profile)}
}

func (s *InMemoryProfileStore) Create(_ context.Context, p *profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	copied := *p
	s.profiles[p.ID] = &copied
	return nil
}

func (s *InMemoryProfileStore) FindByID(_ context.Context, id string) (*profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *InMemoryProfileStore) List(_ context.Context, filters *profile.ListFilters) ([]profile.Profile, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []profile.Profile{}
	needle := strings.ToLower(filters.Search)
	for _, p := range s.profiles {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.FirstName.String), needle) &&
			!strings.Contains(strings.ToLower(p.LastName.String), needle) {
			continue
		}
		if filters.Role != "" && p.Role != filters.Role {
			continue
		}
		matched = append(matched, *p)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched, int64(len(matched)), nil
}

func (s *InMemoryProfileStore) Update(_ context.Context, id string, p *profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.profiles[id]
	if !ok {
		return xerrors.ErrNotFound
	}

	updated := *p
	updated.ID = id
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	s.profiles[id] = &updated
	return nil
}

func (s *InMemoryProfileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(s.profiles, id)
	return nil
}
