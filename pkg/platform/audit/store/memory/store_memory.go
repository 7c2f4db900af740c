package memory

import (
	"context"
	"sort"
	"sync"

	id "presence/pkg/domain"
	audit "presence/pkg/platform/audit"
)

// InMemoryStore keeps audit events per user. It doubles as an audit.Publisher
// so the CLI can show a user's attendance history without a database.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[id.UserID][]audit.Event
	log    []audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[id.UserID][]audit.Event)}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[id.UserID][]audit.Event)
	s.log = nil
}

// Emit satisfies audit.Publisher.
func (s *InMemoryStore) Emit(ctx context.Context, event audit.Event) error {
	return s.Append(ctx, event)
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.UserID] = append(s.events[event.UserID], event)
	s.log = append(s.log, event)
	return nil
}

func (s *InMemoryStore) ListByUser(_ context.Context, userID id.UserID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events[userID]...), nil
}

// ListRecent returns the most recent limit events across all users, newest first.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	all := make([]audit.Event, 0, len(s.log))
	for i := len(s.log) - 1; i >= 0; i-- {
		all = append(all, s.log[i])
	}
	s.mu.RUnlock()

	// Events with equal timestamps stay newest-appended first.

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.After(all[j].Timestamp)
	})
	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
