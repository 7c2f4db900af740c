package store

import (
	"context"
	"strings"
	"sync"

	"presence/internal/attendance/models"
	id "presence/pkg/domain"
	"presence/pkg/platform/sentinel"
)

// InMemoryUserStore keeps accounts for the life of the process. Records are
// returned by pointer: the session hands them to the gate, which updates
// attendance in place.
type InMemoryUserStore struct {
	mu      sync.RWMutex
	users   map[id.UserID]*models.User
	byEmail map[string]id.UserID
	// indexed holds the email key each user is filed under. Records are shared
	// pointers, so the stored User may already carry a changed address.
	indexed map[id.UserID]string
}

func New() *InMemoryUserStore {
	return &InMemoryUserStore{
		users:   make(map[id.UserID]*models.User),
		byEmail: make(map[string]id.UserID),
		indexed: make(map[id.UserID]string),
	}
}

// Save inserts or replaces user. An email already held by another user
// returns sentinel.ErrConflict.
func (s *InMemoryUserStore) Save(_ context.Context, user *models.User) error {
	key := emailKey(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if owner, ok := s.byEmail[key]; ok && owner != user.ID {
		return sentinel.ErrConflict
	}
	if prev, ok := s.indexed[user.ID]; ok {
		delete(s.byEmail, prev)
	}
	s.users[user.ID] = user
	s.byEmail[key] = user.ID
	s.indexed[user.ID] = key
	return nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, userID id.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[userID]; ok {
		return user, nil
	}
	return nil, sentinel.ErrNotFound
}

// FindByEmail matches case-insensitively.
func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if userID, ok := s.byEmail[emailKey(email)]; ok {
		return s.users[userID], nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryUserStore) Delete(_ context.Context, userID id.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.byEmail, s.indexed[userID])
	delete(s.indexed, userID)
	delete(s.users, userID)
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
