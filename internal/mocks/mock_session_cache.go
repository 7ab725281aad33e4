package mocks

import (
	"context"
	"sync"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// MockSessionCache implements domain.SessionCache for testing. The default
// behavior is a working in-memory cache so flow tests can exercise the
// login/refresh/logout lifecycle without Redis.
type MockSessionCache struct {
	GetFunc func(ctx context.Context, userID string) (*domain.User, error)
	SetFunc func(ctx context.Context, user *domain.User) error
	DelFunc func(ctx context.Context, userID string) error

	mu      sync.Mutex
	entries map[string]domain.User
}

// NewMockSessionCache creates a new MockSessionCache with default behaviors
func NewMockSessionCache() *MockSessionCache {
	return &MockSessionCache{entries: make(map[string]domain.User)}
}

// Get reads a session snapshot
func (m *MockSessionCache) Get(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.entries[userID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &user, nil
}

// Set writes a session snapshot
func (m *MockSessionCache) Set(ctx context.Context, user *domain.User) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[user.ID] = *user
	return nil
}

// Del deletes a session snapshot
func (m *MockSessionCache) Del(ctx context.Context, userID string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, userID)
	return nil
}

// Len reports the number of cached sessions.
func (m *MockSessionCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Compile-time interface compliance verification
var _ domain.SessionCache = (*MockSessionCache)(nil)
