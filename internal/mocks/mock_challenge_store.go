package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/you/phoneauthsvc/domain"
)

// MockChallengeStore implements domain.ChallengeStore for testing. By
// default it behaves as an in-memory store with real TTL semantics;
// func fields override individual operations.
type MockChallengeStore struct {
	PutFunc    func(ctx context.Context, phone string, challenge *domain.Challenge, ttl time.Duration) error
	GetFunc    func(ctx context.Context, phone string) (*domain.Challenge, error)
	DeleteFunc func(ctx context.Context, phone string) error

	mu      sync.Mutex
	entries map[string]mockEntry
}

type mockEntry struct {
	challenge domain.Challenge
	expiresAt time.Time
}

// NewMockChallengeStore creates a new MockChallengeStore with an
// in-memory default behavior
func NewMockChallengeStore() *MockChallengeStore {
	return &MockChallengeStore{entries: make(map[string]mockEntry)}
}

// Put stores a challenge, replacing any existing one
func (m *MockChallengeStore) Put(ctx context.Context, phone string, challenge *domain.Challenge, ttl time.Duration) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, phone, challenge, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[phone] = mockEntry{challenge: *challenge, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Get returns the stored challenge, or ErrChallengeNotFound once the
// TTL has elapsed or after a Delete
func (m *MockChallengeStore) Get(ctx context.Context, phone string) (*domain.Challenge, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, phone)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[phone]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(m.entries, phone)
		return nil, domain.ErrChallengeNotFound
	}
	challenge := entry.challenge
	return &challenge, nil
}

// Delete removes the stored challenge if present
func (m *MockChallengeStore) Delete(ctx context.Context, phone string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, phone)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, phone)
	return nil
}

// Compile-time interface compliance verification
var _ domain.ChallengeStore = (*MockChallengeStore)(nil)
