package membership

import (
	"context"
	"sync"
)

// MockGateway is an in-memory Gateway for tests and local development.
type MockGateway struct {
	mu     sync.RWMutex
	counts map[string]int
	err    error
	calls  int
}

// NewMockGateway creates an empty mock.
func NewMockGateway() *MockGateway {
	return &MockGateway{counts: make(map[string]int)}
}

// Seed sets the slot count answered for an email.
func (m *MockGateway) Seed(email string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[email] = count
}

// Fail makes every lookup return err until Reset.
func (m *MockGateway) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Reset clears seeded data, failure mode, and the call counter.
func (m *MockGateway) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = make(map[string]int)
	m.err = nil
	m.calls = 0
}

// Calls reports how many lookups were made.
func (m *MockGateway) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// FetchCount implements Gateway. Unknown emails answer zero.
func (m *MockGateway) FetchCount(_ context.Context, email string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	return m.counts[email], nil
}
