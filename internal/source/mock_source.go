package source

import (
	"context"
	"sync"

	"advocates/internal/domain"
)

// MockSource is a mock implementation of Source for testing.
// It is thread-safe and records every call.
type MockSource struct {
	mu sync.Mutex

	// Behavior configuration
	SourceName string
	FetchFunc  func(ctx context.Context) ([]domain.Advocate, error)

	// Call tracking
	FetchCalls []context.Context
}

// NewMockSource creates a mock that returns advocates on every fetch
func NewMockSource(advocates ...domain.Advocate) *MockSource {
	return &MockSource{
		SourceName: "mock",
		FetchFunc: func(ctx context.Context) ([]domain.Advocate, error) {
			return advocates, nil
		},
	}
}

// Fetch implements Source.Fetch
func (m *MockSource) Fetch(ctx context.Context) ([]domain.Advocate, error) {
	m.mu.Lock()
	m.FetchCalls = append(m.FetchCalls, ctx)
	fn := m.FetchFunc
	m.mu.Unlock()

	return fn(ctx)
}

// Name implements Source.Name
func (m *MockSource) Name() string {
	return m.SourceName
}

// CallCount returns the number of Fetch calls so far
func (m *MockSource) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.FetchCalls)
}
