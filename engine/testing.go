package engine

import "sync"

// MockScheduler records frame requests without running them; Fire runs them on demand
type MockScheduler struct {
	mu        sync.Mutex
	nextID    FrameID
	pending   map[FrameID]func()
	requests  int
	cancelled int
}

// NewMockScheduler creates a scheduler for tests
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{pending: make(map[FrameID]func())}
}

func (m *MockScheduler) RequestFrame(fn func()) FrameID {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.requests++
	m.pending[m.nextID] = fn
	return m.nextID
}

func (m *MockScheduler) CancelFrame(id FrameID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pending[id]; ok {
		delete(m.pending, id)
		m.cancelled++
	}
}

// Requests returns the total number of RequestFrame calls
func (m *MockScheduler) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

// Cancelled returns how many pending frames were cancelled
func (m *MockScheduler) Cancelled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancelled
}

// Pending returns the number of frames waiting to fire
func (m *MockScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Fire runs all pending callbacks once, simulating one repaint
func (m *MockScheduler) Fire() int {
	m.mu.Lock()
	batch := m.pending
	m.pending = make(map[FrameID]func())
	m.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}
