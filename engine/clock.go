package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/particle-field/core"
)

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// PausableClock derives animation time from a source clock, freezing while paused
// Animation time = source elapsed - total paused time
type PausableClock struct {
	mu     sync.RWMutex
	source core.Clock

	start       time.Time
	pauseStart  time.Time
	totalPaused time.Duration

	paused atomic.Bool
}

// NewPausableClock creates a running clock on top of source
func NewPausableClock(source core.Clock) *PausableClock {
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Now returns animation time, frozen at the pause point while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused.Load() {
		return pc.start.Add(pc.pauseStart.Sub(pc.start) - pc.totalPaused)
	}
	return pc.source.Now().Add(-pc.totalPaused)
}

// Pause stops animation time advancement
// The flag and pauseStart change together under the lock so Now never sees one without the other
func (pc *PausableClock) Pause() {
	now := pc.source.Now()

	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused.Load() {
		return
	}
	pc.pauseStart = now
	pc.paused.Store(true)
}

// Resume continues animation time advancement
func (pc *PausableClock) Resume() {
	now := pc.source.Now()

	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused.Load() {
		return
	}
	pc.totalPaused += now.Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
	pc.paused.Store(false)
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused.Load()
}

// TotalPaused returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused.Load() {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
