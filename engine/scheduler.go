package engine

import (
	"slices"
	"sync"
)

// FrameID identifies a pending frame request; zero is never issued
type FrameID uint64

// FrameScheduler runs a callback before the next repaint
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// PumpScheduler queues frame callbacks until the host's repaint signal calls Pump
// Callbacks requested while pumping run on the following Pump, one frame later
type PumpScheduler struct {
	mu      sync.Mutex
	nextID  FrameID
	pending map[FrameID]func()
}

// NewPumpScheduler creates an empty scheduler
func NewPumpScheduler() *PumpScheduler {
	return &PumpScheduler{
		pending: make(map[FrameID]func()),
	}
}

func (s *PumpScheduler) RequestFrame(fn func()) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.pending[s.nextID] = fn
	return s.nextID
}

func (s *PumpScheduler) CancelFrame(id FrameID) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

// Pending returns the number of queued callbacks
func (s *PumpScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Pump runs every callback queued before the call, in request order, and returns how many ran
// Must be called from the goroutine that owns the scenes
func (s *PumpScheduler) Pump() int {
	s.mu.Lock()
	batch := s.pending
	s.pending = make(map[FrameID]func(), len(batch))
	s.mu.Unlock()

	if len(batch) == 0 {
		return 0
	}

	ids := make([]FrameID, 0, len(batch))
	for id := range batch {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		batch[id]()
	}
	return len(ids)
}
