package engine

import "sync"

// Host supplies surface dimensions and environment signals to a mounted loop
type Host interface {
	Size() (w, h float64)
	SubscribePointer(fn func(x, y float64)) (unsubscribe func())
	SubscribeResize(fn func(w, h float64)) (unsubscribe func())
}

// SignalHub is the Host used by the terminal and window front ends
// Front ends call Emit* from their event loop; subscribers run synchronously on that goroutine
type SignalHub struct {
	mu     sync.Mutex
	w, h   float64
	nextID int

	pointer map[int]func(x, y float64)
	resize  map[int]func(w, h float64)
}

// NewSignalHub creates a hub reporting the given initial size
func NewSignalHub(w, h float64) *SignalHub {
	return &SignalHub{
		w:       w,
		h:       h,
		pointer: make(map[int]func(x, y float64)),
		resize:  make(map[int]func(w, h float64)),
	}
}

func (s *SignalHub) Size() (w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

func (s *SignalHub) SubscribePointer(fn func(x, y float64)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.pointer[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.pointer, id)
		s.mu.Unlock()
	}
}

func (s *SignalHub) SubscribeResize(fn func(w, h float64)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.resize[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.resize, id)
		s.mu.Unlock()
	}
}

// Subscribers returns the number of live pointer and resize subscriptions
func (s *SignalHub) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pointer) + len(s.resize)
}

// EmitPointer delivers a pointer-move to every subscriber
func (s *SignalHub) EmitPointer(x, y float64) {
	s.mu.Lock()
	handlers := make([]func(x, y float64), 0, len(s.pointer))
	for _, fn := range s.pointer {
		handlers = append(handlers, fn)
	}
	s.mu.Unlock()

	for _, fn := range handlers {
		fn(x, y)
	}
}

// EmitResize records the new size and delivers it to every subscriber
func (s *SignalHub) EmitResize(w, h float64) {
	s.mu.Lock()
	s.w, s.h = w, h
	handlers := make([]func(w, h float64), 0, len(s.resize))
	for _, fn := range s.resize {
		handlers = append(handlers, fn)
	}
	s.mu.Unlock()

	for _, fn := range handlers {
		fn(w, h)
	}
}
