package engine

import "testing"

func TestPumpSchedulerOrder(t *testing.T) {
	s := NewPumpScheduler()
	var order []int
	for i := 1; i <= 5; i++ {
		s.RequestFrame(func() { order = append(order, i) })
	}

	if n := s.Pump(); n != 5 {
		t.Fatalf("Pump ran %d, want 5", n)
	}
	for i, v := range order {
		if v != i+1 {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
}

func TestPumpSchedulerDefersNestedRequests(t *testing.T) {
	s := NewPumpScheduler()
	runs := 0
	var frame func()
	frame = func() {
		runs++
		s.RequestFrame(frame)
	}
	s.RequestFrame(frame)

	s.Pump()
	if runs != 1 {
		t.Fatalf("runs after first pump = %d, want 1", runs)
	}
	if s.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", s.Pending())
	}
	s.Pump()
	if runs != 2 {
		t.Fatalf("runs after second pump = %d, want 2", runs)
	}
}

func TestPumpSchedulerCancel(t *testing.T) {
	s := NewPumpScheduler()
	ran := false
	id := s.RequestFrame(func() { ran = true })
	if id == 0 {
		t.Fatal("FrameID zero must never be issued")
	}

	s.CancelFrame(id)
	s.CancelFrame(id)

	if n := s.Pump(); n != 0 || ran {
		t.Errorf("cancelled frame ran (n=%d)", n)
	}
}
