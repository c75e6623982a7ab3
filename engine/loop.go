package engine

import (
	"log"

	"github.com/lixenwraith/particle-field/core"
)

// Scene is anything the loop can size, steer, and tick
type Scene interface {
	Resize(w, h float64)
	SetPointer(x, y float64)
	Tick(s core.Surface)
}

// Loop drives a scene once per scheduled frame
// All state is owned here; host signals only overwrite pointer and size on the scene
type Loop struct {
	scene     Scene
	surface   core.Surface
	scheduler FrameScheduler

	running    bool
	pending    FrameID
	hasPending bool
	generation uint64 // bumped on Stop; frames from an older generation are dropped
	frames     uint64

	mounted bool
	unsubs  []func()
}

// NewLoop creates a stopped, unmounted loop
func NewLoop(scene Scene, surface core.Surface, scheduler FrameScheduler) *Loop {
	return &Loop{
		scene:     scene,
		surface:   surface,
		scheduler: scheduler,
	}
}

// Start marks the loop running and requests the first frame
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.schedule()
}

// Stop clears the running flag and cancels the pending frame
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.generation++
	if l.hasPending {
		l.scheduler.CancelFrame(l.pending)
		l.hasPending = false
	}
}

// Running reports whether frames are being scheduled
func (l *Loop) Running() bool {
	return l.running
}

// Mounted reports whether the loop is attached to a host
func (l *Loop) Mounted() bool {
	return l.mounted
}

// Frames returns the number of ticks executed
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Mount sizes the scene from the host, subscribes to its signals, and starts the loop
func (l *Loop) Mount(host Host) {
	if l.mounted {
		return
	}
	l.mounted = true

	w, h := host.Size()
	l.scene.Resize(w, h)
	log.Printf("loop: mounted at %.0fx%.0f", w, h)

	l.unsubs = append(l.unsubs,
		host.SubscribePointer(l.handlePointer),
		host.SubscribeResize(l.handleResize),
	)
	l.Start()
}

// Unmount stops the loop and removes every host subscription
func (l *Loop) Unmount() {
	if !l.mounted {
		return
	}
	l.Stop()
	for _, unsub := range l.unsubs {
		unsub()
	}
	l.unsubs = nil
	l.mounted = false
	log.Printf("loop: unmounted after %d frames", l.frames)
}

func (l *Loop) handlePointer(x, y float64) {
	if !l.mounted || l.surface == nil {
		return
	}
	l.scene.SetPointer(x, y)
}

func (l *Loop) handleResize(w, h float64) {
	if !l.mounted || l.surface == nil {
		return
	}
	l.scene.Resize(w, h)
	log.Printf("loop: resized to %.0fx%.0f", w, h)
}

func (l *Loop) schedule() {
	gen := l.generation
	l.pending = l.scheduler.RequestFrame(func() { l.tick(gen) })
	l.hasPending = true
}

// tick runs one frame and re-arms the scheduler while running
// A callback that escaped cancellation carries a stale generation and does nothing
func (l *Loop) tick(gen uint64) {
	if gen != l.generation {
		return
	}
	l.hasPending = false
	if !l.running {
		return
	}
	if l.surface != nil {
		l.scene.Tick(l.surface)
		l.frames++
	}
	l.schedule()
}
