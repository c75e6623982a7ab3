package engine

import (
	"time"

	"github.com/lixenwraith/particle-field/core"
)

// Stage shows an intro scene for a fixed hold, then hands over to the main scene
type Stage struct {
	intro Scene
	main  Scene
	clock core.Clock
	hold  time.Duration

	started  time.Time
	begun    bool
	revealed bool
	onReveal func()
}

// NewStage creates a stage; a nil intro or non-positive hold shows main immediately
func NewStage(intro, main Scene, clock core.Clock, hold time.Duration) *Stage {
	return &Stage{
		intro: intro,
		main:  main,
		clock: clock,
		hold:  hold,
	}
}

// OnReveal registers a callback fired once when the main scene first ticks
func (st *Stage) OnReveal(fn func()) {
	st.onReveal = fn
}

// Revealed reports whether the main scene has taken over
func (st *Stage) Revealed() bool {
	return st.revealed
}

func (st *Stage) Resize(w, h float64) {
	if st.intro != nil {
		st.intro.Resize(w, h)
	}
	st.main.Resize(w, h)
}

func (st *Stage) SetPointer(x, y float64) {
	if st.intro != nil {
		st.intro.SetPointer(x, y)
	}
	st.main.SetPointer(x, y)
}

func (st *Stage) Tick(s core.Surface) {
	if !st.revealed && st.intro != nil && st.hold > 0 {
		now := st.clock.Now()
		if !st.begun {
			st.started = now
			st.begun = true
		}
		if now.Sub(st.started) < st.hold {
			st.intro.Tick(s)
			return
		}
	}

	if !st.revealed {
		st.revealed = true
		if st.onReveal != nil {
			st.onReveal()
		}
	}
	st.main.Tick(s)
}
