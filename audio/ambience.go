package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/particle-field/constants"
)

// Config controls the optional audio output
type Config struct {
	Enabled    bool
	Volume     float64 // master gain in (0, 1]
	SampleRate int
}

// DefaultConfig returns audio disabled at the stock rate
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Volume:     0.5,
		SampleRate: constants.AudioSampleRate,
	}
}

// Ambience sonifies the field: a hum following pointer activity and a chime on reveal
// Every method is a safe no-op until Initialize succeeds
type Ambience struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	hum         *hum
	humCtrl     *beep.Ctrl
	initialized bool
}

// NewAmbience creates an uninitialized ambience
func NewAmbience(cfg Config) *Ambience {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constants.AudioSampleRate
	}
	rate := beep.SampleRate(cfg.SampleRate)
	h := newHum(rate)
	return &Ambience{
		cfg:     cfg,
		rate:    rate,
		mixer:   &beep.Mixer{},
		hum:     h,
		humCtrl: &beep.Ctrl{Streamer: h},
	}
}

// Initialize opens the speaker and starts the hum at zero level
// A disabled config leaves the speaker closed and every method a no-op
func (a *Ambience) Initialize() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}
	if !a.cfg.Enabled {
		log.Printf("audio: disabled")
		return nil
	}

	if err := speaker.Init(a.rate, a.rate.N(constants.AudioBufferTime)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	a.mixer.Add(a.humCtrl)
	speaker.Play(newVolume(a.mixer, a.cfg.Volume))
	a.initialized = true
	log.Printf("audio: speaker at %d Hz", a.cfg.SampleRate)
	return nil
}

// Initialized reports whether the speaker is open
func (a *Ambience) Initialized() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.initialized
}

// SetLevel sets the hum target in [0,1]; glides per sample, so calling once per frame is enough
func (a *Ambience) SetLevel(level float64) {
	a.hum.setLevel(level)
}

// Level returns the current hum target
func (a *Ambience) Level() float64 {
	return a.hum.level()
}

// PlayChime plays the reveal chime once
func (a *Ambience) PlayChime() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	speaker.Lock()
	a.mixer.Add(newChime(a.rate))
	speaker.Unlock()
}

// SetPaused silences or resumes the hum
func (a *Ambience) SetPaused(paused bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		a.humCtrl.Paused = paused
		return
	}
	speaker.Lock()
	a.humCtrl.Paused = paused
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker
func (a *Ambience) Cleanup() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	a.initialized = false
}

// LinkLevel maps pointer activity to a hum level: the share of particles linked to the pointer
func LinkLevel(pointerLinks, particles int) float64 {
	if particles <= 0 {
		return 0
	}
	return min(float64(pointerLinks)/float64(particles), 1)
}
