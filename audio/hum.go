package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/particle-field/constants"
)

// hum is an endless two-partial drone whose gain glides toward a target level
// The target is written by the frame loop and read by the speaker goroutine
type hum struct {
	rate   beep.SampleRate
	phase1 float64
	phase2 float64
	gain   float64
	target atomic.Uint64 // float64 bits, level in [0,1]
}

func newHum(rate beep.SampleRate) *hum {
	return &hum{rate: rate}
}

// setLevel stores the target level, clamped to [0,1]
func (h *hum) setLevel(level float64) {
	level = min(max(level, 0), 1)
	h.target.Store(math.Float64bits(level))
}

func (h *hum) level() float64 {
	return math.Float64frombits(h.target.Load())
}

func (h *hum) Stream(samples [][2]float64) (n int, ok bool) {
	goal := h.level() * constants.HumMaxGain
	step1 := constants.HumFundamental / float64(h.rate)
	step2 := constants.HumFifth / float64(h.rate)

	for i := range samples {
		h.gain += (goal - h.gain) * constants.HumSmoothing

		val := (math.Sin(2*math.Pi*h.phase1) + 0.5*math.Sin(2*math.Pi*h.phase2)) / 1.5 * h.gain
		samples[i][0] = val
		samples[i][1] = val

		h.phase1 += step1
		h.phase1 -= math.Floor(h.phase1)
		h.phase2 += step2
		h.phase2 -= math.Floor(h.phase2)
	}
	return len(samples), true
}

func (h *hum) Err() error { return nil }

// newChime builds the two-partial reveal chime
func newChime(rate beep.SampleRate) beep.Streamer {
	fund := NewEnvelope(
		NewOscillator(constants.ChimeFrequency, constants.ChimeDuration, WaveSine, rate),
		constants.ChimeDuration, constants.ChimeAttack, constants.ChimeRelease, rate)
	over := NewEnvelope(
		NewOscillator(constants.ChimeOvertone, constants.ChimeDuration, WaveTriangle, rate),
		constants.ChimeDuration, constants.ChimeAttack, constants.ChimeRelease/2, rate)

	return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), constants.ChimeGain)
}
