package constants

import "time"

// Audio Output
const (
	AudioSampleRate = 44100
	AudioBufferTime = 100 * time.Millisecond

	// AudioVolume is the master gain exponent for effects.Volume (base 2)
	AudioVolume = -1.0
)

// Ambient Hum
const (
	HumFundamental = 110.0
	HumFifth       = 165.0
	HumMaxGain     = 0.12

	// HumSmoothing is the per-sample approach rate toward the target level
	HumSmoothing = 0.0005
)

// Reveal Chime
const (
	ChimeFrequency = 660.0
	ChimeOvertone  = 990.0
	ChimeDuration  = 400 * time.Millisecond
	ChimeAttack    = 5 * time.Millisecond
	ChimeRelease   = 350 * time.Millisecond
	ChimeGain      = 0.25
)
