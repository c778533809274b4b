package parameter

import (
	"time"
)

// Audio output
const (
	AudioSampleRate     = 48000
	AudioBufferDuration = 100 * time.Millisecond
)

// Instrument buffer lengths (seconds). Short one-shots baked once at
// startup; nothing is synthesized on the per-beat path.
const (
	KickDuration   = 0.40
	SnareDuration  = 0.25
	HatDuration    = 0.12
	BassDuration   = 0.50
	HornDuration   = 0.80
	FiddleDuration = 0.60
	LeadDuration   = 0.30
)

// Synthesis shape constants
const (
	KickStartFreq  = 60.0 // f(t) = KickStartFreq * e^(-KickPitchDecay*t)
	KickPitchDecay = 10.0
	KickAmpDecay   = 5.0

	SnareToneFreq   = 200.0
	SnareToneDecay  = 7.0
	SnareNoiseDecay = 12.0

	HatNoiseDecay = 30.0

	BassHarmonics = 5
	BassAmpDecay  = 3.0

	HornFreq      = 220.0
	HornHarmonics = 10
	HornAmpDecay  = 2.0

	FiddleFreq       = 440.0
	FiddleHarmonics  = 6
	FiddleAmpDecay   = 4.0
	FiddleVibratoHz  = 6.0
	FiddleVibratoAmt = 0.3
	FiddleAttack     = 0.02

	LeadFreq      = 330.0
	LeadHarmonics = 9 // Odd harmonics only
	LeadAmpDecay  = 6.0
)

// BassNoteFreqs are the four bass pitches the pattern cycles through
// (E1, G1, A1, B1)
var BassNoteFreqs = [4]float64{41.20, 49.00, 55.00, 61.74}

// Mix levels
const (
	DrumMixLevel  = 0.8
	TonalMixLevel = 0.6
	PeakNormalize = 0.9
)

// Effects chain (fixed at setup, not on the per-beat path)
const (
	DelayTime     = 180 * time.Millisecond
	DelayFeedback = 0.35
	DelayMix      = 0.25
	ReverbMix     = 0.2
	ReverbDamp    = 0.4
)
