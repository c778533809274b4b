package audio

import (
	"time"

	"github.com/lixenwraith/pulse-runner/core"
	"github.com/lixenwraith/pulse-runner/parameter"
)

// Library holds the pre-baked instrument buffers. Built once at
// startup, immutable afterwards, safe for concurrent read from the
// audio render goroutine. Baking is CPU-only and runs even when no
// audio backend is available.
type Library struct {
	sampleRate int

	kick   floatBuffer
	snare  floatBuffer
	hat    floatBuffer
	horn   floatBuffer
	fiddle floatBuffer
	lead   floatBuffer
	bass   [4]floatBuffer
}

// NewLibrary synthesizes every instrument buffer at the given sample
// rate
func NewLibrary(sampleRate int) *Library {
	l := &Library{
		sampleRate: sampleRate,
		kick:       bakeKick(sampleRate),
		snare:      bakeSnare(sampleRate),
		hat:        bakeHat(sampleRate),
		horn:       bakeHorn(sampleRate),
		fiddle:     bakeFiddle(sampleRate),
		lead:       bakeLead(sampleRate),
	}
	for i, freq := range parameter.BassNoteFreqs {
		l.bass[i] = bakeBass(freq, sampleRate)
	}
	return l
}

// Buffer returns the baked buffer for an instrument. Bass returns
// pitch slot 0; use BassBuffer for a specific pitch.
func (l *Library) Buffer(instr core.InstrumentType) floatBuffer {
	switch instr {
	case core.InstrKick:
		return l.kick
	case core.InstrSnare:
		return l.snare
	case core.InstrHat:
		return l.hat
	case core.InstrBass:
		return l.bass[0]
	case core.InstrHorn:
		return l.horn
	case core.InstrFiddle:
		return l.fiddle
	case core.InstrLead:
		return l.lead
	default:
		return nil
	}
}

// BassBuffer returns the bass buffer for pitch slot 0-3
func (l *Library) BassBuffer(note int) floatBuffer {
	if note < 0 || note >= len(l.bass) {
		return nil
	}
	return l.bass[note]
}

// SampleRate returns the rate all buffers were baked at
func (l *Library) SampleRate() int {
	return l.sampleRate
}

// Duration returns the playing time of an instrument's buffer
func (l *Library) Duration(instr core.InstrumentType) time.Duration {
	buf := l.Buffer(instr)
	if len(buf) == 0 {
		return 0
	}
	return time.Duration(float64(len(buf)) / float64(l.sampleRate) * float64(time.Second))
}
