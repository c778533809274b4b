package audio

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pulse-runner/core"
	"github.com/lixenwraith/pulse-runner/parameter"
	"github.com/lixenwraith/pulse-runner/pattern"
)

// Scheduler turns each beat state into voice triggers on the speaker.
// One persistent voice per instrument slot is added to the mixer at
// setup, so overlapping triggers on different slots never truncate
// each other and the per-beat path allocates nothing.
//
// A failed speaker init is not an error: the scheduler runs in silent
// mode, triggers become no-ops, and the rest of the game continues on
// schedule.
type Scheduler struct {
	config  *Config
	library *Library

	mixer  *beep.Mixer
	voices [core.InstrumentCount]*voice

	initialized atomic.Bool
	muted       atomic.Bool
	closeOnce   sync.Once

	statTriggered  atomic.Uint64
	statSuppressed atomic.Uint64
}

// NewScheduler creates a scheduler over a baked library. The library
// is always built: buffers are cheap and synthesis does not need a
// backend.
func NewScheduler(cfg *Config, lib *Library) *Scheduler {
	s := &Scheduler{
		config:  cfg,
		library: lib,
		mixer:   &beep.Mixer{},
	}
	for i := range s.voices {
		s.voices[i] = newVoice()
		s.mixer.Add(s.voices[i])
	}
	s.muted.Store(!cfg.Enabled)
	return s
}

// Start opens the speaker and installs the fixed post-mix effects
// chain. Backend failure enters silent mode and is not an error.
func (s *Scheduler) Start() error {
	if s.initialized.Load() {
		return nil
	}

	sr := beep.SampleRate(s.config.SampleRate)
	if err := speaker.Init(sr, sr.N(parameter.AudioBufferDuration)); err != nil {
		return nil // Silent mode
	}

	delaySamples := sr.N(parameter.DelayTime)
	chain := newDelay(s.mixer, delaySamples, parameter.DelayFeedback, parameter.DelayMix)
	chain = newReverb(chain, s.config.SampleRate, parameter.ReverbDamp, parameter.ReverbMix)
	chain = newVolume(chain, s.config.MasterVolume)

	speaker.Play(chain)
	s.initialized.Store(true)
	return nil
}

// newVolume wraps a streamer in a log-scaled volume effect.
// math.Log2(0) is -Inf, so zero volume switches to silent instead.
func newVolume(src beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: src, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: src, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// OnBeat triggers the voices for every active flag in the beat state.
// Runs on the game-loop goroutine; the speaker lock is the only
// boundary to the render goroutine, and all buffers handed across are
// immutable.
func (s *Scheduler) OnBeat(index int64, state pattern.BeatState) {
	if !s.initialized.Load() || s.muted.Load() {
		s.statSuppressed.Add(1)
		return
	}

	lib := s.library
	vols := s.config.InstrumentVolumes

	speaker.Lock()
	if state.Kick {
		s.voices[core.InstrKick].trigger(lib.kick, vols[core.InstrKick])
	}
	if state.Snare {
		s.voices[core.InstrSnare].trigger(lib.snare, vols[core.InstrSnare])
	}
	if state.Hat {
		s.voices[core.InstrHat].trigger(lib.hat, vols[core.InstrHat])
	}
	if state.BassNote >= 0 {
		s.voices[core.InstrBass].trigger(lib.BassBuffer(state.BassNote), vols[core.InstrBass])
	}
	if state.HornTrigger {
		s.voices[core.InstrHorn].trigger(lib.horn, vols[core.InstrHorn])
	}
	if state.FiddleTrigger {
		s.voices[core.InstrFiddle].trigger(lib.fiddle, vols[core.InstrFiddle])
	}
	if state.LeadActive && index%2 == 0 {
		s.voices[core.InstrLead].trigger(lib.lead, vols[core.InstrLead])
	}
	speaker.Unlock()

	s.statTriggered.Add(1)
}

// Stop silences all voices. Idempotent and callable from any
// goroutine at any time; it needs no prior state from the caller and
// leaves the speaker open so a later beat can trigger again.
func (s *Scheduler) Stop() {
	if !s.initialized.Load() {
		return
	}

	speaker.Lock()
	for _, v := range s.voices {
		v.silence()
	}
	speaker.Unlock()
}

// Close stops the voices and shuts the speaker down. Safe to call
// more than once.
func (s *Scheduler) Close() {
	s.Stop()
	s.closeOnce.Do(func() {
		if s.initialized.CompareAndSwap(true, false) {
			speaker.Close()
		}
	})
}

// ToggleMute flips mute, returning true when sound is now on
func (s *Scheduler) ToggleMute() bool {
	newMute := !s.muted.Load()
	s.muted.Store(newMute)
	if newMute {
		s.Stop()
	}
	return !newMute
}

// Muted returns current mute state
func (s *Scheduler) Muted() bool {
	return s.muted.Load()
}

// Silent reports whether the scheduler is running without a backend
func (s *Scheduler) Silent() bool {
	return !s.initialized.Load()
}

// Stats returns triggered and suppressed beat counts
func (s *Scheduler) Stats() (triggered, suppressed uint64) {
	return s.statTriggered.Load(), s.statSuppressed.Load()
}
