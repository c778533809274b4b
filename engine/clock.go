package engine

import (
	"time"
)

// BeatClock converts wall-clock time into a monotonically increasing
// beat index. The index is recomputed from elapsed time on every poll,
// never accumulated from per-frame deltas, so jitter and pauses
// self-correct instead of drifting.
type BeatClock struct {
	period      time.Duration
	reference   time.Time
	started     bool
	lastEmitted int64
	onBeat      func(index int64)
}

// NewBeatClock creates a clock for the given beat period. Periods are
// derived from a validated Song, so period > 0 is guaranteed upstream.
func NewBeatClock(period time.Duration) *BeatClock {
	return &BeatClock{
		period:      period,
		lastEmitted: -1,
	}
}

// SetCallback registers the beat callback. Must be set before Start;
// the clock runs on the game-loop goroutine only.
func (c *BeatClock) SetCallback(fn func(index int64)) {
	c.onBeat = fn
}

// Start records the reference timestamp
func (c *BeatClock) Start(now time.Time) {
	c.reference = now
	c.started = true
	c.lastEmitted = -1
}

// Poll computes the current index from elapsed time and emits the
// callback exactly once if the index advanced. Returns the emitted
// index and true on advancement. Clock regressions (jitter) emit
// nothing: the index never repeats and never decreases.
func (c *BeatClock) Poll(now time.Time) (int64, bool) {
	if !c.started {
		return c.lastEmitted, false
	}

	elapsed := now.Sub(c.reference)
	if elapsed < 0 {
		return c.lastEmitted, false
	}

	index := int64(elapsed / c.period)
	if index <= c.lastEmitted {
		return c.lastEmitted, false
	}

	c.lastEmitted = index
	if c.onBeat != nil {
		c.onBeat(index)
	}
	return index, true
}

// Index returns the last emitted beat index, -1 before the first beat
func (c *BeatClock) Index() int64 {
	return c.lastEmitted
}

// Period returns the beat period
func (c *BeatClock) Period() time.Duration {
	return c.period
}
