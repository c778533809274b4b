package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides game time that freezes while paused. The beat
// clock reads game time, so pausing holds the beat index in place and
// resuming continues from the same beat without regression.
type PausableClock struct {
	mu sync.RWMutex

	realStart time.Time
	gameStart time.Time

	isPaused    atomic.Bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock creates a clock with game time anchored at now
func NewPausableClock() *PausableClock {
	now := time.Now()
	return &PausableClock{
		realStart: now,
		gameStart: now,
	}
}

// Now returns current game time (frozen while paused)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.gameStart.Add(pc.pauseStart.Sub(pc.realStart) - pc.totalPaused)
	}

	realElapsed := time.Since(pc.realStart)
	return pc.gameStart.Add(realElapsed - pc.totalPaused)
}

// RealTime returns wall-clock time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return time.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		pc.pauseStart = time.Now()
		pc.mu.Unlock()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		if !pc.pauseStart.IsZero() {
			pc.totalPaused += time.Since(pc.pauseStart)
			pc.pauseStart = time.Time{}
		}
		pc.mu.Unlock()
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPaused returns cumulative pause time including any current pause
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.isPaused.Load() && !pc.pauseStart.IsZero() {
		total += time.Since(pc.pauseStart)
	}
	return total
}
