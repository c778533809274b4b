package core

import (
	"fmt"
	"time"
)

// Song describes one level's track. Immutable once loaded; owned by the
// session that starts the level.
type Song struct {
	ID              string
	BPM             int
	TotalBeats      int64
	DifficultyLabel string
}

// Validate rejects malformed songs before a session can start
func (s Song) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidSong)
	}
	if s.BPM <= 0 {
		return fmt.Errorf("%w: bpm %d (must be > 0)", ErrInvalidSong, s.BPM)
	}
	if s.TotalBeats <= 0 {
		return fmt.Errorf("%w: total beats %d (must be > 0)", ErrInvalidSong, s.TotalBeats)
	}
	return nil
}

// BeatPeriod returns the duration of one beat (60/BPM seconds)
func (s Song) BeatPeriod() time.Duration {
	return time.Minute / time.Duration(s.BPM)
}

// Duration returns total playing time of the song
func (s Song) Duration() time.Duration {
	return s.BeatPeriod() * time.Duration(s.TotalBeats)
}
