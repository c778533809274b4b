package core

import (
	"errors"
	"testing"
	"time"
)

// TestSongValidate verifies malformed songs fail fast at load time
func TestSongValidate(t *testing.T) {
	valid := Song{ID: "s1", BPM: 120, TotalBeats: 64}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid song rejected: %v", err)
	}

	cases := []struct {
		name string
		song Song
	}{
		{"zero bpm", Song{ID: "s", BPM: 0, TotalBeats: 64}},
		{"negative bpm", Song{ID: "s", BPM: -10, TotalBeats: 64}},
		{"zero beats", Song{ID: "s", BPM: 120, TotalBeats: 0}},
		{"empty id", Song{BPM: 120, TotalBeats: 64}},
	}

	for _, tc := range cases {
		err := tc.song.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		if !errors.Is(err, ErrInvalidSong) {
			t.Errorf("%s: error %v does not wrap ErrInvalidSong", tc.name, err)
		}
	}
}

// TestBeatPeriod verifies bpm 60 yields a period of exactly one second
func TestBeatPeriod(t *testing.T) {
	s := Song{ID: "s", BPM: 60, TotalBeats: 8}
	if got := s.BeatPeriod(); got != time.Second {
		t.Errorf("beat period = %v, want exactly 1s", got)
	}

	s.BPM = 120
	if got := s.BeatPeriod(); got != 500*time.Millisecond {
		t.Errorf("beat period = %v, want 500ms", got)
	}
}
