package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/pulse-runner/core"
	"github.com/lixenwraith/pulse-runner/event"
	"github.com/lixenwraith/pulse-runner/pattern"
)

type recordingSink struct {
	indices []int64
}

func (r *recordingSink) OnBeat(index int64, state pattern.BeatState) {
	r.indices = append(r.indices, index)
}

type recordingSpawner struct {
	indices []int64
}

func (r *recordingSpawner) OnBeat(index int64, state pattern.BeatState) []core.SpawnRequest {
	r.indices = append(r.indices, index)
	return nil
}

func (r *recordingSpawner) Release(h *core.Obstacle) {}

type recordingFeedback struct {
	events  []event.Event
	indices []int64
}

func (r *recordingFeedback) HandleEvent(ev event.Event) {
	r.events = append(r.events, ev)
}

func (r *recordingFeedback) OnBeat(index int64, now time.Time) {
	r.indices = append(r.indices, index)
}

// TestSessionRejectsInvalidSong verifies a malformed song cannot start
// a session
func TestSessionRejectsInvalidSong(t *testing.T) {
	_, err := NewSession(core.Song{ID: "s", BPM: 0, TotalBeats: 8}, nil, nil, nil)
	if !errors.Is(err, core.ErrInvalidSong) {
		t.Errorf("error = %v, want ErrInvalidSong", err)
	}

	_, err = NewSession(core.Song{ID: "s", BPM: 120, TotalBeats: -1}, nil, nil, nil)
	if !errors.Is(err, core.ErrInvalidSong) {
		t.Errorf("error = %v, want ErrInvalidSong", err)
	}
}

// TestSessionFanOut verifies the audio sink, the spawn engine and the
// feedback sink all observe the same index sequence for each tick
func TestSessionFanOut(t *testing.T) {
	song := core.Song{ID: "fanout", BPM: 30000, TotalBeats: 1 << 30} // 2ms beats
	audio := &recordingSink{}
	spawner := &recordingSpawner{}
	feedback := &recordingFeedback{}

	s, err := NewSession(song, audio, spawner, feedback)
	if err != nil {
		t.Fatal(err)
	}
	s.Start()

	deadline := time.Now().Add(time.Second)
	for len(audio.indices) < 5 && time.Now().Before(deadline) {
		s.Tick()
		time.Sleep(time.Millisecond)
	}

	if len(audio.indices) < 5 {
		t.Fatalf("only %d beats observed", len(audio.indices))
	}
	if len(spawner.indices) != len(audio.indices) || len(feedback.indices) != len(audio.indices) {
		t.Fatalf("sink counts diverge: audio=%d spawner=%d feedback=%d",
			len(audio.indices), len(spawner.indices), len(feedback.indices))
	}
	for i := range audio.indices {
		if audio.indices[i] != spawner.indices[i] || audio.indices[i] != feedback.indices[i] {
			t.Fatalf("tick %d saw different indices: audio=%d spawner=%d feedback=%d",
				i, audio.indices[i], spawner.indices[i], feedback.indices[i])
		}
	}
	for i := 1; i < len(audio.indices); i++ {
		if audio.indices[i] <= audio.indices[i-1] {
			t.Fatalf("indices not strictly increasing: %v", audio.indices)
		}
	}
}

// TestSessionEventRouting verifies pushed collision events reach the
// feedback sink on the next tick
func TestSessionEventRouting(t *testing.T) {
	song := core.Song{ID: "events", BPM: 120, TotalBeats: 64}
	feedback := &recordingFeedback{}

	s, err := NewSession(song, nil, nil, feedback)
	if err != nil {
		t.Fatal(err)
	}
	s.Start()

	at := s.Now()
	s.Events().Push(event.Event{Type: event.TypePlayerHitObstacle, At: at, With: core.TagObstacle})
	s.Events().Push(event.Event{Type: event.TypePlayerHitHealZone, At: at, With: core.TagHealZone})
	s.Tick()

	if len(feedback.events) != 2 {
		t.Fatalf("feedback received %d events, want 2", len(feedback.events))
	}
	if feedback.events[0].Type != event.TypePlayerHitObstacle {
		t.Errorf("first event type = %v", feedback.events[0].Type)
	}
	if feedback.events[1].Type != event.TypePlayerHitHealZone {
		t.Errorf("second event type = %v", feedback.events[1].Type)
	}
}

// TestSessionFinished verifies the session reports completion once the
// index passes the last beat and stops fanning out
func TestSessionFinished(t *testing.T) {
	song := core.Song{ID: "short", BPM: 30000, TotalBeats: 3}
	audio := &recordingSink{}

	s, err := NewSession(song, audio, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Start()

	deadline := time.Now().Add(time.Second)
	for !s.Finished() && time.Now().Before(deadline) {
		s.Tick()
		time.Sleep(time.Millisecond)
	}

	if !s.Finished() {
		t.Fatal("session never finished")
	}
	for _, index := range audio.indices {
		if index >= song.TotalBeats {
			t.Errorf("sink observed index %d past the song end", index)
		}
	}
}

// TestSessionPauseHoldsBeat verifies the beat index does not advance
// while paused
func TestSessionPauseHoldsBeat(t *testing.T) {
	song := core.Song{ID: "pause", BPM: 30000, TotalBeats: 1 << 30}
	s, err := NewSession(song, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Start()
	s.Tick()

	s.Pause()
	held := s.BeatIndex()
	time.Sleep(10 * time.Millisecond)
	s.Tick()
	if got := s.BeatIndex(); got != held {
		t.Errorf("index advanced while paused: %d -> %d", held, got)
	}

	s.Resume()
	deadline := time.Now().Add(time.Second)
	for s.BeatIndex() == held && time.Now().Before(deadline) {
		s.Tick()
		time.Sleep(time.Millisecond)
	}
	if s.BeatIndex() <= held {
		t.Error("index did not advance after resume")
	}
}
