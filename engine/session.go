package engine

import (
	"time"

	"github.com/lixenwraith/pulse-runner/core"
	"github.com/lixenwraith/pulse-runner/event"
	"github.com/lixenwraith/pulse-runner/pattern"
)

// BeatSink consumes the beat state each time the index advances
type BeatSink interface {
	OnBeat(index int64, state pattern.BeatState)
}

// SpawnDecider turns a beat state into spawn decisions and takes
// finished obstacle handles back
type SpawnDecider interface {
	OnBeat(index int64, state pattern.BeatState) []core.SpawnRequest
	Release(h *core.Obstacle)
}

// FeedbackSink consumes collision feedback and beat advancement
type FeedbackSink interface {
	HandleEvent(ev event.Event)
	OnBeat(index int64, now time.Time)
}

// Session owns one level run: the song, the clocks, and the fan-out of
// each beat to the audio scheduler and the spawn engine. It replaces
// the hidden global stores of earlier prototypes with one explicit
// service object, polled from the game-loop goroutine.
type Session struct {
	song core.Song

	gameClock *PausableClock
	beatClock *BeatClock

	audio    BeatSink
	spawner  SpawnDecider
	feedback FeedbackSink
	queue    *event.Queue

	onBeat   []func(index int64)
	finished bool
}

// NewSession validates the song and wires the collaborators. Any sink
// may be nil; a nil audio sink simply means no sound (beats and spawns
// continue, matching the missing-backend failure mode).
func NewSession(song core.Song, audio BeatSink, spawner SpawnDecider, feedback FeedbackSink) (*Session, error) {
	if err := song.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		song:      song,
		gameClock: NewPausableClock(),
		beatClock: NewBeatClock(song.BeatPeriod()),
		audio:     audio,
		spawner:   spawner,
		feedback:  feedback,
		queue:     event.NewQueue(64),
	}, nil
}

// Start anchors the beat clock at the current game time
func (s *Session) Start() {
	s.beatClock.Start(s.gameClock.Now())
}

// Tick polls the clock once. When the beat index advances, the beat
// state is computed exactly once and handed to the audio scheduler and
// the spawn engine in the same call: both always observe the same
// index for a logical beat. Returns this tick's spawn decisions.
func (s *Session) Tick() []core.SpawnRequest {
	now := s.gameClock.Now()

	if s.feedback != nil {
		for _, ev := range s.queue.Consume() {
			s.feedback.HandleEvent(ev)
		}
	}

	index, advanced := s.beatClock.Poll(now)
	if !advanced {
		return nil
	}

	if index >= s.song.TotalBeats {
		s.finished = true
		return nil
	}

	state := pattern.StateAt(index)

	if s.feedback != nil {
		s.feedback.OnBeat(index, now)
	}
	if s.audio != nil {
		s.audio.OnBeat(index, state)
	}

	var decisions []core.SpawnRequest
	if s.spawner != nil {
		decisions = s.spawner.OnBeat(index, state)
	}

	for _, fn := range s.onBeat {
		fn(index)
	}

	return decisions
}

// OnBeat registers a presentation callback invoked after the audio and
// spawn sinks for each new beat. Not safe to call after Start.
func (s *Session) OnBeat(fn func(index int64)) {
	s.onBeat = append(s.onBeat, fn)
}

// Release returns an obstacle handle once the presentation layer is
// done with it
func (s *Session) Release(h *core.Obstacle) {
	if s.spawner != nil {
		s.spawner.Release(h)
	}
}

// Events exposes the collision feedback queue for the physics
// collaborator
func (s *Session) Events() *event.Queue {
	return s.queue
}

// Now returns current game time for event timestamps
func (s *Session) Now() time.Time {
	return s.gameClock.Now()
}

// BeatIndex returns the last emitted beat index, -1 before the first
func (s *Session) BeatIndex() int64 {
	return s.beatClock.Index()
}

// State is the pure beat-state query, usable for prediction and
// telemetry without touching the clock
func (s *Session) State(index int64) pattern.BeatState {
	return pattern.StateAt(index)
}

// Song returns the immutable song descriptor
func (s *Session) Song() core.Song {
	return s.song
}

// Finished reports whether the song has played out
func (s *Session) Finished() bool {
	return s.finished
}

// Pause freezes game time; the beat index holds in place
func (s *Session) Pause() {
	s.gameClock.Pause()
}

// Resume continues game time from the paused beat
func (s *Session) Resume() {
	s.gameClock.Resume()
}

// Paused reports pause state
func (s *Session) Paused() bool {
	return s.gameClock.IsPaused()
}
