package pattern

import (
	"github.com/lixenwraith/pulse-runner/parameter"
)

// BeatState holds every instrument and spawn flag for one beat. It is
// a pure function of the beat index: no hidden state, no entropy
// beyond the index itself.
type BeatState struct {
	Kick  bool
	Snare bool
	Hat   bool

	// BassNote is the bass pitch slot 0-3, or -1 when the bass is
	// silent this beat
	BassNote int

	LeadActive    bool
	HornTrigger   bool
	FiddleTrigger bool
}

// StateAt computes the beat state for a beat index. Total and
// deterministic: StateAt(i) == StateAt(i) for all i, any time.
func StateAt(index int64) BeatState {
	s := BeatState{
		Kick:     true,
		Hat:      true,
		BassNote: -1,
	}

	s.Snare = index%2 == 1

	if index%parameter.BassCycleBeats == 0 {
		s.BassNote = int((index / parameter.BassCycleBeats) % 4)
	}

	s.HornTrigger = index%parameter.HornIntervalBeats == 0

	// Fill window rides the tail of each phrase after the opening one
	phrasePos := index % parameter.BeatsPerPhrase
	s.FiddleTrigger = index >= parameter.BeatsPerPhrase &&
		phrasePos >= parameter.BeatsPerPhrase-parameter.PhraseFillBeats

	s.LeadActive = index%parameter.LeadCycleBeats >= parameter.LeadCycleBeats/2

	return s
}
