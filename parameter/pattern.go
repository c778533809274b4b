package parameter

// Beat pattern structure. All values count beats, not steps: the
// pattern generator is keyed by whole beat index only.
const (
	BeatsPerPhrase  = 16 // One phrase of the groove
	PhraseFillBeats = 4  // Fill window at the tail of each phrase
	BassCycleBeats  = 4  // Bass note every 4th beat, cycling 4 pitches
	HornIntervalBeats = 16
	LeadCycleBeats    = 32 // Lead plays the back half of each cycle
)
