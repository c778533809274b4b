package core

// Hint gives the rendering collaborator enough positional information
// to materialize an obstacle without the core depending on any
// animation API.
type Hint struct {
	Side   Side
	Offset float64 // 0.0-1.0 along the chosen edge
}

// Obstacle is the pooled handle backing one live obstacle. Acquired at
// spawn, released when the presentation layer signals removal.
type Obstacle struct {
	Archetype  Archetype
	BeatIndex  int64
	SpeedScale float64
}

// Reset clears a handle for reuse
func (o *Obstacle) Reset() {
	o.Archetype = 0
	o.BeatIndex = 0
	o.SpeedScale = 0
}

// SpawnRequest is one spawn decision for the current beat. Ephemeral:
// produced and consumed within a single tick.
type SpawnRequest struct {
	Archetype  Archetype
	Origin     Hint
	Target     Hint
	SpeedScale float64
	Priority   int
	Handle     *Obstacle
}
