package core

// InstrumentType identifies synthesizer presets baked into the library
type InstrumentType int

const (
	InstrKick InstrumentType = iota
	InstrSnare
	InstrHat
	InstrBass
	InstrHorn
	InstrFiddle
	InstrLead
	InstrumentCount
)

func (i InstrumentType) String() string {
	names := [...]string{"kick", "snare", "hat", "bass", "horn", "fiddle", "lead"}
	if int(i) < len(names) {
		return names[i]
	}
	return "unknown"
}

// IsDrum returns true for percussion instruments
func (i InstrumentType) IsDrum() bool {
	return i <= InstrHat
}

// Archetype identifies obstacle kinds the spawn engine can emit
type Archetype int

const (
	ArchetypeBeam Archetype = iota
	ArchetypeAimedShot
	ArchetypePulsar
	ArchetypeWall
	ArchetypeCount
)

func (a Archetype) String() string {
	names := [...]string{"beam", "aimed_shot", "pulsar", "wall"}
	if int(a) < len(names) {
		return names[a]
	}
	return "unknown"
}

// CollisionTag is the closed set of things the physics collaborator can
// report contact between. Compared directly, never via bit arithmetic.
type CollisionTag int

const (
	TagPlayer CollisionTag = iota
	TagObstacle
	TagHealZone
)

func (t CollisionTag) String() string {
	names := [...]string{"player", "obstacle", "heal_zone"}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// Side marks which edge of the playfield a hint refers to
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}
