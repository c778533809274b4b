package parameter

// Obstacle throttling. Effective interval is baseInterval/skill
// (floored at 1), so higher skill spawns denser.
const (
	BeamBaseInterval      = 2
	AimedShotBaseInterval = 4
	PulsarBaseInterval    = 8
	WallBaseInterval      = 16
)

// Spawn priorities, higher survives capacity pressure
const (
	PriorityBeam      = 0
	PriorityAimedShot = 1
	PriorityPulsar    = 2
	PriorityWall      = 3
)

// Capacity
const (
	MaxActiveObstacles = 24
	ObstaclePoolSize   = 24
	ObstaclePoolCap    = 32 // Soft cap; growth past this is a config warning
)

// Boss phase covers the tail of every song
const (
	BossPhaseBeats    = 32 // Last beats of the song run scripted phases
	BeatsPerBossPhase = 8
	BossPhaseCount    = 4
)

// Speed scaling handed to the renderer
const (
	SpeedScaleBase  = 0.75
	SpeedScaleSkill = 0.5 // speedScale = base + skill * this
)
