package system

import (
	"sort"
	"sync/atomic"

	"github.com/lixenwraith/pulse-runner/core"
	"github.com/lixenwraith/pulse-runner/engine"
	"github.com/lixenwraith/pulse-runner/parameter"
	"github.com/lixenwraith/pulse-runner/pattern"
	"github.com/lixenwraith/pulse-runner/status"
)

// SkillSource reads the current skill modifier
type SkillSource interface {
	Skill() float64
}

// archetype tuning indexed by core.Archetype
var (
	archetypeBaseInterval = [core.ArchetypeCount]int{
		core.ArchetypeBeam:      parameter.BeamBaseInterval,
		core.ArchetypeAimedShot: parameter.AimedShotBaseInterval,
		core.ArchetypePulsar:    parameter.PulsarBaseInterval,
		core.ArchetypeWall:      parameter.WallBaseInterval,
	}
	archetypePriority = [core.ArchetypeCount]int{
		core.ArchetypeBeam:      parameter.PriorityBeam,
		core.ArchetypeAimedShot: parameter.PriorityAimedShot,
		core.ArchetypePulsar:    parameter.PriorityPulsar,
		core.ArchetypeWall:      parameter.PriorityWall,
	}
	bossCycle = [parameter.BossPhaseCount]core.Archetype{
		core.ArchetypeBeam,
		core.ArchetypeAimedShot,
		core.ArchetypePulsar,
		core.ArchetypeWall,
	}
)

// SpawnEngine decides which obstacles to spawn each beat. Normal beats
// map pattern flags to archetypes and throttle each one by the skill
// modifier; the tail of the song runs scripted boss phases instead.
// Committed spawns take a pooled handle, and the configured active
// maximum is enforced by dropping the lowest-priority candidates.
type SpawnEngine struct {
	song  core.Song
	skill SkillSource
	pool  *engine.Pool[core.Obstacle]

	lastBossPhase int64

	// Scratch slices reused across beats; requests are ephemeral and
	// only valid until the next OnBeat.
	pending  []core.Archetype
	requests []core.SpawnRequest

	statSpawned  *atomic.Int64
	statDropped  *atomic.Int64
	statPoolWarn *atomic.Int64
}

// NewSpawnEngine wires the engine to a validated song, a skill source
// and the obstacle pool
func NewSpawnEngine(song core.Song, skill SkillSource, pool *engine.Pool[core.Obstacle], reg *status.Registry) *SpawnEngine {
	return &SpawnEngine{
		song:          song,
		skill:         skill,
		pool:          pool,
		lastBossPhase: -1,
		pending:       make([]core.Archetype, 0, int(core.ArchetypeCount)),
		requests:      make([]core.SpawnRequest, 0, int(core.ArchetypeCount)),
		statSpawned:   reg.Int("spawn.spawned"),
		statDropped:   reg.Int("spawn.dropped"),
		statPoolWarn:  reg.Int("spawn.pool_warnings"),
	}
}

// OnBeat computes this beat's spawn decisions. The returned slice is
// reused on the next call.
func (e *SpawnEngine) OnBeat(index int64, state pattern.BeatState) []core.SpawnRequest {
	e.pending = e.pending[:0]
	e.requests = e.requests[:0]

	if e.inBossWindow(index) {
		e.queueBossPhase(index)
	} else {
		e.queueThrottled(index, state)
	}

	// Highest priority commits first; whatever doesn't fit under the
	// capacity limit is dropped, never an error.
	sort.Slice(e.pending, func(i, j int) bool {
		return archetypePriority[e.pending[i]] > archetypePriority[e.pending[j]]
	})

	skill := e.skill.Skill()
	for i, arch := range e.pending {
		if e.pool.Active() >= parameter.MaxActiveObstacles {
			e.statDropped.Add(int64(len(e.pending) - i))
			break
		}
		e.commit(index, arch, skill)
	}

	return e.requests
}

// inBossWindow reports whether index falls in the scripted song tail.
// Songs shorter than the window have no boss phase.
func (e *SpawnEngine) inBossWindow(index int64) bool {
	return e.song.TotalBeats > parameter.BossPhaseBeats &&
		index >= e.song.TotalBeats-parameter.BossPhaseBeats
}

// queueBossPhase emits one archetype per phase window, cycling through
// the scripted order
func (e *SpawnEngine) queueBossPhase(index int64) {
	phaseKey := index / parameter.BeatsPerBossPhase
	if phaseKey == e.lastBossPhase {
		return
	}
	e.lastBossPhase = phaseKey
	e.pending = append(e.pending, bossCycle[phaseKey%parameter.BossPhaseCount])
}

// queueThrottled maps active flags to archetypes, each gated by its
// skill-scaled interval
func (e *SpawnEngine) queueThrottled(index int64, state pattern.BeatState) {
	skill := e.skill.Skill()

	if state.Kick && e.due(index, core.ArchetypeBeam, skill) {
		e.pending = append(e.pending, core.ArchetypeBeam)
	}
	if state.Snare && e.due(index, core.ArchetypeAimedShot, skill) {
		e.pending = append(e.pending, core.ArchetypeAimedShot)
	}
	if state.HornTrigger && e.due(index, core.ArchetypePulsar, skill) {
		e.pending = append(e.pending, core.ArchetypePulsar)
	}
	if state.FiddleTrigger && e.due(index, core.ArchetypeWall, skill) {
		e.pending = append(e.pending, core.ArchetypeWall)
	}
}

// due applies the throttle rule: interval = max(1, base/skill), spawn
// on beats divisible by it
func (e *SpawnEngine) due(index int64, arch core.Archetype, skill float64) bool {
	interval := int64(float64(archetypeBaseInterval[arch]) / skill)
	if interval < 1 {
		interval = 1
	}
	return index%interval == 0
}

// commit acquires a handle and records the spawn decision
func (e *SpawnEngine) commit(index int64, arch core.Archetype, skill float64) {
	handle, warned := e.pool.Acquire()
	if warned {
		e.statPoolWarn.Add(1)
	}

	speedScale := parameter.SpeedScaleBase + skill*parameter.SpeedScaleSkill

	handle.Archetype = arch
	handle.BeatIndex = index
	handle.SpeedScale = speedScale

	origin := pattern.SpawnSide(index)
	target := core.SideRight
	if origin == core.SideRight {
		target = core.SideLeft
	}

	e.requests = append(e.requests, core.SpawnRequest{
		Archetype:  arch,
		Origin:     core.Hint{Side: origin, Offset: pattern.Offset(index, uint64(arch))},
		Target:     core.Hint{Side: target, Offset: pattern.Offset(index, uint64(arch)+16)},
		SpeedScale: speedScale,
		Priority:   archetypePriority[arch],
		Handle:     handle,
	})
	e.statSpawned.Add(1)
}

// Release returns an obstacle handle to the pool when the presentation
// layer signals completion or removal
func (e *SpawnEngine) Release(h *core.Obstacle) {
	e.pool.Release(h)
}

// Active returns the live obstacle count tracked through the pool
func (e *SpawnEngine) Active() int {
	return e.pool.Active()
}
