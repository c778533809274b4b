package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/pulse-runner/event"
	"github.com/lixenwraith/pulse-runner/parameter"
	"github.com/lixenwraith/pulse-runner/profile"
	"github.com/lixenwraith/pulse-runner/status"
)

// DifficultyController owns the skill modifier: a bounded scalar that
// throttles obstacle density. Only two transition rules mutate it: a
// reward after a run of flawless beats, and a penalty on a hit.
// Touched only from the game-loop goroutine; the current
// value is published through an AtomicFloat for UI reads.
type DifficultyController struct {
	skill       float64
	flawless    int
	lastPenalty time.Time
	hitThisBeat bool

	store     *profile.Store
	profileID string

	statSkill    *status.AtomicFloat
	statRewards  *atomic.Int64
	statSaveErrs *atomic.Int64
}

// NewDifficultyController loads the persisted skill modifier for the
// profile. A missing save yields the default; a corrupt one is an
// error, never a silent zero.
func NewDifficultyController(store *profile.Store, profileID string, reg *status.Registry) (*DifficultyController, error) {
	skill := parameter.DefaultSkill
	if store != nil {
		loaded, err := store.LoadSkill(profileID, parameter.DefaultSkill)
		if err != nil {
			return nil, err
		}
		skill = clampSkill(loaded)
	}

	d := &DifficultyController{
		skill:        skill,
		store:        store,
		profileID:    profileID,
		statSkill:    reg.Float("difficulty.skill"),
		statRewards:  reg.Int("difficulty.rewards"),
		statSaveErrs: reg.Int("difficulty.save_errors"),
	}
	d.statSkill.Set(d.skill)
	return d, nil
}

func clampSkill(v float64) float64 {
	if v < parameter.MinSkill {
		return parameter.MinSkill
	}
	if v > parameter.MaxSkill {
		return parameter.MaxSkill
	}
	return v
}

// HandleEvent consumes collision feedback from the physics collaborator
func (d *DifficultyController) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.TypePlayerHitObstacle:
		d.penalize(ev.At)
	case event.TypePlayerHitHealZone:
		// Heal zones credit one flawless beat
		d.flawless++
		d.maybeReward()
	}
}

// OnBeat advances the flawless counter once per beat
func (d *DifficultyController) OnBeat(index int64, now time.Time) {
	if d.hitThisBeat {
		d.hitThisBeat = false
		return
	}
	d.flawless++
	d.maybeReward()
}

// penalize lowers the skill modifier unless a previous penalty is
// still cooling down: one bad sequence must not collapse difficulty.
func (d *DifficultyController) penalize(now time.Time) {
	d.flawless = 0
	d.hitThisBeat = true

	if !d.lastPenalty.IsZero() && now.Sub(d.lastPenalty) < parameter.PenaltyCooldown {
		return
	}

	d.skill = clampSkill(d.skill - parameter.SkillStep)
	d.lastPenalty = now
	d.publish()
}

func (d *DifficultyController) maybeReward() {
	if d.flawless < parameter.FlawlessThreshold {
		return
	}
	d.flawless = 0
	d.skill = clampSkill(d.skill + parameter.SkillStep)
	d.statRewards.Add(1)
	d.publish()
}

// publish pushes the new value to UI readers and persists it. Skill is
// the only scalar this core writes across sessions.
func (d *DifficultyController) publish() {
	d.statSkill.Set(d.skill)
	if d.store != nil {
		if err := d.store.SaveSkill(d.profileID, d.skill); err != nil {
			d.statSaveErrs.Add(1)
		}
	}
}

// Skill returns the current modifier, always within
// [MinSkill, MaxSkill]
func (d *DifficultyController) Skill() float64 {
	return d.skill
}

// Flawless returns the current consecutive flawless-beat count
func (d *DifficultyController) Flawless() int {
	return d.flawless
}
