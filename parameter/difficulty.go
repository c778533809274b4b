package parameter

import (
	"time"
)

// Skill modifier tuning
const (
	MinSkill = 0.2
	MaxSkill = 1.0

	SkillStep         = 0.02
	FlawlessThreshold = 16 // Consecutive flawless beats per reward

	// PenaltyCooldown suppresses re-penalty after a hit so one bad
	// sequence cannot collapse the modifier
	PenaltyCooldown = 2 * time.Second

	// DefaultSkill seeds profiles that have never been saved
	DefaultSkill = 0.5
)
