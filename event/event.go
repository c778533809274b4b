package event

import (
	"time"

	"github.com/lixenwraith/pulse-runner/core"
)

// Type identifies collision feedback events
type Type int

const (
	TypePlayerHitObstacle Type = iota
	TypePlayerHitHealZone
)

func (t Type) String() string {
	names := [...]string{"player_hit_obstacle", "player_hit_heal_zone"}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// Event is one discrete collision report from the physics
// collaborator. At carries game time, so pause does not distort
// penalty cooldowns.
type Event struct {
	Type Type
	At   time.Time
	With core.CollisionTag
}
