package pattern

import (
	"github.com/lixenwraith/pulse-runner/core"
)

// Seed derives a reproducible 64-bit value from a beat index
// (splitmix64 finalizer). Visual variation must key off this, never
// wall-clock, so replays and offline tests see identical decisions.
func Seed(index int64) uint64 {
	z := uint64(index) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// SpawnSide picks the playfield side for a beat's spawns
func SpawnSide(index int64) core.Side {
	if Seed(index)&1 == 0 {
		return core.SideLeft
	}
	return core.SideRight
}

// Offset returns a reproducible position 0.0-1.0 along a spawn edge.
// salt separates independent draws for the same beat.
func Offset(index int64, salt uint64) float64 {
	v := Seed(index) ^ (salt * 0xd6e8feb86659fd93)
	return float64(v>>11) / float64(1<<53)
}
