// Package pointer turns raw pointer positions into scene-space coordinates
// and decides when movement is large enough to paint a new stroke.
package pointer

import (
	"math"

	"github.com/Distortions81/brush-displace/internal/wave"
)

const (
	// SpawnThreshold is the per-axis scene-space movement that counts as a stroke.
	SpawnThreshold = 0.002
	// sceneScale maps the [-1,1] device range onto the unit orthographic frustum.
	sceneScale = 0.5
)

// Tracker holds the latest pointer coordinate and the coordinate of the last
// spawned stroke. Moves are last-write-wins; only the value present when a
// frame runs is observed.
type Tracker struct {
	current   wave.Vec2
	lastSpawn wave.Vec2
	moves     uint64
}

// NewTracker returns a tracker at the scene origin.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Move records a raw device position on a surface of the given size.
func (t *Tracker) Move(rawX, rawY float64, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	t.current = Normalize(rawX, rawY, width, height)
	t.moves++
}

// Normalize converts device pixels (origin top-left, y down) to scene space
// (origin centre, y up, extent ±0.5).
func Normalize(rawX, rawY float64, width, height int) wave.Vec2 {
	nx := rawX/float64(width)*2 - 1
	ny := -(rawY/float64(height)*2 - 1)
	return wave.Vec2{X: nx * sceneScale, Y: ny * sceneScale}
}

// Current returns the latest scene-space pointer coordinate.
func (t *Tracker) Current() wave.Vec2 { return t.current }

// LastSpawn returns the coordinate recorded by the last RecordSpawn.
func (t *Tracker) LastSpawn() wave.Vec2 { return t.lastSpawn }

// Moves counts Move calls that were accepted.
func (t *Tracker) Moves() uint64 { return t.moves }

// ShouldSpawn reports whether the pointer moved at least SpawnThreshold on
// either axis since the last recorded spawn.
func (t *Tracker) ShouldSpawn() bool {
	dx := math.Abs(t.current.X - t.lastSpawn.X)
	dy := math.Abs(t.current.Y - t.lastSpawn.Y)
	return dx >= SpawnThreshold || dy >= SpawnThreshold
}

// RecordSpawn makes the current coordinate the new reference.
func (t *Tracker) RecordSpawn() {
	t.lastSpawn = t.current
}
