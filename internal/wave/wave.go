// Package wave implements the fixed-capacity pool of decaying brush strokes
// that feeds the displacement pass.
package wave

import (
	"math"
	"math/rand"
	"time"
)

// Pool and decay constants. A wave spawns at spawnScale/spawnOpacity and is
// relaxed towards the scale fixed point growth/(1-scaleKeep) every tick.
const (
	Capacity      = 100
	SpawnScale    = 0.2
	SpawnOpacity  = 0.2
	RotationStep  = 0.02
	OpacityFade   = 0.96
	ScaleKeep     = 0.982
	ScaleGrowth   = 0.108
	HideThreshold = 0.002
)

// Vec2 is a scene-space coordinate.
type Vec2 struct {
	X, Y float64
}

// Wave is one brush stroke instance.
type Wave struct {
	Pos      Vec2
	Scale    float64
	Opacity  float64
	Rotation float64
	Visible  bool
}

// decay advances a visible wave by one frame.
func (w *Wave) decay() {
	if !w.Visible {
		return
	}
	w.Rotation += RotationStep
	w.Opacity *= OpacityFade
	w.Scale = ScaleKeep*w.Scale + ScaleGrowth
	if w.Opacity < HideThreshold {
		w.Visible = false
	}
}

// Stats summarises pool occupancy.
type Stats struct {
	Visible int
	Cursor  int
	Spawned uint64
}

// Pool is a ring of Capacity waves indexed by a wrapping cursor. Spawning
// always overwrites the slot after the cursor, whether or not the wave there
// has faded yet.
type Pool struct {
	slots   [Capacity]Wave
	cursor  int
	spawned uint64
	rng     *rand.Rand
}

// Option configures a Pool.
type Option func(*Pool)

// WithRand sets the source used for initial stroke rotation.
func WithRand(r *rand.Rand) Option {
	return func(p *Pool) { p.rng = r }
}

// NewPool returns an empty pool; every slot starts hidden.
func NewPool(opts ...Option) *Pool {
	p := &Pool{}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p
}

// Spawn advances the cursor and resets that slot to a fresh stroke at pos.
// It returns the slot index that was written.
func (p *Pool) Spawn(pos Vec2) int {
	p.cursor = (p.cursor + 1) % Capacity
	p.slots[p.cursor] = Wave{
		Pos:      pos,
		Scale:    SpawnScale,
		Opacity:  SpawnOpacity,
		Rotation: 2 * math.Pi * p.rng.Float64(),
		Visible:  true,
	}
	p.spawned++
	return p.cursor
}

// Tick applies one decay step to every visible wave.
func (p *Pool) Tick() {
	for i := range p.slots {
		p.slots[i].decay()
	}
}

// Visible calls fn for each visible wave in slot order.
func (p *Pool) Visible(fn func(index int, w Wave)) {
	for i := range p.slots {
		if p.slots[i].Visible {
			fn(i, p.slots[i])
		}
	}
}

// AppendVisible appends the visible waves to dst in slot order.
func (p *Pool) AppendVisible(dst []Wave) []Wave {
	p.Visible(func(_ int, w Wave) {
		dst = append(dst, w)
	})
	return dst
}

// At returns the wave stored in slot i.
func (p *Pool) At(i int) Wave {
	return p.slots[i]
}

// Stats reports the current occupancy.
func (p *Pool) Stats() Stats {
	s := Stats{Cursor: p.cursor, Spawned: p.spawned}
	for i := range p.slots {
		if p.slots[i].Visible {
			s.Visible++
		}
	}
	return s
}
