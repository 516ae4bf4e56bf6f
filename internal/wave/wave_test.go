package wave

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool() *Pool {
	return NewPool(WithRand(rand.New(rand.NewSource(1))))
}

func TestSpawnInitialState(t *testing.T) {
	p := newTestPool()
	idx := p.Spawn(Vec2{X: 0.1, Y: -0.2})

	require.Equal(t, 1, idx, "first spawn advances the cursor before writing")
	w := p.At(idx)
	assert.Equal(t, Vec2{X: 0.1, Y: -0.2}, w.Pos)
	assert.Equal(t, SpawnScale, w.Scale)
	assert.Equal(t, SpawnOpacity, w.Opacity)
	assert.True(t, w.Visible)
	assert.GreaterOrEqual(t, w.Rotation, 0.0)
	assert.Less(t, w.Rotation, 2*math.Pi)
}

func TestSpawnWrapsAndOverwritesSameSlot(t *testing.T) {
	p := newTestPool()
	first := p.Spawn(Vec2{X: 0.3})
	for i := 1; i < Capacity; i++ {
		p.Spawn(Vec2{})
	}
	again := p.Spawn(Vec2{X: -0.4})

	assert.Equal(t, first, again)
	assert.Equal(t, -0.4, p.At(again).Pos.X)
	assert.Equal(t, Capacity, p.Stats().Visible)
	assert.Equal(t, uint64(Capacity+1), p.Stats().Spawned)
}

func TestPoolNeverExceedsCapacity(t *testing.T) {
	p := newTestPool()
	for i := 0; i < 5*Capacity+7; i++ {
		idx := p.Spawn(Vec2{X: float64(i)})
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, Capacity)
		require.LessOrEqual(t, p.Stats().Visible, Capacity)
	}
	assert.Len(t, p.AppendVisible(nil), Capacity)
}

func TestSpawnOverwritesVisibleWaveMidDecay(t *testing.T) {
	p := newTestPool()
	idx := p.Spawn(Vec2{X: 0.25})
	p.Tick()
	p.Tick()
	for i := 1; i < Capacity; i++ {
		p.Spawn(Vec2{})
	}
	require.True(t, p.At(idx).Visible)
	require.Less(t, p.At(idx).Opacity, SpawnOpacity)

	p.Spawn(Vec2{X: 0.5})
	w := p.At(idx)
	assert.Equal(t, 0.5, w.Pos.X)
	assert.Equal(t, SpawnOpacity, w.Opacity)
	assert.Equal(t, SpawnScale, w.Scale)
}

func TestOpacityDecayAndHide(t *testing.T) {
	p := newTestPool()
	idx := p.Spawn(Vec2{})

	hiddenAt := -1
	for k := 1; k <= 200; k++ {
		p.Tick()
		w := p.At(idx)
		want := SpawnOpacity * math.Pow(OpacityFade, float64(k))
		if w.Visible || hiddenAt < 0 {
			assert.InDelta(t, want, w.Opacity, 1e-12, "tick %d", k)
		}
		if !w.Visible && hiddenAt < 0 {
			hiddenAt = k
		}
	}
	assert.Equal(t, 113, hiddenAt)
	assert.False(t, p.At(idx).Visible, "hidden waves never come back on their own")
}

func TestHiddenWaveStopsUpdating(t *testing.T) {
	p := newTestPool()
	idx := p.Spawn(Vec2{})
	for k := 0; k < 113; k++ {
		p.Tick()
	}
	frozen := p.At(idx)
	require.False(t, frozen.Visible)
	for k := 0; k < 50; k++ {
		p.Tick()
	}
	assert.Equal(t, frozen, p.At(idx))
}

func TestScaleConvergesMonotonically(t *testing.T) {
	p := newTestPool()
	idx := p.Spawn(Vec2{})
	fixed := ScaleGrowth / (1 - ScaleKeep)
	require.InDelta(t, 6.0, fixed, 1e-9)

	prev := p.At(idx).Scale
	for p.At(idx).Visible {
		p.Tick()
		s := p.At(idx).Scale
		assert.Greater(t, s, prev)
		assert.Less(t, s, fixed)
		prev = s
	}
}

func TestRotationStep(t *testing.T) {
	p := newTestPool()
	idx := p.Spawn(Vec2{})
	start := p.At(idx).Rotation
	for k := 0; k < 10; k++ {
		p.Tick()
	}
	assert.InDelta(t, start+10*RotationStep, p.At(idx).Rotation, 1e-12)
}

func TestVisibleIteratesInSlotOrder(t *testing.T) {
	p := newTestPool()
	p.Spawn(Vec2{X: 1})
	p.Spawn(Vec2{X: 2})
	p.Spawn(Vec2{X: 3})

	var got []int
	p.Visible(func(i int, w Wave) {
		got = append(got, i)
		assert.Equal(t, float64(i), w.Pos.X)
	})
	assert.Equal(t, []int{1, 2, 3}, got)

	ws := p.AppendVisible(nil)
	require.Len(t, ws, 3)
	for i, w := range ws {
		assert.Equal(t, float64(i+1), w.Pos.X)
	}
}

func TestPackedRoundTripMatchesCPUDecay(t *testing.T) {
	cpu := newTestPool()
	packed := newTestPool()
	for i := 0; i < 10; i++ {
		cpu.Spawn(Vec2{X: float64(i)})
		packed.Spawn(Vec2{X: float64(i)})
	}

	pk := NewPacked()
	pk.Load(packed)
	for i := range pk.Opacity {
		if pk.Visible[i] == 0 {
			continue
		}
		pk.Rotation[i] += RotationStep
		pk.Opacity[i] *= OpacityFade
		pk.Scale[i] = ScaleKeep*pk.Scale[i] + ScaleGrowth
	}
	pk.Store(packed)
	require.NoError(t, CPUDecayer{}.Decay(cpu))

	for i := 0; i < Capacity; i++ {
		a, b := cpu.At(i), packed.At(i)
		assert.Equal(t, a.Visible, b.Visible)
		assert.Equal(t, a.Pos, b.Pos)
		assert.InDelta(t, a.Opacity, b.Opacity, 1e-6)
		assert.InDelta(t, a.Scale, b.Scale, 1e-6)
	}
}
