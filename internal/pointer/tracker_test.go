package pointer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Distortions81/brush-displace/internal/wave"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		w, h int
		want wave.Vec2
	}{
		{"top left", 0, 0, 1000, 1000, wave.Vec2{X: -0.5, Y: 0.5}},
		{"centre", 500, 500, 1000, 1000, wave.Vec2{X: 0, Y: 0}},
		{"bottom right", 800, 600, 800, 600, wave.Vec2{X: 0.5, Y: -0.5}},
		{"off centre", 100, 100, 1000, 1000, wave.Vec2{X: -0.4, Y: 0.4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.x, tt.y, tt.w, tt.h)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
		})
	}
}

func TestMoveIgnoresEmptySurface(t *testing.T) {
	tr := NewTracker()
	tr.Move(10, 10, 0, 100)
	tr.Move(10, 10, 100, -1)
	assert.Equal(t, wave.Vec2{}, tr.Current())
	assert.Zero(t, tr.Moves())
}

func TestShouldSpawnThreshold(t *testing.T) {
	tests := []struct {
		name string
		pos  wave.Vec2
		want bool
	}{
		{"no movement", wave.Vec2{}, false},
		{"jitter on both axes", wave.Vec2{X: 0.0019, Y: -0.0019}, false},
		{"x at threshold", wave.Vec2{X: 0.0021}, true},
		{"y only", wave.Vec2{Y: -0.003}, true},
		{"large move", wave.Vec2{X: 0.3, Y: 0.3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			tr.current = tt.pos
			assert.Equal(t, tt.want, tr.ShouldSpawn())
		})
	}
}

func TestSameCoordinateNeverSpawnsTwice(t *testing.T) {
	tr := NewTracker()
	tr.Move(100, 100, 1000, 1000)
	require.True(t, tr.ShouldSpawn())
	tr.RecordSpawn()

	tr.Move(100, 100, 1000, 1000)
	assert.False(t, tr.ShouldSpawn())
}

func TestLatestMoveWins(t *testing.T) {
	tr := NewTracker()
	tr.Move(0, 0, 100, 100)
	tr.Move(50, 50, 100, 100)
	tr.Move(75, 25, 100, 100)

	assert.Equal(t, uint64(3), tr.Moves())
	assert.InDelta(t, 0.25, tr.Current().X, 1e-12)
	assert.InDelta(t, 0.25, tr.Current().Y, 1e-12)
}

func TestMailboxLastWriteWins(t *testing.T) {
	mb := NewMailbox[int]()
	_, ok := mb.Take()
	require.False(t, ok)

	mb.Put(1)
	mb.Put(2)
	mb.Put(3)
	v, ok := mb.Take()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = mb.Take()
	assert.False(t, ok)
}

func TestMailboxConcurrentPut(t *testing.T) {
	mb := NewMailbox[int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mb.Put(v)
			}
		}(i)
	}
	wg.Wait()

	_, ok := mb.Take()
	assert.True(t, ok)
	_, ok = mb.Take()
	assert.False(t, ok)
}
