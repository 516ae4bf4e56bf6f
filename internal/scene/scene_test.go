package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Distortions81/brush-displace/internal/wave"
)

func TestNewResolutionAspectPair(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		a1, a2 float64
	}{
		{"landscape", 800, 600, 1, 0.75},
		{"portrait", 600, 800, 0.75, 1},
		{"square", 500, 500, 1, 1},
		{"empty", 0, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolution(tt.w, tt.h)
			assert.Equal(t, float64(tt.w), r.Width)
			assert.Equal(t, float64(tt.h), r.Height)
			assert.InDelta(t, tt.a1, r.A1, 1e-12)
			assert.InDelta(t, tt.a2, r.A2, 1e-12)
		})
	}
}

func TestToPixels(t *testing.T) {
	x, y := ToPixels(wave.Vec2{X: 0, Y: 0}, 800, 600)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)

	x, y = ToPixels(wave.Vec2{X: -0.5, Y: 0.5}, 800, 600)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestSpriteTransformCentresOnWave(t *testing.T) {
	w := wave.Wave{Pos: wave.Vec2{X: 0.25, Y: -0.1}, Scale: 0.2, Rotation: 1.3}
	m := SpriteTransform(w, 64, 64, 1000, 800)

	cx, cy := m.Apply(32, 32)
	px, py := ToPixels(w.Pos, 1000, 800)
	assert.InDelta(t, px, cx, 1e-9)
	assert.InDelta(t, py, cy, 1e-9)
}

func TestSpriteTransformSize(t *testing.T) {
	w := wave.Wave{Scale: 1}
	m := SpriteTransform(w, 50, 100, 1000, 1000)

	x0, y0 := m.Apply(0, 0)
	x1, y1 := m.Apply(50, 100)
	assert.InDelta(t, 100, x1-x0, 1e-9, "0.1 scene units of a 1000px viewport")
	assert.InDelta(t, 100, y1-y0, 1e-9)
}

func TestSpriteTransformRotatesCounterClockwise(t *testing.T) {
	w := wave.Wave{Scale: 1, Rotation: math.Pi / 2}
	m := SpriteTransform(w, 10, 10, 1000, 1000)

	// The texture's right edge midpoint should end up above the centre on
	// screen after a quarter turn counter-clockwise.
	x, y := m.Apply(10, 5)
	assert.InDelta(t, 500, x, 1e-9)
	assert.InDelta(t, 450, y, 1e-9)
}

func TestSpriteTransformDegenerateSprite(t *testing.T) {
	assert.Equal(t, Affine{}, SpriteTransform(wave.Wave{Scale: 1}, 0, 10, 100, 100))
}

func TestGridMesh(t *testing.T) {
	verts, idx := GridMesh(GridSegments, 640, 480)
	require.Len(t, verts, 33*33)
	require.Len(t, idx, 32*32*6)

	last := verts[len(verts)-1]
	assert.Equal(t, float32(640), last.DstX)
	assert.Equal(t, float32(480), last.DstY)
	assert.Equal(t, last.DstX, last.SrcX)

	for _, i := range idx {
		require.Less(t, int(i), len(verts))
	}
}

func TestGridMeshClampsSegments(t *testing.T) {
	verts, idx := GridMesh(0, 10, 10)
	assert.Len(t, verts, 4)
	assert.Len(t, idx, 6)
}
