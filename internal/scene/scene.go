// Package scene holds the projection math shared by both render passes: the
// unit orthographic camera, brush sprite placement and the subdivided
// full-screen plane.
package scene

import (
	"math"

	"github.com/Distortions81/brush-displace/internal/wave"
)

const (
	// SpriteSize is the brush quad edge in scene units.
	SpriteSize = 0.1
	// ReferenceAspect is the base texture aspect (height/width) the shader corrects against.
	ReferenceAspect = 1.0
	// GridSegments subdivides the composite plane on each axis.
	GridSegments = 32
)

// Resolution describes the viewport and the aspect correction pair fed to the
// composite shader.
type Resolution struct {
	Width, Height float64
	A1, A2        float64
}

// NewResolution computes the descriptor for a viewport. Portrait surfaces
// (h/w above ReferenceAspect) shrink the x axis; others shrink y.
func NewResolution(width, height int) Resolution {
	w, h := float64(width), float64(height)
	r := Resolution{Width: w, Height: h, A1: 1, A2: 1}
	if w <= 0 || h <= 0 {
		return r
	}
	if h/w > ReferenceAspect {
		r.A1 = (w / h) * ReferenceAspect
		r.A2 = 1
	} else {
		r.A1 = 1
		r.A2 = (h / w) / ReferenceAspect
	}
	return r
}

// Vec4 packs the descriptor the way the shader uniform expects it.
func (r Resolution) Vec4() [4]float32 {
	return [4]float32{float32(r.Width), float32(r.Height), float32(r.A1), float32(r.A2)}
}

// ToPixels projects a scene-space point onto a width×height surface.
func ToPixels(p wave.Vec2, width, height int) (float64, float64) {
	w, h := float64(width), float64(height)
	return (p.X + 0.5) * w, (0.5 - p.Y) * h
}

// Affine is a 2×3 matrix using the same element layout as ebiten.GeoM:
// x' = A*x + B*y + Tx, y' = C*x + D*y + Ty.
type Affine struct {
	A, B, Tx float64
	C, D, Ty float64
}

// Apply transforms a point.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.Tx, m.C*x + m.D*y + m.Ty
}

// SpriteTransform maps brush texture pixels onto the displacement buffer for
// wave w. The quad is centred, scaled to SpriteSize*w.Scale scene units,
// rotated counter-clockwise in scene space and then projected.
func SpriteTransform(w wave.Wave, spriteW, spriteH, viewW, viewH int) Affine {
	if spriteW <= 0 || spriteH <= 0 {
		return Affine{}
	}
	vw, vh := float64(viewW), float64(viewH)
	sx := SpriteSize * w.Scale / float64(spriteW)
	sy := SpriteSize * w.Scale / float64(spriteH)
	c, s := math.Cos(w.Rotation), math.Sin(w.Rotation)

	// Pixel y grows downward, so a scene rotation by θ is a -θ rotation here.
	m := Affine{
		A: vw * c * sx, B: vw * s * sy,
		C: -vh * s * sx, D: vh * c * sy,
	}
	hx, hy := float64(spriteW)/2, float64(spriteH)/2
	px, py := ToPixels(w.Pos, viewW, viewH)
	m.Tx = px - (m.A*hx + m.B*hy)
	m.Ty = py - (m.C*hx + m.D*hy)
	return m
}
