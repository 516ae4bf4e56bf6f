// Package render implements the two Ebitengine passes of the effect: brush
// strokes into an offscreen displacement buffer, then the distorted
// full-screen plane into the visible target.
package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Distortions81/brush-displace/internal/frame"
	"github.com/Distortions81/brush-displace/internal/scene"
	"github.com/Distortions81/brush-displace/internal/wave"
)

// ErrShaderUnavailable reports that the composite shader failed to compile.
var ErrShaderUnavailable = errors.New("composite shader unavailable")

// ClearColor is the visible target's background.
var ClearColor = color.RGBA{R: 0x00, G: 0x05, B: 0x20, A: 0xff}

func geoM(m scene.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.B)
	g.SetElement(0, 2, m.Tx)
	g.SetElement(1, 0, m.C)
	g.SetElement(1, 1, m.D)
	g.SetElement(1, 2, m.Ty)
	return g
}

// DisplacementPass accumulates visible waves into an offscreen image. Sprites
// blend additively in pool order; nothing is depth tested.
type DisplacementPass struct {
	buf    *ebiten.Image
	brush  *ebiten.Image
	batch  []ebiten.DrawImageOptions
	width  int
	height int
	drawn  int
}

// spriteOptions places one brush draw for w. Strokes always sample the brush
// linearly and add into the buffer with their opacity as alpha.
func spriteOptions(w wave.Wave, brushW, brushH, viewW, viewH int) ebiten.DrawImageOptions {
	var op ebiten.DrawImageOptions
	op.GeoM = geoM(scene.SpriteTransform(w, brushW, brushH, viewW, viewH))
	op.ColorScale.ScaleAlpha(float32(w.Opacity))
	op.Blend = ebiten.BlendLighter
	op.Filter = ebiten.FilterLinear
	return op
}

// appendSpriteBatch appends one draw per wave, keeping the order of waves.
func appendSpriteBatch(dst []ebiten.DrawImageOptions, waves []wave.Wave, brushW, brushH, viewW, viewH int) []ebiten.DrawImageOptions {
	for _, w := range waves {
		dst = append(dst, spriteOptions(w, brushW, brushH, viewW, viewH))
	}
	return dst
}

// NewDisplacementPass starts with a transparent one-texel brush so strokes
// draw nothing until the real sprite arrives.
func NewDisplacementPass() *DisplacementPass {
	return &DisplacementPass{brush: ebiten.NewImage(1, 1)}
}

// SetBrush replaces the stroke sprite.
func (d *DisplacementPass) SetBrush(img image.Image) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	old := d.brush
	d.brush = ebiten.NewImageFromImage(img)
	if old != nil {
		old.Deallocate()
	}
}

// Resize recreates the buffer; previous contents are dropped.
func (d *DisplacementPass) Resize(width, height int) {
	if d.buf != nil {
		d.buf.Deallocate()
	}
	d.width, d.height = width, height
	d.buf = ebiten.NewImage(width, height)
}

// Render clears the buffer and draws every wave. It returns the buffer.
func (d *DisplacementPass) Render(waves []wave.Wave) frame.Target {
	if d.buf == nil {
		return nil
	}
	d.buf.Clear()
	b := d.brush.Bounds()
	d.batch = appendSpriteBatch(d.batch[:0], waves, b.Dx(), b.Dy(), d.width, d.height)
	for i := range d.batch {
		d.buf.DrawImage(d.brush, &d.batch[i])
	}
	d.drawn = len(d.batch)
	return d.buf
}

// Drawn reports how many sprites the last Render issued.
func (d *DisplacementPass) Drawn() int { return d.drawn }
