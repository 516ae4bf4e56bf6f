package assets

import (
	"image"
	"image/color"
	"math"
)

// Placeholder is a single opaque texel bound before the base texture loads.
func Placeholder() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0x00, G: 0x05, B: 0x20, A: 0xff})
	return img
}

// BrushStroke draws a soft, slightly ragged ring used when no brush image is
// supplied. White with alpha falloff so additive blending builds intensity.
func BrushStroke(size int) image.Image {
	if size < 2 {
		size = 2
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := (float64(x)-c)/c, (float64(y)-c)/c
			r := math.Hypot(dx, dy)
			theta := math.Atan2(dy, dx)
			edge := 0.78 + 0.06*math.Sin(theta*7) + 0.03*math.Sin(theta*13)
			ring := 1 - math.Abs(r-edge*0.8)/(edge*0.35)
			a := math.Max(0, math.Min(1, ring))
			a = a * a * (3 - 2*a)
			img.SetNRGBA(x, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(a * 255)})
		}
	}
	return img
}

// BaseTexture generates a square colour field with enough structure to make
// the distortion visible.
func BaseTexture(size int) image.Image {
	if size < 1 {
		size = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	n := float64(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			u, v := float64(x)/n, float64(y)/n
			stripes := 0.5 + 0.5*math.Sin((u+v)*40)
			glow := math.Exp(-((u-0.5)*(u-0.5) + (v-0.5)*(v-0.5)) * 6)
			r := 0.05 + 0.25*stripes*glow + 0.35*glow
			g := 0.10 + 0.30*u*glow
			b := 0.30 + 0.55*glow + 0.15*stripes
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(math.Min(1, r) * 255),
				G: uint8(math.Min(1, g) * 255),
				B: uint8(math.Min(1, b) * 255),
				A: 0xff,
			})
		}
	}
	return img
}
