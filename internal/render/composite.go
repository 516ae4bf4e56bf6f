package render

import (
	_ "embed"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Distortions81/brush-displace/internal/assets"
	"github.com/Distortions81/brush-displace/internal/frame"
	"github.com/Distortions81/brush-displace/internal/scene"
)

//go:embed composite.kage
var compositeShaderSrc []byte

// CompositePass draws the subdivided plane with the distortion shader.
type CompositePass struct {
	shader *ebiten.Shader

	source image.Image
	base   *ebiten.Image
	disp   *ebiten.Image

	verts []ebiten.Vertex
	index []uint16
	op    ebiten.DrawTrianglesShaderOptions

	width, height int
}

// NewCompositePass compiles the shader. A compile failure means the surface
// cannot render at all and is returned as ErrShaderUnavailable.
func NewCompositePass() (*CompositePass, error) {
	shader, err := ebiten.NewShader(compositeShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaderUnavailable, err)
	}
	return &CompositePass{shader: shader, source: assets.Placeholder()}, nil
}

// SetBaseTexture swaps in the loaded base image and refits it to the viewport.
func (c *CompositePass) SetBaseTexture(img image.Image) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	c.source = img
	c.refit()
}

// Resize rebuilds the plane mesh and the viewport-sized base image.
func (c *CompositePass) Resize(width, height int) {
	c.width, c.height = width, height
	verts, index := scene.GridMesh(scene.GridSegments, width, height)
	c.verts = c.verts[:0]
	for _, v := range verts {
		c.verts = append(c.verts, ebiten.Vertex{
			DstX: v.DstX, DstY: v.DstY,
			SrcX: v.SrcX, SrcY: v.SrcY,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}
	c.index = index
	c.refit()
}

// Every shader source image must match the viewport, so the base texture is
// resampled whenever either side changes.
func (c *CompositePass) refit() {
	if c.width <= 0 || c.height <= 0 {
		return
	}
	old := c.base
	c.base = ebiten.NewImageFromImage(assets.Fit(c.source, c.width, c.height))
	if old != nil {
		old.Deallocate()
	}
}

// SetDisplacement binds the displacement pass output.
func (c *CompositePass) SetDisplacement(t frame.Target) {
	img, _ := t.(*ebiten.Image)
	c.disp = img
}

// Render clears dst and draws the distorted plane.
func (c *CompositePass) Render(dst frame.Target, p *frame.Params) {
	screen, ok := dst.(*ebiten.Image)
	if !ok {
		return
	}
	screen.Fill(ClearColor)
	if c.base == nil || c.disp == nil || len(c.index) == 0 {
		return
	}
	c.op.Uniforms = p.Uniforms()
	c.op.Images[0] = c.base
	c.op.Images[1] = c.disp
	screen.DrawTrianglesShader(c.verts, c.index, c.shader, &c.op)
}
