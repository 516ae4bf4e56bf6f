package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw runs one frame of the pipeline into screen, then the optional overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	g.sched.Resize(b.Dx(), b.Dy())
	g.lastStats = g.sched.Frame(screen)

	if g.showStats {
		g.drawDebugOverlay(screen)
	}
	if g.panel.Visible() {
		g.drawPanel(screen)
	}
}

// Layout sizes the render surface in device pixels, capping the scale
// factor so high-density displays do not quadruple the fill cost.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = math.Min(m.DeviceScaleFactor(), maxPixelRatio)
	}
	w := int(math.Ceil(float64(outsideWidth) * scale))
	h := int(math.Ceil(float64(outsideHeight) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	g.surfaceW, g.surfaceH = w, h
	return w, h
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	st := g.lastStats
	pool := g.pool.Stats()
	p := g.sched.Params()
	last := g.tracker.LastSpawn()
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nFrame: %d  Time: %.2f\nWaves: %d visible, %d drawn, cursor %d, %d spawned\nDecay: %s\nPointer: %.3f, %.3f  last spawn %.3f, %.3f  moves %d\nSurface: %.0fx%.0f  aspect %.3f/%.3f",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		st.Frame, p.Time,
		pool.Visible, g.disp.Drawn(), pool.Cursor, pool.Spawned,
		g.sched.Decayer().Name(),
		p.Mouse.X, p.Mouse.Y, last.X, last.Y, g.tracker.Moves(),
		p.Resolution.Width, p.Resolution.Height, p.Resolution.A1, p.Resolution.A2)
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	v := g.panel.Values()
	msg := fmt.Sprintf("Parameters\nprogress         %.2f  [up/down]\ndistortionAmount %.3f [left/right]\nshift = x%d, tab = hide",
		v.Progress, v.DistortionAmount, panelFastSteps)
	ebitenutil.DebugPrintAt(screen, msg, screen.Bounds().Dx()-260, 8)
}
