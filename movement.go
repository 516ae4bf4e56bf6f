package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// enableAutopilot schedules scripted pointer movement for a limited duration.
func (g *Game) enableAutopilot(duration time.Duration) {
	g.autopilot = true
	g.autopilotDeadline = time.Now().Add(duration)
	if g.autopilotRand == nil {
		g.autopilotRand = rand.New(rand.NewSource(time.Now().UnixNano() + 3))
	}
	g.autopilotPlaced = false
	g.autopilotFrameCount = 0
}

// pollPointer feeds the latest pointer position into the tracker.
func (g *Game) pollPointer() {
	if g.surfaceW <= 0 || g.surfaceH <= 0 {
		return
	}
	x, y, ok := g.pointerPosition()
	if !ok {
		return
	}
	g.observePointer(x, y)
}

// observePointer forwards a position only when it differs from the last one
// seen. The first observation only seeds the baseline, so a resting cursor
// never counts as a move.
func (g *Game) observePointer(x, y int) {
	if !g.pointerSeen {
		g.pointerSeen = true
		g.lastCursorX, g.lastCursorY = x, y
		return
	}
	if x == g.lastCursorX && y == g.lastCursorY {
		return
	}
	g.lastCursorX, g.lastCursorY = x, y
	g.tracker.Move(float64(x), float64(y), g.surfaceW, g.surfaceH)
}

// pointerPosition selects scripted, touch or mouse input, in that order.
func (g *Game) pointerPosition() (int, int, bool) {
	if g.autopilot {
		if time.Now().After(g.autopilotDeadline) {
			g.autopilot = false
		} else {
			x, y := g.autopilotStep()
			return int(x), int(y), true
		}
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	x, y := ebiten.CursorPosition()
	return x, y, true
}

// autopilotStep advances the scripted pointer, bouncing off surface edges.
func (g *Game) autopilotStep() (float64, float64) {
	if !g.autopilotPlaced {
		g.autopilotX = float64(g.surfaceW) / 2
		g.autopilotY = float64(g.surfaceH) / 2
		g.autopilotPlaced = true
	}
	if g.autopilotFrameCount <= 0 {
		g.randomizeAutopilotDirection()
	}
	g.autopilotFrameCount--
	w, h := float64(g.surfaceW), float64(g.surfaceH)
	nx := g.autopilotX + g.autopilotDirX*autopilotSpeed
	ny := g.autopilotY + g.autopilotDirY*autopilotSpeed
	if nx < 0 || nx >= w {
		g.autopilotDirX = -g.autopilotDirX
		nx = math.Max(0, math.Min(w-1, nx))
	}
	if ny < 0 || ny >= h {
		g.autopilotDirY = -g.autopilotDirY
		ny = math.Max(0, math.Min(h-1, ny))
	}
	g.autopilotX, g.autopilotY = nx, ny
	return nx, ny
}

// randomizeAutopilotDirection chooses a new heading for scripted movement.
func (g *Game) randomizeAutopilotDirection() {
	angle := g.autopilotRand.Float64() * 2 * math.Pi
	g.autopilotDirX = math.Cos(angle)
	g.autopilotDirY = math.Sin(angle)
	g.autopilotFrameCount = autopilotMinFrames + g.autopilotRand.Intn(autopilotMaxFrames-autopilotMinFrames)
}

// handlePanelControls processes settings panel hotkeys. Tab shows the panel;
// arrows adjust values while it is visible, Shift for larger steps. F3
// toggles the stats overlay.
func (g *Game) handlePanelControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showStats = !g.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.Toggle()
	}
	if !g.panel.Visible() {
		return
	}
	step := 1
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = panelFastSteps
	}
	if repeatPressed(ebiten.KeyArrowUp) {
		g.panel.NudgeProgress(step)
	}
	if repeatPressed(ebiten.KeyArrowDown) {
		g.panel.NudgeProgress(-step)
	}
	if repeatPressed(ebiten.KeyArrowRight) {
		g.panel.NudgeDistortion(step)
	}
	if repeatPressed(ebiten.KeyArrowLeft) {
		g.panel.NudgeDistortion(-step)
	}
}

// repeatPressed fires on press and then every few ticks while held.
func repeatPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 20 && d%4 == 0)
}
