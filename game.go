package main

import (
	"image"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Distortions81/brush-displace/internal/assets"
	"github.com/Distortions81/brush-displace/internal/frame"
	"github.com/Distortions81/brush-displace/internal/logging"
	"github.com/Distortions81/brush-displace/internal/pointer"
	"github.com/Distortions81/brush-displace/internal/render"
	"github.com/Distortions81/brush-displace/internal/settings"
	"github.com/Distortions81/brush-displace/internal/wave"
)

// Game wires the effect into Ebitengine. Update gathers input and
// collaborator results; Draw runs exactly one frame of the pipeline.
type Game struct {
	pool    *wave.Pool
	tracker *pointer.Tracker
	panel   *settings.Panel
	disp    *render.DisplacementPass
	comp    *render.CompositePass
	sched   *frame.Scheduler
	decayer *openCLDecayer

	brushLoad   *assets.Loader
	textureLoad *assets.Loader

	surfaceW, surfaceH int
	pointerSeen        bool
	lastCursorX        int
	lastCursorY        int
	lastStats          frame.Stats
	showStats          bool

	autopilot           bool
	autopilotDeadline   time.Time
	autopilotRand       *rand.Rand
	autopilotPlaced     bool
	autopilotX          float64
	autopilotY          float64
	autopilotDirX       float64
	autopilotDirY       float64
	autopilotFrameCount int

	stopProfile func()
}

// newGame builds the render passes and scheduler. A shader failure is
// returned because nothing can be drawn without it.
func newGame(panel *settings.Panel) (*Game, error) {
	comp, err := render.NewCompositePass()
	if err != nil {
		return nil, err
	}
	g := &Game{
		pool:          wave.NewPool(),
		tracker:       pointer.NewTracker(),
		panel:         panel,
		disp:          render.NewDisplacementPass(),
		comp:          comp,
		autopilotRand: rand.New(rand.NewSource(time.Now().UnixNano() + 2)),
		showStats:     *debugFlag,
	}

	var opts []frame.Option
	if *gpuDecayFlag {
		if d, err := newOpenCLDecayer(); err != nil {
			logging.Warn("OpenCL decay unavailable, using CPU: %v", err)
		} else {
			logging.Info("OpenCL decay enabled (device: %s)", d.DeviceName())
			g.decayer = d
			opts = append(opts, frame.WithDecayer(d, func(err error) {
				logging.Warn("OpenCL decay failed, switching to CPU: %v", err)
			}))
		}
	}
	g.sched = frame.NewScheduler(g.pool, g.tracker, g.panel, g.disp, g.comp, opts...)

	g.brushLoad = assets.Load("brush", *brushFlag, func() image.Image {
		return assets.BrushStroke(brushFallbackSize)
	})
	g.textureLoad = assets.Load("texture", *textureFlag, func() image.Image {
		return assets.BaseTexture(textureFallbackPx)
	})
	return g, nil
}

// Update polls collaborators and input. No rendering state changes here
// except through the frame-goroutine hand-offs.
func (g *Game) Update() error {
	if g.panel.Sync() {
		logging.Info("settings applied: progress=%.2f distortion=%.3f", g.panel.Progress(), g.panel.DistortionAmount())
	}
	g.pollAssets()
	g.handlePanelControls()
	g.pollPointer()

	if g.stopProfile != nil && !g.autopilot {
		g.stopProfile()
		g.stopProfile = nil
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pollAssets() {
	if res, ok := g.brushLoad.Poll(); ok {
		g.applyAsset(res)
		g.disp.SetBrush(res.Image)
	}
	if res, ok := g.textureLoad.Poll(); ok {
		g.applyAsset(res)
		g.comp.SetBaseTexture(res.Image)
	}
}

func (g *Game) applyAsset(res assets.Result) {
	if res.Err != nil {
		logging.Warn("%s asset failed, using generated image: %v", res.Name, res.Err)
		return
	}
	b := res.Image.Bounds()
	logging.Debug("%s asset ready (%dx%d)", res.Name, b.Dx(), b.Dy())
}

// close releases resources that outlive the window.
func (g *Game) close() {
	if g.stopProfile != nil {
		g.stopProfile()
	}
	if g.decayer != nil {
		g.decayer.Close()
	}
}
