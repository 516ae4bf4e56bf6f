package frame

import (
	"github.com/Distortions81/brush-displace/internal/scene"
	"github.com/Distortions81/brush-displace/internal/wave"
)

// Tracker is the input side the scheduler polls once per frame.
type Tracker interface {
	ShouldSpawn() bool
	RecordSpawn()
	Current() wave.Vec2
}

// Settings supplies the live-adjustable scalars.
type Settings interface {
	Progress() float64
	DistortionAmount() float64
}

// Target is an opaque render target handle.
type Target any

// Displacer renders visible waves into the offscreen displacement buffer.
type Displacer interface {
	Resize(width, height int)
	Render(waves []wave.Wave) Target
}

// Compositor renders the distorted plane into the visible target.
type Compositor interface {
	Resize(width, height int)
	SetDisplacement(t Target)
	Render(dst Target, p *Params)
}

// Stats describes one completed frame.
type Stats struct {
	Frame   uint64
	Spawned bool
	Slot    int
	Visible int
}

// Scheduler runs the frame pipeline in a fixed order. It is not safe for
// concurrent use; all calls come from the frame goroutine.
type Scheduler struct {
	pool       *wave.Pool
	tracker    Tracker
	settings   Settings
	disp       Displacer
	comp       Compositor
	decayer    wave.Decayer
	onDecayErr func(error)

	params  Params
	frame   uint64
	scratch []wave.Wave

	width, height int
	pendingW      int
	pendingH      int
	resizePending bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithDecayer swaps the decay backend. On error the scheduler falls back to
// the CPU decayer and reports through onErr.
func WithDecayer(d wave.Decayer, onErr func(error)) Option {
	return func(s *Scheduler) {
		s.decayer = d
		s.onDecayErr = onErr
	}
}

// NewScheduler wires the pipeline.
func NewScheduler(pool *wave.Pool, tr Tracker, st Settings, disp Displacer, comp Compositor, opts ...Option) *Scheduler {
	s := &Scheduler{
		pool:     pool,
		tracker:  tr,
		settings: st,
		disp:     disp,
		comp:     comp,
		decayer:  wave.CPUDecayer{},
		scratch:  make([]wave.Wave, 0, wave.Capacity),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.params.Progress = st.Progress()
	s.params.DistortionAmount = st.DistortionAmount()
	return s
}

// Resize queues new surface dimensions. They take effect at the start of the
// next frame so a frame never sees half-applied sizes.
func (s *Scheduler) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if !s.resizePending && width == s.width && height == s.height {
		return
	}
	s.pendingW, s.pendingH = width, height
	s.resizePending = true
}

// Size returns the dimensions the current frame renders at.
func (s *Scheduler) Size() (int, int) { return s.width, s.height }

// Params exposes the parameter set for read-only use such as overlays.
func (s *Scheduler) Params() *Params { return &s.params }

// Frame runs one full tick and renders into dst.
func (s *Scheduler) Frame(dst Target) Stats {
	s.applyResize()
	s.frame++
	st := Stats{Frame: s.frame, Slot: -1}

	if s.tracker.ShouldSpawn() {
		st.Slot = s.pool.Spawn(s.tracker.Current())
		st.Spawned = true
		s.tracker.RecordSpawn()
	}

	s.params.Time += TimeStep
	s.params.Progress = s.settings.Progress()
	s.params.DistortionAmount = s.settings.DistortionAmount()
	s.params.Mouse = s.tracker.Current()

	s.scratch = s.pool.AppendVisible(s.scratch[:0])
	st.Visible = len(s.scratch)
	out := s.disp.Render(s.scratch)
	s.comp.SetDisplacement(out)
	s.comp.Render(dst, &s.params)

	s.decay()
	return st
}

func (s *Scheduler) decay() {
	if err := s.decayer.Decay(s.pool); err != nil {
		if s.onDecayErr != nil {
			s.onDecayErr(err)
		}
		s.decayer = wave.CPUDecayer{}
		s.pool.Tick()
	}
}

// Decayer reports the active decay backend.
func (s *Scheduler) Decayer() wave.Decayer { return s.decayer }

func (s *Scheduler) applyResize() {
	if !s.resizePending {
		return
	}
	s.resizePending = false
	s.width, s.height = s.pendingW, s.pendingH
	s.params.Resolution = scene.NewResolution(s.width, s.height)
	s.disp.Resize(s.width, s.height)
	s.comp.Resize(s.width, s.height)
}
