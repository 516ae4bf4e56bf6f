package wave

// Decayer runs the per-frame decay step over a pool.
type Decayer interface {
	Decay(p *Pool) error
	Name() string
}

// CPUDecayer ticks the pool in place.
type CPUDecayer struct{}

// Decay runs one Pool.Tick.
func (CPUDecayer) Decay(p *Pool) error {
	p.Tick()
	return nil
}

// Name identifies the backend in the debug overlay.
func (CPUDecayer) Name() string { return "cpu" }

// Packed is a struct-of-arrays copy of the pool used by batch backends.
type Packed struct {
	Opacity  []float32
	Scale    []float32
	Rotation []float32
	Visible  []int32
}

// NewPacked allocates buffers for a full pool.
func NewPacked() *Packed {
	return &Packed{
		Opacity:  make([]float32, Capacity),
		Scale:    make([]float32, Capacity),
		Rotation: make([]float32, Capacity),
		Visible:  make([]int32, Capacity),
	}
}

// Load copies the pool state into the packed buffers.
func (pk *Packed) Load(p *Pool) {
	for i, w := range p.slots {
		pk.Opacity[i] = float32(w.Opacity)
		pk.Scale[i] = float32(w.Scale)
		pk.Rotation[i] = float32(w.Rotation)
		if w.Visible {
			pk.Visible[i] = 1
		} else {
			pk.Visible[i] = 0
		}
	}
}

// Store writes the packed buffers back into the pool. Positions are untouched.
func (pk *Packed) Store(p *Pool) {
	for i := range p.slots {
		w := &p.slots[i]
		w.Opacity = float64(pk.Opacity[i])
		w.Scale = float64(pk.Scale[i])
		w.Rotation = float64(pk.Rotation[i])
		w.Visible = pk.Visible[i] != 0
	}
}
