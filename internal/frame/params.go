// Package frame drives the per-frame update order of the effect and owns its
// timing state and shader parameters.
package frame

import (
	"github.com/Distortions81/brush-displace/internal/scene"
	"github.com/Distortions81/brush-displace/internal/wave"
)

// TimeStep is the fixed elapsed-time increment per rendered frame. Animation
// speed is tied to frame rate on purpose; the shader is tuned to it.
const TimeStep = 0.01

// Params is the composite shader's parameter set. It is created once and
// rewritten every frame.
type Params struct {
	Time             float64
	Progress         float64
	DistortionAmount float64
	Resolution       scene.Resolution
	Mouse            wave.Vec2
}

// Uniforms returns the parameters keyed by the shader's uniform names.
func (p *Params) Uniforms() map[string]any {
	res := p.Resolution.Vec4()
	return map[string]any{
		"Time":             float32(p.Time),
		"Progress":         float32(p.Progress),
		"DistortionAmount": float32(p.DistortionAmount),
		"Resolution":       res[:],
		"Mouse":            []float32{float32(p.Mouse.X), float32(p.Mouse.Y)},
	}
}
