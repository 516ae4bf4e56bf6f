// Package settings is the live-adjustable parameter panel of the effect. It
// owns range and step constraints, so values handed to the frame scheduler
// are always valid.
package settings

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Range bounds and snaps a scalar.
type Range struct {
	Min, Max, Step, Default float64
}

// Clamp bounds v and rounds it to the nearest step.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Default
	}
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
		// Keep the decimal representation of the step instead of float noise.
		digits := math.Ceil(-math.Log10(r.Step))
		if digits > 0 {
			p := math.Pow(10, digits)
			v = math.Round(v*p) / p
		}
	}
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

var (
	ProgressRange   = Range{Min: 0, Max: 1, Step: 0.01, Default: 1}
	DistortionRange = Range{Min: 0, Max: 1, Step: 0.001, Default: 0.259}
)

// Values is the on-disk form of the panel.
type Values struct {
	Progress         float64 `toml:"progress"`
	DistortionAmount float64 `toml:"distortion_amount"`
}

// Defaults returns the panel's start values.
func Defaults() Values {
	return Values{Progress: ProgressRange.Default, DistortionAmount: DistortionRange.Default}
}

// Clamped returns v with every field bounded and snapped.
func (v Values) Clamped() Values {
	return Values{
		Progress:         ProgressRange.Clamp(v.Progress),
		DistortionAmount: DistortionRange.Clamp(v.DistortionAmount),
	}
}

// Parse decodes TOML on top of the defaults; absent keys keep their default.
func Parse(data []byte) (Values, error) {
	v := Defaults()
	if err := toml.Unmarshal(data, &v); err != nil {
		return Defaults(), fmt.Errorf("parsing settings: %w", err)
	}
	return v.Clamped(), nil
}

// Load reads a settings file. A missing file yields the defaults.
func Load(path string) (Values, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("reading settings %q: %w", path, err)
	}
	v, err := Parse(data)
	if err != nil {
		return v, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Encode renders values as TOML, used to print a starter file.
func Encode(v Values) ([]byte, error) {
	return toml.Marshal(v.Clamped())
}
