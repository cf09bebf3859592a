package dataset

import (
	"math"

	"github.com/arloliu/pvfit/internal/hash"
)

// SkyCloudy is the sky-state value that marks an overcast sample.
const SkyCloudy = "cloudy"

// SkyClear is the sky-state value that marks a clear-sky sample.
const SkyClear = "clear"

// Sample is a single paired measurement.
type Sample struct {
	// Irradiance is the solar irradiance in W/m².
	Irradiance float64 `json:"irradiance" yaml:"irradiance"`
	// Power is the photovoltaic power in kW.
	Power float64 `json:"power" yaml:"power"`
	// Generation is the generated energy rate in kW.
	Generation float64 `json:"generation" yaml:"generation"`
	// SkyState is the categorical sky condition ("cloudy" or "clear").
	SkyState string `json:"sky_state" yaml:"sky_state"`
	// Inclination is the panel inclination in degrees.
	Inclination float64 `json:"inclination" yaml:"inclination"`
	// Temperature is the ambient temperature in °C.
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// Valid reports whether irradiance, power and generation are all finite and non-zero.
func (s Sample) Valid() bool {
	return usable(s.Irradiance) && usable(s.Power) && usable(s.Generation)
}

func usable(v float64) bool {
	return v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Dataset is an ordered sequence of samples.
type Dataset []Sample

// Filter returns the valid samples of in, preserving their order.
func Filter(in []Sample) Dataset {
	out := make(Dataset, 0, len(in))
	for _, s := range in {
		if s.Valid() {
			out = append(out, s)
		}
	}

	return out
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d)
}

// XY extracts the x and y series selected by axis, in sample order.
func (d Dataset) XY(axis Axis) (x, y []float64) {
	x = make([]float64, len(d))
	y = make([]float64, len(d))
	for i, s := range d {
		x[i] = axis.X(s)
		y[i] = axis.Y(s)
	}

	return x, y
}

// Fingerprint returns an xxHash64 over the axis and every sample field.
//
// Two datasets with the same samples in the same order produce the same fingerprint,
// which lets callers memoise evaluations of unchanged input.
func (d Dataset) Fingerprint(axis Axis) uint64 {
	h := hash.NewDigest()
	h.Uint64(uint64(axis))
	h.Uint64(uint64(len(d)))
	for _, s := range d {
		h.Float64(s.Irradiance)
		h.Float64(s.Power)
		h.Float64(s.Generation)
		h.String(s.SkyState)
		h.Float64(s.Inclination)
		h.Float64(s.Temperature)
	}

	return h.Sum64()
}
