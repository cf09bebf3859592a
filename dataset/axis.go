package dataset

import (
	"fmt"
	"strings"
)

// Axis selects the (x, y) quantity pair fed to the fitters.
type Axis uint8

const (
	// AxisIrradiancePower fits power (kW) against irradiance (W/m²).
	AxisIrradiancePower Axis = iota + 1
	// AxisPowerGeneration fits generation (kW) against power (kW).
	AxisPowerGeneration
)

// String returns the axis name used by the dashboard controls.
func (a Axis) String() string {
	switch a {
	case AxisIrradiancePower:
		return "potencia"
	case AxisPowerGeneration:
		return "generacion"
	default:
		return "unknown"
	}
}

// ParseAxis maps an axis name to an Axis.
//
// Accepted names are "potencia"/"power" and "generacion"/"generation", case-insensitive.
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "potencia", "power":
		return AxisIrradiancePower, nil
	case "generacion", "generación", "generation":
		return AxisPowerGeneration, nil
	default:
		return 0, fmt.Errorf("unknown axis: %q", name)
	}
}

// X returns the independent quantity of s for this axis.
func (a Axis) X(s Sample) float64 {
	if a == AxisPowerGeneration {
		return s.Power
	}

	return s.Irradiance
}

// Y returns the dependent quantity of s for this axis.
func (a Axis) Y(s Sample) float64 {
	if a == AxisPowerGeneration {
		return s.Generation
	}

	return s.Power
}

// XLabel returns the display label of the x quantity.
func (a Axis) XLabel() string {
	if a == AxisPowerGeneration {
		return "Potencia (kW)"
	}

	return "Irradiancia (W/m²)"
}

// YLabel returns the display label of the y quantity.
func (a Axis) YLabel() string {
	if a == AxisPowerGeneration {
		return "Generación (kW)"
	}

	return "Potencia (kW)"
}

// Valid reports whether a is one of the defined axes.
func (a Axis) Valid() bool {
	return a == AxisIrradiancePower || a == AxisPowerGeneration
}
