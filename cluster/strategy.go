package cluster

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned for a strategy name or value outside the defined set.
var ErrUnknownStrategy = errors.New("cluster: unknown strategy")

// Strategy selects how samples are grouped.
type Strategy uint8

const (
	// StrategySkyState groups samples by their sky-state value.
	StrategySkyState Strategy = iota + 1
	// StrategyTemperature groups samples into cold, mild and warm temperature bands.
	StrategyTemperature
	// StrategyInclination groups samples into low and high panel inclination bands.
	StrategyInclination
)

// Band boundaries, inclusive on the upper end.
const (
	ColdMaxTemperature = 10.0
	MildMaxTemperature = 29.0
	LowMaxInclination  = 30.0
)

// Strategies returns every strategy in the fixed comparison order.
func Strategies() []Strategy {
	return []Strategy{StrategySkyState, StrategyTemperature, StrategyInclination}
}

// String returns the strategy discriminator: "clima", "temperatura" or "inclinacion".
func (s Strategy) String() string {
	switch s {
	case StrategySkyState:
		return "clima"
	case StrategyTemperature:
		return "temperatura"
	case StrategyInclination:
		return "inclinacion"
	default:
		return "unknown"
	}
}

// Label returns the display name of the strategy.
func (s Strategy) Label() string {
	switch s {
	case StrategySkyState:
		return "Clima"
	case StrategyTemperature:
		return "Temperatura"
	case StrategyInclination:
		return "Inclinación"
	default:
		return "Desconocida"
	}
}

// Valid reports whether s is one of the defined strategies.
func (s Strategy) Valid() bool {
	return s >= StrategySkyState && s <= StrategyInclination
}

// ParseStrategy maps a strategy name to a Strategy.
//
// Both the discriminators ("clima", "temperatura", "inclinacion") and English names
// ("sky", "temperature", "inclination") are accepted, case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "clima", "sky", "skystate", "sky_state":
		return StrategySkyState, nil
	case "temperatura", "temperature":
		return StrategyTemperature, nil
	case "inclinacion", "inclinación", "inclination":
		return StrategyInclination, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
