package board

import (
	"fmt"
	"math"
)

// OverflowPolicy decides what happens when a row's primary counts exceed its width
type OverflowPolicy uint8

const (
	// OverflowClamp trims the night count down to width - light count
	OverflowClamp OverflowPolicy = iota
	// OverflowReject fails the row with a RowOverflowError
	OverflowReject
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowClamp:
		return "clamp"
	case OverflowReject:
		return "reject"
	default:
		return fmt.Sprintf("overflow(%d)", uint8(p))
	}
}

// MarshalText implements encoding.TextMarshaler
func (p OverflowPolicy) MarshalText() ([]byte, error) {
	switch p {
	case OverflowClamp, OverflowReject:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("unknown overflow policy: %d", uint8(p))
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value means clamp.
func (p *OverflowPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "clamp":
		*p = OverflowClamp
	case "reject":
		*p = OverflowReject
	default:
		return fmt.Errorf("unknown overflow policy: %q", string(text))
	}
	return nil
}

// GenerationConfig holds the share of a row each primary category may take.
// Fractions are in [0,1] and converted to tile counts with ceil.
type GenerationConfig struct {
	MinLight float64        `json:"min_light"` // Lower bound for the light run
	MaxLight float64        `json:"max_light"` // Upper bound for the light run (exclusive once rounded)
	MinNight float64        `json:"min_night"` // Lower bound for the night run
	MaxNight float64        `json:"max_night"` // Upper bound for the night run (exclusive once rounded)
	Overflow OverflowPolicy `json:"overflow"`  // What to do when light + night exceed the row
}

// DefaultConfig returns the stock 10%..40% bounds for both sides
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		MinLight: 0.1,
		MaxLight: 0.4,
		MinNight: 0.1,
		MaxNight: 0.4,
		Overflow: OverflowClamp,
	}
}

// Validate checks every fraction is a number in [0,1] and each min <= max
func (c GenerationConfig) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"min_light", c.MinLight},
		{"max_light", c.MaxLight},
		{"min_night", c.MinNight},
		{"max_night", c.MaxNight},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || f.value < 0 || f.value > 1 {
			return &ConfigError{Field: f.name, Reason: fmt.Sprintf("must be within [0,1], got %v", f.value)}
		}
	}

	if c.MinLight > c.MaxLight {
		return &ConfigError{Field: "min_light", Reason: fmt.Sprintf("%v is greater than max_light %v", c.MinLight, c.MaxLight)}
	}
	if c.MinNight > c.MaxNight {
		return &ConfigError{Field: "min_night", Reason: fmt.Sprintf("%v is greater than max_night %v", c.MinNight, c.MaxNight)}
	}

	switch c.Overflow {
	case OverflowClamp, OverflowReject:
	default:
		return &ConfigError{Field: "overflow", Reason: fmt.Sprintf("unknown policy %d", uint8(c.Overflow))}
	}

	return nil
}
