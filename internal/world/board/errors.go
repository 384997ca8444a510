package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates fraction bounds outside [0,1] or min > max.
	ErrInvalidConfig = errors.New("board: invalid generation config")
	// ErrInvalidDimensions indicates a non-positive board width or height.
	ErrInvalidDimensions = errors.New("board: width and height must be at least 1")
	// ErrRowOverflow indicates the primary counts of a row exceed its width.
	ErrRowOverflow = errors.New("board: primary tile counts exceed row width")
)

// ConfigError describes which field of a GenerationConfig is invalid
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("board: invalid generation config: %s %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// RowOverflowError is returned under OverflowReject when a row cannot hold
// both primary runs
type RowOverflowError struct {
	Row        int // Row index, -1 when the row was generated on its own
	Width      int
	LightCount int
	NightCount int
}

func (e *RowOverflowError) Error() string {
	return fmt.Sprintf("board: row %d: light %d + night %d exceeds width %d",
		e.Row, e.LightCount, e.NightCount, e.Width)
}

// Unwrap lets errors.Is match ErrRowOverflow
func (e *RowOverflowError) Unwrap() error {
	return ErrRowOverflow
}
