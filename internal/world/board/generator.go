package board

import (
	"fmt"
	"math"
)

// ceilEpsilon absorbs float error such as 10*0.3 = 3.0000000000000004.
// Single-precision ceil yields 3 there too, so keep it when touching ceilCount.
const ceilEpsilon = 1e-9

// Generator builds board matrices from a GenerationConfig and a random source.
// It keeps no state between calls apart from the random source's cursor.
type Generator struct {
	config GenerationConfig
	rng    RandomSource
}

// NewGenerator validates the config and creates a generator.
// A nil rng gets a time-seeded RandSource.
func NewGenerator(config GenerationConfig, rng RandomSource) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRandSource(0)
	}
	return &Generator{
		config: config,
		rng:    rng,
	}, nil
}

// GenerateMatrix is a one-shot helper for callers that don't keep a Generator
func GenerateMatrix(width, height int, config GenerationConfig, rng RandomSource) (Matrix, error) {
	g, err := NewGenerator(config, rng)
	if err != nil {
		return nil, err
	}
	return g.GenerateMatrix(width, height)
}

// Config returns the generator's configuration
func (g *Generator) Config() GenerationConfig {
	return g.config
}

// RowWidth returns the width of row i on a board of the given width.
// Odd rows lose one tile to form the offset layout.
func RowWidth(width, row int) int {
	if row%2 == 0 {
		return width
	}
	if width < 1 {
		return 0
	}
	return width - 1
}

// GenerateMatrix creates a height x width board. Odd rows are width-1 wide,
// which is 0 when width is 1. Either every row succeeds or no matrix is returned.
func (g *Generator) GenerateMatrix(width, height int) (Matrix, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	matrix := make(Matrix, height)
	for i := range matrix {
		counts, err := g.partition(i, RowWidth(width, i))
		if err != nil {
			return nil, err
		}
		matrix[i] = counts.Row()
	}

	return matrix, nil
}

// GenerateRow creates a single row of the given width
func (g *Generator) GenerateRow(width int) (Row, error) {
	counts, err := g.Partition(width)
	if err != nil {
		return nil, err
	}
	return counts.Row(), nil
}

// Partition splits a row of the given width into the four run lengths
func (g *Generator) Partition(width int) (RowCounts, error) {
	if width < 0 {
		return RowCounts{}, fmt.Errorf("%w: row width %d", ErrInvalidDimensions, width)
	}
	return g.partition(-1, width)
}

// partition draws light, then night, then light additional from the source.
// Empty ranges take their lower bound without drawing.
func (g *Generator) partition(row, width int) (RowCounts, error) {
	minLight := ceilCount(width, g.config.MinLight)
	maxLight := ceilCount(width, g.config.MaxLight)
	minNight := ceilCount(width, g.config.MinNight)
	maxNight := ceilCount(width, g.config.MaxNight)

	light := intRange(g.rng, minLight, maxLight)
	night := intRange(g.rng, minNight, maxNight)

	if light+night > width {
		if g.config.Overflow == OverflowReject {
			return RowCounts{}, &RowOverflowError{
				Row:        row,
				Width:      width,
				LightCount: light,
				NightCount: night,
			}
		}
		night = width - light
	}

	remaining := width - (light + night)
	lightAdditional := intRange(g.rng, 0, remaining)

	return RowCounts{
		Light:           light,
		LightAdditional: lightAdditional,
		NightAdditional: remaining - lightAdditional,
		Night:           night,
	}, nil
}

// Row expands the counts into a row in light, light additional,
// night additional, night order
func (rc RowCounts) Row() Row {
	row := make(Row, 0, rc.Total())
	for _, c := range Categories {
		for n := rc.Of(c); n > 0; n-- {
			row = append(row, c)
		}
	}
	return row
}

func ceilCount(width int, fraction float64) int {
	return int(math.Ceil(float64(width)*fraction - ceilEpsilon))
}
