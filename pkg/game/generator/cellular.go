package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"rulepcg/pkg/engine/world"
)

// ErrNegativeRadius is returned for a neighbourhood radius below zero
var ErrNegativeRadius = errors.New("radius must not be negative")

// Mode selects how a cellular automaton step reads its neighbours
type Mode int

const (
	// DoubleBuffered reads only the state from before the step and writes a new grid.
	DoubleBuffered Mode = iota
	// InPlace reads and writes the same grid in row-major order, so later cells
	// see neighbours already updated earlier in the same pass.
	InPlace
)

// String returns the flag-friendly name of the mode
func (m Mode) String() string {
	switch m {
	case DoubleBuffered:
		return "double"
	case InPlace:
		return "inplace"
	default:
		return "unknown"
	}
}

// ParseMode is the inverse of Mode.String
func ParseMode(s string) (Mode, error) {
	switch s {
	case "double":
		return DoubleBuffered, nil
	case "inplace":
		return InPlace, nil
	default:
		return 0, fmt.Errorf("unknown automaton mode %q", s)
	}
}

// NeighborSum adds up the cells in the (2*radius+1)^2 window centred on
// (row, col), the centre included. Positions outside the grid count as zero.
func NeighborSum(grid *world.Grid, row, col, radius int) int {
	sum := 0
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			r, c := row+dr, col+dc
			if grid.IsValidPosition(r, c) {
				sum += int(grid.Get(r, c))
			}
		}
	}
	return sum
}

func nextCell(sum int, threshold float64) world.Cell {
	if float64(sum) > threshold {
		return world.Filled
	}
	return world.Empty
}

func checkStep(grid *world.Grid, radius int) error {
	if grid == nil {
		return ErrNilGrid
	}
	if radius < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	return nil
}

// Step runs one double-buffered automaton step. Every cell is Filled in the
// result iff its window sum is strictly greater than threshold. The input grid
// is left untouched.
func Step(grid *world.Grid, radius int, threshold float64) (*world.Grid, error) {
	if err := checkStep(grid, radius); err != nil {
		return nil, err
	}

	next := world.NewGrid(grid.Rows(), grid.Cols())
	grid.ForEachCell(func(row, col int, _ world.Cell) {
		next.Set(row, col, nextCell(NeighborSum(grid, row, col, radius), threshold))
	})
	return next, nil
}

// StepInPlace runs one automaton step that overwrites grid as it goes and
// returns it. Results generally differ from Step for the same input.
func StepInPlace(grid *world.Grid, radius int, threshold float64) (*world.Grid, error) {
	if err := checkStep(grid, radius); err != nil {
		return nil, err
	}

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			grid.Set(row, col, nextCell(NeighborSum(grid, row, col, radius), threshold))
		}
	}
	return grid, nil
}

// Automaton is a Pass running Iterations steps of the threshold rule
type Automaton struct {
	Radius     int
	Threshold  float64
	Iterations int
	Mode       Mode
}

// Name returns the name of this pass
func (a *Automaton) Name() string {
	if a.Mode == InPlace {
		return "Cellular Automata (In-Place)"
	}
	return "Cellular Automata"
}

// Apply runs the configured number of steps. The random generator is unused.
func (a *Automaton) Apply(grid *world.Grid, _ *rand.Rand) (*world.Grid, error) {
	step := Step
	if a.Mode == InPlace {
		step = StepInPlace
	}

	if err := checkStep(grid, a.Radius); err != nil {
		return nil, err
	}

	var err error
	for i := 0; i < a.Iterations; i++ {
		grid, err = step(grid, a.Radius, a.Threshold)
		if err != nil {
			return nil, err
		}
	}
	return grid, nil
}
