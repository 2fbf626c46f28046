package generator

import (
	"math/rand"

	"rulepcg/pkg/engine/world"
)

// InitializeRandom creates a rows x cols grid where every cell is independently
// Empty or Filled with equal probability.
func InitializeRandom(rows, cols int, rng *rand.Rand) *world.Grid {
	grid := world.NewGrid(rows, cols)
	grid.ForEachCell(func(row, col int, _ world.Cell) {
		grid.Set(row, col, world.Cell(rng.Intn(2)))
	})
	return grid
}

// InitializeRandomDensity creates a rows x cols grid where every cell is
// independently Filled with probability density.
func InitializeRandomDensity(rows, cols int, density float64, rng *rand.Rand) *world.Grid {
	grid := world.NewGrid(rows, cols)
	grid.ForEachCell(func(row, col int, _ world.Cell) {
		if rng.Float64() < density {
			grid.Set(row, col, world.Filled)
		}
	})
	return grid
}

// Noise is a Pass that discards its input and returns a freshly seeded grid
// of the same size.
type Noise struct {
	// Density is the chance of a cell being Filled. 0.5 gives a fair coin,
	// 0 an empty grid.
	Density float64
}

// Name returns the name of this pass
func (n *Noise) Name() string {
	return "Random Noise"
}

// Apply returns a new random grid with the dimensions of grid
func (n *Noise) Apply(grid *world.Grid, rng *rand.Rand) (*world.Grid, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	return InitializeRandomDensity(grid.Rows(), grid.Cols(), n.Density, rng), nil
}
