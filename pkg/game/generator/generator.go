package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"rulepcg/pkg/engine/world"
)

var (
	// ErrNilGrid is returned when a pass is handed no grid
	ErrNilGrid = errors.New("nil grid")
	// ErrNilRand is returned when a pass that needs randomness is handed no generator
	ErrNilRand = errors.New("nil random generator")
)

// Pass is one stage of a generation pipeline. Passes that replace the grid
// return a new one; passes that carve in place return the grid they were given.
type Pass interface {
	Apply(grid *world.Grid, rng *rand.Rand) (*world.Grid, error)
	Name() string
}

// Observer is called after every pass of a pipeline with the pass and its output
type Observer func(pass Pass, grid *world.Grid)

// Pipeline runs a list of passes in order, handing each the previous pass's output
type Pipeline struct {
	Passes  []Pass
	Observe Observer
}

// Run applies every pass to grid in order. The first failing pass stops the run.
func (p *Pipeline) Run(grid *world.Grid, rng *rand.Rand) (*world.Grid, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}

	for _, pass := range p.Passes {
		next, err := pass.Apply(grid, rng)
		if err != nil {
			return grid, fmt.Errorf("%s: %w", pass.Name(), err)
		}
		grid = next

		if p.Observe != nil {
			p.Observe(pass, grid)
		}
	}

	return grid, nil
}
