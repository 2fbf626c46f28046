package generator

import (
	"math/rand"
)

// Default map size used by the demo driver
const (
	DefaultRows = 20
	DefaultCols = 40
)

// Sampling ranges for randomized runs. Integer ranges are inclusive,
// float ranges are half-open.
const (
	minRadius, maxRadius         = 1, 2
	minIterations, maxIterations = 2, 5
	minExcursions, maxExcursions = 10, 30
	minSteps, maxSteps           = 3, 7
	minRoomWidth, maxRoomWidth   = 3, 7
	minRoomHeight, maxRoomHeight = 2, 5

	minChance, maxChance         = 0.2, 0.6
	minChanceStep, maxChanceStep = 0.05, 0.2
)

// Params bundles one randomized configuration for both engines plus the
// agent's starting cell.
type Params struct {
	Automaton Automaton
	Drunk     DrunkParams
	Start     Agent
}

func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func floatBetween(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// SampleParams draws a configuration for a rows x cols map. The threshold
// range follows the radius so that small windows are not asked for sums they
// can never reach.
func SampleParams(rows, cols int, rng *rand.Rand) Params {
	var p Params

	p.Automaton.Radius = intBetween(rng, minRadius, maxRadius)
	if p.Automaton.Radius == 1 {
		p.Automaton.Threshold = floatBetween(rng, 2, 5)
	} else {
		p.Automaton.Threshold = floatBetween(rng, 4, 8)
	}
	p.Automaton.Iterations = intBetween(rng, minIterations, maxIterations)

	p.Drunk = DrunkParams{
		Excursions:     intBetween(rng, minExcursions, maxExcursions),
		Steps:          intBetween(rng, minSteps, maxSteps),
		RoomWidth:      intBetween(rng, minRoomWidth, maxRoomWidth),
		RoomHeight:     intBetween(rng, minRoomHeight, maxRoomHeight),
		RoomChance:     floatBetween(rng, minChance, maxChance),
		RoomChanceStep: floatBetween(rng, minChanceStep, maxChanceStep),
		TurnChance:     floatBetween(rng, minChance, maxChance),
		TurnChanceStep: floatBetween(rng, minChanceStep, maxChanceStep),
	}

	p.Start = *NewAgent(rng.Intn(rows), rng.Intn(cols))

	return p
}
