package generator

import (
	"math/rand"
	"testing"
)

func TestSampleParams_WithinRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 200; i++ {
		p := SampleParams(DefaultRows, DefaultCols, rng)

		ca := p.Automaton
		if ca.Radius < minRadius || ca.Radius > maxRadius {
			t.Fatalf("Radius = %d, want [%d,%d]", ca.Radius, minRadius, maxRadius)
		}
		lo, hi := 2.0, 5.0
		if ca.Radius == 2 {
			lo, hi = 4.0, 8.0
		}
		if ca.Threshold < lo || ca.Threshold >= hi {
			t.Errorf("R=%d Threshold = %f, want [%v,%v)", ca.Radius, ca.Threshold, lo, hi)
		}
		if ca.Iterations < minIterations || ca.Iterations > maxIterations {
			t.Errorf("Iterations = %d, want [%d,%d]", ca.Iterations, minIterations, maxIterations)
		}

		d := p.Drunk
		if err := d.Validate(); err != nil {
			t.Errorf("sampled params invalid: %v", err)
		}
		if d.Excursions < minExcursions || d.Excursions > maxExcursions ||
			d.Steps < minSteps || d.Steps > maxSteps ||
			d.RoomWidth < minRoomWidth || d.RoomWidth > maxRoomWidth ||
			d.RoomHeight < minRoomHeight || d.RoomHeight > maxRoomHeight {
			t.Errorf("walk counts out of range: %+v", d)
		}
		for _, c := range []float64{d.RoomChance, d.TurnChance} {
			if c < minChance || c >= maxChance {
				t.Errorf("chance %f out of [%v,%v)", c, minChance, maxChance)
			}
		}
		for _, s := range []float64{d.RoomChanceStep, d.TurnChanceStep} {
			if s < minChanceStep || s >= maxChanceStep {
				t.Errorf("chance step %f out of [%v,%v)", s, minChanceStep, maxChanceStep)
			}
		}

		if p.Start.Row < 0 || p.Start.Row >= DefaultRows || p.Start.Col < 0 || p.Start.Col >= DefaultCols {
			t.Errorf("start %v outside %dx%d", p.Start.Position, DefaultRows, DefaultCols)
		}
		if p.Start.Direction.IsValid() {
			t.Errorf("start heading %v, want none so the walk picks one", p.Start.Direction)
		}
	}
}
