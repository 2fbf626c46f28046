package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"slices"
	"time"

	"rulepcg/pkg/engine/terminal"
	"rulepcg/pkg/engine/world"
	"rulepcg/pkg/game/generator"
	"rulepcg/pkg/game/renderer"
)

// run carries the per-invocation settings of the demo driver
type run struct {
	out     io.Writer
	rng     *rand.Rand
	rows    int
	cols    int
	maxCols int
	modes   []generator.Mode
}

// automatonVariant is how the driver presents one automaton mode
type automatonVariant struct {
	mode      generator.Mode
	title     string
	iteration string
}

var automatonVariants = []automatonVariant{
	{generator.DoubleBuffered, "CA_DOUBLE_TITLE", "CA_DOUBLE_ITERATION"},
	{generator.InPlace, "CA_INPLACE_TITLE", "CA_INPLACE_ITERATION"},
}

// parseModes turns the -mode flag into the automaton modes to run, in display order
func parseModes(s string) ([]generator.Mode, error) {
	if s == "both" {
		return []generator.Mode{generator.DoubleBuffered, generator.InPlace}, nil
	}
	mode, err := generator.ParseMode(s)
	if err != nil {
		return nil, err
	}
	return []generator.Mode{mode}, nil
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	rows := flag.Int("rows", generator.DefaultRows, "map rows")
	cols := flag.Int("cols", generator.DefaultCols, "map columns")
	lang := flag.String("lang", renderer.DefaultLanguage, "language of the headings (en, es)")
	colorMode := flag.String("color", "auto", "colour output: auto, always or never")
	mode := flag.String("mode", "both", "cellular automata variant: double, inplace or both")
	flag.Parse()

	modes, err := parseModes(*mode)
	if err != nil {
		log.Fatalf("Invalid -mode: %v", err)
	}

	if *rows <= 0 || *cols <= 0 {
		log.Fatalf("Map size must be positive, got %dx%d", *rows, *cols)
	}

	if err := renderer.InitLocale(*lang); err != nil {
		log.Fatalf("Cannot load translations: %v", err)
	}

	switch *colorMode {
	case "auto":
		renderer.InitColors(terminal.IsInteractive())
	case "always":
		renderer.InitColors(true)
	case "never":
		renderer.InitColors(false)
	default:
		log.Fatalf("Unknown colour mode %q", *colorMode)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	r := &run{
		out:     os.Stdout,
		rng:     rand.New(rand.NewSource(*seed)),
		rows:    *rows,
		cols:    *cols,
		maxCols: terminal.ColumnsThatFit(2),
		modes:   modes,
	}

	renderer.PrintString(r.out, "HEAD{TITLE}\n")
	renderer.PrintString(r.out, "%s\n", renderer.Tf("SEED", *seed))

	params := generator.SampleParams(r.rows, r.cols, r.rng)

	if err := r.cellular(params.Automaton); err != nil {
		log.Fatalf("Cellular automata failed: %v", err)
	}
	if err := r.drunk(params.Drunk, params.Start); err != nil {
		log.Fatalf("Drunk agent failed: %v", err)
	}

	renderer.PrintString(r.out, "\nHEAD{COMPLETED}\n")
}

// cellular runs the selected automaton variants from the same random start so
// the results can be compared side by side.
func (r *run) cellular(ca generator.Automaton) error {
	initial := generator.InitializeRandom(r.rows, r.cols, r.rng)

	shown := 0
	for _, v := range automatonVariants {
		if !slices.Contains(r.modes, v.mode) {
			continue
		}

		initialKey := "INITIAL_RANDOM"
		if shown > 0 {
			initialKey = "INITIAL_RANDOM_SAME"
		}
		shown++

		renderer.PrintString(r.out, "\nHEAD{%s}\n", v.title)
		renderer.PrintString(r.out, "GT{%s}\n", initialKey)
		renderer.PrintMap(r.out, initial, r.maxCols)
		renderer.PrintString(r.out, "PARAM{%s}\n", renderer.Tf("CA_PARAMS", ca.Radius, ca.Threshold, ca.Iterations))

		step := generator.Automaton{Radius: ca.Radius, Threshold: ca.Threshold, Iterations: 1, Mode: v.mode}
		iteration := 0
		pipeline := generator.Pipeline{
			Observe: func(_ generator.Pass, grid *world.Grid) {
				iteration++
				fmt.Fprintf(r.out, "\n%s\n", renderer.Tf(v.iteration, iteration))
				renderer.PrintMap(r.out, grid, r.maxCols)
			},
		}
		for i := 0; i < ca.Iterations; i++ {
			pipeline.Passes = append(pipeline.Passes, &step)
		}

		// The in-place variant overwrites its input, keep the shared start intact
		if _, err := pipeline.Run(initial.Clone(), r.rng); err != nil {
			return err
		}
	}

	return nil
}

func (r *run) drunk(params generator.DrunkParams, start generator.Agent) error {
	renderer.PrintString(r.out, "\nHEAD{DRUNK_TITLE}\n")

	grid := world.NewGrid(r.rows, r.cols)
	grid.Set(start.Row, start.Col, world.Filled)
	fmt.Fprintln(r.out, renderer.Tf("DRUNK_INITIAL", start.Row, start.Col))
	renderer.PrintMap(r.out, grid, r.maxCols)

	renderer.PrintString(r.out, "PARAM{%s}\n", renderer.Tf("DRUNK_PARAMS",
		params.Excursions, params.Steps, params.RoomWidth, params.RoomHeight,
		params.RoomChance, params.RoomChanceStep, params.TurnChance, params.TurnChanceStep))

	agent := start
	walk := &generator.DrunkWalk{Params: params, Agent: &agent}
	carved, err := walk.Apply(grid, r.rng)
	if err != nil {
		return err
	}

	renderer.PrintString(r.out, "\nGT{DRUNK_FINAL}\n")
	renderer.PrintMap(r.out, carved, r.maxCols)

	report := walk.Report
	fmt.Fprintln(r.out, renderer.Tf("DRUNK_SUMMARY",
		len(report.Rooms), report.Visited.Size(), report.Turns, report.Bounces, agent.Row, agent.Col))

	return nil
}
