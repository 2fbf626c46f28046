package main

import (
	"bytes"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"rulepcg/pkg/game/generator"
	"rulepcg/pkg/game/renderer"
)

func TestParseModes(t *testing.T) {
	tests := []struct {
		in   string
		want []generator.Mode
	}{
		{"both", []generator.Mode{generator.DoubleBuffered, generator.InPlace}},
		{"double", []generator.Mode{generator.DoubleBuffered}},
		{"inplace", []generator.Mode{generator.InPlace}},
	}
	for _, tt := range tests {
		got, err := parseModes(tt.in)
		if err != nil {
			t.Errorf("parseModes(%q): %v", tt.in, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("parseModes(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := parseModes("sideways"); err == nil {
		t.Error("parseModes(\"sideways\") returned nil error")
	}
}

// runCellular drives the automaton section for the given -mode value and returns its output.
func runCellular(t *testing.T, mode string) string {
	t.Helper()
	renderer.InitColors(false)
	if err := renderer.InitLocale("en"); err != nil {
		t.Fatalf("InitLocale: %v", err)
	}
	modes, err := parseModes(mode)
	if err != nil {
		t.Fatalf("parseModes: %v", err)
	}

	var buf bytes.Buffer
	r := &run{
		out:   &buf,
		rng:   rand.New(rand.NewSource(1)),
		rows:  4,
		cols:  6,
		modes: modes,
	}
	if err := r.cellular(generator.Automaton{Radius: 1, Threshold: 4, Iterations: 2}); err != nil {
		t.Fatalf("cellular: %v", err)
	}
	return buf.String()
}

func TestRunCellular_ModeSelectsVariants(t *testing.T) {
	const (
		doubleTitle  = "Cellular Automata Simulation (With Second Grid):"
		inPlaceTitle = "Cellular Automata Simulation (In-Place):"
		sameStart    = "Initial random map state (same as above):"
	)

	tests := []struct {
		mode                    string
		double, inPlace, repeat bool
	}{
		{"both", true, true, true},
		{"double", true, false, false},
		{"inplace", false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			out := runCellular(t, tt.mode)
			if got := strings.Contains(out, doubleTitle); got != tt.double {
				t.Errorf("double-buffered section shown = %v, want %v", got, tt.double)
			}
			if got := strings.Contains(out, inPlaceTitle); got != tt.inPlace {
				t.Errorf("in-place section shown = %v, want %v", got, tt.inPlace)
			}
			if got := strings.Contains(out, sameStart); got != tt.repeat {
				t.Errorf("\"same as above\" shown = %v, want %v", got, tt.repeat)
			}
		})
	}
}

func TestRunCellular_IterationsPrinted(t *testing.T) {
	out := runCellular(t, "inplace")
	for _, want := range []string{"(In-Place) Iteration 1:", "(In-Place) Iteration 2:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "Iteration 3:") {
		t.Error("output shows a third iteration, want 2")
	}
}
