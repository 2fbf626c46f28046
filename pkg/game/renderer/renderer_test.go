package renderer

import (
	"bytes"
	"strings"
	"testing"

	"rulepcg/pkg/engine/world"
)

func plainGrid(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.ParseGrid(
		"100",
		"011",
	)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func TestFormatMap(t *testing.T) {
	InitColors(false)
	got := FormatMap(plainGrid(t), 0)
	want := "# . . \n. # # \n"
	if got != want {
		t.Errorf("FormatMap = %q, want %q", got, want)
	}
}

func TestFormatMap_Cropped(t *testing.T) {
	InitColors(false)
	got := FormatMap(plainGrid(t), 2)
	want := "# . \n. # \n"
	if got != want {
		t.Errorf("FormatMap(maxCols=2) = %q, want %q", got, want)
	}
}

func TestFormatMap_NilGrid(t *testing.T) {
	if got := FormatMap(nil, 0); got != "" {
		t.Errorf("FormatMap(nil) = %q, want empty", got)
	}
}

func TestInitLocale(t *testing.T) {
	tests := []struct {
		lang, key, want string
	}{
		{"en", "MAP_HEADER", "--- Current Map ---"},
		{"es", "MAP_HEADER", "--- Mapa Actual ---"},
		{"", "COMPLETED", "--- Simulation Completed ---"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if err := InitLocale(tt.lang); err != nil {
				t.Fatalf("InitLocale(%q): %v", tt.lang, err)
			}
			if got := T(tt.key); got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestInitLocale_Unknown(t *testing.T) {
	if err := InitLocale("xx"); err == nil {
		t.Error("InitLocale(\"xx\") returned nil error")
	}
}

func TestTf_FormatsVars(t *testing.T) {
	if err := InitLocale("en"); err != nil {
		t.Fatalf("InitLocale: %v", err)
	}
	if got := Tf("SEED", 42); got != "Seed: 42" {
		t.Errorf("Tf(SEED, 42) = %q, want %q", got, "Seed: 42")
	}
	want := "Parameters: R=1, U=2.500, Iterations=3"
	if got := Tf("CA_PARAMS", 1, 2.5, 3); got != want {
		t.Errorf("Tf(CA_PARAMS) = %q, want %q", got, want)
	}
}

func TestT_DynamicKeyLeavesDirectives(t *testing.T) {
	if err := InitLocale("en"); err != nil {
		t.Fatalf("InitLocale: %v", err)
	}
	// Keys arrive at runtime from markup; the template comes back unformatted.
	keys := []string{"SEED", "MAP_FOOTER"}
	want := []string{"Seed: %d", "-------------------"}
	for i, key := range keys {
		if got := T(key); got != want[i] {
			t.Errorf("T(%q) = %q, want %q", key, got, want[i])
		}
	}
	if got := T("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("T(NOT_A_KEY) = %q, want the key back", got)
	}
}

func TestTf_WithoutCatalog(t *testing.T) {
	saved := catalog
	catalog = nil
	defer func() { catalog = saved }()

	if got := Tf("%d cells", 3); got != "3 cells" {
		t.Errorf("Tf without catalogue = %q, want %q", got, "3 cells")
	}
}

func TestFormatString_Markup(t *testing.T) {
	InitColors(false)
	if err := InitLocale("en"); err != nil {
		t.Fatalf("InitLocale: %v", err)
	}
	got := FormatString("GT{DRUNK_FINAL} PARAM{R=%d}", 2)
	want := "Final Drunk Agent map: R=2"
	if got != want {
		t.Errorf("FormatString = %q, want %q", got, want)
	}
}

func TestPrintMap_Frame(t *testing.T) {
	InitColors(false)
	if err := InitLocale("en"); err != nil {
		t.Fatalf("InitLocale: %v", err)
	}
	var buf bytes.Buffer
	PrintMap(&buf, plainGrid(t), 0)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("PrintMap wrote %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if lines[0] != "--- Current Map ---" || lines[3] != "-------------------" {
		t.Errorf("frame lines = %q / %q", lines[0], lines[3])
	}
}
