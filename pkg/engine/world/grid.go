package world

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfBounds is the panic value (wrapped) for a cell access outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidCell is the panic value (wrapped) for storing a non-binary marker
	ErrInvalidCell = errors.New("invalid cell value")
	// ErrInvalidDimensions is the panic value (wrapped) for a non-positive grid size
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
)

// Grid is a fixed-size rectangle of binary cells, stored row-major.
type Grid struct {
	cells []Cell
	rows  int
	cols  int
}

// NewGrid creates a new zero-filled grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	return NewFilledGrid(rows, cols, Empty)
}

// NewFilledGrid creates a new grid with every cell set to fill
func NewFilledGrid(rows, cols int, fill Cell) *Grid {
	g := &Grid{}
	g.Build(rows, cols, fill)
	return g
}

// Build (re)initializes the grid with the given dimensions and fill value.
// Non-positive dimensions or a non-binary fill panic.
func (g *Grid) Build(rows, cols int, fill Cell) {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols))
	}
	if !fill.IsValid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidCell, fill))
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]Cell, rows*cols)

	if fill != Empty {
		for i := range g.cells {
			g.cells[i] = fill
		}
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains checks if a position is within grid bounds
func (g *Grid) Contains(p Position) bool {
	return g.IsValidPosition(p.Row, p.Col)
}

// CenterPosition returns the row and column of the grid center
func (g *Grid) CenterPosition() (int, int) {
	return g.rows / 2, g.cols / 2
}

func (g *Grid) index(row, col int) int {
	if !g.IsValidPosition(row, col) {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Get returns the cell at the given position. Out-of-range access panics.
func (g *Grid) Get(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Set stores v at the given position. Out-of-range access or a non-binary v panics.
func (g *Grid) Set(row, col int, v Cell) {
	if !v.IsValid() {
		panic(fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCell, v, row, col))
	}
	g.cells[g.index(row, col)] = v
}

// IsFilled reports whether the cell at the given position is Filled
func (g *Grid) IsFilled(row, col int) bool {
	return g.Get(row, col) == Filled
}

// FillRect sets every cell in the inclusive rectangle [top,bottom]x[left,right] to v.
// The rectangle is clamped to the grid first; a rectangle entirely outside the
// grid fills nothing. It returns the clamped bounds and whether anything was filled.
func (g *Grid) FillRect(top, left, bottom, right int, v Cell) (Rect, bool) {
	r := Rect{
		Top:    max(0, top),
		Left:   max(0, left),
		Bottom: min(g.rows-1, bottom),
		Right:  min(g.cols-1, right),
	}
	if r.Empty() {
		return r, false
	}

	for row := r.Top; row <= r.Bottom; row++ {
		for col := r.Left; col <= r.Right; col++ {
			g.Set(row, col, v)
		}
	}
	return r, true
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same dimensions and contents
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells hold v
func (g *Grid) Count(v Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == v {
			n++
		}
	}
	return n
}

// ForEachCell iterates over all cells in row-major order, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row*g.cols+col])
		}
	}
}

// String renders the grid as rows of '0' and '1', mostly for test failure output
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			sb.WriteByte('0' + byte(g.cells[row*g.cols+col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid builds a grid from rows of '0'/'1' (or '.'/'#') characters.
// All rows must have the same length.
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidDimensions)
	}

	g := NewGrid(len(lines), len(lines[0]))
	for row, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", row, len(line), g.cols)
		}
		for col, ch := range []byte(line) {
			switch ch {
			case '0', '.':
			case '1', '#':
				g.cells[row*g.cols+col] = Filled
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCell, ch, row, col)
			}
		}
	}
	return g, nil
}

// Rect is an inclusive rectangle of grid coordinates
type Rect struct {
	Top, Left, Bottom, Right int
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.Top > r.Bottom || r.Left > r.Right
}

// Contains reports whether the position lies inside the rectangle
func (r Rect) Contains(p Position) bool {
	return p.Row >= r.Top && p.Row <= r.Bottom && p.Col >= r.Left && p.Col <= r.Right
}
