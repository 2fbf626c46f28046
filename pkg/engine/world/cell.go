// Package world provides the binary 2D grid primitives shared by every
// generation pass.
package world

import "fmt"

// Cell is the marker stored at one grid position. Only Empty and Filled are legal.
type Cell uint8

// Cell values
const (
	Empty  Cell = 0
	Filled Cell = 1
)

// IsValid returns true if the cell holds one of the two legal markers
func (c Cell) IsValid() bool {
	return c == Empty || c == Filled
}

// String returns the name of the marker
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Filled:
		return "Filled"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}
