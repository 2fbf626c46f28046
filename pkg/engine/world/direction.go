package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// NoDirection is the heading of an agent that has not picked one yet.
const NoDirection Direction = -1

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Position is a row/col coordinate. It may lie outside any particular grid.
type Position struct {
	Row int
	Col int
}

// Step returns the position one unit away in the given direction
func (p Position) Step(d Direction) Position {
	rowDelta, colDelta := d.Delta()
	return Position{Row: p.Row + rowDelta, Col: p.Col + colDelta}
}
