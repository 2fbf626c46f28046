package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsInteractive reports whether stdout is a terminal, i.e. colour and
// width cropping make sense.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ColumnsThatFit returns how many grid columns fit on one line when each
// cell takes cellWidth characters. Non-interactive output is never cropped
// and returns 0.
func ColumnsThatFit(cellWidth int) int {
	if !IsInteractive() || cellWidth <= 0 {
		return 0
	}
	return max(1, GetWidth()/cellWidth)
}
