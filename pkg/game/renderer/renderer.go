package renderer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"

	"rulepcg/pkg/engine/world"
)

// Glyphs for the two cell markers
const (
	IconEmpty  = "."
	IconFilled = "#"
)

var (
	ColorEmpty   color.Style
	ColorFilled  color.Style
	ColorHeading color.Style
	ColorParam   color.Style
	ColorSubtle  color.Style

	regexpStringFunctions *regexp.Regexp
)

// InitColors initializes the color styles. When enabled is false every
// style prints plain text.
func InitColors(enabled bool) {
	color.Enable = enabled

	ColorEmpty = color.Style{color.FgGray}
	ColorFilled = color.Style{color.FgYellow, color.OpBold}
	ColorHeading = color.Style{color.FgMagenta, color.OpBold}
	ColorParam = color.Style{color.FgCyan}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}

	regexpStringFunctions = regexp.MustCompile(`([A-Z_]*){([^{}]+)}`)
}

// FormatString formats a string with special markup:
// GT{KEY} is replaced by its translation, HEAD{text} and PARAM{text} are coloured.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)
	if regexpStringFunctions == nil {
		return ret
	}

	for _, match := range regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = T(operand)
		case "HEAD":
			val = ColorHeading.Sprint(T(operand))
		case "PARAM":
			val = ColorParam.Sprint(operand)
		default:
			val = operand
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// RenderCell returns the glyph for a cell, coloured when colours are enabled
func RenderCell(c world.Cell) string {
	if c == world.Filled {
		return ColorFilled.Sprint(IconFilled)
	}
	return ColorEmpty.Sprint(IconEmpty)
}

// FormatMap renders the grid one row per line, cells separated by a space.
// maxCols > 0 crops every row to that many columns.
func FormatMap(grid *world.Grid, maxCols int) string {
	if grid == nil {
		return ""
	}

	cols := grid.Cols()
	if maxCols > 0 && maxCols < cols {
		cols = maxCols
	}

	var sb strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < cols; col++ {
			sb.WriteString(RenderCell(grid.Get(row, col)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrintMap writes the grid between the map header and footer lines
func PrintMap(w io.Writer, grid *world.Grid, maxCols int) {
	fmt.Fprintln(w, ColorSubtle.Sprint(T("MAP_HEADER")))
	fmt.Fprint(w, FormatMap(grid, maxCols))
	fmt.Fprintln(w, ColorSubtle.Sprint(T("MAP_FOOTER")))
}

// PrintString prints a formatted string
func PrintString(w io.Writer, msg string, a ...any) {
	fmt.Fprint(w, FormatString(msg, a...))
}
