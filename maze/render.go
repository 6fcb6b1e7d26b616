package maze

import "strings"

const (
	horizontalGlyph = " --"
	verticalGlyph   = "|  "
	emptyGlyph      = "   "
)

// Render draws walls as text. Each z in [0, height] produces two lines: the
// horizontal walls on that row boundary, then the vertical walls of the cell
// row below it. Cells are three characters wide and every line is right-trimmed.
// Empty lines at the end are dropped; empty lines in between are kept.
func Render(walls *WallSet, width, height int) []string {
	lines := make([]string, 0, 2*(height+1))

	for z := 0; z <= height; z++ {
		var hLine, vLine strings.Builder
		for x := 0; x <= width; x++ {
			if walls.Has(Wall{Orientation: Horizontal, X: x, Z: z}) {
				hLine.WriteString(horizontalGlyph)
			} else {
				hLine.WriteString(emptyGlyph)
			}

			if walls.Has(Wall{Orientation: Vertical, X: x, Z: z}) {
				vLine.WriteString(verticalGlyph)
			} else {
				vLine.WriteString(emptyGlyph)
			}
		}
		lines = append(lines,
			strings.TrimRight(hLine.String(), " "),
			strings.TrimRight(vLine.String(), " "),
		)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Format joins rendered lines with newlines.
func Format(lines []string) string {
	return strings.Join(lines, "\n")
}
