package viewer

import (
	"github.com/iw2rmb/skim/buffer"
	"github.com/iw2rmb/skim/internal/grapheme"
)

// Size is a terminal or text area size in cells.
type Size struct {
	Width  int
	Height int
}

// Scroll returns the viewport offset that keeps cursor visible inside an area
// of the given size, moving offset no further than needed. A zero dimension
// leaves that axis untouched.
func Scroll(cursor, offset buffer.Pos, area Size) buffer.Pos {
	if h := area.Height; h > 0 {
		if cursor.Y < offset.Y {
			offset.Y = cursor.Y
		} else if cursor.Y >= buffer.SatAdd(offset.Y, h) {
			offset.Y = buffer.SatAdd(buffer.SatSub(cursor.Y, h), 1)
		}
	}
	if w := area.Width; w > 0 {
		if cursor.X < offset.X {
			offset.X = cursor.X
		} else if cursor.X >= buffer.SatAdd(offset.X, w) {
			offset.X = buffer.SatAdd(buffer.SatSub(cursor.X, w), 1)
		}
	}
	return offset
}

// fitCursorCells advances offsetX until the clusters of row from offsetX
// through cursorX fit in width cells, so the cursor cluster survives the
// cut the planner makes. A cursor past the end of the row takes one cell.
func fitCursorCells(row buffer.Row, cursorX, offsetX, width int) int {
	if width <= 0 || offsetX > cursorX {
		return offsetX
	}

	clusters := row.Graphemes(offsetX, buffer.SatAdd(cursorX, 1))
	cells := make([]int, 0, len(clusters)+1)
	for _, c := range clusters {
		cells = append(cells, grapheme.Width(buffer.RenderGrapheme(c)))
	}
	if cursorX >= row.Len() {
		cells = append(cells, 1)
	}

	total := 0
	for _, n := range cells {
		total += n
	}
	i := 0
	for total > width && i < len(cells)-1 {
		total -= cells[i]
		i++
	}
	return offsetX + i
}
