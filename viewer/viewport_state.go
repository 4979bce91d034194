package viewer

import (
	"github.com/iw2rmb/skim/buffer"
	"github.com/iw2rmb/skim/internal/grapheme"
)

// ViewportState is a stable host-facing snapshot of viewer camera state.
type ViewportState struct {
	// Offset is the document position drawn at screen (0,0).
	Offset buffer.Pos
	// Cursor is the document-space cursor.
	Cursor buffer.Pos
	// ScreenCursor is Cursor relative to the viewport.
	ScreenCursor buffer.Pos
	// VisibleRows and Width describe the text area.
	VisibleRows int
	Width       int
}

// ViewportState returns the current viewport snapshot.
func (s *State) ViewportState() ViewportState {
	area := s.TextArea()
	return ViewportState{
		Offset:       s.offset,
		Cursor:       s.cursor,
		ScreenCursor: s.ScreenCursor(),
		VisibleRows:  area.Height,
		Width:        area.Width,
	}
}

// ViewportState returns the current viewport snapshot.
func (m Model) ViewportState() ViewportState { return m.st.ViewportState() }

// DocToScreen maps a document position to viewport-local screen cells. x
// counts the rendered cells of the row between the offset and pos, so tabs
// and wide clusters move it by their width.
//
// ok is false when the position is outside the visible text area.
func (s *State) DocToScreen(pos buffer.Pos) (x int, y int, ok bool) {
	area := s.TextArea()
	y = pos.Y - s.offset.Y
	if pos.X < s.offset.X {
		return pos.X - s.offset.X, y, false
	}

	x = pos.X - s.offset.X
	if row, exists := s.doc.Row(pos.Y); exists {
		x = 0
		for _, c := range row.Graphemes(s.offset.X, pos.X) {
			x += grapheme.Width(buffer.RenderGrapheme(c))
		}
	}
	ok = y >= 0 && x < area.Width && y < area.Height
	return x, y, ok
}
