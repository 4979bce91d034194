package viewer

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/skim/buffer"
)

type HighlightSpan struct {
	// StartGraphemeCol and EndGraphemeCol are grapheme indices in the row,
	// half-open [StartGraphemeCol, EndGraphemeCol).
	StartGraphemeCol int
	EndGraphemeCol   int
	Style            lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string

	// CursorGraphemeCol is the cursor column if the cursor is on this row;
	// otherwise -1.
	CursorGraphemeCol int
	HasCursor         bool
}

// Highlighter styles rows. It is asked only about rows that are on screen.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := buffer.Clamp(sp.StartGraphemeCol, 0, lineLen)
		end := buffer.Clamp(sp.EndGraphemeCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: end, Style: sp.Style})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartGraphemeCol != out[j].StartGraphemeCol {
			return out[i].StartGraphemeCol < out[j].StartGraphemeCol
		}
		return out[i].EndGraphemeCol < out[j].EndGraphemeCol
	})

	// Overlaps are resolved by dropping the later span.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if n := len(merged); n > 0 && sp.StartGraphemeCol < merged[n-1].EndGraphemeCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// spanIndexAt returns the index of the span covering col, or -1.
func spanIndexAt(spans []HighlightSpan, col int) int {
	i := sort.Search(len(spans), func(i int) bool { return spans[i].EndGraphemeCol > col })
	if i < len(spans) && spans[i].StartGraphemeCol <= col {
		return i
	}
	return -1
}
