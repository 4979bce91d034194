package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/skim/buffer"
	"github.com/iw2rmb/skim/internal/grapheme"
)

// LineKind says what a planned screen row shows.
type LineKind uint8

const (
	// LineText is a windowed document row.
	LineText LineKind = iota
	// LineWelcome is the centered banner of an empty document.
	LineWelcome
	// LineFiller marks a screen row past the end of the document.
	LineFiller
)

// Segment is a run of rendered clusters sharing one style.
type Segment struct {
	// Start is the window-relative grapheme index of the first cluster.
	Start int
	// Clusters holds the display form of each grapheme, tabs expanded.
	Clusters []string

	Style       lipgloss.Style
	Highlighted bool
}

func (s Segment) Text() string { return strings.Join(s.Clusters, "") }

// Line is the plan for one screen row. Its content never exceeds the text
// area width.
type Line struct {
	Kind LineKind
	// Row is the document row for LineText and -1 otherwise.
	Row      int
	Segments []Segment
}

func (l Line) Text() string {
	var sb strings.Builder
	for _, seg := range l.Segments {
		for _, c := range seg.Clusters {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

// Plan returns the content of every row of the text area, top to bottom.
func (s *State) Plan() []Line {
	area := s.TextArea()
	out := make([]Line, 0, area.Height)
	for r := 0; r < area.Height; r++ {
		idx := r + s.offset.Y
		if row, ok := s.doc.Row(idx); ok {
			out = append(out, s.planRow(idx, row, area.Width))
			continue
		}
		if s.doc.IsEmpty() && r == area.Height/3 {
			out = append(out, plainLine(LineWelcome, welcomeText(s.cfg.Welcome, area.Width)))
			continue
		}
		out = append(out, plainLine(LineFiller, grapheme.Truncate("~", area.Width)))
	}
	return out
}

// welcomeText centers msg behind a leading "~" and cuts it to width.
func welcomeText(msg string, width int) string {
	padding := buffer.SatSub(width, grapheme.Width(msg)) / 2
	text := "~" + strings.Repeat(" ", buffer.SatSub(padding, 1)) + msg
	return grapheme.Truncate(text, width)
}

func plainLine(kind LineKind, text string) Line {
	l := Line{Kind: kind, Row: -1}
	if text != "" {
		l.Segments = []Segment{{Clusters: grapheme.Split(text)}}
	}
	return l
}

func (s *State) planRow(idx int, row buffer.Row, width int) Line {
	line := Line{Kind: LineText, Row: idx}
	start := s.offset.X
	clusters := row.Graphemes(start, buffer.SatAdd(start, width))
	if len(clusters) == 0 {
		return line
	}
	spans := s.highlight(idx, row)

	used := 0
	open := -2
	for i, c := range clusters {
		piece, w, whole := fitCluster(c, width-used)
		if piece == "" && !whole {
			break
		}

		sp := spanIndexAt(spans, start+i)
		if sp != open || len(line.Segments) == 0 {
			seg := Segment{Start: i}
			if sp >= 0 {
				seg.Style = spans[sp].Style
				seg.Highlighted = true
			}
			line.Segments = append(line.Segments, seg)
			open = sp
		}
		last := &line.Segments[len(line.Segments)-1]
		last.Clusters = append(last.Clusters, piece)
		used += w

		if !whole {
			break
		}
	}
	return line
}

// fitCluster renders c into at most room cells. whole is false when c had to
// be cut or dropped.
func fitCluster(c string, room int) (piece string, cells int, whole bool) {
	rendered := buffer.RenderGrapheme(c)
	w := grapheme.Width(rendered)
	if w <= room {
		return rendered, w, true
	}
	if c == "\t" && room > 0 {
		return strings.Repeat(" ", room), room, false
	}
	return "", 0, false
}

func (s *State) highlight(idx int, row buffer.Row) []HighlightSpan {
	if s.cfg.Highlighter == nil {
		return nil
	}
	ctx := LineContext{Row: idx, Text: row.Text(), CursorGraphemeCol: -1}
	if s.cursor.Y == idx {
		ctx.HasCursor = true
		ctx.CursorGraphemeCol = s.cursor.X
	}
	spans, err := s.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		s.logf("highlight row %d: %v", idx, err)
		return nil
	}
	return normalizeHighlightSpans(spans, row.Len())
}
