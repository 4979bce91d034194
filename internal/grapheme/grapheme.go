package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Segmenter splits text into user-perceived characters.
type Segmenter interface {
	Split(text string) []string
}

// Uniseg segments text with Unicode extended grapheme cluster rules.
type Uniseg struct{}

func (Uniseg) Split(text string) []string { return Split(text) }

// Default is the segmenter used by the rest of the module.
var Default Segmenter = Uniseg{}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	return sb.String()
}

// CellWidth reports how many terminal cells cluster occupies.
func CellWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// Width returns the cell width of text.
func Width(text string) int {
	n := 0
	for _, c := range Split(text) {
		n += CellWidth(c)
	}
	return n
}

// Truncate cuts text so it fits in cells terminal cells. A cluster that would
// straddle the limit is dropped whole.
func Truncate(text string, cells int) string {
	if cells <= 0 || text == "" {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := CellWidth(c)
		if used+w > cells {
			break
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String()
}
