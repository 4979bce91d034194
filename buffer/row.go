package buffer

import (
	"strings"

	"github.com/iw2rmb/skim/internal/grapheme"
)

// tabExpansion is what a literal tab grapheme renders as.
const tabExpansion = "  "

// Row is a single line of text, kept pre-segmented into grapheme clusters.
type Row struct {
	text     string
	clusters []string
}

// NewRow segments text with the default segmenter.
func NewRow(text string) Row {
	return NewRowWith(grapheme.Default, text)
}

// NewRowWith segments text with seg.
func NewRowWith(seg grapheme.Segmenter, text string) Row {
	var r Row
	r.set(seg, text)
	return r
}

func (r *Row) set(seg grapheme.Segmenter, text string) {
	if seg == nil {
		seg = grapheme.Default
	}
	r.text = text
	r.clusters = seg.Split(text)
}

// Text returns the raw line content.
func (r Row) Text() string { return r.text }

// Len returns the number of grapheme clusters in the row.
func (r Row) Len() int { return len(r.clusters) }

// Graphemes returns the clusters in [start, end), clamped to the row.
func (r Row) Graphemes(start, end int) []string {
	start, end = r.window(start, end)
	return r.clusters[start:end]
}

// Render returns the clusters in [start, end) with tabs expanded. Out of range
// bounds are clamped, never rejected.
func (r Row) Render(start, end int) string {
	var sb strings.Builder
	for _, c := range r.Graphemes(start, end) {
		sb.WriteString(RenderGrapheme(c))
	}
	return sb.String()
}

func (r Row) window(start, end int) (int, int) {
	end = Clamp(end, 0, len(r.clusters))
	start = Clamp(start, 0, end)
	return start, end
}

// RenderGrapheme returns the display form of a single cluster.
func RenderGrapheme(c string) string {
	if c == "\t" {
		return tabExpansion
	}
	return c
}
