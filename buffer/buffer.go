package buffer

import (
	"strings"

	"github.com/iw2rmb/skim/internal/grapheme"
)

// GreetingText is the single line of a greeting document.
const GreetingText = "Hello, world!"

// EmptyMode selects what an unloaded document contains.
type EmptyMode uint8

const (
	// EmptyBlank yields zero rows; the viewer shows its welcome banner.
	EmptyBlank EmptyMode = iota
	// EmptyGreeting yields a single GreetingText row.
	EmptyGreeting
)

func (m EmptyMode) String() string {
	switch m {
	case EmptyGreeting:
		return "greeting"
	default:
		return "blank"
	}
}

// ParseEmptyMode accepts "blank" or "greeting".
func ParseEmptyMode(s string) (EmptyMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "blank", "empty":
		return EmptyBlank, true
	case "greeting":
		return EmptyGreeting, true
	default:
		return EmptyBlank, false
	}
}

// Document is an ordered, immutable sequence of rows. Index i always refers to
// line i of the loaded content.
type Document struct {
	name string
	rows []Row
}

// New builds a document with one row per entry of lines.
func New(lines []string) *Document {
	return NewWith(grapheme.Default, lines)
}

// NewWith is New with an explicit segmenter.
func NewWith(seg grapheme.Segmenter, lines []string) *Document {
	d := &Document{rows: make([]Row, 0, len(lines))}
	for _, l := range lines {
		d.rows = append(d.rows, NewRowWith(seg, l))
	}
	return d
}

// FromText splits text into lines. CRLF endings are accepted and a trailing
// newline does not produce an extra empty row.
func FromText(text string) *Document {
	return New(splitLines(text))
}

// Empty returns a document with no rows.
func Empty() *Document { return &Document{} }

// Greeting returns a document holding only GreetingText.
func Greeting() *Document { return New([]string{GreetingText}) }

// Fallback returns the document used when nothing is loaded.
func Fallback(mode EmptyMode) *Document {
	if mode == EmptyGreeting {
		return Greeting()
	}
	return Empty()
}

// Name is the file name the document was loaded from, if any.
func (d *Document) Name() string { return d.name }

// Row returns line i. ok is false for any index outside the document.
func (d *Document) Row(i int) (Row, bool) {
	if d == nil || i < 0 || i >= len(d.rows) {
		return Row{}, false
	}
	return d.rows[i], true
}

// Len returns the number of lines.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

func (d *Document) IsEmpty() bool { return d.Len() == 0 }

// RowLen returns the grapheme count of line i, 0 outside the document.
func (d *Document) RowLen(i int) int {
	r, ok := d.Row(i)
	if !ok {
		return 0
	}
	return r.Len()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
