// Package highlight colours documents with chroma lexers.
package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-enry/go-enry/v2"

	"github.com/iw2rmb/skim/buffer"
	"github.com/iw2rmb/skim/internal/grapheme"
	"github.com/iw2rmb/skim/viewer"
)

// DefaultTheme is the chroma style used when none is configured.
const DefaultTheme = "monokai"

type Options struct {
	// Language forces a lexer by name. Empty detects it from the file name
	// and content.
	Language string
	// Theme is a chroma style name. Empty uses DefaultTheme.
	Theme string
}

// Syntax holds the spans of every row of one document. Documents are
// immutable, so the text is tokenised once.
type Syntax struct {
	language string
	rows     [][]viewer.HighlightSpan
}

// ForDocument highlights the rows of doc.
func ForDocument(doc *buffer.Document, opt Options) *Syntax {
	lines := make([]string, 0, doc.Len())
	for i := 0; i < doc.Len(); i++ {
		row, _ := doc.Row(i)
		lines = append(lines, row.Text())
	}
	return New(doc.Name(), strings.Join(lines, "\n"), opt)
}

// New tokenises text. It returns nil when text is empty or no lexer applies.
func New(name, text string, opt Options) *Syntax {
	if text == "" {
		return nil
	}
	lexer := detectLexer(name, text, opt.Language)
	if lexer == nil {
		return nil
	}
	theme := opt.Theme
	if theme == "" {
		theme = DefaultTheme
	}

	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, text)
	if err != nil {
		return nil
	}
	return &Syntax{
		language: lexer.Config().Name,
		rows:     rowSpans(tokens, styles.Get(theme)),
	}
}

// Language is the name of the lexer in use.
func (s *Syntax) Language() string { return s.language }

func (s *Syntax) HighlightLine(ctx viewer.LineContext) ([]viewer.HighlightSpan, error) {
	if ctx.Row < 0 || ctx.Row >= len(s.rows) {
		return nil, nil
	}
	return s.rows[ctx.Row], nil
}

// detectLexer tries a forced language, then linguist detection, then chroma's
// own file name and content matching.
func detectLexer(name, text, language string) chroma.Lexer {
	if language != "" {
		return lexers.Get(language)
	}

	base := filepath.Base(name)
	if name != "" {
		if lang := enry.GetLanguage(base, []byte(text)); lang != "" {
			if l := lexers.Get(lang); l != nil {
				return l
			}
		}
		if l := lexers.Match(base); l != nil {
			return l
		}
	}
	return lexers.Analyse(text)
}

// rowSpans splits the token stream on newlines and records a span for every
// token whose colour or attributes differ from plain text.
func rowSpans(tokens []chroma.Token, style *chroma.Style) [][]viewer.HighlightSpan {
	base := style.Get(chroma.Text).Colour

	rows := [][]viewer.HighlightSpan{nil}
	col := 0
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st, styled := tokenStyle(style.Get(tok.Type), base)

		for i, piece := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				rows = append(rows, nil)
				col = 0
			}
			n := grapheme.Count(piece)
			if n == 0 {
				continue
			}
			if styled {
				last := len(rows) - 1
				rows[last] = append(rows[last], viewer.HighlightSpan{
					StartGraphemeCol: col,
					EndGraphemeCol:   col + n,
					Style:            st,
				})
			}
			col += n
		}
	}
	return rows
}

func tokenStyle(entry chroma.StyleEntry, base chroma.Colour) (lipgloss.Style, bool) {
	st := lipgloss.NewStyle()
	styled := false
	if entry.Colour.IsSet() && entry.Colour != base {
		st = st.Foreground(lipgloss.Color(entry.Colour.String()))
		styled = true
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
		styled = true
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
		styled = true
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
		styled = true
	}
	return st, styled
}
