package viewer

import "github.com/charmbracelet/lipgloss"

// Style controls how Model renders its rows and bars.
type Style struct {
	Text    lipgloss.Style
	Filler  lipgloss.Style
	Welcome lipgloss.Style
	Cursor  lipgloss.Style

	StatusBar  lipgloss.Style
	MessageBar lipgloss.Style
}

const (
	statusForeground = lipgloss.Color("#3f3f3f")
	statusBackground = lipgloss.Color("#efefef")
)

func DefaultStyle() Style {
	return Style{
		Text:       lipgloss.NewStyle(),
		Filler:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Welcome:    lipgloss.NewStyle().Bold(true),
		Cursor:     lipgloss.NewStyle().Reverse(true),
		StatusBar:  lipgloss.NewStyle().Foreground(statusForeground).Background(statusBackground),
		MessageBar: lipgloss.NewStyle(),
	}
}

// ForLine returns the base style of a planned row. Highlighted segments
// carry their own style.
func (s Style) ForLine(kind LineKind) lipgloss.Style {
	switch kind {
	case LineWelcome:
		return s.Welcome
	case LineFiller:
		return s.Filler
	default:
		return s.Text
	}
}
