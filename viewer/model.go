package viewer

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/skim/internal/grapheme"
)

// Model is a Bubble Tea component that renders a State and feeds it key and
// window size messages.
type Model struct {
	cfg Config
	st  *State
}

func New(cfg Config) Model {
	st := NewState(cfg)
	return Model{cfg: st.cfg, st: st}
}

// State exposes the navigation state driven by the model.
func (m Model) State() *State { return m.st }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.st.SetSize(width, height)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.st.Dispatch(ResizeKey(msg.Width, msg.Height))
		return m, nil
	case tea.KeyMsg:
		if m.st.Dispatch(m.cfg.KeyMap.Translate(msg)) == ActionQuit {
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.st.Quitting() {
		return ""
	}

	lines := m.st.Plan()
	area := m.st.TextArea()
	cur := m.st.ScreenCursor()

	out := make([]string, 0, len(lines)+m.cfg.ReservedRows)
	for i, l := range lines {
		col := -1
		if i == cur.Y {
			col = cur.X
		}
		out = append(out, m.renderLine(l, col, area.Width))
	}

	reserved := m.cfg.ReservedRows
	if m.st.ShowsBars() {
		out = append(out,
			m.cfg.Style.StatusBar.Render(m.st.StatusLine()),
			renderStyled(m.cfg.Style.MessageBar, m.st.Message()),
		)
		reserved -= statusBarRows
	}
	for ; reserved > 0; reserved-- {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// renderLine styles l and draws the cursor over the cluster at cursorCol, or
// just past the content when the cursor sits at the end of the row.
func (m Model) renderLine(l Line, cursorCol, width int) string {
	var sb strings.Builder
	placed := false
	for _, seg := range l.Segments {
		st := m.cfg.Style.ForLine(l.Kind)
		if seg.Highlighted {
			st = seg.Style
		}

		k := cursorCol - seg.Start
		if k < 0 || k >= len(seg.Clusters) {
			sb.WriteString(renderStyled(st, seg.Text()))
			continue
		}
		sb.WriteString(renderStyled(st, strings.Join(seg.Clusters[:k], "")))
		sb.WriteString(m.cfg.Style.Cursor.Render(seg.Clusters[k]))
		sb.WriteString(renderStyled(st, strings.Join(seg.Clusters[k+1:], "")))
		placed = true
	}

	if cursorCol >= 0 && !placed && grapheme.Width(l.Text()) < width {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}
	return sb.String()
}

func renderStyled(st lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	return st.Render(text)
}
