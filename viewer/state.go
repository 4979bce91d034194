package viewer

import (
	"time"

	"github.com/iw2rmb/skim/buffer"
)

// Mode is the top-level state of the input dispatcher.
type Mode uint8

const (
	Running Mode = iota
	// Quitting is terminal: no further key changes state.
	Quitting
)

// Action reports what Dispatch did with a key.
type Action uint8

const (
	ActionPassThrough Action = iota
	ActionQuit
	ActionMove
	ActionHalfPage
	ActionResize
	// ActionIgnored is returned for keys that arrive after quitting.
	ActionIgnored
)

var keyMoves = map[KeyKind]buffer.Move{
	KeyUp:       {Unit: buffer.MoveLine, Dir: buffer.DirUp},
	KeyDown:     {Unit: buffer.MoveLine, Dir: buffer.DirDown},
	KeyLeft:     {Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft},
	KeyRight:    {Unit: buffer.MoveGrapheme, Dir: buffer.DirRight},
	KeyPageUp:   {Unit: buffer.MovePage, Dir: buffer.DirUp},
	KeyPageDown: {Unit: buffer.MovePage, Dir: buffer.DirDown},
	KeyHome:     {Unit: buffer.MoveLine, Dir: buffer.DirHome},
	KeyEnd:      {Unit: buffer.MoveLine, Dir: buffer.DirEnd},

	KeyHalfPageUp:   {Unit: buffer.MoveHalfPage, Dir: buffer.DirUp},
	KeyHalfPageDown: {Unit: buffer.MoveHalfPage, Dir: buffer.DirDown},
}

// State is the single owner of cursor and viewport state for one document.
// It is not safe for concurrent use; one loop drives it.
type State struct {
	cfg Config
	doc *buffer.Document

	mode Mode

	// cursor is in document space; offset is the document position drawn at
	// screen (0,0).
	cursor buffer.Pos
	offset buffer.Pos

	size Size

	message     string
	messageTime time.Time
}

func NewState(cfg Config) *State {
	cfg = cfg.withDefaults()
	s := &State{
		cfg: cfg,
		doc: cfg.Document,
	}
	s.SetMessage(cfg.Message)
	return s
}

func (s *State) Document() *buffer.Document { return s.doc }

func (s *State) Mode() Mode { return s.mode }

func (s *State) Quitting() bool { return s.mode == Quitting }

func (s *State) Cursor() buffer.Pos { return s.cursor }

func (s *State) Offset() buffer.Pos { return s.offset }

// ScreenCursor is the cursor position relative to the viewport.
func (s *State) ScreenCursor() buffer.Pos { return s.cursor.Sub(s.offset) }

// Size is the full terminal size.
func (s *State) Size() Size { return s.size }

// TextArea is the part of the terminal rows are drawn into.
func (s *State) TextArea() Size {
	return Size{
		Width:  max(s.size.Width, 0),
		Height: buffer.SatSub(s.size.Height, s.cfg.ReservedRows),
	}
}

// SetSize records a new terminal size and brings the cursor back into view.
func (s *State) SetSize(width, height int) {
	s.size = Size{Width: max(width, 0), Height: max(height, 0)}
	s.scroll()
}

// Dispatch applies one key event.
func (s *State) Dispatch(k Key) Action {
	if s.mode == Quitting {
		return ActionIgnored
	}

	switch k.Kind {
	case KeyQuit:
		s.mode = Quitting
		return ActionQuit
	case KeyResize:
		s.SetSize(k.Size.Width, k.Size.Height)
		return ActionResize
	case KeyHalfPageUp, KeyHalfPageDown:
		s.move(keyMoves[k.Kind])
		return ActionHalfPage
	}

	if m, ok := keyMoves[k.Kind]; ok {
		s.move(m)
		return ActionMove
	}

	s.logf("%s", k)
	return ActionPassThrough
}

func (s *State) move(m buffer.Move) {
	s.cursor = s.doc.Move(s.cursor, m, s.TextArea().Height)
	s.scroll()
}

func (s *State) scroll() {
	area := s.TextArea()
	s.offset = Scroll(s.cursor, s.offset, area)
	if row, ok := s.doc.Row(s.cursor.Y); ok {
		s.offset.X = fitCursorCells(row, s.cursor.X, s.offset.X, area.Width)
	}
}

func (s *State) logf(format string, v ...any) {
	if s.cfg.Logger == nil {
		return
	}
	s.cfg.Logger.Printf(format, v...)
}
