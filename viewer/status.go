package viewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/iw2rmb/skim/internal/grapheme"
)

const (
	// messageTTL is how long a message stays in the message bar.
	messageTTL = 5 * time.Second

	statusNameLimit = 20
	untitledName    = "[Untitled]"
)

// SetMessage replaces the message bar text and restarts its timer.
func (s *State) SetMessage(text string) {
	s.message = text
	s.messageTime = s.cfg.Now()
}

// ShowsBars reports whether the status and message bars fit in the reserved
// rows.
func (s *State) ShowsBars() bool {
	return s.cfg.StatusBar && s.cfg.ReservedRows >= statusBarRows
}

// Message returns the message bar text while it is still fresh.
func (s *State) Message() string {
	if s.message == "" || s.cfg.Now().Sub(s.messageTime) >= messageTTL {
		return ""
	}
	return grapheme.Truncate(s.message, s.size.Width)
}

// StatusLine is the status bar: file name and line count on the left, the
// cursor line on the right, padded to the terminal width.
func (s *State) StatusLine() string {
	width := s.size.Width
	name := s.doc.Name()
	if name == "" {
		name = untitledName
	}
	name = grapheme.Slice(name, 0, statusNameLimit)

	n := s.doc.Len()
	left := fmt.Sprintf("%s - %d lines", name, n)
	right := fmt.Sprintf("%d/%d", s.cursor.Y+1, n)

	used := grapheme.Width(left) + grapheme.Width(right)
	if width > used {
		left += strings.Repeat(" ", width-used)
	}
	return grapheme.Truncate(left+right, width)
}
