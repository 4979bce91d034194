package viewer

import (
	"time"

	"github.com/iw2rmb/skim/buffer"
)

// DefaultWelcome is the banner drawn on an empty document.
const DefaultWelcome = "skim viewer"

// statusBarRows is the number of rows the status and message bars occupy.
const statusBarRows = 2

// Logger receives diagnostics, such as keys the viewer does not handle.
// *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Config configures State and Model.
type Config struct {
	// Document to view. Nil is treated as an empty document.
	Document *buffer.Document

	// StatusBar draws the status and message bars below the text area.
	StatusBar bool
	// ReservedRows is the number of terminal rows kept away from the text
	// area. Zero means two rows when StatusBar is set and none otherwise.
	ReservedRows int

	// Welcome is the banner for an empty document. Empty uses DefaultWelcome.
	Welcome string
	// Message is the initial message bar text. Empty uses the quit hint.
	Message string

	KeyMap KeyMap
	// Style is applied by Model. The zero value renders plain text.
	Style Style
	// Highlighter colours visible rows. Nil renders plain text.
	Highlighter Highlighter

	// Logger receives unhandled keys. Nil discards them.
	Logger Logger
	// Now is the clock used to expire messages. Nil uses time.Now.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.Document == nil {
		c.Document = buffer.Empty()
	}
	if c.ReservedRows <= 0 && c.StatusBar {
		c.ReservedRows = statusBarRows
	}
	if c.ReservedRows < 0 {
		c.ReservedRows = 0
	}
	if c.Welcome == "" {
		c.Welcome = DefaultWelcome
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Message == "" {
		c.Message = c.KeyMap.HelpMessage()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
