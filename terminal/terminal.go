package terminal

import (
	"fmt"

	"github.com/iw2rmb/skim/viewer"
)

// Farewell is printed after the final clear screen on quit.
const Farewell = "Goodbye."

// KeySource delivers key events. NextKey blocks until one is available; an
// error ends the loop.
type KeySource interface {
	NextKey() (viewer.Key, error)
}

// Driver is the output side of a terminal. Coordinates are 0-based cells.
// Drawing calls are buffered until Flush.
type Driver interface {
	Size() (width, height int, err error)

	ClearScreen()
	// ClearLine clears from the current position to the end of the row.
	ClearLine()
	MoveCursor(x, y int)
	HideCursor()
	ShowCursor()

	// DrawLine writes a planned row at the current position.
	DrawLine(l viewer.Line)
	DrawStatus(text string)
	DrawMessage(text string)
	// Farewell writes text on its own line once the screen is cleared.
	Farewell(text string)

	Flush() error
	Close() error
}

// Run drives st until the quit key is dispatched or the terminal fails. On
// failure the screen is cleared and the cause is returned.
func Run(st *viewer.State, drv Driver, keys KeySource) error {
	for {
		w, h, err := drv.Size()
		if err != nil {
			return abort(drv, fmt.Errorf("terminal size: %w", err))
		}
		st.SetSize(w, h)

		if err := refresh(st, drv); err != nil {
			return abort(drv, fmt.Errorf("refresh screen: %w", err))
		}
		if st.Quitting() {
			return nil
		}

		k, err := keys.NextKey()
		if err != nil {
			return abort(drv, fmt.Errorf("read key: %w", err))
		}
		st.Dispatch(k)
	}
}

func refresh(st *viewer.State, drv Driver) error {
	drv.HideCursor()
	drv.MoveCursor(0, 0)

	if st.Quitting() {
		drv.ClearScreen()
		drv.Farewell(Farewell)
	} else {
		drawRows(st, drv)
	}

	drv.ShowCursor()
	return drv.Flush()
}

func drawRows(st *viewer.State, drv Driver) {
	lines := st.Plan()
	for y, l := range lines {
		drv.MoveCursor(0, y)
		drv.DrawLine(l)
		drv.ClearLine()
	}

	if st.ShowsBars() {
		h := st.TextArea().Height
		drv.MoveCursor(0, h)
		drv.DrawStatus(st.StatusLine())
		drv.MoveCursor(0, h+1)
		drv.DrawMessage(st.Message())
		drv.ClearLine()
	}

	x, y, _ := st.DocToScreen(st.Cursor())
	drv.MoveCursor(max(x, 0), max(y, 0))
}

func abort(drv Driver, err error) error {
	drv.ClearScreen()
	drv.MoveCursor(0, 0)
	_ = drv.Flush()
	return err
}
