// Package editor implements the placeholder-screen editor: a session-owned
// viewport, a cursor constrained to it, and the refresh/read/dispatch loop.
package editor

import (
	"github.com/seankim658/txt-editor/terminal"
)

// Version is displayed in the welcome banner.
const Version = "0.0.1"

// quitKey is the Ctrl-Q chord.
var quitKey = terminal.Ctrl('q')

// Term is the slice of the terminal session the editor drives: decoded key
// input and raw byte output.
type Term interface {
	ReadKey() (terminal.Event, error)
	Write(p []byte) (int, error)
}

// Editor holds the viewport and cursor state for one session. The viewport
// is fixed at construction; the cursor never leaves it.
type Editor struct {
	term Term
	size terminal.Size

	// Cursor position, 0-indexed.
	cx int
	cy int
}

// New creates an editor over an entered terminal session.
func New(term Term, size terminal.Size) *Editor {
	return &Editor{term: term, size: size}
}

// Run drives the refresh/read/dispatch loop until the quit chord is pressed
// or a read or write fails. On quit the screen is cleared and the cursor
// homed, then the loop returns immediately; skipping any teardown frame is
// deliberate.
func (e *Editor) Run() error {
	for {
		if err := e.refresh(); err != nil {
			return err
		}
		ev, err := e.term.ReadKey()
		if err != nil {
			return err
		}
		if quit := e.processKey(ev); quit {
			terminal.ClearScreen(e.term)
			return nil
		}
	}
}

// processKey dispatches one key event and reports whether the quit chord
// was pressed. Events outside the movement set are ignored.
func (e *Editor) processKey(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyByte:
		if ev.Byte == quitKey {
			return true
		}

	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		e.moveCursor(ev.Key)

	case terminal.KeyPageUp:
		for i := 0; i < e.size.Rows; i++ {
			e.moveCursor(terminal.KeyUp)
		}

	case terminal.KeyPageDown:
		for i := 0; i < e.size.Rows; i++ {
			e.moveCursor(terminal.KeyDown)
		}
	}
	return false
}

// moveCursor shifts the cursor one cell, saturating at the viewport edges.
func (e *Editor) moveCursor(key terminal.Key) {
	switch key {
	case terminal.KeyLeft:
		if e.cx > 0 {
			e.cx--
		}
	case terminal.KeyRight:
		if e.cx < e.size.Cols-1 {
			e.cx++
		}
	case terminal.KeyUp:
		if e.cy > 0 {
			e.cy--
		}
	case terminal.KeyDown:
		if e.cy < e.size.Rows-1 {
			e.cy++
		}
	}
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() (x, y int) {
	return e.cx, e.cy
}
