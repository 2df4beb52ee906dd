package terminal

import (
	"io"
	"os"
)

// Size holds the terminal dimensions queried at session start. The editor
// treats it as immutable for the life of the session.
type Size struct {
	Cols int
	Rows int
}

// Session owns the raw-mode lifecycle for one terminal. Construct with
// NewSession, call Enter to capture the original attributes and switch to
// raw mode, and make sure Restore runs on every exit path.
type Session struct {
	backend Backend
	decoder *Decoder
	active  bool
}

// NewSession creates a session over the process terminal.
func NewSession() *Session {
	b := newBackend()
	return &Session{backend: b, decoder: NewDecoder(b)}
}

// NewSessionWith creates a session over a caller-supplied backend. Used by
// tests and tools that do not own the process terminal.
func NewSessionWith(b Backend) *Session {
	return &Session{backend: b, decoder: NewDecoder(b)}
}

// Enter captures the original terminal attributes and applies raw mode.
func (s *Session) Enter() error {
	if s.active {
		return nil
	}
	if err := s.backend.Init(); err != nil {
		return err
	}
	s.active = true
	return nil
}

// Restore reapplies the original attributes. Safe to call multiple times.
func (s *Session) Restore() error {
	if !s.active {
		return nil
	}
	s.active = false
	return s.backend.Fini()
}

// Size queries the terminal dimensions.
func (s *Session) Size() (Size, error) {
	cols, rows, err := s.backend.Size()
	if err != nil {
		return Size{}, err
	}
	return Size{Cols: cols, Rows: rows}, nil
}

// ReadKey blocks until the next decoded key event.
func (s *Session) ReadKey() (Event, error) {
	return s.decoder.ReadKey()
}

// Write writes raw bytes to the terminal.
func (s *Session) Write(p []byte) (int, error) {
	return s.backend.Write(p)
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery when Restore cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiClear)
	w.Write(csiHome)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort reset via
	// /dev/tty, errors ignored in crash context.
	resetTerminalMode()
}
