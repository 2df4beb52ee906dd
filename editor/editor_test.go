package editor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/seankim658/txt-editor/terminal"
)

// scriptTerm plays back canned key events and records every write.
type scriptTerm struct {
	events  []terminal.Event
	pos     int
	writes  [][]byte
	readErr error
}

func (s *scriptTerm) ReadKey() (terminal.Event, error) {
	if s.pos >= len(s.events) {
		if s.readErr != nil {
			return terminal.Event{}, s.readErr
		}
		return terminal.Event{}, errors.New("event script exhausted")
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

func (s *scriptTerm) Write(p []byte) (int, error) {
	cp := make([]byte, len(p))
	copy(cp, p)
	s.writes = append(s.writes, cp)
	return len(p), nil
}

func key(k terminal.Key) terminal.Event {
	return terminal.Event{Key: k}
}

func chord(b byte) terminal.Event {
	return terminal.Event{Key: terminal.KeyByte, Byte: b}
}

func repeat(k terminal.Key, n int) []terminal.Key {
	keys := make([]terminal.Key, n)
	for i := range keys {
		keys[i] = k
	}
	return keys
}

func newTestEditor(events ...terminal.Event) (*Editor, *scriptTerm) {
	term := &scriptTerm{events: events}
	return New(term, terminal.Size{Cols: 80, Rows: 24}), term
}

func TestCursorSaturation(t *testing.T) {
	tests := []struct {
		name         string
		moves        []terminal.Key
		wantX, wantY int
	}{
		{
			name:  "left at origin stays",
			moves: repeat(terminal.KeyLeft, 5),
			wantX: 0, wantY: 0,
		},
		{
			name:  "up at origin stays",
			moves: repeat(terminal.KeyUp, 5),
			wantX: 0, wantY: 0,
		},
		{
			name:  "right saturates at last column",
			moves: repeat(terminal.KeyRight, 200),
			wantX: 79, wantY: 0,
		},
		{
			name:  "down saturates at last row",
			moves: repeat(terminal.KeyDown, 200),
			wantX: 0, wantY: 23,
		},
		{
			name: "mixed walk stays in bounds",
			moves: append(repeat(terminal.KeyRight, 3),
				terminal.KeyDown, terminal.KeyDown, terminal.KeyLeft),
			wantX: 2, wantY: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEditor()
			for _, k := range tt.moves {
				e.processKey(key(k))
			}
			x, y := e.Cursor()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("cursor (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPageKeysRepeatViewportHeight(t *testing.T) {
	e, _ := newTestEditor()

	e.processKey(key(terminal.KeyPageDown))
	if _, y := e.Cursor(); y != 23 {
		t.Errorf("cursor row %d after PageDown, want 23", y)
	}

	e.processKey(key(terminal.KeyPageUp))
	if _, y := e.Cursor(); y != 0 {
		t.Errorf("cursor row %d after PageUp, want 0", y)
	}
}

func TestIgnoredEvents(t *testing.T) {
	e, _ := newTestEditor()

	e.processKey(key(terminal.KeyEscape))
	e.processKey(chord('a'))
	e.processKey(chord(0x03))

	if x, y := e.Cursor(); x != 0 || y != 0 {
		t.Errorf("ignored events moved the cursor to (%d, %d)", x, y)
	}
}

func TestRunMoveThenQuit(t *testing.T) {
	e, term := newTestEditor(
		key(terminal.KeyRight),
		key(terminal.KeyRight),
		key(terminal.KeyDown),
		chord(terminal.Ctrl('q')),
	)

	if err := e.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	if x, y := e.Cursor(); x != 2 || y != 1 {
		t.Errorf("final cursor (%d, %d), want (2, 1)", x, y)
	}

	// One frame per processed event plus the quit clear and home
	if len(term.writes) != 6 {
		t.Fatalf("%d writes, want 6", len(term.writes))
	}

	// The frame drawn after the last move positions the cursor at row 2, col 3
	lastFrame := term.writes[3]
	if !bytes.Contains(lastFrame, []byte("\x1b[2;3H")) {
		t.Errorf("final frame missing positioning sequence: %q", lastFrame)
	}
}

func TestQuitClearsAndStops(t *testing.T) {
	e, term := newTestEditor(chord(terminal.Ctrl('q')))

	if err := e.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(term.writes) != 3 {
		t.Fatalf("%d writes, want one frame plus clear and home", len(term.writes))
	}
	if got := string(term.writes[1]); got != "\x1b[2J" {
		t.Errorf("first quit write %q, want clear screen", got)
	}
	if got := string(term.writes[2]); got != "\x1b[H" {
		t.Errorf("second quit write %q, want cursor home", got)
	}
}

func TestRunSurfacesReadError(t *testing.T) {
	readErr := errors.New("read failed")
	term := &scriptTerm{readErr: readErr}
	e := New(term, terminal.Size{Cols: 80, Rows: 24})

	if err := e.Run(); !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
}
