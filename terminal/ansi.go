package terminal

import "io"

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi          = []byte("\x1b[")
	csiClear     = []byte("\x1b[2J")
	csiHome      = []byte("\x1b[H")
	csiClearLine = []byte("\x1b[K")
	csiSGR0      = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
)

// HideCursor appends the hide-cursor sequence.
func (b *Buffer) HideCursor() {
	b.Append(csiCursorHide)
}

// ShowCursor appends the show-cursor sequence.
func (b *Buffer) ShowCursor() {
	b.Append(csiCursorShow)
}

// Home appends a cursor-to-origin sequence.
func (b *Buffer) Home() {
	b.Append(csiHome)
}

// ClearLine appends a clear-to-end-of-line sequence.
func (b *Buffer) ClearLine() {
	b.Append(csiClearLine)
}

// MoveCursor appends a cursor positioning sequence (0-indexed input).
func (b *Buffer) MoveCursor(x, y int) {
	b.Append(csi)
	b.appendInt(y + 1)
	b.AppendByte(';')
	b.appendInt(x + 1)
	b.AppendByte('H')
}

// appendInt appends an integer without allocation.
// Optimized for terminal values (0-255 common, 0-999 typical max)
func (b *Buffer) appendInt(n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		b.AppendByte(byte(n) + '0')
		return
	}
	if n < 100 {
		b.AppendByte(byte(n/10) + '0')
		b.AppendByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		b.AppendByte(byte(n/100) + '0')
		b.AppendByte(byte(n/10%10) + '0')
		b.AppendByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	b.Append(buf[i+1:])
}

// ClearScreen clears the display and homes the cursor, bypassing frame
// buffering. Used on quit and on the fatal-error path.
func ClearScreen(w io.Writer) {
	w.Write(csiClear)
	w.Write(csiHome)
}
