package editor

import (
	"github.com/mattn/go-runewidth"

	"github.com/seankim658/txt-editor/terminal"
)

// welcome is the banner shown on the placeholder screen.
const welcome = "txt-editor -- version " + Version

// refresh builds one frame and flushes it to the terminal as a single write.
func (e *Editor) refresh() error {
	return e.buildFrame().Flush(e.term)
}

// buildFrame constructs a complete frame: cursor hidden, placeholder rows
// drawn from the home position, then the cursor repositioned and shown.
// The frame is a pure function of editor state.
func (e *Editor) buildFrame() *terminal.Buffer {
	b := terminal.NewBuffer()

	b.HideCursor()
	b.Home()

	e.drawRows(b)

	b.MoveCursor(e.cx, e.cy)
	b.ShowCursor()

	return b
}

// drawRows emits one placeholder row per viewport line, with the version
// banner a third of the way down. Each row is cleared to end of line; the
// row separator is omitted after the last row to avoid scrolling.
func (e *Editor) drawRows(b *terminal.Buffer) {
	for y := 0; y < e.size.Rows; y++ {
		if y == e.size.Rows/3 {
			e.drawBanner(b)
		} else {
			b.AppendByte('~')
		}
		b.ClearLine()
		if y < e.size.Rows-1 {
			b.AppendString("\r\n")
		}
	}
}

// drawBanner centers the welcome text, truncated to the viewport width.
// When there is room to its left, the first padding column carries the
// placeholder marker like every other row.
func (e *Editor) drawBanner(b *terminal.Buffer) {
	banner := welcome
	if runewidth.StringWidth(banner) > e.size.Cols {
		banner = runewidth.Truncate(banner, e.size.Cols, "")
	}

	padding := (e.size.Cols - runewidth.StringWidth(banner)) / 2
	if padding > 0 {
		b.AppendByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		b.AppendByte(' ')
	}
	b.AppendString(banner)
}
