package terminal

import "io"

// Buffer accumulates one frame of output so every escape sequence and row of
// content reaches the terminal as a single write. Per-sequence writes cause
// visible flicker and syscall overhead; one write per refresh is the
// performance contract of the render path.
//
// A fresh Buffer is built for each frame and discarded after Flush.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a buffer sized for a typical frame.
func NewBuffer() *Buffer {
	return &Buffer{buf: make([]byte, 0, 4096)}
}

// Append copies p onto the end of the buffer.
func (b *Buffer) Append(p []byte) {
	b.buf = append(b.buf, p...)
}

// AppendString copies s onto the end of the buffer.
func (b *Buffer) AppendString(s string) {
	b.buf = append(b.buf, s...)
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	b.buf = append(b.buf, c)
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Bytes returns the accumulated frame. The slice is only valid until the
// next append.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Flush writes the entire accumulated frame to w as one write call.
func (b *Buffer) Flush(w io.Writer) error {
	_, err := w.Write(b.buf)
	return err
}
