package terminal

// Backend abstracts platform-specific terminal operations so the decoder and
// session logic can be exercised against scripted implementations in tests.
type Backend interface {
	// Lifecycle
	// Init captures the current terminal attributes and applies raw mode.
	Init() error
	// Fini reapplies the attributes captured by Init. Safe to call when
	// Init never ran.
	Fini() error

	// Capabilities
	// Size returns the current terminal dimensions.
	Size() (cols, rows int, err error)

	// I/O
	// ReadByte waits up to one poll interval for a single input byte.
	// ok is false when the interval elapsed with no data available.
	ReadByte() (b byte, ok bool, err error)
	// Write writes raw bytes to the terminal output.
	Write(p []byte) (int, error)
}
