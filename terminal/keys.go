package terminal

// Key represents a decoded input key.
type Key uint8

// The closed key set produced by the decoder.
const (
	// KeyByte is a printable or control byte delivered verbatim (check
	// Event.Byte). The decoder does no semantic interpretation of control
	// bytes; chord handling is the caller's job.
	KeyByte Key = iota

	// KeyEscape is a lone ESC press or an escape sequence the decoder
	// does not recognize.
	KeyEscape

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
)

// Event represents a single decoded keypress. Events are consumed
// immediately by the caller's dispatch step and never persisted.
type Event struct {
	Key  Key
	Byte byte // Set when Key == KeyByte
}

// csiFinalKeys maps the final byte of a letter-terminated CSI sequence
// (ESC [ X) to a key.
var csiFinalKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}

// csiTildeKeys maps the digit of a tilde-terminated CSI sequence
// (ESC [ N ~) to a key.
var csiTildeKeys = map[byte]Key{
	'5': KeyPageUp,
	'6': KeyPageDown,
}

// Ctrl returns the control-chord byte for a letter, e.g. Ctrl('q') == 0x11.
func Ctrl(c byte) byte {
	return c & 0x1f
}
