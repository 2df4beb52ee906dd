package terminal

import "fmt"

var keyNames = map[Key]string{
	KeyEscape:   "Escape",
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
}

// KeyName returns a human-readable name for a decoded event, for diagnostics
// and the keydump tool.
func KeyName(ev Event) string {
	if ev.Key == KeyByte {
		switch {
		case ev.Byte >= 0x20 && ev.Byte < 0x7f:
			return fmt.Sprintf("'%c'", ev.Byte)
		case ev.Byte < 0x20:
			return fmt.Sprintf("Ctrl+%c", ev.Byte+'@')
		default:
			return fmt.Sprintf("0x%02X", ev.Byte)
		}
	}
	if name, ok := keyNames[ev.Key]; ok {
		return name
	}
	return "Unknown"
}
