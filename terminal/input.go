package terminal

// decodeState tracks progress through a multi-byte escape sequence.
type decodeState uint8

const (
	stateStart decodeState = iota
	stateSawEscape
	stateSawBracket
	stateSawBracketDigit
)

// Decoder turns raw terminal bytes into key events.
//
// Escape sequences arrive as a burst of bytes immediately after ESC when
// generated by a real keypress, while a human pressing ESC alone produces no
// follow-up bytes before the read timeout elapses. The timeout is therefore
// the sole disambiguator between a lone ESC and the start of a CSI sequence.
type Decoder struct {
	backend Backend
}

// NewDecoder creates a decoder reading from the given backend.
func NewDecoder(b Backend) *Decoder {
	return &Decoder{backend: b}
}

// ReadKey blocks until one key event is decoded or a hard read error occurs.
// Timeouts while waiting for the first byte of a keypress cause an internal
// retry and are never surfaced as an event or an error.
func (d *Decoder) ReadKey() (Event, error) {
	b, err := d.nextByte()
	if err != nil {
		return Event{}, err
	}
	if b != 0x1b {
		return Event{Key: KeyByte, Byte: b}, nil
	}
	return d.readEscape()
}

// nextByte retries timed reads until a byte arrives.
func (d *Decoder) nextByte() (byte, error) {
	for {
		b, ok, err := d.backend.ReadByte()
		if err != nil {
			return 0, err
		}
		if ok {
			return b, nil
		}
	}
}

// readEscape runs the post-ESC state machine. A timeout in any state means
// the pending bytes were a lone ESC press, not a sequence, and decode as
// KeyEscape.
func (d *Decoder) readEscape() (Event, error) {
	state := stateSawEscape
	var digit byte

	for {
		b, ok, err := d.backend.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			return Event{Key: KeyEscape}, nil
		}

		switch state {
		case stateSawEscape:
			if b == '[' {
				state = stateSawBracket
				continue
			}
			// Unrecognized introducer (SS3 and friends). The terminal has
			// already sent its final byte; absorb it so it is not replayed
			// as ordinary input.
			if _, _, err := d.backend.ReadByte(); err != nil {
				return Event{}, err
			}
			return Event{Key: KeyEscape}, nil

		case stateSawBracket:
			if b >= '0' && b <= '9' {
				digit = b
				state = stateSawBracketDigit
				continue
			}
			if key, known := csiFinalKeys[b]; known {
				return Event{Key: key}, nil
			}
			return Event{Key: KeyEscape}, nil

		case stateSawBracketDigit:
			if b == '~' {
				if key, known := csiTildeKeys[digit]; known {
					return Event{Key: key}, nil
				}
			}
			return Event{Key: KeyEscape}, nil
		}
	}
}
