package terminal

// decodeState is the position within an escape sequence
type decodeState uint8

const (
	stateEscape   decodeState = iota // Saw ESC
	stateCSI                         // Saw ESC [
	stateCSIDigit                    // Saw ESC [ <digit>
	stateSS3                         // Saw ESC O
)

// byteSource yields the next lookahead byte; ok is false when none arrived in time
type byteSource func() (b byte, ok bool, err error)

var escapeEvent = Event{Key: KeyEscape}

// decodeKey turns the first byte of a key and its bounded lookahead into an event.
// Missing, unknown or truncated sequences degrade to a bare ESC.
func decodeKey(first byte, next byteSource) (Event, error) {
	if first != byteEsc {
		return controlEvent(first), nil
	}

	state := stateEscape
	var digit byte

	for {
		b, ok, err := next()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			return escapeEvent, nil
		}

		switch state {
		case stateEscape:
			switch b {
			case '[':
				state = stateCSI
			case 'O':
				state = stateSS3
			default:
				return escapeEvent, nil
			}

		case stateCSI:
			if b >= '0' && b <= '9' {
				digit = b
				state = stateCSIDigit
				continue
			}
			if key, found := csiFinal[b]; found {
				return Event{Key: key}, nil
			}
			return escapeEvent, nil

		case stateCSIDigit:
			if b == '~' {
				if key, found := csiTilde[digit]; found {
					return Event{Key: key}, nil
				}
			}
			return escapeEvent, nil

		case stateSS3:
			if key, found := ss3Final[b]; found {
				return Event{Key: key}, nil
			}
			return escapeEvent, nil
		}
	}
}
