// @focus: #sys { io } #input { keys }
package terminal

// Key represents a parsed input key
type Key uint16

// Key constants
const (
	KeyNone Key = iota
	KeyRune     // Plain byte (check Event.Ch)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A), contiguous
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH // Never produced, decoded as KeyBackspace
	KeyCtrlI // Never produced, decoded as KeyTab
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM // Never produced, decoded as KeyEnter
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Event is one decoded key press
type Event struct {
	Key Key
	Ch  byte // Raw byte for KeyRune
}

// IsPrintable reports whether the event is a printable ASCII byte
func (e Event) IsPrintable() bool {
	return e.Key == KeyRune && e.Ch >= 0x20 && e.Ch < 0x7f
}

// Input bytes with fixed meaning
const (
	byteEsc       = 0x1b
	byteEnter     = '\r'
	byteTab       = '\t'
	byteCtrlH     = 0x08
	byteBackspace = 0x7f
)

// Escape sequence lookup tables, keyed by the byte that completes the sequence

// csiFinal maps ESC [ <letter>
var csiFinal = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// csiTilde maps ESC [ <digit> ~
var csiTilde = map[byte]Key{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}

// ss3Final maps ESC O <letter>
var ss3Final = map[byte]Key{
	'H': KeyHome,
	'F': KeyEnd,
}

// controlEvent maps a non-ESC byte to its key
func controlEvent(b byte) Event {
	switch b {
	case byteEnter:
		return Event{Key: KeyEnter}
	case byteTab:
		return Event{Key: KeyTab}
	case byteBackspace, byteCtrlH:
		return Event{Key: KeyBackspace}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Key: KeyCtrlA + Key(b-0x01)}
	}
	if b < 0x20 {
		return Event{Key: KeyNone, Ch: b}
	}
	return Event{Key: KeyRune, Ch: b}
}
