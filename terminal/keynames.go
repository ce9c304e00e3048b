package terminal

import "fmt"

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
}

// String returns a readable key name
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return "Ctrl+" + string(rune('A'+(k-KeyCtrlA)))
	}
	if k == KeyRune {
		return "Rune"
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// String returns a readable event description
func (e Event) String() string {
	if e.Key == KeyRune {
		return fmt.Sprintf("Rune(%q)", e.Ch)
	}
	return e.Key.String()
}
