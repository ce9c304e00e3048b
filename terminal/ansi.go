// @focus: #terminal { ansi }
package terminal

import "strconv"

// ANSI sequences used to compose frames
const (
	// Erase from cursor to end of line
	ClearLine = "\x1b[K"
	// Erase whole screen
	ClearScreen = "\x1b[2J"
	// Move cursor to top-left
	CursorHome = "\x1b[H"

	CursorHide = "\x1b[?25l"
	CursorShow = "\x1b[?25h"

	// SGR inverted video and reset
	InvertVideo = "\x1b[7m"
	ResetStyle  = "\x1b[m"
)

// Sequences used by the window size fallback
const (
	// Cursor forward/down are clamped by the terminal, landing in the bottom-right corner
	cursorFarCorner = "\x1b[999C\x1b[999B"
	// Device status report: request cursor position
	cursorReport = "\x1b[6n"
)

// AppendCursorPos appends a cursor positioning sequence (1-based row/col)
func AppendCursorPos(dst []byte, row, col int) []byte {
	if row < 1 {
		row = 1
	}
	if col < 1 {
		col = 1
	}
	dst = append(dst, "\x1b["...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'H')
}
