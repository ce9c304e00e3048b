package editor

import "github.com/lixenwraith/termedit/terminal"

// MoveCursor moves the cursor one step for an arrow key.
// Left and Right wrap across line ends; the row may reach NumLines, the virtual
// line past the end. The column is then clamped to the current line.
func (e *Editor) MoveCursor(key terminal.Key) {
	line := e.buf.Line(e.cy)

	switch key {
	case terminal.KeyLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.buf.LineLen(e.cy)
		}
	case terminal.KeyRight:
		if line != nil {
			if e.cx < line.Len() {
				e.cx++
			} else {
				e.cy++
				e.cx = 0
			}
		}
	case terminal.KeyUp:
		if e.cy != 0 {
			e.cy--
		}
	case terminal.KeyDown:
		if e.cy < e.buf.NumLines() {
			e.cy++
		}
	}

	if n := e.buf.LineLen(e.cy); e.cx > n {
		e.cx = n
	}
}

// movePage jumps to the top or bottom edge of the viewport, then moves a full screen
func (e *Editor) movePage(key terminal.Key) {
	step := terminal.KeyUp
	if key == terminal.KeyPageUp {
		e.cy = e.rowOff
	} else {
		step = terminal.KeyDown
		e.cy = min(e.rowOff+e.screenRows-1, e.buf.NumLines())
	}

	for n := e.screenRows; n > 0; n-- {
		e.MoveCursor(step)
	}
}

// Scroll recomputes rx and the minimal viewport offsets that keep the cursor visible
func (e *Editor) Scroll() {
	e.rx = e.buf.CharToRender(e.cy, e.cx)

	if e.scrollToCursor {
		e.rowOff = e.cy
		e.scrollToCursor = false
	}

	if e.cy < e.rowOff {
		e.rowOff = e.cy
	}
	if e.cy >= e.rowOff+e.screenRows {
		e.rowOff = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOff {
		e.colOff = e.rx
	}
	if e.rx >= e.colOff+e.screenCols {
		e.colOff = e.rx - e.screenCols + 1
	}
}
