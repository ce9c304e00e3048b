package editor

import (
	"bytes"

	"github.com/lixenwraith/termedit/constants"
	"github.com/lixenwraith/termedit/terminal"
)

// searcher drives incremental search from prompt keystrokes
type searcher struct {
	e         *Editor
	lastMatch int // Row of the last match, -1 for none
	direction int // 1 forward, -1 backward
	found     bool
}

func newSearcher(e *Editor) *searcher {
	return &searcher{e: e, lastMatch: -1, direction: 1}
}

// OnKey steps to the next match of query in the direction chosen by arrow keys.
// Any other key restarts the scan from the top.
func (s *searcher) OnKey(query string, ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyEnter, terminal.KeyEscape:
		s.lastMatch = -1
		s.direction = 1
		return
	case terminal.KeyRight, terminal.KeyDown:
		s.direction = 1
	case terminal.KeyLeft, terminal.KeyUp:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}

	s.found = false
	if query == "" {
		return
	}
	if s.lastMatch == -1 {
		s.direction = 1
	}

	needle := []byte(query)
	numLines := s.e.buf.NumLines()
	current := s.lastMatch

	for n := numLines; n > 0; n-- {
		current += s.direction
		if current < 0 {
			current = numLines - 1
		} else if current >= numLines {
			current = 0
		}

		off := bytes.Index(s.e.buf.Line(current).Render(), needle)
		if off < 0 {
			continue
		}

		s.lastMatch = current
		s.found = true
		s.e.cy = current
		s.e.cx = s.e.buf.RenderToChar(current, off)
		s.e.scrollToCursor = true
		return
	}
}

// Find runs an incremental search prompt.
// Cancelling, or committing a query with no match, restores the cursor and viewport.
func (e *Editor) Find() error {
	savedCx, savedCy := e.cx, e.cy
	savedColOff, savedRowOff := e.colOff, e.rowOff

	s := newSearcher(e)
	query, ok, err := e.Prompt(constants.SearchPrompt, s)
	if err != nil {
		return err
	}
	if ok && s.found {
		return nil
	}

	e.cx, e.cy = savedCx, savedCy
	e.colOff, e.rowOff = savedColOff, savedRowOff
	e.scrollToCursor = false

	if !ok {
		e.SetStatusMessage("Search aborted")
		return nil
	}
	e.SetStatusMessage("No match for %q", query)
	e.alert.Alert()
	return nil
}
