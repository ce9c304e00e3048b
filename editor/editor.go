// Package editor owns the editing session: cursor and viewport, frame rendering,
// the status message, modal prompts and incremental search, and key dispatch.
package editor

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/termedit/buffer"
	"github.com/lixenwraith/termedit/constants"
	"github.com/lixenwraith/termedit/storage"
	"github.com/lixenwraith/termedit/terminal"
)

// Terminal is the raw-mode screen the editor draws on and reads keys from
type Terminal interface {
	ReadKey() (terminal.Event, error)
	WindowSize() (rows, cols int, err error)
	Write(p []byte) error
}

// Alerter signals a recoverable failure to the user beyond the status message
type Alerter interface {
	Alert()
}

type nopAlerter struct{}

func (nopAlerter) Alert() {}

const quitWarning = "WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit."

// Editor is a single editing session over one buffer.
// It is driven from one goroutine; nothing in it is safe for concurrent use.
type Editor struct {
	term  Terminal
	buf   *buffer.Buffer
	alert Alerter
	now   func() time.Time

	// Cursor in raw coordinates, rx is the render column of cx
	cx, cy int
	rx     int

	rowOff, colOff         int
	screenRows, screenCols int

	statusMsg  string
	statusTime time.Time

	quitTimes int

	// Set by a search match; the next Scroll puts the cursor row at the top
	scrollToCursor bool
}

// New creates an editor sized to the terminal window
func New(t Terminal, cfg *Config) (*Editor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	rows, cols, err := t.WindowSize()
	if err != nil {
		return nil, fmt.Errorf("window size: %w", err)
	}

	e := &Editor{
		term:      t,
		buf:       buffer.New(cfg.TabStop),
		alert:     nopAlerter{},
		now:       time.Now,
		quitTimes: constants.QuitTimes,
	}
	e.resize(rows, cols)
	return e, nil
}

// resize sets the text area from the full window size, keeping at least one row and column
func (e *Editor) resize(rows, cols int) {
	e.screenRows = max(rows-constants.ReservedScreenRows, 1)
	e.screenCols = max(cols, 1)
}

// SetAlerter installs the alert hook used on recoverable failures
func (e *Editor) SetAlerter(a Alerter) {
	if a == nil {
		a = nopAlerter{}
	}
	e.alert = a
}

// Buffer returns the edited buffer
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor returns the cursor row and raw column
func (e *Editor) Cursor() (row, col int) {
	return e.cy, e.cx
}

// Open loads path into the buffer and associates it as the filename
func (e *Editor) Open(path string) error {
	lines, err := storage.Load(path)
	if err != nil {
		return err
	}

	e.buf.Load(lines)
	e.buf.SetFilename(path)
	e.cx, e.cy, e.rowOff, e.colOff = 0, 0, 0, 0
	return nil
}

// Save writes the buffer to its file, prompting for a name if there is none.
// I/O failures are reported on the status line; only terminal failures are returned.
func (e *Editor) Save() error {
	if e.buf.Filename() == "" {
		name, ok, err := e.Prompt(constants.SaveAsPrompt, nil)
		if err != nil {
			return err
		}
		if !ok {
			e.SetStatusMessage("Save aborted")
			return nil
		}
		e.buf.SetFilename(name)
	}

	data := e.buf.Serialize()
	if err := storage.Save(e.buf.Filename(), data); err != nil {
		log.Printf("editor: save failed: %v", err)
		e.SetStatusMessage("Can't save! I/O error: %s", unwrapAll(err))
		e.alert.Alert()
		return nil
	}

	e.buf.MarkClean()
	e.SetStatusMessage("%d bytes written to disk", len(data))
	return nil
}

// unwrapAll returns the innermost error for terse status messages
func unwrapAll(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// SetStatusMessage sets the message line text and restarts its expiry
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusTime = e.now()
}

// StatusMessage returns the current message line text, expired or not
func (e *Editor) StatusMessage() string {
	return e.statusMsg
}

// insertChar inserts c at the cursor, extending the buffer on the virtual line
func (e *Editor) insertChar(c byte) {
	e.buf.InsertChar(e.cy, e.cx, c)
	e.cx++
}

// insertNewline splits the current line at the cursor
func (e *Editor) insertNewline() {
	e.buf.SplitLine(e.cy, e.cx)
	e.cy++
	e.cx = 0
}

// deleteChar removes the byte before the cursor, merging lines at column 0
func (e *Editor) deleteChar() {
	if e.cy == e.buf.NumLines() {
		return
	}
	e.cy, e.cx = e.buf.DeleteChar(e.cy, e.cx)
}

// ProcessKey applies one key press; quit is true when the session should end.
// The returned error is a terminal failure from a modal prompt.
func (e *Editor) ProcessKey(ev terminal.Event) (quit bool, err error) {
	switch ev.Key {
	case terminal.KeyEnter:
		e.insertNewline()

	case terminal.KeyCtrlQ:
		if e.buf.IsDirty() && e.quitTimes > 0 {
			e.SetStatusMessage(quitWarning, e.quitTimes)
			e.quitTimes--
			return false, nil
		}
		return true, nil

	case terminal.KeyCtrlS:
		err = e.Save()

	case terminal.KeyCtrlF:
		err = e.Find()

	case terminal.KeyHome:
		e.cx = 0

	case terminal.KeyEnd:
		e.cx = e.buf.LineLen(e.cy)

	case terminal.KeyBackspace, terminal.KeyDelete:
		if ev.Key == terminal.KeyDelete {
			e.MoveCursor(terminal.KeyRight)
		}
		e.deleteChar()

	case terminal.KeyPageUp, terminal.KeyPageDown:
		e.movePage(ev.Key)

	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		e.MoveCursor(ev.Key)

	case terminal.KeyCtrlL, terminal.KeyEscape:
		// Redraw happens every cycle

	case terminal.KeyTab:
		e.insertChar('\t')

	case terminal.KeyRune:
		e.insertChar(ev.Ch)
	}

	e.quitTimes = constants.QuitTimes
	return false, err
}

// Run drives the refresh, read, dispatch cycle until quit or a fatal error
func (e *Editor) Run() error {
	for {
		if err := e.Refresh(); err != nil {
			return err
		}

		ev, err := e.term.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		quit, err := e.ProcessKey(ev)
		if err != nil {
			return err
		}
		if quit {
			if err := e.term.Write([]byte(terminal.ClearScreen + terminal.CursorHome)); err != nil {
				return fmt.Errorf("clear screen: %w", err)
			}
			return nil
		}
	}
}
