package editor

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/termedit/terminal"
)

var errKeysExhausted = errors.New("scripted keys exhausted")

// fakeTerminal replays scripted key events and records every write
type fakeTerminal struct {
	rows, cols int
	sizeErr    error
	writeErr   error

	keys   []terminal.Event
	writes [][]byte
}

func (f *fakeTerminal) ReadKey() (terminal.Event, error) {
	if len(f.keys) == 0 {
		return terminal.Event{}, errKeysExhausted
	}
	ev := f.keys[0]
	f.keys = f.keys[1:]
	return ev, nil
}

func (f *fakeTerminal) WindowSize() (int, int, error) {
	return f.rows, f.cols, f.sizeErr
}

func (f *fakeTerminal) Write(p []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, append([]byte(nil), p...))
	return nil
}

func (f *fakeTerminal) lastWrite() []byte {
	if len(f.writes) == 0 {
		return nil
	}
	return f.writes[len(f.writes)-1]
}

// countingAlerter counts alerts
type countingAlerter struct {
	alerts int
}

func (a *countingAlerter) Alert() { a.alerts++ }

func key(k terminal.Key) terminal.Event {
	return terminal.Event{Key: k}
}

// typed returns one rune event per byte of s
func typed(s string) []terminal.Event {
	events := make([]terminal.Event, 0, len(s))
	for i := 0; i < len(s); i++ {
		events = append(events, terminal.Event{Key: terminal.KeyRune, Ch: s[i]})
	}
	return events
}

// script concatenates event groups
func script(groups ...[]terminal.Event) []terminal.Event {
	var out []terminal.Event
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// newTestEditor builds an editor with a text area of rows x cols holding lines
func newTestEditor(t *testing.T, rows, cols int, lines ...string) (*Editor, *fakeTerminal) {
	t.Helper()

	ft := &fakeTerminal{rows: rows + 2, cols: cols}
	e, err := New(ft, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if len(lines) > 0 {
		raw := make([][]byte, len(lines))
		for i, l := range lines {
			raw[i] = []byte(l)
		}
		e.buf.Load(raw)
	}

	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return clock }
	return e, ft
}

// frameRows splits a frame into its text rows, status line and message line
func frameRows(t *testing.T, frame []byte) []string {
	t.Helper()

	prefix := terminal.CursorHide + terminal.CursorHome
	if !bytes.HasPrefix(frame, []byte(prefix)) {
		t.Fatalf("frame does not start with hide+home: %q", frame)
	}
	return strings.Split(string(frame[len(prefix):]), "\r\n")
}
