package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/lixenwraith/termedit/constants"
)

// Sentinel errors
var (
	ErrNotTerminal = errors.New("stdin is not a terminal")
	ErrWindowSize  = errors.New("unable to determine window size")
)

// Session owns the terminal for the lifetime of the editor
type Session struct {
	backend Backend

	mu  sync.Mutex
	raw bool
}

// New creates a session on the process's stdin/stdout
func New() *Session {
	return &Session{backend: newBackend()}
}

// NewWithBackend creates a session on a custom backend
func NewWithBackend(b Backend) *Session {
	return &Session{backend: b}
}

// EnterRawMode captures the current attributes and switches to raw input
func (s *Session) EnterRawMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.raw {
		return nil
	}
	if err := s.backend.Init(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	s.raw = true
	return nil
}

// ExitRawMode restores captured attributes. Safe to call multiple times
func (s *Session) ExitRawMode() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.raw {
		return
	}
	s.backend.Fini()
	s.raw = false
}

// Write emits p as one write
func (s *Session) Write(p []byte) error {
	return s.backend.Write(p)
}

// ReadKey blocks until one key is available and decodes it
func (s *Session) ReadKey() (Event, error) {
	var first byte
	for {
		b, ok, err := s.backend.ReadTimeout(constants.ReadPollTimeout)
		if err != nil {
			return Event{}, fmt.Errorf("read key: %w", err)
		}
		if ok {
			first = b
			break
		}
	}

	ev, err := decodeKey(first, s.lookahead)
	if err != nil {
		return Event{}, fmt.Errorf("read key: %w", err)
	}
	return ev, nil
}

// lookahead reads one escape sequence byte within the escape timeout
func (s *Session) lookahead() (byte, bool, error) {
	return s.backend.ReadTimeout(constants.EscapeTimeout)
}

// WindowSize returns the terminal geometry, falling back to a cursor position
// report when the OS query fails or reports zero columns
func (s *Session) WindowSize() (rows, cols int, err error) {
	c, r, err := s.backend.Size()
	if err == nil && c > 0 {
		return r, c, nil
	}
	if err != nil {
		log.Printf("terminal: size query failed, probing cursor: %v", err)
	}

	if err := s.backend.Write([]byte(cursorFarCorner)); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrWindowSize, err)
	}
	return s.cursorPosition()
}

// cursorPosition requests and parses a cursor position report
func (s *Session) cursorPosition() (int, int, error) {
	if err := s.backend.Write([]byte(cursorReport)); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrWindowSize, err)
	}

	buf := make([]byte, 0, constants.CursorReportMaxLen)
	for len(buf) < constants.CursorReportMaxLen-1 {
		b, ok, err := s.backend.ReadTimeout(constants.CursorReportTimeout)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrWindowSize, err)
		}
		if !ok || b == 'R' {
			break
		}
		buf = append(buf, b)
	}

	return parseCursorReport(buf)
}

// parseCursorReport parses "ESC [ rows ; cols" (terminating R already stripped)
func parseCursorReport(buf []byte) (int, int, error) {
	if len(buf) < 2 || buf[0] != byteEsc || buf[1] != '[' {
		return 0, 0, ErrWindowSize
	}

	rowPart, colPart, found := bytes.Cut(buf[2:], []byte{';'})
	if !found {
		return 0, 0, ErrWindowSize
	}

	rows, err := strconv.Atoi(string(rowPart))
	if err != nil || rows <= 0 {
		return 0, 0, ErrWindowSize
	}
	cols, err := strconv.Atoi(string(colPart))
	if err != nil || cols <= 0 {
		return 0, 0, ErrWindowSize
	}
	return rows, cols, nil
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if ExitRawMode cannot be called normally
func EmergencyReset(w io.Writer) {
	io.WriteString(w, ResetStyle)
	io.WriteString(w, CursorShow)
	io.WriteString(w, ClearScreen)
	io.WriteString(w, CursorHome)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
