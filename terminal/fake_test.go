package terminal

import (
	"bytes"
	"errors"
	"time"
)

// gap marks a read timeout in a scripted input stream
const gap = -1

// fakeBackend replays scripted input; gap entries simulate timeouts
type fakeBackend struct {
	input   []int
	pos     int
	out     bytes.Buffer
	cols    int
	rows    int
	sizeErr error
	readErr error

	inits int
	finis int
	reads int
}

func newFakeBackend(script ...int) *fakeBackend {
	return &fakeBackend{input: script, cols: 80, rows: 24}
}

// bytesScript converts a string to script entries
func bytesScript(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i])
	}
	return out
}

func (f *fakeBackend) Init() error { f.inits++; return nil }
func (f *fakeBackend) Fini()       { f.finis++ }

func (f *fakeBackend) Size() (int, int, error) {
	return f.cols, f.rows, f.sizeErr
}

func (f *fakeBackend) Write(p []byte) error {
	f.out.Write(p)
	return nil
}

var errScriptDone = errors.New("script exhausted")

func (f *fakeBackend) ReadTimeout(time.Duration) (byte, bool, error) {
	f.reads++
	if f.readErr != nil {
		return 0, false, f.readErr
	}
	if f.pos >= len(f.input) {
		return 0, false, nil
	}
	v := f.input[f.pos]
	f.pos++
	if v == gap {
		return 0, false, nil
	}
	return byte(v), true, nil
}
