//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"errors"
	"time"
)

var errUnsupported = errors.New("terminal: platform not supported")

// unsupportedBackend fails Init so the caller exits through the fatal path
type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error                 { return errUnsupported }
func (unsupportedBackend) Fini()                       {}
func (unsupportedBackend) Size() (int, int, error)     { return 0, 0, errUnsupported }
func (unsupportedBackend) Write(p []byte) error        { return errUnsupported }
func (unsupportedBackend) ReadTimeout(time.Duration) (byte, bool, error) {
	return 0, false, errUnsupported
}

func resetTerminalMode() {}
