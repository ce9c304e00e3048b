package terminal

import "time"

// Backend abstracts platform-specific terminal operations.
// The session drives key decoding and geometry queries through it, which keeps
// both testable against a scripted byte source.
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Size queries the OS for the terminal geometry
	Size() (cols, rows int, err error)

	// Write writes p to the terminal with a single write call
	Write(p []byte) error

	// ReadTimeout waits up to timeout for one input byte.
	// ok is false when nothing arrived; interrupted reads also report ok=false.
	ReadTimeout(timeout time.Duration) (b byte, ok bool, err error)
}
