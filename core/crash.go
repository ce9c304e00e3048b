// Package core holds process-wide safety helpers shared by the editor's goroutines.
package core

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termedit/constants"
	"github.com/lixenwraith/termedit/terminal"
)

// exit is replaced in tests
var exit = os.Exit

// HandleCrash resets the terminal, reports r with a stack trace and exits with status 1.
// A nil r is ignored so it can take recover() directly.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	stack := debug.Stack()
	terminal.EmergencyReset(os.Stdout)

	log.Printf("crash: %v\n%s", r, stack)
	fmt.Fprintf(os.Stderr, "\r\n%s crashed: %v\r\n", constants.EditorName, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()

	exit(1)
}

// Go runs fn in a new goroutine whose panics go through HandleCrash.
// Use it instead of the go keyword so a crash off the main goroutine still restores the terminal.
func Go(fn func()) {
	go func() {
		defer func() {
			HandleCrash(recover())
		}()
		fn()
	}()
}
