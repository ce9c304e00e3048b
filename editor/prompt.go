package editor

import "github.com/lixenwraith/termedit/terminal"

// PromptHandler observes every key of a modal prompt together with the input so far.
// It is also told about the terminating Enter or ESC.
type PromptHandler interface {
	OnKey(input string, ev terminal.Event)
}

// PromptFunc adapts a function to PromptHandler
type PromptFunc func(input string, ev terminal.Event)

// OnKey calls f(input, ev)
func (f PromptFunc) OnKey(input string, ev terminal.Event) {
	f(input, ev)
}

// Prompt collects a line of input on the message line.
// format receives the current input through a single %s verb. ok is false when
// the prompt was cancelled with ESC; err is a terminal failure.
func (e *Editor) Prompt(format string, h PromptHandler) (input string, ok bool, err error) {
	var buf []byte

	for {
		e.SetStatusMessage(format, buf)
		if err := e.Refresh(); err != nil {
			return "", false, err
		}

		ev, err := e.term.ReadKey()
		if err != nil {
			return "", false, err
		}

		switch {
		case ev.Key == terminal.KeyBackspace || ev.Key == terminal.KeyDelete:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		case ev.Key == terminal.KeyEscape:
			e.SetStatusMessage("")
			if h != nil {
				h.OnKey(string(buf), ev)
			}
			return "", false, nil

		case ev.Key == terminal.KeyEnter:
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if h != nil {
					h.OnKey(string(buf), ev)
				}
				return string(buf), true, nil
			}

		case ev.IsPrintable():
			buf = append(buf, ev.Ch)
		}

		if h != nil {
			h.OnKey(string(buf), ev)
		}
	}
}
