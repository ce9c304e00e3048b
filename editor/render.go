package editor

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/lixenwraith/termedit/constants"
	"github.com/lixenwraith/termedit/terminal"
)

// Refresh scrolls to the cursor and writes a complete frame in one call
func (e *Editor) Refresh() error {
	e.Scroll()
	if err := e.term.Write(e.buildFrame()); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	return nil
}

// buildFrame composes the whole screen: text rows, status line, message line and cursor
func (e *Editor) buildFrame() []byte {
	var ab bytes.Buffer
	ab.Grow((e.screenRows + constants.ReservedScreenRows) * (e.screenCols + 8))

	ab.WriteString(terminal.CursorHide)
	ab.WriteString(terminal.CursorHome)

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	ab.Write(terminal.AppendCursorPos(ab.AvailableBuffer(), e.cy-e.rowOff+1, e.rx-e.colOff+1))
	ab.WriteString(terminal.CursorShow)
	return ab.Bytes()
}

func (e *Editor) drawRows(ab *bytes.Buffer) {
	numLines := e.buf.NumLines()

	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowOff
		if filerow >= numLines {
			if numLines == 0 && y == e.screenRows/3 {
				e.drawWelcome(ab)
			} else {
				ab.WriteByte('~')
			}
		} else {
			render := e.buf.Line(filerow).Render()
			if e.colOff < len(render) {
				end := min(len(render), e.colOff+e.screenCols)
				ab.Write(render[e.colOff:end])
			}
		}

		ab.WriteString(terminal.ClearLine)
		ab.WriteString("\r\n")
	}
}

// drawWelcome writes the centred version banner shown on an empty buffer
func (e *Editor) drawWelcome(ab *bytes.Buffer) {
	welcome := constants.EditorName + " editor -- version " + constants.Version
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}

	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		ab.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		ab.WriteByte(' ')
	}
	ab.WriteString(welcome)
}

func (e *Editor) drawStatusBar(ab *bytes.Buffer) {
	ab.WriteString(terminal.InvertVideo)

	name := e.buf.Filename()
	if name == "" {
		name = constants.NoNamePlaceholder
	}
	if len(name) > constants.StatusFilenameWidth {
		name = name[:constants.StatusFilenameWidth]
	}
	modified := ""
	if e.buf.IsDirty() {
		modified = constants.ModifiedIndicator
	}

	numLines := e.buf.NumLines()
	status := fmt.Sprintf("%s - %d lines %s", name, numLines, modified)
	rstatus := strconv.Itoa(e.cy+1) + "/" + strconv.Itoa(numLines)

	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}
	ab.WriteString(status)

	// Pad to full width, right-aligning the row counter when it fits
	for n := len(status); n < e.screenCols; n++ {
		if e.screenCols-n == len(rstatus) {
			ab.WriteString(rstatus)
			break
		}
		ab.WriteByte(' ')
	}

	ab.WriteString(terminal.ResetStyle)
	ab.WriteString("\r\n")
}

// drawMessageBar shows the status message until it expires
func (e *Editor) drawMessageBar(ab *bytes.Buffer) {
	ab.WriteString(terminal.ClearLine)

	msg := e.statusMsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if msg != "" && e.now().Sub(e.statusTime) < constants.StatusMessageTimeout {
		ab.WriteString(msg)
	}
}
