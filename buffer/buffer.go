package buffer

import (
	"bytes"

	"github.com/lixenwraith/termedit/constants"
)

// Buffer is the ordered line storage of one open file
type Buffer struct {
	lines    []*Line
	dirty    int
	filename string
	tabStop  int
}

// New creates an empty buffer; tabStop <= 0 selects the default
func New(tabStop int) *Buffer {
	if tabStop <= 0 {
		tabStop = constants.DefaultTabStop
	}
	return &Buffer{tabStop: tabStop}
}

// TabStop returns the render tab interval
func (b *Buffer) TabStop() int {
	return b.tabStop
}

// NumLines returns the number of lines
func (b *Buffer) NumLines() int {
	return len(b.lines)
}

// Line returns the line at index i, or nil when out of range
func (b *Buffer) Line(i int) *Line {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// LineLen returns the raw length of line i; 0 for the virtual line past the end
func (b *Buffer) LineLen(i int) int {
	if l := b.Line(i); l != nil {
		return l.Len()
	}
	return 0
}

// Dirty returns the modification counter
func (b *Buffer) Dirty() int {
	return b.dirty
}

// IsDirty reports unsaved modifications
func (b *Buffer) IsDirty() bool {
	return b.dirty > 0
}

// MarkClean resets the modification counter after a successful save
func (b *Buffer) MarkClean() {
	b.dirty = 0
}

// Filename returns the associated filename, empty if none
func (b *Buffer) Filename() string {
	return b.filename
}

// SetFilename associates the buffer with a file
func (b *Buffer) SetFilename(name string) {
	b.filename = name
}

// Load replaces all content with lines and resets the modification counter
func (b *Buffer) Load(lines [][]byte) {
	b.lines = make([]*Line, 0, len(lines))
	for _, content := range lines {
		l := &Line{raw: append([]byte(nil), content...)}
		l.update(b.tabStop)
		b.lines = append(b.lines, l)
	}
	b.dirty = 0
}

// InsertLine inserts a copy of content at index at, shifting later lines down.
// Out-of-range indexes are ignored.
func (b *Buffer) InsertLine(at int, content []byte) {
	if at < 0 || at > len(b.lines) {
		return
	}

	l := &Line{raw: append([]byte(nil), content...)}
	l.update(b.tabStop)

	b.lines = append(b.lines, nil)
	copy(b.lines[at+1:], b.lines[at:])
	b.lines[at] = l
	b.dirty++
}

// DeleteLine removes the line at index at, shifting later lines up
func (b *Buffer) DeleteLine(at int) {
	if at < 0 || at >= len(b.lines) {
		return
	}

	copy(b.lines[at:], b.lines[at+1:])
	b.lines[len(b.lines)-1] = nil
	b.lines = b.lines[:len(b.lines)-1]
	b.dirty++
}

// InsertChar inserts c at col of line row.
// row == NumLines appends an empty line first; col is clamped to the line.
func (b *Buffer) InsertChar(row, col int, c byte) {
	if row == len(b.lines) {
		b.InsertLine(len(b.lines), nil)
	}
	l := b.Line(row)
	if l == nil {
		return
	}

	if col < 0 || col > len(l.raw) {
		col = len(l.raw)
	}
	l.raw = append(l.raw, 0)
	copy(l.raw[col+1:], l.raw[col:])
	l.raw[col] = c
	l.update(b.tabStop)
	b.dirty++
}

// appendBytes appends s to the end of line row
func (b *Buffer) appendBytes(row int, s []byte) {
	l := b.lines[row]
	l.raw = append(l.raw, s...)
	l.update(b.tabStop)
	b.dirty++
}

// DeleteChar removes the byte before col on line row and returns the resulting
// cursor position. At col 0 the line is merged onto the end of the previous one.
// Nothing happens at (0, 0) or on the virtual line past the end.
func (b *Buffer) DeleteChar(row, col int) (int, int) {
	l := b.Line(row)
	if l == nil {
		return row, col
	}
	if col == 0 && row == 0 {
		return row, col
	}

	if col > 0 {
		if col > len(l.raw) {
			col = len(l.raw)
		}
		copy(l.raw[col-1:], l.raw[col:])
		l.raw = l.raw[:len(l.raw)-1]
		l.update(b.tabStop)
		b.dirty++
		return row, col - 1
	}

	prevLen := b.lines[row-1].Len()
	b.appendBytes(row-1, l.raw)
	b.DeleteLine(row)
	return row - 1, prevLen
}

// SplitLine breaks line row at col, moving [col, end) onto a new following line.
// At col 0 an empty line is inserted before row, which may equal NumLines.
func (b *Buffer) SplitLine(row, col int) {
	if col <= 0 {
		b.InsertLine(row, nil)
		return
	}

	l := b.Line(row)
	if l == nil {
		return
	}
	if col > len(l.raw) {
		col = len(l.raw)
	}

	b.InsertLine(row+1, l.raw[col:])
	l.raw = l.raw[:col:col]
	l.update(b.tabStop)
}

// Serialize joins all lines, each followed by a newline
func (b *Buffer) Serialize() []byte {
	total := 0
	for _, l := range b.lines {
		total += len(l.raw) + 1
	}

	var out bytes.Buffer
	out.Grow(total)
	for _, l := range b.lines {
		out.Write(l.raw)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// CharToRender maps cx on line row to a render column; 0 past the end
func (b *Buffer) CharToRender(row, cx int) int {
	l := b.Line(row)
	if l == nil {
		return 0
	}
	return CharToRender(l.raw, cx, b.tabStop)
}

// RenderToChar maps rx on line row back to a raw index; 0 past the end
func (b *Buffer) RenderToChar(row, rx int) int {
	l := b.Line(row)
	if l == nil {
		return 0
	}
	return RenderToChar(l.raw, rx, b.tabStop)
}
