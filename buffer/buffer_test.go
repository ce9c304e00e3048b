package buffer

import (
	"bytes"
	"testing"
)

func newBufferWith(lines ...string) *Buffer {
	b := New(8)
	raw := make([][]byte, len(lines))
	for i, s := range lines {
		raw[i] = []byte(s)
	}
	b.Load(raw)
	return b
}

func lineStrings(b *Buffer) []string {
	out := make([]string, b.NumLines())
	for i := range out {
		out[i] = string(b.Line(i).Raw())
	}
	return out
}

func equalLines(t *testing.T, b *Buffer, want ...string) {
	t.Helper()
	got := lineStrings(b)
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines %q, got %d lines %q", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewDefaultsTabStop(t *testing.T) {
	if got := New(0).TabStop(); got != 8 {
		t.Errorf("Expected default tab stop 8, got %d", got)
	}
	if got := New(4).TabStop(); got != 4 {
		t.Errorf("Expected tab stop 4, got %d", got)
	}
}

func TestLoadResetsDirty(t *testing.T) {
	b := New(8)
	b.InsertLine(0, []byte("x"))
	if !b.IsDirty() {
		t.Fatal("Expected dirty after InsertLine")
	}
	b.Load([][]byte{[]byte("a\tb")})
	if b.IsDirty() {
		t.Error("Expected clean after Load")
	}
	if got := string(b.Line(0).Render()); got != "a       b" {
		t.Errorf("Load should compute render form, got %q", got)
	}
}

func TestInsertLine(t *testing.T) {
	b := newBufferWith("a", "c")
	b.InsertLine(1, []byte("b"))
	b.InsertLine(3, []byte("d"))
	b.InsertLine(0, []byte("start"))
	equalLines(t, b, "start", "a", "b", "c", "d")
	if b.Dirty() != 3 {
		t.Errorf("Expected dirty 3, got %d", b.Dirty())
	}

	// Out of range is ignored
	b.InsertLine(99, []byte("x"))
	b.InsertLine(-1, []byte("x"))
	if b.NumLines() != 5 {
		t.Errorf("Expected 5 lines, got %d", b.NumLines())
	}
}

func TestInsertLineCopiesContent(t *testing.T) {
	b := New(8)
	src := []byte("abc")
	b.InsertLine(0, src)
	src[0] = 'X'
	if got := string(b.Line(0).Raw()); got != "abc" {
		t.Errorf("Line aliased caller's slice: %q", got)
	}
}

func TestDeleteLine(t *testing.T) {
	b := newBufferWith("a", "b", "c")
	b.DeleteLine(1)
	equalLines(t, b, "a", "c")
	b.DeleteLine(5)
	equalLines(t, b, "a", "c")
	if b.Dirty() != 1 {
		t.Errorf("Expected dirty 1, got %d", b.Dirty())
	}
}

func TestInsertChar(t *testing.T) {
	b := newBufferWith("abc", "def")
	b.InsertChar(0, 3, 'X')
	equalLines(t, b, "abcX", "def")
	if b.Dirty() != 1 {
		t.Errorf("Expected dirty to increment by 1, got %d", b.Dirty())
	}

	b.InsertChar(1, 0, '>')
	b.InsertChar(1, 2, '\t')
	equalLines(t, b, "abcX", ">d\tef")
	if got := string(b.Line(1).Render()); got != ">d      ef" {
		t.Errorf("Render not refreshed: %q", got)
	}
}

func TestInsertCharAppendsLineAtEnd(t *testing.T) {
	b := New(8)
	b.InsertChar(0, 0, 'a')
	equalLines(t, b, "a")

	b.InsertChar(1, 0, 'b')
	equalLines(t, b, "a", "b")
}

func TestDeleteChar(t *testing.T) {
	b := newBufferWith("abc", "def")

	row, col := b.DeleteChar(0, 2)
	equalLines(t, b, "ac", "def")
	if row != 0 || col != 1 {
		t.Errorf("Expected cursor (0,1), got (%d,%d)", row, col)
	}

	// No-op at origin
	row, col = b.DeleteChar(0, 0)
	equalLines(t, b, "ac", "def")
	if row != 0 || col != 0 {
		t.Errorf("Expected cursor (0,0), got (%d,%d)", row, col)
	}

	// No-op on the virtual line
	row, col = b.DeleteChar(2, 0)
	equalLines(t, b, "ac", "def")
	if row != 2 || col != 0 {
		t.Errorf("Expected cursor (2,0), got (%d,%d)", row, col)
	}
}

func TestDeleteCharMergesLines(t *testing.T) {
	b := newBufferWith("abc", "def")
	before := b.NumLines()

	row, col := b.DeleteChar(1, 0)
	equalLines(t, b, "abcdef")
	if b.NumLines() != before-1 {
		t.Errorf("Expected %d lines, got %d", before-1, b.NumLines())
	}
	if row != 0 || col != 3 {
		t.Errorf("Expected cursor (0,3), got (%d,%d)", row, col)
	}
}

func TestSplitLine(t *testing.T) {
	b := newBufferWith("hello world")
	b.SplitLine(0, 5)
	equalLines(t, b, "hello", " world")

	b.SplitLine(1, 0)
	equalLines(t, b, "hello", "", " world")

	b.SplitLine(0, 5)
	equalLines(t, b, "hello", "", "", " world")
}

func TestSplitLineOnEmptyBuffer(t *testing.T) {
	b := New(8)
	cy, cx := 0, 0
	for i := 0; i < 2; i++ {
		b.SplitLine(cy, cx)
		cy, cx = cy+1, 0
	}

	equalLines(t, b, "", "")
	if cy != 2 || cx != 0 {
		t.Errorf("Expected cursor (2,0), got (%d,%d)", cy, cx)
	}
}

func TestSplitThenAppendDoesNotClobber(t *testing.T) {
	b := newBufferWith("abcdef")
	b.SplitLine(0, 3)
	b.InsertChar(0, 3, 'X')
	equalLines(t, b, "abcX", "def")
}

func TestSerialize(t *testing.T) {
	b := newBufferWith("one", "", "three")
	if got := string(b.Serialize()); got != "one\n\nthree\n" {
		t.Errorf("Serialize = %q", got)
	}
	if got := New(8).Serialize(); len(got) != 0 {
		t.Errorf("Empty buffer serialized to %q", got)
	}
}

func TestBufferIndexMapping(t *testing.T) {
	b := newBufferWith("\tx")
	if got := b.CharToRender(0, 1); got != 8 {
		t.Errorf("CharToRender = %d, want 8", got)
	}
	if got := b.RenderToChar(0, 8); got != 1 {
		t.Errorf("RenderToChar = %d, want 1", got)
	}
	if got := b.CharToRender(1, 5); got != 0 {
		t.Errorf("Virtual line should map to 0, got %d", got)
	}
	if !bytes.Equal(b.Line(0).Raw(), []byte("\tx")) {
		t.Error("Mapping must not modify content")
	}
}

func TestFilenameAndClean(t *testing.T) {
	b := New(8)
	b.SetFilename("notes.txt")
	b.InsertLine(0, nil)
	b.MarkClean()
	if b.Filename() != "notes.txt" || b.IsDirty() {
		t.Errorf("Unexpected state: name=%q dirty=%d", b.Filename(), b.Dirty())
	}
}
