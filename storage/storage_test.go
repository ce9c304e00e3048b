package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/termedit/buffer"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty file", "", nil},
		{"single terminated", "abc\n", []string{"abc"}},
		{"no final newline", "abc\ndef", []string{"abc", "def"}},
		{"crlf", "abc\r\ndef\r\n", []string{"abc", "def"}},
		{"blank lines", "\n\nx\n", []string{"", "", "x"}},
		{"tabs kept", "\tindent\n", []string{"\tindent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Load(writeFile(t, tt.content))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(lines) != len(tt.want) {
				t.Fatalf("Expected %d lines, got %d", len(tt.want), len(lines))
			}
			for i := range tt.want {
				if string(lines[i]) != tt.want[i] {
					t.Errorf("Line %d: got %q, want %q", i, lines[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	lines, err := Load(writeFile(t, long+"\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(lines) != 1 || len(lines[0]) != len(long) {
		t.Errorf("Long line not preserved")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSaveTruncates(t *testing.T) {
	path := writeFile(t, "a much longer original content\n")

	if err := Save(path, []byte("short\n")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "short\n" {
		t.Errorf("Expected truncated content, got %q", got)
	}
}

func TestSaveCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	if err := Save(path, []byte("x\n")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 2 {
		t.Errorf("Expected 2 bytes, got %d", info.Size())
	}
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "file.txt")
	if err := Save(path, []byte("x")); err == nil {
		t.Error("Expected error saving into missing directory")
	}
}

// TestRoundTrip checks Load(Save(Serialize(b))) reproduces the buffer lines
func TestRoundTrip(t *testing.T) {
	cases := [][]string{
		{},
		{""},
		{"one"},
		{"a", "", "\tb", "trailing space "},
		{"", "", ""},
	}

	for _, lines := range cases {
		b := buffer.New(8)
		for i, s := range lines {
			b.InsertLine(i, []byte(s))
		}

		path := filepath.Join(t.TempDir(), "rt.txt")
		if err := Save(path, b.Serialize()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if len(got) != len(lines) {
			t.Fatalf("Round trip %q: got %d lines", lines, len(got))
		}
		for i := range lines {
			if string(got[i]) != lines[i] {
				t.Errorf("Round trip line %d: got %q, want %q", i, got[i], lines[i])
			}
		}
	}
}
