// Package terminal provides direct ANSI terminal control for a full-screen editor.
//
// Features:
//   - Raw mode entry/exit with attribute capture and idempotent restore
//   - Bounded-timeout byte reads with EINTR/EAGAIN retry
//   - Table-driven escape sequence decoding with ESC fallback on timeout
//   - Window size query with cursor-position-report fallback
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
