// Package buffer holds the editor's text as an ordered sequence of lines.
//
// Each Line keeps its raw bytes and a derived render form with tabs expanded
// to the buffer's tab stop. Every mutation goes through Buffer, which
// recomputes the render form and bumps the modification counter.
package buffer
