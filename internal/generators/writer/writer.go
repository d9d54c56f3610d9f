// Package writer provides an indentation-aware text buffer used by the
// binding backends to assemble template content.
package writer

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer accumulates generated source text, indenting the start of every
// line by the current level.
type Writer struct {
	buf         bytes.Buffer
	indent      string
	level       int
	atLineStart bool
}

// New creates a writer using the given indentation unit (e.g. "\t" or four
// spaces).
func New(indent string) *Writer {
	return &Writer{indent: indent, atLineStart: true}
}

// Indent increases the indentation level for subsequent lines.
func (w *Writer) Indent() {
	w.level++
}

// Dedent decreases the indentation level; dedenting below zero is ignored.
func (w *Writer) Dedent() {
	if w.level > 0 {
		w.level--
	}
}

// Write appends s to the current line, emitting the indent prefix first if a
// new line is being started.
func (w *Writer) Write(s string) {
	if w.atLineStart && s != "" {
		w.buf.WriteString(strings.Repeat(w.indent, w.level))
		w.atLineStart = false
	}
	w.buf.WriteString(s)
}

// Line writes s followed by a newline.
func (w *Writer) Line(s string) {
	w.Write(s)
	w.Newline()
}

// Linef writes a formatted line followed by a newline.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// Newline terminates the current line.
func (w *Writer) Newline() {
	w.buf.WriteByte('\n')
	w.atLineStart = true
}

// BlankLine inserts an empty line unless one is already pending.
func (w *Writer) BlankLine() {
	if w.buf.Len() > 0 && !bytes.HasSuffix(w.buf.Bytes(), []byte("\n\n")) {
		w.Newline()
	}
}

// Block writes opener, runs body at one deeper indentation level, then
// writes closer.
func (w *Writer) Block(opener, closer string, body func()) {
	w.Line(opener)
	w.Indent()
	body()
	w.Dedent()
	w.Line(closer)
}

// Comment writes a single-line comment using the given marker ("//", "#").
func (w *Writer) Comment(marker, text string) {
	w.Linef("%s %s", marker, text)
}

// DocComment writes doc as one comment line per non-empty input line; an
// empty doc writes nothing.
func (w *Writer) DocComment(marker, doc string) {
	if doc == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimSpace(doc), "\n") {
		w.Comment(marker, strings.TrimSpace(line))
	}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the accumulated text.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// String returns the accumulated text as a string.
func (w *Writer) String() string {
	return w.buf.String()
}
