package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_Indentation(t *testing.T) {
	// Test: Lines are prefixed by the current indentation level
	w := New("\t")
	w.Line("a")
	w.Indent()
	w.Line("b")
	w.Dedent()
	w.Line("c")

	assert.Equal(t, "a\n\tb\nc\n", w.String())
}

func TestWriter_DedentBelowZero(t *testing.T) {
	// Test: Dedenting past zero is ignored
	w := New("  ")
	w.Dedent()
	w.Line("a")
	assert.Equal(t, "a\n", w.String())
}

func TestWriter_Block(t *testing.T) {
	// Test: Block indents its body
	w := New("  ")
	w.Block("{", "}", func() {
		w.Line("x")
	})
	assert.Equal(t, "{\n  x\n}\n", w.String())
}

func TestWriter_BlankLine(t *testing.T) {
	// Test: BlankLine never doubles up and is a no-op on empty output
	w := New("\t")
	w.BlankLine()
	assert.Equal(t, "", w.String())

	w.Line("a")
	w.BlankLine()
	w.BlankLine()
	assert.Equal(t, "a\n\n", w.String())
}

func TestWriter_DocComment(t *testing.T) {
	// Test: Multi-line docs become one comment per line; empty docs write
	// nothing
	w := New("\t")
	w.DocComment("///", "first\nsecond")
	assert.Equal(t, "/// first\n/// second\n", w.String())

	w2 := New("\t")
	w2.DocComment("//", "")
	assert.Zero(t, w2.Len())
}

func TestWriter_PartialLines(t *testing.T) {
	// Test: Write does not terminate the line; indent applies once per line
	w := New("\t")
	w.Indent()
	w.Write("a")
	w.Write("b")
	w.Newline()
	assert.Equal(t, "\tab\n", w.String())
}
