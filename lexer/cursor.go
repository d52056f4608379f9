package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/SpideyZac/runic/source"
)

// EOF is returned by Peek and Advance once the cursor is past the last
// character. It is a normal terminal signal, not a fault.
const EOF rune = -1

// Cursor is a stateful scanner over one File. It decodes whole code points,
// tracks line and column incrementally, and supports constant-time
// backtracking through checkpoints. A cursor must be confined to a single
// logical scan; the underlying File may be shared freely.
type Cursor struct {
	file   *source.File
	offset int
	line   int
	column int
}

// Checkpoint is an opaque snapshot of cursor state used for backtracking.
type Checkpoint struct {
	offset int
	line   int
	column int
}

// NewCursor positions a cursor at the start of the file.
func NewCursor(f *source.File) *Cursor {
	return &Cursor{
		file:   f,
		line:   1,
		column: 1,
	}
}

// File returns the file the cursor scans.
func (c *Cursor) File() *source.File {
	return c.file
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.offset
}

// Pos returns the current position from the incrementally tracked state.
// It always agrees with File.Resolve at the same offset.
func (c *Cursor) Pos() source.Position {
	return source.Position{Offset: c.offset, Line: c.line, Column: c.column}
}

// AtEnd reports whether every character has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.offset >= c.file.Len()
}

// Peek returns the code point k characters ahead without advancing, or EOF
// if that far ahead is past the end of input. Peeking never splits a
// multi-byte character.
func (c *Cursor) Peek(k int) rune {
	text := c.file.Text()
	pos := c.offset
	for {
		if pos >= len(text) {
			return EOF
		}
		r, size := utf8.DecodeRuneInString(text[pos:])
		if k == 0 {
			return r
		}
		k--
		pos += size
	}
}

// Advance consumes one character and returns it, or EOF at end of input
// where it is a no-op. Line and column tracking treats "\r\n" as a single
// line break: the "\r" of a pair still occupies a column and the "\n"
// starts the next line, matching File.Resolve on malformed terminator
// mixes too.
func (c *Cursor) Advance() rune {
	text := c.file.Text()
	if c.offset >= len(text) {
		return EOF
	}

	r, size := utf8.DecodeRuneInString(text[c.offset:])
	next := c.offset + size
	switch {
	case r == '\n':
		c.line++
		c.column = 1
	case r == '\r':
		if next >= len(text) || text[next] != '\n' {
			c.line++
			c.column = 1
		} else {
			c.column = source.AdvanceColumn(c.column, r, c.file.TabWidth())
		}
	default:
		c.column = source.AdvanceColumn(c.column, r, c.file.TabWidth())
	}
	c.offset = next
	return r
}

// Mark captures the cursor state for later backtracking.
func (c *Cursor) Mark() Checkpoint {
	return Checkpoint{offset: c.offset, line: c.line, column: c.column}
}

// Reset restores a state previously captured with Mark.
func (c *Cursor) Reset(cp Checkpoint) {
	c.offset = cp.offset
	c.line = cp.line
	c.column = cp.column
}

// MatchLiteral consumes text if the input starts with it at the cursor,
// returning the covered span. On a miss the cursor does not move.
func (c *Cursor) MatchLiteral(text string) (source.Span, bool) {
	if !strings.HasPrefix(c.file.Text()[c.offset:], text) {
		return source.Span{Start: c.offset, End: c.offset}, false
	}
	start := c.offset
	end := c.offset + len(text)
	for c.offset < end {
		c.Advance()
	}
	return source.Span{Start: start, End: c.offset}, true
}

// MatchWhile consumes the longest run of characters satisfying pred and
// returns the covered span, which is empty when the first character
// already fails.
func (c *Cursor) MatchWhile(pred func(rune) bool) source.Span {
	start := c.offset
	for {
		r := c.Peek(0)
		if r == EOF || !pred(r) {
			break
		}
		c.Advance()
	}
	return source.Span{Start: start, End: c.offset}
}

// MatchOne consumes a single character satisfying pred. On a miss the
// cursor does not move and the returned span is empty.
func (c *Cursor) MatchOne(pred func(rune) bool) (source.Span, bool) {
	r := c.Peek(0)
	if r == EOF || !pred(r) {
		return source.Span{Start: c.offset, End: c.offset}, false
	}
	start := c.offset
	c.Advance()
	return source.Span{Start: start, End: c.offset}, true
}
