package source

import (
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultTabWidth is the tab stop interval used when no option overrides it.
const DefaultTabWidth = 4

// File is an immutable source buffer with a display name and precomputed
// line-start offsets. It is safe to share by reference across any number of
// cursors, spans and diagnostics.
type File struct {
	name       string
	text       string
	lineStarts []int
	tabWidth   int
}

// Option configures a File at construction time.
type Option func(*File)

// WithTabWidth sets the tab stop interval used for column resolution.
func WithTabWidth(width int) Option {
	return func(f *File) {
		if width > 0 {
			f.tabWidth = width
		}
	}
}

// NewFile wraps an in-memory text buffer. The name is an opaque display
// label, typically a file path. Line starts are computed eagerly; "\n",
// "\r\n" and lone "\r" each terminate a line, with "\r\n" counted once.
func NewFile(name string, text string, opts ...Option) *File {
	f := &File{
		name:     name,
		text:     text,
		tabWidth: DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.lineStarts = scanLineStarts(text)
	return f
}

// NewFileFromPath reads path from disk and wraps its contents, using the
// path itself as the display name.
func NewFileFromPath(path string, opts ...Option) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFile(path, string(raw), opts...), nil
}

// scanLineStarts records the byte offset following every line terminator.
// The first entry is always 0.
func scanLineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue // the \n branch records the pair once
			}
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Name returns the display label supplied at construction.
func (f *File) Name() string {
	return f.name
}

// Text returns the full source buffer.
func (f *File) Text() string {
	return f.text
}

// Len returns the buffer length in bytes.
func (f *File) Len() int {
	return len(f.text)
}

// TabWidth returns the tab stop interval used for column resolution.
func (f *File) TabWidth() int {
	return f.tabWidth
}

// LineCount returns the number of lines, which is one more than the number
// of line terminator sequences in the buffer.
func (f *File) LineCount() int {
	return len(f.lineStarts)
}

// Resolve maps a byte offset to a Position via binary search over the line
// starts. Offsets equal to the buffer length resolve to the position just
// past the final character. Columns are 1-based display units.
func (f *File) Resolve(offset int) (Position, error) {
	if offset < 0 || offset > len(f.text) {
		return Position{}, &OutOfRangeError{File: f.name, What: "offset", Value: offset, Max: len(f.text)}
	}

	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	})
	start := f.lineStarts[line-1]

	col := 1
	for pos := start; pos < offset; {
		r, size := utf8.DecodeRuneInString(f.text[pos:])
		col = AdvanceColumn(col, r, f.tabWidth)
		pos += size
	}

	return Position{Offset: offset, Line: line, Column: col}, nil
}

// LineText returns the content of the given 1-based line without its
// terminator.
func (f *File) LineText(line int) (string, error) {
	if line < 1 || line > len(f.lineStarts) {
		return "", &OutOfRangeError{File: f.name, What: "line", Value: line, Max: len(f.lineStarts)}
	}
	start, end := f.lineBounds(line)
	return strings.TrimRight(f.text[start:end], "\r\n"), nil
}

// OffsetOf maps a 1-based line and display column back to a byte offset.
// It is the inverse of Resolve: a column that lands inside a tab stop or a
// wide rune maps to the offset of the rune covering it.
func (f *File) OffsetOf(line int, column int) (int, error) {
	if line < 1 || line > len(f.lineStarts) {
		return 0, &OutOfRangeError{File: f.name, What: "line", Value: line, Max: len(f.lineStarts)}
	}
	if column < 1 {
		return 0, &OutOfRangeError{File: f.name, What: "column", Value: column, Max: 1}
	}

	start, end := f.lineBounds(line)
	pos, col := start, 1
	for pos < end {
		if col == column {
			return pos, nil
		}
		r, size := utf8.DecodeRuneInString(f.text[pos:])
		col = AdvanceColumn(col, r, f.tabWidth)
		if col > column {
			return pos, nil
		}
		pos += size
	}
	if col == column {
		return pos, nil
	}
	return 0, &OutOfRangeError{File: f.name, What: "column", Value: column, Max: col}
}

// lineBounds returns the byte range of a 1-based line including its
// terminator.
func (f *File) lineBounds(line int) (int, int) {
	start := f.lineStarts[line-1]
	end := len(f.text)
	if line < len(f.lineStarts) {
		end = f.lineStarts[line]
	}
	return start, end
}
