package source

import "fmt"

// Position is a resolved location in a File: a byte offset together with
// its 1-based line and 1-based display column.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open byte range [Start, End) into a single File.
type Span struct {
	Start int
	End   int
}

// NewSpan builds a Span, rejecting inverted or negative ranges.
func NewSpan(start int, end int) (Span, error) {
	if start < 0 || start > end {
		return Span{}, fmt.Errorf("invalid span [%d,%d): start must satisfy 0 <= start <= end", start, end)
	}
	return Span{Start: start, End: end}, nil
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Union returns the smallest span containing both s and o.
func (s Span) Union(o Span) Span {
	start := s.Start
	if o.Start < start {
		start = o.Start
	}
	end := s.End
	if o.End > end {
		end = o.End
	}
	return Span{Start: start, End: end}
}

// Intersects reports whether s and o share at least one byte.
func (s Span) Intersects(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Contains reports whether the position's offset falls inside the span.
func (s Span) Contains(p Position) bool {
	return s.Start <= p.Offset && p.Offset < s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
