package lexer

import "github.com/SpideyZac/runic/source"

// Token pairs a caller-defined kind tag with the span of source it covers.
// The kind value space is the caller's; nothing in this package inspects
// it.
type Token[K any] struct {
	Kind K
	Span source.Span
}

// NewToken builds a token.
func NewToken[K any](kind K, span source.Span) Token[K] {
	return Token[K]{Kind: kind, Span: span}
}

// Text returns the slice of f covered by the token's span. The span must
// lie within f.
func (t Token[K]) Text(f *source.File) string {
	return f.Text()[t.Span.Start:t.Span.End]
}
