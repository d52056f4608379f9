package lexer

import "unicode"

// RuleFunc adapts a plain function into an emitting Rule.
type RuleFunc[K any] func(cur *Cursor) (Token[K], bool, error)

// Match calls f.
func (f RuleFunc[K]) Match(cur *Cursor) (Token[K], bool, error) {
	return f(cur)
}

// Emits always reports true; use NewSkipRule for non-emitting behavior.
func (RuleFunc[K]) Emits() bool {
	return true
}

type skipRule[K any] struct {
	pred func(rune) bool
}

func (r skipRule[K]) Match(cur *Cursor) (Token[K], bool, error) {
	cur.MatchWhile(r.pred)
	return Token[K]{}, false, nil
}

func (skipRule[K]) Emits() bool {
	return false
}

// NewSkipRule returns a non-emitting rule that consumes a run of
// characters satisfying pred and never produces a token.
func NewSkipRule[K any](pred func(rune) bool) Rule[K] {
	return skipRule[K]{pred: pred}
}

// NewWhitespaceRule returns a non-emitting rule that consumes whitespace.
func NewWhitespaceRule[K any]() Rule[K] {
	return NewSkipRule[K](unicode.IsSpace)
}

type literalRule[K any] struct {
	kind K
	text string
}

func (r literalRule[K]) Match(cur *Cursor) (Token[K], bool, error) {
	sp, ok := cur.MatchLiteral(r.text)
	if !ok {
		return Token[K]{}, false, nil
	}
	return Token[K]{Kind: r.kind, Span: sp}, true, nil
}

func (literalRule[K]) Emits() bool {
	return true
}

// NewLiteralRule matches an exact text and tags it with kind.
func NewLiteralRule[K any](kind K, text string) Rule[K] {
	return literalRule[K]{kind: kind, text: text}
}

type whileRule[K any] struct {
	kind K
	pred func(rune) bool
}

func (r whileRule[K]) Match(cur *Cursor) (Token[K], bool, error) {
	sp := cur.MatchWhile(r.pred)
	if sp.Empty() {
		return Token[K]{}, false, nil
	}
	return Token[K]{Kind: r.kind, Span: sp}, true, nil
}

func (whileRule[K]) Emits() bool {
	return true
}

// NewWhileRule matches a non-empty run of characters satisfying pred and
// tags it with kind.
func NewWhileRule[K any](kind K, pred func(rune) bool) Rule[K] {
	return whileRule[K]{kind: kind, pred: pred}
}

type oneRule[K any] struct {
	kind K
	pred func(rune) bool
}

func (r oneRule[K]) Match(cur *Cursor) (Token[K], bool, error) {
	sp, ok := cur.MatchOne(r.pred)
	if !ok {
		return Token[K]{}, false, nil
	}
	return Token[K]{Kind: r.kind, Span: sp}, true, nil
}

func (oneRule[K]) Emits() bool {
	return true
}

// NewOneRule matches a single character satisfying pred and tags it with
// kind.
func NewOneRule[K any](kind K, pred func(rune) bool) Rule[K] {
	return oneRule[K]{kind: kind, pred: pred}
}
