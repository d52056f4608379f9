package lexer

import "github.com/SpideyZac/runic/source"

// Rule is one tokenization strategy tried in order by a Lexer.
type Rule[K any] interface {
	// Match attempts to read one token at the cursor position. It reports
	// false when the rule does not apply there; an error stops the lexer.
	Match(cur *Cursor) (Token[K], bool, error)
	// Emits reports whether the rule produces tokens. The driver rewinds
	// an emitting rule that misses, so partial consumption never leaks;
	// non-emitting rules (whitespace or comment skippers) keep whatever
	// input they consumed even without producing a token.
	Emits() bool
}

// Lexer drives a cursor through an ordered rule list. The grammar lives
// entirely in the rules; the driver only sequences them.
type Lexer[K any] struct {
	cursor *Cursor
	rules  []Rule[K]
}

// New builds a lexer over f with the given rules. Rule order is match
// priority.
func New[K any](f *source.File, rules ...Rule[K]) *Lexer[K] {
	return &Lexer[K]{
		cursor: NewCursor(f),
		rules:  rules,
	}
}

// Cursor exposes the underlying cursor, letting callers inspect position
// or take over scanning between tokens.
func (l *Lexer[K]) Cursor() *Cursor {
	return l.cursor
}

// Next runs one pass over the rules and returns the first token produced.
// It reports false when no rule matched at the current position, which the
// caller must distinguish via Cursor().AtEnd(): end of input is the normal
// terminal condition, anything else is unmatchable input the caller
// decides how to recover from.
func (l *Lexer[K]) Next() (Token[K], bool, error) {
	for _, rule := range l.rules {
		cp := l.cursor.Mark()
		tok, ok, err := rule.Match(l.cursor)
		if err != nil {
			return Token[K]{}, false, err
		}
		if ok {
			return tok, true, nil
		}
		if rule.Emits() {
			l.cursor.Reset(cp)
		}
	}
	return Token[K]{}, false, nil
}
