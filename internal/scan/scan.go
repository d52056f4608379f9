package scan

import (
	"fmt"
	"unicode"

	"github.com/SpideyZac/runic/diagnostic"
	"github.com/SpideyZac/runic/lexer"
	"github.com/SpideyZac/runic/source"
)

// TokenKind labels the token categories of the demo expression language.
type TokenKind string

const (
	TokenIdent  TokenKind = "ident"
	TokenNumber TokenKind = "number"
	TokenString TokenKind = "string"
	TokenOp     TokenKind = "op"
	TokenPunct  TokenKind = "punct"
)

// Result is the outcome of scanning one file.
type Result struct {
	Tokens      []lexer.Token[TokenKind]
	Diagnostics []*diagnostic.Diagnostic
}

// HasErrors reports whether any diagnostic carries error severity.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity() == diagnostic.SeverityError {
			return true
		}
	}
	return false
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// stringRule lexes double-quoted strings with backslash escapes. An
// unterminated string is a diagnostic, not a silent miss.
func stringRule(cur *lexer.Cursor) (lexer.Token[TokenKind], bool, error) {
	if cur.Peek(0) != '"' {
		return lexer.Token[TokenKind]{}, false, nil
	}
	start := cur.Offset()
	cur.Advance()
	for {
		switch cur.Peek(0) {
		case lexer.EOF, '\n', '\r':
			span := source.Span{Start: start, End: cur.Offset()}
			return lexer.Token[TokenKind]{}, false, diagnostic.New(diagnostic.SeverityError, "unterminated string literal").
				WithPrimary(span).
				WithNote("strings must close before the end of the line")
		case '\\':
			cur.Advance()
			// A backslash right before the terminator escapes nothing;
			// leave the terminator for the unterminated-string check.
			if r := cur.Peek(0); r != lexer.EOF && r != '\n' && r != '\r' {
				cur.Advance()
			}
		case '"':
			cur.Advance()
			span := source.Span{Start: start, End: cur.Offset()}
			return lexer.NewToken(TokenString, span), true, nil
		default:
			cur.Advance()
		}
	}
}

// numberRule lexes integers and decimal floats.
func numberRule(cur *lexer.Cursor) (lexer.Token[TokenKind], bool, error) {
	sp := cur.MatchWhile(unicode.IsDigit)
	if sp.Empty() {
		return lexer.Token[TokenKind]{}, false, nil
	}
	if cur.Peek(0) == '.' && unicode.IsDigit(cur.Peek(1)) {
		cur.Advance()
		frac := cur.MatchWhile(unicode.IsDigit)
		sp = sp.Union(frac)
	}
	return lexer.NewToken(TokenNumber, sp), true, nil
}

// identRule lexes identifiers; unlike a bare run of ident characters it
// refuses a leading digit.
func identRule(cur *lexer.Cursor) (lexer.Token[TokenKind], bool, error) {
	if !isIdentStart(cur.Peek(0)) {
		return lexer.Token[TokenKind]{}, false, nil
	}
	sp := cur.MatchWhile(isIdentPart)
	return lexer.NewToken(TokenIdent, sp), true, nil
}

// rules builds the rule list for the expression language. Order is match
// priority: multi-character operators before their single-character
// prefixes.
func rules() []lexer.Rule[TokenKind] {
	rs := []lexer.Rule[TokenKind]{
		lexer.NewWhitespaceRule[TokenKind](),
		lineCommentRule{},
		lexer.RuleFunc[TokenKind](stringRule),
		lexer.RuleFunc[TokenKind](numberRule),
		lexer.RuleFunc[TokenKind](identRule),
	}
	for _, op := range []string{"==", "!=", "<=", ">=", "&&", "||", "+", "-", "*", "/", "<", ">", "=", "!"} {
		rs = append(rs, lexer.NewLiteralRule(TokenOp, op))
	}
	for _, p := range []string{"(", ")", "{", "}", ",", ";"} {
		rs = append(rs, lexer.NewLiteralRule(TokenPunct, p))
	}
	return rs
}

// lineCommentRule skips // comments up to the line terminator.
type lineCommentRule struct{}

func (lineCommentRule) Match(cur *lexer.Cursor) (lexer.Token[TokenKind], bool, error) {
	if cur.Peek(0) != '/' || cur.Peek(1) != '/' {
		return lexer.Token[TokenKind]{}, false, nil
	}
	cur.MatchWhile(func(r rune) bool { return r != '\n' && r != '\r' })
	return lexer.Token[TokenKind]{}, false, nil
}

func (lineCommentRule) Emits() bool {
	return false
}

// File scans one source file to the end, collecting tokens and
// diagnostics. Unmatchable characters produce a diagnostic each and the
// scan resumes on the next character.
func File(f *source.File) Result {
	return run(f, rules())
}

func run(f *source.File, rs []lexer.Rule[TokenKind]) Result {
	l := lexer.New(f, rs...)
	var res Result

	for {
		before := l.Cursor().Offset()
		tok, ok, err := l.Next()
		if err != nil {
			if d, isDiag := err.(*diagnostic.Diagnostic); isDiag {
				res.Diagnostics = append(res.Diagnostics, d)
			} else {
				res.Diagnostics = append(res.Diagnostics,
					diagnostic.New(diagnostic.SeverityError, err.Error()))
			}
			// A rule that errors without consuming must not stall the scan.
			if l.Cursor().Offset() == before {
				if l.Cursor().AtEnd() {
					return res
				}
				l.Cursor().Advance()
			}
			continue
		}
		if ok {
			res.Tokens = append(res.Tokens, tok)
			continue
		}
		if l.Cursor().AtEnd() {
			return res
		}

		at := l.Cursor().Offset()
		r := l.Cursor().Advance()
		res.Diagnostics = append(res.Diagnostics,
			diagnostic.New(diagnostic.SeverityError, fmt.Sprintf("unexpected character %q", r)).
				WithPrimary(source.Span{Start: at, End: l.Cursor().Offset()}))
	}
}
