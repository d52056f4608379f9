package lexer

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"

	"github.com/SpideyZac/runic/source"
)

type testKind string

const (
	kindLet   testKind = "let"
	kindIdent testKind = "ident"
	kindInt   testKind = "int"
	kindEq    testKind = "eq"
)

func testRules() []Rule[testKind] {
	return []Rule[testKind]{
		NewWhitespaceRule[testKind](),
		NewLiteralRule(kindLet, "let"),
		NewLiteralRule(kindEq, "="),
		NewWhileRule(kindInt, unicode.IsDigit),
		NewWhileRule(kindIdent, unicode.IsLetter),
	}
}

func lexAll(t *testing.T, l *Lexer[testKind]) []Token[testKind] {
	t.Helper()
	var tokens []Token[testKind]
	for {
		tok, ok, err := l.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func TestLexerNext(t *testing.T) {
	f := source.NewFile("test.txt", "let x = 10;")
	l := New(f, testRules()...)

	tokens := lexAll(t, l)
	require.Len(t, tokens, 4)

	require.Equal(t, kindLet, tokens[0].Kind)
	require.Equal(t, "let", tokens[0].Text(f))
	require.Equal(t, kindIdent, tokens[1].Kind)
	require.Equal(t, "x", tokens[1].Text(f))
	require.Equal(t, kindEq, tokens[2].Kind)
	require.Equal(t, kindInt, tokens[3].Kind)
	require.Equal(t, "10", tokens[3].Text(f))

	// ";" matches no rule; the lexer stops there and leaves recovery to
	// the caller.
	require.False(t, l.Cursor().AtEnd())
	require.Equal(t, ';', l.Cursor().Peek(0))
}

func TestLexerSkipRuleKeepsConsumedInput(t *testing.T) {
	f := source.NewFile("test.txt", "     let")
	l := New(f, testRules()...)

	tok, ok, err := l.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, kindLet, tok.Kind)
	require.Equal(t, source.Span{Start: 5, End: 8}, tok.Span)
}

func TestLexerRewindsEmittingRuleOnMiss(t *testing.T) {
	f := source.NewFile("test.txt", "abc")
	greedy := RuleFunc[testKind](func(cur *Cursor) (Token[testKind], bool, error) {
		cur.Advance()
		cur.Advance()
		return Token[testKind]{}, false, nil // consumed two runes, then gave up
	})
	l := New(f, greedy, NewWhileRule(kindIdent, unicode.IsLetter))

	tok, ok, err := l.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, source.Span{Start: 0, End: 3}, tok.Span, "greedy rule's partial consumption must be rewound")
}

func TestLexerRuleOrderIsPriority(t *testing.T) {
	f := source.NewFile("test.txt", "letter")
	l := New(f,
		NewLiteralRule(kindLet, "let"),
		NewWhileRule(kindIdent, unicode.IsLetter),
	)

	tok, _, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, kindLet, tok.Kind, "earlier rules win even when a later rule would match more")
}

func TestLexerAtEnd(t *testing.T) {
	f := source.NewFile("test.txt", "   ")
	l := New(f, testRules()...)

	_, ok, err := l.Next()
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, l.Cursor().AtEnd())
}

func TestNewOneRule(t *testing.T) {
	f := source.NewFile("test.txt", "+x")
	l := New(f, NewOneRule(kindEq, func(r rune) bool { return r == '+' }))

	tok, ok, err := l.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, source.Span{Start: 0, End: 1}, tok.Span)

	_, ok, err = l.Next()
	require.NoError(t, err)
	require.False(t, ok)
}
