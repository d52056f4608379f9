package lexer

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"

	"github.com/SpideyZac/runic/source"
)

func TestPeekDecodesWholeRunes(t *testing.T) {
	cur := NewCursor(source.NewFile("test.txt", "héllo"))

	require.Equal(t, 'h', cur.Peek(0))
	require.Equal(t, 'é', cur.Peek(1))
	require.Equal(t, 'l', cur.Peek(2))
	require.Equal(t, 'o', cur.Peek(4))
	require.Equal(t, EOF, cur.Peek(5))

	require.Equal(t, 'h', cur.Advance())
	require.Equal(t, 'é', cur.Advance())
	require.Equal(t, 3, cur.Offset(), "after h and the two-byte é the cursor sits on the first l")
	require.Equal(t, 'l', cur.Peek(0))
}

func TestAdvancePastEndIsNoOp(t *testing.T) {
	cur := NewCursor(source.NewFile("test.txt", "ab"))

	cur.Advance()
	cur.Advance()
	require.True(t, cur.AtEnd())

	require.Equal(t, EOF, cur.Advance())
	require.Equal(t, 2, cur.Offset())
	require.Equal(t, EOF, cur.Peek(0))
}

func TestMarkResetRestoresState(t *testing.T) {
	cur := NewCursor(source.NewFile("test.txt", "ab\ncd"))

	cp := cur.Mark()
	cur.Advance()
	cur.Advance()
	cur.Advance()
	require.Equal(t, source.Position{Offset: 3, Line: 2, Column: 1}, cur.Pos())

	cur.Reset(cp)
	require.Equal(t, source.Position{Offset: 0, Line: 1, Column: 1}, cur.Pos())
	require.Equal(t, 'a', cur.Peek(0))
}

func TestMatchLiteral(t *testing.T) {
	cur := NewCursor(source.NewFile("test.txt", "function"))

	sp, ok := cur.MatchLiteral("fn")
	require.True(t, ok)
	require.Equal(t, source.Span{Start: 0, End: 2}, sp)
	require.Equal(t, 2, cur.Offset())

	miss := NewCursor(source.NewFile("test.txt", "foo"))
	before := miss.Mark()
	_, ok = miss.MatchLiteral("fn")
	require.False(t, ok)
	require.Equal(t, before, miss.Mark(), "failed match leaves the cursor untouched")
}

func TestMatchWhileAndOne(t *testing.T) {
	cur := NewCursor(source.NewFile("test.txt", "abc123"))

	sp := cur.MatchWhile(unicode.IsLetter)
	require.Equal(t, source.Span{Start: 0, End: 3}, sp)

	empty := cur.MatchWhile(unicode.IsLetter)
	require.True(t, empty.Empty())
	require.Equal(t, 3, cur.Offset())

	sp, ok := cur.MatchOne(unicode.IsDigit)
	require.True(t, ok)
	require.Equal(t, source.Span{Start: 3, End: 4}, sp)

	_, ok = cur.MatchOne(unicode.IsLetter)
	require.False(t, ok)
	require.Equal(t, 4, cur.Offset())
}

// Incremental tracking and binary-search resolution must never drift, even
// over mixed terminators, tabs and multi-byte runes.
func TestPosAgreesWithResolve(t *testing.T) {
	texts := []string{
		"plain ascii only",
		"ab\r\ncd\ref\ngh",
		"\tindent\n\t\twide\they",
		"héllo wörld\n日本語\r\nend",
		"\r\r\n\n\r",
	}
	for _, text := range texts {
		f := source.NewFile("test.txt", text)
		cur := NewCursor(f)
		for {
			want, err := f.Resolve(cur.Offset())
			require.NoError(t, err)
			require.Equal(t, want, cur.Pos(), "text %q offset %d", text, cur.Offset())
			if cur.Advance() == EOF {
				break
			}
		}
	}
}
