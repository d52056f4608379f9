package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSpanValidation(t *testing.T) {
	sp, err := NewSpan(5, 10)
	require.NoError(t, err)
	require.Equal(t, 5, sp.Start)
	require.Equal(t, 10, sp.End)
	require.Equal(t, 5, sp.Len())

	_, err = NewSpan(10, 5)
	require.Error(t, err)
	_, err = NewSpan(-1, 3)
	require.Error(t, err)

	empty, err := NewSpan(4, 4)
	require.NoError(t, err)
	require.True(t, empty.Empty())
}

func TestSpanUnion(t *testing.T) {
	a := Span{Start: 2, End: 5}
	b := Span{Start: 8, End: 12}
	require.Equal(t, Span{Start: 2, End: 12}, a.Union(b))
	require.Equal(t, Span{Start: 2, End: 12}, b.Union(a))
	require.Equal(t, a, a.Union(a))
}

func TestSpanIntersects(t *testing.T) {
	a := Span{Start: 2, End: 5}
	require.True(t, a.Intersects(Span{Start: 4, End: 8}))
	require.True(t, a.Intersects(Span{Start: 0, End: 3}))
	require.False(t, a.Intersects(Span{Start: 5, End: 8}), "half-open ranges touching at 5 do not overlap")
	require.False(t, a.Intersects(Span{Start: 3, End: 3}), "empty span covers no bytes")
}

func TestSpanContains(t *testing.T) {
	s := Span{Start: 3, End: 7}
	require.True(t, s.Contains(Position{Offset: 3}))
	require.True(t, s.Contains(Position{Offset: 6}))
	require.False(t, s.Contains(Position{Offset: 7}))
	require.False(t, s.Contains(Position{Offset: 2}))
}

func TestExpandTabs(t *testing.T) {
	require.Equal(t, "    x", ExpandTabs("\tx", 4))
	require.Equal(t, "ab  cd", ExpandTabs("ab\tcd", 4))
	require.Equal(t, "        x", ExpandTabs("\tx", 8))
	require.Equal(t, "plain", ExpandTabs("plain", 4))
}
