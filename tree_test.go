package rtfdecap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, toks []Token) *Group {
	t.Helper()
	b := NewBuilder()
	for _, tok := range toks {
		require.NoError(t, b.Push(tok))
	}
	g, err := b.Finish()
	require.NoError(t, err)
	return g
}

func TestBuilderNestsGroups(t *testing.T) {
	toks := []Token{
		groupOpenToken(0),
		controlWordToken("rtf", 1, true, 1),
		groupOpenToken(5),
		controlWordToken("fonttbl", 0, false, 6),
		groupCloseToken(14),
		literalToken([]byte("hi"), 15),
		groupCloseToken(17),
	}
	root := buildTree(t, toks)
	require.Len(t, root.Nodes, 1)
	outer := root.Nodes[0].Group
	require.Len(t, outer.Nodes, 3)
	require.True(t, outer.Nodes[1].IsGroup())
	inner := outer.Nodes[1].Group
	name, ignorable, ok := inner.Destination()
	require.True(t, ok)
	require.False(t, ignorable)
	require.Equal(t, "fonttbl", name)
}

func TestBuilderRejectsUnmatchedClose(t *testing.T) {
	b := NewBuilder()
	err := b.Push(groupCloseToken(0))
	require.Error(t, err)
}

func TestBuilderRejectsUnclosedGroup(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Push(groupOpenToken(0)))
	_, err := b.Finish()
	require.Error(t, err)
}

func TestDestinationDetectsIgnorableMarker(t *testing.T) {
	toks := []Token{
		groupOpenToken(0),
		controlSymbolToken("*", 1),
		controlWordToken("htmltag", 0, false, 2),
		groupCloseToken(10),
	}
	root := buildTree(t, toks)
	g := root.Nodes[0].Group
	name, ignorable, ok := g.Destination()
	require.True(t, ok)
	require.True(t, ignorable)
	require.Equal(t, "htmltag", name)
}

func TestWalkVisitsInOrderAndCanSkip(t *testing.T) {
	toks := []Token{
		groupOpenToken(0),
		literalToken([]byte("a"), 1),
		groupOpenToken(2),
		controlWordToken("fonttbl", 0, false, 3),
		literalToken([]byte("skip me"), 4),
		groupCloseToken(10),
		literalToken([]byte("b"), 11),
		groupCloseToken(12),
	}
	root := buildTree(t, toks)

	var seen []string
	Walk(root, func(_ *Group, tok Token) {
		if tok.Kind == LiteralString {
			seen = append(seen, string(tok.Text))
		}
	}, func(g *Group, enter bool) bool {
		if !enter {
			return true
		}
		name, _, ok := g.Destination()
		return !(ok && name == "fonttbl")
	})

	require.Equal(t, []string{"a", "b"}, seen)
}
