package rtfdecap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenKindString(t *testing.T) {
	require.Equal(t, "ControlWord", ControlWord.String())
	require.Equal(t, "GroupOpen", GroupOpen.String())
	require.Equal(t, "Unknown", TokenKind(999).String())
}

func TestControlWordTokenHasParam(t *testing.T) {
	tok := controlWordToken("rtf", 1, true, 0)
	require.Equal(t, ControlWord, tok.Kind)
	require.Equal(t, "rtf", tok.Name)
	require.Equal(t, 1, tok.Param)
	require.True(t, tok.HasParam)

	par := controlWordToken("par", 0, false, 10)
	require.False(t, par.HasParam)
}

func TestHexEscapeTokenCarriesByteValue(t *testing.T) {
	tok := hexEscapeToken(0xA0, 5)
	require.Equal(t, HexEscape, tok.Kind)
	require.Equal(t, 0xA0, tok.Param)
	require.Equal(t, 5, tok.Offset)
}

func TestUnicodeEscapeTokenAllowsNegativeParam(t *testing.T) {
	tok := unicodeEscapeToken(-10179, 3)
	require.Equal(t, UnicodeEscape, tok.Kind)
	require.Equal(t, -10179, tok.Param)
}
