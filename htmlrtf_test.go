package rtfdecap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanHtmlrtfSuppressedBasicToggle(t *testing.T) {
	root := parseDoc(t, `{\rtf1\ansi\fromhtml1 a\htmlrtf b\htmlrtf0 c}`)
	suppressed := scanHtmlrtfSuppressed(root)

	var kept []string
	Walk(root, func(_ *Group, tok Token) {
		if tok.Kind == LiteralString && !suppressed[tok.Offset] {
			kept = append(kept, string(tok.Text))
		}
	}, nil)
	require.Equal(t, []string{"a", "c"}, kept)
}

func TestScanHtmlrtfSuppressedRevertsOnGroupExit(t *testing.T) {
	root := parseDoc(t, `{\rtf1\ansi\fromhtml1 {\htmlrtf x}y}`)
	suppressed := scanHtmlrtfSuppressed(root)

	var kept []string
	Walk(root, func(_ *Group, tok Token) {
		if tok.Kind == LiteralString && !suppressed[tok.Offset] {
			kept = append(kept, string(tok.Text))
		}
	}, nil)
	require.Equal(t, []string{"y"}, kept)
}
