package rtfdecap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestDeencapsulateSimpleHtml(t *testing.T) {
	src := []byte(`{\rtf1\ansi\ansicpg1252\fromhtml1\deff0{\fonttbl{\f0\fcharset0 Arial;}}` +
		`\htmlrtf <html><body>\htmlrtf0 {\*\htmltag84 <p>}Hello, world!{\*\htmltag84 </p>}` +
		`\htmlrtf </body></html>\htmlrtf0 }`)

	res, err := Deencapsulate(src)
	require.NoError(t, err)
	require.Equal(t, ContentHTML, res.Type)
	require.Equal(t, "<p>Hello, world!</p>", res.HTML())
}

func TestDeencapsulatePlainText(t *testing.T) {
	src := []byte(`{\rtf1\ansi\ansicpg1252\fromtext\deff0{\fonttbl{\f0\fcharset0 Arial;}}Hello, world!}`)
	res, err := Deencapsulate(src)
	require.NoError(t, err)
	require.Equal(t, ContentText, res.Type)
	require.Equal(t, "Hello, world!", res.Text())
}

func TestDeencapsulateTextWithoutAnsiIsMalformed(t *testing.T) {
	src := []byte(`{\rtf1\fromtext}`)
	_, err := Deencapsulate(src)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedRtf))
}

// TestDeencapsulateParControlWordBecomesNewline reproduces spec.md §8
// scenario 2 verbatim: `\par` between two words must surface as a newline
// separating them, not vanish.
func TestDeencapsulateParControlWordBecomesNewline(t *testing.T) {
	src := []byte(`{\rtf1\ansi\fromtext hello\par world}`)
	res, err := Deencapsulate(src)
	require.NoError(t, err)
	require.Equal(t, "hello\nworld", res.Text())
}

func TestDeencapsulateNotEncapsulated(t *testing.T) {
	src := []byte(`{\rtf1\ansi\deff0{\fonttbl{\f0 Arial;}}hello}`)
	_, err := Deencapsulate(src)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotEncapsulated))
}

func TestDeencapsulateUnbalancedGroupsIsMalformed(t *testing.T) {
	src := []byte(`{\rtf1\ansi\fromtext hello`)
	_, err := Deencapsulate(src)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedRtf))
}

func TestDeencapsulateSurrogatePairEmoji(t *testing.T) {
	src := []byte(`{\rtf1\ansi\ansicpg1252\fromtext\deff0{\fonttbl{\f0\fcharset0 Arial;}}\uc0\u-10179\u-8704}`)
	res, err := Deencapsulate(src)
	require.NoError(t, err)
	require.Equal(t, "\U0001F600", res.Text())
}

func TestDeencapsulateBinaryRecordsSurfaced(t *testing.T) {
	src := []byte(`{\rtf1\ansi\ansicpg1252\fromtext\deff0{\fonttbl{\f0\fcharset0 Arial;}}` +
		`{\*\somedata\bin3` + "\x01\x02\x03" + `}hello}`)
	res, err := Deencapsulate(src)
	require.NoError(t, err)
	require.Equal(t, "hello", res.Text())
	require.Len(t, res.BinaryRecords, 1)
	require.Equal(t, []byte{1, 2, 3}, res.BinaryRecords[0].Data)
}

func TestDeencapsulateKeepFontdefExposesFonts(t *testing.T) {
	src := []byte(`{\rtf1\ansi\ansicpg1252\fromtext\deff0{\fonttbl{\f0\fcharset0 Arial;}}hi}`)
	res, err := Deencapsulate(src, WithKeepFontdef())
	require.NoError(t, err)
	require.NotNil(t, res.Fonts)
	require.Equal(t, "Arial", res.Fonts[0].Name)
}

func TestDeencapsulateDefaultOptionsDoNotExposeFonts(t *testing.T) {
	src := []byte(`{\rtf1\ansi\ansicpg1252\fromtext\deff0{\fonttbl{\f0\fcharset0 Arial;}}hi}`)
	res, err := Deencapsulate(src)
	require.NoError(t, err)
	require.Nil(t, res.Fonts)
}

func TestFromCompressedUncompressedMagicRoundTrips(t *testing.T) {
	plain := []byte(`{\rtf1\ansi\ansicpg1252\fromtext\deff0{\fonttbl{\f0\fcharset0 Arial;}}hi}`)

	header := make([]byte, 16)
	putU32 := func(off int, v uint32) {
		header[off] = byte(v)
		header[off+1] = byte(v >> 8)
		header[off+2] = byte(v >> 16)
		header[off+3] = byte(v >> 24)
	}
	putU32(0, uint32(len(plain)+12))
	putU32(4, uint32(len(plain)))
	putU32(8, uncompressedMagic)
	putU32(12, 0) // crc32 is unchecked for the uncompressed form

	res, err := FromCompressed(append(header, plain...))
	require.NoError(t, err)
	require.Equal(t, ContentText, res.Type)
	require.Equal(t, "hi", res.Text())
}

func TestDeencapsulateBinaryRecordsGoldenDiff(t *testing.T) {
	src := []byte(`{\rtf1\ansi\ansicpg1252\fromtext\deff0{\fonttbl{\f0\fcharset0 Arial;}}` +
		`{\*\somedata\bin3` + "\x01\x02\x03" + `}hello}`)
	res, err := Deencapsulate(src)
	require.NoError(t, err)

	want := []BinaryRecord{{Data: []byte{1, 2, 3}}}
	if diff := cmp.Diff(want, res.BinaryRecords, cmpopts.IgnoreFields(BinaryRecord{}, "Offset")); diff != "" {
		t.Errorf("BinaryRecords mismatch (-want +got):\n%s", diff)
	}
}
