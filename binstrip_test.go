package rtfdecap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripBinarySplicesPayloadOut(t *testing.T) {
	src := []byte(`{\pict\bin4` + "\x01\x02\x03\x04" + `}`)
	out, records, err := stripBinary(src)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, []byte{1, 2, 3, 4}, records[0].Data)
	require.NotContains(t, string(out), "\x01\x02\x03\x04")
	require.Contains(t, string(out), `\pict\bin4`)
}

func TestStripBinaryLeavesOrdinaryControlWordsAlone(t *testing.T) {
	src := []byte(`{\binding\par}`)
	out, records, err := stripBinary(src)
	require.NoError(t, err)
	require.Empty(t, records)
	require.Equal(t, src, out)
}

func TestStripBinaryErrorsOnTruncatedPayload(t *testing.T) {
	src := []byte(`\bin100short`)
	_, _, err := stripBinary(src)
	require.Error(t, err)
}

func TestStripBinaryZeroLength(t *testing.T) {
	src := []byte(`\bin0\par`)
	out, records, err := stripBinary(src)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Empty(t, records[0].Data)
	require.Equal(t, `\bin0\par`, string(out))
}
