package rtfdecap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptionsInitialByteCount(t *testing.T) {
	o := defaultOptions()
	require.Equal(t, 1, o.InitialByteCount)
	require.Nil(t, o.Logger)
}

func TestOptionsApply(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{
		WithFallbackToDefaultCharset(),
		WithASCIIFallbackOnUnicodeFailure(),
		WithInitialByteCount(0),
		WithKeepFontdef(),
	} {
		opt(&o)
	}
	require.True(t, o.FallbackToDefaultCharset)
	require.True(t, o.ASCIIFallbackOnUnicodeFailure)
	require.Equal(t, 0, o.InitialByteCount)
	require.True(t, o.KeepFontdef)
}

func TestLogfNoopsWithoutLogger(t *testing.T) {
	o := defaultOptions()
	o.logf(0, "should not panic")
}
