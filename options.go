package rtfdecap

import (
	"context"
	"log/slog"
)

// Options configures a Deencapsulate call. Deencapsulate starts from
// defaultOptions (InitialByteCount 1, every other field off) and applies
// the given Option functions on top.
// Grounded on the teacher's plain-struct style (rtfConverter,
// rtfHtmlEncapsulatedInterpreter field initialization in converter.go/
// html-encapsulated-converter.go), generalized to exported functional
// options since the teacher never exposed any configuration surface at
// all - callers got whatever the hardcoded interpreter chose.
type Options struct {
	// FallbackToDefaultCharset is stored but not read by the decode
	// pipeline. With or without it, bytes in a codepage that has no
	// decoder are written through undecoded, and a \fromtext document
	// with no \ansi keyword is rejected with ErrMalformedRtf.
	FallbackToDefaultCharset bool

	// ASCIIFallbackOnUnicodeFailure emits '?' in place of a Unicode
	// character whose surrogate pair never completes. Without it such a
	// surrogate is dropped (and logged at Warn) and decoding continues.
	ASCIIFallbackOnUnicodeFailure bool

	// InitialByteCount is the default \ucN value assumed before any
	// \ucN control word has been seen in the current or enclosing
	// scope. [MS-OXRTFEX] specifies 1; this is only configurable for
	// documents that violate the spec but are otherwise decodable.
	InitialByteCount int

	// KeepFontdef retains \*\falt alternate font names on parsed font
	// table entries (SPEC_FULL's font-table alternate-names supplement)
	// instead of discarding them once codepage resolution is done.
	KeepFontdef bool

	// Logger receives Warn-level messages for recoverable document
	// oddities: a duplicate \fonttbl and a dropped unmatched or invalid
	// UTF-16 surrogate. Nothing else is logged. A nil Logger disables
	// logging entirely; Deencapsulate never logs unconditionally.
	Logger *slog.Logger
}

// Option mutates an Options value being built up by New/Deencapsulate.
type Option func(*Options)

func defaultOptions() Options {
	return Options{InitialByteCount: 1}
}

// WithFallbackToDefaultCharset sets Options.FallbackToDefaultCharset,
// which the decode pipeline does not read (see that field).
func WithFallbackToDefaultCharset() Option {
	return func(o *Options) { o.FallbackToDefaultCharset = true }
}

// WithASCIIFallbackOnUnicodeFailure enables substituting '?' for Unicode
// escapes whose surrogate pair never completes.
func WithASCIIFallbackOnUnicodeFailure() Option {
	return func(o *Options) { o.ASCIIFallbackOnUnicodeFailure = true }
}

// WithInitialByteCount overrides the assumed \ucN value before any \ucN
// control word has appeared.
func WithInitialByteCount(n int) Option {
	return func(o *Options) { o.InitialByteCount = n }
}

// WithKeepFontdef retains \*\falt alternate font names in the parsed
// font table for diagnostic use.
func WithKeepFontdef() Option {
	return func(o *Options) { o.KeepFontdef = true }
}

// WithLogger injects a structured logger. A nil logger (the default) is
// equivalent to a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func (o Options) logf(level slog.Level, msg string, args ...any) {
	if o.Logger == nil {
		return
	}
	o.Logger.Log(context.Background(), level, msg, args...)
}
