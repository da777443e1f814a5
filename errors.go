package rtfdecap

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers should use errors.Is/errors.As rather than
// comparing messages, since every returned error wraps one of these with
// byte-offset context via %w.
var (
	// ErrMalformedRtf means the input is not well-formed RTF at all: an
	// unbalanced group, a truncated control word, or a \bin run past EOF.
	ErrMalformedRtf = errors.New("rtfdecap: malformed rtf")

	// ErrNotEncapsulated means the input is well-formed RTF but does not
	// carry an [MS-OXRTFEX] encapsulated HTML or plain-text payload.
	ErrNotEncapsulated = errors.New("rtfdecap: not encapsulated rtf")

	// ErrMalformedEncapsulated means the input claims encapsulation (an
	// \fromhtml1 or \fromtext control word is present) but violates the
	// ordering or structural rules encapsulation requires.
	ErrMalformedEncapsulated = errors.New("rtfdecap: malformed encapsulated rtf")

	// ErrUnsupportedFormat means the input uses a real RTF feature this
	// de-encapsulator does not implement (an unrecognized compressed-RTF
	// magic number, for instance).
	ErrUnsupportedFormat = errors.New("rtfdecap: unsupported rtf format")
)

// offsetError wraps a sentinel error with the byte offset in the source
// document where the problem was detected, so a caller can point a user
// (or a debugger) at the exact spot.
type offsetError struct {
	sentinel error
	offset   int
	detail   string
}

func (e *offsetError) Error() string {
	if e.detail == "" {
		return fmt.Sprintf("%s (offset %d)", e.sentinel.Error(), e.offset)
	}
	return fmt.Sprintf("%s (offset %d): %s", e.sentinel.Error(), e.offset, e.detail)
}

func (e *offsetError) Unwrap() error { return e.sentinel }

// Offset returns the byte offset recorded on err, if err (or something it
// wraps) is an offset-carrying error produced by this package.
func Offset(err error) (int, bool) {
	var oe *offsetError
	if errors.As(err, &oe) {
		return oe.offset, true
	}
	return 0, false
}

func malformedAt(offset int, detail string) error {
	return &offsetError{sentinel: ErrMalformedRtf, offset: offset, detail: detail}
}

func notEncapsulatedAt(offset int, detail string) error {
	return &offsetError{sentinel: ErrNotEncapsulated, offset: offset, detail: detail}
}

func malformedEncapsulatedAt(offset int, detail string) error {
	return &offsetError{sentinel: ErrMalformedEncapsulated, offset: offset, detail: detail}
}

func unsupportedAt(offset int, detail string) error {
	return &offsetError{sentinel: ErrUnsupportedFormat, offset: offset, detail: detail}
}
