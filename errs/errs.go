// Package errs defines the closed set of error kinds the yad codec can
// return. Every fallible operation in this module returns one of these
// sentinels, either bare or wrapped with context (a row/key name, a
// target type) via fmt.Errorf's %w verb, so callers can match on the
// kind with errors.Is.
package errs

import "errors"

// Domain errors: the caller supplied a value the wire format cannot
// represent.
var (
	ErrNumberOutOfRange = errors.New("yad: number out of range for target type")
	ErrInvalidUTF8      = errors.New("yad: string is not valid UTF-8")
)

// Structural errors: the input bytes do not parse as a well-formed YAD
// stream.
var (
	ErrMalformedVersionHeader = errors.New("yad: malformed version header")
	ErrMalformedContainer     = errors.New("yad: malformed container")
	ErrMalformedRowVector     = errors.New("yad: malformed row")
	ErrMalformedRowNameVector = errors.New("yad: malformed row name")
	ErrMalformedKeyVector     = errors.New("yad: malformed key")
	ErrMalformedKeyNameVector = errors.New("yad: malformed key name")
	ErrMalformedValue         = errors.New("yad: malformed value")
	ErrUnexpectedEOF          = errors.New("yad: unexpected end of input")
	ErrDuplicateName          = errors.New("yad: duplicate name")
)

// Type-mismatch errors: a decoded Value does not hold the variant the
// caller asked to extract.
var ErrValueIsNotA = errors.New("yad: value is not of the requested type")
