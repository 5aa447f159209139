// Package tag implements the one-byte tag algebra that prefixes every
// datum in the YAD wire format: THHHH_LLLL, where the high nibble T
// selects a type family and the low nibble L selects a width class.
//
// This package owns only the nibble algebra and the sentinel framing
// bytes; it has no notion of an in-memory Value and performs no I/O.
package tag

import "github.com/arloliu/yad/errs"

// Family is the high nibble of a tag byte: the semantic type of the
// datum that follows.
type Family byte

const (
	FamilyUint    Family = 0x1
	FamilyInt     Family = 0x2
	FamilyFloat   Family = 0x3
	FamilyString  Family = 0x4
	FamilyArray   Family = 0x5
	FamilyRowName Family = 0x6
	FamilyKeyName Family = 0x7
	FamilyBool    Family = 0x8
)

// Sentinel framing bytes. These occupy the same byte space as a
// family/width tag but are never interpreted as one; a decoder checks
// for them before attempting to split a byte into nibbles.
const (
	VersionHeader byte = 0xF0
	RowStart      byte = 0xF1
	RowEnd        byte = 0xF2
	KeyStart      byte = 0xF3
	KeyEnd        byte = 0xF4
)

// Canonical bool tags. BoolFalse and BoolTrue are the only two bytes the
// reference encoder ever emits for a Bool value; decode must still accept
// the wider 0x81..0x8F true range documented in spec §9.
const (
	BoolFalse byte = 0x80
	BoolTrue  byte = 0x81
)

// Make combines a family and a width nibble (1..4) into a tag byte.
func Make(f Family, widthNibble byte) byte {
	return byte(f)<<4 | (widthNibble & 0x0F)
}

// Split decomposes a tag byte into its family and width nibble.
func Split(b byte) (Family, byte) {
	return Family(b >> 4), b & 0x0F
}

// IsBool reports whether b is a bool tag (high nibble 0x8).
func IsBool(b byte) bool {
	return Family(b>>4) == FamilyBool
}

// BoolValue decodes a bool tag per spec §3: 0x80 is false, anything else
// with high nibble 0x8 (0x81..0x8F) is true. The caller must have already
// established IsBool(b).
func BoolValue(b byte) bool {
	return b != BoolFalse
}

// widthBytes maps a tag's low nibble (1, 2, 3, or 4) to the byte count it
// designates: a scalar's byte width for numeric families, or the byte
// count of a length-prefix field for string/array/name families. Both
// uses share the same 1/2/4/8 progression (spec §4.2, §4.3).
var widthBytes = map[byte]int{1: 1, 2: 2, 3: 4, 4: 8}

// WidthBytes resolves a tag's low nibble to the number of bytes it
// designates. It returns errs.ErrMalformedValue if the nibble is not one
// of the four defined width classes.
func WidthBytes(nibble byte) (int, error) {
	n, ok := widthBytes[nibble]
	if !ok {
		return 0, errs.ErrMalformedValue
	}

	return n, nil
}

// NibbleForByteWidth is the inverse of WidthBytes: given a byte count in
// {1, 2, 4, 8}, it returns the tag nibble that designates it. It panics on
// any other input, since callers only ever pass a width they chose
// themselves (the four scalar widths, or one of the four length-prefix
// widths selected by wire.MinimalNibble).
func NibbleForByteWidth(byteWidth int) byte {
	switch byteWidth {
	case 1:
		return 1
	case 2:
		return 2
	case 4:
		return 3
	case 8:
		return 4
	default:
		panic("tag: invalid byte width")
	}
}

// ValidFamily reports whether f is one of the eight defined families.
func ValidFamily(f Family) bool {
	switch f {
	case FamilyUint, FamilyInt, FamilyFloat, FamilyString, FamilyArray, FamilyRowName, FamilyKeyName, FamilyBool:
		return true
	default:
		return false
	}
}
