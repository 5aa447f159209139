package value

import (
	"unicode/utf8"

	"github.com/arloliu/yad/errs"
	"github.com/arloliu/yad/tag"
	"github.com/arloliu/yad/wire"
	"github.com/arloliu/yad/yadfloat"
)

// Decode reads one tagged datum from c and returns the Value it denotes.
// It is the inverse of Value.Encode: the tag byte determines the
// variant, and unrecognized families (including a sentinel byte
// appearing where a value tag is expected) fail with
// errs.ErrMalformedValue rather than panicking.
func Decode(c *wire.Cursor) (Value, error) {
	b, err := c.PeekByte()
	if err != nil {
		return Value{}, err
	}

	if tag.IsBool(b) {
		c.ReadByte() //nolint:errcheck // PeekByte above already confirmed a byte is available

		return NewBool(tag.BoolValue(b)), nil
	}

	family, nibble := tag.Split(b)
	if !tag.ValidFamily(family) {
		return Value{}, errs.ErrMalformedValue
	}

	switch family {
	case tag.FamilyUint, tag.FamilyInt, tag.FamilyFloat:
		c.ReadByte() //nolint:errcheck

		return decodeScalar(c, family, nibble)
	case tag.FamilyString:
		c.ReadByte() //nolint:errcheck

		s, err := decodeString(c, nibble)
		if err != nil {
			return Value{}, err
		}

		return NewString(s), nil
	case tag.FamilyArray:
		c.ReadByte() //nolint:errcheck

		return decodeArray(c, nibble)
	default:
		// A recognized family (row-name, key-name) that is never valid
		// at a bare value position. Bool tags are handled above.
		return Value{}, errs.ErrMalformedValue
	}
}

func decodeScalar(c *wire.Cursor, family tag.Family, nibble byte) (Value, error) {
	if _, err := tag.WidthBytes(nibble); err != nil {
		return Value{}, err
	}

	switch family {
	case tag.FamilyUint:
		switch nibble {
		case 1:
			v, err := c.ReadByte()
			return NewUint8(v), err
		case 2:
			v, err := c.ReadUint16()
			return NewUint16(v), err
		case 3:
			v, err := c.ReadUint32()
			return NewUint32(v), err
		case 4:
			v, err := c.ReadUint64()
			return NewUint64(v), err
		}
	case tag.FamilyInt:
		switch nibble {
		case 1:
			v, err := c.ReadByte()
			return NewInt8(int8(v)), err
		case 2:
			v, err := c.ReadUint16()
			return NewInt16(int16(v)), err
		case 3:
			v, err := c.ReadUint32()
			return NewInt32(int32(v)), err
		case 4:
			v, err := c.ReadUint64()
			return NewInt64(int64(v)), err
		}
	case tag.FamilyFloat:
		switch nibble {
		case 1:
			b, err := c.ReadByte()
			if err != nil {
				return Value{}, err
			}

			return NewFloat8(yadfloat.DecodeFloat8(b)), nil
		case 2:
			bits, err := c.ReadUint16()
			if err != nil {
				return Value{}, err
			}

			return NewFloat16(yadfloat.DecodeFloat16(bits)), nil
		case 3:
			v, err := c.ReadFloat32()
			return NewFloat32(v), err
		case 4:
			v, err := c.ReadFloat64()
			return NewFloat64(v), err
		}
	}

	return Value{}, errs.ErrMalformedValue
}

// DecodeName reads a length-prefixed, UTF-8-validated string body
// tagged with nibble. It is exported for the record package, which
// decodes row names and key names with the same body
// codec as a String value but under their own tag families (spec
// §4.1: row-name and key-name "share the string codec but are
// context-gated").
func DecodeName(c *wire.Cursor, nibble byte) (string, error) {
	return decodeString(c, nibble)
}

// decodeString reads a length-prefixed, UTF-8-validated string body
// tagged with nibble. It is shared by value strings, row names, and key
// names — each caller has already consumed the tag byte and knows its
// family is a name/string family.
func decodeString(c *wire.Cursor, nibble byte) (string, error) {
	n, err := c.ReadLength(nibble)
	if err != nil {
		return "", err
	}

	b, err := c.ReadN(int(n))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", errs.ErrInvalidUTF8
	}

	return string(b), nil
}

func decodeArray(c *wire.Cursor, nibble byte) (Value, error) {
	n, err := c.ReadLength(nibble)
	if err != nil {
		return Value{}, err
	}

	// n is attacker-controlled (up to 2^64-1 via an 8-byte length
	// prefix); cap the preallocation hint to what the remaining input
	// could possibly supply, one byte per element at minimum, so a
	// malicious length can't force an oversized allocation or a
	// makeslice panic before a single element is actually read.
	hint := n
	if remaining := uint64(c.Remaining()); hint > remaining {
		hint = remaining
	}

	elems := make([]Value, 0, hint)
	for i := uint64(0); i < n; i++ {
		el, err := Decode(c)
		if err != nil {
			return Value{}, err
		}

		elems = append(elems, el)
	}

	return NewArray(elems), nil
}
