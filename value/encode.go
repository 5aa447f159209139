package value

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/yad/errs"
	"github.com/arloliu/yad/tag"
	"github.com/arloliu/yad/wire"
	"github.com/arloliu/yad/yadfloat"
)

// Encode appends v's wire representation to e, per spec §4.4's encode
// rule: emit the tag matching v's declared variant and width, then the
// payload. Strings and arrays always use the minimal length-prefix
// width sufficient for their length (spec §8, property 4).
func (v Value) Encode(e *wire.Encoder) error {
	switch v.kind {
	case KindUint8:
		e.WriteByte(tag.Make(tag.FamilyUint, tag.NibbleForByteWidth(1)))
		e.WriteUint8(uint8(v.num))
	case KindUint16:
		e.WriteByte(tag.Make(tag.FamilyUint, tag.NibbleForByteWidth(2)))
		e.WriteUint16(uint16(v.num))
	case KindUint32:
		e.WriteByte(tag.Make(tag.FamilyUint, tag.NibbleForByteWidth(4)))
		e.WriteUint32(uint32(v.num))
	case KindUint64:
		e.WriteByte(tag.Make(tag.FamilyUint, tag.NibbleForByteWidth(8)))
		e.WriteUint64(v.num)

	case KindInt8:
		e.WriteByte(tag.Make(tag.FamilyInt, tag.NibbleForByteWidth(1)))
		e.WriteUint8(uint8(v.num))
	case KindInt16:
		e.WriteByte(tag.Make(tag.FamilyInt, tag.NibbleForByteWidth(2)))
		e.WriteUint16(uint16(v.num))
	case KindInt32:
		e.WriteByte(tag.Make(tag.FamilyInt, tag.NibbleForByteWidth(4)))
		e.WriteUint32(uint32(v.num))
	case KindInt64:
		e.WriteByte(tag.Make(tag.FamilyInt, tag.NibbleForByteWidth(8)))
		e.WriteUint64(v.num)

	case KindFloat8:
		b, err := yadfloat.EncodeFloat8(v.f32)
		if err != nil {
			return fmt.Errorf("%w: Float8", err)
		}
		e.WriteByte(tag.Make(tag.FamilyFloat, tag.NibbleForByteWidth(1)))
		e.WriteByte(b)
	case KindFloat16:
		bits, err := yadfloat.EncodeFloat16(v.f32)
		if err != nil {
			return fmt.Errorf("%w: Float16", err)
		}
		e.WriteByte(tag.Make(tag.FamilyFloat, tag.NibbleForByteWidth(2)))
		e.WriteUint16(bits)
	case KindFloat32:
		e.WriteByte(tag.Make(tag.FamilyFloat, tag.NibbleForByteWidth(4)))
		e.WriteFloat32(v.f32)
	case KindFloat64:
		e.WriteByte(tag.Make(tag.FamilyFloat, tag.NibbleForByteWidth(8)))
		e.WriteFloat64(v.f64)

	case KindString:
		return EncodeString(e, tag.FamilyString, v.str)

	case KindArray:
		return v.encodeArray(e)

	case KindBool:
		if v.num != 0 {
			return e.WriteByte(tag.BoolTrue)
		}

		return e.WriteByte(tag.BoolFalse)
	}

	return nil
}

// EncodeString writes a length-prefixed UTF-8 string tagged with family.
// It is shared by value strings (family 0x4), row names (0x6), and key
// names (0x7) — spec §4.1 notes these three share the string codec and
// differ only by context.
func EncodeString(e *wire.Encoder, family tag.Family, s string) error {
	if !utf8.ValidString(s) {
		return errs.ErrInvalidUTF8
	}

	n := uint64(len(s))
	nibble := wire.MinimalNibble(n)
	e.WriteByte(tag.Make(family, nibble))
	e.WriteLength(n, nibble)
	e.WriteBytes([]byte(s))

	return nil
}

func (v Value) encodeArray(e *wire.Encoder) error {
	n := uint64(len(v.arr))
	nibble := wire.MinimalNibble(n)
	e.WriteByte(tag.Make(tag.FamilyArray, nibble))
	e.WriteLength(n, nibble)

	for _, el := range v.arr {
		if err := el.Encode(e); err != nil {
			return err
		}
	}

	return nil
}
