// Package value implements the Value algebraic type: the YAD codec's
// fundamental datum, carrying numbers at four widths (unsigned, signed,
// and float), UTF-8 strings, heterogeneous arrays, and booleans, plus
// the encoder/decoder that translates it to and from the tagged byte
// stream described in spec §4.4.
package value

// Value is a tagged datum. Every variant carries the exact width it was
// constructed with, so that re-encoding a decoded Value reproduces the
// original tag byte-for-byte (spec §3: "no narrow on encode surprises").
//
// Value is an immutable value type; the zero Value equals NewUint8(0).
// A decode path that fails returns a placeholder Value alongside the
// error, which callers should ignore.
type Value struct {
	kind Kind
	num  uint64 // two's-complement payload for Uint8..Int64 and Bool (0/1)
	f32  float32
	f64  float64
	str  string
	arr  []Value
}

// Kind reports the concrete variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumeric reports whether v holds one of the twelve numeric arms
// (unsigned, signed, or float, at any width).
func (v Value) IsNumeric() bool {
	return v.kind <= KindFloat64
}

func NewUint8(n uint8) Value   { return Value{kind: KindUint8, num: uint64(n)} }
func NewUint16(n uint16) Value { return Value{kind: KindUint16, num: uint64(n)} }
func NewUint32(n uint32) Value { return Value{kind: KindUint32, num: uint64(n)} }
func NewUint64(n uint64) Value { return Value{kind: KindUint64, num: n} }

func NewInt8(n int8) Value   { return Value{kind: KindInt8, num: uint64(uint8(n))} }
func NewInt16(n int16) Value { return Value{kind: KindInt16, num: uint64(uint16(n))} }
func NewInt32(n int32) Value { return Value{kind: KindInt32, num: uint64(uint32(n))} }
func NewInt64(n int64) Value { return Value{kind: KindInt64, num: uint64(n)} }

// NewFloat8 and NewFloat16 both hold their payload as a float32; range
// validation against the narrower format only happens at Encode time
// (spec §4.2: "inputs outside this range ... fail with a domain error at
// encode"), so construction itself never fails.
func NewFloat8(f float32) Value  { return Value{kind: KindFloat8, f32: f} }
func NewFloat16(f float32) Value { return Value{kind: KindFloat16, f32: f} }
func NewFloat32(f float32) Value { return Value{kind: KindFloat32, f32: f} }
func NewFloat64(f float64) Value { return Value{kind: KindFloat64, f64: f} }

// NewString wraps s as a String Value. UTF-8 validity is checked at
// Encode time, not construction, matching how the other variants defer
// validation to the codec boundary.
func NewString(s string) Value { return Value{kind: KindString, str: s} }

// NewArray wraps elems as an Array Value. elems is not copied; callers
// should not mutate it after handing it to NewArray.
func NewArray(elems []Value) Value { return Value{kind: KindArray, arr: elems} }

// NewBool wraps b as a Bool Value.
func NewBool(b bool) Value {
	if b {
		return Value{kind: KindBool, num: 1}
	}

	return Value{kind: KindBool, num: 0}
}
