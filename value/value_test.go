package value

import (
	"math"
	"testing"

	"github.com/arloliu/yad/wire"
	"github.com/stretchr/testify/require"
)

func encodeDecode(t *testing.T, v Value) Value {
	e := wire.NewEncoder()
	defer e.Release()

	require.NoError(t, v.Encode(e))

	c := wire.NewCursor(e.Bytes())
	got, err := Decode(c)
	require.NoError(t, err)
	require.True(t, c.Done())

	return got
}

func TestScalarRoundTrip(t *testing.T) {
	tests := []Value{
		NewUint8(0),
		NewUint8(255),
		NewUint16(65535),
		NewUint32(1 << 31),
		NewUint64(1 << 63),
		NewInt8(-1),
		NewInt8(127),
		NewInt16(-32768),
		NewInt32(-1),
		NewInt64(math.MinInt64),
		NewFloat32(3.5),
		NewFloat64(-2.25),
		NewBool(true),
		NewBool(false),
	}

	for _, v := range tests {
		t.Run(v.Kind().String(), func(t *testing.T) {
			got := encodeDecode(t, v)
			require.Equal(t, v, got)
		})
	}
}

func TestFloat8Float16RoundTrip(t *testing.T) {
	got := encodeDecode(t, NewFloat8(2))
	f, err := got.AsFloat8()
	require.NoError(t, err)
	require.Equal(t, float32(2), f)

	got = encodeDecode(t, NewFloat16(100.25))
	f, err = got.AsFloat16()
	require.NoError(t, err)
	require.Equal(t, float32(100.25), f)
}

func TestFloat8OutOfRangeFailsEncode(t *testing.T) {
	e := wire.NewEncoder()
	defer e.Release()

	err := NewFloat8(1000).Encode(e)
	require.Error(t, err)
}

func TestStringRoundTrip(t *testing.T) {
	tests := []string{"", "hello", "unicode: éè", string(make([]byte, 300))}

	for _, s := range tests {
		got := encodeDecode(t, NewString(s))
		gs, err := got.AsString()
		require.NoError(t, err)
		require.Equal(t, s, gs)
	}
}

func TestStringInvalidUTF8FailsEncode(t *testing.T) {
	e := wire.NewEncoder()
	defer e.Release()

	bad := NewString(string([]byte{0xff, 0xfe}))
	err := bad.Encode(e)
	require.Error(t, err)
}

func TestEmptyArrayRoundTrip(t *testing.T) {
	got := encodeDecode(t, NewArray(nil))
	arr, err := got.AsArray()
	require.NoError(t, err)
	require.Empty(t, arr)
}

func TestLargeArrayPromotesLengthWidth(t *testing.T) {
	elems := make([]Value, 256)
	for i := range elems {
		elems[i] = NewUint8(uint8(i))
	}

	v := NewArray(elems)

	e := wire.NewEncoder()
	defer e.Release()
	require.NoError(t, v.Encode(e))

	// Tag byte (0x52) + 2-byte length prefix for 256 elements.
	require.Equal(t, byte(0x52), e.Bytes()[0])

	c := wire.NewCursor(e.Bytes())
	got, err := Decode(c)
	require.NoError(t, err)

	gotArr, err := got.AsArray()
	require.NoError(t, err)
	require.Len(t, gotArr, 256)
}

func TestNestedArrayRoundTrip(t *testing.T) {
	inner := NewArray([]Value{NewUint8(1), NewUint8(2)})
	middle := NewArray([]Value{inner, NewString("x")})
	outer := NewArray([]Value{middle, NewBool(true)})

	got := encodeDecode(t, outer)
	require.Equal(t, outer, got)
}

func TestAccessorsMismatchedKind(t *testing.T) {
	v := NewUint8(5)

	_, err := v.AsString()
	require.Error(t, err)

	_, err = v.AsBool()
	require.Error(t, err)
}

func TestIsNumeric(t *testing.T) {
	require.True(t, NewUint8(0).IsNumeric())
	require.True(t, NewFloat64(0).IsNumeric())
	require.False(t, NewString("x").IsNumeric())
	require.False(t, NewBool(false).IsNumeric())
	require.False(t, NewArray(nil).IsNumeric())
}

func TestDecodeUnrecognizedFamilyFails(t *testing.T) {
	// 0xF1 is the row-start sentinel, never a value tag.
	c := wire.NewCursor([]byte{0xF1})
	_, err := Decode(c)
	require.Error(t, err)
}
