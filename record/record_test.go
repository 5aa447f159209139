package record

import (
	"testing"

	"github.com/arloliu/yad/value"
	"github.com/arloliu/yad/wire"
	"github.com/stretchr/testify/require"
)

func TestKeyRoundTrip(t *testing.T) {
	k := NewKey("cores", value.NewUint8(8))

	e := wire.NewEncoder()
	defer e.Release()
	require.NoError(t, k.Encode(e))

	c := wire.NewCursor(e.Bytes())
	tagByte, err := c.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0xF3), tagByte)

	got, err := DecodeKey(c)
	require.NoError(t, err)
	require.Equal(t, k, got)
	require.True(t, c.Done())
}

func TestKeyMissingEndFails(t *testing.T) {
	c := wire.NewCursor([]byte{
		0x71, 1, 'n', // key-name tag (key-name family 0x7, 1-byte length) + "n"
		0x11, 0, // uint8 value tag + payload
		// missing 0xF4
	})
	_, err := DecodeKey(c)
	require.Error(t, err)
}

func TestRowRoundTrip(t *testing.T) {
	r := NewRow("cpu")
	require.NoError(t, r.AddKey(NewKey("usage", value.NewFloat32(42.5))))
	require.NoError(t, r.AddKey(NewKey("cores", value.NewUint8(8))))

	e := wire.NewEncoder()
	defer e.Release()
	require.NoError(t, r.Encode(e))

	c := wire.NewCursor(e.Bytes())
	tagByte, err := c.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0xF1), tagByte)

	got, err := DecodeRow(c)
	require.NoError(t, err)
	require.Equal(t, r.Name, got.Name)
	require.Equal(t, r.Keys(), got.Keys())
	require.True(t, c.Done())
}

func TestRowDuplicateKeyNameFails(t *testing.T) {
	r := NewRow("cpu")
	require.NoError(t, r.AddKey(NewKey("usage", value.NewUint8(1))))

	err := r.AddKey(NewKey("usage", value.NewUint8(2)))
	require.Error(t, err)
}

func TestRowRemoveKeyPreservesOrder(t *testing.T) {
	r := NewRow("cpu")
	require.NoError(t, r.AddKey(NewKey("a", value.NewUint8(1))))
	require.NoError(t, r.AddKey(NewKey("b", value.NewUint8(2))))
	require.NoError(t, r.AddKey(NewKey("c", value.NewUint8(3))))

	require.True(t, r.RemoveKey("b"))
	require.False(t, r.RemoveKey("b"))

	names := make([]string, 0, len(r.Keys()))
	for _, k := range r.Keys() {
		names = append(names, k.Name)
	}
	require.Equal(t, []string{"a", "c"}, names)

	k, ok := r.GetKey("c")
	require.True(t, ok)
	require.Equal(t, "c", k.Name)
}

func TestDecodeRowUnexpectedByteFails(t *testing.T) {
	// Row name tag + name, then a stray byte where 0xF3 or 0xF2 is expected.
	c := wire.NewCursor([]byte{
		0x61, 1, 'r', // row-name tag (0x6) + 1-byte length + "r"
		0x99, // neither key-start nor row-end
	})
	_, err := DecodeRow(c)
	require.Error(t, err)
}
