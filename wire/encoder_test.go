package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeScalarsBigEndian(t *testing.T) {
	e := NewEncoder()
	defer e.Release()

	e.WriteUint8(0xAB)
	e.WriteUint16(0x1234)
	e.WriteUint32(0x11223344)
	e.WriteUint64(0x1122334455667788)
	e.WriteFloat32(3.5)
	e.WriteFloat64(-2.25)

	c := NewCursor(e.Bytes())

	b, err := c.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0xAB), b)

	u16, err := c.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), u16)

	u32, err := c.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x11223344), u32)

	u64, err := c.ReadUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x1122334455667788), u64)

	f32, err := c.ReadFloat32()
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f32)

	f64, err := c.ReadFloat64()
	require.NoError(t, err)
	require.Equal(t, float64(-2.25), f64)

	require.True(t, c.Done())
}

func TestWireIsBigEndian(t *testing.T) {
	e := NewEncoder()
	defer e.Release()

	e.WriteUint16(0x0102)
	require.Equal(t, []byte{0x01, 0x02}, e.Bytes())
}

func TestCursorUnexpectedEOF(t *testing.T) {
	c := NewCursor([]byte{0x01})

	_, err := c.ReadUint16()
	require.Error(t, err)
}

func TestCursorPeekDoesNotAdvance(t *testing.T) {
	c := NewCursor([]byte{0x42, 0x43})

	b, err := c.PeekByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x42), b)
	require.Equal(t, 0, c.Offset())

	b, err = c.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x42), b)
	require.Equal(t, 1, c.Offset())
}
