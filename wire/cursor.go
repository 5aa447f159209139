package wire

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/yad/errs"
)

// Cursor reads sequentially from an in-memory byte slice, tracking an
// offset. It never retains a pointer into the slice past the lifetime of
// the caller-supplied data, and every read is bounds-checked so that
// truncated input surfaces as errs.ErrUnexpectedEOF rather than a panic
// (spec §8, property 6: structural rejection, never silent success or a
// crash).
type Cursor struct {
	data []byte
	off  int
}

// NewCursor wraps data for sequential reading starting at offset 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.off
}

// Done reports whether the cursor has consumed the entire input.
func (c *Cursor) Done() bool {
	return c.off >= len(c.data)
}

// PeekByte returns the next byte without advancing the cursor.
func (c *Cursor) PeekByte() (byte, error) {
	if c.Remaining() < 1 {
		return 0, errs.ErrUnexpectedEOF
	}

	return c.data[c.off], nil
}

// ReadByte reads and consumes a single byte, satisfying io.ByteReader.
func (c *Cursor) ReadByte() (byte, error) {
	if c.Remaining() < 1 {
		return 0, errs.ErrUnexpectedEOF
	}

	b := c.data[c.off]
	c.off++

	return b, nil
}

// ReadN reads and consumes the next n bytes. The returned slice aliases
// the Cursor's backing array; callers that decode it into an owned value
// (a string, a nested Value tree) must copy before returning, per spec §5
// ("no interior pointers into the input buffer are retained after decode
// returns").
func (c *Cursor) ReadN(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, errs.ErrUnexpectedEOF
	}

	b := c.data[c.off : c.off+n]
	c.off += n

	return b, nil
}

// ReadUint16 reads 2 big-endian bytes.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.ReadN(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

// ReadUint32 reads 4 big-endian bytes.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.ReadN(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b), nil
}

// ReadUint64 reads 8 big-endian bytes.
func (c *Cursor) ReadUint64() (uint64, error) {
	b, err := c.ReadN(8)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(b), nil
}

// ReadFloat32 reads 4 big-endian bytes as an IEEE-754 binary32 value.
func (c *Cursor) ReadFloat32() (float32, error) {
	bits, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

// ReadFloat64 reads 8 big-endian bytes as an IEEE-754 binary64 value.
func (c *Cursor) ReadFloat64() (float64, error) {
	bits, err := c.ReadUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}
