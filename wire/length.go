package wire

import "github.com/arloliu/yad/tag"

// MinimalNibble chooses the smallest width nibble (1, 2, 3, or 4,
// designating 8/16/32/64-bit fields respectively) that can hold n without
// truncation, per spec §4.3: "choose the smallest width w ∈ {8, 16, 32,
// 64} satisfying N < 2^w". Every value of n fits in a uint64, so nibble 4
// always succeeds.
func MinimalNibble(n uint64) byte {
	switch {
	case n < 1<<8:
		return 1
	case n < 1<<16:
		return 2
	case n < 1<<32:
		return 3
	default:
		return 4
	}
}

// WriteLength writes n using the byte width designated by nibble.
func (e *Encoder) WriteLength(n uint64, nibble byte) {
	switch nibble {
	case 1:
		e.WriteUint8(uint8(n))
	case 2:
		e.WriteUint16(uint16(n))
	case 3:
		e.WriteUint32(uint32(n))
	default:
		e.WriteUint64(n)
	}
}

// ReadLength reads a length value of the byte width designated by nibble.
func (c *Cursor) ReadLength(nibble byte) (uint64, error) {
	if _, err := tag.WidthBytes(nibble); err != nil {
		return 0, err
	}

	switch nibble {
	case 1:
		b, err := c.ReadByte()
		return uint64(b), err
	case 2:
		v, err := c.ReadUint16()
		return uint64(v), err
	case 3:
		v, err := c.ReadUint32()
		return uint64(v), err
	default:
		return c.ReadUint64()
	}
}
