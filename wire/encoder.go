// Package wire implements the fixed-width scalar codecs and the
// length-prefix codec that every higher layer (value, record, container)
// builds on. The wire format is fixed big-endian for every multi-byte
// scalar, per spec §4.2 and §9 — there is no negotiation knob here.
package wire

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/yad/internal/pool"
)

// Encoder accumulates an encoded byte stream in a pooled, growable
// buffer. It is not safe for concurrent use; callers encode one entity
// (a Value, Key, Row, or container) per Encoder and copy the result out
// of Bytes before calling Release.
type Encoder struct {
	buf *pool.ByteBuffer
}

// NewEncoder returns an Encoder backed by a buffer drawn from the shared
// pool.
func NewEncoder() *Encoder {
	return &Encoder{buf: pool.Get()}
}

// Bytes returns the bytes written so far. The returned slice aliases the
// Encoder's internal buffer and is only valid until the next write or
// until Release is called.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Release returns the Encoder's buffer to the pool. Callers that want to
// keep the encoded bytes must copy them out (e.g. via append([]byte(nil),
// e.Bytes()...)) before calling Release.
func (e *Encoder) Release() {
	pool.Put(e.buf)
	e.buf = nil
}

// WriteByte appends a single byte, satisfying io.ByteWriter.
func (e *Encoder) WriteByte(b byte) error {
	e.buf.Grow(1)
	e.buf.MustWrite([]byte{b})

	return nil
}

// WriteBytes appends raw bytes verbatim (used for UTF-8 string payloads).
func (e *Encoder) WriteBytes(b []byte) {
	e.buf.Grow(len(b))
	e.buf.MustWrite(b)
}

// WriteUint8 appends a single unsigned byte.
func (e *Encoder) WriteUint8(v uint8) {
	e.buf.Grow(1)
	e.buf.MustWrite([]byte{v})
}

// WriteUint16 appends v as 2 big-endian bytes.
func (e *Encoder) WriteUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	e.buf.Grow(2)
	e.buf.MustWrite(b[:])
}

// WriteUint32 appends v as 4 big-endian bytes.
func (e *Encoder) WriteUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.buf.Grow(4)
	e.buf.MustWrite(b[:])
}

// WriteUint64 appends v as 8 big-endian bytes.
func (e *Encoder) WriteUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.buf.Grow(8)
	e.buf.MustWrite(b[:])
}

// WriteFloat32 appends v as its IEEE-754 binary32 big-endian
// representation.
func (e *Encoder) WriteFloat32(v float32) {
	e.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 appends v as its IEEE-754 binary64 big-endian
// representation.
func (e *Encoder) WriteFloat64(v float64) {
	e.WriteUint64(math.Float64bits(v))
}
