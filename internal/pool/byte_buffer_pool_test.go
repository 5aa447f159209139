package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, len(bb.B))
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBufferMustWriteAndBytes(t *testing.T) {
	bb := NewByteBuffer(DefaultBufferSize)
	bb.MustWrite([]byte("hello"))

	assert.Equal(t, []byte("hello"), bb.Bytes())
	assert.Equal(t, 5, bb.Len())
}

func TestByteBufferReset(t *testing.T) {
	bb := NewByteBuffer(DefaultBufferSize)
	bb.MustWrite([]byte("some data"))
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, cap(bb.B))
}

func TestByteBufferGrowDoesNotReallocateWhenCapacityAvailable(t *testing.T) {
	bb := NewByteBuffer(16)
	before := &bb.B[:1][0]

	bb.Grow(8)

	assert.Same(t, before, &bb.B[:1][0])
}

func TestByteBufferGrowReallocatesWhenNeeded(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("ab"))

	bb.Grow(DefaultBufferSize * 2)

	assert.GreaterOrEqual(t, cap(bb.B), 2+DefaultBufferSize*2)
	assert.Equal(t, []byte("ab"), bb.Bytes())
}

func TestByteBufferPoolGetPut(t *testing.T) {
	p := NewByteBufferPool(DefaultBufferSize, MaxBufferThreshold)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("x"))

	p.Put(bb)

	bb2 := p.Get()
	assert.Equal(t, 0, bb2.Len(), "returned buffer should be reset")
}

func TestByteBufferPoolPutNilIsNoop(t *testing.T) {
	p := NewByteBufferPool(DefaultBufferSize, MaxBufferThreshold)
	p.Put(nil)
}

func TestDefaultPoolRoundTrip(t *testing.T) {
	bb := Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("payload"))
	Put(bb)
}
