package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(8)

	bb.MustWrite([]byte{1, 2, 3})
	bb.MustWrite([]byte{4})

	require.Equal(t, 4, bb.Len())
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())

	capBefore := cap(bb.B)
	bb.Reset()
	require.Zero(t, bb.Len())
	require.Equal(t, capBefore, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		require.Equal(t, 64, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(4)
		bb.MustWrite([]byte{9, 9, 9, 9})
		bb.Grow(10)

		require.Equal(t, 4+BlockBufferDefaultSize, cap(bb.B))
		require.Equal(t, []byte{9, 9, 9, 9}, bb.Bytes())
	})

	t.Run("request larger than growth step", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(BlockBufferDefaultSize * 3)

		require.GreaterOrEqual(t, cap(bb.B), BlockBufferDefaultSize*3)
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := smallBufferGrowthBoundary * 2
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)

		require.Equal(t, size+size/4, cap(bb.B))
	})
}

func TestByteBuffer_Clone(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{5, 6})

	cloned := bb.Clone()
	bb.Reset()
	bb.MustWrite([]byte{7, 8})

	require.Equal(t, []byte{5, 6}, cloned)
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())

	bb.MustWrite([]byte{1, 2, 3})
	p.Put(bb)

	again := p.Get()
	require.Zero(t, again.Len())

	p.Put(nil)
	p.Put(NewByteBuffer(128)) // over threshold, dropped
}

func TestDefaultPools(t *testing.T) {
	block := GetBlockBuffer()
	require.NotNil(t, block)
	require.GreaterOrEqual(t, cap(block.B), 0)
	PutBlockBuffer(block)

	set := GetSetBuffer()
	require.NotNil(t, set)
	PutSetBuffer(set)
}
