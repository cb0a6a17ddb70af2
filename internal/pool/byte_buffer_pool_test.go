package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferGrowthAndWrite(t *testing.T) {
	require := require.New(t)

	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("hello"))
	require.Equal([]byte("hello"), bb.Bytes())
	require.Equal(5, bb.Len())

	n, err := bb.Write([]byte(" world"))
	require.NoError(err)
	require.Equal(6, n)
	require.Equal("hello world", string(bb.Bytes()))

	bb.Reset()
	require.Equal(0, bb.Len())
	require.Positive(bb.Cap())
}

func TestByteBufferExtendOrGrow(t *testing.T) {
	require := require.New(t)

	bb := NewByteBuffer(2)
	bb.ExtendOrGrow(10)
	require.Equal(10, bb.Len())
	require.GreaterOrEqual(bb.Cap(), 10)
}

func TestByteBufferSetLengthAndSlice(t *testing.T) {
	require := require.New(t)

	bb := NewByteBuffer(16)
	bb.MustWrite(make([]byte, 16))
	bb.SetLength(8)
	require.Equal(8, bb.Len())

	s := bb.Slice(0, 4)
	require.Len(s, 4)

	require.Panics(func() { bb.Slice(0, 100) })
	require.Panics(func() { bb.SetLength(-1) })
}

func TestByteBufferPoolDiscardsOversized(t *testing.T) {
	require := require.New(t)

	p := NewByteBufferPool(4, 16)

	bb := p.Get()
	bb.MustWrite(make([]byte, 32))
	p.Put(bb)

	fresh := p.Get()
	require.Equal(0, fresh.Len())
}

func TestRowAndBlockBufferHelpers(t *testing.T) {
	require := require.New(t)

	row := GetRowBuffer()
	require.NotNil(row)
	row.MustWrite([]byte("row"))
	PutRowBuffer(row)

	block := GetBlockBuffer()
	require.NotNil(block)
	block.MustWrite([]byte("block"))
	PutBlockBuffer(block)
}
