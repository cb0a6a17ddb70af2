package container

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b000io/b000/format"
)

func f64Bytes(vals ...float64) []byte {
	b := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(v))
	}
	return b
}

func TestBuilderRoundTripUncompressed(t *testing.T) {
	require := require.New(t)

	b := NewBuilder(1<<20, 0, false)

	id1, off1, err := b.AddItem(f64Bytes(1, 2, 3), 8)
	require.NoError(err)

	id2, off2, err := b.AddItem(f64Bytes(4, 5), 8)
	require.NoError(err)

	require.Equal(id1, id2, "same element size shares one open block")
	require.Equal(uint64(0), off1)
	require.Equal(uint64(3), off2)

	packed, blockCount, err := b.Pack()
	require.NoError(err)
	require.Equal(uint32(1), blockCount)

	r, err := NewReader(packed, blockCount, 0, format.ArrayFilterNone)
	require.NoError(err)

	item1, err := r.GetItem(id1, off1, 3, 8)
	require.NoError(err)
	require.Equal(f64Bytes(1, 2, 3), item1)

	item2, err := r.GetItem(id2, off2, 2, 8)
	require.NoError(err)
	require.Equal(f64Bytes(4, 5), item2)
}

func TestBuilderRoundTripCompressedShuffled(t *testing.T) {
	require := require.New(t)

	b := NewBuilder(1<<20, 19, true)

	data := f64Bytes(1.5, -2.25, 3.125, 400000, 5)
	id, off, err := b.AddItem(data, 8)
	require.NoError(err)

	packed, blockCount, err := b.Pack()
	require.NoError(err)

	r, err := NewReader(packed, blockCount, 19, format.ArrayFilterByteShuffle)
	require.NoError(err)

	got, err := r.GetItem(id, off, 5, 8)
	require.NoError(err)
	require.Equal(data, got)
}

func TestBuilderSealsDistinctElementSizesSeparately(t *testing.T) {
	require := require.New(t)

	b := NewBuilder(1<<20, 0, false)

	id4, _, err := b.AddItem(make([]byte, 16), 4)
	require.NoError(err)

	id8, _, err := b.AddItem(make([]byte, 16), 8)
	require.NoError(err)

	require.NotEqual(id4, id8)

	_, blockCount, err := b.Pack()
	require.NoError(err)
	require.Equal(uint32(2), blockCount)
}

func TestBuilderOversizedItemGetsOwnBlock(t *testing.T) {
	require := require.New(t)

	b := NewBuilder(32, 0, false)

	small, _, err := b.AddItem(f64Bytes(1, 2), 8)
	require.NoError(err)

	big := make([]byte, 64)
	bigID, bigOff, err := b.AddItem(big, 8)
	require.NoError(err)

	require.NotEqual(small, bigID)
	require.Equal(uint64(0), bigOff)

	packed, blockCount, err := b.Pack()
	require.NoError(err)
	require.Equal(uint32(2), blockCount)

	r, err := NewReader(packed, blockCount, 0, format.ArrayFilterNone)
	require.NoError(err)

	got, err := r.GetItem(bigID, 0, 8, 8)
	require.NoError(err)
	require.Equal(big, got)
}

func TestReaderElementSizeConflict(t *testing.T) {
	require := require.New(t)

	b := NewBuilder(1<<20, 5, true)
	id, _, err := b.AddItem(f64Bytes(1, 2, 3, 4), 8)
	require.NoError(err)

	packed, blockCount, err := b.Pack()
	require.NoError(err)

	r, err := NewReader(packed, blockCount, 5, format.ArrayFilterByteShuffle)
	require.NoError(err)

	_, err = r.GetItem(id, 0, 4, 8)
	require.NoError(err)

	_, err = r.GetItem(id, 0, 8, 4)
	require.Error(err)
}

func TestReaderBlockIndexOutOfRange(t *testing.T) {
	require := require.New(t)

	b := NewBuilder(1<<20, 0, false)
	_, _, err := b.AddItem(f64Bytes(1), 8)
	require.NoError(err)

	packed, blockCount, err := b.Pack()
	require.NoError(err)

	r, err := NewReader(packed, blockCount, 0, format.ArrayFilterNone)
	require.NoError(err)

	_, err = r.GetItem(99, 0, 1, 8)
	require.Error(err)
}
