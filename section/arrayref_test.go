package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b000io/b000/format"
)

func TestItemDirEntryRoundTrip(t *testing.T) {
	require := require.New(t)

	e := ItemDirEntry{A1Start: 10, A1Count: 3}
	b := e.Bytes()
	require.Len(b, ItemDirEntrySize)

	got, err := ParseItemDirEntry(b)
	require.NoError(err)
	require.Equal(e, got)
}

func TestArrayRefEntryRoundTrip(t *testing.T) {
	require := require.New(t)

	e := ArrayRefEntry{
		ElementOffset:  4096,
		LengthElements: 2048,
		BlockID:        7,
		ArrayKind:      format.ArrayKindMZ,
		Dtype:          format.DtypeF64,
	}
	b := e.Bytes()
	require.Len(b, ArrayRefEntrySize)
	require.Equal(make([]byte, 7), b[25:32])

	got, err := ParseArrayRefEntry(b)
	require.NoError(err)
	require.Equal(e, got)
}

func TestArrayRefEntryShortBuffer(t *testing.T) {
	require := require.New(t)

	_, err := ParseItemDirEntry(make([]byte, 4))
	require.ErrorIs(err, ErrShortBuffer)

	_, err = ParseArrayRefEntry(make([]byte, 4))
	require.ErrorIs(err, ErrShortBuffer)
}

func TestItemDirEntriesRoundTrip(t *testing.T) {
	require := require.New(t)

	entries := []ItemDirEntry{{A1Start: 0, A1Count: 2}, {A1Start: 2, A1Count: 1}}
	b := WriteItemDirEntries(entries)
	require.Len(b, 2*ItemDirEntrySize)

	got, err := ParseItemDirEntries(b, 2)
	require.NoError(err)
	require.Equal(entries, got)

	_, err = ParseItemDirEntries(b, 3)
	require.ErrorIs(err, ErrShortBuffer)
}

func TestArrayRefEntriesRoundTrip(t *testing.T) {
	require := require.New(t)

	entries := []ArrayRefEntry{
		{ElementOffset: 0, LengthElements: 2, BlockID: 0, ArrayKind: format.ArrayKindMZ, Dtype: format.DtypeF64},
		{ElementOffset: 0, LengthElements: 2, BlockID: 1, ArrayKind: format.ArrayKindIntensity, Dtype: format.DtypeF32},
	}
	b := WriteArrayRefEntries(entries)
	require.Len(b, 2*ArrayRefEntrySize)

	got, err := ParseArrayRefEntries(b, 2)
	require.NoError(err)
	require.Equal(entries, got)
}
