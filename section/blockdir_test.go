package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockDirEntryRoundTrip(t *testing.T) {
	require := require.New(t)

	e := BlockDirEntry{PayloadOffset: 512, PayloadSize: 65536, UncompressedLenBytes: 1 << 20}
	b := e.Bytes()
	require.Len(b, BlockDirEntrySize)
	require.Equal(make([]byte, 8), b[24:32])

	got, err := ParseBlockDirEntry(b)
	require.NoError(err)
	require.Equal(e, got)
}

func TestBlockDirEntryShortBuffer(t *testing.T) {
	require := require.New(t)

	_, err := ParseBlockDirEntry(make([]byte, 4))
	require.ErrorIs(err, ErrShortBuffer)
}
