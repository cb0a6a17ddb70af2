package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZstdRoundTrip(t *testing.T) {
	require := require.New(t)

	c := NewZstdCompressor()
	data := []byte("the quick brown fox jumps over the lazy dog, repeated: " +
		"the quick brown fox jumps over the lazy dog")

	compressed, err := c.Compress(data)
	require.NoError(err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(err)
	require.Equal(data, decompressed)
}

func TestZstdPaddingTolerance(t *testing.T) {
	require := require.New(t)

	c := NewZstdCompressor()
	data := []byte("padding tolerance payload, compressed then zero-padded")

	compressed, err := c.Compress(data)
	require.NoError(err)

	for pad := 0; pad <= 7; pad++ {
		padded := append(append([]byte{}, compressed...), make([]byte, pad)...)
		out, err := c.Decompress(padded)
		require.NoError(err, "pad=%d", pad)
		require.Equal(data, out, "pad=%d", pad)
	}
}

func TestZstdDecompressEmpty(t *testing.T) {
	require := require.New(t)

	c := NewZstdCompressor()
	out, err := c.Decompress(nil)
	require.NoError(err)
	require.Nil(out)
}

func TestNoOpRoundTrip(t *testing.T) {
	require := require.New(t)

	c := NewNoOpCompressor()
	data := []byte{1, 2, 3, 4}
	compressed, err := c.Compress(data)
	require.NoError(err)
	require.Equal(data, compressed)

	out, err := c.Decompress(compressed)
	require.NoError(err)
	require.Equal(data, out)
}

func TestCreateCodec(t *testing.T) {
	require := require.New(t)

	_, err := CreateCodec(0)
	require.NoError(err)
	_, err = CreateCodec(1)
	require.NoError(err)
	_, err = CreateCodec(9)
	require.Error(err)
}
