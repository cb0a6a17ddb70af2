package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidTrailer(t *testing.T) {
	require := require.New(t)

	require.True(ValidTrailer(Trailer[:]))
	require.True(ValidTrailer(append([]byte{0xDE, 0xAD}, Trailer[:]...)))
	require.False(ValidTrailer([]byte("short")))

	corrupt := Trailer
	corrupt[0] = 'X'
	require.False(ValidTrailer(corrupt[:]))
}
