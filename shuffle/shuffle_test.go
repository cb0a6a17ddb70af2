package shuffle

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvolution(t *testing.T) {
	require := require.New(t)

	for _, elemSize := range []int{1, 2, 3, 4, 5, 8, 16} {
		count := 37
		src := make([]byte, count*elemSize)
		for i := range src {
			src[i] = byte(i * 7)
		}

		shuffled := make([]byte, len(src))
		Shuffle(shuffled, src, elemSize)

		back := make([]byte, len(src))
		Unshuffle(back, shuffled, elemSize)

		require.Equal(src, back, "elemSize=%d", elemSize)
	}
}

func TestShuffle4GroupsLikeBytes(t *testing.T) {
	require := require.New(t)

	vals := []float32{1.5, -2.25, 100000, 0}
	src := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(src[i*4:], math.Float32bits(v))
	}

	dst := make([]byte, len(src))
	Shuffle(dst, src, 4)

	n := len(vals)
	for b := 0; b < 4; b++ {
		for e := 0; e < n; e++ {
			require.Equal(src[e*4+b], dst[b*n+e])
		}
	}
}

func TestShuffle8MatchesGeneric(t *testing.T) {
	require := require.New(t)

	src := make([]byte, 8*13)
	for i := range src {
		src[i] = byte(i * 3)
	}

	fast := make([]byte, len(src))
	Shuffle(fast, src, 8)

	generic := make([]byte, len(src))
	shuffleGeneric(generic, src, 8)

	require.Equal(generic, fast)
}

func TestPanicsOnBadLength(t *testing.T) {
	require := require.New(t)

	require.Panics(func() {
		Shuffle(make([]byte, 5), make([]byte, 5), 4)
	})
}
