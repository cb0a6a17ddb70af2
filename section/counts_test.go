package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSectionCountsRoundTrip(t *testing.T) {
	require := require.New(t)

	c := SectionCounts{ItemCount: 100, TotalRows: 9000, NumCount: 8000, StrCount: 1000}
	b := c.Bytes()
	require.Len(b, SectionCountsSize)

	got, err := ParseSectionCounts(b)
	require.NoError(err)
	require.Equal(c, got)
}

func TestSectionCountsShortBuffer(t *testing.T) {
	require := require.New(t)

	_, err := ParseSectionCounts(make([]byte, 2))
	require.ErrorIs(err, ErrShortBuffer)
}
