package cvnames

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b000io/b000/format"
)

func TestStaticKnownTerm(t *testing.T) {
	require := require.New(t)

	tbl := NewStatic()
	name, ok := tbl.Name(format.CvRefMS, 1000514)
	require.True(ok)
	require.Equal("m/z array", name)
}

func TestStaticUnknownTerm(t *testing.T) {
	require := require.New(t)

	tbl := NewStatic()
	_, ok := tbl.Name(format.CvRefMS, 9999999)
	require.False(ok)
}

func TestStaticSetOverride(t *testing.T) {
	require := require.New(t)

	tbl := NewStatic()
	tbl.Set(format.CvRefOther, 42, "custom term")

	name, ok := tbl.Name(format.CvRefOther, 42)
	require.True(ok)
	require.Equal("custom term", name)
}
