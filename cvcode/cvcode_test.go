package cvcode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b000io/b000/format"
)

func TestParseAccessionKnownPrefixes(t *testing.T) {
	require := require.New(t)

	ref, tail := ParseAccession("MS:1000514")
	require.Equal(format.CvRefMS, ref)
	require.Equal(uint32(1000514), tail)

	ref, tail = ParseAccession("UO:0000012")
	require.Equal(format.CvRefUO, ref)
	require.Equal(uint32(12), tail)

	ref, tail = ParseAccession("PEFF:0001001")
	require.Equal(format.CvRefPEFF, ref)
	require.Equal(uint32(1001), tail)
}

func TestParseAccessionNCITDigitExtraction(t *testing.T) {
	require := require.New(t)

	ref, tail := ParseAccession("NCIT:C00042")
	require.Equal(format.CvRefNCIT, ref)
	require.Equal(uint32(42), tail)
}

func TestParseAccessionUnknownPrefixIsOther(t *testing.T) {
	require := require.New(t)

	ref, tail := ParseAccession("XYZ:123")
	require.Equal(format.CvRefOther, ref)
	require.Equal(uint32(123), tail)
}

func TestParseAccessionNoDigitsYieldsZero(t *testing.T) {
	require := require.New(t)

	_, tail := ParseAccession("MS:")
	require.Equal(uint32(0), tail)

	_, tail = ParseAccession("")
	require.Equal(uint32(0), tail)
}

func TestFormatAccessionRoundTrip(t *testing.T) {
	require := require.New(t)

	require.Equal("MS:1000514", FormatAccession(format.CvRefMS, 1000514, ""))
	require.Equal("NCIT:C00042", FormatAccession(format.CvRefNCIT, 42, ""))
	require.Equal("ATTR:0000007", FormatAccession(format.CvRefAttr, 7, ""))
	require.Equal("", FormatAccession(format.CvRefMS, 0, ""))
}

func TestFormatAccessionTailZeroUsesFallback(t *testing.T) {
	require := require.New(t)

	ref, tail := ParseAccession("not-an-accession")
	require.Equal(uint32(0), tail)
	require.Equal("not-an-accession", FormatAccession(ref, tail, "not-an-accession"))
}

func TestPrefixRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, ref := range []format.CvRef{format.CvRefMS, format.CvRefUO, format.CvRefNCIT, format.CvRefPEFF, format.CvRefAttr} {
		p := Prefix(ref)
		require.NotEmpty(p)
		require.Equal(ref, FromPrefix(p))
	}

	require.Equal(format.CvRefOther, FromPrefix("SOMETHING_ELSE"))
}
