package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b000io/b000/format"
	"github.com/b000io/b000/section"
)

func TestClassifyValue(t *testing.T) {
	require := require.New(t)

	kind, num, text := ClassifyValue("")
	require.Equal(format.ValueEmpty, kind)
	require.Empty(text)

	kind, num, _ = ClassifyValue("3.14")
	require.Equal(format.ValueNumber, kind)
	require.InDelta(3.14, num, 1e-9)

	kind, _, text = ClassifyValue("profile spectrum")
	require.Equal(format.ValueText, kind)
	require.Equal("profile spectrum", text)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	require := require.New(t)

	rows := []Row{
		{OwnerID: 1, ParentID: 0, Tag: format.TagSpectrum, CvRef: format.CvRefAttr, AccessionTail: 1, Kind: format.ValueText, Text: "scan=1"},
		{OwnerID: 1, ParentID: 0, Tag: format.TagSpectrum, CvRef: format.CvRefMS, AccessionTail: 1000511, Kind: format.ValueNumber, Number: 1},
		{OwnerID: 2, ParentID: 1, Tag: format.TagBinaryDataArray, CvRef: format.CvRefMS, AccessionTail: 1000514, UnitCvRef: format.CvRefMS, UnitAccessionTail: 1000040, Kind: format.ValueEmpty},
		{OwnerID: 3, ParentID: 0, Tag: format.TagSpectrum, CvRef: format.CvRefMS, AccessionTail: 1000127, Kind: format.ValueText, Text: ""},
	}

	itemRowCounts := []int{3, 1}

	packed, counts := Pack(itemRowCounts, rows)
	require.Equal(uint32(2), counts.ItemCount)
	require.Equal(uint32(4), counts.TotalRows)
	require.Equal(uint32(1), counts.NumCount)
	require.Equal(uint32(2), counts.StrCount)

	items, err := Unpack(packed, counts)
	require.NoError(err)
	require.Len(items, 2)
	require.Len(items[0], 3)
	require.Len(items[1], 1)

	require.Equal(rows[0], items[0][0])
	require.Equal(rows[1], items[0][1])
	require.Equal(rows[2], items[0][2])
	require.Equal(rows[3], items[1][0])
}

func TestUnpackRejectsBadCI(t *testing.T) {
	require := require.New(t)

	rows := []Row{{OwnerID: 1, Tag: format.TagSpectrum, Kind: format.ValueEmpty}}
	packed, counts := Pack([]int{1}, rows)

	counts.TotalRows = 99
	_, err := Unpack(packed, counts)
	require.Error(err)
}

func TestUnpackRejectsShortBuffer(t *testing.T) {
	require := require.New(t)

	_, err := Unpack(make([]byte, 2), section.SectionCounts{ItemCount: 5, TotalRows: 5})
	require.Error(err)
}
