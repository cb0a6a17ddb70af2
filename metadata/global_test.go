package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b000io/b000/format"
	"github.com/b000io/b000/section"
)

func TestGlobalCountsRoundTrip(t *testing.T) {
	require := require.New(t)

	c := GlobalCounts{
		FileDescriptionCount:         1,
		RunCount:                     1,
		ReferenceableParamGroupCount: 2,
		SampleCount:                  1,
		InstrumentConfigurationCount: 3,
		SoftwareCount:                2,
		DataProcessingCount:          1,
		ScanSettingsCount:            1,
		CvCount:                      4,
	}
	b := c.Bytes()
	require.Len(b, GlobalCountsSize)

	got, err := ParseGlobalCounts(b)
	require.NoError(err)
	require.Equal(c, got)
}

func TestPackUnpackGlobalRoundTrip(t *testing.T) {
	require := require.New(t)

	counts := GlobalCounts{CvCount: 1, FileDescriptionCount: 1, RunCount: 1}
	rows := []Row{
		{OwnerID: 1, ParentID: 0, Tag: format.TagCv, CvRef: format.CvRefAttr, AccessionTail: 1, Kind: format.ValueText, Text: "MS"},
		{OwnerID: 2, ParentID: 0, Tag: format.TagFileContent, CvRef: format.CvRefMS, AccessionTail: 1000579, Kind: format.ValueEmpty},
		{OwnerID: 3, ParentID: 0, Tag: format.TagRun, CvRef: format.CvRefAttr, AccessionTail: 1, Kind: format.ValueText, Text: "run=1"},
	}
	itemRowCounts := []int{1, 1, 1}

	packed, sectionCounts := PackGlobal(counts, itemRowCounts, rows)
	require.Equal(uint32(3), sectionCounts.ItemCount)

	gotCounts, items, err := UnpackGlobal(packed, sectionCounts)
	require.NoError(err)
	require.Equal(counts, gotCounts)
	require.Len(items, 3)
	require.Equal(rows[0], items[0][0])
	require.Equal(rows[1], items[1][0])
	require.Equal(rows[2], items[2][0])
}

func TestUnpackGlobalRejectsShortBuffer(t *testing.T) {
	require := require.New(t)

	_, _, err := UnpackGlobal(make([]byte, 4), section.SectionCounts{ItemCount: 5, TotalRows: 5})
	require.Error(err)
}
