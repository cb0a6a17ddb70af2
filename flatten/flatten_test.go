package flatten

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b000io/b000/format"
	"github.com/b000io/b000/mzml"
)

func TestFlattenSpectrumBasicAttributes(t *testing.T) {
	require := require.New(t)

	s := &mzml.Spectrum{
		ID:                 "scan=1",
		Index:              0,
		DefaultArrayLength: 10,
		MSLevel:            1,
		CvParams: []mzml.CvParam{
			{CvRef: "MS", Accession: "MS:1000511", Value: "1"},
		},
	}

	rows := FlattenSpectrum(s, nil, Options{})
	require.NotEmpty(rows)

	var sawID, sawLevel bool
	for _, r := range rows {
		if r.OwnerID != 1 {
			continue
		}
		if r.CvRef == format.CvRefAttr && format.AttrTail(r.AccessionTail) == format.AttrID {
			require.Equal("scan=1", r.Text)
			sawID = true
		}
		if r.CvRef == format.CvRefMS && r.AccessionTail == 1000511 {
			require.Equal(format.ValueNumber, r.Kind)
			require.Equal(float64(1), r.Number)
			sawLevel = true
		}
	}
	require.True(sawID)
	require.True(sawLevel)
}

func TestFlattenSpectrumBinaryDataArrayIsChild(t *testing.T) {
	require := require.New(t)

	s := &mzml.Spectrum{
		ID: "scan=1",
		BinaryDataArrays: []mzml.BinaryDataArray{
			{
				ArrayLength: 5,
				CvParams: []mzml.CvParam{
					{CvRef: "MS", Accession: "MS:1000514"},
					{CvRef: "MS", Accession: "MS:1000523"},
				},
			},
		},
	}

	rows := FlattenSpectrum(s, nil, Options{})

	var found bool
	for _, r := range rows {
		if r.Tag == format.TagBinaryDataArray && r.ParentID == 1 && r.OwnerID != 1 {
			found = true
		}
	}
	require.True(found)
}

func TestFlattenBinaryDataArrayF32CompressCanonicalizes(t *testing.T) {
	require := require.New(t)

	s := &mzml.Spectrum{
		ID: "scan=1",
		BinaryDataArrays: []mzml.BinaryDataArray{
			{
				CvParams: []mzml.CvParam{
					{CvRef: "MS", Accession: "MS:1000514"},
					{CvRef: "MS", Accession: "MS:1000523"},
				},
			},
		},
	}

	rows := FlattenSpectrum(s, nil, Options{F32Compress: true})

	var numericTypeCount int
	for _, r := range rows {
		if r.Tag == format.TagBinaryDataArray && r.CvRef == format.CvRefMS && r.AccessionTail == 1000521 {
			numericTypeCount++
		}
		if r.Tag == format.TagBinaryDataArray && r.CvRef == format.CvRefMS && r.AccessionTail == 1000523 {
			require.Fail("64-bit float param should have been replaced")
		}
	}
	require.Equal(1, numericTypeCount)
}

func TestFlattenUserParamRoundTripShape(t *testing.T) {
	require := require.New(t)

	s := &mzml.Spectrum{
		ID: "scan=1",
		UserParams: []mzml.UserParam{
			{Name: "filter string", Value: "FTMS + p NSI Full ms", Type: "xsd:string"},
		},
	}

	rows := FlattenSpectrum(s, nil, Options{})

	var nameRows, typeRows int
	for _, r := range rows {
		if r.Tag == format.TagAttribute && r.AccessionTail == uint32(format.AttrUserParamName) {
			require.Equal("filter string", r.Text)
			nameRows++
		}
		if r.Tag == format.TagAttribute && r.AccessionTail == uint32(format.AttrUserParamType) {
			require.Equal("xsd:string", r.Text)
			typeRows++
		}
	}
	require.Equal(1, nameRows)
	require.Equal(1, typeRows)
}

func TestFlattenInlinesReferenceableParamGroup(t *testing.T) {
	require := require.New(t)

	groups := []mzml.ReferenceableParamGroup{
		{ID: "CommonMS1", CvParams: []mzml.CvParam{{CvRef: "MS", Accession: "MS:1000127"}}},
	}
	s := &mzml.Spectrum{ID: "scan=1", ReferenceableParamGroupRefs: []string{"CommonMS1"}}

	rows := FlattenSpectrum(s, groups, Options{})

	var found bool
	for _, r := range rows {
		if r.CvRef == format.CvRefMS && r.AccessionTail == 1000127 && r.OwnerID == 1 {
			found = true
		}
	}
	require.True(found)
}

func TestFlattenChromatogramBasic(t *testing.T) {
	require := require.New(t)

	c := &mzml.Chromatogram{ID: "TIC", DefaultArrayLength: 3}
	rows := FlattenChromatogram(c, nil, Options{})

	var found bool
	for _, r := range rows {
		if r.Tag == format.TagChromatogram && r.CvRef == format.CvRefAttr && format.AttrTail(r.AccessionTail) == format.AttrID {
			require.Equal("TIC", r.Text)
			found = true
		}
	}
	require.True(found)
}

func TestFlattenGlobalOrdering(t *testing.T) {
	require := require.New(t)

	doc := &mzml.Document{
		Cvs:      []mzml.Cv{{ID: "MS", FullName: "Mass spectrometry ontology"}},
		Samples:  []mzml.Sample{{ID: "sample1", Name: "control"}},
		Run:      mzml.Run{ID: "run1"},
	}

	items := FlattenGlobal(doc, Options{})
	require.NotEmpty(items)

	last := items[len(items)-1]
	var sawRunID bool
	for _, r := range last {
		if r.Tag == format.TagRun && format.AttrTail(r.AccessionTail) == format.AttrID {
			require.Equal("run1", r.Text)
			sawRunID = true
		}
	}
	require.True(sawRunID)
}
