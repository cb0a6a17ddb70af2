package reconstruct

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b000io/b000/cvnames"
	"github.com/b000io/b000/flatten"
	"github.com/b000io/b000/mzml"
)

func TestReconstructSpectrumRoundTrip(t *testing.T) {
	require := require.New(t)

	s := &mzml.Spectrum{
		ID:                 "scan=1",
		Index:              0,
		DefaultArrayLength: 10,
		MSLevel:            2,
		CvParams: []mzml.CvParam{
			{CvRef: "MS", Accession: "MS:1000511", Value: "2"},
			{CvRef: "MS", Accession: "MS:1000128"},
		},
		UserParams: []mzml.UserParam{
			{Name: "filter string", Value: "FTMS + p NSI Full ms2", Type: "xsd:string"},
		},
		Precursors: []mzml.Precursor{
			{SpectrumRef: "scan=0", IsolationWindow: &mzml.IsolationWindow{CvParams: []mzml.CvParam{{CvRef: "MS", Accession: "MS:1000827", Value: "445.12"}}}},
		},
		BinaryDataArrays: []mzml.BinaryDataArray{
			{ArrayLength: 10, CvParams: []mzml.CvParam{{CvRef: "MS", Accession: "MS:1000514"}, {CvRef: "MS", Accession: "MS:1000523"}}},
			{ArrayLength: 10, CvParams: []mzml.CvParam{{CvRef: "MS", Accession: "MS:1000515"}, {CvRef: "MS", Accession: "MS:1000523"}}},
		},
	}

	rows := flatten.FlattenSpectrum(s, nil, flatten.Options{})

	got, err := ReconstructSpectrum(rows, cvnames.NewStatic())
	require.NoError(err)

	require.Equal("scan=1", got.ID)
	require.Equal(uint32(10), got.DefaultArrayLength)
	require.Equal(2, got.MSLevel)
	require.Len(got.UserParams, 1)
	require.Equal("filter string", got.UserParams[0].Name)
	require.Equal("xsd:string", got.UserParams[0].Type)
	require.Len(got.Precursors, 1)
	require.Equal("scan=0", got.Precursors[0].SpectrumRef)
	require.NotNil(got.Precursors[0].IsolationWindow)
	require.Len(got.BinaryDataArrays, 2)
	require.Equal(uint32(10), got.BinaryDataArrays[0].ArrayLength)
}

func TestReconstructChromatogramRoundTrip(t *testing.T) {
	require := require.New(t)

	c := &mzml.Chromatogram{ID: "TIC", DefaultArrayLength: 100, CvParams: []mzml.CvParam{{CvRef: "MS", Accession: "MS:1000235"}}}
	rows := flatten.FlattenChromatogram(c, nil, flatten.Options{})

	got, err := ReconstructChromatogram(rows, cvnames.NewStatic())
	require.NoError(err)
	require.Equal("TIC", got.ID)
	require.Equal(uint32(100), got.DefaultArrayLength)
	require.Len(got.CvParams, 1)
	require.Equal("MS:1000235", got.CvParams[0].Accession)
}

func TestReconstructGlobalRoundTrip(t *testing.T) {
	require := require.New(t)

	doc := &mzml.Document{
		Cvs:     []mzml.Cv{{ID: "MS", FullName: "Mass spectrometry ontology", Version: "4.1"}},
		Samples: []mzml.Sample{{ID: "sample1", Name: "control"}},
		Run:     mzml.Run{ID: "run1", StartTimeStamp: "2024-01-01T00:00:00Z"},
	}

	items := flatten.FlattenGlobal(doc, flatten.Options{})
	got := ReconstructGlobal(items, cvnames.NewStatic())

	require.Len(got.Cvs, 1)
	require.Equal("MS", got.Cvs[0].ID)
	require.Len(got.Samples, 1)
	require.Equal("sample1", got.Samples[0].ID)
	require.Equal("run1", got.Run.ID)
	require.Equal("2024-01-01T00:00:00Z", got.Run.StartTimeStamp)
}
