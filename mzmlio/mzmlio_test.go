package mzmlio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b000io/b000/format"
	"github.com/b000io/b000/mzml"
)

func TestWriteReadRoundTrip(t *testing.T) {
	require := require.New(t)

	doc := &mzml.Document{
		Cvs: []mzml.Cv{{ID: "MS", FullName: "Proteomics Standards Initiative Mass Spectrometry Ontology", Version: "4.1.0"}},
		FileDescription: mzml.FileDescription{
			FileContent: mzml.FileContent{CvParams: []mzml.CvParam{{CvRef: "MS", Accession: "MS:1000579", Name: "MS1 spectrum"}}},
		},
		Run: mzml.Run{
			ID: "run1",
			SpectrumList: []mzml.Spectrum{
				{
					ID:      "scan=1",
					Index:   0,
					MSLevel: 1,
					CvParams: []mzml.CvParam{
						{CvRef: "MS", Accession: "MS:1000511", Value: "1"},
					},
					BinaryDataArrays: []mzml.BinaryDataArray{
						{
							CvParams: []mzml.CvParam{
								{CvRef: "MS", Accession: "MS:1000514", Name: "m/z array"},
								{CvRef: "MS", Accession: "MS:1000523", Name: "64-bit float"},
							},
							Payload: mzml.Payload{Dtype: format.DtypeF64, F64: []float64{100.5, 200.25, 300.125}},
						},
						{
							CvParams: []mzml.CvParam{
								{CvRef: "MS", Accession: "MS:1000515", Name: "intensity array"},
								{CvRef: "MS", Accession: "MS:1000521", Name: "32-bit float"},
							},
							Payload: mzml.Payload{Dtype: format.DtypeF32, F32: []float32{1.5, 2.5, 3.5}},
						},
					},
				},
			},
		},
	}

	out, err := Write(doc)
	require.NoError(err)

	got, err := Read(out)
	require.NoError(err)

	require.Equal("run1", got.Run.ID)
	require.Len(got.Run.SpectrumList, 1)

	s := got.Run.SpectrumList[0]
	require.Equal("scan=1", s.ID)
	require.Equal(1, s.MSLevel)
	require.Len(s.BinaryDataArrays, 2)
	require.Equal([]float64{100.5, 200.25, 300.125}, s.BinaryDataArrays[0].Payload.F64)
	require.Equal([]float32{1.5, 2.5, 3.5}, s.BinaryDataArrays[1].Payload.F32)

	require.Len(got.Cvs, 1)
	require.Equal("MS", got.Cvs[0].ID)
}

func TestReadEmptyBinary(t *testing.T) {
	require := require.New(t)

	doc := &mzml.Document{
		Run: mzml.Run{
			SpectrumList: []mzml.Spectrum{
				{
					ID: "scan=1",
					BinaryDataArrays: []mzml.BinaryDataArray{
						{
							CvParams: []mzml.CvParam{{CvRef: "MS", Accession: "MS:1000523"}},
							Payload:  mzml.Payload{Dtype: format.DtypeF64},
						},
					},
				},
			},
		},
	}

	out, err := Write(doc)
	require.NoError(err)

	got, err := Read(out)
	require.NoError(err)
	require.Empty(got.Run.SpectrumList[0].BinaryDataArrays[0].Payload.F64)
}
