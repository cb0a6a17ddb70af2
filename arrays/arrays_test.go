package arrays

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b000io/b000/container"
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/mzml"
)

func TestSelectDtypeVerbatimForIntegerTypes(t *testing.T) {
	require := require.New(t)

	require.Equal(format.DtypeI32, SelectDtype(mzml.Payload{Dtype: format.DtypeI32}, format.ArrayKindMZ, true))
	require.Equal(format.DtypeI16, SelectDtype(mzml.Payload{Dtype: format.DtypeI16}, format.ArrayKindOther, false))
}

func TestSelectDtypeF32CompressDowncastsEligibleKinds(t *testing.T) {
	require := require.New(t)

	require.Equal(format.DtypeF32, SelectDtype(mzml.Payload{Dtype: format.DtypeF64}, format.ArrayKindMZ, true))
	require.Equal(format.DtypeF64, SelectDtype(mzml.Payload{Dtype: format.DtypeF64}, format.ArrayKindOther, true))
	require.Equal(format.DtypeF64, SelectDtype(mzml.Payload{Dtype: format.DtypeF64}, format.ArrayKindMZ, false))
}

func TestEncodeDecodeArrayRoundTrip(t *testing.T) {
	require := require.New(t)

	p := mzml.Payload{Dtype: format.DtypeF64, F64: []float64{1.5, 2.5, 3.25}}
	data, err := EncodeArray(format.DtypeF64, p)
	require.NoError(err)

	got, err := DecodeArray(format.DtypeF64, data)
	require.NoError(err)
	require.Equal(p.F64, got.F64)
}

func TestEncodeArrayDowncastsF64ToF32(t *testing.T) {
	require := require.New(t)

	p := mzml.Payload{Dtype: format.DtypeF64, F64: []float64{1.5, 2.5}}
	data, err := EncodeArray(format.DtypeF32, p)
	require.NoError(err)
	require.Len(data, 8)

	got, err := DecodeArray(format.DtypeF32, data)
	require.NoError(err)
	require.InDelta(1.5, got.F32[0], 1e-6)
	require.InDelta(2.5, got.F32[1], 1e-6)
}

func TestAddArrayAndGetArrayRoundTripThroughContainer(t *testing.T) {
	require := require.New(t)

	builder := container.NewBuilder(1<<20, 0, false)
	p := mzml.Payload{Dtype: format.DtypeF64, F64: []float64{10, 20, 30}}

	ref, err := AddArray(builder, format.ArrayKindIntensity, p, false)
	require.NoError(err)
	require.Equal(format.DtypeF64, ref.Dtype)
	require.Equal(uint64(3), ref.LengthElements)

	packed, blockCount, err := builder.Pack()
	require.NoError(err)

	reader, err := container.NewReader(packed, blockCount, 0, format.ArrayFilterNone)
	require.NoError(err)

	got, err := GetArray(reader, ref)
	require.NoError(err)
	require.Equal(p.F64, got.F64)
}

func TestEncodeItemsBuildsDirectoryWindows(t *testing.T) {
	require := require.New(t)

	builder := container.NewBuilder(1<<20, 0, false)
	items := [][]mzml.BinaryDataArray{
		{
			{Payload: mzml.Payload{Dtype: format.DtypeF64, F64: []float64{1, 2}}, CvParams: []mzml.CvParam{{Accession: "MS:1000514"}}},
			{Payload: mzml.Payload{Dtype: format.DtypeF64, F64: []float64{3, 4}}, CvParams: []mzml.CvParam{{Accession: "MS:1000515"}}},
		},
		{
			{Payload: mzml.Payload{Dtype: format.DtypeF64, F64: []float64{5, 6, 7}}, CvParams: []mzml.CvParam{{Accession: "MS:1000515"}}},
		},
	}

	dir, refs, err := EncodeItems(builder, items, false)
	require.NoError(err)
	require.Len(dir, 2)
	require.Len(refs, 3)
	require.Equal(uint64(0), dir[0].A1Start)
	require.Equal(uint64(2), dir[0].A1Count)
	require.Equal(uint64(2), dir[1].A1Start)
	require.Equal(uint64(1), dir[1].A1Count)
}

func TestEnsureNumericTypeParamReplacesInconsistentEntry(t *testing.T) {
	require := require.New(t)

	params := []mzml.CvParam{
		{Accession: "MS:1000514"},
		{Accession: "MS:1000523", Name: "64-bit float"},
	}

	out := EnsureNumericTypeParam(params, format.DtypeF32)

	var count int
	for _, p := range out {
		if p.Accession == "MS:1000521" {
			count++
		}
		require.NotEqual("MS:1000523", p.Accession)
	}
	require.Equal(1, count)
}

func TestEnsureNumericTypeParamPreservesPosition(t *testing.T) {
	require := require.New(t)

	params := []mzml.CvParam{
		{Accession: "MS:1000523", Name: "64-bit float"},
		{Accession: "MS:1000514"},
	}

	out := EnsureNumericTypeParam(params, format.DtypeF32)

	require.Len(out, 2)
	require.Equal("MS:1000521", out[0].Accession)
	require.Equal("MS:1000514", out[1].Accession)
}
