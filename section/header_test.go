package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b000io/b000/errs"
	"github.com/b000io/b000/format"
)

func sampleHeader() *Header {
	return &Header{
		Endianness:        EndiannessLittle,
		CompressionCodec:  format.CompressionZstd,
		CompressionLevel:  9,
		ArrayFilter:       format.ArrayFilterByteShuffle,
		SpectrumCount:     1234,
		ChromatogramCount: 3,
		A0Offset:          512,
		A0Length:          1234 * ItemDirEntrySize,
		A1Offset:          999999,
		A1Length:          4096,
		B0Offset:          1 << 20,
		B0Length:          48,
		B1Offset:          1 << 21,
		B1Length:          96,

		SpectrumMetaOffset:             1 << 22,
		SpectrumMetaLength:             8192,
		SpectrumMetaUncompressedLength: 16384,

		ChromMetaOffset:              1 << 23,
		ChromMetaLength:              256,
		ChromMetaUncompressedLength:  512,

		GlobalMetaOffset:              1 << 24,
		GlobalMetaLength:              64,
		GlobalMetaUncompressedLength:  64,

		SpectrumContainerOffset:     1 << 25,
		SpectrumContainerLength:     1 << 30,
		SpectrumContainerBlockCount: 20,

		ChromContainerOffset:     1 << 31,
		ChromContainerLength:     4096,
		ChromContainerBlockCount: 1,

		SpectrumMetaCounts: SectionCounts{ItemCount: 1234, TotalRows: 50000, NumCount: 40000, StrCount: 10000},
		ChromMetaCounts:    SectionCounts{ItemCount: 3, TotalRows: 30, NumCount: 20, StrCount: 10},
		GlobalMetaCounts:   SectionCounts{ItemCount: 1, TotalRows: 1, NumCount: 9, StrCount: 0},
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	require := require.New(t)

	h := sampleHeader()
	b := h.Bytes()
	require.Len(b, HeaderSize)

	got, err := ParseHeader(b)
	require.NoError(err)
	require.Equal(h, got)
}

func TestHeaderRejectsBadSignature(t *testing.T) {
	require := require.New(t)

	b := sampleHeader().Bytes()
	b[0] = 'X'

	_, err := ParseHeader(b)
	require.Error(err)
	e, ok := errs.As(err)
	require.True(ok)
	require.Equal(errs.KindHeaderInvalid, e.Kind)
}

func TestHeaderRejectsShortBuffer(t *testing.T) {
	require := require.New(t)

	_, err := ParseHeader(make([]byte, 10))
	require.Error(err)
}

func TestHeaderRejectsBadEndianness(t *testing.T) {
	require := require.New(t)

	b := sampleHeader().Bytes()
	b[4] = 1

	_, err := ParseHeader(b)
	require.Error(err)
}

func TestHeaderRejectsBadArrayFilter(t *testing.T) {
	require := require.New(t)

	b := sampleHeader().Bytes()
	b[7] = 200

	_, err := ParseHeader(b)
	require.Error(err)
}
