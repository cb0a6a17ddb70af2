package section

import (
	"github.com/b000io/b000/endian"
	"github.com/b000io/b000/errs"
	"github.com/b000io/b000/format"
)

// Header is the fixed, 512-byte record at the start of every B000 file
// (spec §4.9). It carries the signature, the endianness flag, the
// compression/array-filter settings applied uniformly across the file,
// and the byte offset/length of every section: the four array-reference
// tables (A0, A1, B0, B1), the three metadata sections (spectrum,
// chromatogram, global), and the two block containers (spectrum,
// chromatogram). Anything beyond the last populated field is zero padding
// out to HeaderSize.
type Header struct {
	Endianness       uint8                   // byte offset 4
	CompressionCodec format.CompressionCodec // byte offset 5
	CompressionLevel uint8                   // byte offset 6
	ArrayFilter      format.ArrayFilter      // byte offset 7

	SpectrumCount     uint32 // byte offset 8-11
	ChromatogramCount uint32 // byte offset 12-15

	A0Offset uint64 // byte offset 16-23
	A0Length uint64 // byte offset 24-31
	A1Offset uint64 // byte offset 32-39
	A1Length uint64 // byte offset 40-47
	B0Offset uint64 // byte offset 48-55
	B0Length uint64 // byte offset 56-63
	B1Offset uint64 // byte offset 64-71
	B1Length uint64 // byte offset 72-79

	SpectrumMetaOffset               uint64 // byte offset 80-87
	SpectrumMetaLength                uint64 // byte offset 88-95, compressed length
	SpectrumMetaUncompressedLength    uint32 // byte offset 96-99

	ChromMetaOffset            uint64 // byte offset 100-107
	ChromMetaLength            uint64 // byte offset 108-115
	ChromMetaUncompressedLength uint32 // byte offset 116-119

	GlobalMetaOffset            uint64 // byte offset 120-127
	GlobalMetaLength            uint64 // byte offset 128-135
	GlobalMetaUncompressedLength uint32 // byte offset 136-139

	SpectrumContainerOffset     uint64 // byte offset 140-147
	SpectrumContainerLength     uint64 // byte offset 148-155
	SpectrumContainerBlockCount uint32 // byte offset 156-159

	ChromContainerOffset     uint64 // byte offset 160-167
	ChromContainerLength     uint64 // byte offset 168-175
	ChromContainerBlockCount uint32 // byte offset 176-179

	SpectrumMetaCounts SectionCounts // byte offset 180-195
	ChromMetaCounts    SectionCounts // byte offset 196-211
	GlobalMetaCounts   SectionCounts // byte offset 212-227
}

// Bytes serializes the header into a zero-padded, HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := endian.GetLittleEndianEngine()

	copy(b[0:4], Signature[:])
	b[4] = h.Endianness
	b[5] = uint8(h.CompressionCodec)
	b[6] = h.CompressionLevel
	b[7] = uint8(h.ArrayFilter)

	engine.PutUint32(b[8:12], h.SpectrumCount)
	engine.PutUint32(b[12:16], h.ChromatogramCount)

	engine.PutUint64(b[16:24], h.A0Offset)
	engine.PutUint64(b[24:32], h.A0Length)
	engine.PutUint64(b[32:40], h.A1Offset)
	engine.PutUint64(b[40:48], h.A1Length)
	engine.PutUint64(b[48:56], h.B0Offset)
	engine.PutUint64(b[56:64], h.B0Length)
	engine.PutUint64(b[64:72], h.B1Offset)
	engine.PutUint64(b[72:80], h.B1Length)

	engine.PutUint64(b[80:88], h.SpectrumMetaOffset)
	engine.PutUint64(b[88:96], h.SpectrumMetaLength)
	engine.PutUint32(b[96:100], h.SpectrumMetaUncompressedLength)

	engine.PutUint64(b[100:108], h.ChromMetaOffset)
	engine.PutUint64(b[108:116], h.ChromMetaLength)
	engine.PutUint32(b[116:120], h.ChromMetaUncompressedLength)

	engine.PutUint64(b[120:128], h.GlobalMetaOffset)
	engine.PutUint64(b[128:136], h.GlobalMetaLength)
	engine.PutUint32(b[136:140], h.GlobalMetaUncompressedLength)

	engine.PutUint64(b[140:148], h.SpectrumContainerOffset)
	engine.PutUint64(b[148:156], h.SpectrumContainerLength)
	engine.PutUint32(b[156:160], h.SpectrumContainerBlockCount)

	engine.PutUint64(b[160:168], h.ChromContainerOffset)
	engine.PutUint64(b[168:176], h.ChromContainerLength)
	engine.PutUint32(b[176:180], h.ChromContainerBlockCount)

	h.SpectrumMetaCounts.WriteToSlice(b[180:196])
	h.ChromMetaCounts.WriteToSlice(b[196:212])
	h.GlobalMetaCounts.WriteToSlice(b[212:228])

	return b
}

// ParseHeader parses a Header from the first HeaderSize bytes of data,
// validating the signature and endianness flag.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, errs.New(errs.KindHeaderInvalid, "length", len(data), HeaderSize)
	}

	if [4]byte(data[0:4]) != Signature {
		return nil, errs.New(errs.KindHeaderInvalid, "signature", string(data[0:4]), string(Signature[:]))
	}

	if data[4] != EndiannessLittle {
		return nil, errs.New(errs.KindHeaderInvalid, "endianness", data[4], EndiannessLittle)
	}

	engine := endian.GetLittleEndianEngine()
	h := &Header{
		Endianness:       data[4],
		CompressionCodec: format.CompressionCodec(data[5]),
		CompressionLevel: data[6],
		ArrayFilter:      format.ArrayFilter(data[7]),

		SpectrumCount:     engine.Uint32(data[8:12]),
		ChromatogramCount: engine.Uint32(data[12:16]),

		A0Offset: engine.Uint64(data[16:24]),
		A0Length: engine.Uint64(data[24:32]),
		A1Offset: engine.Uint64(data[32:40]),
		A1Length: engine.Uint64(data[40:48]),
		B0Offset: engine.Uint64(data[48:56]),
		B0Length: engine.Uint64(data[56:64]),
		B1Offset: engine.Uint64(data[64:72]),
		B1Length: engine.Uint64(data[72:80]),

		SpectrumMetaOffset:             engine.Uint64(data[80:88]),
		SpectrumMetaLength:             engine.Uint64(data[88:96]),
		SpectrumMetaUncompressedLength: engine.Uint32(data[96:100]),

		ChromMetaOffset:              engine.Uint64(data[100:108]),
		ChromMetaLength:              engine.Uint64(data[108:116]),
		ChromMetaUncompressedLength:  engine.Uint32(data[116:120]),

		GlobalMetaOffset:              engine.Uint64(data[120:128]),
		GlobalMetaLength:              engine.Uint64(data[128:136]),
		GlobalMetaUncompressedLength:  engine.Uint32(data[136:140]),

		SpectrumContainerOffset:     engine.Uint64(data[140:148]),
		SpectrumContainerLength:     engine.Uint64(data[148:156]),
		SpectrumContainerBlockCount: engine.Uint32(data[156:160]),

		ChromContainerOffset:     engine.Uint64(data[160:168]),
		ChromContainerLength:     engine.Uint64(data[168:176]),
		ChromContainerBlockCount: engine.Uint32(data[176:180]),
	}

	var err error
	if h.SpectrumMetaCounts, err = ParseSectionCounts(data[180:196]); err != nil {
		return nil, err
	}
	if h.ChromMetaCounts, err = ParseSectionCounts(data[196:212]); err != nil {
		return nil, err
	}
	if h.GlobalMetaCounts, err = ParseSectionCounts(data[212:228]); err != nil {
		return nil, err
	}

	if !h.ArrayFilter.Valid() {
		return nil, errs.New(errs.KindHeaderInvalid, "array_filter", uint8(h.ArrayFilter), nil)
	}

	return h, nil
}
