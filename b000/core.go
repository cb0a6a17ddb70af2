package b000

import (
	"github.com/b000io/b000/arrays"
	"github.com/b000io/b000/compress"
	"github.com/b000io/b000/container"
	"github.com/b000io/b000/errs"
	"github.com/b000io/b000/flatten"
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/metadata"
	"github.com/b000io/b000/mzml"
	"github.com/b000io/b000/reconstruct"
	"github.com/b000io/b000/section"
)

// Encode serializes doc into a complete B000 file (header through trailer,
// spec §4.9/§6): it flattens the document into the three metadata sections,
// routes every BinaryDataArray payload through the container builders, and
// assembles the fixed header with every section's offset and length.
func Encode(doc *mzml.Document, opts EncodeOptions) ([]byte, error) {
	// Byte-shuffle only ever helps a compressed block (§4.1); at level 0 the
	// container builder stores buckets verbatim regardless of the filter
	// setting, so the header must agree or a reader would try to unshuffle
	// bytes that were never shuffled.
	if opts.Level == 0 {
		opts.ArrayFilter = format.ArrayFilterNone
	}

	codec := encodeCodec(opts)
	flattenOpts := flatten.Options{F32Compress: opts.F32Compress}

	specRows, specItemCounts := flattenSpectra(doc.Run.SpectrumList, doc.ReferenceableParamGroups, flattenOpts)
	chromRows, chromItemCounts := flattenChromatograms(doc.Run.ChromatogramList, doc.ReferenceableParamGroups, flattenOpts)
	globalItems := flatten.FlattenGlobal(doc, flattenOpts)
	globalCounts := globalCountsOf(doc)

	specMetaBody, specMetaCounts := metadata.Pack(specItemCounts, specRows)
	chromMetaBody, chromMetaCounts := metadata.Pack(chromItemCounts, chromRows)

	var globalItemRowCounts []int
	var globalRows []metadata.Row
	for _, rows := range globalItems {
		globalItemRowCounts = append(globalItemRowCounts, len(rows))
		globalRows = append(globalRows, rows...)
	}
	globalMetaBody, globalMetaCounts := metadata.PackGlobal(globalCounts, globalItemRowCounts, globalRows)

	specMetaCompressed, specMetaUncompressedLen, err := compressSection(codec, specMetaBody)
	if err != nil {
		return nil, err
	}
	chromMetaCompressed, chromMetaUncompressedLen, err := compressSection(codec, chromMetaBody)
	if err != nil {
		return nil, err
	}
	globalMetaCompressed, globalMetaUncompressedLen, err := compressSection(codec, globalMetaBody)
	if err != nil {
		return nil, err
	}

	doShuffle := opts.ArrayFilter == format.ArrayFilterByteShuffle
	targetBlockBytes := opts.targetBlockBytes()

	specBuilder := container.NewBuilder(targetBlockBytes, opts.Level, doShuffle)
	specDir, specRefs, err := arrays.EncodeItems(specBuilder, arraysOfSpectra(doc.Run.SpectrumList), opts.F32Compress)
	if err != nil {
		return nil, err
	}
	specContainerBytes, specBlockCount, err := specBuilder.Pack()
	if err != nil {
		return nil, err
	}

	chromBuilder := container.NewBuilder(targetBlockBytes, opts.Level, doShuffle)
	chromDir, chromRefs, err := arrays.EncodeItems(chromBuilder, arraysOfChromatograms(doc.Run.ChromatogramList), opts.F32Compress)
	if err != nil {
		return nil, err
	}
	chromContainerBytes, chromBlockCount, err := chromBuilder.Pack()
	if err != nil {
		return nil, err
	}

	a0 := section.WriteItemDirEntries(specDir)
	a1 := section.WriteArrayRefEntries(specRefs)
	b0 := section.WriteItemDirEntries(chromDir)
	b1 := section.WriteArrayRefEntries(chromRefs)

	h := &section.Header{
		Endianness:        section.EndiannessLittle,
		CompressionCodec:  opts.codec(),
		CompressionLevel:  opts.Level,
		ArrayFilter:       opts.ArrayFilter,
		SpectrumCount:     uint32(len(doc.Run.SpectrumList)),
		ChromatogramCount: uint32(len(doc.Run.ChromatogramList)),

		SpectrumMetaUncompressedLength: uint32(specMetaUncompressedLen),
		ChromMetaUncompressedLength:    uint32(chromMetaUncompressedLen),
		GlobalMetaUncompressedLength:   uint32(globalMetaUncompressedLen),

		SpectrumContainerBlockCount: specBlockCount,
		ChromContainerBlockCount:    chromBlockCount,

		SpectrumMetaCounts: specMetaCounts,
		ChromMetaCounts:    chromMetaCounts,
		GlobalMetaCounts:   globalMetaCounts,
	}

	out := make([]byte, section.HeaderSize)

	var offA0, offA1, offB0, offB1 uint64
	var offSpecMeta, offChromMeta, offGlobalMeta uint64
	var offSpecContainer, offChromContainer uint64

	out, offA0 = appendAligned(out, a0)
	out, offA1 = appendAligned(out, a1)
	out, offB0 = appendAligned(out, b0)
	out, offB1 = appendAligned(out, b1)
	out, offSpecMeta = appendAligned(out, specMetaCompressed)
	out, offChromMeta = appendAligned(out, chromMetaCompressed)
	out, offGlobalMeta = appendAligned(out, globalMetaCompressed)
	out, offSpecContainer = appendAligned(out, specContainerBytes)
	out, offChromContainer = appendAligned(out, chromContainerBytes)

	h.A0Offset, h.A0Length = offA0, uint64(len(a0))
	h.A1Offset, h.A1Length = offA1, uint64(len(a1))
	h.B0Offset, h.B0Length = offB0, uint64(len(b0))
	h.B1Offset, h.B1Length = offB1, uint64(len(b1))
	h.SpectrumMetaOffset, h.SpectrumMetaLength = offSpecMeta, uint64(len(specMetaCompressed))
	h.ChromMetaOffset, h.ChromMetaLength = offChromMeta, uint64(len(chromMetaCompressed))
	h.GlobalMetaOffset, h.GlobalMetaLength = offGlobalMeta, uint64(len(globalMetaCompressed))
	h.SpectrumContainerOffset, h.SpectrumContainerLength = offSpecContainer, uint64(len(specContainerBytes))
	h.ChromContainerOffset, h.ChromContainerLength = offChromContainer, uint64(len(chromContainerBytes))

	copy(out[0:section.HeaderSize], h.Bytes())
	out = append(out, section.Trailer[:]...)

	return out, nil
}

// Decode parses a complete B000 file back into an mzml.Document (spec
// §4.9/§6): header, section-by-section metadata reconstruction, and array
// payload materialization from the spectrum/chromatogram containers.
func Decode(data []byte, opts DecodeOptions) (*mzml.Document, error) {
	h, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(h.CompressionCodec)
	if err != nil {
		return nil, err
	}
	names := opts.names()

	a0, err := sliceSection(data, h.A0Offset, h.A0Length)
	if err != nil {
		return nil, err
	}
	specDir, err := section.ParseItemDirEntries(a0, int(h.SpectrumCount))
	if err != nil {
		return nil, err
	}

	a1, err := sliceSection(data, h.A1Offset, h.A1Length)
	if err != nil {
		return nil, err
	}
	specRefs, err := section.ParseArrayRefEntries(a1, int(h.A1Length)/section.ArrayRefEntrySize)
	if err != nil {
		return nil, err
	}

	b0, err := sliceSection(data, h.B0Offset, h.B0Length)
	if err != nil {
		return nil, err
	}
	chromDir, err := section.ParseItemDirEntries(b0, int(h.ChromatogramCount))
	if err != nil {
		return nil, err
	}

	b1, err := sliceSection(data, h.B1Offset, h.B1Length)
	if err != nil {
		return nil, err
	}
	chromRefs, err := section.ParseArrayRefEntries(b1, int(h.B1Length)/section.ArrayRefEntrySize)
	if err != nil {
		return nil, err
	}

	specMetaRaw, err := decompressSection(data, h.SpectrumMetaOffset, h.SpectrumMetaLength, codec)
	if err != nil {
		return nil, err
	}
	specMetaItems, err := metadata.Unpack(specMetaRaw, h.SpectrumMetaCounts)
	if err != nil {
		return nil, err
	}

	chromMetaRaw, err := decompressSection(data, h.ChromMetaOffset, h.ChromMetaLength, codec)
	if err != nil {
		return nil, err
	}
	chromMetaItems, err := metadata.Unpack(chromMetaRaw, h.ChromMetaCounts)
	if err != nil {
		return nil, err
	}

	globalMetaRaw, err := decompressSection(data, h.GlobalMetaOffset, h.GlobalMetaLength, codec)
	if err != nil {
		return nil, err
	}
	_, globalItems, err := metadata.UnpackGlobal(globalMetaRaw, h.GlobalMetaCounts)
	if err != nil {
		return nil, err
	}

	doc := reconstruct.ReconstructGlobal(globalItems, names)

	specContainerData, err := sliceSection(data, h.SpectrumContainerOffset, h.SpectrumContainerLength)
	if err != nil {
		return nil, err
	}
	specReader, err := container.NewReader(specContainerData, h.SpectrumContainerBlockCount, h.CompressionLevel, h.ArrayFilter)
	if err != nil {
		return nil, err
	}

	chromContainerData, err := sliceSection(data, h.ChromContainerOffset, h.ChromContainerLength)
	if err != nil {
		return nil, err
	}
	chromReader, err := container.NewReader(chromContainerData, h.ChromContainerBlockCount, h.CompressionLevel, h.ArrayFilter)
	if err != nil {
		return nil, err
	}

	spectra := make([]mzml.Spectrum, len(specMetaItems))
	for i, rows := range specMetaItems {
		s, err := reconstruct.ReconstructSpectrum(rows, names)
		if err != nil {
			return nil, err
		}
		if i < len(specDir) {
			payloads, err := arrays.DecodeItem(specReader, specDir[i], specRefs)
			if err != nil {
				return nil, err
			}
			if err := attachPayloads(s.BinaryDataArrays, payloads); err != nil {
				return nil, err
			}
		}
		spectra[i] = *s
	}

	chromatograms := make([]mzml.Chromatogram, len(chromMetaItems))
	for i, rows := range chromMetaItems {
		c, err := reconstruct.ReconstructChromatogram(rows, names)
		if err != nil {
			return nil, err
		}
		if i < len(chromDir) {
			payloads, err := arrays.DecodeItem(chromReader, chromDir[i], chromRefs)
			if err != nil {
				return nil, err
			}
			if err := attachPayloads(c.BinaryDataArrays, payloads); err != nil {
				return nil, err
			}
		}
		chromatograms[i] = *c
	}

	doc.Run.SpectrumList = spectra
	doc.Run.ChromatogramList = chromatograms

	return doc, nil
}

// attachPayloads zips decoded payloads onto their BinaryDataArray in the
// order both were encoded/reconstructed in, enforcing the canonical
// numeric-type CvParam invariant as it goes (§3, §4.8).
func attachPayloads(arraysList []mzml.BinaryDataArray, payloads []mzml.Payload) error {
	if len(arraysList) != len(payloads) {
		return errs.New(errs.KindMetadataInconsistent, "binary_data_array_count", len(payloads), len(arraysList))
	}
	for i := range arraysList {
		arraysList[i].Payload = payloads[i]
		arraysList[i].CvParams = arrays.EnsureNumericTypeParam(arraysList[i].CvParams, payloads[i].Dtype)
	}
	return nil
}

func flattenSpectra(spectra []mzml.Spectrum, groups []mzml.ReferenceableParamGroup, opts flatten.Options) ([]metadata.Row, []int) {
	var rows []metadata.Row
	counts := make([]int, len(spectra))
	for i := range spectra {
		r := flatten.FlattenSpectrum(&spectra[i], groups, opts)
		counts[i] = len(r)
		rows = append(rows, r...)
	}
	return rows, counts
}

func flattenChromatograms(chroms []mzml.Chromatogram, groups []mzml.ReferenceableParamGroup, opts flatten.Options) ([]metadata.Row, []int) {
	var rows []metadata.Row
	counts := make([]int, len(chroms))
	for i := range chroms {
		r := flatten.FlattenChromatogram(&chroms[i], groups, opts)
		counts[i] = len(r)
		rows = append(rows, r...)
	}
	return rows, counts
}

func arraysOfSpectra(spectra []mzml.Spectrum) [][]mzml.BinaryDataArray {
	out := make([][]mzml.BinaryDataArray, len(spectra))
	for i := range spectra {
		out[i] = spectra[i].BinaryDataArrays
	}
	return out
}

func arraysOfChromatograms(chroms []mzml.Chromatogram) [][]mzml.BinaryDataArray {
	out := make([][]mzml.BinaryDataArray, len(chroms))
	for i := range chroms {
		out[i] = chroms[i].BinaryDataArrays
	}
	return out
}

func globalCountsOf(doc *mzml.Document) metadata.GlobalCounts {
	return metadata.GlobalCounts{
		FileDescriptionCount:         1,
		RunCount:                     1,
		ReferenceableParamGroupCount: uint32(len(doc.ReferenceableParamGroups)),
		SampleCount:                  uint32(len(doc.Samples)),
		InstrumentConfigurationCount: uint32(len(doc.InstrumentConfigurations)),
		SoftwareCount:                uint32(len(doc.Softwares)),
		DataProcessingCount:          uint32(len(doc.DataProcessings)),
		ScanSettingsCount:            uint32(len(doc.ScanSettingsList)),
		CvCount:                      uint32(len(doc.Cvs)),
	}
}

func encodeCodec(opts EncodeOptions) compress.Codec {
	if opts.Level == 0 {
		return compress.NewNoOpCompressor()
	}
	return compress.NewZstdCompressorLevel(int(opts.Level))
}

// compressSection compresses a metadata section's packed bytes, returning
// the compressed bytes and the uncompressed length the header needs for
// padding-tolerant decompression (§4.2, §4.9).
func compressSection(codec compress.Codec, body []byte) ([]byte, int, error) {
	compressed, err := codec.Compress(body)
	if err != nil {
		return nil, 0, err
	}
	return compressed, len(body), nil
}

func decompressSection(data []byte, offset, length uint64, codec compress.Codec) ([]byte, error) {
	raw, err := sliceSection(data, offset, length)
	if err != nil {
		return nil, err
	}
	out, err := codec.Decompress(raw)
	if err != nil {
		return nil, errs.New(errs.KindDecompressionFailed, "section_offset", offset, nil)
	}
	return out, nil
}

func sliceSection(data []byte, offset, length uint64) ([]byte, error) {
	end := offset + length
	if end > uint64(len(data)) || offset > end {
		return nil, errs.New(errs.KindSectionOutOfRange, "section_offset", offset, len(data))
	}
	return data[offset:end], nil
}

// appendAligned pads buf to the next 8-byte boundary (§4.9), appends data,
// and returns the new buffer along with data's starting offset.
func appendAligned(buf, data []byte) ([]byte, uint64) {
	for len(buf)%section.Alignment != 0 {
		buf = append(buf, 0)
	}
	offset := uint64(len(buf))
	buf = append(buf, data...)
	return buf, offset
}
