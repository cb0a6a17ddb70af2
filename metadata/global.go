package metadata

import (
	"github.com/b000io/b000/endian"
	"github.com/b000io/b000/errs"
	"github.com/b000io/b000/section"
)

// GlobalCountsSize is the on-disk size of the global metadata section's
// preamble (spec §9 Open Question: "nine-u32 preamble").
const GlobalCountsSize = 36

// GlobalCounts is the nine-u32 preamble the global metadata section carries
// ahead of its packed rows (spec §9): a redundant summary of how many
// top-level items of each kind the section holds, present for forward
// compatibility even though CI already makes the count recoverable.
type GlobalCounts struct {
	FileDescriptionCount         uint32
	RunCount                     uint32
	ReferenceableParamGroupCount uint32
	SampleCount                  uint32
	InstrumentConfigurationCount uint32
	SoftwareCount                uint32
	DataProcessingCount          uint32
	ScanSettingsCount            uint32
	CvCount                      uint32
}

// WriteToSlice writes the counts into dst, which must be at least
// GlobalCountsSize bytes long.
func (c GlobalCounts) WriteToSlice(dst []byte) {
	engine := endian.GetLittleEndianEngine()

	engine.PutUint32(dst[0:4], c.FileDescriptionCount)
	engine.PutUint32(dst[4:8], c.RunCount)
	engine.PutUint32(dst[8:12], c.ReferenceableParamGroupCount)
	engine.PutUint32(dst[12:16], c.SampleCount)
	engine.PutUint32(dst[16:20], c.InstrumentConfigurationCount)
	engine.PutUint32(dst[20:24], c.SoftwareCount)
	engine.PutUint32(dst[24:28], c.DataProcessingCount)
	engine.PutUint32(dst[28:32], c.ScanSettingsCount)
	engine.PutUint32(dst[32:36], c.CvCount)
}

// Bytes serializes the counts into a GlobalCountsSize-byte slice.
func (c GlobalCounts) Bytes() []byte {
	b := make([]byte, GlobalCountsSize)
	c.WriteToSlice(b)
	return b
}

// ParseGlobalCounts parses a GlobalCounts from the first GlobalCountsSize
// bytes of data.
func ParseGlobalCounts(data []byte) (GlobalCounts, error) {
	if len(data) < GlobalCountsSize {
		return GlobalCounts{}, section.ErrShortBuffer
	}

	engine := endian.GetLittleEndianEngine()

	return GlobalCounts{
		FileDescriptionCount:         engine.Uint32(data[0:4]),
		RunCount:                     engine.Uint32(data[4:8]),
		ReferenceableParamGroupCount: engine.Uint32(data[8:12]),
		SampleCount:                  engine.Uint32(data[12:16]),
		InstrumentConfigurationCount: engine.Uint32(data[16:20]),
		SoftwareCount:                engine.Uint32(data[20:24]),
		DataProcessingCount:          engine.Uint32(data[24:28]),
		ScanSettingsCount:            engine.Uint32(data[28:32]),
		CvCount:                      engine.Uint32(data[32:36]),
	}, nil
}

// PackGlobal packs the global metadata section: GlobalCounts' nine-u32
// preamble followed by the ordinary Pack wire layout over rows.
func PackGlobal(counts GlobalCounts, itemRowCounts []int, rows []Row) ([]byte, section.SectionCounts) {
	body, sectionCounts := Pack(itemRowCounts, rows)

	out := make([]byte, 0, GlobalCountsSize+len(body))
	out = append(out, counts.Bytes()...)
	out = append(out, body...)

	return out, sectionCounts
}

// UnpackGlobal is the inverse of PackGlobal.
func UnpackGlobal(data []byte, sectionCounts section.SectionCounts) (GlobalCounts, [][]Row, error) {
	if len(data) < GlobalCountsSize {
		return GlobalCounts{}, nil, errs.New(errs.KindMetadataInconsistent, "global_counts_length", len(data), GlobalCountsSize)
	}

	counts, err := ParseGlobalCounts(data)
	if err != nil {
		return GlobalCounts{}, nil, err
	}

	items, err := Unpack(data[GlobalCountsSize:], sectionCounts)
	if err != nil {
		return GlobalCounts{}, nil, err
	}

	return counts, items, nil
}
