package section

import "github.com/b000io/b000/endian"

// SectionCounts carries the four row-count fields a metadata section's
// header entry needs to size the reconstructor's per-owner maps up front
// (spec §4.4): how many top-level items the section describes, how many
// attributed rows it packed in total (items + their nested CV/user params),
// and how many of the packed values landed in the numeric pool vs the
// string pool.
type SectionCounts struct {
	ItemCount uint32 // byte offset 0-3
	TotalRows uint32 // byte offset 4-7
	NumCount  uint32 // byte offset 8-11
	StrCount  uint32 // byte offset 12-15
}

// Bytes serializes the counts into a SectionCountsSize-byte slice.
func (c SectionCounts) Bytes() []byte {
	b := make([]byte, SectionCountsSize)
	c.WriteToSlice(b)
	return b
}

// WriteToSlice writes the counts into dst, which must be at least
// SectionCountsSize bytes long.
func (c SectionCounts) WriteToSlice(dst []byte) {
	engine := endian.GetLittleEndianEngine()

	engine.PutUint32(dst[0:4], c.ItemCount)
	engine.PutUint32(dst[4:8], c.TotalRows)
	engine.PutUint32(dst[8:12], c.NumCount)
	engine.PutUint32(dst[12:16], c.StrCount)
}

// ParseSectionCounts parses a SectionCounts from the first SectionCountsSize
// bytes of data.
func ParseSectionCounts(data []byte) (SectionCounts, error) {
	if len(data) < SectionCountsSize {
		return SectionCounts{}, ErrShortBuffer
	}

	engine := endian.GetLittleEndianEngine()

	return SectionCounts{
		ItemCount: engine.Uint32(data[0:4]),
		TotalRows: engine.Uint32(data[4:8]),
		NumCount:  engine.Uint32(data[8:12]),
		StrCount:  engine.Uint32(data[12:16]),
	}, nil
}
