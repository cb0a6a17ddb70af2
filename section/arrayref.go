package section

import (
	"github.com/b000io/b000/endian"
	"github.com/b000io/b000/format"
)

// ItemDirEntry is one row of the A0 (spectrum) or B0 (chromatogram)
// directory (spec §4.8): it points an item at the contiguous run of
// ArrayRefEntry rows in A1/B1 describing its binary data arrays. A0 and B0
// share this layout; which table a given entry lives in is determined by
// the header section it was read from, not by any field on the entry.
type ItemDirEntry struct {
	A1Start uint64 // byte offset 0-7, first row index into A1/B1
	A1Count uint64 // byte offset 8-15, number of arrays this item owns
}

// Bytes serializes the entry into an ItemDirEntrySize-byte slice.
func (e ItemDirEntry) Bytes() []byte {
	b := make([]byte, ItemDirEntrySize)
	e.WriteToSlice(b)
	return b
}

func (e ItemDirEntry) WriteToSlice(dst []byte) {
	engine := endian.GetLittleEndianEngine()

	engine.PutUint64(dst[0:8], e.A1Start)
	engine.PutUint64(dst[8:16], e.A1Count)
}

// ParseItemDirEntry parses an ItemDirEntry from the first ItemDirEntrySize
// bytes of data.
func ParseItemDirEntry(data []byte) (ItemDirEntry, error) {
	if len(data) < ItemDirEntrySize {
		return ItemDirEntry{}, ErrShortBuffer
	}

	engine := endian.GetLittleEndianEngine()

	return ItemDirEntry{
		A1Start: engine.Uint64(data[0:8]),
		A1Count: engine.Uint64(data[8:16]),
	}, nil
}

// ArrayRefEntry is one row of the A1 (spectrum) or B1 (chromatogram)
// array-reference table (spec §4.8): one row per binary data array,
// pointing into the element stream of a container block and carrying the
// dtype and array-kind classification the binary-array pipeline needs to
// reassemble and type-check the array on decode.
type ArrayRefEntry struct {
	ElementOffset  uint64           // byte offset 0-7, element index within the block
	LengthElements uint64           // byte offset 8-15
	BlockID        uint32           // byte offset 16-19, index into the container's block directory
	ArrayKind      format.ArrayKind // byte offset 20-23
	Dtype          format.Dtype     // byte offset 24
	// bytes 25-31 are reserved, always zero
}

// Bytes serializes the entry into an ArrayRefEntrySize-byte slice.
func (e ArrayRefEntry) Bytes() []byte {
	b := make([]byte, ArrayRefEntrySize)
	e.WriteToSlice(b)
	return b
}

func (e ArrayRefEntry) WriteToSlice(dst []byte) {
	engine := endian.GetLittleEndianEngine()

	engine.PutUint64(dst[0:8], e.ElementOffset)
	engine.PutUint64(dst[8:16], e.LengthElements)
	engine.PutUint32(dst[16:20], e.BlockID)
	engine.PutUint32(dst[20:24], uint32(e.ArrayKind))
	dst[24] = uint8(e.Dtype)
	clear(dst[25:32])
}

// ParseArrayRefEntry parses an ArrayRefEntry from the first
// ArrayRefEntrySize bytes of data.
func ParseArrayRefEntry(data []byte) (ArrayRefEntry, error) {
	if len(data) < ArrayRefEntrySize {
		return ArrayRefEntry{}, ErrShortBuffer
	}

	engine := endian.GetLittleEndianEngine()

	return ArrayRefEntry{
		ElementOffset:  engine.Uint64(data[0:8]),
		LengthElements: engine.Uint64(data[8:16]),
		BlockID:        engine.Uint32(data[16:20]),
		ArrayKind:      format.ArrayKind(engine.Uint32(data[20:24])),
		Dtype:          format.Dtype(data[24]),
	}, nil
}

// WriteItemDirEntries serializes an A0/B0 table in order.
func WriteItemDirEntries(entries []ItemDirEntry) []byte {
	out := make([]byte, len(entries)*ItemDirEntrySize)
	for i, e := range entries {
		e.WriteToSlice(out[i*ItemDirEntrySize : (i+1)*ItemDirEntrySize])
	}
	return out
}

// ParseItemDirEntries parses an A0/B0 table of count rows from data.
func ParseItemDirEntries(data []byte, count int) ([]ItemDirEntry, error) {
	if len(data) < count*ItemDirEntrySize {
		return nil, ErrShortBuffer
	}

	out := make([]ItemDirEntry, count)
	for i := range out {
		e, err := ParseItemDirEntry(data[i*ItemDirEntrySize:])
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// WriteArrayRefEntries serializes an A1/B1 table in order.
func WriteArrayRefEntries(entries []ArrayRefEntry) []byte {
	out := make([]byte, len(entries)*ArrayRefEntrySize)
	for i, e := range entries {
		e.WriteToSlice(out[i*ArrayRefEntrySize : (i+1)*ArrayRefEntrySize])
	}
	return out
}

// ParseArrayRefEntries parses an A1/B1 table of count rows from data.
func ParseArrayRefEntries(data []byte, count int) ([]ArrayRefEntry, error) {
	if len(data) < count*ArrayRefEntrySize {
		return nil, ErrShortBuffer
	}

	out := make([]ArrayRefEntry, count)
	for i := range out {
		e, err := ParseArrayRefEntry(data[i*ArrayRefEntrySize:])
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
