package section

import "github.com/b000io/b000/endian"

// BlockDirEntry is one row of a container's block directory (spec §3),
// grounded on the original implementation's ContainerBuilder block index:
// the byte range a compressed block occupies within the container payload,
// plus the uncompressed length the reader must pre-size its scratch buffer
// to before decompressing and unshuffling. The 8 trailing reserved bytes
// are always written as zero and ignored on read, reserved for a future
// per-block checksum.
type BlockDirEntry struct {
	PayloadOffset       uint64 // byte offset 0-7
	PayloadSize         uint64 // byte offset 8-15
	UncompressedLenBytes uint64 // byte offset 16-23
	// bytes 24-31 are reserved, always zero
}

// Bytes serializes the entry into a BlockDirEntrySize-byte slice.
func (e BlockDirEntry) Bytes() []byte {
	b := make([]byte, BlockDirEntrySize)
	e.WriteToSlice(b)
	return b
}

// WriteToSlice writes the entry into dst, which must be at least
// BlockDirEntrySize bytes long.
func (e BlockDirEntry) WriteToSlice(dst []byte) {
	engine := endian.GetLittleEndianEngine()

	engine.PutUint64(dst[0:8], e.PayloadOffset)
	engine.PutUint64(dst[8:16], e.PayloadSize)
	engine.PutUint64(dst[16:24], e.UncompressedLenBytes)
	clear(dst[24:32])
}

// ParseBlockDirEntry parses a BlockDirEntry from the first
// BlockDirEntrySize bytes of data.
func ParseBlockDirEntry(data []byte) (BlockDirEntry, error) {
	if len(data) < BlockDirEntrySize {
		return BlockDirEntry{}, ErrShortBuffer
	}

	engine := endian.GetLittleEndianEngine()

	return BlockDirEntry{
		PayloadOffset:        engine.Uint64(data[0:8]),
		PayloadSize:          engine.Uint64(data[8:16]),
		UncompressedLenBytes: engine.Uint64(data[16:24]),
	}, nil
}
