package container

import (
	"github.com/b000io/b000/compress"
	"github.com/b000io/b000/errs"
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/section"
	"github.com/b000io/b000/shuffle"
)

// Reader decodes a container built by Builder: it parses the block
// directory up front and decompresses/unshuffles blocks lazily, on first
// access, caching the result for the lifetime of the Reader. Each Reader is
// scoped to one element-width family of blocks at a time the way the
// original implementation's ContainerView is — the first read of a given
// block pins the element size used to unshuffle it, and a later read of the
// same block at a different element size is a format error (spec §7,
// ElementSizeConflict), not silently re-decoded.
type Reader struct {
	data    []byte
	dirSize int
	entries []section.BlockDirEntry

	cache          map[uint32][]byte
	blockElemSizes map[uint32]int

	level       uint8
	arrayFilter format.ArrayFilter
	codec       compress.Codec
}

// NewReader parses a container's block directory. data is the full
// container payload (directory followed by compressed block bytes) as
// stored in one of the file's two container sections.
func NewReader(data []byte, blockCount uint32, level uint8, arrayFilter format.ArrayFilter) (*Reader, error) {
	dirSize := int(blockCount) * section.BlockDirEntrySize
	if len(data) < dirSize {
		return nil, errs.New(errs.KindBlockLayoutInconsistent, "directory_size", len(data), dirSize)
	}

	entries := make([]section.BlockDirEntry, blockCount)
	for i := range entries {
		e, err := section.ParseBlockDirEntry(data[i*section.BlockDirEntrySize:])
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	var codec compress.Codec
	if level == 0 {
		codec = compress.NewNoOpCompressor()
	} else {
		codec = compress.NewZstdCompressor()
	}

	return &Reader{
		data:           data,
		dirSize:        dirSize,
		entries:        entries,
		cache:          make(map[uint32][]byte),
		blockElemSizes: make(map[uint32]int),
		level:          level,
		arrayFilter:    arrayFilter,
		codec:          codec,
	}, nil
}

// BlockCount returns the number of blocks in the directory.
func (r *Reader) BlockCount() int { return len(r.entries) }

func (r *Reader) ensureBlockLoaded(idx uint32, elemSize int) error {
	if int(idx) >= len(r.entries) {
		return errs.New(errs.KindSectionOutOfRange, "block_index", idx, len(r.entries))
	}

	if elemSize < 1 {
		elemSize = 1
	}

	needsUnshuffle := r.arrayFilter == format.ArrayFilterByteShuffle && elemSize > 1
	if needsUnshuffle {
		prev, seen := r.blockElemSizes[idx]
		switch {
		case !seen:
			r.blockElemSizes[idx] = elemSize
		case prev != elemSize:
			return errs.New(errs.KindElementSizeConflict, "block_index", elemSize, prev)
		}
	}

	if _, ok := r.cache[idx]; ok {
		return nil
	}

	entry := r.entries[idx]
	start := r.dirSize + int(entry.PayloadOffset)
	end := start + int(entry.PayloadSize)
	if end > len(r.data) || start < r.dirSize {
		return errs.New(errs.KindSectionOutOfRange, "block_payload", end, len(r.data))
	}

	stored := r.data[start:end]

	if r.level == 0 && !needsUnshuffle {
		if uint64(len(stored)) != entry.UncompressedLenBytes {
			return errs.New(errs.KindBlockLayoutInconsistent, "block_size", len(stored), entry.UncompressedLenBytes)
		}
		r.cache[idx] = stored
		return nil
	}

	raw := stored
	if r.level != 0 {
		var err error
		raw, err = r.codec.Decompress(stored)
		if err != nil {
			return errs.New(errs.KindDecompressionFailed, "block_index", idx, nil)
		}
	}

	if uint64(len(raw)) != entry.UncompressedLenBytes {
		return errs.New(errs.KindBlockLayoutInconsistent, "block_size", len(raw), entry.UncompressedLenBytes)
	}

	if needsUnshuffle {
		out := make([]byte, len(raw))
		shuffle.Unshuffle(out, raw, elemSize)
		raw = out
	}

	r.cache[idx] = raw

	return nil
}

// GetBlockBytes returns the fully decoded bytes of block idx, decoding it
// on first access.
func (r *Reader) GetBlockBytes(idx uint32, elemSize int) ([]byte, error) {
	if err := r.ensureBlockLoaded(idx, elemSize); err != nil {
		return nil, err
	}
	return r.cache[idx], nil
}

// GetItem returns the elementOffset..elementOffset+lengthElements slice of
// block idx's decoded element stream.
func (r *Reader) GetItem(idx uint32, elementOffset, lengthElements uint64, elemSize int) ([]byte, error) {
	if err := r.ensureBlockLoaded(idx, elemSize); err != nil {
		return nil, err
	}

	if elemSize < 1 {
		elemSize = 1
	}

	byteOff := elementOffset * uint64(elemSize)
	byteLen := lengthElements * uint64(elemSize)
	byteEnd := byteOff + byteLen

	block := r.cache[idx]
	if byteEnd > uint64(len(block)) {
		return nil, errs.New(errs.KindSectionOutOfRange, "item_slice", byteEnd, len(block))
	}

	return block[byteOff:byteEnd], nil
}
