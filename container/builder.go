package container

import (
	"sort"

	"github.com/b000io/b000/compress"
	"github.com/b000io/b000/internal/pool"
	"github.com/b000io/b000/section"
	"github.com/b000io/b000/shuffle"
)

type box struct {
	blockIndex int32 // -1 means no block currently open for this element size
	buf        *pool.ByteBuffer
}

// Builder packs append-only items of known element width into zero or more
// compressed, directory-indexed blocks (spec §4.1). Items of the same
// element size share one open block (a "box") until it would overflow
// targetBlockBytes, at which point it seals and a fresh one opens. An item
// bigger than targetBlockBytes on its own bypasses bucketing and gets an
// isolated block immediately.
type Builder struct {
	targetBlockBytes int
	level            uint8
	shuffle          bool
	codec            compress.Codec

	boxes   map[int]*box
	entries []section.BlockDirEntry
	payload []byte
	scratch []byte
}

// NewBuilder creates a Builder. level is the file's zstd compression level
// (0 means store blocks uncompressed); doShuffle applies the byte-shuffle
// filter to each block before compression when its element size is > 1.
func NewBuilder(targetBlockBytes int, level uint8, doShuffle bool) *Builder {
	var codec compress.Codec
	if level == 0 {
		codec = compress.NewNoOpCompressor()
	} else {
		codec = compress.NewZstdCompressorLevel(int(level))
	}

	return &Builder{
		targetBlockBytes: targetBlockBytes,
		level:            level,
		shuffle:          doShuffle,
		codec:            codec,
		boxes:            make(map[int]*box),
	}
}

func (b *Builder) getOrCreateBox(elemSize int) *box {
	bx, ok := b.boxes[elemSize]
	if !ok {
		bx = &box{blockIndex: -1, buf: pool.GetBlockBuffer()}
		b.boxes[elemSize] = bx
	}
	return bx
}

// AddItem appends data (a sequence of elemSize-byte elements) to the
// builder, returning the block id and the element offset within that block
// at which it was written. elemSize < 1 is treated as 1 (opaque bytes).
func (b *Builder) AddItem(data []byte, elemSize int) (blockID uint32, elementOffset uint64, err error) {
	if elemSize < 1 {
		elemSize = 1
	}

	itemBytes := len(data)

	if itemBytes > b.targetBlockBytes {
		if err := b.sealBox(elemSize); err != nil {
			return 0, 0, err
		}

		bx := b.getOrCreateBox(elemSize)
		idx := uint32(len(b.entries))
		b.entries = append(b.entries, section.BlockDirEntry{})
		bx.blockIndex = int32(idx)
		bx.buf.MustWrite(data)

		if err := b.sealBox(elemSize); err != nil {
			return 0, 0, err
		}

		return idx, 0, nil
	}

	if err := b.ensureBoxHasSpace(itemBytes, elemSize); err != nil {
		return 0, 0, err
	}

	bx := b.getOrCreateBox(elemSize)
	if bx.blockIndex < 0 {
		idx := uint32(len(b.entries))
		b.entries = append(b.entries, section.BlockDirEntry{})
		bx.blockIndex = int32(idx)
	}

	elementOffset = uint64(bx.buf.Len() / elemSize)
	bx.buf.MustWrite(data)

	return uint32(bx.blockIndex), elementOffset, nil
}

func (b *Builder) ensureBoxHasSpace(itemBytes, elemSize int) error {
	bx, ok := b.boxes[elemSize]
	if !ok || bx.buf.Len() == 0 {
		return nil
	}

	if bx.buf.Len()+itemBytes > b.targetBlockBytes {
		return b.sealBox(elemSize)
	}

	return nil
}

func (b *Builder) sealBox(elemSize int) error {
	bx, ok := b.boxes[elemSize]
	if !ok || bx.blockIndex < 0 {
		return nil
	}

	if bx.buf.Len() == 0 {
		bx.blockIndex = -1
		return nil
	}

	uncompressedLen := uint64(bx.buf.Len())
	payloadOffset := uint64(len(b.payload))

	if b.level == 0 {
		b.entries[bx.blockIndex] = section.BlockDirEntry{
			PayloadOffset:        payloadOffset,
			PayloadSize:          uncompressedLen,
			UncompressedLenBytes: uncompressedLen,
		}
		b.payload = append(b.payload, bx.buf.Bytes()...)
		bx.buf.Reset()
		bx.blockIndex = -1
		return nil
	}

	uncompressed := bx.buf.Bytes()
	if b.shuffle && elemSize > 1 {
		if cap(b.scratch) < len(uncompressed) {
			b.scratch = make([]byte, len(uncompressed))
		} else {
			b.scratch = b.scratch[:len(uncompressed)]
		}
		shuffle.Shuffle(b.scratch, uncompressed, elemSize)
		uncompressed = b.scratch
	}

	compressed, err := b.codec.Compress(uncompressed)
	if err != nil {
		return err
	}

	b.entries[bx.blockIndex] = section.BlockDirEntry{
		PayloadOffset:        payloadOffset,
		PayloadSize:          uint64(len(compressed)),
		UncompressedLenBytes: uncompressedLen,
	}
	b.payload = append(b.payload, compressed...)
	bx.buf.Reset()
	bx.blockIndex = -1

	return nil
}

// Pack seals every remaining open box (in ascending block-id order, so the
// directory stays stable regardless of map iteration order) and returns the
// final container bytes — directory followed by payload — and block count.
func (b *Builder) Pack() ([]byte, uint32, error) {
	type openBox struct {
		blockIdx uint32
		elemSize int
	}

	var open []openBox
	for elemSize, bx := range b.boxes {
		if bx.blockIndex >= 0 {
			open = append(open, openBox{blockIdx: uint32(bx.blockIndex), elemSize: elemSize})
		}
	}

	sort.Slice(open, func(i, j int) bool { return open[i].blockIdx < open[j].blockIdx })

	for _, ob := range open {
		if err := b.sealBox(ob.elemSize); err != nil {
			return nil, 0, err
		}
	}

	blockCount := uint32(len(b.entries))
	dirSize := len(b.entries) * section.BlockDirEntrySize

	out := make([]byte, dirSize+len(b.payload))
	for i, e := range b.entries {
		e.WriteToSlice(out[i*section.BlockDirEntrySize : (i+1)*section.BlockDirEntrySize])
	}
	copy(out[dirSize:], b.payload)

	for _, bx := range b.boxes {
		pool.PutBlockBuffer(bx.buf)
		bx.buf = nil
	}

	return out, blockCount, nil
}
