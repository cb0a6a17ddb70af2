// Package pool provides pooled byte buffers for the encode path.
//
// The metadata packer and the block container both build up large
// append-only byte buffers (one per variable-length value column of a
// metadata section, one per open element-size bucket) that are thrown away once sealed into the output.
// Pooling avoids repeated large allocations across many Encode calls.
package pool

import (
	"io"
	"sync"
)

// Default and max-retained sizes for the two buffer classes this codec pools.
const (
	RowBufferDefaultSize  = 1024 * 16       // 16KiB, metadata row columns
	RowBufferMaxThreshold = 1024 * 128      // 128KiB
	BlockBufferDefaultSize  = 1024 * 1024     // 1MiB, container bucket payloads
	BlockBufferMaxThreshold = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is a growable byte slice with an amortized growth strategy
// tuned for repeated append-only writes followed by a single read of Bytes().
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer but keeps the allocated backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the buffer's backing capacity.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Slice returns B[start:end]; panics on out-of-range indices.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("pool: Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets len(B) to n without touching the backing array.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("pool: SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend grows len(B) by n if capacity already allows it, reporting whether it did.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer by n bytes, reallocating if needed.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow ensures the buffer can accept requiredBytes more bytes without
// reallocating again soon: small buffers grow by a fixed chunk, larger ones
// by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := RowBufferDefaultSize
	if cap(bb.B) > 4*RowBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo implements io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffers of a given default size, discarding
// buffers that grew past maxThreshold instead of retaining them.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a buffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a buffer to the pool, discarding it if it grew too large.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	rowPool   = NewByteBufferPool(RowBufferDefaultSize, RowBufferMaxThreshold)
	blockPool = NewByteBufferPool(BlockBufferDefaultSize, BlockBufferMaxThreshold)
)

// GetRowBuffer retrieves a buffer sized for a metadata column writer.
func GetRowBuffer() *ByteBuffer { return rowPool.Get() }

// PutRowBuffer returns a metadata column buffer to its pool.
func PutRowBuffer(bb *ByteBuffer) { rowPool.Put(bb) }

// GetBlockBuffer retrieves a buffer sized for a container element-size bucket.
func GetBlockBuffer() *ByteBuffer { return blockPool.Get() }

// PutBlockBuffer returns a container bucket buffer to its pool.
func PutBlockBuffer(bb *ByteBuffer) { blockPool.Put(bb) }
