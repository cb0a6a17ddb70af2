package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor compresses/decompresses section and block payloads with
// zstd at a caller-chosen level (0..=22, where 0 means "do not call this
// codec at all" — the container and metadata packer special-case level 0
// as a byte-identical store, per spec §4.2).
type ZstdCompressor struct {
	level zstd.EncoderLevel
}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a zstd compressor at the library's default
// speed/ratio tradeoff. Use NewZstdCompressorLevel for an explicit level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{level: zstd.SpeedDefault}
}

// NewZstdCompressorLevel maps a 0..22 zstd level (as carried in the B000
// header) onto the klauspost/compress encoder level presets.
func NewZstdCompressorLevel(level int) ZstdCompressor {
	switch {
	case level <= 1:
		return ZstdCompressor{level: zstd.SpeedFastest}
	case level <= 9:
		return ZstdCompressor{level: zstd.SpeedDefault}
	case level <= 15:
		return ZstdCompressor{level: zstd.SpeedBetterCompression}
	default:
		return ZstdCompressor{level: zstd.SpeedBestCompression}
	}
}

// zstdDecoderPool pools zstd decoders; klauspost's decoder is explicitly
// designed to run allocation-free after warmup when reused across calls.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd decoder: %v", err))
		}
		return dec
	},
}

type pooledEncoder struct {
	enc   *zstd.Encoder
	level zstd.EncoderLevel
}

var zstdEncoderPools sync.Map // zstd.EncoderLevel -> *sync.Pool

func encoderPool(level zstd.EncoderLevel) *sync.Pool {
	if p, ok := zstdEncoderPools.Load(level); ok {
		return p.(*sync.Pool)
	}

	p := &sync.Pool{
		New: func() any {
			enc, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(level),
				zstd.WithEncoderCRC(false),
			)
			if err != nil {
				panic(fmt.Sprintf("compress: failed to create zstd encoder: %v", err))
			}
			return enc
		},
	}
	actual, _ := zstdEncoderPools.LoadOrStore(level, p)
	return actual.(*sync.Pool)
}

// Compress compresses data with the configured level using a pooled encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	pool := encoderPool(c.level)
	enc := pool.Get().(*zstd.Encoder)
	defer pool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// Decompress decompresses zstd-compressed data. On failure it retries after
// trimming up to 7 trailing zero bytes, to tolerate 8-byte alignment
// padding a writer may have left at the end of a section (spec §4.2).
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err == nil {
		return out, nil
	}

	for trim := 1; trim <= 7 && trim < len(data); trim++ {
		if data[len(data)-trim] != 0 {
			break
		}

		out, retryErr := dec.DecodeAll(data[:len(data)-trim], nil)
		if retryErr == nil {
			return out, nil
		}
	}

	return nil, fmt.Errorf("compress: zstd decompression failed: %w", err)
}
