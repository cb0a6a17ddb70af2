// Package compress implements the B000 compression codec (spec §4.2): zstd
// at a configurable level, with level 0 meaning store-uncompressed, and a
// padding-tolerant decompress that retries after trimming up to 7 trailing
// zero bytes (writers may leave 8-byte alignment padding behind).
package compress

import (
	"fmt"

	"github.com/b000io/b000/format"
)

// Compressor compresses a byte payload. The returned slice is newly
// allocated; the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte payload previously produced by the
// matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the Codec for a file-level compression codec id.
func CreateCodec(codec format.CompressionCodec) (Codec, error) {
	switch codec {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("compress: unsupported compression codec id %d", codec)
	}
}
