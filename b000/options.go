package b000

import (
	"github.com/b000io/b000/cvnames"
	"github.com/b000io/b000/format"
)

// DefaultTargetBlockBytes is the container's default uncompressed block
// size (64 MiB, §4.1).
const DefaultTargetBlockBytes = 64 << 20

// EncodeOptions configures Encode. This format's encode-time configuration
// surface is small enough (a level, a boolean, a block size) that it is a
// plain struct rather than a generic functional-options builder — see
// DESIGN.md's note on the dropped internal/options package.
type EncodeOptions struct {
	// Level is the zstd compression level (0 = store uncompressed, 1..22 =
	// increasing compression). Zero value means CompressionNone.
	Level uint8
	// F32Compress downcasts m/z, intensity, and time arrays to f32 even
	// when the source declares f64 (§4.8).
	F32Compress bool
	// ArrayFilter selects the container's per-block byte filter.
	ArrayFilter format.ArrayFilter
	// TargetBlockBytes caps each container block's uncompressed size
	// before it seals and a new one opens (§4.1). Zero means
	// DefaultTargetBlockBytes.
	TargetBlockBytes int
}

func (o EncodeOptions) targetBlockBytes() int {
	if o.TargetBlockBytes <= 0 {
		return DefaultTargetBlockBytes
	}
	return o.TargetBlockBytes
}

func (o EncodeOptions) codec() format.CompressionCodec {
	if o.Level == 0 {
		return format.CompressionNone
	}
	return format.CompressionZstd
}

// DefaultEncodeOptions returns the codec's default encode policy: zstd
// level 3, byte-shuffle filtering, no f32 downcast.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		Level:            3,
		F32Compress:      false,
		ArrayFilter:      format.ArrayFilterByteShuffle,
		TargetBlockBytes: DefaultTargetBlockBytes,
	}
}

// DecodeOptions configures Decode.
type DecodeOptions struct {
	// Names resolves accession -> CV term name for reconstructed CvParams.
	// Defaults to cvnames.NewStatic() when nil.
	Names cvnames.Table
}

func (o DecodeOptions) names() cvnames.Table {
	if o.Names == nil {
		return cvnames.NewStatic()
	}
	return o.Names
}
