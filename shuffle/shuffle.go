// Package shuffle implements the byte-shuffle filter used by the block
// container to improve zstd's compression ratio on arrays of fixed-width
// floats and integers (spec §4.1).
//
// Shuffle transposes a stream of N/elemSize elements so that byte k of every
// element is contiguous: byte i of element e moves from i + e*elemSize to
// i*count + e, where count = N/elemSize. Unshuffle reverses it. The
// transform is used only when the container's compression level is above 0
// and elemSize > 1.
package shuffle

// Shuffle transposes src (length must be a multiple of elemSize) into dst.
// src and dst must be the same length and must not overlap.
func Shuffle(dst, src []byte, elemSize int) {
	mustMatch(dst, src, elemSize)

	switch elemSize {
	case 4:
		shuffle4(dst, src)
	case 8:
		shuffle8(dst, src)
	default:
		shuffleGeneric(dst, src, elemSize)
	}
}

// Unshuffle reverses Shuffle.
func Unshuffle(dst, src []byte, elemSize int) {
	mustMatch(dst, src, elemSize)

	switch elemSize {
	case 4:
		unshuffle4(dst, src)
	case 8:
		unshuffle8(dst, src)
	default:
		unshuffleGeneric(dst, src, elemSize)
	}
}

func mustMatch(dst, src []byte, elemSize int) {
	if elemSize <= 0 {
		panic("shuffle: elemSize must be positive")
	}
	if len(dst) != len(src) {
		panic("shuffle: dst/src length mismatch")
	}
	if len(src)%elemSize != 0 {
		panic("shuffle: length not a multiple of elemSize")
	}
}

func shuffleGeneric(dst, src []byte, elemSize int) {
	count := len(src) / elemSize
	for b := 0; b < elemSize; b++ {
		base := b * count
		for e := 0; e < count; e++ {
			dst[base+e] = src[e*elemSize+b]
		}
	}
}

func unshuffleGeneric(dst, src []byte, elemSize int) {
	count := len(src) / elemSize
	for b := 0; b < elemSize; b++ {
		base := b * count
		for e := 0; e < count; e++ {
			dst[e*elemSize+b] = src[base+e]
		}
	}
}

func shuffle4(dst, src []byte) {
	n := len(src) / 4
	b0, b1, b2, b3 := dst[:n], dst[n:2*n], dst[2*n:3*n], dst[3*n:4*n]
	for i := 0; i < n; i++ {
		o := i * 4
		b0[i] = src[o]
		b1[i] = src[o+1]
		b2[i] = src[o+2]
		b3[i] = src[o+3]
	}
}

func unshuffle4(dst, src []byte) {
	n := len(src) / 4
	b0, b1, b2, b3 := src[:n], src[n:2*n], src[2*n:3*n], src[3*n:4*n]
	for i := 0; i < n; i++ {
		o := i * 4
		dst[o] = b0[i]
		dst[o+1] = b1[i]
		dst[o+2] = b2[i]
		dst[o+3] = b3[i]
	}
}

func shuffle8(dst, src []byte) {
	n := len(src) / 8
	b0, b1, b2, b3 := dst[:n], dst[n:2*n], dst[2*n:3*n], dst[3*n:4*n]
	b4, b5, b6, b7 := dst[4*n:5*n], dst[5*n:6*n], dst[6*n:7*n], dst[7*n:8*n]
	for i := 0; i < n; i++ {
		o := i * 8
		b0[i] = src[o]
		b1[i] = src[o+1]
		b2[i] = src[o+2]
		b3[i] = src[o+3]
		b4[i] = src[o+4]
		b5[i] = src[o+5]
		b6[i] = src[o+6]
		b7[i] = src[o+7]
	}
}

func unshuffle8(dst, src []byte) {
	n := len(src) / 8
	b0, b1, b2, b3 := src[:n], src[n:2*n], src[2*n:3*n], src[3*n:4*n]
	b4, b5, b6, b7 := src[4*n:5*n], src[5*n:6*n], src[6*n:7*n], src[7*n:8*n]
	for i := 0; i < n; i++ {
		o := i * 8
		dst[o] = b0[i]
		dst[o+1] = b1[i]
		dst[o+2] = b2[i]
		dst[o+3] = b3[i]
		dst[o+4] = b4[i]
		dst[o+5] = b5[i]
		dst[o+6] = b6[i]
		dst[o+7] = b7[i]
	}
}
