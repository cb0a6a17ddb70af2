// Package section defines the fixed-size wire records of the B000
// container: the 512-byte header, the 8-byte trailer, the block directory
// entry (§3), and the per-item array-reference tables A0/A1/B0/B1 (§4.8).
package section

// Signature is the file's first four bytes (spec §4.9/§6).
var Signature = [4]byte{'B', '0', '0', '0'}

// Trailer is the sentinel that ends every completed B000 file (spec §4.9/§8).
var Trailer = [8]byte{'E', 'N', 'D', 0, 0, 0, 0, 0}

const (
	// HeaderSize is the fixed, zero-padded header size in bytes.
	HeaderSize = 512

	// TrailerSize is the fixed trailer size in bytes.
	TrailerSize = 8

	// BlockDirEntrySize is the on-disk size of one BlockDirEntry (§3).
	BlockDirEntrySize = 32

	// ArrayRefEntrySize is the on-disk size of one A1/B1 row (§4.8).
	ArrayRefEntrySize = 32

	// ItemDirEntrySize is the on-disk size of one A0/B0 row (§4.8).
	ItemDirEntrySize = 16

	// SectionCountsSize is the on-disk size of one SectionCounts record.
	SectionCountsSize = 16

	// Alignment all multi-byte sections start on, within the file (spec §4.9).
	Alignment = 8
)

// AlignUp rounds n up to the next multiple of Alignment.
func AlignUp(n int64) int64 {
	rem := n % Alignment
	if rem == 0 {
		return n
	}

	return n + (Alignment - rem)
}

// EndiannessLittle is the only valid value of the header's endianness flag.
const EndiannessLittle = 0
