package section

import "bytes"

// ValidTrailer reports whether the final TrailerSize bytes of a file match
// Trailer. The CLI's skip/rewrite policy (spec §6) uses this to decide
// whether an existing output file is a complete, trustworthy conversion or
// a truncated one that should be overwritten.
func ValidTrailer(tail []byte) bool {
	if len(tail) < TrailerSize {
		return false
	}

	return bytes.Equal(tail[len(tail)-TrailerSize:], Trailer[:])
}
