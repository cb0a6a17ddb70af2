// Package cvcode implements the accession string <-> (cv-ref code, numeric
// tail) conversion the metadata packer uses to store CV/unit references as
// a one-byte code plus a uint32 instead of a string (spec §4.5). Grounded on
// the original implementation's cv_ref_from_code/make_accession/
// parse_acc_tail (utilities/decode.rs) and the CV_CODE_* constants
// (mzml/cv_table.rs).
package cvcode

import (
	"strconv"
	"strings"

	"github.com/b000io/b000/format"
)

// FromPrefix maps an accession's ontology prefix ("MS", "UO", "NCIT",
// "PEFF", "ATTR") to its wire cv-ref code, defaulting to CvRefOther for
// anything else (including an empty prefix).
func FromPrefix(prefix string) format.CvRef {
	switch prefix {
	case "MS":
		return format.CvRefMS
	case "UO":
		return format.CvRefUO
	case "NCIT":
		return format.CvRefNCIT
	case "PEFF":
		return format.CvRefPEFF
	case "ATTR":
		return format.CvRefAttr
	default:
		return format.CvRefOther
	}
}

// Prefix is the inverse of FromPrefix; CvRefOther has no canonical prefix
// string and returns "".
func Prefix(ref format.CvRef) string {
	switch ref {
	case format.CvRefMS:
		return "MS"
	case format.CvRefUO:
		return "UO"
	case format.CvRefNCIT:
		return "NCIT"
	case format.CvRefPEFF:
		return "PEFF"
	case format.CvRefAttr:
		return "ATTR"
	default:
		return ""
	}
}

// ParseAccession splits a "PREFIX:NNNNNNN" (or NCIT's "NCIT:CNNNNN")
// accession string into its cv-ref code and numeric tail. A missing or
// unparseable numeric component yields tail 0, matching the original
// implementation's parse_acc_tail (digits-only scan, overflow saturates to
// 0 rather than erroring).
func ParseAccession(accession string) (format.CvRef, uint32) {
	prefix, tail := splitAccession(accession)
	return FromPrefix(prefix), parseTail(tail)
}

// splitAccession returns the text before and after the last ':' in s; if
// there is no ':', the prefix is empty and tail is all of s.
func splitAccession(s string) (prefix, tail string) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return "", s
	}
	return s[:i], s[i+1:]
}

// parseTail extracts the decimal digits from s (skipping any non-digit
// bytes, e.g. NCIT's leading "C") and parses them as a uint32, saturating
// to 0 on overflow or if no digit was seen.
func parseTail(s string) uint32 {
	var digits strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits.WriteByte(s[i])
		}
	}

	if digits.Len() == 0 {
		return 0
	}

	v, err := strconv.ParseUint(digits.String(), 10, 32)
	if err != nil {
		return 0
	}

	return uint32(v)
}

// FormatAccession renders a cv-ref code and numeric tail back into an
// accession string. MS/UO/PEFF/ATTR use a 7-digit zero-padded tail; NCIT
// uses its own "CNNNNN" 5-digit tail convention.
//
// tail == 0 means ParseAccession couldn't extract a numeric tail from the
// original accession (§4.5: "signaling 'not an accession'"); in that case
// the caller's raw, opaque accession string is returned instead of being
// dropped (§4.7: "unknown accession tails preserved as opaque strings").
// fallback should be "" when no such row was carried, which reproduces the
// old "no accession" behavior.
func FormatAccession(ref format.CvRef, tail uint32, fallback string) string {
	if tail == 0 {
		return fallback
	}

	switch ref {
	case format.CvRefNCIT:
		return "NCIT:C" + zeroPad(tail, 5)
	case format.CvRefMS, format.CvRefUO, format.CvRefPEFF, format.CvRefAttr:
		return Prefix(ref) + ":" + zeroPad(tail, 7)
	default:
		return strconv.FormatUint(uint64(tail), 10)
	}
}

func zeroPad(v uint32, width int) string {
	s := strconv.FormatUint(uint64(v), 10)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
