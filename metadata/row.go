package metadata

import (
	"math"
	"strconv"

	"github.com/b000io/b000/format"
)

// Row is one attributed metadata row: a structural attribute, CV param, or
// user param belonging to some flattened document element (spec §4.6).
type Row struct {
	OwnerID  uint32
	ParentID uint32

	Tag format.TagID

	CvRef         format.CvRef
	AccessionTail uint32
	// AccessionText carries the original accession string verbatim when it
	// failed to parse into a nonzero tail (§4.5's "overflow returns 0,
	// signaling 'not an accession'"); empty whenever AccessionTail != 0 or
	// no accession was given at all. This is what lets the reconstructor
	// preserve an opaque, non-"PREFIX:NNNNNNN" accession instead of
	// collapsing it to "" (§4.7's "unknown accession tails preserved as
	// opaque strings").
	AccessionText string

	UnitCvRef         format.CvRef
	UnitAccessionTail uint32
	// UnitAccessionText is AccessionText's counterpart for UnitAccession.
	UnitAccessionText string

	Kind   format.ValueKind
	Number float64
	Text   string
}

// ClassifyValue implements the packer's value classification rule (spec
// §4.4): an empty string packs as Empty; a string that parses as a finite
// float64 packs as Number; anything else packs as Text.
func ClassifyValue(s string) (kind format.ValueKind, number float64, text string) {
	if s == "" {
		return format.ValueEmpty, 0, ""
	}

	f, err := strconv.ParseFloat(s, 64)
	if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return format.ValueNumber, f, ""
	}

	return format.ValueText, 0, s
}

// FormatValue is the inverse of ClassifyValue, rendering a row's packed
// value back into the string form mzML CvParam/UserParam.value expects.
func FormatValue(kind format.ValueKind, number float64, text string) string {
	switch kind {
	case format.ValueNumber:
		return strconv.FormatFloat(number, 'g', -1, 64)
	case format.ValueText:
		return text
	default:
		return ""
	}
}
