package arrays

import (
	"github.com/b000io/b000/container"
	"github.com/b000io/b000/cvcode"
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/mzml"
	"github.com/b000io/b000/section"
)

// ArrayKindOf classifies a BinaryDataArray by scanning its CV params for an
// m/z, intensity, or time accession tail (§4.8); anything else reports
// ArrayKindOther.
func ArrayKindOf(params []mzml.CvParam) format.ArrayKind {
	for _, p := range params {
		_, tail := cvcode.ParseAccession(p.Accession)
		switch format.ArrayKind(tail) {
		case format.ArrayKindMZ, format.ArrayKindIntensity, format.ArrayKindTime:
			return format.ArrayKind(tail)
		}
	}
	return format.ArrayKindOther
}

// AddArray encodes one BinaryDataArray's payload into builder and returns
// the ArrayRefEntry ("A1"/"B1" row) describing where it landed.
func AddArray(builder *container.Builder, kind format.ArrayKind, p mzml.Payload, f32Compress bool) (section.ArrayRefEntry, error) {
	dtype := SelectDtype(p, kind, f32Compress)

	data, err := EncodeArray(dtype, p)
	if err != nil {
		return section.ArrayRefEntry{}, err
	}

	elemSize := dtype.ElemSize()
	blockID, elementOffset, err := builder.AddItem(data, elemSize)
	if err != nil {
		return section.ArrayRefEntry{}, err
	}

	return section.ArrayRefEntry{
		ElementOffset:  elementOffset,
		LengthElements: uint64(len(data) / elemSize),
		BlockID:        blockID,
		ArrayKind:      kind,
		Dtype:          dtype,
	}, nil
}

// EncodeItems encodes every item's BinaryDataArray list into builder,
// returning the per-item directory rows ("A0"/"B0") and the flattened
// array-ref rows ("A1"/"B1") in item order.
func EncodeItems(builder *container.Builder, items [][]mzml.BinaryDataArray, f32Compress bool) ([]section.ItemDirEntry, []section.ArrayRefEntry, error) {
	var dir []section.ItemDirEntry
	var refs []section.ArrayRefEntry

	for _, arrays := range items {
		start := len(refs)
		for _, a := range arrays {
			kind := ArrayKindOf(a.CvParams)
			entry, err := AddArray(builder, kind, a.Payload, f32Compress)
			if err != nil {
				return nil, nil, err
			}
			refs = append(refs, entry)
		}
		dir = append(dir, section.ItemDirEntry{A1Start: uint64(start), A1Count: uint64(len(arrays))})
	}

	return dir, refs, nil
}

// GetArray decodes the payload ref points at from reader.
func GetArray(reader *container.Reader, ref section.ArrayRefEntry) (mzml.Payload, error) {
	data, err := reader.GetItem(ref.BlockID, ref.ElementOffset, ref.LengthElements, ref.Dtype.ElemSize())
	if err != nil {
		return mzml.Payload{}, err
	}
	return DecodeArray(ref.Dtype, data)
}

// DecodeItem decodes every array ref in dir's window of refs, in order.
func DecodeItem(reader *container.Reader, dir section.ItemDirEntry, refs []section.ArrayRefEntry) ([]mzml.Payload, error) {
	out := make([]mzml.Payload, 0, dir.A1Count)
	for i := uint64(0); i < dir.A1Count; i++ {
		ref := refs[dir.A1Start+i]
		p, err := GetArray(reader, ref)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

var numericTypeAccessions = map[format.Dtype]struct {
	accession string
	name      string
}{
	format.DtypeF64: {"MS:1000523", "64-bit float"},
	format.DtypeF32: {"MS:1000521", "32-bit float"},
	format.DtypeF16: {"MS:1000520", "16-bit float"},
	format.DtypeI64: {"MS:1000522", "64-bit integer"},
}

var allNumericTypeAccessions = map[string]bool{
	"MS:1000523": true,
	"MS:1000521": true,
	"MS:1000520": true,
	"MS:1000522": true,
}

// EnsureNumericTypeParam replaces any numeric-type CV param in params with
// the single canonical one matching dtype, inserting it if none was present
// (§4.8's decode-time consistency guarantee). Dtypes with no dedicated
// mzML numeric-type accession (i16, i32) leave params untouched.
//
// The replacement happens in place at the position of the first numeric-type
// param found (appending instead would reorder params and break the
// idempotent-re-encode property, since the flattener records CvParams in
// their given order); any later numeric-type duplicates are dropped.
func EnsureNumericTypeParam(params []mzml.CvParam, dtype format.Dtype) []mzml.CvParam {
	canonical, ok := numericTypeAccessions[dtype]
	if !ok {
		return params
	}

	replacement := mzml.CvParam{CvRef: "MS", Accession: canonical.accession, Name: canonical.name}

	out := make([]mzml.CvParam, 0, len(params)+1)
	inserted := false
	for _, p := range params {
		if allNumericTypeAccessions[p.Accession] {
			if !inserted {
				out = append(out, replacement)
				inserted = true
			}
			continue
		}
		out = append(out, p)
	}
	if !inserted {
		out = append(out, replacement)
	}

	return out
}
