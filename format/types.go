// Package format defines the small fixed-width enums used throughout the
// B000 wire format: structural tag ids, CV-ref prefix codes, array dtype
// codes, and the container's compression/filter ids.
package format

// TagID discriminates the structural role of a flattened metadata row (§3,
// §4.6). Values are stable across encode/decode and are never renumbered.
type TagID uint8

const (
	TagSpectrum TagID = iota + 1
	TagScan
	TagScanWindow
	TagPrecursor
	TagIsolationWindow
	TagSelectedIon
	TagActivation
	TagProduct
	TagBinaryDataArray
	TagSourceFile
	TagInstrument
	TagComponentSource
	TagComponentAnalyzer
	TagComponentDetector
	TagSoftware
	TagSoftwareParam
	TagDataProcessing
	TagProcessingMethod
	TagScanSettings
	TagTarget
	TagCv
	TagContact
	TagFileContent
	TagReferenceableParamGroup
	TagSample
	TagRun
	TagSourceFileRef
	TagSourceFileRefList
	TagSpectrumList
	TagChromatogramList
	TagPrecursorList
	TagProductList
	TagScanList
	TagSpectrumDescription
	TagBinaryDataArrayList
	TagCvList
	TagChromatogram
	// TagAttribute is the pseudo-tag for structural attribute rows (id,
	// index, name, ...) carried as CV params with CvRefAttr (§4.5).
	TagAttribute
)

func (t TagID) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}

	return "Unknown"
}

var tagNames = map[TagID]string{
	TagSpectrum:                "Spectrum",
	TagScan:                    "Scan",
	TagScanWindow:              "ScanWindow",
	TagPrecursor:               "Precursor",
	TagIsolationWindow:         "IsolationWindow",
	TagSelectedIon:             "SelectedIon",
	TagActivation:              "Activation",
	TagProduct:                 "Product",
	TagBinaryDataArray:         "BinaryDataArray",
	TagSourceFile:              "SourceFile",
	TagInstrument:              "Instrument",
	TagComponentSource:         "ComponentSource",
	TagComponentAnalyzer:       "ComponentAnalyzer",
	TagComponentDetector:       "ComponentDetector",
	TagSoftware:                "Software",
	TagSoftwareParam:           "SoftwareParam",
	TagDataProcessing:          "DataProcessing",
	TagProcessingMethod:        "ProcessingMethod",
	TagScanSettings:            "ScanSettings",
	TagTarget:                  "Target",
	TagCv:                      "Cv",
	TagContact:                 "Contact",
	TagFileContent:             "FileContent",
	TagReferenceableParamGroup: "ReferenceableParamGroup",
	TagSample:                  "Sample",
	TagRun:                     "Run",
	TagSourceFileRef:           "SourceFileRef",
	TagSourceFileRefList:       "SourceFileRefList",
	TagSpectrumList:            "SpectrumList",
	TagChromatogramList:        "ChromatogramList",
	TagPrecursorList:           "PrecursorList",
	TagProductList:             "ProductList",
	TagScanList:                "ScanList",
	TagSpectrumDescription:     "SpectrumDescription",
	TagBinaryDataArrayList:     "BinaryDataArrayList",
	TagCvList:                  "CvList",
	TagChromatogram:            "Chromatogram",
	TagAttribute:               "Attribute",
}

// CvRef identifies the ontology prefix of an accession (§4.5). These codes
// are the wire values of MRI[]/MURI[] in the metadata packer (§4.4).
type CvRef uint8

const (
	CvRefMS   CvRef = 0
	CvRefUO   CvRef = 1
	CvRefNCIT CvRef = 2
	CvRefPEFF CvRef = 3
	// CvRefAttr marks a pseudo-CV-param carrying a structural attribute
	// (id, index, name, ...) rather than a real ontology term (§4.5).
	CvRefAttr  CvRef = 4
	CvRefOther CvRef = 255
)

func (c CvRef) String() string {
	switch c {
	case CvRefMS:
		return "MS"
	case CvRefUO:
		return "UO"
	case CvRefNCIT:
		return "NCIT"
	case CvRefPEFF:
		return "PEFF"
	case CvRefAttr:
		return "ATTR"
	default:
		return "?"
	}
}

// ValueKind classifies a packed CvParam value (VK[] in §4.4).
type ValueKind uint8

const (
	ValueNumber ValueKind = 0
	ValueText   ValueKind = 1
	ValueEmpty  ValueKind = 2
)

// Dtype is the wire code for a binary-data-array element type (§4.8).
type Dtype uint8

const (
	DtypeF64 Dtype = 1
	DtypeF32 Dtype = 2
	DtypeF16 Dtype = 3
	DtypeI16 Dtype = 4
	DtypeI32 Dtype = 5
	DtypeI64 Dtype = 6
)

// ElemSize returns the on-disk element width in bytes for a dtype, or 0 for
// an unrecognized code.
func (d Dtype) ElemSize() int {
	switch d {
	case DtypeF16, DtypeI16:
		return 2
	case DtypeF32, DtypeI32:
		return 4
	case DtypeF64, DtypeI64:
		return 8
	default:
		return 0
	}
}

func (d Dtype) Valid() bool {
	return d >= DtypeF64 && d <= DtypeI64
}

func (d Dtype) String() string {
	switch d {
	case DtypeF64:
		return "f64"
	case DtypeF32:
		return "f32"
	case DtypeF16:
		return "f16"
	case DtypeI16:
		return "i16"
	case DtypeI32:
		return "i32"
	case DtypeI64:
		return "i64"
	default:
		return "unknown"
	}
}

// ArrayKind identifies the special array roles the container's binary-array
// pipeline type-checks (§4.8); any other accession tail is carried through
// untyped (kind 0).
type ArrayKind uint32

const (
	ArrayKindOther     ArrayKind = 0
	ArrayKindMZ        ArrayKind = 1000514
	ArrayKindIntensity ArrayKind = 1000515
	ArrayKindTime      ArrayKind = 1000595
)

// CompressionCodec is the file-level compression codec id (§4.9 header).
type CompressionCodec uint8

const (
	CompressionNone CompressionCodec = 0
	CompressionZstd CompressionCodec = 1
)

// ArrayFilter is the file-level array-filter id (§4.9 header).
type ArrayFilter uint8

const (
	ArrayFilterNone        ArrayFilter = 0
	ArrayFilterByteShuffle ArrayFilter = 1
)

func (f ArrayFilter) Valid() bool {
	return f == ArrayFilterNone || f == ArrayFilterByteShuffle
}
