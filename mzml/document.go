// Package mzml is the in-memory document model the codec round-trips
// (spec §3): the object graph an external XML layer is expected to parse
// mzML into and serialize back out of. Nothing here touches XML; it is a
// plain struct tree plus the one helper (Payload.Len) the encoder/decoder
// need.
package mzml

import "github.com/b000io/b000/format"

// CvParam is a controlled-vocabulary parameter: an (ontology, accession,
// name, value, unit) tuple.
type CvParam struct {
	CvRef         string
	Accession     string
	Name          string
	Value         string
	UnitCvRef     string
	UnitName      string
	UnitAccession string
}

// UserParam mirrors CvParam without the ontology reference, plus a type
// string (mzML's userParam@type, e.g. "xsd:float").
type UserParam struct {
	Name  string
	Value string
	Type  string
}

// Payload is the tagged-union numeric array a BinaryDataArray carries.
// Exactly one of the slices is populated, selected by Dtype.
type Payload struct {
	Dtype format.Dtype
	F64   []float64
	F32   []float32
	F16   []uint16 // raw IEEE-754 half-precision bits
	I16   []int16
	I32   []int32
	I64   []int64
}

// Len returns the element count of the populated slice.
func (p Payload) Len() int {
	switch p.Dtype {
	case format.DtypeF64:
		return len(p.F64)
	case format.DtypeF32:
		return len(p.F32)
	case format.DtypeF16:
		return len(p.F16)
	case format.DtypeI16:
		return len(p.I16)
	case format.DtypeI32:
		return len(p.I32)
	case format.DtypeI64:
		return len(p.I64)
	default:
		return 0
	}
}

// BinaryDataArray carries one numeric array of a Spectrum or Chromatogram.
type BinaryDataArray struct {
	ArrayLength       uint32
	EncodedLength     uint32
	DataProcessingRef string
	ReferenceableParamGroupRefs []string
	CvParams          []CvParam
	UserParams        []UserParam
	Payload           Payload
}

// ScanWindow is a Scan's m/z selection window.
type ScanWindow struct {
	CvParams []CvParam
}

// Scan is one entry of a Spectrum's scan list.
type Scan struct {
	InstrumentConfigurationRef string
	SourceFileRef              string
	SpectrumRef                string
	ExternalSpectrumID         string
	ReferenceableParamGroupRefs []string
	CvParams                   []CvParam
	UserParams                 []UserParam
	ScanWindows                []ScanWindow
}

// SelectedIon is one ion of a Precursor's selected-ion list.
type SelectedIon struct {
	CvParams []CvParam
}

// Activation describes how a Precursor's ion was fragmented.
type Activation struct {
	CvParams []CvParam
}

// IsolationWindow bounds a Precursor or Product's m/z isolation.
type IsolationWindow struct {
	CvParams []CvParam
}

// Precursor describes the parent ion a product spectrum derives from.
type Precursor struct {
	SpectrumRef        string
	SourceFileRef      string
	ExternalSpectrumID string
	IsolationWindow    *IsolationWindow
	SelectedIons       []SelectedIon
	Activation         *Activation
}

// Product describes a product-ion isolation window (MRM/SRM).
type Product struct {
	IsolationWindow *IsolationWindow
}

// Spectrum is one entry of a Run's spectrum list.
type Spectrum struct {
	ID                 string
	Index              uint32
	DefaultArrayLength  uint32
	NativeID            string
	DataProcessingRef   string
	SourceFileRef       string
	SpotID              string
	MSLevel             int

	ReferenceableParamGroupRefs []string
	CvParams                    []CvParam
	UserParams                  []UserParam

	Scans              []Scan
	Precursors         []Precursor
	Products           []Product
	BinaryDataArrays   []BinaryDataArray
}

// Chromatogram is one entry of a Run's chromatogram list.
type Chromatogram struct {
	ID                 string
	NativeID            string
	Index               uint32
	DefaultArrayLength  uint32
	DataProcessingRef   string

	ReferenceableParamGroupRefs []string
	CvParams                    []CvParam
	UserParams                  []UserParam

	Precursor        *Precursor
	Product          *Product
	BinaryDataArrays []BinaryDataArray
}

// Run is the document's single measurement run.
type Run struct {
	ID                                string
	StartTimeStamp                    string
	DefaultInstrumentConfigurationRef string
	SampleRef                         string
	SourceFileRefs                    []string

	SpectrumList     []Spectrum
	ChromatogramList []Chromatogram
}

// Cv is a controlled-vocabulary declaration (cvList entry).
type Cv struct {
	ID       string
	FullName string
	Version  string
	URI      string
}

// FileContent declares the kinds of spectra/chromatograms a file contains.
type FileContent struct {
	CvParams []CvParam
}

// SourceFile is one entry of a fileDescription's sourceFileList.
type SourceFile struct {
	ID       string
	Name     string
	Location string
	CvParams []CvParam
}

// Contact is one entry of a fileDescription's contact list.
type Contact struct {
	CvParams []CvParam
}

// FileDescription groups a document's provenance metadata.
type FileDescription struct {
	FileContent FileContent
	SourceFiles []SourceFile
	Contacts    []Contact
}

// ReferenceableParamGroup is a named, reusable bundle of CV/user params.
type ReferenceableParamGroup struct {
	ID         string
	CvParams   []CvParam
	UserParams []UserParam
}

// Sample describes a physical sample a Run's spectra were acquired from.
type Sample struct {
	ID       string
	Name     string
	CvParams []CvParam
}

// ComponentSource, ComponentAnalyzer, ComponentDetector are the ordered
// components of an InstrumentConfiguration.
type ComponentSource struct {
	Order    int
	CvParams []CvParam
}

type ComponentAnalyzer struct {
	Order    int
	CvParams []CvParam
}

type ComponentDetector struct {
	Order    int
	CvParams []CvParam
}

// InstrumentConfiguration describes one instrument setup.
type InstrumentConfiguration struct {
	ID                 string
	ScanSettingsRef     string
	SoftwareRef         string
	Sources             []ComponentSource
	Analyzers           []ComponentAnalyzer
	Detectors           []ComponentDetector
	CvParams            []CvParam
}

// Software is a software entry: its id, version, and CV params.
type Software struct {
	ID       string
	Version  string
	CvParams []CvParam
}

// ProcessingMethod is one step of a DataProcessing pipeline.
type ProcessingMethod struct {
	Order      int
	SoftwareRef string
	CvParams    []CvParam
	UserParams  []UserParam
}

// DataProcessing names a sequence of processing steps applied upstream.
type DataProcessing struct {
	ID      string
	Methods []ProcessingMethod
}

// Target is one entry of a ScanSettings' targetList (SRM/MRM target list).
type Target struct {
	CvParams []CvParam
}

// ScanSettings describes instrument acquisition settings.
type ScanSettings struct {
	ID              string
	SourceFileRefs  []string
	Targets         []Target
	CvParams        []CvParam
}

// Document is the complete in-memory mzML-equivalent document.
type Document struct {
	Run Run

	Cvs                      []Cv
	FileDescription          FileDescription
	ReferenceableParamGroups []ReferenceableParamGroup
	Samples                  []Sample
	InstrumentConfigurations []InstrumentConfiguration
	Softwares                []Software
	DataProcessings          []DataProcessing
	ScanSettingsList         []ScanSettings
}
