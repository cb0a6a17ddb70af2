// Package mzmlio is the XML collaborator spec.md §6 treats as an external
// black box: it parses mzML 1.1.x documents into mzml.Document and
// serializes one back out. It does not participate in the container
// format at all; cmd/b000's convert command is the only caller.
package mzmlio

import "encoding/xml"

type xmlCvParam struct {
	CvRef         string `xml:"cvRef,attr"`
	Accession     string `xml:"accession,attr"`
	Name          string `xml:"name,attr"`
	Value         string `xml:"value,attr,omitempty"`
	UnitCvRef     string `xml:"unitCvRef,attr,omitempty"`
	UnitAccession string `xml:"unitAccession,attr,omitempty"`
	UnitName      string `xml:"unitName,attr,omitempty"`
}

type xmlUserParam struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr,omitempty"`
	Type  string `xml:"type,attr,omitempty"`
}

type xmlRefParamGroupRef struct {
	Ref string `xml:"ref,attr"`
}

type xmlCv struct {
	ID       string `xml:"id,attr"`
	FullName string `xml:"fullName,attr"`
	Version  string `xml:"version,attr,omitempty"`
	URI      string `xml:"URI,attr,omitempty"`
}

type xmlCvList struct {
	Count int     `xml:"count,attr"`
	Cvs   []xmlCv `xml:"cv"`
}

type xmlReferenceableParamGroup struct {
	ID         string         `xml:"id,attr"`
	CvParams   []xmlCvParam   `xml:"cvParam"`
	UserParams []xmlUserParam `xml:"userParam"`
}

type xmlReferenceableParamGroupList struct {
	Count  int                          `xml:"count,attr"`
	Groups []xmlReferenceableParamGroup `xml:"referenceableParamGroup"`
}

type xmlFileContent struct {
	CvParams []xmlCvParam `xml:"cvParam"`
}

type xmlSourceFile struct {
	ID       string       `xml:"id,attr"`
	Name     string       `xml:"name,attr"`
	Location string       `xml:"location,attr"`
	CvParams []xmlCvParam `xml:"cvParam"`
}

type xmlSourceFileList struct {
	Count       int             `xml:"count,attr"`
	SourceFiles []xmlSourceFile `xml:"sourceFile"`
}

type xmlContact struct {
	CvParams []xmlCvParam `xml:"cvParam"`
}

type xmlFileDescription struct {
	FileContent    xmlFileContent     `xml:"fileContent"`
	SourceFileList *xmlSourceFileList `xml:"sourceFileList"`
	Contacts       []xmlContact       `xml:"contact"`
}

type xmlSample struct {
	ID       string       `xml:"id,attr"`
	Name     string       `xml:"name,attr,omitempty"`
	CvParams []xmlCvParam `xml:"cvParam"`
}

type xmlSampleList struct {
	Count   int         `xml:"count,attr"`
	Samples []xmlSample `xml:"sample"`
}

type xmlComponent struct {
	Order    int          `xml:"order,attr"`
	CvParams []xmlCvParam `xml:"cvParam"`
}

type xmlComponentList struct {
	Count     int            `xml:"count,attr"`
	Sources   []xmlComponent `xml:"source"`
	Analyzers []xmlComponent `xml:"analyzer"`
	Detectors []xmlComponent `xml:"detector"`
}

type xmlInstrumentConfiguration struct {
	ID              string            `xml:"id,attr"`
	ScanSettingsRef string            `xml:"scanSettingsRef,attr,omitempty"`
	CvParams        []xmlCvParam      `xml:"cvParam"`
	ComponentList   *xmlComponentList `xml:"componentList"`
	SoftwareRef     *xmlRef           `xml:"softwareRef"`
}

type xmlRef struct {
	Ref string `xml:"ref,attr"`
}

type xmlInstrumentConfigurationList struct {
	Count        int                          `xml:"count,attr"`
	Instruments  []xmlInstrumentConfiguration `xml:"instrumentConfiguration"`
}

type xmlSoftware struct {
	ID       string       `xml:"id,attr"`
	Version  string       `xml:"version,attr"`
	CvParams []xmlCvParam `xml:"cvParam"`
}

type xmlSoftwareList struct {
	Count     int           `xml:"count,attr"`
	Softwares []xmlSoftware `xml:"software"`
}

type xmlProcessingMethod struct {
	Order       int          `xml:"order,attr"`
	SoftwareRef string       `xml:"softwareRef,attr,omitempty"`
	CvParams    []xmlCvParam `xml:"cvParam"`
	UserParams  []xmlUserParam `xml:"userParam"`
}

type xmlDataProcessing struct {
	ID      string                `xml:"id,attr"`
	Methods []xmlProcessingMethod `xml:"processingMethod"`
}

type xmlDataProcessingList struct {
	Count           int                 `xml:"count,attr"`
	DataProcessings []xmlDataProcessing `xml:"dataProcessing"`
}

type xmlTarget struct {
	CvParams []xmlCvParam `xml:"cvParam"`
}

type xmlTargetList struct {
	Count   int         `xml:"count,attr"`
	Targets []xmlTarget `xml:"target"`
}

type xmlScanSettings struct {
	ID             string            `xml:"id,attr"`
	SourceFileList *xmlSourceFileRefList `xml:"sourceFileRefList"`
	TargetList     *xmlTargetList    `xml:"targetList"`
	CvParams       []xmlCvParam      `xml:"cvParam"`
}

type xmlSourceFileRefList struct {
	Count          int      `xml:"count,attr"`
	SourceFileRefs []xmlRef `xml:"sourceFileRef"`
}

type xmlScanSettingsList struct {
	Count int               `xml:"count,attr"`
	Items []xmlScanSettings `xml:"scanSettings"`
}

type xmlScanWindow struct {
	CvParams []xmlCvParam `xml:"cvParam"`
}

type xmlScanWindowList struct {
	Windows []xmlScanWindow `xml:"scanWindow"`
}

type xmlScan struct {
	InstrumentConfigurationRef string                       `xml:"instrumentConfigurationRef,attr,omitempty"`
	SourceFileRef              string                       `xml:"sourceFileRef,attr,omitempty"`
	SpectrumRef                string                       `xml:"spectrumRef,attr,omitempty"`
	ExternalSpectrumID         string                       `xml:"externalSpectrumID,attr,omitempty"`
	ReferenceableParamGroupRefs []xmlRefParamGroupRef       `xml:"referenceableParamGroupRef"`
	CvParams                   []xmlCvParam                 `xml:"cvParam"`
	UserParams                 []xmlUserParam               `xml:"userParam"`
	ScanWindowList             *xmlScanWindowList           `xml:"scanWindowList"`
}

type xmlScanList struct {
	Count int       `xml:"count,attr"`
	Scans []xmlScan `xml:"scan"`
}

type xmlIsolationWindow struct {
	CvParams []xmlCvParam `xml:"cvParam"`
}

type xmlSelectedIon struct {
	CvParams []xmlCvParam `xml:"cvParam"`
}

type xmlSelectedIonList struct {
	Count int              `xml:"count,attr"`
	Ions  []xmlSelectedIon `xml:"selectedIon"`
}

type xmlActivation struct {
	CvParams []xmlCvParam `xml:"cvParam"`
}

type xmlPrecursor struct {
	SpectrumRef        string              `xml:"spectrumRef,attr,omitempty"`
	SourceFileRef      string              `xml:"sourceFileRef,attr,omitempty"`
	ExternalSpectrumID string              `xml:"externalSpectrumID,attr,omitempty"`
	IsolationWindow    *xmlIsolationWindow `xml:"isolationWindow"`
	SelectedIonList    *xmlSelectedIonList `xml:"selectedIonList"`
	Activation         *xmlActivation      `xml:"activation"`
}

type xmlPrecursorList struct {
	Count      int            `xml:"count,attr"`
	Precursors []xmlPrecursor `xml:"precursor"`
}

type xmlProduct struct {
	IsolationWindow *xmlIsolationWindow `xml:"isolationWindow"`
}

type xmlProductList struct {
	Count    int          `xml:"count,attr"`
	Products []xmlProduct `xml:"product"`
}

type xmlBinary struct {
	Data string `xml:",chardata"`
}

type xmlBinaryDataArray struct {
	EncodedLength               uint32                `xml:"encodedLength,attr"`
	DataProcessingRef           string                `xml:"dataProcessingRef,attr,omitempty"`
	ReferenceableParamGroupRefs []xmlRefParamGroupRef `xml:"referenceableParamGroupRef"`
	CvParams                    []xmlCvParam          `xml:"cvParam"`
	UserParams                  []xmlUserParam        `xml:"userParam"`
	Binary                      xmlBinary             `xml:"binary"`
}

type xmlBinaryDataArrayList struct {
	Count  int                  `xml:"count,attr"`
	Arrays []xmlBinaryDataArray `xml:"binaryDataArray"`
}

type xmlSpectrum struct {
	ID                          string                `xml:"id,attr"`
	Index                       uint32                `xml:"index,attr"`
	DefaultArrayLength          uint32                `xml:"defaultArrayLength,attr"`
	DataProcessingRef           string                `xml:"dataProcessingRef,attr,omitempty"`
	SourceFileRef               string                `xml:"sourceFileRef,attr,omitempty"`
	SpotID                      string                `xml:"spotID,attr,omitempty"`
	ReferenceableParamGroupRefs []xmlRefParamGroupRef `xml:"referenceableParamGroupRef"`
	CvParams                    []xmlCvParam          `xml:"cvParam"`
	UserParams                  []xmlUserParam        `xml:"userParam"`
	ScanList                    *xmlScanList          `xml:"scanList"`
	PrecursorList               *xmlPrecursorList     `xml:"precursorList"`
	ProductList                 *xmlProductList       `xml:"productList"`
	BinaryDataArrayList         *xmlBinaryDataArrayList `xml:"binaryDataArrayList"`
}

type xmlSpectrumList struct {
	Count             int           `xml:"count,attr"`
	DefaultDataProcessingRef string `xml:"defaultDataProcessingRef,attr,omitempty"`
	Spectra           []xmlSpectrum `xml:"spectrum"`
}

type xmlChromatogram struct {
	ID                  string                  `xml:"id,attr"`
	Index               uint32                  `xml:"index,attr"`
	DefaultArrayLength  uint32                  `xml:"defaultArrayLength,attr"`
	DataProcessingRef   string                  `xml:"dataProcessingRef,attr,omitempty"`
	CvParams            []xmlCvParam            `xml:"cvParam"`
	UserParams          []xmlUserParam          `xml:"userParam"`
	Precursor           *xmlPrecursor           `xml:"precursor"`
	Product             *xmlProduct             `xml:"product"`
	BinaryDataArrayList *xmlBinaryDataArrayList `xml:"binaryDataArrayList"`
}

type xmlChromatogramList struct {
	Count                    int               `xml:"count,attr"`
	DefaultDataProcessingRef string            `xml:"defaultDataProcessingRef,attr,omitempty"`
	Chromatograms            []xmlChromatogram `xml:"chromatogram"`
}

type xmlRun struct {
	ID                                string               `xml:"id,attr"`
	StartTimeStamp                    string               `xml:"startTimeStamp,attr,omitempty"`
	DefaultInstrumentConfigurationRef string               `xml:"defaultInstrumentConfigurationRef,attr,omitempty"`
	SampleRef                         string               `xml:"sampleRef,attr,omitempty"`
	SourceFileRefList                 *xmlSourceFileRefList `xml:"sourceFileRefList"`
	SpectrumList                      *xmlSpectrumList      `xml:"spectrumList"`
	ChromatogramList                  *xmlChromatogramList  `xml:"chromatogramList"`
}

type xmlMzML struct {
	XMLName                  xml.Name                        `xml:"mzML"`
	CvList                   xmlCvList                        `xml:"cvList"`
	FileDescription          xmlFileDescription               `xml:"fileDescription"`
	ReferenceableParamGroupList *xmlReferenceableParamGroupList `xml:"referenceableParamGroupList"`
	SampleList               *xmlSampleList                   `xml:"sampleList"`
	SoftwareList             *xmlSoftwareList                 `xml:"softwareList"`
	InstrumentConfigurationList *xmlInstrumentConfigurationList `xml:"instrumentConfigurationList"`
	DataProcessingList       *xmlDataProcessingList           `xml:"dataProcessingList"`
	ScanSettingsList         *xmlScanSettingsList             `xml:"scanSettingsList"`
	Run                      xmlRun                           `xml:"run"`
}
