package format

// AttrTail is the private-namespace accession tail carried by a
// structural-attribute pseudo-CV-param (cv_ref = ATTR, spec §4.5). These
// values never collide with a real ontology accession because they only
// ever appear alongside CvRefAttr.
type AttrTail uint32

const (
	AttrID AttrTail = iota + 1
	AttrIndex
	AttrName
	AttrLocation
	AttrOrder
	AttrRef
	AttrVersion
	AttrStartTimeStamp
	AttrDefaultInstrumentConfigurationRef
	AttrDefaultSourceFileRef
	AttrSampleRef
	AttrInstrumentConfigurationRef
	AttrSpectrumRef
	AttrDefaultArrayLength
	AttrCount
	AttrNativeID
	AttrDataProcessingRef
	AttrSourceFileRef
	AttrEncodedLength
	AttrSoftwareRef
	AttrSpotID
	AttrExternalSpectrumID
	AttrCvURI
	AttrCvFullName
	AttrUserParamType
	AttrUserParamName
)

func (a AttrTail) String() string {
	if s, ok := attrTailNames[a]; ok {
		return s
	}
	return "Unknown"
}

var attrTailNames = map[AttrTail]string{
	AttrID:                                "id",
	AttrIndex:                             "index",
	AttrName:                              "name",
	AttrLocation:                          "location",
	AttrOrder:                             "order",
	AttrRef:                               "ref",
	AttrVersion:                           "version",
	AttrStartTimeStamp:                    "startTimeStamp",
	AttrDefaultInstrumentConfigurationRef: "defaultInstrumentConfigurationRef",
	AttrDefaultSourceFileRef:              "defaultSourceFileRef",
	AttrSampleRef:                         "sampleRef",
	AttrInstrumentConfigurationRef:        "instrumentConfigurationRef",
	AttrSpectrumRef:                       "spectrumRef",
	AttrDefaultArrayLength:                "defaultArrayLength",
	AttrCount:                             "count",
	AttrNativeID:                          "nativeID",
	AttrDataProcessingRef:                 "dataProcessingRef",
	AttrSourceFileRef:                     "sourceFileRef",
	AttrEncodedLength:                     "encodedLength",
	AttrSoftwareRef:                       "softwareRef",
	AttrSpotID:                            "spotID",
	AttrExternalSpectrumID:                "externalSpectrumID",
	AttrCvURI:                             "URI",
	AttrCvFullName:                        "fullName",
	AttrUserParamType:                     "userParamType",
	AttrUserParamName:                     "userParamName",
}
