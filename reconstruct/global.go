package reconstruct

import (
	"github.com/b000io/b000/cvnames"
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/metadata"
	"github.com/b000io/b000/mzml"
)

func reconstructCv(ix *index, ownerID uint32) mzml.Cv {
	cv := mzml.Cv{}
	cv.ID, _ = ix.attrString(ownerID, format.AttrID)
	cv.FullName, _ = ix.attrString(ownerID, format.AttrCvFullName)
	cv.Version, _ = ix.attrString(ownerID, format.AttrVersion)
	cv.URI, _ = ix.attrString(ownerID, format.AttrCvURI)
	return cv
}

func reconstructFileDescription(ix *index, ownerID uint32, names cvnames.Table) mzml.FileDescription {
	fd := mzml.FileDescription{
		FileContent: mzml.FileContent{CvParams: ix.cvParams(ownerID, names)},
	}

	for _, id := range ix.childrenWithTag(ownerID, format.TagSourceFile) {
		sf := mzml.SourceFile{CvParams: ix.cvParams(id, names)}
		sf.ID, _ = ix.attrString(id, format.AttrID)
		sf.Name, _ = ix.attrString(id, format.AttrName)
		sf.Location, _ = ix.attrString(id, format.AttrLocation)
		fd.SourceFiles = append(fd.SourceFiles, sf)
	}
	for _, id := range ix.childrenWithTag(ownerID, format.TagContact) {
		fd.Contacts = append(fd.Contacts, mzml.Contact{CvParams: ix.cvParams(id, names)})
	}

	return fd
}

func reconstructReferenceableParamGroup(ix *index, ownerID uint32, names cvnames.Table) mzml.ReferenceableParamGroup {
	g := mzml.ReferenceableParamGroup{CvParams: ix.cvParams(ownerID, names), UserParams: ix.userParams(ownerID)}
	g.ID, _ = ix.attrString(ownerID, format.AttrID)
	return g
}

func reconstructSample(ix *index, ownerID uint32, names cvnames.Table) mzml.Sample {
	s := mzml.Sample{CvParams: ix.cvParams(ownerID, names)}
	s.ID, _ = ix.attrString(ownerID, format.AttrID)
	s.Name, _ = ix.attrString(ownerID, format.AttrName)
	return s
}

func reconstructSoftware(ix *index, ownerID uint32, names cvnames.Table) mzml.Software {
	sw := mzml.Software{CvParams: ix.cvParams(ownerID, names)}
	sw.ID, _ = ix.attrString(ownerID, format.AttrID)
	sw.Version, _ = ix.attrString(ownerID, format.AttrVersion)
	return sw
}

func reconstructScanSettings(ix *index, ownerID uint32, names cvnames.Table) mzml.ScanSettings {
	ss := mzml.ScanSettings{CvParams: ix.cvParams(ownerID, names)}
	ss.ID, _ = ix.attrString(ownerID, format.AttrID)

	for _, id := range ix.childrenWithTag(ownerID, format.TagSourceFileRef) {
		if ref, ok := ix.attrString(id, format.AttrRef); ok {
			ss.SourceFileRefs = append(ss.SourceFileRefs, ref)
		}
	}
	for _, id := range ix.childrenWithTag(ownerID, format.TagTarget) {
		ss.Targets = append(ss.Targets, mzml.Target{CvParams: ix.cvParams(id, names)})
	}

	return ss
}

func reconstructInstrumentConfiguration(ix *index, ownerID uint32, names cvnames.Table) mzml.InstrumentConfiguration {
	ic := mzml.InstrumentConfiguration{CvParams: ix.cvParams(ownerID, names)}
	ic.ID, _ = ix.attrString(ownerID, format.AttrID)
	ic.ScanSettingsRef, _ = ix.attrString(ownerID, format.AttrRef)
	ic.SoftwareRef, _ = ix.attrString(ownerID, format.AttrSoftwareRef)

	for _, id := range ix.childrenWithTag(ownerID, format.TagComponentSource) {
		ic.Sources = append(ic.Sources, mzml.ComponentSource{Order: ix.attrInt(id, format.AttrOrder), CvParams: ix.cvParams(id, names)})
	}
	for _, id := range ix.childrenWithTag(ownerID, format.TagComponentAnalyzer) {
		ic.Analyzers = append(ic.Analyzers, mzml.ComponentAnalyzer{Order: ix.attrInt(id, format.AttrOrder), CvParams: ix.cvParams(id, names)})
	}
	for _, id := range ix.childrenWithTag(ownerID, format.TagComponentDetector) {
		ic.Detectors = append(ic.Detectors, mzml.ComponentDetector{Order: ix.attrInt(id, format.AttrOrder), CvParams: ix.cvParams(id, names)})
	}

	return ic
}

func reconstructDataProcessing(ix *index, ownerID uint32, names cvnames.Table) mzml.DataProcessing {
	dp := mzml.DataProcessing{}
	dp.ID, _ = ix.attrString(ownerID, format.AttrID)

	for _, id := range ix.childrenWithTag(ownerID, format.TagProcessingMethod) {
		m := mzml.ProcessingMethod{
			Order:      ix.attrInt(id, format.AttrOrder),
			CvParams:   ix.cvParams(id, names),
			UserParams: ix.userParams(id),
		}
		m.SoftwareRef, _ = ix.attrString(id, format.AttrSoftwareRef)
		dp.Methods = append(dp.Methods, m)
	}

	return dp
}

func reconstructRun(ix *index, ownerID uint32) mzml.Run {
	run := mzml.Run{}
	run.ID, _ = ix.attrString(ownerID, format.AttrID)
	run.StartTimeStamp, _ = ix.attrString(ownerID, format.AttrStartTimeStamp)
	run.DefaultInstrumentConfigurationRef, _ = ix.attrString(ownerID, format.AttrDefaultInstrumentConfigurationRef)
	run.SampleRef, _ = ix.attrString(ownerID, format.AttrSampleRef)

	for _, id := range ix.childrenWithTag(ownerID, format.TagSourceFileRef) {
		if ref, ok := ix.attrString(id, format.AttrRef); ok {
			run.SourceFileRefs = append(run.SourceFileRefs, ref)
		}
	}

	return run
}

// ReconstructGlobal rebuilds the non-spectrum, non-chromatogram parts of a
// Document from the global metadata section's per-item row slices,
// dispatching on each item's top-level tag (§4.7).
func ReconstructGlobal(items [][]metadata.Row, names cvnames.Table) *mzml.Document {
	doc := &mzml.Document{}

	for _, rows := range items {
		if len(rows) == 0 {
			continue
		}
		ix := buildIndex(rows)

		ownerID, tag, ok := topLevelTagAny(ix)
		if !ok {
			continue
		}

		switch tag {
		case format.TagCv:
			doc.Cvs = append(doc.Cvs, reconstructCv(ix, ownerID))
		case format.TagFileContent:
			doc.FileDescription = reconstructFileDescription(ix, ownerID, names)
		case format.TagReferenceableParamGroup:
			doc.ReferenceableParamGroups = append(doc.ReferenceableParamGroups, reconstructReferenceableParamGroup(ix, ownerID, names))
		case format.TagSample:
			doc.Samples = append(doc.Samples, reconstructSample(ix, ownerID, names))
		case format.TagSoftware:
			doc.Softwares = append(doc.Softwares, reconstructSoftware(ix, ownerID, names))
		case format.TagScanSettings:
			doc.ScanSettingsList = append(doc.ScanSettingsList, reconstructScanSettings(ix, ownerID, names))
		case format.TagInstrument:
			doc.InstrumentConfigurations = append(doc.InstrumentConfigurations, reconstructInstrumentConfiguration(ix, ownerID, names))
		case format.TagDataProcessing:
			doc.DataProcessings = append(doc.DataProcessings, reconstructDataProcessing(ix, ownerID, names))
		case format.TagRun:
			doc.Run = reconstructRun(ix, ownerID)
		}
	}

	return doc
}

// topLevelTagAny returns the smallest owner id parented at 0 along with its
// tag, without requiring the caller to already know which tag to expect —
// used for the global section where each item's kind is unknown in advance.
func topLevelTagAny(ix *index) (uint32, format.TagID, bool) {
	var best uint32
	var bestTag format.TagID
	found := false
	for _, child := range ix.childrenOf[0] {
		rows := ix.rowsByOwner[child]
		if len(rows) == 0 {
			continue
		}
		if !found || child < best {
			best = child
			bestTag = rows[0].Tag
			found = true
		}
	}
	return best, bestTag, found
}
