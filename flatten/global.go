package flatten

import (
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/metadata"
	"github.com/b000io/b000/mzml"
)

// FlattenGlobal flattens a document's global (non-spectrum, non-
// chromatogram) entries into the ordered list of top-level items the
// global metadata section packs (§4.6): one row slice per cv, the file
// description, each referenceable-param-group definition, each sample,
// each software, each scan-settings entry, each instrument configuration,
// each data-processing pipeline, and finally the run itself.
func FlattenGlobal(doc *mzml.Document, opts Options) [][]metadata.Row {
	var items [][]metadata.Row

	for _, cv := range doc.Cvs {
		items = append(items, flattenCv(cv))
	}
	items = append(items, flattenFileDescription(doc.FileDescription))
	for _, g := range doc.ReferenceableParamGroups {
		items = append(items, flattenReferenceableParamGroup(g))
	}
	for _, s := range doc.Samples {
		items = append(items, flattenSample(s))
	}
	for _, sw := range doc.Softwares {
		items = append(items, flattenSoftware(sw))
	}
	for _, ss := range doc.ScanSettingsList {
		items = append(items, flattenScanSettings(ss))
	}
	for _, ic := range doc.InstrumentConfigurations {
		items = append(items, flattenInstrumentConfiguration(ic))
	}
	for _, dp := range doc.DataProcessings {
		items = append(items, flattenDataProcessing(dp))
	}
	items = append(items, flattenRun(doc.Run, doc.ReferenceableParamGroups, opts))

	return items
}

func flattenCv(cv mzml.Cv) []metadata.Row {
	b := newBuilder(nil, Options{})
	const tag = format.TagCv
	id := b.alloc()

	b.emitString(id, 0, tag, format.AttrID, cv.ID)
	b.emitString(id, 0, tag, format.AttrCvFullName, cv.FullName)
	b.emitString(id, 0, tag, format.AttrVersion, cv.Version)
	b.emitString(id, 0, tag, format.AttrCvURI, cv.URI)

	return b.rows
}

func flattenFileDescription(fd mzml.FileDescription) []metadata.Row {
	b := newBuilder(nil, Options{})
	const tag = format.TagFileContent
	id := b.alloc()

	b.emitCvParams(id, 0, tag, fd.FileContent.CvParams)

	for _, sf := range fd.SourceFiles {
		sfID := b.alloc()
		b.emitString(sfID, id, format.TagSourceFile, format.AttrID, sf.ID)
		b.emitString(sfID, id, format.TagSourceFile, format.AttrName, sf.Name)
		b.emitString(sfID, id, format.TagSourceFile, format.AttrLocation, sf.Location)
		b.emitCvParams(sfID, id, format.TagSourceFile, sf.CvParams)
	}
	for _, c := range fd.Contacts {
		cID := b.alloc()
		b.emitCvParams(cID, id, format.TagContact, c.CvParams)
	}

	return b.rows
}

func flattenReferenceableParamGroup(g mzml.ReferenceableParamGroup) []metadata.Row {
	b := newBuilder(nil, Options{})
	const tag = format.TagReferenceableParamGroup
	id := b.alloc()

	b.emitString(id, 0, tag, format.AttrID, g.ID)
	b.emitCvParams(id, 0, tag, g.CvParams)
	b.emitUserParams(id, g.UserParams)

	return b.rows
}

func flattenSample(s mzml.Sample) []metadata.Row {
	b := newBuilder(nil, Options{})
	const tag = format.TagSample
	id := b.alloc()

	b.emitString(id, 0, tag, format.AttrID, s.ID)
	b.emitString(id, 0, tag, format.AttrName, s.Name)
	b.emitCvParams(id, 0, tag, s.CvParams)

	return b.rows
}

func flattenSoftware(sw mzml.Software) []metadata.Row {
	b := newBuilder(nil, Options{})
	const tag = format.TagSoftware
	id := b.alloc()

	b.emitString(id, 0, tag, format.AttrID, sw.ID)
	b.emitString(id, 0, tag, format.AttrVersion, sw.Version)
	b.emitCvParams(id, 0, tag, sw.CvParams)

	return b.rows
}

func flattenScanSettings(ss mzml.ScanSettings) []metadata.Row {
	b := newBuilder(nil, Options{})
	const tag = format.TagScanSettings
	id := b.alloc()

	b.emitString(id, 0, tag, format.AttrID, ss.ID)
	b.emitCvParams(id, 0, tag, ss.CvParams)

	for _, ref := range ss.SourceFileRefs {
		rID := b.alloc()
		b.emitString(rID, id, format.TagSourceFileRef, format.AttrRef, ref)
	}
	for _, t := range ss.Targets {
		tID := b.alloc()
		b.emitCvParams(tID, id, format.TagTarget, t.CvParams)
	}

	return b.rows
}

func flattenInstrumentConfiguration(ic mzml.InstrumentConfiguration) []metadata.Row {
	b := newBuilder(nil, Options{})
	const tag = format.TagInstrument
	id := b.alloc()

	b.emitString(id, 0, tag, format.AttrID, ic.ID)
	b.emitString(id, 0, tag, format.AttrRef, ic.ScanSettingsRef)
	b.emitString(id, 0, tag, format.AttrSoftwareRef, ic.SoftwareRef)
	b.emitCvParams(id, 0, tag, ic.CvParams)

	for _, src := range ic.Sources {
		cID := b.alloc()
		b.emitNumber(cID, id, format.TagComponentSource, format.AttrOrder, float64(src.Order))
		b.emitCvParams(cID, id, format.TagComponentSource, src.CvParams)
	}
	for _, an := range ic.Analyzers {
		cID := b.alloc()
		b.emitNumber(cID, id, format.TagComponentAnalyzer, format.AttrOrder, float64(an.Order))
		b.emitCvParams(cID, id, format.TagComponentAnalyzer, an.CvParams)
	}
	for _, det := range ic.Detectors {
		cID := b.alloc()
		b.emitNumber(cID, id, format.TagComponentDetector, format.AttrOrder, float64(det.Order))
		b.emitCvParams(cID, id, format.TagComponentDetector, det.CvParams)
	}

	return b.rows
}

func flattenDataProcessing(dp mzml.DataProcessing) []metadata.Row {
	b := newBuilder(nil, Options{})
	const tag = format.TagDataProcessing
	id := b.alloc()

	b.emitString(id, 0, tag, format.AttrID, dp.ID)

	for _, m := range dp.Methods {
		mID := b.alloc()
		b.emitNumber(mID, id, format.TagProcessingMethod, format.AttrOrder, float64(m.Order))
		b.emitString(mID, id, format.TagProcessingMethod, format.AttrSoftwareRef, m.SoftwareRef)
		b.emitCvParams(mID, id, format.TagProcessingMethod, m.CvParams)
		b.emitUserParams(mID, m.UserParams)
	}

	return b.rows
}

func flattenRun(run mzml.Run, groups []mzml.ReferenceableParamGroup, opts Options) []metadata.Row {
	b := newBuilder(groups, opts)
	const tag = format.TagRun
	id := b.alloc()

	b.emitString(id, 0, tag, format.AttrID, run.ID)
	b.emitString(id, 0, tag, format.AttrStartTimeStamp, run.StartTimeStamp)
	b.emitString(id, 0, tag, format.AttrDefaultInstrumentConfigurationRef, run.DefaultInstrumentConfigurationRef)
	b.emitString(id, 0, tag, format.AttrSampleRef, run.SampleRef)

	for _, ref := range run.SourceFileRefs {
		rID := b.alloc()
		b.emitString(rID, id, format.TagSourceFileRef, format.AttrRef, ref)
	}

	return b.rows
}
