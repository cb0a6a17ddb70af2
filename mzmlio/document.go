package mzmlio

import "github.com/b000io/b000/mzml"

func spectrumToXML(s *mzml.Spectrum) xmlSpectrum {
	return xmlSpectrum{
		ID:                          s.ID,
		Index:                       s.Index,
		DefaultArrayLength:          s.DefaultArrayLength,
		DataProcessingRef:           s.DataProcessingRef,
		SourceFileRef:               s.SourceFileRef,
		SpotID:                      s.SpotID,
		ReferenceableParamGroupRefs: refsToXML(s.ReferenceableParamGroupRefs),
		CvParams:                    cvParamsToXML(s.CvParams),
		UserParams:                  userParamsToXML(s.UserParams),
		ScanList:                    scansToXML(s.Scans),
		PrecursorList:               precursorsToXML(s.Precursors),
		ProductList:                 productsToXML(s.Products),
		BinaryDataArrayList:         binaryDataArraysToXML(s.BinaryDataArrays),
	}
}

func precursorsToXML(in []mzml.Precursor) *xmlPrecursorList {
	if len(in) == 0 {
		return nil
	}
	out := make([]xmlPrecursor, len(in))
	for i := range in {
		out[i] = *precursorToXML(&in[i])
	}
	return &xmlPrecursorList{Count: len(out), Precursors: out}
}

func precursorsFromXML(l *xmlPrecursorList) []mzml.Precursor {
	if l == nil {
		return nil
	}
	out := make([]mzml.Precursor, len(l.Precursors))
	for i := range l.Precursors {
		out[i] = *precursorFromXML(&l.Precursors[i])
	}
	return out
}

func productsToXML(in []mzml.Product) *xmlProductList {
	if len(in) == 0 {
		return nil
	}
	out := make([]xmlProduct, len(in))
	for i := range in {
		out[i] = *productToXML(&in[i])
	}
	return &xmlProductList{Count: len(out), Products: out}
}

func productsFromXML(l *xmlProductList) []mzml.Product {
	if l == nil {
		return nil
	}
	out := make([]mzml.Product, len(l.Products))
	for i := range l.Products {
		out[i] = *productFromXML(&l.Products[i])
	}
	return out
}

func spectrumFromXML(s *xmlSpectrum) (mzml.Spectrum, error) {
	arrays, err := binaryDataArraysFromXML(s.BinaryDataArrayList)
	if err != nil {
		return mzml.Spectrum{}, err
	}

	msLevel := 0
	for _, p := range s.CvParams {
		if p.Accession == "MS:1000511" {
			msLevel = parseIntOrZero(p.Value)
		}
	}

	return mzml.Spectrum{
		ID:                          s.ID,
		Index:                       s.Index,
		DefaultArrayLength:          s.DefaultArrayLength,
		DataProcessingRef:           s.DataProcessingRef,
		SourceFileRef:               s.SourceFileRef,
		SpotID:                      s.SpotID,
		MSLevel:                     msLevel,
		ReferenceableParamGroupRefs: refsFromXML(s.ReferenceableParamGroupRefs),
		CvParams:                   cvParamsFromXML(s.CvParams),
		UserParams:                 userParamsFromXML(s.UserParams),
		Scans:                      scansFromXML(s.ScanList),
		Precursors:                 precursorsFromXML(s.PrecursorList),
		Products:                   productsFromXML(s.ProductList),
		BinaryDataArrays:           arrays,
	}, nil
}

func chromatogramToXML(c *mzml.Chromatogram) xmlChromatogram {
	return xmlChromatogram{
		ID:                  c.ID,
		Index:               c.Index,
		DefaultArrayLength:  c.DefaultArrayLength,
		DataProcessingRef:   c.DataProcessingRef,
		CvParams:            cvParamsToXML(c.CvParams),
		UserParams:          userParamsToXML(c.UserParams),
		Precursor:           precursorToXML(c.Precursor),
		Product:             productToXML(c.Product),
		BinaryDataArrayList: binaryDataArraysToXML(c.BinaryDataArrays),
	}
}

func chromatogramFromXML(c *xmlChromatogram) (mzml.Chromatogram, error) {
	arrays, err := binaryDataArraysFromXML(c.BinaryDataArrayList)
	if err != nil {
		return mzml.Chromatogram{}, err
	}

	return mzml.Chromatogram{
		ID:                 c.ID,
		Index:              c.Index,
		DefaultArrayLength: c.DefaultArrayLength,
		DataProcessingRef:  c.DataProcessingRef,
		CvParams:           cvParamsFromXML(c.CvParams),
		UserParams:         userParamsFromXML(c.UserParams),
		Precursor:          precursorFromXML(c.Precursor),
		Product:            productFromXML(c.Product),
		BinaryDataArrays:   arrays,
	}, nil
}

func parseIntOrZero(s string) int {
	n := 0
	neg := false
	for i, r := range s {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		return -n
	}
	return n
}

func documentToXML(doc *mzml.Document) xmlMzML {
	out := xmlMzML{
		FileDescription: xmlFileDescription{
			FileContent: xmlFileContent{CvParams: cvParamsToXML(doc.FileDescription.FileContent.CvParams)},
		},
	}

	out.CvList.Count = len(doc.Cvs)
	for _, cv := range doc.Cvs {
		out.CvList.Cvs = append(out.CvList.Cvs, xmlCv{ID: cv.ID, FullName: cv.FullName, Version: cv.Version, URI: cv.URI})
	}

	if len(doc.FileDescription.SourceFiles) > 0 {
		sfl := &xmlSourceFileList{Count: len(doc.FileDescription.SourceFiles)}
		for _, sf := range doc.FileDescription.SourceFiles {
			sfl.SourceFiles = append(sfl.SourceFiles, xmlSourceFile{ID: sf.ID, Name: sf.Name, Location: sf.Location, CvParams: cvParamsToXML(sf.CvParams)})
		}
		out.FileDescription.SourceFileList = sfl
	}
	for _, c := range doc.FileDescription.Contacts {
		out.FileDescription.Contacts = append(out.FileDescription.Contacts, xmlContact{CvParams: cvParamsToXML(c.CvParams)})
	}

	if len(doc.ReferenceableParamGroups) > 0 {
		rpgl := &xmlReferenceableParamGroupList{Count: len(doc.ReferenceableParamGroups)}
		for _, g := range doc.ReferenceableParamGroups {
			rpgl.Groups = append(rpgl.Groups, xmlReferenceableParamGroup{ID: g.ID, CvParams: cvParamsToXML(g.CvParams), UserParams: userParamsToXML(g.UserParams)})
		}
		out.ReferenceableParamGroupList = rpgl
	}

	if len(doc.Samples) > 0 {
		sl := &xmlSampleList{Count: len(doc.Samples)}
		for _, s := range doc.Samples {
			sl.Samples = append(sl.Samples, xmlSample{ID: s.ID, Name: s.Name, CvParams: cvParamsToXML(s.CvParams)})
		}
		out.SampleList = sl
	}

	if len(doc.Softwares) > 0 {
		swl := &xmlSoftwareList{Count: len(doc.Softwares)}
		for _, sw := range doc.Softwares {
			swl.Softwares = append(swl.Softwares, xmlSoftware{ID: sw.ID, Version: sw.Version, CvParams: cvParamsToXML(sw.CvParams)})
		}
		out.SoftwareList = swl
	}

	if len(doc.InstrumentConfigurations) > 0 {
		icl := &xmlInstrumentConfigurationList{Count: len(doc.InstrumentConfigurations)}
		for _, ic := range doc.InstrumentConfigurations {
			xic := xmlInstrumentConfiguration{ID: ic.ID, ScanSettingsRef: ic.ScanSettingsRef, CvParams: cvParamsToXML(ic.CvParams)}
			if ic.SoftwareRef != "" {
				xic.SoftwareRef = &xmlRef{Ref: ic.SoftwareRef}
			}
			if len(ic.Sources) > 0 || len(ic.Analyzers) > 0 || len(ic.Detectors) > 0 {
				cl := &xmlComponentList{Count: len(ic.Sources) + len(ic.Analyzers) + len(ic.Detectors)}
				for _, s := range ic.Sources {
					cl.Sources = append(cl.Sources, xmlComponent{Order: s.Order, CvParams: cvParamsToXML(s.CvParams)})
				}
				for _, a := range ic.Analyzers {
					cl.Analyzers = append(cl.Analyzers, xmlComponent{Order: a.Order, CvParams: cvParamsToXML(a.CvParams)})
				}
				for _, d := range ic.Detectors {
					cl.Detectors = append(cl.Detectors, xmlComponent{Order: d.Order, CvParams: cvParamsToXML(d.CvParams)})
				}
				xic.ComponentList = cl
			}
			icl.Instruments = append(icl.Instruments, xic)
		}
		out.InstrumentConfigurationList = icl
	}

	if len(doc.DataProcessings) > 0 {
		dpl := &xmlDataProcessingList{Count: len(doc.DataProcessings)}
		for _, dp := range doc.DataProcessings {
			xdp := xmlDataProcessing{ID: dp.ID}
			for _, m := range dp.Methods {
				xdp.Methods = append(xdp.Methods, xmlProcessingMethod{Order: m.Order, SoftwareRef: m.SoftwareRef, CvParams: cvParamsToXML(m.CvParams), UserParams: userParamsToXML(m.UserParams)})
			}
			dpl.DataProcessings = append(dpl.DataProcessings, xdp)
		}
		out.DataProcessingList = dpl
	}

	if len(doc.ScanSettingsList) > 0 {
		ssl := &xmlScanSettingsList{Count: len(doc.ScanSettingsList)}
		for _, ss := range doc.ScanSettingsList {
			xss := xmlScanSettings{ID: ss.ID, CvParams: cvParamsToXML(ss.CvParams)}
			if len(ss.SourceFileRefs) > 0 {
				xss.SourceFileList = &xmlSourceFileRefList{Count: len(ss.SourceFileRefs), SourceFileRefs: plainRefsToXML(ss.SourceFileRefs)}
			}
			if len(ss.Targets) > 0 {
				tl := &xmlTargetList{Count: len(ss.Targets)}
				for _, t := range ss.Targets {
					tl.Targets = append(tl.Targets, xmlTarget{CvParams: cvParamsToXML(t.CvParams)})
				}
				xss.TargetList = tl
			}
			ssl.Items = append(ssl.Items, xss)
		}
		out.ScanSettingsList = ssl
	}

	out.Run = xmlRun{
		ID:                                doc.Run.ID,
		StartTimeStamp:                    doc.Run.StartTimeStamp,
		DefaultInstrumentConfigurationRef: doc.Run.DefaultInstrumentConfigurationRef,
		SampleRef:                         doc.Run.SampleRef,
	}
	if len(doc.Run.SourceFileRefs) > 0 {
		out.Run.SourceFileRefList = &xmlSourceFileRefList{Count: len(doc.Run.SourceFileRefs), SourceFileRefs: plainRefsToXML(doc.Run.SourceFileRefs)}
	}

	specList := &xmlSpectrumList{Count: len(doc.Run.SpectrumList)}
	for i := range doc.Run.SpectrumList {
		specList.Spectra = append(specList.Spectra, spectrumToXML(&doc.Run.SpectrumList[i]))
	}
	out.Run.SpectrumList = specList

	chromList := &xmlChromatogramList{Count: len(doc.Run.ChromatogramList)}
	for i := range doc.Run.ChromatogramList {
		chromList.Chromatograms = append(chromList.Chromatograms, chromatogramToXML(&doc.Run.ChromatogramList[i]))
	}
	out.Run.ChromatogramList = chromList

	return out
}

func documentFromXML(x *xmlMzML) (*mzml.Document, error) {
	doc := &mzml.Document{
		FileDescription: mzml.FileDescription{
			FileContent: mzml.FileContent{CvParams: cvParamsFromXML(x.FileDescription.FileContent.CvParams)},
		},
		Run: mzml.Run{
			ID:                                x.Run.ID,
			StartTimeStamp:                    x.Run.StartTimeStamp,
			DefaultInstrumentConfigurationRef: x.Run.DefaultInstrumentConfigurationRef,
			SampleRef:                         x.Run.SampleRef,
		},
	}

	for _, cv := range x.CvList.Cvs {
		doc.Cvs = append(doc.Cvs, mzml.Cv{ID: cv.ID, FullName: cv.FullName, Version: cv.Version, URI: cv.URI})
	}

	if x.FileDescription.SourceFileList != nil {
		for _, sf := range x.FileDescription.SourceFileList.SourceFiles {
			doc.FileDescription.SourceFiles = append(doc.FileDescription.SourceFiles, mzml.SourceFile{ID: sf.ID, Name: sf.Name, Location: sf.Location, CvParams: cvParamsFromXML(sf.CvParams)})
		}
	}
	for _, c := range x.FileDescription.Contacts {
		doc.FileDescription.Contacts = append(doc.FileDescription.Contacts, mzml.Contact{CvParams: cvParamsFromXML(c.CvParams)})
	}

	if x.ReferenceableParamGroupList != nil {
		for _, g := range x.ReferenceableParamGroupList.Groups {
			doc.ReferenceableParamGroups = append(doc.ReferenceableParamGroups, mzml.ReferenceableParamGroup{ID: g.ID, CvParams: cvParamsFromXML(g.CvParams), UserParams: userParamsFromXML(g.UserParams)})
		}
	}

	if x.SampleList != nil {
		for _, s := range x.SampleList.Samples {
			doc.Samples = append(doc.Samples, mzml.Sample{ID: s.ID, Name: s.Name, CvParams: cvParamsFromXML(s.CvParams)})
		}
	}

	if x.SoftwareList != nil {
		for _, sw := range x.SoftwareList.Softwares {
			doc.Softwares = append(doc.Softwares, mzml.Software{ID: sw.ID, Version: sw.Version, CvParams: cvParamsFromXML(sw.CvParams)})
		}
	}

	if x.InstrumentConfigurationList != nil {
		for _, ic := range x.InstrumentConfigurationList.Instruments {
			mic := mzml.InstrumentConfiguration{ID: ic.ID, ScanSettingsRef: ic.ScanSettingsRef, CvParams: cvParamsFromXML(ic.CvParams)}
			if ic.SoftwareRef != nil {
				mic.SoftwareRef = ic.SoftwareRef.Ref
			}
			if ic.ComponentList != nil {
				for _, s := range ic.ComponentList.Sources {
					mic.Sources = append(mic.Sources, mzml.ComponentSource{Order: s.Order, CvParams: cvParamsFromXML(s.CvParams)})
				}
				for _, a := range ic.ComponentList.Analyzers {
					mic.Analyzers = append(mic.Analyzers, mzml.ComponentAnalyzer{Order: a.Order, CvParams: cvParamsFromXML(a.CvParams)})
				}
				for _, d := range ic.ComponentList.Detectors {
					mic.Detectors = append(mic.Detectors, mzml.ComponentDetector{Order: d.Order, CvParams: cvParamsFromXML(d.CvParams)})
				}
			}
			doc.InstrumentConfigurations = append(doc.InstrumentConfigurations, mic)
		}
	}

	if x.DataProcessingList != nil {
		for _, dp := range x.DataProcessingList.DataProcessings {
			mdp := mzml.DataProcessing{ID: dp.ID}
			for _, m := range dp.Methods {
				mdp.Methods = append(mdp.Methods, mzml.ProcessingMethod{Order: m.Order, SoftwareRef: m.SoftwareRef, CvParams: cvParamsFromXML(m.CvParams), UserParams: userParamsFromXML(m.UserParams)})
			}
			doc.DataProcessings = append(doc.DataProcessings, mdp)
		}
	}

	if x.ScanSettingsList != nil {
		for _, ss := range x.ScanSettingsList.Items {
			mss := mzml.ScanSettings{ID: ss.ID, CvParams: cvParamsFromXML(ss.CvParams)}
			if ss.SourceFileList != nil {
				mss.SourceFileRefs = plainRefsFromXML(ss.SourceFileList.SourceFileRefs)
			}
			if ss.TargetList != nil {
				for _, t := range ss.TargetList.Targets {
					mss.Targets = append(mss.Targets, mzml.Target{CvParams: cvParamsFromXML(t.CvParams)})
				}
			}
			doc.ScanSettingsList = append(doc.ScanSettingsList, mss)
		}
	}

	if x.Run.SourceFileRefList != nil {
		doc.Run.SourceFileRefs = plainRefsFromXML(x.Run.SourceFileRefList.SourceFileRefs)
	}

	if x.Run.SpectrumList != nil {
		doc.Run.SpectrumList = make([]mzml.Spectrum, len(x.Run.SpectrumList.Spectra))
		for i := range x.Run.SpectrumList.Spectra {
			s, err := spectrumFromXML(&x.Run.SpectrumList.Spectra[i])
			if err != nil {
				return nil, err
			}
			doc.Run.SpectrumList[i] = s
		}
	}

	if x.Run.ChromatogramList != nil {
		doc.Run.ChromatogramList = make([]mzml.Chromatogram, len(x.Run.ChromatogramList.Chromatograms))
		for i := range x.Run.ChromatogramList.Chromatograms {
			c, err := chromatogramFromXML(&x.Run.ChromatogramList.Chromatograms[i])
			if err != nil {
				return nil, err
			}
			doc.Run.ChromatogramList[i] = c
		}
	}

	return doc, nil
}
