package mzmlio

import "github.com/b000io/b000/mzml"

func cvParamsToXML(in []mzml.CvParam) []xmlCvParam {
	if in == nil {
		return nil
	}
	out := make([]xmlCvParam, len(in))
	for i, p := range in {
		out[i] = xmlCvParam{
			CvRef:         p.CvRef,
			Accession:     p.Accession,
			Name:          p.Name,
			Value:         p.Value,
			UnitCvRef:     p.UnitCvRef,
			UnitName:      p.UnitName,
			UnitAccession: p.UnitAccession,
		}
	}
	return out
}

func cvParamsFromXML(in []xmlCvParam) []mzml.CvParam {
	if in == nil {
		return nil
	}
	out := make([]mzml.CvParam, len(in))
	for i, p := range in {
		out[i] = mzml.CvParam{
			CvRef:         p.CvRef,
			Accession:     p.Accession,
			Name:          p.Name,
			Value:         p.Value,
			UnitCvRef:     p.UnitCvRef,
			UnitName:      p.UnitName,
			UnitAccession: p.UnitAccession,
		}
	}
	return out
}

func userParamsToXML(in []mzml.UserParam) []xmlUserParam {
	if in == nil {
		return nil
	}
	out := make([]xmlUserParam, len(in))
	for i, p := range in {
		out[i] = xmlUserParam{Name: p.Name, Value: p.Value, Type: p.Type}
	}
	return out
}

func userParamsFromXML(in []xmlUserParam) []mzml.UserParam {
	if in == nil {
		return nil
	}
	out := make([]mzml.UserParam, len(in))
	for i, p := range in {
		out[i] = mzml.UserParam{Name: p.Name, Value: p.Value, Type: p.Type}
	}
	return out
}

func refsToXML(in []string) []xmlRefParamGroupRef {
	if in == nil {
		return nil
	}
	out := make([]xmlRefParamGroupRef, len(in))
	for i, r := range in {
		out[i] = xmlRefParamGroupRef{Ref: r}
	}
	return out
}

func refsFromXML(in []xmlRefParamGroupRef) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, r := range in {
		out[i] = r.Ref
	}
	return out
}

func plainRefsToXML(in []string) []xmlRef {
	if in == nil {
		return nil
	}
	out := make([]xmlRef, len(in))
	for i, r := range in {
		out[i] = xmlRef{Ref: r}
	}
	return out
}

func plainRefsFromXML(in []xmlRef) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, r := range in {
		out[i] = r.Ref
	}
	return out
}

func isolationWindowToXML(w *mzml.IsolationWindow) *xmlIsolationWindow {
	if w == nil {
		return nil
	}
	return &xmlIsolationWindow{CvParams: cvParamsToXML(w.CvParams)}
}

func isolationWindowFromXML(w *xmlIsolationWindow) *mzml.IsolationWindow {
	if w == nil {
		return nil
	}
	return &mzml.IsolationWindow{CvParams: cvParamsFromXML(w.CvParams)}
}

func activationToXML(a *mzml.Activation) *xmlActivation {
	if a == nil {
		return nil
	}
	return &xmlActivation{CvParams: cvParamsToXML(a.CvParams)}
}

func activationFromXML(a *xmlActivation) *mzml.Activation {
	if a == nil {
		return nil
	}
	return &mzml.Activation{CvParams: cvParamsFromXML(a.CvParams)}
}

func precursorToXML(p *mzml.Precursor) *xmlPrecursor {
	if p == nil {
		return nil
	}
	out := &xmlPrecursor{
		SpectrumRef:        p.SpectrumRef,
		SourceFileRef:      p.SourceFileRef,
		ExternalSpectrumID: p.ExternalSpectrumID,
		IsolationWindow:    isolationWindowToXML(p.IsolationWindow),
		Activation:         activationToXML(p.Activation),
	}
	if len(p.SelectedIons) > 0 {
		ions := make([]xmlSelectedIon, len(p.SelectedIons))
		for i, ion := range p.SelectedIons {
			ions[i] = xmlSelectedIon{CvParams: cvParamsToXML(ion.CvParams)}
		}
		out.SelectedIonList = &xmlSelectedIonList{Count: len(ions), Ions: ions}
	}
	return out
}

func precursorFromXML(p *xmlPrecursor) *mzml.Precursor {
	if p == nil {
		return nil
	}
	out := &mzml.Precursor{
		SpectrumRef:        p.SpectrumRef,
		SourceFileRef:      p.SourceFileRef,
		ExternalSpectrumID: p.ExternalSpectrumID,
		IsolationWindow:    isolationWindowFromXML(p.IsolationWindow),
		Activation:         activationFromXML(p.Activation),
	}
	if p.SelectedIonList != nil {
		out.SelectedIons = make([]mzml.SelectedIon, len(p.SelectedIonList.Ions))
		for i, ion := range p.SelectedIonList.Ions {
			out.SelectedIons[i] = mzml.SelectedIon{CvParams: cvParamsFromXML(ion.CvParams)}
		}
	}
	return out
}

func productToXML(p *mzml.Product) *xmlProduct {
	if p == nil {
		return nil
	}
	return &xmlProduct{IsolationWindow: isolationWindowToXML(p.IsolationWindow)}
}

func productFromXML(p *xmlProduct) *mzml.Product {
	if p == nil {
		return nil
	}
	return &mzml.Product{IsolationWindow: isolationWindowFromXML(p.IsolationWindow)}
}

func binaryDataArraysToXML(in []mzml.BinaryDataArray) *xmlBinaryDataArrayList {
	if len(in) == 0 {
		return nil
	}
	out := make([]xmlBinaryDataArray, len(in))
	for i, a := range in {
		encoded, err := encodePayload(a.Payload)
		if err != nil {
			encoded = ""
		}
		out[i] = xmlBinaryDataArray{
			EncodedLength:               uint32(len(encoded)),
			DataProcessingRef:           a.DataProcessingRef,
			ReferenceableParamGroupRefs: refsToXML(a.ReferenceableParamGroupRefs),
			CvParams:                    cvParamsToXML(a.CvParams),
			UserParams:                  userParamsToXML(a.UserParams),
			Binary:                      xmlBinary{Data: encoded},
		}
	}
	return &xmlBinaryDataArrayList{Count: len(out), Arrays: out}
}

func binaryDataArraysFromXML(l *xmlBinaryDataArrayList) ([]mzml.BinaryDataArray, error) {
	if l == nil {
		return nil, nil
	}
	out := make([]mzml.BinaryDataArray, len(l.Arrays))
	for i, a := range l.Arrays {
		payload, err := decodePayload(a.Binary.Data, cvParamsFromXML(a.CvParams))
		if err != nil {
			return nil, err
		}
		out[i] = mzml.BinaryDataArray{
			ArrayLength:                 uint32(payload.Len()),
			EncodedLength:               a.EncodedLength,
			DataProcessingRef:           a.DataProcessingRef,
			ReferenceableParamGroupRefs: refsFromXML(a.ReferenceableParamGroupRefs),
			CvParams:                    cvParamsFromXML(a.CvParams),
			UserParams:                  userParamsFromXML(a.UserParams),
			Payload:                     payload,
		}
	}
	return out, nil
}

func scansToXML(in []mzml.Scan) *xmlScanList {
	if len(in) == 0 {
		return nil
	}
	out := make([]xmlScan, len(in))
	for i, s := range in {
		xs := xmlScan{
			InstrumentConfigurationRef:  s.InstrumentConfigurationRef,
			SourceFileRef:               s.SourceFileRef,
			SpectrumRef:                 s.SpectrumRef,
			ExternalSpectrumID:          s.ExternalSpectrumID,
			ReferenceableParamGroupRefs: refsToXML(s.ReferenceableParamGroupRefs),
			CvParams:                    cvParamsToXML(s.CvParams),
			UserParams:                  userParamsToXML(s.UserParams),
		}
		if len(s.ScanWindows) > 0 {
			windows := make([]xmlScanWindow, len(s.ScanWindows))
			for j, w := range s.ScanWindows {
				windows[j] = xmlScanWindow{CvParams: cvParamsToXML(w.CvParams)}
			}
			xs.ScanWindowList = &xmlScanWindowList{Windows: windows}
		}
		out[i] = xs
	}
	return &xmlScanList{Count: len(out), Scans: out}
}

func scansFromXML(l *xmlScanList) []mzml.Scan {
	if l == nil {
		return nil
	}
	out := make([]mzml.Scan, len(l.Scans))
	for i, s := range l.Scans {
		ms := mzml.Scan{
			InstrumentConfigurationRef:  s.InstrumentConfigurationRef,
			SourceFileRef:               s.SourceFileRef,
			SpectrumRef:                 s.SpectrumRef,
			ExternalSpectrumID:          s.ExternalSpectrumID,
			ReferenceableParamGroupRefs: refsFromXML(s.ReferenceableParamGroupRefs),
			CvParams:                    cvParamsFromXML(s.CvParams),
			UserParams:                  userParamsFromXML(s.UserParams),
		}
		if s.ScanWindowList != nil {
			ms.ScanWindows = make([]mzml.ScanWindow, len(s.ScanWindowList.Windows))
			for j, w := range s.ScanWindowList.Windows {
				ms.ScanWindows[j] = mzml.ScanWindow{CvParams: cvParamsFromXML(w.CvParams)}
			}
		}
		out[i] = ms
	}
	return out
}
