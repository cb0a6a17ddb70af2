package reconstruct

import (
	"github.com/b000io/b000/cvnames"
	"github.com/b000io/b000/errs"
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/metadata"
	"github.com/b000io/b000/mzml"
)

func reconstructIsolationWindow(ix *index, parentID uint32, tag format.TagID, names cvnames.Table) *mzml.IsolationWindow {
	ids := ix.childrenWithTag(parentID, tag)
	if len(ids) == 0 {
		return nil
	}
	return &mzml.IsolationWindow{CvParams: ix.cvParams(ids[0], names)}
}

func reconstructPrecursor(ix *index, ownerID uint32, names cvnames.Table) mzml.Precursor {
	p := mzml.Precursor{}
	p.SpectrumRef, _ = ix.attrString(ownerID, format.AttrSpectrumRef)
	p.SourceFileRef, _ = ix.attrString(ownerID, format.AttrSourceFileRef)
	p.ExternalSpectrumID, _ = ix.attrString(ownerID, format.AttrExternalSpectrumID)
	p.IsolationWindow = reconstructIsolationWindow(ix, ownerID, format.TagIsolationWindow, names)

	for _, ionID := range ix.childrenWithTag(ownerID, format.TagSelectedIon) {
		p.SelectedIons = append(p.SelectedIons, mzml.SelectedIon{CvParams: ix.cvParams(ionID, names)})
	}
	if actIDs := ix.childrenWithTag(ownerID, format.TagActivation); len(actIDs) > 0 {
		p.Activation = &mzml.Activation{CvParams: ix.cvParams(actIDs[0], names)}
	}
	return p
}

func reconstructProduct(ix *index, ownerID uint32, names cvnames.Table) mzml.Product {
	return mzml.Product{IsolationWindow: reconstructIsolationWindow(ix, ownerID, format.TagProduct, names)}
}

func reconstructScan(ix *index, ownerID uint32, names cvnames.Table) mzml.Scan {
	s := mzml.Scan{}
	s.InstrumentConfigurationRef, _ = ix.attrString(ownerID, format.AttrInstrumentConfigurationRef)
	s.SourceFileRef, _ = ix.attrString(ownerID, format.AttrSourceFileRef)
	s.SpectrumRef, _ = ix.attrString(ownerID, format.AttrSpectrumRef)
	s.ExternalSpectrumID, _ = ix.attrString(ownerID, format.AttrExternalSpectrumID)
	s.CvParams = ix.cvParams(ownerID, names)
	s.UserParams = ix.userParams(ownerID)

	for _, wID := range ix.childrenWithTag(ownerID, format.TagScanWindow) {
		s.ScanWindows = append(s.ScanWindows, mzml.ScanWindow{CvParams: ix.cvParams(wID, names)})
	}
	return s
}

func reconstructBinaryDataArray(ix *index, ownerID uint32, names cvnames.Table) mzml.BinaryDataArray {
	a := mzml.BinaryDataArray{}
	a.ArrayLength = ix.attrUint32(ownerID, format.AttrDefaultArrayLength)
	a.EncodedLength = ix.attrUint32(ownerID, format.AttrEncodedLength)
	a.DataProcessingRef, _ = ix.attrString(ownerID, format.AttrDataProcessingRef)
	a.CvParams = ix.cvParams(ownerID, names)
	a.UserParams = ix.userParams(ownerID)
	return a
}

// ReconstructSpectrum rebuilds one Spectrum from its flattened row slice.
func ReconstructSpectrum(rows []metadata.Row, names cvnames.Table) (*mzml.Spectrum, error) {
	ix := buildIndex(rows)
	ownerID, ok := ix.topLevelOwner(format.TagSpectrum)
	if !ok {
		return nil, errs.New(errs.KindMetadataInconsistent, "Spectrum", nil, nil)
	}

	s := &mzml.Spectrum{}
	s.ID, _ = ix.attrString(ownerID, format.AttrID)
	s.Index = ix.attrUint32(ownerID, format.AttrIndex)
	s.DefaultArrayLength = ix.attrUint32(ownerID, format.AttrDefaultArrayLength)
	s.NativeID, _ = ix.attrString(ownerID, format.AttrNativeID)
	s.DataProcessingRef, _ = ix.attrString(ownerID, format.AttrDataProcessingRef)
	s.SourceFileRef, _ = ix.attrString(ownerID, format.AttrSourceFileRef)
	s.SpotID, _ = ix.attrString(ownerID, format.AttrSpotID)
	s.MSLevel = ix.attrInt(ownerID, format.AttrOrder)
	s.CvParams = ix.cvParams(ownerID, names)
	s.UserParams = ix.userParams(ownerID)

	for _, id := range ix.childrenWithTag(ownerID, format.TagScan) {
		s.Scans = append(s.Scans, reconstructScan(ix, id, names))
	}
	for _, id := range ix.childrenWithTag(ownerID, format.TagPrecursor) {
		s.Precursors = append(s.Precursors, reconstructPrecursor(ix, id, names))
	}
	for _, id := range ix.childrenWithTag(ownerID, format.TagProduct) {
		s.Products = append(s.Products, reconstructProduct(ix, id, names))
	}
	for _, id := range ix.childrenWithTag(ownerID, format.TagBinaryDataArray) {
		s.BinaryDataArrays = append(s.BinaryDataArrays, reconstructBinaryDataArray(ix, id, names))
	}

	return s, nil
}

// ReconstructChromatogram rebuilds one Chromatogram from its flattened row
// slice.
func ReconstructChromatogram(rows []metadata.Row, names cvnames.Table) (*mzml.Chromatogram, error) {
	ix := buildIndex(rows)
	ownerID, ok := ix.topLevelOwner(format.TagChromatogram)
	if !ok {
		return nil, errs.New(errs.KindMetadataInconsistent, "Chromatogram", nil, nil)
	}

	c := &mzml.Chromatogram{}
	c.ID, _ = ix.attrString(ownerID, format.AttrID)
	c.NativeID, _ = ix.attrString(ownerID, format.AttrNativeID)
	c.Index = ix.attrUint32(ownerID, format.AttrIndex)
	c.DefaultArrayLength = ix.attrUint32(ownerID, format.AttrDefaultArrayLength)
	c.DataProcessingRef, _ = ix.attrString(ownerID, format.AttrDataProcessingRef)
	c.CvParams = ix.cvParams(ownerID, names)
	c.UserParams = ix.userParams(ownerID)

	if ids := ix.childrenWithTag(ownerID, format.TagPrecursor); len(ids) > 0 {
		p := reconstructPrecursor(ix, ids[0], names)
		c.Precursor = &p
	}
	if ids := ix.childrenWithTag(ownerID, format.TagProduct); len(ids) > 0 {
		p := reconstructProduct(ix, ids[0], names)
		c.Product = &p
	}
	for _, id := range ix.childrenWithTag(ownerID, format.TagBinaryDataArray) {
		c.BinaryDataArrays = append(c.BinaryDataArrays, reconstructBinaryDataArray(ix, id, names))
	}

	return c, nil
}
