package flatten

import (
	"github.com/b000io/b000/cvcode"
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/metadata"
	"github.com/b000io/b000/mzml"
)

// Options controls encode-time policy that affects the rows the flattener
// produces (as opposed to the raw container/array-dtype policy in the
// arrays package).
type Options struct {
	// F32Compress mirrors the array pipeline's downcast policy: when true,
	// the canonical numeric-type CV param on an m/z, intensity, or time
	// BinaryDataArray is rewritten to "32-bit float" regardless of what
	// the source document declared (§4.6, §4.8).
	F32Compress bool
}

// builder accumulates rows for a single top-level item, allocating owner
// ids starting at 1 (0 is reserved for "no parent").
type builder struct {
	rows   []metadata.Row
	nextID uint32
	groups map[string]*mzml.ReferenceableParamGroup
	opts   Options
}

func newBuilder(groups []mzml.ReferenceableParamGroup, opts Options) *builder {
	b := &builder{nextID: 1, groups: make(map[string]*mzml.ReferenceableParamGroup, len(groups)), opts: opts}
	for i := range groups {
		b.groups[groups[i].ID] = &groups[i]
	}
	return b
}

func (b *builder) alloc() uint32 {
	id := b.nextID
	b.nextID++
	return id
}

// emitString records a string attribute row; an empty value is omitted
// entirely per the "empty string attribute is treated as absent" rule.
func (b *builder) emitString(ownerID, parentID uint32, tag format.TagID, attr format.AttrTail, v string) {
	if v == "" {
		return
	}
	b.rows = append(b.rows, metadata.Row{
		OwnerID: ownerID, ParentID: parentID, Tag: tag,
		CvRef: format.CvRefAttr, AccessionTail: uint32(attr),
		Kind: format.ValueText, Text: v,
	})
}

// emitNumber always records a numeric attribute row, including zero.
func (b *builder) emitNumber(ownerID, parentID uint32, tag format.TagID, attr format.AttrTail, v float64) {
	b.rows = append(b.rows, metadata.Row{
		OwnerID: ownerID, ParentID: parentID, Tag: tag,
		CvRef: format.CvRefAttr, AccessionTail: uint32(attr),
		Kind: format.ValueNumber, Number: v,
	})
}

func (b *builder) emitCvParam(ownerID, parentID uint32, tag format.TagID, p mzml.CvParam) {
	cvRef, tail := cvcode.ParseAccession(p.Accession)
	accessionText := ""
	if tail == 0 && p.Accession != "" {
		accessionText = p.Accession
	}

	unitRef, unitTail := format.CvRef(format.CvRefOther), uint32(0)
	unitAccessionText := ""
	if p.UnitAccession != "" {
		unitRef, unitTail = cvcode.ParseAccession(p.UnitAccession)
		if unitTail == 0 {
			unitAccessionText = p.UnitAccession
		}
	}

	kind, num, text := metadata.ClassifyValue(p.Value)
	b.rows = append(b.rows, metadata.Row{
		OwnerID: ownerID, ParentID: parentID, Tag: tag,
		CvRef: cvRef, AccessionTail: tail, AccessionText: accessionText,
		UnitCvRef: unitRef, UnitAccessionTail: unitTail, UnitAccessionText: unitAccessionText,
		Kind: kind, Number: num, Text: text,
	})
}

func (b *builder) emitCvParams(ownerID, parentID uint32, tag format.TagID, params []mzml.CvParam) {
	for _, p := range params {
		b.emitCvParam(ownerID, parentID, tag, p)
	}
}

// emitUserParam allocates a synthetic TagAttribute sub-owner carrying the
// user param's name/type/value as three attribute-shaped rows, discriminated
// from a real structural attribute by the presence of AttrUserParamName.
func (b *builder) emitUserParam(parentID uint32, up mzml.UserParam) {
	id := b.alloc()
	b.emitString(id, parentID, format.TagAttribute, format.AttrUserParamName, up.Name)
	b.emitString(id, parentID, format.TagAttribute, format.AttrUserParamType, up.Type)
	kind, num, text := metadata.ClassifyValue(up.Value)
	b.rows = append(b.rows, metadata.Row{
		OwnerID: id, ParentID: parentID, Tag: format.TagAttribute,
		CvRef: format.CvRefOther, Kind: kind, Number: num, Text: text,
	})
}

func (b *builder) emitUserParams(parentID uint32, ups []mzml.UserParam) {
	for _, up := range ups {
		b.emitUserParam(parentID, up)
	}
}

// inlineGroupParams expands a referenceable-param-group ref list by
// emitting the referenced groups' CV/user params directly under ownerID,
// tagged with the consuming element's own tag (§4.6).
func (b *builder) inlineGroupParams(ownerID, parentID uint32, tag format.TagID, refs []string) {
	for _, ref := range refs {
		g, ok := b.groups[ref]
		if !ok {
			continue
		}
		b.emitCvParams(ownerID, parentID, tag, g.CvParams)
		b.emitUserParams(ownerID, g.UserParams)
	}
}

func arrayKindOf(params []mzml.CvParam) format.ArrayKind {
	for _, p := range params {
		_, tail := cvcode.ParseAccession(p.Accession)
		switch format.ArrayKind(tail) {
		case format.ArrayKindMZ, format.ArrayKindIntensity, format.ArrayKindTime:
			return format.ArrayKind(tail)
		}
	}
	return format.ArrayKindOther
}

// canonicalizeF32 replaces any 32-bit-float/64-bit-float numeric-type CV
// param with a single canonical "32-bit float" entry when F32Compress is in
// effect and the array is one of the downcast-eligible kinds (§4.6, §4.8).
func canonicalizeF32(params []mzml.CvParam, kind format.ArrayKind, f32Compress bool) []mzml.CvParam {
	if !f32Compress || kind == format.ArrayKindOther {
		return params
	}

	out := make([]mzml.CvParam, 0, len(params)+1)
	replaced := false
	for _, p := range params {
		if p.Accession == "MS:1000521" || p.Accession == "MS:1000523" {
			if !replaced {
				out = append(out, mzml.CvParam{CvRef: "MS", Accession: "MS:1000521", Name: "32-bit float"})
				replaced = true
			}
			continue
		}
		out = append(out, p)
	}
	if !replaced {
		out = append(out, mzml.CvParam{CvRef: "MS", Accession: "MS:1000521", Name: "32-bit float"})
	}
	return out
}

func (b *builder) flattenBinaryDataArray(parentID uint32, a mzml.BinaryDataArray) {
	id := b.alloc()
	const tag = format.TagBinaryDataArray

	b.emitNumber(id, parentID, tag, format.AttrDefaultArrayLength, float64(a.ArrayLength))
	b.emitNumber(id, parentID, tag, format.AttrEncodedLength, float64(a.EncodedLength))
	b.emitString(id, parentID, tag, format.AttrDataProcessingRef, a.DataProcessingRef)

	b.inlineGroupParams(id, parentID, tag, a.ReferenceableParamGroupRefs)

	kind := arrayKindOf(a.CvParams)
	params := canonicalizeF32(a.CvParams, kind, b.opts.F32Compress)
	b.emitCvParams(id, parentID, tag, params)
	b.emitUserParams(id, a.UserParams)
}

func (b *builder) flattenIsolationWindow(parentID uint32, tag format.TagID, w *mzml.IsolationWindow) {
	if w == nil {
		return
	}
	id := b.alloc()
	b.emitCvParams(id, parentID, format.TagIsolationWindow, w.CvParams)
}

func (b *builder) flattenPrecursor(parentID uint32, p mzml.Precursor) {
	id := b.alloc()
	const tag = format.TagPrecursor

	b.emitString(id, parentID, tag, format.AttrSpectrumRef, p.SpectrumRef)
	b.emitString(id, parentID, tag, format.AttrSourceFileRef, p.SourceFileRef)
	b.emitString(id, parentID, tag, format.AttrExternalSpectrumID, p.ExternalSpectrumID)

	b.flattenIsolationWindow(id, tag, p.IsolationWindow)
	for _, ion := range p.SelectedIons {
		ionID := b.alloc()
		b.emitCvParams(ionID, id, format.TagSelectedIon, ion.CvParams)
	}
	if p.Activation != nil {
		actID := b.alloc()
		b.emitCvParams(actID, id, format.TagActivation, p.Activation.CvParams)
	}
}

func (b *builder) flattenProduct(parentID uint32, p mzml.Product) {
	id := b.alloc()
	b.flattenIsolationWindow(id, format.TagProduct, p.IsolationWindow)
}

func (b *builder) flattenScan(parentID uint32, s mzml.Scan) {
	id := b.alloc()
	const tag = format.TagScan

	b.emitString(id, parentID, tag, format.AttrInstrumentConfigurationRef, s.InstrumentConfigurationRef)
	b.emitString(id, parentID, tag, format.AttrSourceFileRef, s.SourceFileRef)
	b.emitString(id, parentID, tag, format.AttrSpectrumRef, s.SpectrumRef)
	b.emitString(id, parentID, tag, format.AttrExternalSpectrumID, s.ExternalSpectrumID)

	b.inlineGroupParams(id, parentID, tag, s.ReferenceableParamGroupRefs)
	b.emitCvParams(id, parentID, tag, s.CvParams)
	b.emitUserParams(id, s.UserParams)

	for _, w := range s.ScanWindows {
		wID := b.alloc()
		b.emitCvParams(wID, id, format.TagScanWindow, w.CvParams)
	}
}

// FlattenSpectrum flattens one spectrum into a single top-level item's row
// slice. groups is the document's referenceable-param-group table used to
// inline group refs.
func FlattenSpectrum(s *mzml.Spectrum, groups []mzml.ReferenceableParamGroup, opts Options) []metadata.Row {
	b := newBuilder(groups, opts)
	const tag = format.TagSpectrum
	id := b.alloc() // == 1

	b.emitString(id, 0, tag, format.AttrID, s.ID)
	b.emitNumber(id, 0, tag, format.AttrIndex, float64(s.Index))
	b.emitNumber(id, 0, tag, format.AttrDefaultArrayLength, float64(s.DefaultArrayLength))
	b.emitString(id, 0, tag, format.AttrNativeID, s.NativeID)
	b.emitString(id, 0, tag, format.AttrDataProcessingRef, s.DataProcessingRef)
	b.emitString(id, 0, tag, format.AttrSourceFileRef, s.SourceFileRef)
	b.emitString(id, 0, tag, format.AttrSpotID, s.SpotID)
	if s.MSLevel != 0 {
		b.emitNumber(id, 0, tag, format.AttrOrder, float64(s.MSLevel))
	}

	b.inlineGroupParams(id, 0, tag, s.ReferenceableParamGroupRefs)
	b.emitCvParams(id, 0, tag, s.CvParams)
	b.emitUserParams(id, s.UserParams)

	for _, sc := range s.Scans {
		b.flattenScan(id, sc)
	}
	for _, p := range s.Precursors {
		b.flattenPrecursor(id, p)
	}
	for _, p := range s.Products {
		b.flattenProduct(id, p)
	}
	for _, a := range s.BinaryDataArrays {
		b.flattenBinaryDataArray(id, a)
	}

	return b.rows
}

// FlattenChromatogram flattens one chromatogram into a single top-level
// item's row slice.
func FlattenChromatogram(c *mzml.Chromatogram, groups []mzml.ReferenceableParamGroup, opts Options) []metadata.Row {
	b := newBuilder(groups, opts)
	const tag = format.TagChromatogram
	id := b.alloc() // == 1

	b.emitString(id, 0, tag, format.AttrID, c.ID)
	b.emitString(id, 0, tag, format.AttrNativeID, c.NativeID)
	b.emitNumber(id, 0, tag, format.AttrIndex, float64(c.Index))
	b.emitNumber(id, 0, tag, format.AttrDefaultArrayLength, float64(c.DefaultArrayLength))
	b.emitString(id, 0, tag, format.AttrDataProcessingRef, c.DataProcessingRef)

	b.inlineGroupParams(id, 0, tag, c.ReferenceableParamGroupRefs)
	b.emitCvParams(id, 0, tag, c.CvParams)
	b.emitUserParams(id, c.UserParams)

	if c.Precursor != nil {
		b.flattenPrecursor(id, *c.Precursor)
	}
	if c.Product != nil {
		b.flattenProduct(id, *c.Product)
	}
	for _, a := range c.BinaryDataArrays {
		b.flattenBinaryDataArray(id, a)
	}

	return b.rows
}
