package reconstruct

import (
	"github.com/b000io/b000/cvcode"
	"github.com/b000io/b000/cvnames"
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/metadata"
	"github.com/b000io/b000/mzml"
)

// index is the owner-to-rows / parent-to-children pair the reconstructor
// builds once per top-level item (§4.7).
type index struct {
	rowsByOwner map[uint32][]metadata.Row
	childrenOf  map[uint32][]uint32
}

func buildIndex(rows []metadata.Row) *index {
	ix := &index{
		rowsByOwner: make(map[uint32][]metadata.Row),
		childrenOf:  make(map[uint32][]uint32),
	}

	seenChild := make(map[[2]uint32]bool)
	for _, r := range rows {
		ix.rowsByOwner[r.OwnerID] = append(ix.rowsByOwner[r.OwnerID], r)
		key := [2]uint32{r.ParentID, r.OwnerID}
		if !seenChild[key] {
			seenChild[key] = true
			ix.childrenOf[r.ParentID] = append(ix.childrenOf[r.ParentID], r.OwnerID)
		}
	}

	return ix
}

// topLevelOwner returns the smallest owner id whose rows are parented at 0
// and whose Tag equals tag. Any other top-level owners with that tag are not
// returned, and no caller reconstructs them.
func (ix *index) topLevelOwner(tag format.TagID) (uint32, bool) {
	var best uint32
	found := false
	for _, child := range ix.childrenOf[0] {
		rows := ix.rowsByOwner[child]
		if len(rows) == 0 || rows[0].Tag != tag {
			continue
		}
		if !found || child < best {
			best = child
			found = true
		}
	}
	return best, found
}

func (ix *index) attrString(ownerID uint32, attr format.AttrTail) (string, bool) {
	for _, r := range ix.rowsByOwner[ownerID] {
		if r.CvRef == format.CvRefAttr && format.AttrTail(r.AccessionTail) == attr {
			if r.Kind == format.ValueEmpty {
				return "", false
			}
			return metadata.FormatValue(r.Kind, r.Number, r.Text), true
		}
	}
	return "", false
}

func (ix *index) attrUint32(ownerID uint32, attr format.AttrTail) uint32 {
	for _, r := range ix.rowsByOwner[ownerID] {
		if r.CvRef == format.CvRefAttr && format.AttrTail(r.AccessionTail) == attr && r.Kind == format.ValueNumber {
			return uint32(r.Number)
		}
	}
	return 0
}

func (ix *index) attrInt(ownerID uint32, attr format.AttrTail) int {
	return int(ix.attrUint32(ownerID, attr))
}

// cvParams collects an owner's non-structural rows (CvRef != Attr) as
// mzml.CvParam values, resolving names via the supplied table.
func (ix *index) cvParams(ownerID uint32, names cvnames.Table) []mzml.CvParam {
	var out []mzml.CvParam
	for _, r := range ix.rowsByOwner[ownerID] {
		if r.CvRef == format.CvRefAttr {
			continue
		}
		out = append(out, rowToCvParam(r, names))
	}
	return out
}

func rowToCvParam(r metadata.Row, names cvnames.Table) mzml.CvParam {
	accession := cvcode.FormatAccession(r.CvRef, r.AccessionTail, r.AccessionText)
	name, ok := names.Name(r.CvRef, r.AccessionTail)
	if !ok {
		name = accession
	}

	p := mzml.CvParam{
		CvRef:     cvcode.Prefix(r.CvRef),
		Accession: accession,
		Name:      name,
		Value:     metadata.FormatValue(r.Kind, r.Number, r.Text),
	}
	if r.UnitAccessionTail != 0 || r.UnitAccessionText != "" {
		p.UnitCvRef = cvcode.Prefix(r.UnitCvRef)
		p.UnitAccession = cvcode.FormatAccession(r.UnitCvRef, r.UnitAccessionTail, r.UnitAccessionText)
		if p.UnitName, ok = names.Name(r.UnitCvRef, r.UnitAccessionTail); !ok {
			p.UnitName = p.UnitAccession
		}
	}
	return p
}

// userParams collects an ownerID's child sub-owners that carry a
// AttrUserParamName row, reconstructing each as a mzml.UserParam (§4.6's
// synthetic-child encoding, mirrored in flatten.emitUserParam).
func (ix *index) userParams(ownerID uint32) []mzml.UserParam {
	var out []mzml.UserParam
	for _, child := range ix.childrenOf[ownerID] {
		name, ok := ix.attrString(child, format.AttrUserParamName)
		if !ok {
			continue
		}
		typ, _ := ix.attrString(child, format.AttrUserParamType)
		value := ""
		for _, r := range ix.rowsByOwner[child] {
			if r.CvRef == format.CvRefOther {
				value = metadata.FormatValue(r.Kind, r.Number, r.Text)
			}
		}
		out = append(out, mzml.UserParam{Name: name, Type: typ, Value: value})
	}
	return out
}

// childrenWithTag returns parentID's child owner ids whose Tag is tag, in
// ascending owner-id order (the order flatten allocated them in).
func (ix *index) childrenWithTag(parentID uint32, tag format.TagID) []uint32 {
	var out []uint32
	for _, child := range ix.childrenOf[parentID] {
		rows := ix.rowsByOwner[child]
		if len(rows) > 0 && rows[0].Tag == tag {
			out = append(out, child)
		}
	}
	return out
}
