package metadata

import (
	"math"

	"github.com/b000io/b000/endian"
	"github.com/b000io/b000/errs"
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/section"
)

// Unpack parses a section's packed bytes back into per-item row slices:
// items[i] is the window of rows CI[i]..CI[i+1] belongs to.
func Unpack(data []byte, counts section.SectionCounts) ([][]Row, error) {
	itemCount := int(counts.ItemCount)
	totalRows := int(counts.TotalRows)
	numCount := int(counts.NumCount)
	strCount := int(counts.StrCount)

	engine := endian.GetLittleEndianEngine()
	pos := 0

	next := func(n int) ([]byte, error) {
		if pos+n > len(data) {
			return nil, errs.New(errs.KindMetadataInconsistent, "section_length", len(data), pos+n)
		}
		b := data[pos : pos+n]
		pos += n
		return b, nil
	}

	ciBytes, err := next(4 * (itemCount + 1))
	if err != nil {
		return nil, err
	}
	moiBytes, err := next(4 * totalRows)
	if err != nil {
		return nil, err
	}
	mpiBytes, err := next(4 * totalRows)
	if err != nil {
		return nil, err
	}
	mtiBytes, err := next(totalRows)
	if err != nil {
		return nil, err
	}
	mriBytes, err := next(totalRows)
	if err != nil {
		return nil, err
	}
	manBytes, err := next(4 * totalRows)
	if err != nil {
		return nil, err
	}
	muriBytes, err := next(totalRows)
	if err != nil {
		return nil, err
	}
	muanBytes, err := next(4 * totalRows)
	if err != nil {
		return nil, err
	}
	aoffBytes, err := next(4 * totalRows)
	if err != nil {
		return nil, err
	}
	alenBytes, err := next(4 * totalRows)
	if err != nil {
		return nil, err
	}
	auoffBytes, err := next(4 * totalRows)
	if err != nil {
		return nil, err
	}
	aulenBytes, err := next(4 * totalRows)
	if err != nil {
		return nil, err
	}
	vkBytes, err := next(totalRows)
	if err != nil {
		return nil, err
	}
	viBytes, err := next(4 * totalRows)
	if err != nil {
		return nil, err
	}
	vnBytes, err := next(8 * numCount)
	if err != nil {
		return nil, err
	}
	voffBytes, err := next(4 * strCount)
	if err != nil {
		return nil, err
	}
	vlenBytes, err := next(4 * strCount)
	if err != nil {
		return nil, err
	}
	vsBytes := data[pos:]

	ci := make([]uint32, itemCount+1)
	for i := range ci {
		ci[i] = engine.Uint32(ciBytes[4*i:])
	}
	if ci[0] != 0 || int(ci[itemCount]) != totalRows {
		return nil, errs.New(errs.KindMetadataInconsistent, "CI", ci[itemCount], totalRows)
	}
	for i := 0; i < itemCount; i++ {
		if ci[i] > ci[i+1] {
			return nil, errs.New(errs.KindMetadataInconsistent, "CI", ci[i], ci[i+1])
		}
	}

	rows := make([]Row, totalRows)
	for i := 0; i < totalRows; i++ {
		r := Row{
			OwnerID:           engine.Uint32(moiBytes[4*i:]),
			ParentID:          engine.Uint32(mpiBytes[4*i:]),
			Tag:               format.TagID(mtiBytes[i]),
			CvRef:             format.CvRef(mriBytes[i]),
			AccessionTail:     engine.Uint32(manBytes[4*i:]),
			UnitCvRef:         format.CvRef(muriBytes[i]),
			UnitAccessionTail: engine.Uint32(muanBytes[4*i:]),
			Kind:              format.ValueKind(vkBytes[i]),
		}

		if alen := engine.Uint32(alenBytes[4*i:]); alen > 0 {
			off := uint64(engine.Uint32(aoffBytes[4*i:]))
			if off+uint64(alen) > uint64(len(vsBytes)) {
				return nil, errs.New(errs.KindMetadataInconsistent, "AOFF/ALEN", off+uint64(alen), len(vsBytes))
			}
			r.AccessionText = string(vsBytes[off : off+uint64(alen)])
		}
		if aulen := engine.Uint32(aulenBytes[4*i:]); aulen > 0 {
			off := uint64(engine.Uint32(auoffBytes[4*i:]))
			if off+uint64(aulen) > uint64(len(vsBytes)) {
				return nil, errs.New(errs.KindMetadataInconsistent, "AUOFF/AULEN", off+uint64(aulen), len(vsBytes))
			}
			r.UnitAccessionText = string(vsBytes[off : off+uint64(aulen)])
		}

		idx := engine.Uint32(viBytes[4*i:])

		switch r.Kind {
		case format.ValueNumber:
			if int(idx) >= numCount {
				return nil, errs.New(errs.KindMetadataInconsistent, "VI", idx, numCount)
			}
			r.Number = math.Float64frombits(engine.Uint64(vnBytes[8*idx:]))
		case format.ValueText:
			if int(idx) >= strCount {
				return nil, errs.New(errs.KindMetadataInconsistent, "VI", idx, strCount)
			}
			off := engine.Uint32(voffBytes[4*idx:])
			length := engine.Uint32(vlenBytes[4*idx:])
			if uint64(off)+uint64(length) > uint64(len(vsBytes)) {
				return nil, errs.New(errs.KindMetadataInconsistent, "VS", uint64(off)+uint64(length), len(vsBytes))
			}
			r.Text = string(vsBytes[off : off+length])
		}

		rows[i] = r
	}

	items := make([][]Row, itemCount)
	for i := 0; i < itemCount; i++ {
		items[i] = rows[ci[i]:ci[i+1]]
	}

	return items, nil
}
