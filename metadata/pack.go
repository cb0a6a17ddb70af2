package metadata

import (
	"math"

	"github.com/b000io/b000/endian"
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/internal/pool"
	"github.com/b000io/b000/section"
)

// Pack serializes itemRowCounts (the number of rows each top-level item
// contributed, in walk order) and the concatenated rows slice into the
// section's wire layout, returning the packed bytes and the SectionCounts
// the header stores alongside it.
//
// len(rows) must equal the sum of itemRowCounts; Pack does not itself
// verify this against an externally supplied CI, since itemRowCounts is
// exactly how CI gets built.
func Pack(itemRowCounts []int, rows []Row) ([]byte, section.SectionCounts) {
	engine := endian.GetLittleEndianEngine()

	itemCount := len(itemRowCounts)
	totalRows := len(rows)

	ci := make([]byte, 4*(itemCount+1))
	var cum uint32
	for i, c := range itemRowCounts {
		cum += uint32(c)
		engine.PutUint32(ci[4*(i+1):], cum)
	}

	moi := make([]byte, 4*totalRows)
	mpi := make([]byte, 4*totalRows)
	mti := make([]byte, totalRows)
	mri := make([]byte, totalRows)
	man := make([]byte, 4*totalRows)
	muri := make([]byte, totalRows)
	muan := make([]byte, 4*totalRows)
	// AOFF/ALEN and AUOFF/AULEN point an opaque AccessionText/
	// UnitAccessionText into the VS pool, one slot per row (0/0 meaning
	// "no opaque accession text"); see Row.AccessionText.
	aoff := make([]byte, 4*totalRows)
	alen := make([]byte, 4*totalRows)
	auoff := make([]byte, 4*totalRows)
	aulen := make([]byte, 4*totalRows)
	vk := make([]byte, totalRows)
	vi := make([]byte, 4*totalRows)

	// The four variable-length value columns are sized by how many Number/Text
	// rows occur, not by totalRows, so they grow incrementally across the row
	// loop; pool them to amortize that growth across repeated Pack calls.
	vnBuf := pool.GetRowBuffer()
	voffBuf := pool.GetRowBuffer()
	vlenBuf := pool.GetRowBuffer()
	vsBuf := pool.GetRowBuffer()
	defer pool.PutRowBuffer(vnBuf)
	defer pool.PutRowBuffer(voffBuf)
	defer pool.PutRowBuffer(vlenBuf)
	defer pool.PutRowBuffer(vsBuf)

	var numCount, strCount uint32

	for i, r := range rows {
		engine.PutUint32(moi[4*i:], r.OwnerID)
		engine.PutUint32(mpi[4*i:], r.ParentID)
		mti[i] = uint8(r.Tag)
		mri[i] = uint8(r.CvRef)
		engine.PutUint32(man[4*i:], r.AccessionTail)
		muri[i] = uint8(r.UnitCvRef)
		engine.PutUint32(muan[4*i:], r.UnitAccessionTail)

		if r.AccessionText != "" {
			engine.PutUint32(aoff[4*i:], uint32(vsBuf.Len()))
			engine.PutUint32(alen[4*i:], uint32(len(r.AccessionText)))
			vsBuf.MustWrite([]byte(r.AccessionText))
		}
		if r.UnitAccessionText != "" {
			engine.PutUint32(auoff[4*i:], uint32(vsBuf.Len()))
			engine.PutUint32(aulen[4*i:], uint32(len(r.UnitAccessionText)))
			vsBuf.MustWrite([]byte(r.UnitAccessionText))
		}

		vk[i] = uint8(r.Kind)

		switch r.Kind {
		case format.ValueNumber:
			engine.PutUint32(vi[4*i:], numCount)
			vnBuf.B = engine.AppendUint64(vnBuf.B, math.Float64bits(r.Number))
			numCount++
		case format.ValueText:
			engine.PutUint32(vi[4*i:], strCount)
			voffBuf.B = engine.AppendUint32(voffBuf.B, uint32(vsBuf.Len()))
			vlenBuf.B = engine.AppendUint32(vlenBuf.B, uint32(len(r.Text)))
			vsBuf.MustWrite([]byte(r.Text))
			strCount++
		default: // format.ValueEmpty
			engine.PutUint32(vi[4*i:], 0)
		}
	}

	vn, voff, vlen, vs := vnBuf.Bytes(), voffBuf.Bytes(), vlenBuf.Bytes(), vsBuf.Bytes()

	out := make([]byte, 0, len(ci)+len(moi)+len(mpi)+len(mti)+len(mri)+len(man)+
		len(muri)+len(muan)+len(aoff)+len(alen)+len(auoff)+len(aulen)+
		len(vk)+len(vi)+len(vn)+len(voff)+len(vlen)+len(vs))

	out = append(out, ci...)
	out = append(out, moi...)
	out = append(out, mpi...)
	out = append(out, mti...)
	out = append(out, mri...)
	out = append(out, man...)
	out = append(out, muri...)
	out = append(out, muan...)
	out = append(out, aoff...)
	out = append(out, alen...)
	out = append(out, auoff...)
	out = append(out, aulen...)
	out = append(out, vk...)
	out = append(out, vi...)
	out = append(out, vn...)
	out = append(out, voff...)
	out = append(out, vlen...)
	out = append(out, vs...)

	counts := section.SectionCounts{
		ItemCount: uint32(itemCount),
		TotalRows: uint32(totalRows),
		NumCount:  numCount,
		StrCount:  strCount,
	}

	return out, counts
}
