package arrays

import (
	"math"

	"github.com/b000io/b000/endian"
	"github.com/b000io/b000/errs"
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/mzml"
)

// SelectDtype implements the encoder dtype-selection rule (§4.8): f16/i16/
// i32/i64 payloads are stored verbatim; floating-point payloads (f32/f64)
// are downcast to f32 when f32Compress is set and the array is one of the
// m/z, intensity, or time kinds, otherwise stored as declared.
func SelectDtype(p mzml.Payload, kind format.ArrayKind, f32Compress bool) format.Dtype {
	switch p.Dtype {
	case format.DtypeF16, format.DtypeI16, format.DtypeI32, format.DtypeI64:
		return p.Dtype
	default: // DtypeF32, DtypeF64
		if f32Compress && kind != format.ArrayKindOther {
			return format.DtypeF32
		}
		return p.Dtype
	}
}

// EncodeArray serializes p's populated slice as dtype's wire representation
// (little-endian), downcasting f64 values to f32 when dtype is DtypeF32 but
// p itself declared DtypeF64.
func EncodeArray(dtype format.Dtype, p mzml.Payload) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()

	switch dtype {
	case format.DtypeF64:
		if p.Dtype != format.DtypeF64 {
			return nil, errs.New(errs.KindUnsupportedDtype, "payload_dtype", p.Dtype, dtype)
		}
		out := make([]byte, 0, 8*len(p.F64))
		for _, v := range p.F64 {
			out = engine.AppendUint64(out, math.Float64bits(v))
		}
		return out, nil

	case format.DtypeF32:
		switch p.Dtype {
		case format.DtypeF32:
			out := make([]byte, 0, 4*len(p.F32))
			for _, v := range p.F32 {
				out = engine.AppendUint32(out, math.Float32bits(v))
			}
			return out, nil
		case format.DtypeF64:
			out := make([]byte, 0, 4*len(p.F64))
			for _, v := range p.F64 {
				out = engine.AppendUint32(out, math.Float32bits(float32(v)))
			}
			return out, nil
		default:
			return nil, errs.New(errs.KindUnsupportedDtype, "payload_dtype", p.Dtype, dtype)
		}

	case format.DtypeF16:
		if p.Dtype != format.DtypeF16 {
			return nil, errs.New(errs.KindUnsupportedDtype, "payload_dtype", p.Dtype, dtype)
		}
		out := make([]byte, 0, 2*len(p.F16))
		for _, v := range p.F16 {
			out = engine.AppendUint16(out, v)
		}
		return out, nil

	case format.DtypeI16:
		if p.Dtype != format.DtypeI16 {
			return nil, errs.New(errs.KindUnsupportedDtype, "payload_dtype", p.Dtype, dtype)
		}
		out := make([]byte, 0, 2*len(p.I16))
		for _, v := range p.I16 {
			out = engine.AppendUint16(out, uint16(v))
		}
		return out, nil

	case format.DtypeI32:
		if p.Dtype != format.DtypeI32 {
			return nil, errs.New(errs.KindUnsupportedDtype, "payload_dtype", p.Dtype, dtype)
		}
		out := make([]byte, 0, 4*len(p.I32))
		for _, v := range p.I32 {
			out = engine.AppendUint32(out, uint32(v))
		}
		return out, nil

	case format.DtypeI64:
		if p.Dtype != format.DtypeI64 {
			return nil, errs.New(errs.KindUnsupportedDtype, "payload_dtype", p.Dtype, dtype)
		}
		out := make([]byte, 0, 8*len(p.I64))
		for _, v := range p.I64 {
			out = engine.AppendUint64(out, uint64(v))
		}
		return out, nil

	default:
		return nil, errs.New(errs.KindUnsupportedDtype, "dtype", dtype, nil)
	}
}

// DecodeArray is the inverse of EncodeArray: it reconstructs a typed
// mzml.Payload from dtype's wire bytes.
func DecodeArray(dtype format.Dtype, data []byte) (mzml.Payload, error) {
	elemSize := dtype.ElemSize()
	if elemSize == 0 {
		return mzml.Payload{}, errs.New(errs.KindUnsupportedDtype, "dtype", dtype, nil)
	}
	if len(data)%elemSize != 0 {
		return mzml.Payload{}, errs.New(errs.KindUnsupportedDtype, "array_byte_length", len(data), elemSize)
	}

	engine := endian.GetLittleEndianEngine()
	n := len(data) / elemSize

	p := mzml.Payload{Dtype: dtype}
	switch dtype {
	case format.DtypeF64:
		p.F64 = make([]float64, n)
		for i := 0; i < n; i++ {
			p.F64[i] = math.Float64frombits(engine.Uint64(data[8*i:]))
		}
	case format.DtypeF32:
		p.F32 = make([]float32, n)
		for i := 0; i < n; i++ {
			p.F32[i] = math.Float32frombits(engine.Uint32(data[4*i:]))
		}
	case format.DtypeF16:
		p.F16 = make([]uint16, n)
		for i := 0; i < n; i++ {
			p.F16[i] = engine.Uint16(data[2*i:])
		}
	case format.DtypeI16:
		p.I16 = make([]int16, n)
		for i := 0; i < n; i++ {
			p.I16[i] = int16(engine.Uint16(data[2*i:]))
		}
	case format.DtypeI32:
		p.I32 = make([]int32, n)
		for i := 0; i < n; i++ {
			p.I32[i] = int32(engine.Uint32(data[4*i:]))
		}
	case format.DtypeI64:
		p.I64 = make([]int64, n)
		for i := 0; i < n; i++ {
			p.I64[i] = int64(engine.Uint64(data[8*i:]))
		}
	}

	return p, nil
}
