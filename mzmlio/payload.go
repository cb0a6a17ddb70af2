package mzmlio

import (
	"encoding/base64"
	"math"

	"github.com/b000io/b000/endian"
	"github.com/b000io/b000/errs"
	"github.com/b000io/b000/format"
	"github.com/b000io/b000/mzml"
)

// encodePayload packs a Payload's typed slice into little-endian bytes and
// base64-encodes it the way real mzML's <binary> element does. This layer
// never applies mzML's optional zlib compression (§6's XML collaborator is
// a black box the core does not specify further); every array round-trips
// uncompressed.
func encodePayload(p mzml.Payload) (string, error) {
	engine := endian.GetLittleEndianEngine()

	var raw []byte
	switch p.Dtype {
	case format.DtypeF64:
		raw = make([]byte, 8*len(p.F64))
		for i, v := range p.F64 {
			engine.PutUint64(raw[i*8:], math.Float64bits(v))
		}
	case format.DtypeF32:
		raw = make([]byte, 4*len(p.F32))
		for i, v := range p.F32 {
			engine.PutUint32(raw[i*4:], math.Float32bits(v))
		}
	case format.DtypeF16:
		raw = make([]byte, 2*len(p.F16))
		for i, v := range p.F16 {
			engine.PutUint16(raw[i*2:], v)
		}
	case format.DtypeI16:
		raw = make([]byte, 2*len(p.I16))
		for i, v := range p.I16 {
			engine.PutUint16(raw[i*2:], uint16(v))
		}
	case format.DtypeI32:
		raw = make([]byte, 4*len(p.I32))
		for i, v := range p.I32 {
			engine.PutUint32(raw[i*4:], uint32(v))
		}
	case format.DtypeI64:
		raw = make([]byte, 8*len(p.I64))
		for i, v := range p.I64 {
			engine.PutUint64(raw[i*8:], uint64(v))
		}
	default:
		return "", nil
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// decodePayload is the inverse of encodePayload, dispatching on the
// binaryDataArray's numeric-type cvParam the same way arrays.SelectDtype's
// wire counterpart does on decode.
func decodePayload(encoded string, params []mzml.CvParam) (mzml.Payload, error) {
	dtype := dtypeOfParams(params)
	if encoded == "" {
		return mzml.Payload{Dtype: dtype}, nil
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return mzml.Payload{}, errs.New(errs.KindUnsupportedDtype, "binary_base64", encoded, nil)
	}

	engine := endian.GetLittleEndianEngine()

	switch dtype {
	case format.DtypeF64:
		out := make([]float64, len(raw)/8)
		for i := range out {
			out[i] = math.Float64frombits(engine.Uint64(raw[i*8:]))
		}
		return mzml.Payload{Dtype: format.DtypeF64, F64: out}, nil
	case format.DtypeF16:
		out := make([]uint16, len(raw)/2)
		for i := range out {
			out[i] = engine.Uint16(raw[i*2:])
		}
		return mzml.Payload{Dtype: format.DtypeF16, F16: out}, nil
	case format.DtypeI16:
		out := make([]int16, len(raw)/2)
		for i := range out {
			out[i] = int16(engine.Uint16(raw[i*2:]))
		}
		return mzml.Payload{Dtype: format.DtypeI16, I16: out}, nil
	case format.DtypeI32:
		out := make([]int32, len(raw)/4)
		for i := range out {
			out[i] = int32(engine.Uint32(raw[i*4:]))
		}
		return mzml.Payload{Dtype: format.DtypeI32, I32: out}, nil
	case format.DtypeI64:
		out := make([]int64, len(raw)/8)
		for i := range out {
			out[i] = int64(engine.Uint64(raw[i*8:]))
		}
		return mzml.Payload{Dtype: format.DtypeI64, I64: out}, nil
	default: // format.DtypeF32, and the fallback for an absent/unknown cvParam
		out := make([]float32, len(raw)/4)
		for i := range out {
			out[i] = math.Float32frombits(engine.Uint32(raw[i*4:]))
		}
		return mzml.Payload{Dtype: format.DtypeF32, F32: out}, nil
	}
}

func dtypeOfParams(params []mzml.CvParam) format.Dtype {
	for _, p := range params {
		switch p.Accession {
		case "MS:1000523":
			return format.DtypeF64
		case "MS:1000521":
			return format.DtypeF32
		case "MS:1000520":
			return format.DtypeF16
		case "MS:1000522":
			return format.DtypeI64
		}
	}
	return format.DtypeF32
}
