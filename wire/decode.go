package wire

import (
	"encoding/binary"
	"math"
)

// decodeU16 interprets b (len 2) as a uint16 in host order, flipping
// it first if flip is set.
func decodeU16(b []byte, flip bool) uint16 {
	v := binary.NativeEndian.Uint16(b)
	if flip {
		v = Flip16(v)
	}
	return v
}

// decodeU32 interprets b (len 4) as a uint32 in host order, flipping
// it first if flip is set.
func decodeU32(b []byte, flip bool) uint32 {
	v := binary.NativeEndian.Uint32(b)
	if flip {
		v = Flip32(v)
	}
	return v
}

func decodeFloat32(b []byte, flip bool) float32 {
	return math.Float32frombits(decodeU32(b, flip))
}

// decodeU16Slice interprets b (len 2*n) as n uint16s in host order,
// flipping the whole batch in one pass via Flip16Slice if flip is
// set, rather than flipping element-by-element as each word is read.
func decodeU16Slice(b []byte, n uint32, flip bool) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.NativeEndian.Uint16(b[i*2 : i*2+2])
	}
	if flip {
		Flip16Slice(out)
	}
	return out
}

// decodeU32Slice interprets b (len 4*n) as n uint32s in host order,
// flipping the whole batch in one pass via Flip32Slice if flip is set.
func decodeU32Slice(b []byte, n uint32, flip bool) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.NativeEndian.Uint32(b[i*4 : i*4+4])
	}
	if flip {
		Flip32Slice(out)
	}
	return out
}

// EncodeFloat32Bits returns the raw host-order bits of v, used by the
// version-negotiation comparison in §3.3 (compared raw, then flipped).
func EncodeFloat32Bits(v float32) uint32 {
	return math.Float32bits(v)
}
