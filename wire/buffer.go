package wire

import (
	"encoding/binary"
	"math"
)

// defaultIncrement is the default growth increment for a Buffer, per
// §4.D.
const defaultIncrement = 64 * 1024

// Buffer is an auto-growing, append-only byte vector that receives tag
// bytes and scalar/array payloads during a write session. It mirrors
// the teacher's pooled Buffer (github.com/kungfusheep/glint) but
// writes fixed-width fields in host byte order instead of varints,
// per §6.2/§6.4.
type Buffer struct {
	Bytes     []byte
	increment int
}

// NewBuffer returns an empty Buffer with the default growth increment.
func NewBuffer() *Buffer {
	return &Buffer{increment: defaultIncrement}
}

// Reset clears the buffer's contents but keeps the backing array.
func (b *Buffer) Reset() {
	b.Bytes = b.Bytes[:0]
}

// grow ensures capacity for n additional bytes, doubling the growth
// increment if a single write would outrun it. Per §4.D, a failed
// growth allocation is fatal to the write session; Go's allocator
// panics on actual OOM rather than returning an error, so there is no
// explicit ErrOutOfMemory return path here — callers that need one
// (e.g. a bounded arena) would recover the panic at the session
// boundary.
func (b *Buffer) grow(n int) {
	if cap(b.Bytes)-len(b.Bytes) >= n {
		return
	}
	inc := b.increment
	if inc == 0 {
		inc = defaultIncrement
	}
	for inc < n {
		inc *= 2
	}
	next := make([]byte, len(b.Bytes), len(b.Bytes)+inc)
	copy(next, b.Bytes)
	b.Bytes = next
}

func (b *Buffer) appendByte(v byte) {
	b.grow(1)
	b.Bytes = append(b.Bytes, v)
}

func (b *Buffer) appendU16(v uint16) {
	b.grow(2)
	var tmp [2]byte
	binary.NativeEndian.PutUint16(tmp[:], v)
	b.Bytes = append(b.Bytes, tmp[:]...)
}

func (b *Buffer) appendU32(v uint32) {
	b.grow(4)
	var tmp [4]byte
	binary.NativeEndian.PutUint32(tmp[:], v)
	b.Bytes = append(b.Bytes, tmp[:]...)
}

// RecordMagic writes the 4-byte family magic verbatim; per §3.3 the
// magic is never byte-flipped.
func (b *Buffer) RecordMagic(magic [4]byte) {
	b.grow(4)
	b.Bytes = append(b.Bytes, magic[:]...)
}

// RecordVersion writes the VERSION tag followed by the 4-byte float
// version constant.
func (b *Buffer) RecordVersion(version float32) {
	b.appendByte(byte(TagVersion))
	b.appendU32(math.Float32bits(version))
}

// BeginStruct opens a structure: writes tag, pushes childCtx onto
// stack under name.
func (b *Buffer) BeginStruct(stack *ContextStack, tag Tag, childCtx Context, name string) {
	b.appendByte(byte(tag))
	stack.Push(childCtx, name)
}

// EndStruct closes the current structure: writes EndStruct, pops the
// context stack.
func (b *Buffer) EndStruct(stack *ContextStack) {
	b.appendByte(byte(EndStruct))
	stack.Pop()
}

// RecordFlag writes a FLAG tag; it carries no payload.
func (b *Buffer) RecordFlag(tag Tag) {
	b.appendByte(byte(tag))
}

// RecordChar writes a CHAR tag and its signed 1-byte payload.
func (b *Buffer) RecordChar(tag Tag, v int8) {
	b.appendByte(byte(tag))
	b.appendByte(byte(v))
}

// RecordShort writes a SHORT tag and its 2-byte payload.
func (b *Buffer) RecordShort(tag Tag, v int16) {
	b.appendByte(byte(tag))
	b.appendU16(uint16(v))
}

// RecordLong writes a LONG tag and its 4-byte signed payload.
func (b *Buffer) RecordLong(tag Tag, v int32) {
	b.appendByte(byte(tag))
	b.appendU32(uint32(v))
}

// RecordFloat writes a FLOAT tag and its 4-byte IEEE-754 payload.
func (b *Buffer) RecordFloat(tag Tag, v float32) {
	b.appendByte(byte(tag))
	b.appendU32(math.Float32bits(v))
}

// RecordString writes a STRING tag followed by a u32 length (the
// trailing NUL included in the count, per §3.1) and the bytes
// themselves. If s is nil, nothing at all is written — not even the
// tag — mirroring the "skip entirely if s is absent" rule in §4.D. An
// empty, non-nil string still records a length-1 payload (just the
// NUL).
func (b *Buffer) RecordString(tag Tag, s *string) {
	if s == nil {
		return
	}
	b.appendByte(byte(tag))
	n := uint32(len(*s) + 1)
	b.appendU32(n)
	b.grow(int(n))
	b.Bytes = append(b.Bytes, (*s)...)
	b.Bytes = append(b.Bytes, 0)
}

// RecordLongArray writes a LONG_ARRAY tag, a u32 count, and the
// elements.
func (b *Buffer) RecordLongArray(tag Tag, vals []int32) {
	b.appendByte(byte(tag))
	b.appendU32(uint32(len(vals)))
	for _, v := range vals {
		b.appendU32(uint32(v))
	}
}

// RecordShortArray writes a SHORT_ARRAY tag, a u32 count, and the
// elements.
func (b *Buffer) RecordShortArray(tag Tag, vals []int16) {
	b.appendByte(byte(tag))
	b.appendU32(uint32(len(vals)))
	for _, v := range vals {
		b.appendU16(uint16(v))
	}
}

// RecordFloatArray writes a FLOAT_ARRAY tag, a u32 count, and the
// elements.
func (b *Buffer) RecordFloatArray(tag Tag, vals []float32) {
	b.appendByte(byte(tag))
	b.appendU32(uint32(len(vals)))
	for _, v := range vals {
		b.appendU32(math.Float32bits(v))
	}
}

// RecordCharArray writes a CHAR_ARRAY tag, a u32 count, and the raw
// bytes.
func (b *Buffer) RecordCharArray(tag Tag, vals []int8) {
	b.appendByte(byte(tag))
	b.appendU32(uint32(len(vals)))
	b.grow(len(vals))
	for _, v := range vals {
		b.Bytes = append(b.Bytes, byte(v))
	}
}

// RecordStringArray writes a STRING_ARRAY tag, a u32 count, then each
// string as a length-prefixed (incl. trailing NUL) record.
func (b *Buffer) RecordStringArray(tag Tag, vals []string) {
	b.appendByte(byte(tag))
	b.appendU32(uint32(len(vals)))
	for _, s := range vals {
		n := uint32(len(s) + 1)
		b.appendU32(n)
		b.grow(int(n))
		b.Bytes = append(b.Bytes, s...)
		b.Bytes = append(b.Bytes, 0)
	}
}

// RecordListArray writes a LIST_ARRAY tag and the count only; the
// caller is responsible for then emitting exactly n SUBLIST
// structures.
func (b *Buffer) RecordListArray(tag Tag, n int) {
	b.appendByte(byte(tag))
	b.appendU32(uint32(n))
}

