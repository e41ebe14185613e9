// Package dynlist implements the dynamic list engine (§3.4, §4.H): a
// typed, growable sequence supporting six element kinds, including
// nested lists and owned strings. It is grounded on the teacher's
// growable pooled Buffer (github.com/kungfusheep/glint, buffer.go)
// generalized from a byte vector to a tagged-union vector, and on
// original_source/c/src/dynio.c's DYN_LIST lifecycle (named list,
// increment-based growth, deep copy, reset-to-type).
package dynlist

import "github.com/SheinbergLab/dgcodec/wire"

// maxNameLen bounds a list's name, per §3.4 "bounded string, ≤ some
// fixed cap" — original_source/c/src/dynio.c uses 64.
const maxNameLen = 64

// List is a homogeneous, growable sequence of one of six element
// kinds. Exactly one of the typed slices below is populated, selected
// by Datatype; Lists (DataList) and Strings (DataString) are owned:
// copying a List deep-copies them.
type List struct {
	Name      string
	Datatype  wire.DataType
	Flags     uint32
	Increment int // growth step, >= 1

	Longs   []int32
	Shorts  []int16
	Floats  []float32
	Chars   []int8
	Strings []string
	Lists   []*List
}

// New creates an empty list of datatype with the given growth
// increment (must be >= 1; values < 1 are coerced to 1 to preserve
// the "increment >= 1" invariant).
func New(datatype wire.DataType, increment int) *List {
	return NewNamed("", datatype, increment)
}

// NewNamed is New with an explicit name, truncated to maxNameLen if
// necessary.
func NewNamed(name string, datatype wire.DataType, increment int) *List {
	if increment < 1 {
		increment = 1
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	return &List{Name: name, Datatype: datatype, Increment: increment}
}

// N returns the current element count, computed from whichever typed
// slice backs this list's Datatype; there is no separate counter to
// drift out of sync.
func (l *List) N() int {
	switch l.Datatype {
	case wire.DataLong:
		return len(l.Longs)
	case wire.DataShort:
		return len(l.Shorts)
	case wire.DataFloat:
		return len(l.Floats)
	case wire.DataChar:
		return len(l.Chars)
	case wire.DataString:
		return len(l.Strings)
	case wire.DataList:
		return len(l.Lists)
	}
	return 0
}

// Capacity reports the current backing-slice capacity for the active
// Datatype. §3.4 requires capacity >= 1 after construction; an empty
// Go slice has cap 0, so FromValues forces a floor of 2 per §4.H, and
// fresh New() lists report a nominal capacity of their Increment until
// the first append actually grows the backing array (Go slices don't
// preallocate on zero-value construction the way the C vector did, so
// this accessor exists mainly for the invariant-checking tests in
// §8, not to drive growth decisions — growth is handled by append
// itself via Go's built-in slice growth).
func (l *List) Capacity() int {
	var c int
	switch l.Datatype {
	case wire.DataLong:
		c = cap(l.Longs)
	case wire.DataShort:
		c = cap(l.Shorts)
	case wire.DataFloat:
		c = cap(l.Floats)
	case wire.DataChar:
		c = cap(l.Chars)
	case wire.DataString:
		c = cap(l.Strings)
	case wire.DataList:
		c = cap(l.Lists)
	}
	if c == 0 {
		return l.Increment
	}
	return c
}

// FromValues wraps an externally supplied slice, taking ownership of
// it. The caller passes exactly one of the typed slice arguments
// (matching datatype) and leaves the rest nil. Per §4.H, the
// increment is chosen heuristically as max(n/2, n) bounded at 1024,
// and a zero-capacity result is forced to at least 2 to preserve the
// "non-zero capacity" invariant.
func FromValues(datatype wire.DataType, longs []int32, shorts []int16, floats []float32, chars []int8, strings []string, lists []*List) *List {
	n := 0
	switch datatype {
	case wire.DataLong:
		n = len(longs)
	case wire.DataShort:
		n = len(shorts)
	case wire.DataFloat:
		n = len(floats)
	case wire.DataChar:
		n = len(chars)
	case wire.DataString:
		n = len(strings)
	case wire.DataList:
		n = len(lists)
	}

	inc := n / 2
	if n > inc {
		inc = n
	}
	if inc > 1024 {
		inc = 1024
	}
	if inc < 2 {
		inc = 2
	}

	l := &List{Datatype: datatype, Increment: inc, Longs: longs, Shorts: shorts, Floats: floats, Chars: chars, Strings: strings, Lists: lists}
	return l
}

// Reset releases owned children (strings, sub-lists) and sets the
// active slice's length to 0, retaining the underlying allocation.
func (l *List) Reset() {
	switch l.Datatype {
	case wire.DataLong:
		l.Longs = l.Longs[:0]
	case wire.DataShort:
		l.Shorts = l.Shorts[:0]
	case wire.DataFloat:
		l.Floats = l.Floats[:0]
	case wire.DataChar:
		l.Chars = l.Chars[:0]
	case wire.DataString:
		l.Strings = l.Strings[:0]
	case wire.DataList:
		l.Lists = l.Lists[:0]
	}
}

// ResetToType resets the list and reallocates its value vector for a
// new element type and initial increment, per §4.H.
func (l *List) ResetToType(datatype wire.DataType, increment int) {
	if increment < 1 {
		increment = 1
	}
	l.Datatype = datatype
	l.Increment = increment
	l.Longs = nil
	l.Shorts = nil
	l.Floats = nil
	l.Chars = nil
	l.Strings = nil
	l.Lists = nil
}

// Copy performs a deep copy: a List-typed list recursively copies each
// child, and a String-typed list copies each byte string. Scalar
// slices are copied by value.
func (l *List) Copy() *List {
	c := &List{Name: l.Name, Datatype: l.Datatype, Flags: l.Flags, Increment: l.Increment}
	switch l.Datatype {
	case wire.DataLong:
		c.Longs = append([]int32(nil), l.Longs...)
	case wire.DataShort:
		c.Shorts = append([]int16(nil), l.Shorts...)
	case wire.DataFloat:
		c.Floats = append([]float32(nil), l.Floats...)
	case wire.DataChar:
		c.Chars = append([]int8(nil), l.Chars...)
	case wire.DataString:
		c.Strings = append([]string(nil), l.Strings...)
	case wire.DataList:
		c.Lists = make([]*List, len(l.Lists))
		for i, child := range l.Lists {
			c.Lists[i] = child.Copy()
		}
	}
	return c
}
