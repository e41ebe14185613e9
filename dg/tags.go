// Package dg implements the generic container family (§3.5, §4.J): a
// named group of named typed lists, recursively encoded atop the wire
// package's buffer and readers. Grounded on the teacher's recursive
// encode/decode split (encoder.go/decoder.go in
// github.com/kungfusheep/glint) and on
// original_source/c/src/dynio.c's dg_write/dg_read.
package dg

import "github.com/SheinbergLab/dgcodec/wire"

// MagicDG is the 4-byte family signature for DG containers, read
// without flipping (§3.3).
var MagicDG = [4]byte{0x21, 0x12, 0x36, 0x63}

// Version is the wire-format version float compared during
// negotiation (§3.3).
const Version float32 = 1.0

// Tag byte assignments for the DYNGROUP and DYNLIST contexts, per
// §3.7. Tag IDs are assigned once and never renumbered; new tags are
// only ever appended.
const (
	TagGroupName     wire.Tag = 0x10
	TagGroupNLists   wire.Tag = 0x11
	TagListBegin     wire.Tag = 0x12 // introduces a DYNLIST structure
	TagListName      wire.Tag = 0x13
	TagListIncrement wire.Tag = 0x14
	TagListFlags     wire.Tag = 0x15
	TagListData      wire.Tag = 0x16 // VOID_ARRAY; concrete tag follows
	TagLongData      wire.Tag = 0x17
	TagShortData     wire.Tag = 0x18
	TagFloatData     wire.Tag = 0x19
	TagCharData      wire.Tag = 0x1A
	TagStringData    wire.Tag = 0x1B
	TagListArrayData wire.Tag = 0x1C // LIST_ARRAY: count only
	TagSublist       wire.Tag = 0x1D // introduces one child DYNLIST
)

// groupTable governs the CtxDynGroup context: the top-level DG
// container's own payload is itself a DYNGROUP (name, list count, N
// DYNLIST children), so this table is also what BEGIN_DG's child
// context resolves to.
var groupTable = wire.TagTable{
	TagGroupName:   {Name: "name", Kind: wire.String},
	TagGroupNLists: {Name: "nlists", Kind: wire.Long},
	TagListBegin:   {Name: "list", Kind: wire.Structure, ChildCtx: wire.CtxDynList},
}

// listTable governs the CtxDynList context: one DYNLIST's own fields.
var listTable = wire.TagTable{
	TagListName:      {Name: "name", Kind: wire.String},
	TagListIncrement: {Name: "increment", Kind: wire.Long},
	TagListFlags:     {Name: "flags", Kind: wire.Long},
	TagListData:      {Name: "data", Kind: wire.VoidArray},
	TagLongData:      {Name: "long_data", Kind: wire.LongArray},
	TagShortData:     {Name: "short_data", Kind: wire.ShortArray},
	TagFloatData:     {Name: "float_data", Kind: wire.FloatArray},
	TagCharData:      {Name: "char_data", Kind: wire.CharArray},
	TagStringData:    {Name: "string_data", Kind: wire.StringArray},
	TagListArrayData: {Name: "list_data", Kind: wire.ListArray},
	TagSublist:       {Name: "sublist", Kind: wire.Structure, ChildCtx: wire.CtxDynList},
}

// Tables exposes the DG tag tables keyed by context, for shared
// consumers like the ASCII dumper that need to resolve a tag's
// TagInfo without importing dg's internal codec functions.
func Tables() map[wire.Context]wire.TagTable {
	return map[wire.Context]wire.TagTable{
		wire.CtxDynGroup: groupTable,
		wire.CtxDynList:  listTable,
	}
}
