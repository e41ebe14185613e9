package dg

import (
	"github.com/SheinbergLab/dgcodec/dynlist"
	"github.com/SheinbergLab/dgcodec/dyngroup"
	"github.com/SheinbergLab/dgcodec/wire"
)

// Encode writes g as a complete DG container: magic, VERSION, BEGIN_DG,
// the group's own fields and list children, and the two closing
// END_STRUCT tags (inner container, then top level), per §6.1.
func Encode(g *dyngroup.Group) []byte {
	buf := wire.NewBuffer()
	stack := wire.NewContextStack()

	buf.RecordMagic(MagicDG)
	buf.RecordVersion(Version)
	buf.BeginStruct(stack, wire.TagBeginDG, wire.CtxDynGroup, "dyngroup")

	encodeGroupBody(buf, stack, g)

	buf.EndStruct(stack) // closes BEGIN_DG
	buf.RecordFlag(wire.EndStruct) // closes the top level; its pre-seeded stack frame is never popped

	return buf.Bytes
}

func encodeGroupBody(buf *wire.Buffer, stack *wire.ContextStack, g *dyngroup.Group) {
	name := g.Name
	buf.RecordString(TagGroupName, &name)
	buf.RecordLong(TagGroupNLists, int32(len(g.Lists)))
	for _, l := range g.Lists {
		encodeList(buf, stack, TagListBegin, l)
	}
}

// encodeList recursively encodes one dynamic list. beginTag is
// TagListBegin for a direct child of a group and TagSublist for a
// child of a LIST-typed list, matching §3.7's two structure openers
// that both push CtxDynList.
func encodeList(buf *wire.Buffer, stack *wire.ContextStack, beginTag wire.Tag, l *dynlist.List) {
	buf.BeginStruct(stack, beginTag, wire.CtxDynList, l.Name)

	name := l.Name
	buf.RecordString(TagListName, &name)
	buf.RecordLong(TagListIncrement, int32(l.Increment))
	buf.RecordLong(TagListFlags, int32(l.Flags))

	// VOID_ARRAY marker: no payload, the concrete array tag follows.
	buf.RecordFlag(TagListData)

	switch l.Datatype {
	case wire.DataLong:
		buf.RecordLongArray(TagLongData, l.Longs)
	case wire.DataShort:
		buf.RecordShortArray(TagShortData, l.Shorts)
	case wire.DataFloat:
		buf.RecordFloatArray(TagFloatData, l.Floats)
	case wire.DataChar:
		buf.RecordCharArray(TagCharData, l.Chars)
	case wire.DataString:
		buf.RecordStringArray(TagStringData, l.Strings)
	case wire.DataList:
		buf.RecordListArray(TagListArrayData, len(l.Lists))
		for _, child := range l.Lists {
			encodeList(buf, stack, TagSublist, child)
		}
	}

	buf.EndStruct(stack)
}
