package wire

// Kind is the wire-level enumeration that drives dispatch on both
// sides of the wire. A single tag's Kind selects the scalar/array/
// structure handler the reader or writer uses for it.
type Kind uint8

const (
	Structure   Kind = iota // bounded by an opening tag and EndStruct
	Flag                    // no payload
	Char                    // 1 byte, signed
	Short                   // 2 bytes
	Long                    // 4 bytes, signed
	Float                   // 4 bytes, IEEE-754
	Version                 // float, special-cased at stream open
	String                  // u32 length (incl. trailing NUL) + bytes
	StringArray             // u32 count + count length-prefixed strings
	CharArray
	ShortArray
	LongArray
	FloatArray
	ListArray // u32 count only; children follow as SUBLIST structures
	VoidArray // untyped marker; concrete array tag follows
)

func (k Kind) String() string {
	switch k {
	case Structure:
		return "Structure"
	case Flag:
		return "Flag"
	case Char:
		return "Char"
	case Short:
		return "Short"
	case Long:
		return "Long"
	case Float:
		return "Float"
	case Version:
		return "Version"
	case String:
		return "String"
	case StringArray:
		return "StringArray"
	case CharArray:
		return "CharArray"
	case ShortArray:
		return "ShortArray"
	case LongArray:
		return "LongArray"
	case FloatArray:
		return "FloatArray"
	case ListArray:
		return "ListArray"
	case VoidArray:
		return "VoidArray"
	default:
		return "invalid Kind"
	}
}

// DataType names the scalar element type a dynamic list or void array
// carries. It is a separate enumeration from Kind because a single
// DataType (e.g. Long) can appear on the wire as either a scalar tag
// or the corresponding *Array tag.
type DataType uint8

const (
	DataLong DataType = iota
	DataShort
	DataFloat
	DataChar
	DataString
	DataList
)

func (d DataType) String() string {
	switch d {
	case DataLong:
		return "Long"
	case DataShort:
		return "Short"
	case DataFloat:
		return "Float"
	case DataChar:
		return "Char"
	case DataString:
		return "String"
	case DataList:
		return "List"
	default:
		return "invalid DataType"
	}
}

// Tag identifies, within the scope of a Context, the meaning of the
// next byte read off the wire.
type Tag uint8

// EndStruct terminates every Structure, regardless of context. Its
// value is fixed across all tag tables.
const EndStruct Tag = 0xFF

// Shared top-level tags (before either family's inner tag tables take
// over).
const (
	TagVersion  Tag = 0x01
	TagBeginDF  Tag = 0x02
	TagBeginDG  Tag = 0x03
)

// Context identifies the structural scope in force during encode or
// decode: the top level, a DF sub-structure, a DG group, a DG list,
// and so on. Context determines which TagTable governs the next tag
// byte.
type Context uint8

const (
	CtxTop Context = iota
	CtxDF
	CtxDFInfo
	CtxCellInfo
	CtxObsPeriod
	CtxObsInfo
	CtxEvData
	CtxEvList
	CtxEmData
	CtxSpData
	CtxSpChannel
	CtxDynGroup
	CtxDynList
)

func (c Context) String() string {
	switch c {
	case CtxTop:
		return "top"
	case CtxDF:
		return "data_file"
	case CtxDFInfo:
		return "df_info"
	case CtxCellInfo:
		return "cell_info"
	case CtxObsPeriod:
		return "obs_period"
	case CtxObsInfo:
		return "obs_info"
	case CtxEvData:
		return "ev_data"
	case CtxEvList:
		return "ev_list"
	case CtxEmData:
		return "em_data"
	case CtxSpData:
		return "sp_data"
	case CtxSpChannel:
		return "sp_channel"
	case CtxDynGroup:
		return "dyngroup"
	case CtxDynList:
		return "dynlist"
	default:
		return "invalid Context"
	}
}

// TagInfo describes one entry of a context's tag table: the tag's
// display name, its wire Kind, and — for Structure kinds only — the
// child Context the decoder must push after emitting the opener.
type TagInfo struct {
	Name     string
	Kind     Kind
	ChildCtx Context
}

// TagTable maps tag bytes to their TagInfo within one Context.
type TagTable map[Tag]TagInfo

// Lookup returns the TagInfo for tag, and whether it was found.
func (t TagTable) Lookup(tag Tag) (TagInfo, bool) {
	info, ok := t[tag]
	return info, ok
}
