package dg

import (
	"io"

	"github.com/pkg/errors"

	"github.com/SheinbergLab/dgcodec/dgerr"
	"github.com/SheinbergLab/dgcodec/dynlist"
	"github.com/SheinbergLab/dgcodec/dyngroup"
	"github.com/SheinbergLab/dgcodec/wire"
)

// Decode reads a complete DG container from r: magic, VERSION,
// BEGIN_DG, the group body, and the closing END_STRUCT tags. Per §9's
// fourth open question, the top-level terminator may be an explicit
// trailing END_STRUCT or a clean EOF right after the inner
// container's END_STRUCT — both are accepted.
func Decode(r wire.TagReader) (*dyngroup.Group, error) {
	if err := r.ReadMagic(MagicDG); err != nil {
		return nil, err
	}
	if err := expectTag(r, wire.TagVersion); err != nil {
		return nil, err
	}
	if err := r.NegotiateVersion(Version); err != nil {
		return nil, err
	}
	if err := expectTag(r, wire.TagBeginDG); err != nil {
		return nil, err
	}

	stack := wire.NewContextStack()
	stack.Push(wire.CtxDynGroup, "dyngroup")

	g, err := decodeGroupBody(r, stack)
	if err != nil {
		return nil, err
	}
	stack.Pop()

	// Accept either an explicit top-level END_STRUCT or clean EOF.
	tag, err := r.ReadTag()
	if errors.Is(err, io.EOF) {
		return g, nil
	}
	if err != nil {
		return nil, err
	}
	if tag != wire.EndStruct {
		return nil, errors.Wrapf(dgerr.ErrUnknownTag, "expected top-level END_STRUCT, got %#x", tag)
	}
	return g, nil
}

func expectTag(r wire.TagReader, want wire.Tag) error {
	tag, err := r.ReadTag()
	if err != nil {
		return err
	}
	if tag != want {
		return errors.Wrapf(dgerr.ErrUnknownTag, "expected tag %#x, got %#x", want, tag)
	}
	return nil
}

// decodeGroupBody reads a DYNGROUP's fields (NAME, NLISTS, and each
// DYNLIST child) until END_STRUCT. NLISTS is read but only used
// informationally (§4.J): the real count is the number of DYNLIST
// structures actually consumed.
func decodeGroupBody(r wire.TagReader, stack *wire.ContextStack) (*dyngroup.Group, error) {
	g := dyngroup.NewNamed("", 0)

	for {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}

		switch tag {
		case wire.EndStruct:
			return g, nil

		case TagGroupName:
			name, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			g.Name = name

		case TagGroupNLists:
			if _, err := r.ReadLong(); err != nil {
				return nil, err
			}

		case TagListBegin:
			l, err := decodeList(r, stack)
			if err != nil {
				return nil, err
			}
			g.AddExistingList(l)

		default:
			return nil, errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in dyngroup context", tag)
		}
	}
}

// decodeList reads one DYNLIST structure's body (the opening tag has
// already been consumed by the caller) until END_STRUCT.
func decodeList(r wire.TagReader, stack *wire.ContextStack) (*dynlist.List, error) {
	stack.Push(wire.CtxDynList, "dynlist")
	defer stack.Pop()

	l := &dynlist.List{Increment: 1}

	for {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}

		switch tag {
		case wire.EndStruct:
			return l, nil

		case TagListName:
			name, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			l.Name = name

		case TagListIncrement:
			inc, err := r.ReadLong()
			if err != nil {
				return nil, err
			}
			if inc < 1 {
				inc = 1
			}
			l.Increment = int(inc)

		case TagListFlags:
			flags, err := r.ReadLong()
			if err != nil {
				return nil, err
			}
			l.Flags = uint32(flags)

		case TagListData:
			// VOID_ARRAY marker: no payload; the next tag supplies
			// the concrete array type.

		case TagLongData:
			n, err := r.ReadCount()
			if err != nil {
				return nil, err
			}
			vals, err := r.ReadLongArray(n)
			if err != nil {
				return nil, err
			}
			l.Datatype = wire.DataLong
			l.Longs = vals

		case TagShortData:
			n, err := r.ReadCount()
			if err != nil {
				return nil, err
			}
			vals, err := r.ReadShortArray(n)
			if err != nil {
				return nil, err
			}
			l.Datatype = wire.DataShort
			l.Shorts = vals

		case TagFloatData:
			n, err := r.ReadCount()
			if err != nil {
				return nil, err
			}
			vals, err := r.ReadFloatArray(n)
			if err != nil {
				return nil, err
			}
			l.Datatype = wire.DataFloat
			l.Floats = vals

		case TagCharData:
			n, err := r.ReadCount()
			if err != nil {
				return nil, err
			}
			vals, err := r.ReadCharArray(n)
			if err != nil {
				return nil, err
			}
			l.Datatype = wire.DataChar
			l.Chars = vals

		case TagStringData:
			n, err := r.ReadCount()
			if err != nil {
				return nil, err
			}
			vals, err := r.ReadStringArray(n)
			if err != nil {
				return nil, err
			}
			l.Datatype = wire.DataString
			l.Strings = vals

		case TagListArrayData:
			n, err := r.ReadCount()
			if err != nil {
				return nil, err
			}
			l.Datatype = wire.DataList
			l.Lists = make([]*dynlist.List, 0, n)
			for i := uint32(0); i < n; i++ {
				childTag, err := r.ReadTag()
				if err != nil {
					return nil, err
				}
				if childTag != TagSublist {
					return nil, errors.Wrapf(dgerr.ErrUnexpectedTag, "expected SUBLIST, got %#x", childTag)
				}
				child, err := decodeList(r, stack)
				if err != nil {
					return nil, err
				}
				l.Lists = append(l.Lists, child)
			}

		default:
			return nil, errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in dynlist context", tag)
		}
	}
}
