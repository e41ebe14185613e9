// Package ascii implements the text dumper (§4.K): a generic walk over
// a tag stream that emits one line per structural event or field,
// driven by the same per-context wire.TagTable maps the DF and DG
// codecs use to dispatch. Grounded on the teacher's Visitor-driven
// Walker (github.com/kungfusheep/glint, walker.go) — here the "schema"
// side of glint's parallel schema/body walk is replaced by a
// Context-keyed TagTable lookup, since dgcodec's schema lives in
// fixed per-context tables rather than an embedded document header.
package ascii

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/SheinbergLab/dgcodec/dgerr"
	"github.com/SheinbergLab/dgcodec/wire"
)

// Dump reads one complete container from r (magic already expected by
// the caller to match what topTag implies) and writes its ASCII
// rendering to w: BEGIN/END lines carrying the context's display name,
// `name\tvalue` for scalars, and a count header followed by indexed
// lines for arrays (§4.K). tables supplies every context's TagTable;
// topCtx/topName describe the outermost structure opened by topTag.
func Dump(w io.Writer, r wire.TagReader, magic [4]byte, version float32, topTag wire.Tag, topName string, topCtx wire.Context, tables map[wire.Context]wire.TagTable) error {
	if err := r.ReadMagic(magic); err != nil {
		return err
	}
	if tag, err := r.ReadTag(); err != nil {
		return err
	} else if tag != wire.TagVersion {
		return errors.Wrapf(dgerr.ErrUnknownTag, "expected VERSION tag, got %#x", tag)
	}
	if err := r.NegotiateVersion(version); err != nil {
		return err
	}
	if tag, err := r.ReadTag(); err != nil {
		return err
	} else if tag != topTag {
		return errors.Wrapf(dgerr.ErrUnknownTag, "expected top-level BEGIN tag %#x, got %#x", topTag, tag)
	}

	bw := bufio.NewWriter(w)
	d := &dumper{r: r, tables: tables, w: bw}
	if err := d.dumpStruct(topCtx, topName, 0); err != nil {
		return err
	}

	tag, err := r.ReadTag()
	if errors.Is(err, io.EOF) {
		return bw.Flush()
	}
	if err != nil {
		return err
	}
	if tag != wire.EndStruct {
		return errors.Wrapf(dgerr.ErrUnknownTag, "expected top-level END_STRUCT, got %#x", tag)
	}
	return bw.Flush()
}

type dumper struct {
	r      wire.TagReader
	tables map[wire.Context]wire.TagTable
	w      *bufio.Writer
}

func (d *dumper) indent(depth int) {
	for i := 0; i < depth; i++ {
		d.w.WriteByte(' ')
	}
}

// dumpStruct reads one structure's body (its opening tag already
// consumed by the caller) until END_STRUCT, writing a BEGIN line
// first and an END line on return.
func (d *dumper) dumpStruct(ctx wire.Context, name string, depth int) error {
	d.indent(depth)
	fmt.Fprintf(d.w, "BEGIN %s\n", name)

	table, ok := d.tables[ctx]
	if !ok {
		return errors.Wrapf(dgerr.ErrUnknownTag, "no tag table registered for context %v", ctx)
	}

	for {
		tag, err := d.r.ReadTag()
		if err != nil {
			return err
		}
		if tag == wire.EndStruct {
			d.indent(depth)
			fmt.Fprintf(d.w, "END %s\n", name)
			return nil
		}

		info, ok := table.Lookup(tag)
		if !ok {
			return errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in %v context", tag, ctx)
		}
		if err := d.dumpField(info, depth+1); err != nil {
			return err
		}
	}
}

func (d *dumper) dumpField(info wire.TagInfo, depth int) error {
	switch info.Kind {
	case wire.Structure:
		return d.dumpStruct(info.ChildCtx, info.Name, depth)

	case wire.Flag:
		d.indent(depth)
		fmt.Fprintf(d.w, "%s\n", info.Name)
		return nil

	case wire.Char:
		v, err := d.r.ReadChar()
		if err != nil {
			return err
		}
		d.indent(depth)
		fmt.Fprintf(d.w, "%s\t%d\n", info.Name, v)
		return nil

	case wire.Short:
		v, err := d.r.ReadShort()
		if err != nil {
			return err
		}
		d.indent(depth)
		fmt.Fprintf(d.w, "%s\t%d\n", info.Name, v)
		return nil

	case wire.Long:
		v, err := d.r.ReadLong()
		if err != nil {
			return err
		}
		d.indent(depth)
		fmt.Fprintf(d.w, "%s\t%d\n", info.Name, v)
		return nil

	case wire.Float:
		v, err := d.r.ReadFloat()
		if err != nil {
			return err
		}
		d.indent(depth)
		fmt.Fprintf(d.w, "%s\t%g\n", info.Name, v)
		return nil

	case wire.String:
		v, err := d.r.ReadString()
		if err != nil {
			return err
		}
		d.indent(depth)
		fmt.Fprintf(d.w, "%s\t%s\n", info.Name, v)
		return nil

	case wire.VoidArray:
		// No payload of its own; the next tag in the stream supplies
		// the concrete array kind.
		d.indent(depth)
		fmt.Fprintf(d.w, "%s (void)\n", info.Name)
		return nil

	case wire.CharArray:
		n, err := d.r.ReadCount()
		if err != nil {
			return err
		}
		vals, err := d.r.ReadCharArray(n)
		if err != nil {
			return err
		}
		d.indent(depth)
		fmt.Fprintf(d.w, "%s (%d)\n", info.Name, len(vals))
		for i, v := range vals {
			d.indent(depth + 1)
			fmt.Fprintf(d.w, "%d\t%d\n", i+1, v)
		}
		return nil

	case wire.ShortArray:
		n, err := d.r.ReadCount()
		if err != nil {
			return err
		}
		vals, err := d.r.ReadShortArray(n)
		if err != nil {
			return err
		}
		d.indent(depth)
		fmt.Fprintf(d.w, "%s (%d)\n", info.Name, len(vals))
		for i, v := range vals {
			d.indent(depth + 1)
			fmt.Fprintf(d.w, "%d\t%d\n", i+1, v)
		}
		return nil

	case wire.LongArray:
		n, err := d.r.ReadCount()
		if err != nil {
			return err
		}
		vals, err := d.r.ReadLongArray(n)
		if err != nil {
			return err
		}
		d.indent(depth)
		fmt.Fprintf(d.w, "%s (%d)\n", info.Name, len(vals))
		for i, v := range vals {
			d.indent(depth + 1)
			fmt.Fprintf(d.w, "%d\t%d\n", i+1, v)
		}
		return nil

	case wire.FloatArray:
		n, err := d.r.ReadCount()
		if err != nil {
			return err
		}
		vals, err := d.r.ReadFloatArray(n)
		if err != nil {
			return err
		}
		d.indent(depth)
		fmt.Fprintf(d.w, "%s (%d)\n", info.Name, len(vals))
		for i, v := range vals {
			d.indent(depth + 1)
			fmt.Fprintf(d.w, "%d\t%g\n", i+1, v)
		}
		return nil

	case wire.StringArray:
		n, err := d.r.ReadCount()
		if err != nil {
			return err
		}
		vals, err := d.r.ReadStringArray(n)
		if err != nil {
			return err
		}
		d.indent(depth)
		fmt.Fprintf(d.w, "%s (%d)\n", info.Name, len(vals))
		for i, v := range vals {
			d.indent(depth + 1)
			fmt.Fprintf(d.w, "%d\t%s\n", i, v) // 0-based, per §4.K
		}
		return nil

	case wire.ListArray:
		n, err := d.r.ReadCount()
		if err != nil {
			return err
		}
		d.indent(depth)
		fmt.Fprintf(d.w, "%s (%d)\n", info.Name, n)
		for i := uint32(0); i < n; i++ {
			tag, err := d.r.ReadTag()
			if err != nil {
				return err
			}
			table := d.currentSublistTable()
			childInfo, ok := table.Lookup(tag)
			if !ok || childInfo.Kind != wire.Structure {
				return errors.Wrapf(dgerr.ErrUnexpectedTag, "expected a SUBLIST structure, got tag %#x", tag)
			}
			if err := d.dumpStruct(childInfo.ChildCtx, childInfo.Name, depth+1); err != nil {
				return err
			}
		}
		return nil

	default:
		return errors.Wrapf(dgerr.ErrUnknownTag, "unhandled kind %v for field %s", info.Kind, info.Name)
	}
}

// currentSublistTable resolves the DYNLIST context's own table, since
// a LIST_ARRAY's children are always SUBLIST-tagged DYNLIST structures
// (§3.5) regardless of which context holds the LIST_ARRAY field
// itself.
func (d *dumper) currentSublistTable() wire.TagTable {
	return d.tables[wire.CtxDynList]
}
