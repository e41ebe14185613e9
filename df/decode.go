package df

import (
	"io"

	"github.com/pkg/errors"

	"github.com/SheinbergLab/dgcodec/dgerr"
	"github.com/SheinbergLab/dgcodec/wire"
)

// Decode reads a complete DF container from r: magic, VERSION,
// BEGIN_DF, the DATA_FILE body, and the closing END_STRUCT tags. As
// in dg.Decode, the outermost terminator may be an explicit trailing
// END_STRUCT or a clean EOF (§9 open question 4).
func Decode(r wire.TagReader) (*DataFile, error) {
	if err := r.ReadMagic(MagicDF); err != nil {
		return nil, err
	}
	if err := expectTag(r, wire.TagVersion); err != nil {
		return nil, err
	}
	if err := r.NegotiateVersion(Version); err != nil {
		return nil, err
	}
	if err := expectTag(r, wire.TagBeginDF); err != nil {
		return nil, err
	}

	stack := wire.NewContextStack()
	stack.Push(wire.CtxDF, "data_file")

	df, err := decodeDataFileBody(r, stack)
	if err != nil {
		return nil, err
	}
	stack.Pop()

	tag, err := r.ReadTag()
	if errors.Is(err, io.EOF) {
		return df, nil
	}
	if err != nil {
		return nil, err
	}
	if tag != wire.EndStruct {
		return nil, errors.Wrapf(dgerr.ErrUnknownTag, "expected top-level END_STRUCT, got %#x", tag)
	}
	return df, nil
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

// decodeDataFileBody reads DF_INFO, the declared CELL_INFO/OBS_P
// counts, and their children until END_STRUCT. A declared count may
// legitimately exceed the number of structures actually present (§8
// scenario 4: DF_OK); exceeding it is ErrTooManyChildren.
func decodeDataFileBody(r wire.TagReader, stack *wire.ContextStack) (*DataFile, error) {
	df := &DataFile{}
	declaredNCInfo := -1
	declaredNObsP := -1

	for {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}

		switch tag {
		case wire.EndStruct:
			return df, nil

		case TagDFInfo:
			info, err := decodeDFInfo(r, stack)
			if err != nil {
				return nil, err
			}
			df.Info = *info

		case TagNCInfo:
			n, err := r.ReadLong()
			if err != nil {
				return nil, err
			}
			declaredNCInfo = int(n)

		case TagCInfo:
			if declaredNCInfo >= 0 && len(df.CellInfo) >= declaredNCInfo {
				return nil, errors.Wrapf(dgerr.ErrTooManyChildren, "cell_info exceeds declared count %d", declaredNCInfo)
			}
			ci, err := decodeCellInfo(r, stack)
			if err != nil {
				return nil, err
			}
			df.CellInfo = append(df.CellInfo, *ci)

		case TagNObsP:
			n, err := r.ReadLong()
			if err != nil {
				return nil, err
			}
			declaredNObsP = int(n)

		case TagObsP:
			if declaredNObsP >= 0 && len(df.ObsPeriod) >= declaredNObsP {
				return nil, errors.Wrapf(dgerr.ErrTooManyChildren, "obs_period exceeds declared count %d", declaredNObsP)
			}
			op, err := decodeObsPeriod(r, stack)
			if err != nil {
				return nil, err
			}
			df.ObsPeriod = append(df.ObsPeriod, *op)

		default:
			return nil, errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in data_file context", tag)
		}
	}
}

func decodeDFInfo(r wire.TagReader, stack *wire.ContextStack) (*DFInfo, error) {
	stack.Push(wire.CtxDFInfo, "df_info")
	defer stack.Pop()

	info := &DFInfo{}
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		switch tag {
		case wire.EndStruct:
			return info, nil
		case TagFilename:
			info.Filename, err = r.ReadString()
		case TagAuxFiles:
			var n uint32
			n, err = r.ReadCount()
			if err == nil {
				info.AuxFiles, err = r.ReadStringArray(n)
			}
		case TagTime:
			info.Time, err = r.ReadLong()
		case TagFilenum:
			info.FileNum, err = r.ReadLong()
		case TagComment:
			info.Comment, err = r.ReadString()
		case TagExp:
			info.Exp, err = r.ReadLong()
		case TagTestMode:
			info.TestMode, err = r.ReadLong()
		case TagNStimTypes:
			info.NStimTypes, err = r.ReadLong()
		case TagEMCollect:
			info.EMCollect, err = r.ReadChar()
		case TagSPCollect:
			info.SPCollect, err = r.ReadChar()
		default:
			return nil, errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in df_info context", tag)
		}
		if err != nil {
			return nil, err
		}
	}
}

func decodeCellInfo(r wire.TagReader, stack *wire.ContextStack) (*CellInfo, error) {
	stack.Push(wire.CtxCellInfo, "cell_info")
	defer stack.Pop()

	ci := &CellInfo{}
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		switch tag {
		case wire.EndStruct:
			return ci, nil
		case TagCINum:
			ci.Number, err = r.ReadLong()
		case TagCIDiscrim:
			ci.Discrim, err = r.ReadFloat()
		case TagCIDepth:
			ci.Depth, err = r.ReadFloat()
		case TagCIEV:
			err = readFixedFloatArray(r, "ev_coords", ci.EVCoords[:])
		case TagCIXY:
			err = readFixedFloatArray(r, "xy_coords", ci.XYCoords[:])
		case TagCIRFCenter:
			err = readFixedFloatArray(r, "rf_center", ci.RFCenter[:])
		case TagCITL:
			err = readFixedFloatArray(r, "rf_quad_ul", ci.RFQuadUL[:])
		case TagCIBL:
			err = readFixedFloatArray(r, "rf_quad_ll", ci.RFQuadLL[:])
		case TagCIBR:
			err = readFixedFloatArray(r, "rf_quad_lr", ci.RFQuadLR[:])
		case TagCITR:
			err = readFixedFloatArray(r, "rf_quad_ur", ci.RFQuadUR[:])
		default:
			return nil, errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in cell_info context", tag)
		}
		if err != nil {
			return nil, err
		}
	}
}

// readFixedFloatArray reads a FLOAT_ARRAY and copies it into dst,
// which must already be sized to the schema's fixed element count
// (§3.6 invariant); a mismatch is ErrInvalidFixedArray.
func readFixedFloatArray(r wire.TagReader, name string, dst []float32) error {
	n, err := r.ReadCount()
	if err != nil {
		return err
	}
	vals, err := r.ReadFloatArray(n)
	if err != nil {
		return err
	}
	if len(vals) != len(dst) {
		return errors.Wrapf(dgerr.ErrInvalidFixedArray, "%s: expected %d elements, got %d", name, len(dst), len(vals))
	}
	copy(dst, vals)
	return nil
}

// readFixedShortArray is readFixedFloatArray's SHORT_ARRAY counterpart,
// used by EM_DATA's FixPos/Window/Window2.
func readFixedShortArray(r wire.TagReader, name string, dst []int16) error {
	n, err := r.ReadCount()
	if err != nil {
		return err
	}
	vals, err := r.ReadShortArray(n)
	if err != nil {
		return err
	}
	if len(vals) != len(dst) {
		return errors.Wrapf(dgerr.ErrInvalidFixedArray, "%s: expected %d elements, got %d", name, len(dst), len(vals))
	}
	copy(dst, vals)
	return nil
}

func decodeObsPeriod(r wire.TagReader, stack *wire.ContextStack) (*ObsPeriod, error) {
	stack.Push(wire.CtxObsPeriod, "obs_period")
	defer stack.Pop()

	op := &ObsPeriod{}
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		switch tag {
		case wire.EndStruct:
			return op, nil
		case TagObsInfo:
			info, err := decodeObsInfo(r, stack)
			if err != nil {
				return nil, err
			}
			op.Info = *info
		case TagEvData:
			ev, err := decodeEvData(r, stack)
			if err != nil {
				return nil, err
			}
			op.Ev = *ev
		case TagSpData:
			sp, err := decodeSpData(r, stack)
			if err != nil {
				return nil, err
			}
			op.Sp = *sp
		case TagEmData:
			em, err := decodeEmData(r, stack)
			if err != nil {
				return nil, err
			}
			op.Em = *em
		default:
			return nil, errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in obs_period context", tag)
		}
	}
}

func decodeObsInfo(r wire.TagReader, stack *wire.ContextStack) (*ObsInfo, error) {
	stack.Push(wire.CtxObsInfo, "obs_info")
	defer stack.Pop()

	oi := &ObsInfo{}
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		switch tag {
		case wire.EndStruct:
			return oi, nil
		case TagOIFilenum:
			oi.FileNum, err = r.ReadLong()
		case TagOIIndex:
			oi.Index, err = r.ReadLong()
		case TagOIBlock:
			oi.Block, err = r.ReadLong()
		case TagOIObsP:
			oi.ObsP, err = r.ReadLong()
		case TagOIStatus:
			oi.Status, err = r.ReadLong()
		case TagOIDuration:
			oi.Duration, err = r.ReadLong()
		case TagOINTrials:
			oi.NTrials, err = r.ReadLong()
		default:
			return nil, errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in obs_info context", tag)
		}
		if err != nil {
			return nil, err
		}
	}
}

func decodeEvData(r wire.TagReader, stack *wire.ContextStack) (*EVData, error) {
	stack.Push(wire.CtxEvData, "ev_data")
	defer stack.Pop()

	ev := &EVData{}
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		if tag == wire.EndStruct {
			return ev, nil
		}
		kind, ok := kindForTag(tag)
		if !ok {
			return nil, errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in ev_data context", tag)
		}
		list, err := decodeEvList(r, stack)
		if err != nil {
			return nil, err
		}
		ev.Lists[kind] = *list
	}
}

func kindForTag(tag wire.Tag) (EVKind, bool) {
	if tag < evBaseTag {
		return 0, false
	}
	kind := EVKind(tag - evBaseTag)
	if kind >= evKindCount {
		return 0, false
	}
	return kind, true
}

func decodeEvList(r wire.TagReader, stack *wire.ContextStack) (*EVList, error) {
	stack.Push(wire.CtxEvList, "ev_list")
	defer stack.Pop()

	list := &EVList{}
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		switch tag {
		case wire.EndStruct:
			return list, nil
		case TagEVVals:
			n, err := r.ReadCount()
			if err != nil {
				return nil, err
			}
			if list.Vals, err = r.ReadLongArray(n); err != nil {
				return nil, err
			}
		case TagEVTimes:
			n, err := r.ReadCount()
			if err != nil {
				return nil, err
			}
			if list.Times, err = r.ReadLongArray(n); err != nil {
				return nil, err
			}
		default:
			return nil, errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in ev_list context", tag)
		}
	}
}

func decodeEmData(r wire.TagReader, stack *wire.ContextStack) (*EMData, error) {
	stack.Push(wire.CtxEmData, "em_data")
	defer stack.Pop()

	em := &EMData{}
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		switch tag {
		case wire.EndStruct:
			return em, nil
		case TagEMOnTime:
			em.OnTime, err = r.ReadLong()
		case TagEMRate:
			em.Rate, err = r.ReadFloat()
		case TagEMFixPos:
			err = readFixedShortArray(r, "fix_pos", em.FixPos[:])
		case TagEMWindow:
			err = readFixedShortArray(r, "window", em.Window[:])
		case TagEMWindow2:
			err = readFixedShortArray(r, "window2", em.Window2[:])
		case TagEMPntDeg:
			em.PntDeg, err = r.ReadLong()
		case TagEMSampsH:
			var n uint32
			n, err = r.ReadCount()
			if err == nil {
				em.SampsH, err = r.ReadShortArray(n)
			}
		case TagEMSampsV:
			var n uint32
			n, err = r.ReadCount()
			if err == nil {
				em.SampsV, err = r.ReadShortArray(n)
			}
		default:
			return nil, errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in em_data context", tag)
		}
		if err != nil {
			return nil, err
		}
	}
}

func decodeSpData(r wire.TagReader, stack *wire.ContextStack) (*SPData, error) {
	stack.Push(wire.CtxSpData, "sp_data")
	defer stack.Pop()

	sp := &SPData{}
	declaredN := -1
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		switch tag {
		case wire.EndStruct:
			return sp, nil
		case TagSPNChannels:
			n, err := r.ReadLong()
			if err != nil {
				return nil, err
			}
			declaredN = int(n)
		case TagSPChannel:
			if declaredN >= 0 && len(sp.Channels) >= declaredN {
				return nil, errors.Wrapf(dgerr.ErrTooManyChildren, "sp_channel exceeds declared count %d", declaredN)
			}
			ch, err := decodeSpChannel(r, stack)
			if err != nil {
				return nil, err
			}
			sp.Channels = append(sp.Channels, *ch)
		default:
			return nil, errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in sp_data context", tag)
		}
	}
}

func decodeSpChannel(r wire.TagReader, stack *wire.ContextStack) (*SPChannel, error) {
	stack.Push(wire.CtxSpChannel, "sp_channel")
	defer stack.Pop()

	ch := &SPChannel{}
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		switch tag {
		case wire.EndStruct:
			return ch, nil
		case TagSPChCellNum:
			ch.CellNum, err = r.ReadLong()
		case TagSPChSource:
			ch.Source, err = r.ReadChar()
		case TagSPChData:
			var n uint32
			n, err = r.ReadCount()
			if err == nil {
				ch.SpTimes, err = r.ReadFloatArray(n)
			}
		default:
			return nil, errors.Wrapf(dgerr.ErrUnknownTag, "tag %#x in sp_channel context", tag)
		}
		if err != nil {
			return nil, err
		}
	}
}
