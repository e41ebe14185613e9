package df

import "github.com/SheinbergLab/dgcodec/wire"

// Encode writes df as a complete DF container (§6.1): magic, VERSION,
// BEGIN_DF, the DF_INFO/CELL_INFO/OBS_P children in
// original_source/c/src/df.c's dfRecordDataFile order, and the two
// closing END_STRUCT tags.
func Encode(df *DataFile) []byte {
	buf := wire.NewBuffer()
	stack := wire.NewContextStack()

	buf.RecordMagic(MagicDF)
	buf.RecordVersion(Version)
	buf.BeginStruct(stack, wire.TagBeginDF, wire.CtxDF, "data_file")

	encodeDFInfo(buf, stack, &df.Info)

	buf.RecordLong(TagNCInfo, int32(len(df.CellInfo)))
	for i := range df.CellInfo {
		encodeCellInfo(buf, stack, &df.CellInfo[i])
	}

	buf.RecordLong(TagNObsP, int32(len(df.ObsPeriod)))
	for i := range df.ObsPeriod {
		encodeObsPeriod(buf, stack, &df.ObsPeriod[i])
	}

	buf.EndStruct(stack) // closes DATA_FILE
	buf.RecordFlag(wire.EndStruct) // closes the top level; its pre-seeded stack frame is never popped

	return buf.Bytes
}

func encodeDFInfo(buf *wire.Buffer, stack *wire.ContextStack, info *DFInfo) {
	buf.BeginStruct(stack, TagDFInfo, wire.CtxDFInfo, "df_info")
	buf.RecordString(TagFilename, &info.Filename)
	buf.RecordStringArray(TagAuxFiles, info.AuxFiles)
	buf.RecordLong(TagTime, info.Time)
	buf.RecordLong(TagFilenum, info.FileNum)
	buf.RecordString(TagComment, &info.Comment)
	buf.RecordLong(TagExp, info.Exp)
	buf.RecordLong(TagTestMode, info.TestMode)
	buf.RecordLong(TagNStimTypes, info.NStimTypes)
	buf.RecordChar(TagEMCollect, info.EMCollect)
	buf.RecordChar(TagSPCollect, info.SPCollect)
	buf.EndStruct(stack)
}

func encodeCellInfo(buf *wire.Buffer, stack *wire.ContextStack, ci *CellInfo) {
	buf.BeginStruct(stack, TagCInfo, wire.CtxCellInfo, "cell_info")
	buf.RecordLong(TagCINum, ci.Number)
	buf.RecordFloat(TagCIDiscrim, ci.Discrim)
	buf.RecordFloatArray(TagCIEV, ci.EVCoords[:])
	buf.RecordFloatArray(TagCIXY, ci.XYCoords[:])
	buf.RecordFloatArray(TagCIRFCenter, ci.RFCenter[:])
	buf.RecordFloat(TagCIDepth, ci.Depth)
	buf.RecordFloatArray(TagCITL, ci.RFQuadUL[:])
	buf.RecordFloatArray(TagCIBL, ci.RFQuadLL[:])
	buf.RecordFloatArray(TagCIBR, ci.RFQuadLR[:])
	buf.RecordFloatArray(TagCITR, ci.RFQuadUR[:])
	buf.EndStruct(stack)
}

func encodeObsPeriod(buf *wire.Buffer, stack *wire.ContextStack, op *ObsPeriod) {
	buf.BeginStruct(stack, TagObsP, wire.CtxObsPeriod, "obs_period")
	encodeObsInfo(buf, stack, &op.Info)
	encodeEvData(buf, stack, &op.Ev)
	encodeSpData(buf, stack, &op.Sp)
	encodeEmData(buf, stack, &op.Em)
	buf.EndStruct(stack)
}

func encodeObsInfo(buf *wire.Buffer, stack *wire.ContextStack, oi *ObsInfo) {
	buf.BeginStruct(stack, TagObsInfo, wire.CtxObsInfo, "obs_info")
	buf.RecordLong(TagOIFilenum, oi.FileNum)
	buf.RecordLong(TagOIIndex, oi.Index)
	buf.RecordLong(TagOIBlock, oi.Block)
	buf.RecordLong(TagOIObsP, oi.ObsP)
	buf.RecordLong(TagOIStatus, oi.Status)
	buf.RecordLong(TagOIDuration, oi.Duration)
	buf.RecordLong(TagOINTrials, oi.NTrials)
	buf.EndStruct(stack)
}

func encodeEvData(buf *wire.Buffer, stack *wire.ContextStack, ev *EVData) {
	buf.BeginStruct(stack, TagEvData, wire.CtxEvData, "ev_data")
	for kind := EVKind(0); kind < evKindCount; kind++ {
		encodeEvList(buf, stack, evTag(kind), &ev.Lists[kind])
	}
	buf.EndStruct(stack)
}

// encodeEvList skips writing this channel entirely when it carries no
// values, mirroring dfRecordEvList's `if (EV_LIST_N(evlist))` guard
// (§8 DF round-trip note).
func encodeEvList(buf *wire.Buffer, stack *wire.ContextStack, tag wire.Tag, list *EVList) {
	if list.N() == 0 {
		return
	}
	buf.BeginStruct(stack, tag, wire.CtxEvList, "ev_list")
	buf.RecordLongArray(TagEVVals, list.Vals)
	buf.RecordLongArray(TagEVTimes, list.Times)
	buf.EndStruct(stack)
}

func encodeEmData(buf *wire.Buffer, stack *wire.ContextStack, em *EMData) {
	buf.BeginStruct(stack, TagEmData, wire.CtxEmData, "em_data")
	buf.RecordLong(TagEMOnTime, em.OnTime)
	buf.RecordFloat(TagEMRate, em.Rate)
	buf.RecordShortArray(TagEMFixPos, em.FixPos[:])
	buf.RecordShortArray(TagEMWindow, em.Window[:])
	buf.RecordShortArray(TagEMWindow2, em.Window2[:])
	buf.RecordLong(TagEMPntDeg, em.PntDeg)
	buf.RecordShortArray(TagEMSampsH, em.SampsH)
	buf.RecordShortArray(TagEMSampsV, em.SampsV)
	buf.EndStruct(stack)
}

func encodeSpData(buf *wire.Buffer, stack *wire.ContextStack, sp *SPData) {
	buf.BeginStruct(stack, TagSpData, wire.CtxSpData, "sp_data")
	buf.RecordLong(TagSPNChannels, int32(len(sp.Channels)))
	for i := range sp.Channels {
		encodeSpChannel(buf, stack, &sp.Channels[i])
	}
	buf.EndStruct(stack)
}

func encodeSpChannel(buf *wire.Buffer, stack *wire.ContextStack, ch *SPChannel) {
	buf.BeginStruct(stack, TagSPChannel, wire.CtxSpChannel, "sp_channel")
	buf.RecordLong(TagSPChCellNum, ch.CellNum)
	buf.RecordChar(TagSPChSource, ch.Source)
	buf.RecordFloatArray(TagSPChData, ch.SpTimes)
	buf.EndStruct(stack)
}
