package df

import "github.com/SheinbergLab/dgcodec/wire"

var dataFileTable = wire.TagTable{
	TagDFInfo: {Name: "df_info", Kind: wire.Structure, ChildCtx: wire.CtxDFInfo},
	TagNObsP:  {Name: "nobsp", Kind: wire.Long},
	TagObsP:   {Name: "obs_period", Kind: wire.Structure, ChildCtx: wire.CtxObsPeriod},
	TagNCInfo: {Name: "ncinfo", Kind: wire.Long},
	TagCInfo:  {Name: "cell_info", Kind: wire.Structure, ChildCtx: wire.CtxCellInfo},
}

var dfInfoTable = wire.TagTable{
	TagFilename:   {Name: "filename", Kind: wire.String},
	TagTime:       {Name: "time", Kind: wire.Long},
	TagFilenum:    {Name: "filenum", Kind: wire.Long},
	TagComment:    {Name: "comment", Kind: wire.String},
	TagExp:        {Name: "exp", Kind: wire.Long},
	TagTestMode:   {Name: "test_mode", Kind: wire.Long},
	TagEMCollect:  {Name: "em_collect", Kind: wire.Char},
	TagSPCollect:  {Name: "sp_collect", Kind: wire.Char},
	TagNStimTypes: {Name: "nstim_types", Kind: wire.Long},
	TagAuxFiles:   {Name: "aux_files", Kind: wire.StringArray},
}

var obsPTable = wire.TagTable{
	TagObsInfo: {Name: "obs_info", Kind: wire.Structure, ChildCtx: wire.CtxObsInfo},
	TagEvData:  {Name: "ev_data", Kind: wire.Structure, ChildCtx: wire.CtxEvData},
	TagSpData:  {Name: "sp_data", Kind: wire.Structure, ChildCtx: wire.CtxSpData},
	TagEmData:  {Name: "em_data", Kind: wire.Structure, ChildCtx: wire.CtxEmData},
}

var obsInfoTable = wire.TagTable{
	TagOIBlock:    {Name: "block", Kind: wire.Long},
	TagOIObsP:     {Name: "obsp", Kind: wire.Long},
	TagOIStatus:   {Name: "status", Kind: wire.Long},
	TagOIDuration: {Name: "duration", Kind: wire.Long},
	TagOINTrials:  {Name: "ntrials", Kind: wire.Long},
	TagOIFilenum:  {Name: "filenum", Kind: wire.Long},
	TagOIIndex:    {Name: "index", Kind: wire.Long},
}

// evDataTable is built once at init time: one Structure entry per
// EVKind, named after evKindNames and all resolving to CtxEvList.
var evDataTable = buildEvDataTable()

func buildEvDataTable() wire.TagTable {
	t := make(wire.TagTable, evKindCount)
	for kind := EVKind(0); kind < evKindCount; kind++ {
		t[evTag(kind)] = wire.TagInfo{
			Name:     evKindNames[kind],
			Kind:     wire.Structure,
			ChildCtx: wire.CtxEvList,
		}
	}
	return t
}

var evListTable = wire.TagTable{
	TagEVVals:  {Name: "vals", Kind: wire.LongArray},
	TagEVTimes: {Name: "times", Kind: wire.LongArray},
}

var emDataTable = wire.TagTable{
	TagEMOnTime:  {Name: "on_time", Kind: wire.Long},
	TagEMRate:    {Name: "rate", Kind: wire.Float},
	TagEMFixPos:  {Name: "fix_pos", Kind: wire.ShortArray},
	TagEMWindow:  {Name: "window", Kind: wire.ShortArray},
	TagEMWindow2: {Name: "window2", Kind: wire.ShortArray},
	TagEMPntDeg:  {Name: "pnt_deg", Kind: wire.Long},
	TagEMSampsH:  {Name: "samps_h", Kind: wire.ShortArray},
	TagEMSampsV:  {Name: "samps_v", Kind: wire.ShortArray},
}

var spDataTable = wire.TagTable{
	TagSPNChannels: {Name: "nchannels", Kind: wire.Long},
	TagSPChannel:   {Name: "sp_channel", Kind: wire.Structure, ChildCtx: wire.CtxSpChannel},
}

var spChannelTable = wire.TagTable{
	TagSPChData:    {Name: "sp_times", Kind: wire.FloatArray},
	TagSPChSource:  {Name: "source", Kind: wire.Char},
	TagSPChCellNum: {Name: "cell_num", Kind: wire.Long},
}

var cellInfoTable = wire.TagTable{
	TagCINum:      {Name: "number", Kind: wire.Long},
	TagCIDiscrim:  {Name: "discrim", Kind: wire.Float},
	TagCIEV:       {Name: "ev_coords", Kind: wire.FloatArray},
	TagCIXY:       {Name: "xy_coords", Kind: wire.FloatArray},
	TagCIRFCenter: {Name: "rf_center", Kind: wire.FloatArray},
	TagCIDepth:    {Name: "depth", Kind: wire.Float},
	TagCITL:       {Name: "rf_quad_ul", Kind: wire.FloatArray},
	TagCIBL:       {Name: "rf_quad_ll", Kind: wire.FloatArray},
	TagCIBR:       {Name: "rf_quad_lr", Kind: wire.FloatArray},
	TagCITR:       {Name: "rf_quad_ur", Kind: wire.FloatArray},
}

// Tables exposes every DF context's tag table, for shared consumers
// like the ASCII dumper (§4.K) that walk a stream generically instead
// of through this package's typed decode functions.
func Tables() map[wire.Context]wire.TagTable {
	return map[wire.Context]wire.TagTable{
		wire.CtxDF:        dataFileTable,
		wire.CtxDFInfo:    dfInfoTable,
		wire.CtxObsPeriod: obsPTable,
		wire.CtxObsInfo:   obsInfoTable,
		wire.CtxEvData:    evDataTable,
		wire.CtxEvList:    evListTable,
		wire.CtxEmData:    emDataTable,
		wire.CtxSpData:    spDataTable,
		wire.CtxSpChannel: spChannelTable,
		wire.CtxCellInfo:  cellInfoTable,
	}
}
