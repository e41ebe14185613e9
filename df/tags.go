package df

import "github.com/SheinbergLab/dgcodec/wire"

// MagicDF is the 4-byte family signature for DF containers, read
// without flipping (§3.3). Value taken from
// original_source/c/src/df.c's dfMagicNumber.
var MagicDF = [4]byte{0x20, 0x10, 0x30, 0x60}

// Version is the wire-format version float compared during
// negotiation (§3.3), taken from df.c's dfVersion.
const Version float32 = 1.0

// Top-level and DATA_FILE-context tags.
const (
	TagDFInfo  wire.Tag = 0x20
	TagNObsP   wire.Tag = 0x21
	TagObsP    wire.Tag = 0x22
	TagNCInfo  wire.Tag = 0x23
	TagCInfo   wire.Tag = 0x24
)

// DF_INFO-context tags.
const (
	TagFilename   wire.Tag = 0x30
	TagTime       wire.Tag = 0x31
	TagFilenum    wire.Tag = 0x32
	TagComment    wire.Tag = 0x33
	TagExp        wire.Tag = 0x34
	TagTestMode   wire.Tag = 0x35
	TagEMCollect  wire.Tag = 0x36
	TagSPCollect  wire.Tag = 0x37
	TagNStimTypes wire.Tag = 0x38
	TagAuxFiles   wire.Tag = 0x39
)

// OBS_P-context tags.
const (
	TagObsInfo wire.Tag = 0x40
	TagEvData  wire.Tag = 0x41
	TagSpData  wire.Tag = 0x42
	TagEmData  wire.Tag = 0x43
)

// OBS_INFO-context tags.
const (
	TagOIBlock    wire.Tag = 0x50
	TagOIObsP     wire.Tag = 0x51
	TagOIStatus   wire.Tag = 0x52
	TagOIDuration wire.Tag = 0x53
	TagOINTrials  wire.Tag = 0x54
	TagOIFilenum  wire.Tag = 0x55
	TagOIIndex    wire.Tag = 0x56
)

// evBaseTag is the first tag byte of the EV_DATA context's ~30 event
// structure openers; tag for kind k is evBaseTag+Tag(k), matching the
// declaration order of original_source/c/src/df.c's EvDataTags.
const evBaseTag wire.Tag = 0x60

func evTag(kind EVKind) wire.Tag { return evBaseTag + wire.Tag(kind) }

// EV_LIST-context tags.
const (
	TagEVVals  wire.Tag = 0x90
	TagEVTimes wire.Tag = 0x91
)

// EM_DATA-context tags.
const (
	TagEMOnTime  wire.Tag = 0x92
	TagEMRate    wire.Tag = 0x93
	TagEMFixPos  wire.Tag = 0x94
	TagEMWindow  wire.Tag = 0x95
	TagEMPntDeg  wire.Tag = 0x96
	TagEMSampsH  wire.Tag = 0x97
	TagEMSampsV  wire.Tag = 0x98
	TagEMWindow2 wire.Tag = 0x99
)

// SP_DATA-context tags.
const (
	TagSPNChannels wire.Tag = 0xA0
	TagSPChannel   wire.Tag = 0xA1
)

// SP_CHANNEL-context tags.
const (
	TagSPChData     wire.Tag = 0xA8
	TagSPChSource   wire.Tag = 0xA9
	TagSPChCellNum  wire.Tag = 0xAA
)

// CELL_INFO-context tags.
const (
	TagCINum      wire.Tag = 0xB0
	TagCIDiscrim  wire.Tag = 0xB1
	TagCIEV       wire.Tag = 0xB2
	TagCIXY       wire.Tag = 0xB3
	TagCIRFCenter wire.Tag = 0xB4
	TagCIDepth    wire.Tag = 0xB5
	TagCITL       wire.Tag = 0xB6
	TagCIBL       wire.Tag = 0xB7
	TagCIBR       wire.Tag = 0xB8
	TagCITR       wire.Tag = 0xB9
)
