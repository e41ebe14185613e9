// Package df implements the fixed-schema container family (§3.6,
// §4.G): a DATA_FILE walker built atop the wire package's buffer and
// readers. Grounded on original_source/c/src/df.c's tag tables and
// dfRecord*/df_read* functions, and on the teacher's mutually
// recursive Visitor-driven walk (github.com/kungfusheep/glint,
// walker.go).
package df

// EVKind enumerates the ~30 behavioral/physiological event channels
// an EV_DATA structure carries, one EVList each, per §3.6. Names and
// ordering are taken directly from original_source/c/src/df.c's
// EvDataTags table.
type EVKind int

const (
	EVFixOn EVKind = iota
	EVFixOff
	EVStimOn
	EVStimOff
	EVResponse
	EVPatOn
	EVPatOff
	EVStimType
	EVPattern
	EVReward
	EVProbeOn
	EVProbeOff
	EVSampOn
	EVSampOff
	EVFixate
	EVDecide
	EVStimulus
	EVDelay
	EVISI
	EVUnit
	EVInfo
	EVCue
	EVTarget
	EVDistractor
	EVCorrect
	EVTrialType
	EVAbort
	EVWrong
	EVPunish
	EVBlanking
	EVSaccade

	evKindCount
)

// evKindNames mirrors EvDataTags' display names in df.c, in
// declaration order.
var evKindNames = [evKindCount]string{
	"FIXON", "FIXOFF", "STIMON", "STIMOFF", "RESPONSE", "PATON", "PATOFF",
	"STIMTYPE", "PATTERN", "REWARD", "PROBEON", "PROBEOFF", "SAMPON",
	"SAMPOFF", "FIXATE", "DECIDE", "STIMULUS", "DELAY", "ISI", "UNIT",
	"INFO", "CUE", "TARGET", "DISTRACTOR", "CORRECT", "TRIALTYPE",
	"ABORT", "WRONG", "PUNISH", "BLANKING", "SACCADE",
}

func (k EVKind) String() string {
	if k < 0 || k >= evKindCount {
		return "invalid EVKind"
	}
	return evKindNames[k]
}

// EVList holds one event channel's paired value/timestamp vectors.
// Per §9's second open question, writers always emit NTimes equal to
// len(Times), but readers must tolerate a mismatch; N (the Vals
// count) is authoritative here.
type EVList struct {
	Vals  []int32
	Times []int32
}

// N is the authoritative element count for this list (the Vals
// count), per §9.
func (e *EVList) N() int { return len(e.Vals) }

// EVData holds all ~30 event channels for one observation period.
// Empty channels (N()==0) are legal and are simply not written to the
// wire (§8 DF round-trip note): the writer skips empty EVLists, so a
// decoded EVData's empty channels are indistinguishable from channels
// that were never populated.
type EVData struct {
	Lists [evKindCount]EVList
}

// List returns the EVList for kind.
func (d *EVData) List(kind EVKind) *EVList { return &d.Lists[kind] }

// EMData holds eye-movement sampling data for one observation period.
// FixPos is exactly 2 elements, Window and Window2 exactly 4 — all
// SHORT, per original_source/c/src/df.c's dfRecordEmData. len(SampsH)
// must equal len(SampsV) (§3.6 invariant).
type EMData struct {
	OnTime  int32
	Rate    float32
	FixPos  [2]int16
	Window  [4]int16
	Window2 [4]int16
	PntDeg  int32
	SampsH  []int16
	SampsV  []int16
}

// SPChannel holds one spike channel's metadata and timestamps.
type SPChannel struct {
	CellNum int32
	Source  int8
	SpTimes []float32
}

// SPData holds every spike channel recorded for one observation
// period. The declared NCHANNELS count is not stored: the encoder
// writes len(Channels), and the decoder rejects SP_CHANNEL structures
// beyond a declared count (ErrTooManyChildren) but accepts fewer.
type SPData struct {
	Channels []SPChannel
}

// ObsInfo holds one observation period's bookkeeping fields.
type ObsInfo struct {
	FileNum  int32
	Index    int32
	Block    int32
	ObsP     int32
	Status   int32 // stored as signed 32-bit even if the schema treats it as an enum, per §4.E/F
	Duration int32
	NTrials  int32
}

// ObsPeriod is one trial/observation period: its bookkeeping info plus
// event, eye-movement, and spike data.
type ObsPeriod struct {
	Info ObsInfo
	Ev   EVData
	Sp   SPData
	Em   EMData
}

// CellInfo holds one recorded cell's identifying and spatial metadata.
// All coordinate/quadrant fields are exactly 2 elements (§3.6
// invariant).
type CellInfo struct {
	Number   int32
	Discrim  float32
	Depth    float32
	EVCoords [2]float32
	XYCoords [2]float32
	RFCenter [2]float32
	RFQuadUL [2]float32
	RFQuadLL [2]float32
	RFQuadLR [2]float32
	RFQuadUR [2]float32
}

// DFInfo holds a data file's top-level descriptive metadata.
type DFInfo struct {
	Filename    string
	AuxFiles    []string
	Time        int32
	FileNum     int32
	Comment     string
	Exp         int32
	TestMode    int32
	NStimTypes  int32
	EMCollect   int8
	SPCollect   int8
}

// DataFile is the root DF entity: file-level info, every recorded
// cell, and every observation period.
type DataFile struct {
	Info      DFInfo
	CellInfo  []CellInfo
	ObsPeriod []ObsPeriod
}
