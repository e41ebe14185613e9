package df

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SheinbergLab/dgcodec/dgerr"
	"github.com/SheinbergLab/dgcodec/wire"
)

func sampleDataFile() *DataFile {
	d := &DataFile{
		Info: DFInfo{
			Filename:   "run001.dg",
			AuxFiles:   []string{"run001.ev2"},
			Time:       1234,
			FileNum:    1,
			Comment:    "test session",
			Exp:        7,
			TestMode:   0,
			NStimTypes: 3,
			EMCollect:  1,
			SPCollect:  1,
		},
	}
	ci := CellInfo{Number: 1, Discrim: 0.5, Depth: 120.0}
	ci.EVCoords = [2]float32{1, 2}
	ci.XYCoords = [2]float32{3, 4}
	ci.RFCenter = [2]float32{5, 6}
	ci.RFQuadUL = [2]float32{1, 1}
	ci.RFQuadLL = [2]float32{1, 1}
	ci.RFQuadLR = [2]float32{1, 1}
	ci.RFQuadUR = [2]float32{1, 1}
	d.CellInfo = append(d.CellInfo, ci)

	op := ObsPeriod{
		Info: ObsInfo{FileNum: 1, Index: 0, Block: 1, ObsP: 1, Status: 0, Duration: 5000, NTrials: 1},
	}
	op.Ev.List(EVFixOn).Vals = []int32{100}
	op.Ev.List(EVFixOn).Times = []int32{100}
	op.Sp.Channels = []SPChannel{{CellNum: 1, Source: 0, SpTimes: []float32{1.1, 2.2}}}
	op.Em = EMData{OnTime: 10, Rate: 200.0, PntDeg: 1, SampsH: []int16{1, 2}, SampsV: []int16{3, 4}}
	d.ObsPeriod = append(d.ObsPeriod, op)

	return d
}

func TestDataFileRoundTrip(t *testing.T) {
	d := sampleDataFile()
	raw := Encode(d)

	decoded, err := Decode(wire.NewSliceReader(raw))
	require.NoError(t, err)

	assert.Equal(t, d.Info.Filename, decoded.Info.Filename)
	assert.Equal(t, d.Info.AuxFiles, decoded.Info.AuxFiles)
	assert.Equal(t, d.Info.Comment, decoded.Info.Comment)
	require.Len(t, decoded.CellInfo, 1)
	assert.Equal(t, d.CellInfo[0].Number, decoded.CellInfo[0].Number)
	assert.Equal(t, d.CellInfo[0].RFCenter, decoded.CellInfo[0].RFCenter)

	require.Len(t, decoded.ObsPeriod, 1)
	op := decoded.ObsPeriod[0]
	assert.Equal(t, int32(5000), op.Info.Duration)
	assert.Equal(t, []int32{100}, op.Ev.List(EVFixOn).Vals)
	// Untouched event channels stay empty: the writer skips them
	// entirely, so they decode as zero-value, never populated.
	assert.Equal(t, 0, op.Ev.List(EVStimOn).N())
	require.Len(t, op.Sp.Channels, 1)
	assert.Equal(t, []float32{1.1, 2.2}, op.Sp.Channels[0].SpTimes)
	assert.Equal(t, int16(1), op.Em.SampsH[0])
}

// Scenario 4: a declared NOBSP exceeding the actual child count is
// legal; exceeding the declared count by supplying more children than
// declared is ErrTooManyChildren.
func TestObsPeriodDeclaredCountMismatch(t *testing.T) {
	buf := wire.NewBuffer()
	stack := wire.NewContextStack()

	buf.RecordMagic(MagicDF)
	buf.RecordVersion(Version)
	buf.BeginStruct(stack, wire.TagBeginDF, wire.CtxDF, "data_file")
	buf.RecordLong(TagNObsP, 2)

	op := ObsPeriod{Info: ObsInfo{FileNum: 1}}
	encodeObsPeriod(buf, stack, &op)

	buf.EndStruct(stack)
	buf.RecordFlag(wire.EndStruct) // top level

	decoded, err := Decode(wire.NewSliceReader(buf.Bytes))
	require.NoError(t, err)
	require.Len(t, decoded.ObsPeriod, 1)
}

func TestObsPeriodTooManyChildren(t *testing.T) {
	buf := wire.NewBuffer()
	stack := wire.NewContextStack()

	buf.RecordMagic(MagicDF)
	buf.RecordVersion(Version)
	buf.BeginStruct(stack, wire.TagBeginDF, wire.CtxDF, "data_file")
	buf.RecordLong(TagNObsP, 2)

	for i := 0; i < 3; i++ {
		op := ObsPeriod{Info: ObsInfo{FileNum: int32(i)}}
		encodeObsPeriod(buf, stack, &op)
	}

	buf.EndStruct(stack)
	buf.RecordFlag(wire.EndStruct) // top level

	_, err := Decode(wire.NewSliceReader(buf.Bytes))
	require.ErrorIs(t, err, dgerr.ErrTooManyChildren)
}

func TestFixedArrayMismatchIsRejected(t *testing.T) {
	buf := wire.NewBuffer()
	stack := wire.NewContextStack()

	buf.RecordMagic(MagicDF)
	buf.RecordVersion(Version)
	buf.BeginStruct(stack, wire.TagBeginDF, wire.CtxDF, "data_file")
	buf.RecordLong(TagNCInfo, 1)
	buf.BeginStruct(stack, TagCInfo, wire.CtxCellInfo, "cell_info")
	buf.RecordLong(TagCINum, 1)
	// EVCoords is meant to be exactly 2 elements; write 3.
	buf.RecordFloatArray(TagCIEV, []float32{1, 2, 3})
	buf.EndStruct(stack)
	buf.EndStruct(stack)
	buf.RecordFlag(wire.EndStruct) // top level

	_, err := Decode(wire.NewSliceReader(buf.Bytes))
	require.ErrorIs(t, err, dgerr.ErrInvalidFixedArray)
}
