package ascii

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SheinbergLab/dgcodec/dg"
	"github.com/SheinbergLab/dgcodec/dynlist"
	"github.com/SheinbergLab/dgcodec/dyngroup"
	"github.com/SheinbergLab/dgcodec/wire"
)

func TestDumpConsumesExactlyBufferAndBalancesBeginEnd(t *testing.T) {
	g := dyngroup.NewNamed("g", 0)
	outer := g.AddNewList("outer", wire.DataList, 4)
	longs := dynlist.New(wire.DataLong, 4)
	longs.AppendLong(1)
	longs.AppendLong(2)
	outer.MoveList(longs)

	raw := dg.Encode(g)

	r := wire.NewSliceReader(raw)
	var out bytes.Buffer
	err := Dump(&out, r, dg.MagicDG, dg.Version, wire.TagBeginDG, "dyngroup", wire.CtxDynGroup, dg.Tables())
	require.NoError(t, err)

	require.Equal(t, len(raw), r.Consumed())

	text := out.String()
	beginCount := strings.Count(text, "BEGIN ")
	endCount := strings.Count(text, "END ")
	require.Equal(t, beginCount, endCount)
	require.Contains(t, text, "name\tg")
	require.Contains(t, text, "long_data (2)")
}
