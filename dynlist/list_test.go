package dynlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SheinbergLab/dgcodec/wire"
)

func TestNewCoercesIncrementToAtLeastOne(t *testing.T) {
	l := New(wire.DataLong, 0)
	assert.Equal(t, 1, l.Increment)

	l = New(wire.DataLong, -5)
	assert.Equal(t, 1, l.Increment)
}

func TestFromValuesIncrementHeuristic(t *testing.T) {
	// n=10 -> inc = max(n/2, n) = 10, within bounds.
	l := FromValues(wire.DataLong, make([]int32, 10), nil, nil, nil, nil, nil)
	assert.Equal(t, 10, l.Increment)

	// n=0 -> floored to 2.
	l = FromValues(wire.DataLong, nil, nil, nil, nil, nil, nil)
	assert.Equal(t, 2, l.Increment)

	// n=3000 -> capped at 1024.
	l = FromValues(wire.DataLong, make([]int32, 3000), nil, nil, nil, nil, nil)
	assert.Equal(t, 1024, l.Increment)
}

func TestGrowthSafetyOneMillionLongs(t *testing.T) {
	l := New(wire.DataLong, 4)
	next := 1.1
	for i := 0; i < 1_000_000; i++ {
		l.AppendLong(int32(i))
		if float64(l.N()) >= next {
			require.LessOrEqual(t, l.N(), l.Capacity())
			require.GreaterOrEqual(t, l.Capacity(), l.N())
			next *= 1.1
		}
	}
	require.Equal(t, 1_000_000, l.N())
	for i := 0; i < 1_000_000; i += 97919 {
		require.EqualValues(t, i, l.Long(i))
	}
}

func TestCopyIsDeepAndIdempotent(t *testing.T) {
	child := New(wire.DataFloat, 2)
	child.AppendFloat(1.5)
	child.AppendFloat(2.5)

	outer := New(wire.DataList, 2)
	outer.MoveList(child)

	c1 := outer.Copy()
	c2 := c1.Copy()

	require.Equal(t, c1.N(), c2.N())
	require.Equal(t, c1.ListAt(0).Floats, c2.ListAt(0).Floats)

	// Deep copy: mutating the original's child must not affect the copy.
	child.AppendFloat(9.9)
	require.Equal(t, 2, c1.ListAt(0).N())
}

func TestInsertStringShiftsTail(t *testing.T) {
	l := New(wire.DataString, 2)
	l.AppendString("a")
	l.AppendString("ccc")
	l.InsertString(1, "")

	require.Equal(t, 3, l.N())
	require.Equal(t, "a", l.String(0))
	require.Equal(t, "", l.String(1))
	require.Equal(t, "ccc", l.String(2))
}

func TestResetToTypeClearsBackingSlices(t *testing.T) {
	l := New(wire.DataLong, 4)
	l.AppendLong(1)
	l.AppendLong(2)

	l.ResetToType(wire.DataFloat, 8)
	assert.Equal(t, 0, l.N())
	assert.Equal(t, wire.DataFloat, l.Datatype)
	assert.Equal(t, 8, l.Increment)
	assert.Nil(t, l.Longs)
}
