package dyngroup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SheinbergLab/dgcodec/wire"
)

func TestAddNewListAndFind(t *testing.T) {
	g := NewNamed("g", 0)
	l := g.AddNewList("values", wire.DataLong, 4)
	l.AppendLong(42)

	require.Equal(t, 1, g.N())
	found := g.Find("values")
	require.NotNil(t, found)
	require.EqualValues(t, 42, found.Long(0))
	require.Nil(t, g.Find("missing"))
}

func TestGroupCopyIsDeep(t *testing.T) {
	g := NewNamed("g", 0)
	l := g.AddNewList("vals", wire.DataLong, 4)
	l.AppendLong(1)

	c := g.Copy("g2")
	require.Equal(t, "g2", c.Name)
	require.Equal(t, 1, c.N())

	l.AppendLong(2)
	require.Equal(t, 1, c.List(0).N())
}

func TestResetKeepsListsButClearsContents(t *testing.T) {
	g := NewNamed("g", 0)
	l := g.AddNewList("vals", wire.DataLong, 4)
	l.AppendLong(1)
	l.AppendLong(2)

	g.Reset()
	require.Equal(t, 1, g.N())
	require.Equal(t, 0, g.List(0).N())
}
