package dgcodec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SheinbergLab/dgcodec/dg"
	"github.com/SheinbergLab/dgcodec/dyngroup"
	"github.com/SheinbergLab/dgcodec/wire"
)

func TestOpenRawDG(t *testing.T) {
	g := dyngroup.NewNamed("g", 0)
	g.AddNewList("vals", wire.DataLong, 4)

	raw := dg.Encode(g)

	dir := t.TempDir()
	path := filepath.Join(dir, "session.dg")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	c, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, KindDG, c.Kind)
	require.Equal(t, "g", c.DG.Name)
}

func TestOpenBareStemFallsBackToDgSuffix(t *testing.T) {
	g := dyngroup.NewNamed("g", 0)
	raw := dg.Encode(g)

	dir := t.TempDir()
	stem := filepath.Join(dir, "session")
	require.NoError(t, os.WriteFile(stem+".dg", raw, 0o644))

	c, err := Open(stem)
	require.NoError(t, err)
	require.Equal(t, KindDG, c.Kind)
}

func TestOpenMissingFileFails(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}
