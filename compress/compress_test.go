package compress

import (
	"bytes"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/SheinbergLab/dgcodec/dgerr"
)

func TestGzipRoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte("dgcodec test payload "), 100)

	var compressed bytes.Buffer
	require.NoError(t, WriteGzip(&compressed, src))

	tmp, err := DecompressGzipToTemp(&compressed, "compress-test-*.dg")
	require.NoError(t, err)
	defer tmp.Close()

	got := make([]byte, len(src))
	n, err := tmp.Read(got)
	require.NoError(t, err)
	require.Equal(t, src, got[:n])
}

func TestLooksLikeGzip(t *testing.T) {
	require.True(t, LooksLikeGzip([]byte{0x1f, 0x8b, 0x08}))
	require.False(t, LooksLikeGzip([]byte{0x20, 0x10, 0x30, 0x60}))
}

func TestLZ4RoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte("dgcodec lz4 payload "), 200)

	var compressed bytes.Buffer
	require.NoError(t, WriteLZ4(&compressed, src))

	got, err := ReadLZ4(&compressed)
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestLZ4MissingContentSizeIsRejected(t *testing.T) {
	src := []byte("no content size declared")

	var compressed bytes.Buffer
	zw := lz4.NewWriter(&compressed)
	// Deliberately omit lz4.SizeOption so the frame descriptor carries
	// no contentSize, per §4.L's "decoder requires contentSize" rule.
	_, err := zw.Write(src)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ReadLZ4(&compressed)
	require.ErrorIs(t, err, dgerr.ErrDecompress)
}
