package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferScalarRoundTrip(t *testing.T) {
	buf := NewBuffer()
	buf.RecordChar(0x10, -5)
	buf.RecordShort(0x11, -1234)
	buf.RecordLong(0x12, -123456789)
	buf.RecordFloat(0x13, 3.5)
	s := "hello"
	buf.RecordString(0x14, &s)
	buf.RecordLongArray(0x15, []int32{1, 2, 3})

	r := NewSliceReader(buf.Bytes)

	tag, err := r.ReadTag()
	require.NoError(t, err)
	require.EqualValues(t, 0x10, tag)
	c, err := r.ReadChar()
	require.NoError(t, err)
	require.EqualValues(t, -5, c)

	tag, _ = r.ReadTag()
	require.EqualValues(t, 0x11, tag)
	sh, err := r.ReadShort()
	require.NoError(t, err)
	require.EqualValues(t, -1234, sh)

	tag, _ = r.ReadTag()
	require.EqualValues(t, 0x12, tag)
	lg, err := r.ReadLong()
	require.NoError(t, err)
	require.EqualValues(t, -123456789, lg)

	tag, _ = r.ReadTag()
	require.EqualValues(t, 0x13, tag)
	f, err := r.ReadFloat()
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f)

	tag, _ = r.ReadTag()
	require.EqualValues(t, 0x14, tag)
	str, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "hello", str)

	tag, _ = r.ReadTag()
	require.EqualValues(t, 0x15, tag)
	n, err := r.ReadCount()
	require.NoError(t, err)
	vals, err := r.ReadLongArray(n)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2, 3}, vals)

	require.Equal(t, 0, r.Remaining())
}

func TestRecordStringNilSkipsEntirely(t *testing.T) {
	buf := NewBuffer()
	buf.RecordString(0x20, nil)
	require.Empty(t, buf.Bytes)
}

func TestRecordStringEmptyStillWritesNulOnlyPayload(t *testing.T) {
	buf := NewBuffer()
	empty := ""
	buf.RecordString(0x20, &empty)

	r := NewSliceReader(buf.Bytes)
	tag, err := r.ReadTag()
	require.NoError(t, err)
	require.EqualValues(t, 0x20, tag)
	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestBufferGrowthBeyondIncrement(t *testing.T) {
	buf := &Buffer{increment: 4}
	vals := make([]int32, 1000)
	for i := range vals {
		vals[i] = int32(i)
	}
	buf.RecordLongArray(0x01, vals)

	r := NewSliceReader(buf.Bytes)
	_, _ = r.ReadTag()
	n, err := r.ReadCount()
	require.NoError(t, err)
	got, err := r.ReadLongArray(n)
	require.NoError(t, err)
	require.Equal(t, vals, got)
}
