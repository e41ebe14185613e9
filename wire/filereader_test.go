package wire

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileReaderScalarRoundTrip(t *testing.T) {
	buf := NewBuffer()
	buf.RecordChar(1, 7)
	buf.RecordShort(2, -5)
	buf.RecordLong(3, 123456)
	buf.RecordFloat(4, 1.5)
	hello := "hello"
	buf.RecordString(5, &hello)
	buf.RecordLongArray(6, []int32{9, 8, 7})

	r := NewFileReader(bufio.NewReader(bytes.NewReader(buf.Bytes)))

	tag, err := r.ReadTag()
	require.NoError(t, err)
	assert.Equal(t, Tag(1), tag)
	c, err := r.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, int8(7), c)

	tag, err = r.ReadTag()
	require.NoError(t, err)
	assert.Equal(t, Tag(2), tag)
	s, err := r.ReadShort()
	require.NoError(t, err)
	assert.Equal(t, int16(-5), s)

	tag, err = r.ReadTag()
	require.NoError(t, err)
	assert.Equal(t, Tag(3), tag)
	l, err := r.ReadLong()
	require.NoError(t, err)
	assert.Equal(t, int32(123456), l)

	tag, err = r.ReadTag()
	require.NoError(t, err)
	assert.Equal(t, Tag(4), tag)
	f, err := r.ReadFloat()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)

	tag, err = r.ReadTag()
	require.NoError(t, err)
	assert.Equal(t, Tag(5), tag)
	str, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "hello", str)

	tag, err = r.ReadTag()
	require.NoError(t, err)
	assert.Equal(t, Tag(6), tag)
	n, err := r.ReadCount()
	require.NoError(t, err)
	arr, err := r.ReadLongArray(n)
	require.NoError(t, err)
	assert.Equal(t, []int32{9, 8, 7}, arr)

	_, err = r.ReadTag()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFileReaderMidPayloadShortReadIsNotEOF(t *testing.T) {
	buf := NewBuffer()
	buf.RecordLong(1, 42)

	// Truncate so the tag byte is present but its payload is cut short.
	truncated := buf.Bytes[:len(buf.Bytes)-2]
	r := NewFileReader(bufio.NewReader(bytes.NewReader(truncated)))

	_, err := r.ReadTag()
	require.NoError(t, err)

	_, err = r.ReadLong()
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}
