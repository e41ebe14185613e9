package wire

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlip16RoundTrip(t *testing.T) {
	require.Equal(t, uint16(0x1234), Flip16(Flip16(0x1234)))
	require.Equal(t, uint16(0x3412), Flip16(0x1234))
}

func TestFlip32RoundTrip(t *testing.T) {
	require.Equal(t, uint32(0x12345678), Flip32(Flip32(0x12345678)))
	require.Equal(t, uint32(0x78563412), Flip32(0x12345678))
}

func TestNegotiateVersionAcceptsFlippedOrientation(t *testing.T) {
	buf := NewBuffer()
	buf.RecordVersion(1.0)
	// buf.Bytes[0] is the VERSION tag; the 4 payload bytes follow.
	payload := append([]byte(nil), buf.Bytes[1:5]...)
	flipped := Flip32(decodeU32(payload, false))
	binary.NativeEndian.PutUint32(payload, flipped)

	r := &SliceReader{data: payload}
	err := r.NegotiateVersion(1.0)
	require.NoError(t, err)
	require.True(t, r.Flip())
}

func TestNegotiateVersionRejectsGarbage(t *testing.T) {
	r := &SliceReader{data: []byte{0xDE, 0xAD, 0xBE, 0xEF}}
	err := r.NegotiateVersion(1.0)
	require.Error(t, err)
}
