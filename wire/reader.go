package wire

import (
	"github.com/pkg/errors"

	"github.com/SheinbergLab/dgcodec/dgerr"
)

// TagReader is the contract both stream readers (§4.E file-backed,
// §4.F slice-backed) satisfy. A dispatcher (the DF walker, the DG
// codec, or the ASCII dumper) drives one of these without knowing
// which concrete source it wraps.
type TagReader interface {
	// ReadMagic reads and compares the 4-byte family magic. The magic
	// itself is never flipped (§3.3).
	ReadMagic(want [4]byte) error

	// ReadTag reads the next tag byte. io.EOF signals a clean end of
	// stream.
	ReadTag() (Tag, error)

	// NegotiateVersion reads the VERSION payload and compares it
	// against want, flipping once on mismatch; sets the reader's flip
	// flag on success. Returns dgerr.ErrBadVersion if neither
	// orientation matches.
	NegotiateVersion(want float32) error

	ReadChar() (int8, error)
	ReadShort() (int16, error)
	ReadLong() (int32, error)
	ReadFloat() (float32, error)
	ReadString() (string, error)
	ReadCount() (uint32, error)

	ReadLongArray(n uint32) ([]int32, error)
	ReadShortArray(n uint32) ([]int16, error)
	ReadFloatArray(n uint32) ([]float32, error)
	ReadCharArray(n uint32) ([]int8, error)
	ReadStringArray(n uint32) ([]string, error)

	// Flip reports whether the byte-order flip flag is currently set
	// for this session.
	Flip() bool
}

// negotiateVersion implements the shared VERSION-tag comparison logic
// of §3.3 against a raw 4-byte payload already read from the source.
func negotiateVersion(payload []byte, want float32) (flip bool, err error) {
	raw := decodeU32(payload, false)
	if raw == EncodeFloat32Bits(want) {
		return false, nil
	}
	flipped := decodeU32(payload, true)
	if flipped == EncodeFloat32Bits(want) {
		return true, nil
	}
	return false, errors.Wrapf(dgerr.ErrBadVersion, "version bits %#x match neither orientation of %v", raw, want)
}

// readString decodes a length-prefixed (incl. trailing NUL) string
// from a raw payload reader function that returns exactly n bytes.
func readString(readN func(n uint32) ([]byte, error), flip bool) (string, error) {
	lenBytes, err := readN(4)
	if err != nil {
		return "", err
	}
	n := decodeU32(lenBytes, flip)
	if n == 0 {
		// An empty string still yields a materialized empty string,
		// never a null one (§4.E/F edge-case policy). In practice a
		// writer always counts the trailing NUL, so n==0 should not
		// occur for a present string, but tolerate it defensively
		// since nothing in the invariant forbids it on read.
		return "", nil
	}
	raw, err := readN(n)
	if err != nil {
		return "", err
	}
	// Strip the trailing NUL the length prefix included.
	if len(raw) > 0 && raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-1]
	}
	return string(raw), nil
}
