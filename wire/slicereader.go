package wire

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/SheinbergLab/dgcodec/dgerr"
)

// SliceReader implements TagReader over an in-memory buffer (§4.F). It
// additionally reports bytes consumed so a caller driving several
// buffers end-to-end can advance its own cursor, or check that a whole
// buffer was read.
type SliceReader struct {
	data []byte
	pos  int
	flip bool
}

// NewSliceReader wraps data for sequential tag-stream reading.
func NewSliceReader(data []byte) *SliceReader {
	return &SliceReader{data: data}
}

// Consumed reports how many bytes have been read so far.
func (r *SliceReader) Consumed() int {
	return r.pos
}

// Remaining reports how many bytes are left unread.
func (r *SliceReader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *SliceReader) readN(n uint32) ([]byte, error) {
	if uint32(r.Remaining()) < n {
		return nil, errors.Wrapf(dgerr.ErrShortRead, "need %d bytes, have %d", n, r.Remaining())
	}
	b := r.data[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return b, nil
}

func (r *SliceReader) ReadMagic(want [4]byte) error {
	b, err := r.readN(4)
	if err != nil {
		return errors.Wrap(dgerr.ErrBadMagic, err.Error())
	}
	if [4]byte(b) != want {
		return dgerr.ErrBadMagic
	}
	return nil
}

// ReadTag reads the next tag byte, returning io.EOF (unwrapped) on a
// clean end of stream so callers can distinguish "done" from a
// mid-payload failure.
func (r *SliceReader) ReadTag() (Tag, error) {
	if r.Remaining() == 0 {
		return 0, io.EOF
	}
	b, err := r.readN(1)
	if err != nil {
		return 0, err
	}
	return Tag(b[0]), nil
}

func (r *SliceReader) NegotiateVersion(want float32) error {
	b, err := r.readN(4)
	if err != nil {
		return err
	}
	flip, err := negotiateVersion(b, want)
	if err != nil {
		return err
	}
	r.flip = flip
	return nil
}

func (r *SliceReader) Flip() bool { return r.flip }

func (r *SliceReader) ReadChar() (int8, error) {
	b, err := r.readN(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (r *SliceReader) ReadShort() (int16, error) {
	b, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	return int16(decodeU16(b, r.flip)), nil
}

func (r *SliceReader) ReadLong() (int32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return int32(decodeU32(b, r.flip)), nil
}

func (r *SliceReader) ReadFloat() (float32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return decodeFloat32(b, r.flip), nil
}

func (r *SliceReader) ReadString() (string, error) {
	return readString(r.readN, r.flip)
}

func (r *SliceReader) ReadCount() (uint32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return decodeU32(b, r.flip), nil
}

func (r *SliceReader) ReadLongArray(n uint32) ([]int32, error) {
	b, err := r.readN(n * 4)
	if err != nil {
		return nil, err
	}
	words := decodeU32Slice(b, n, r.flip)
	out := make([]int32, n)
	for i, v := range words {
		out[i] = int32(v)
	}
	return out, nil
}

func (r *SliceReader) ReadShortArray(n uint32) ([]int16, error) {
	b, err := r.readN(n * 2)
	if err != nil {
		return nil, err
	}
	words := decodeU16Slice(b, n, r.flip)
	out := make([]int16, n)
	for i, v := range words {
		out[i] = int16(v)
	}
	return out, nil
}

func (r *SliceReader) ReadFloatArray(n uint32) ([]float32, error) {
	b, err := r.readN(n * 4)
	if err != nil {
		return nil, err
	}
	words := decodeU32Slice(b, n, r.flip)
	out := make([]float32, n)
	for i, v := range words {
		out[i] = math.Float32frombits(v)
	}
	return out, nil
}

func (r *SliceReader) ReadCharArray(n uint32) ([]int8, error) {
	b, err := r.readN(n)
	if err != nil {
		return nil, err
	}
	out := make([]int8, n)
	for i, v := range b {
		out[i] = int8(v)
	}
	return out, nil
}

func (r *SliceReader) ReadStringArray(n uint32) ([]string, error) {
	out := make([]string, n)
	for i := range out {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
