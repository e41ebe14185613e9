package wire

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/SheinbergLab/dgcodec/dgerr"
)

// FileReader implements TagReader over a sequential byte source
// (§4.E). It never seeks: the format is stream-only by design (§1,
// Non-goals).
type FileReader struct {
	src  io.Reader
	flip bool
	buf  [4]byte
}

// NewFileReader wraps src for sequential tag-stream reading. Callers
// typically pass a *bufio.Reader for anything other than an
// already-buffered in-memory source.
func NewFileReader(src io.Reader) *FileReader {
	return &FileReader{src: src}
}

func (r *FileReader) readN(n uint32) ([]byte, error) {
	var buf []byte
	if n <= 4 {
		buf = r.buf[:n]
	} else {
		buf = make([]byte, n)
	}
	_, err := io.ReadFull(r.src, buf)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errors.Wrap(dgerr.ErrShortRead, err.Error())
		}
		return nil, errors.Wrap(dgerr.ErrIO, err.Error())
	}
	return buf, nil
}

func (r *FileReader) ReadMagic(want [4]byte) error {
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
func (r *FileReader) ReadTag() (Tag, error) {
	var b [1]byte
	_, err := io.ReadFull(r.src, b[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, errors.Wrap(dgerr.ErrIO, err.Error())
	}
	return Tag(b[0]), nil
}

func (r *FileReader) NegotiateVersion(want float32) error {
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

func (r *FileReader) Flip() bool { return r.flip }

func (r *FileReader) ReadChar() (int8, error) {
	b, err := r.readN(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (r *FileReader) ReadShort() (int16, error) {
	b, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	return int16(decodeU16(b, r.flip)), nil
}

func (r *FileReader) ReadLong() (int32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return int32(decodeU32(b, r.flip)), nil
}

func (r *FileReader) ReadFloat() (float32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return decodeFloat32(b, r.flip), nil
}

func (r *FileReader) ReadString() (string, error) {
	return readString(r.readN, r.flip)
}

func (r *FileReader) ReadCount() (uint32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return decodeU32(b, r.flip), nil
}

func (r *FileReader) ReadLongArray(n uint32) ([]int32, error) {
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

func (r *FileReader) ReadShortArray(n uint32) ([]int16, error) {
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

func (r *FileReader) ReadFloatArray(n uint32) ([]float32, error) {
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

func (r *FileReader) ReadCharArray(n uint32) ([]int8, error) {
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

func (r *FileReader) ReadStringArray(n uint32) ([]string, error) {
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
