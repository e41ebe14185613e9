package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"

	"github.com/SheinbergLab/dgcodec/dgerr"
)

// WriteLZ4 frame-compresses src into dst, stamping the frame
// descriptor's content size to len(src) so a decoder can allocate its
// output buffer exactly once (§4.L, §6.5).
func WriteLZ4(dst io.Writer, src []byte) error {
	zw := lz4.NewWriter(dst)
	if err := zw.Apply(lz4.SizeOption(uint64(len(src)))); err != nil {
		return errors.Wrap(dgerr.ErrWrite, err.Error())
	}
	if _, err := zw.Write(src); err != nil {
		return errors.Wrap(dgerr.ErrWrite, err.Error())
	}
	return errors.Wrap(zw.Close(), "lz4: close")
}

// ReadLZ4 decompresses an LZ4-frame stream and returns its payload.
// Per §4.L the decoder requires the frame to declare a content size;
// a frame without one aborts with ErrDecompress rather than being
// silently accepted.
func ReadLZ4(r io.Reader) ([]byte, error) {
	zr := lz4.NewReader(r)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, zr); err != nil {
		return nil, errors.Wrap(dgerr.ErrDecompress, err.Error())
	}

	if zr.Header.Size == 0 {
		return nil, errors.Wrapf(dgerr.ErrDecompress, "lz4 frame is missing contentSize")
	}
	if zr.Header.Size != uint64(buf.Len()) {
		return nil, errors.Wrapf(dgerr.ErrDecompress, "lz4 contentSize %d does not match decompressed length %d", zr.Header.Size, buf.Len())
	}

	return buf.Bytes(), nil
}
