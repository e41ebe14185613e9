// Package compress adapts the gzip and LZ4-frame codecs the rest of
// dgcodec's sessions read/write containers through (§4.L), wiring in
// the domain stack's compression libraries rather than stdlib
// compress/gzip.
package compress

import (
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/SheinbergLab/dgcodec/dgerr"
)

// WriteGzip pipes src through deflate directly to dst, per §4.L's "on
// write, pipe the recorded buffer through deflate directly to the
// output path".
func WriteGzip(dst io.Writer, src []byte) error {
	zw := gzip.NewWriter(dst)
	if _, err := zw.Write(src); err != nil {
		return errors.Wrap(dgerr.ErrWrite, err.Error())
	}
	return errors.Wrap(zw.Close(), "gzip: close")
}

// DecompressGzipToTemp decompresses r's gzip stream into a freshly
// created temporary file and returns it positioned at offset 0 for a
// binary reader to reopen, per §4.L's "decompress into a temporary
// file, then reopen for binary read". The caller owns the returned
// file and is responsible for closing and removing it.
func DecompressGzipToTemp(r io.Reader, pattern string) (*os.File, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(dgerr.ErrDecompress, err.Error())
	}
	defer zr.Close()

	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, errors.Wrap(dgerr.ErrIO, err.Error())
	}

	if _, err := io.Copy(tmp, zr); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, errors.Wrap(dgerr.ErrDecompress, err.Error())
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, errors.Wrap(dgerr.ErrIO, err.Error())
	}
	return tmp, nil
}

// LooksLikeGzip reports whether the first two bytes of data match the
// gzip magic (0x1f 0x8b), used by the dispatcher to decide whether an
// unrecognized-suffix file is worth attempting as gzip before giving
// up (§4.L "anything else is tried as gzip").
func LooksLikeGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}
