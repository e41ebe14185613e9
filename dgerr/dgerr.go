// Package dgerr defines the error taxonomy shared by every dgcodec
// reader and writer. Errors are sentinel values so callers can match
// with errors.Is even after a site has wrapped one with call-site
// context via github.com/pkg/errors.
package dgerr

import "errors"

var (
	// ErrBadMagic is returned when a stream does not open with the
	// expected 4-byte family magic.
	ErrBadMagic = errors.New("dgcodec: bad magic")

	// ErrBadVersion is returned when the version float matches
	// neither the native nor the flipped encoding of the expected
	// constant.
	ErrBadVersion = errors.New("dgcodec: bad version")

	// ErrUnknownTag is returned when a tag byte has no entry in the
	// current context's tag table.
	ErrUnknownTag = errors.New("dgcodec: unknown tag")

	// ErrUnexpectedTag is returned when a LIST_ARRAY expander finds a
	// child slot not introduced by SUBLIST.
	ErrUnexpectedTag = errors.New("dgcodec: unexpected tag")

	// ErrTooManyChildren is returned when a DF entity's declared
	// count is exceeded by actual child structures.
	ErrTooManyChildren = errors.New("dgcodec: too many children")

	// ErrInvalidFixedArray is returned when a fixed-size coordinate
	// or window tag carries a different element count.
	ErrInvalidFixedArray = errors.New("dgcodec: invalid fixed array size")

	// ErrShortRead is returned when the underlying source runs out of
	// bytes mid-payload.
	ErrShortRead = errors.New("dgcodec: short read")

	// ErrIO wraps an underlying I/O failure from the source or sink.
	ErrIO = errors.New("dgcodec: io error")

	// ErrOutOfMemory is returned when a buffer or vector growth
	// allocation fails.
	ErrOutOfMemory = errors.New("dgcodec: out of memory")

	// ErrDecompress is returned when a gzip or LZ4 envelope fails to
	// decode, including a missing LZ4 contentSize.
	ErrDecompress = errors.New("dgcodec: decompress error")

	// ErrWrite is returned when the output sink rejects written
	// bytes.
	ErrWrite = errors.New("dgcodec: write error")

	// ErrAborted is returned when a decode is abandoned deliberately
	// (not a fatal condition).
	ErrAborted = errors.New("dgcodec: aborted")
)
