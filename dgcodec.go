// Package dgcodec ties the wire, dg, and df packages together behind
// a single Open entry point implementing the suffix convention of
// §6.7, plus the gzip/LZ4 envelope dispatch of §4.L.
package dgcodec

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/SheinbergLab/dgcodec/compress"
	"github.com/SheinbergLab/dgcodec/df"
	"github.com/SheinbergLab/dgcodec/dg"
	"github.com/SheinbergLab/dgcodec/dgerr"
	"github.com/SheinbergLab/dgcodec/dyngroup"
	"github.com/SheinbergLab/dgcodec/wire"
)

// Kind identifies which of the two container families a decoded
// Container holds.
type Kind int

const (
	KindDF Kind = iota
	KindDG
)

// Container is the result of Open: exactly one of DF/DG is populated,
// selected by Kind.
type Container struct {
	Kind Kind
	DF   *df.DataFile
	DG   *dyngroup.Group
}

// Open resolves path per §6.7's suffix convention, decompresses if
// needed, and decodes the resulting raw container by sniffing its
// magic. A path with no extension is tried as ".dg" then ".dgz".
func Open(path string) (*Container, error) {
	resolved, err := resolveSuffix(path)
	if err != nil {
		return nil, err
	}

	raw, err := loadRaw(resolved)
	if err != nil {
		return nil, err
	}

	return decodeRaw(raw)
}

// LoadRaw resolves and decompresses path exactly as Open does, but
// returns the uncompressed tag-stream bytes instead of a decoded
// Container. cmd/dgcat's dump command uses this to drive the ASCII
// walker directly over the stream.
func LoadRaw(path string) ([]byte, error) {
	resolved, err := resolveSuffix(path)
	if err != nil {
		return nil, err
	}
	return loadRaw(resolved)
}

// SniffKind reports which container family raw's leading magic bytes
// identify.
func SniffKind(raw []byte) (Kind, bool) {
	if len(raw) >= 4 && [4]byte(raw[:4]) == dg.MagicDG {
		return KindDG, true
	}
	if len(raw) >= 4 && [4]byte(raw[:4]) == df.MagicDF {
		return KindDF, true
	}
	return 0, false
}

// resolveSuffix implements §6.7: a bare stem is tried as ".dg" then
// ".dgz" before giving up.
func resolveSuffix(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	for _, ext := range []string{".dg", ".dgz"} {
		candidate := path + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.Wrapf(dgerr.ErrIO, "no such file: %s (tried bare, .dg, .dgz)", path)
}

// loadRaw reads path and, per §4.L, dispatches decompression by
// suffix: case-insensitive .lz4/.LZ4 is LZ4-frame; a suffix containing
// "dg" but not "dgz" is raw; anything else is sniffed as gzip (and
// passed through unchanged if it doesn't look like gzip either, so a
// raw-but-oddly-named file still decodes).
func loadRaw(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(dgerr.ErrIO, err.Error())
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case ext == ".lz4":
		return compress.ReadLZ4(f)

	case strings.Contains(ext, "dg") && ext != ".dgz":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(dgerr.ErrIO, err.Error())
		}
		return data, nil

	default:
		head := make([]byte, 2)
		n, _ := f.Read(head)
		if n == 2 && compress.LooksLikeGzip(head) {
			if _, err := f.Seek(0, 0); err != nil {
				return nil, errors.Wrap(dgerr.ErrIO, err.Error())
			}
			tmp, err := compress.DecompressGzipToTemp(f, "dgcodec-*.dg")
			if err != nil {
				return nil, err
			}
			defer os.Remove(tmp.Name())
			defer tmp.Close()
			return os.ReadFile(tmp.Name())
		}
		return os.ReadFile(path)
	}
}

// decodeRaw sniffs raw's leading magic bytes to choose between the DF
// and DG decoders.
func decodeRaw(raw []byte) (*Container, error) {
	if len(raw) >= 4 && [4]byte(raw[:4]) == dg.MagicDG {
		r := wire.NewSliceReader(raw)
		g, err := dg.Decode(r)
		if err != nil {
			return nil, err
		}
		return &Container{Kind: KindDG, DG: g}, nil
	}
	if len(raw) >= 4 && [4]byte(raw[:4]) == df.MagicDF {
		r := wire.NewSliceReader(raw)
		d, err := df.Decode(r)
		if err != nil {
			return nil, err
		}
		return &Container{Kind: KindDF, DF: d}, nil
	}
	return nil, dgerr.ErrBadMagic
}

// Encode serializes a Container back to its raw (uncompressed) form.
func (c *Container) Encode() []byte {
	if c.Kind == KindDG {
		return dg.Encode(c.DG)
	}
	return df.Encode(c.DF)
}
