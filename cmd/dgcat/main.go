// Command dgcat inspects and recompresses DF/DG containers (§6.8).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/SheinbergLab/dgcodec"
	"github.com/SheinbergLab/dgcodec/ascii"
	"github.com/SheinbergLab/dgcodec/compress"
	"github.com/SheinbergLab/dgcodec/df"
	"github.com/SheinbergLab/dgcodec/dg"
	"github.com/SheinbergLab/dgcodec/dgerr"
	"github.com/SheinbergLab/dgcodec/internal/cliutil"
	"github.com/SheinbergLab/dgcodec/wire"
)

func main() {
	log := cliutil.New(cliutil.LevelInfo)

	app := &cli.App{
		Name:  "dgcat",
		Usage: "inspect and recompress DF/DG containers",
		Commands: []*cli.Command{
			dumpCommand(log),
			recompressCommand(log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func dumpCommand(log *cliutil.Logger) *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "write a container's ASCII dump to stdout",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("dgcat dump requires exactly one file argument", 1)
			}
			path := c.Args().Get(0)

			// "-" streams an already-raw tag stream off stdin through
			// wire.FileReader instead of buffering it first: there is
			// nothing to seek back over to sniff compression, so stdin
			// is expected to already be the uncompressed container.
			if path == "-" {
				return dumpStream(os.Stdin)
			}

			raw, err := dgcodec.LoadRaw(path)
			if err != nil {
				return err
			}
			kind, ok := dgcodec.SniffKind(raw)
			if !ok {
				return fmt.Errorf("%s: unrecognized magic", path)
			}

			r := wire.NewSliceReader(raw)
			switch kind {
			case dgcodec.KindDG:
				return ascii.Dump(os.Stdout, r, dg.MagicDG, dg.Version, wire.TagBeginDG, "dyngroup", wire.CtxDynGroup, dg.Tables())
			default:
				return ascii.Dump(os.Stdout, r, df.MagicDF, df.Version, wire.TagBeginDF, "data_file", wire.CtxDF, df.Tables())
			}
		},
	}
}

func dumpStream(src io.Reader) error {
	br := bufio.NewReader(src)
	head, err := br.Peek(4)
	if err != nil {
		return errors.Wrap(dgerr.ErrIO, err.Error())
	}

	r := wire.NewFileReader(br)
	switch {
	case [4]byte(head) == dg.MagicDG:
		return ascii.Dump(os.Stdout, r, dg.MagicDG, dg.Version, wire.TagBeginDG, "dyngroup", wire.CtxDynGroup, dg.Tables())
	case [4]byte(head) == df.MagicDF:
		return ascii.Dump(os.Stdout, r, df.MagicDF, df.Version, wire.TagBeginDF, "data_file", wire.CtxDF, df.Tables())
	default:
		return fmt.Errorf("stdin: unrecognized magic")
	}
}

func recompressCommand(log *cliutil.Logger) *cli.Command {
	return &cli.Command{
		Name:      "recompress",
		Usage:     "convert a container between raw/gzip/lz4, chosen by the output's suffix",
		ArgsUsage: "<in> <out>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return cli.Exit("dgcat recompress requires <in> <out>", 1)
			}
			in := c.Args().Get(0)
			out := c.Args().Get(1)

			raw, err := dgcodec.LoadRaw(in)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			switch strings.ToLower(filepath.Ext(out)) {
			case ".lz4":
				log.Infof("writing %s as LZ4-frame (%d bytes raw)", out, len(raw))
				return compress.WriteLZ4(f, raw)
			case ".dgz":
				log.Infof("writing %s as gzip (%d bytes raw)", out, len(raw))
				return compress.WriteGzip(f, raw)
			default:
				log.Infof("writing %s uncompressed (%d bytes)", out, len(raw))
				_, err := f.Write(raw)
				return err
			}
		},
	}
}

