// SPDX-License-Identifier: MIT

// recognize reads a single line of glyphs from a BMP strip.
//
// The catalog is either described by a YAML manifest or given directly as a
// template directory plus alphabet:
//
//	alphabet: ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	source: dir
//	dir: data
//
// Usage:
//
//	recognize [options] <image.bmp>
//
// Options:
//
//	-manifest string  YAML catalog manifest (overrides -data, -alphabet and -font)
//	-data string      template directory, one <symbol>.bmp per symbol (default "data")
//	-alphabet string  symbols to load (default "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
//	-font             render templates from the built-in bitmap font instead of -data
//	-height int       template height for -font; 0 keeps the native height
//	-top int          print the readings ending at the last k columns
//	-workers int      cost matrix workers (default GOMAXPROCS)
//	-rolling          keep only the lattice rows the recurrence needs
//	-v                debug logging
//
// Example:
//
//	generate -o image.bmp HELLO WORLD
//	recognize -font image.bmp
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/ArthurGoodman/text-recognizer/decoder"
	"github.com/ArthurGoodman/text-recognizer/glyphs"
	"github.com/ArthurGoodman/text-recognizer/raster"
	"github.com/ArthurGoodman/text-recognizer/semiring"
)

var errUsage = errors.New("usage: recognize [options] <image.bmp>")

type config struct {
	manifest string
	data     string
	alphabet string
	font     bool
	height   int
	top      int
	workers  int
	rolling  bool
	verbose  bool
	image    string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var c config
	fs := flag.NewFlagSet("recognize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.manifest, "manifest", "", "YAML catalog manifest (overrides -data, -alphabet and -font)")
	fs.StringVar(&c.data, "data", "data", "template directory, one <symbol>.bmp per symbol")
	fs.StringVar(&c.alphabet, "alphabet", glyphs.DefaultAlphabet, "symbols to load")
	fs.BoolVar(&c.font, "font", false, "render templates from the built-in bitmap font instead of -data")
	fs.IntVar(&c.height, "height", 0, "template height for -font; 0 keeps the native height")
	fs.IntVar(&c.top, "top", 0, "print the readings ending at the last k columns")
	fs.IntVar(&c.workers, "workers", runtime.GOMAXPROCS(0), "cost matrix workers")
	fs.BoolVar(&c.rolling, "rolling", false, "keep only the lattice rows the recurrence needs")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.PrintDefaults()
		return nil, errUsage
	}
	if c.workers < 1 {
		return nil, fmt.Errorf("-workers must be >= 1, got %d", c.workers)
	}
	if c.height < 0 {
		return nil, fmt.Errorf("-height must be >= 0, got %d", c.height)
	}
	c.image = fs.Arg(0)

	return &c, nil
}

// catalog loads the templates the flags describe.
func (c *config) catalog() (*glyphs.Catalog, error) {
	if c.manifest != "" {
		m, err := glyphs.LoadManifest(c.manifest)
		if err != nil {
			return nil, err
		}
		return m.Catalog()
	}

	var r glyphs.Resolver = glyphs.DirResolver{Dir: c.data}
	if c.font {
		r = glyphs.FontResolver{Height: c.height}
	}

	return glyphs.Load([]rune(c.alphabet), r)
}

func run(args []string, stdout, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cat, err := c.catalog()
	if err != nil {
		return err
	}
	log.Debug("catalog loaded", "symbols", cat.Symbols(), "height", cat.Height(), "max_width", cat.MaxWidth())

	strip, err := raster.LoadBMP(c.image)
	if err != nil {
		return err
	}
	log.Debug("strip loaded", "path", c.image, "width", strip.Width(), "height", strip.Height())

	opts := []decoder.Option{decoder.WithLogger(log), decoder.WithWorkers(c.workers)}
	if c.rolling {
		opts = append(opts, decoder.WithMemoryMode(decoder.RollingRows))
	}
	dec, err := decoder.New(cat, semiring.Uint64, opts...)
	if err != nil {
		return err
	}

	if c.top > 0 {
		readings, err := dec.DecodeTopK(strip, c.top)
		if err != nil {
			return err
		}
		for _, r := range readings {
			fmt.Fprintf(stdout, "%d\t%d\t%q\n", r.End, r.Cost, r.Text)
		}
		return nil
	}

	r, err := dec.Decode(strip)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%q\n", r.Text)

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("recognize failed", "error", err)
		os.Exit(1)
	}
}
