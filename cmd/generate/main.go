// SPDX-License-Identifier: MIT

// generate renders text strips as BMP images for recognize.
//
// Usage:
//
//	generate [options] [text ...]
//
// Options:
//
//	-o string     output file, or directory when several strips are written
//	-a            also render every letter A..Z on its own
//	-height int   strip height in pixels; 0 keeps the font's native height
//	-noise int    noise level 0..10
//	-seed uint    noise seed; 0 derives one from the clock
//	-v            debug logging
//
// A single strip is written to -o (default "image.bmp"), or to
// <dir>/image.bmp when -o names an existing directory. Several strips are
// written to the directory -o (default ".") as <text>.bmp.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ArthurGoodman/text-recognizer/glyphs"
	"github.com/ArthurGoodman/text-recognizer/raster"
	"github.com/ArthurGoodman/text-recognizer/synth"
)

const defaultFile = "image.bmp"

var errUsage = errors.New("usage: generate [options] [text ...]")

type config struct {
	out     string
	all     bool
	height  int
	noise   int
	seed    uint64
	verbose bool
	texts   []string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var c config
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.out, "o", "", "output file, or directory when several strips are written")
	fs.BoolVar(&c.all, "a", false, "also render every letter A..Z on its own")
	fs.IntVar(&c.height, "height", 0, "strip height in pixels; 0 keeps the font's native height")
	fs.IntVar(&c.noise, "noise", 0, "noise level 0..10")
	fs.Uint64Var(&c.seed, "seed", 0, "noise seed; 0 derives one from the clock")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	c.texts = fs.Args()
	if c.all {
		for _, r := range glyphs.DefaultAlphabet {
			c.texts = append(c.texts, string(r))
		}
	}
	if len(c.texts) == 0 {
		fs.PrintDefaults()
		return nil, errUsage
	}
	if c.height < 0 {
		return nil, fmt.Errorf("%w: %d", synth.ErrBadHeight, c.height)
	}
	if c.noise < 0 || c.noise > synth.MaxNoise {
		return nil, fmt.Errorf("%w: %d", synth.ErrBadNoise, c.noise)
	}
	if c.seed == 0 {
		c.seed = uint64(time.Now().UnixNano())
	}

	return &c, nil
}

// targets maps every text to its output path.
func (c *config) targets() (map[string]string, error) {
	out := make(map[string]string, len(c.texts))
	if len(c.texts) == 1 {
		path := c.out
		if path == "" {
			path = defaultFile
		} else if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			path = filepath.Join(path, defaultFile)
		}
		out[c.texts[0]] = path
		return out, nil
	}

	dir := c.out
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	for _, text := range c.texts {
		out[text] = filepath.Join(dir, text+".bmp")
	}

	return out, nil
}

func (c *config) options() []synth.Option {
	opts := []synth.Option{synth.WithNoise(c.noise), synth.WithSeed(c.seed)}
	if c.height > 0 {
		opts = append(opts, synth.WithHeight(c.height))
	}

	return opts
}

func run(args []string, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	targets, err := c.targets()
	if err != nil {
		return err
	}
	opts := c.options()
	for _, text := range c.texts {
		g, err := synth.Render(text, opts...)
		if err != nil {
			return fmt.Errorf("render %q: %w", text, err)
		}
		path := targets[text]
		if err := raster.SaveBMP(path, g); err != nil {
			return err
		}
		log.Debug("strip written", "text", text, "path", path, "width", g.Width(), "height", g.Height())
	}
	log.Info("done", "strips", len(c.texts), "noise", c.noise, "seed", c.seed)

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("generate failed", "error", err)
		os.Exit(1)
	}
}
