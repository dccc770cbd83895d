// SPDX-License-Identifier: MIT

package glyphs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Template sources a Manifest may name.
const (
	SourceDir  = "dir"
	SourceFont = "font"
)

// DefaultAlphabet is the alphabet of the bundled uppercase template sets.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Manifest describes where a catalog's templates come from.
//
//	alphabet: ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	source: dir      # dir | font
//	dir: data        # relative to the manifest file
//	ext: .bmp
//	height: 26       # font source only; 0 = native
type Manifest struct {
	Alphabet string `yaml:"alphabet"`
	Source   string `yaml:"source"`
	Dir      string `yaml:"dir"`
	Ext      string `yaml:"ext"`
	Height   int    `yaml:"height"`

	base string // directory relative paths resolve against
}

// ParseManifest decodes YAML manifest data and applies defaults
// (alphabet DefaultAlphabet, source "dir", dir ".").
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadManifest, err)
	}
	if m.Alphabet == "" {
		m.Alphabet = DefaultAlphabet
	}
	if m.Source == "" {
		m.Source = SourceDir
	}
	if m.Dir == "" {
		m.Dir = "."
	}
	if m.Height < 0 {
		return nil, fmt.Errorf("%w: negative height %d", ErrBadManifest, m.Height)
	}
	if m.Source != SourceDir && m.Source != SourceFont {
		return nil, fmt.Errorf("%w: unknown source %q", ErrBadManifest, m.Source)
	}

	return &m, nil
}

// LoadManifest reads and parses the manifest at path. A relative Dir is
// resolved against the manifest's own directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.base = filepath.Dir(path)

	return m, nil
}

// Resolver returns the Resolver the manifest describes.
func (m *Manifest) Resolver() Resolver {
	if m.Source == SourceFont {
		return FontResolver{Height: m.Height}
	}
	dir := m.Dir
	if !filepath.IsAbs(dir) && m.base != "" {
		dir = filepath.Join(m.base, dir)
	}

	return DirResolver{Dir: dir, Ext: m.Ext}
}

// Catalog loads the manifest's alphabet through its resolver.
func (m *Manifest) Catalog() (*Catalog, error) {
	return Load([]rune(m.Alphabet), m.Resolver())
}
