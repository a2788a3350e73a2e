// Package content reads journey definitions from TOML or YAML files.
//
// The three bundled journeys are embedded and used when no file is given.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"solitaire/pkg/game/catalog"
)

//go:embed journeys.toml
var defaultJourneys []byte

// Format is the encoding of a content file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// CardFile is one card as written in a content file.
type CardFile struct {
	ID          int    `toml:"id" yaml:"id"`
	Title       string `toml:"title" yaml:"title"`
	Description string `toml:"description" yaml:"description"`
	Icon        string `toml:"icon" yaml:"icon"`
	Hint        string `toml:"hint" yaml:"hint"`
}

// JourneyFile is one journey as written in a content file.
type JourneyFile struct {
	Key         string     `toml:"key" yaml:"key"`
	Title       string     `toml:"title" yaml:"title"`
	Description string     `toml:"description" yaml:"description"`
	Sequence    []int      `toml:"sequence" yaml:"sequence"`
	Cards       []CardFile `toml:"card" yaml:"cards"`
}

// File is the top-level document.
type File struct {
	Version  int           `toml:"version" yaml:"version"`
	Journeys []JourneyFile `toml:"journey" yaml:"journeys"`
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported content file %q: want .toml, .yaml or .yml", path)
	}
}

// Decode parses a content document.
func Decode(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
			return File{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return File{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return File{}, fmt.Errorf("unknown content format %d", format)
	}
	return f, nil
}

// Puzzles converts the decoded journeys into catalog puzzles.
func (f File) Puzzles() []catalog.Puzzle {
	out := make([]catalog.Puzzle, 0, len(f.Journeys))
	for _, j := range f.Journeys {
		p := catalog.Puzzle{
			Key:         j.Key,
			Title:       j.Title,
			Description: j.Description,
			Items:       make([]catalog.Item, 0, len(j.Cards)),
			TargetOrder: make([]catalog.ItemID, 0, len(j.Sequence)),
		}
		for _, c := range j.Cards {
			p.Items = append(p.Items, catalog.Item{
				ID:          catalog.ItemID(c.ID),
				Label:       c.Title,
				Description: c.Description,
				Icon:        c.Icon,
				Hint:        c.Hint,
			})
		}
		for _, id := range j.Sequence {
			p.TargetOrder = append(p.TargetOrder, catalog.ItemID(id))
		}
		out = append(out, p)
	}
	return out
}

// Parse decodes data and builds a catalog from it.
func Parse(data []byte, format Format) (*catalog.Catalog, error) {
	f, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return catalog.New(f.Puzzles()...)
}

// Load reads a content file. An empty path loads the bundled journeys.
func Load(path string) (*catalog.Catalog, error) {
	if path == "" {
		return Default()
	}
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Default returns the bundled journeys.
func Default() (*catalog.Catalog, error) {
	return Parse(defaultJourneys, FormatTOML)
}
