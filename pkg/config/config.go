// Package config loads incgraph settings from an optional TOML file.
//
// A config file looks like:
//
//	exclude = ["Test", "third_party"]
//	gitignore = true
//
//	[headers]
//	extensions = [".h", ".hh", ".hpp"]
//	color = "black"
//	style = "solid"
//
//	[sources]
//	extensions = [".c", ".cc", ".cpp"]
//	color = "goldenrod"
//	style = "dashed"
//
//	[render]
//	format = "svg"
//	cluster = true
//	cluster_labels = false
//	strict = false
//
// Omitted keys keep their defaults: headers .h/.hpp drawn black and solid,
// sources .c/.cc/.cpp drawn goldenrod and dashed, Test directories skipped,
// SVG output without clusters.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/incgraph/pkg/errors"
	"github.com/matzehuels/incgraph/pkg/include"
	"github.com/matzehuels/incgraph/pkg/render"
	"github.com/matzehuels/incgraph/pkg/source"
)

// FileName is the config file looked up in the input folder.
const FileName = ".incgraph.toml"

// Config holds every tunable of a run.
type Config struct {
	Exclude   []string      `toml:"exclude"`
	Gitignore bool          `toml:"gitignore"`
	Headers   CategoryTable `toml:"headers"`
	Sources   CategoryTable `toml:"sources"`
	Render    RenderTable   `toml:"render"`
}

// CategoryTable configures one file category.
type CategoryTable struct {
	Extensions []string `toml:"extensions"`
	Color      string   `toml:"color"`
	Style      string   `toml:"style"`
}

// RenderTable configures the output.
type RenderTable struct {
	Format        string `toml:"format"`
	Cluster       bool   `toml:"cluster"`
	ClusterLabels bool   `toml:"cluster_labels"`
	Strict        bool   `toml:"strict"`
}

// Default returns the built-in configuration.
func Default() Config {
	cats := source.DefaultCategories()
	return Config{
		Exclude: []string{"Test"},
		Headers: fromCategory(cats[0]),
		Sources: fromCategory(cats[1]),
		Render:  RenderTable{Format: render.FormatSVG},
	}
}

// Load reads path on top of the defaults. An explicitly requested file
// must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, cfg.Validate()
}

// Discover loads dir/.incgraph.toml when it exists, and the defaults
// otherwise. The returned path is empty when no file was found.
func Discover(dir string) (Config, string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Validate checks categories and the output format.
func (c Config) Validate() error {
	if err := c.Categories().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "categories")
	}
	if err := render.ValidateFormat(c.Render.Format); err != nil {
		return err
	}
	if slices.Contains(c.Exclude, "") {
		return errors.New(errors.ErrCodeInvalidConfig, "exclude contains an empty directory name")
	}
	return nil
}

// Categories returns the header and source categories.
func (c Config) Categories() source.Categories {
	return source.Categories{
		c.Headers.category(source.Header),
		c.Sources.category(source.Source),
	}
}

// Markers returns the comment and include markers for C and C++.
func (c Config) Markers() include.Markers { return include.DefaultMarkers() }

func (t CategoryTable) category(name string) source.Category {
	return source.Category{
		Name:       name,
		Extensions: slices.Clone(t.Extensions),
		Color:      t.Color,
		Style:      t.Style,
	}
}

func fromCategory(c source.Category) CategoryTable {
	return CategoryTable{Extensions: slices.Clone(c.Extensions), Color: c.Color, Style: c.Style}
}
