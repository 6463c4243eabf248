// Package pipeline runs the discover → assemble → render pipeline.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Discover: find header and source files under the input folder
//  2. Assemble: extract includes and build the graph description
//  3. Render: lay the graph out with Graphviz and encode the artifact
//
// Rendered artifacts are cached by DOT source and format, so re-running on
// an unchanged tree skips layout.
//
// # Usage
//
//	cfg, _, err := config.Discover(input)
//	opts := pipeline.FromConfig(input, cfg)
//	runner := pipeline.NewRunner(cache.NewNullCache(), logger)
//	opts.Output = "out/deps"
//	result, err := runner.Run(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Paths)
package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/incgraph/pkg/config"
	"github.com/matzehuels/incgraph/pkg/errors"
	"github.com/matzehuels/incgraph/pkg/graph"
	"github.com/matzehuels/incgraph/pkg/include"
	"github.com/matzehuels/incgraph/pkg/render"
	"github.com/matzehuels/incgraph/pkg/source"
)

// Options configures one pipeline run.
type Options struct {
	Input      string            // folder to scan
	Output     string            // output base path; empty skips writing
	Format     string            // output format, see render.Formats
	Categories source.Categories // file classification and styles
	Markers    include.Markers   // comment and include markers
	Exclude    []string          // directory names to prune
	Gitignore  bool              // honor <Input>/.gitignore

	Cluster       bool // one cluster per directory
	LabelClusters bool // label clusters with their directory
	Strict        bool // merge duplicate edges

	Refresh bool // ignore cached artifacts (they are still written)
}

// FromConfig builds options for input from a loaded configuration.
func FromConfig(input string, cfg config.Config) Options {
	return Options{
		Input:         input,
		Format:        cfg.Render.Format,
		Categories:    cfg.Categories(),
		Markers:       cfg.Markers(),
		Exclude:       cfg.Exclude,
		Gitignore:     cfg.Gitignore,
		Cluster:       cfg.Render.Cluster,
		LabelClusters: cfg.Render.ClusterLabels,
		Strict:        cfg.Render.Strict,
	}
}

// Validate checks options without touching the filesystem.
func (o *Options) Validate() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input folder is required")
	}
	if err := render.ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := o.Categories.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "categories")
	}
	if o.Markers.Include == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "include marker must not be empty")
	}
	return nil
}

// AssemblerOptions returns the graph assembly subset of o.
func (o *Options) AssemblerOptions() graph.Options {
	return graph.Options{Cluster: o.Cluster, LabelClusters: o.LabelClusters, Strict: o.Strict}
}

// Result holds the output of a pipeline run.
type Result struct {
	Graph    *graph.Graph
	DOT      string // Graphviz source
	Format   string
	Artifact []byte // rendered output in Format
	Stats    Stats
	CacheHit bool     // Artifact came from the cache
	Paths    []string // files written, artifact first
}

// Stats records sizes and stage durations.
type Stats struct {
	FileCount    int
	NodeCount    int
	EdgeCount    int
	ClusterCount int
	DiscoverTime time.Duration
	AssembleTime time.Duration
	RenderTime   time.Duration
}

// SourcePath returns where Write stores the DOT source for base.
func SourcePath(base string) string { return base }

// ArtifactPath returns where Write stores the artifact for base.
func ArtifactPath(base, format string) string { return base + "." + format }

// Write stores the DOT source at base and the artifact at base.<format>,
// creating parent directories as needed. The source file is left in place
// after rendering. It returns the written paths, artifact first.
func (r *Result) Write(base string) ([]string, error) {
	if dir := filepath.Dir(base); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}

	src := SourcePath(base)
	if err := os.WriteFile(src, []byte(r.DOT), 0644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", src)
	}

	out := ArtifactPath(base, r.Format)
	if err := os.WriteFile(out, r.Artifact, 0644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", out)
	}
	return []string{out, src}, nil
}
