package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/incgraph/pkg/cache"
	"github.com/matzehuels/incgraph/pkg/errors"
	"github.com/matzehuels/incgraph/pkg/graph"
	"github.com/matzehuels/incgraph/pkg/include"
	"github.com/matzehuels/incgraph/pkg/observability"
	"github.com/matzehuels/incgraph/pkg/render"
	"github.com/matzehuels/incgraph/pkg/render/nodelink"
	"github.com/matzehuels/incgraph/pkg/source"
)

// Runner executes pipeline stages with optional artifact caching.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// discards log output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Cache: c, Logger: logger}
}

// Run executes discover → assemble → render and, when opts.Output is set,
// writes the DOT source and the artifact.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g, stats, err := r.Build(ctx, opts)
	if err != nil {
		return nil, err
	}

	dot := nodelink.ToDOT(g)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	artifact, hit, err := r.Render(ctx, g, dot, opts.Format, opts.Refresh)
	stats.RenderTime = time.Since(start)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Graph:    g,
		DOT:      dot,
		Format:   opts.Format,
		Artifact: artifact,
		Stats:    stats,
		CacheHit: hit,
	}
	if opts.Output != "" {
		paths, err := result.Write(opts.Output)
		if err != nil {
			return nil, err
		}
		result.Paths = paths
	}
	return result, nil
}

// Build discovers files under opts.Input and assembles the include graph.
func (r *Runner) Build(ctx context.Context, opts Options) (*graph.Graph, Stats, error) {
	var stats Stats
	hooks := observability.Pipeline()

	info, err := os.Stat(opts.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, stats, errors.Wrap(errors.ErrCodeDirNotFound, err, "input folder %s", opts.Input)
		}
		return nil, stats, errors.Wrap(errors.ErrCodeInvalidPath, err, "input folder %s", opts.Input)
	}
	if !info.IsDir() {
		return nil, stats, errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", opts.Input)
	}

	hooks.OnDiscoverStart(ctx, opts.Input)
	start := time.Now()
	files, err := source.Discover(opts.Input, opts.Categories, source.Options{
		Exclude:   opts.Exclude,
		Gitignore: opts.Gitignore,
	})
	stats.DiscoverTime = time.Since(start)
	hooks.OnDiscoverComplete(ctx, opts.Input, len(files), stats.DiscoverTime, err)
	if err != nil {
		return nil, stats, fmt.Errorf("discover: %w", err)
	}
	stats.FileCount = len(files)
	r.Logger.Debug("discovered files", "root", opts.Input, "files", len(files), "duration", stats.DiscoverTime)

	start = time.Now()
	asm := graph.NewAssembler(include.NewExtractor(opts.Markers), opts.AssemblerOptions(), r.Logger)
	g, err := asm.Assemble(ctx, files)
	stats.AssembleTime = time.Since(start)
	if err != nil {
		hooks.OnAssembleComplete(ctx, 0, 0, stats.AssembleTime, err)
		return nil, stats, fmt.Errorf("assemble: %w", err)
	}
	hooks.OnAssembleComplete(ctx, g.NodeCount(), g.EdgeCount(), stats.AssembleTime, nil)

	stats.NodeCount = g.NodeCount()
	stats.EdgeCount = g.EdgeCount()
	stats.ClusterCount = g.ClusterCount()
	r.Logger.Info("assembled graph", "nodes", stats.NodeCount, "edges", stats.EdgeCount, "clusters", stats.ClusterCount)
	return g, stats, nil
}

// Render produces the artifact for format. Graphviz output is served from
// the cache when present unless refresh is set; dot and json are derived
// directly from the graph and never cached.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, dot, format string, refresh bool) ([]byte, bool, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	data, hit, err := r.render(ctx, g, dot, format, refresh)
	hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("rendered", "format", format, "bytes", len(data), "cached", hit)
	return data, hit, nil
}

func (r *Runner) render(ctx context.Context, g *graph.Graph, dot, format string, refresh bool) ([]byte, bool, error) {
	if !render.IsImage(format) {
		if format == render.FormatDOT {
			return []byte(dot), false, nil
		}
		data, err := graph.MarshalGraph(g)
		if err != nil {
			return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "encode graph")
		}
		return data, false, nil
	}

	key := cache.ArtifactKey(cache.Hash([]byte(dot)), format)
	if !refresh {
		if data, ok, _ := r.Cache.Get(ctx, key); ok {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	data, err := nodelink.Render(ctx, dot, format)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}

	if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}
