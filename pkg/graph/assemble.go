package graph

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/incgraph/pkg/include"
	"github.com/matzehuels/incgraph/pkg/source"
)

// Options configures graph assembly.
type Options struct {
	// Cluster places each directory's nodes in their own cluster.
	Cluster bool

	// LabelClusters labels each cluster with its directory path.
	// It has no effect unless Cluster is set.
	LabelClusters bool

	// Strict merges duplicate edges between the same ordered pair.
	Strict bool
}

// Assembler builds include graphs from discovered files.
type Assembler struct {
	extractor *include.Extractor
	opts      Options
	logger    *log.Logger
}

// NewAssembler creates an assembler. If logger is nil, log.Default() is used.
func NewAssembler(ex *include.Extractor, opts Options, logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.Default()
	}
	return &Assembler{extractor: ex, opts: opts, logger: logger}
}

// Assemble builds the graph for files. The context is checked between
// files. A file that cannot be read still becomes a node; it just has no
// outgoing edges.
func (a *Assembler) Assemble(ctx context.Context, files []source.File) (*Graph, error) {
	dirs, byDir := groupByDir(files)

	known := make(map[string]bool, len(files))
	for _, f := range files {
		known[include.Normalize(f.Path)] = true
	}

	g := New(a.opts.Strict)
	for _, dir := range dirs {
		var cluster *Cluster
		if a.opts.Cluster {
			cluster = g.AddCluster(dir)
		}

		for _, f := range byDir[dir] {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			id := include.Normalize(f.Path)
			node := Node{
				ID:       id,
				Path:     f.Path,
				Category: f.Category.Name,
				Color:    f.Category.Color,
				Style:    f.Category.Style,
			}
			if cluster != nil {
				node.Cluster = cluster.ID
			}
			if !g.AddNode(node) {
				a.logger.Debug("merged duplicate file name", "node", id, "path", f.Path)
			}

			neighbors, err := a.extractor.ExtractFile(f.Path)
			if err != nil {
				a.logger.Warn("skipping unreadable file", "path", f.Path, "err", err)
				continue
			}
			for _, n := range neighbors {
				if n == id || !known[n] {
					continue
				}
				g.AddEdge(Edge{From: id, To: n, Color: f.Category.Color, Style: f.Category.Style})
			}
		}

		if cluster != nil && a.opts.LabelClusters {
			cluster.Label = dir
		}
	}

	a.logger.Debug("assembled graph",
		"files", len(files),
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"clusters", g.ClusterCount())
	return g, nil
}

// groupByDir groups files by containing directory, keeping the order in
// which directories are first seen.
func groupByDir(files []source.File) ([]string, map[string][]source.File) {
	var dirs []string
	byDir := make(map[string][]source.File)
	for _, f := range files {
		if _, ok := byDir[f.Dir]; !ok {
			dirs = append(dirs, f.Dir)
		}
		byDir[f.Dir] = append(byDir[f.Dir], f)
	}
	return dirs, byDir
}
