// Package nodelink renders include graphs as Graphviz node-link diagrams.
//
// # Overview
//
// [ToDOT] converts a graph.Graph into DOT source: a (strict) digraph with
// one node per file name, one edge per include and, when the graph has
// clusters, one "cluster_<dir>" subgraph per directory. Node colors and edge
// colors and styles come straight from the graph description.
//
// [Render] lays the DOT source out in process with Graphviz and encodes the
// result in the requested format.
//
//	dot := nodelink.ToDOT(g)
//	svg, err := nodelink.Render(ctx, dot, render.FormatSVG)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process layout.
// PDF conversion requires librsvg (rsvg-convert).
package nodelink
