// Package render turns include graphs into files.
//
// # Formats
//
// The supported output formats are listed in [Formats]. They map onto
// renderers as follows:
//
//   - svg, png, jpg: rendered in process by Graphviz (see [nodelink])
//   - gif, bmp: Graphviz raster image, re-encoded with image/gif and
//     golang.org/x/image/bmp
//   - pdf: SVG converted with the external rsvg-convert tool (librsvg)
//   - dot: the Graphviz source itself
//   - json: the graph description, see graph.WriteJSON
//
// # Viewing
//
// [Open] hands a rendered file to the platform's default viewer.
//
// [nodelink]: github.com/matzehuels/incgraph/pkg/render/nodelink
package render
