// Package pkg provides the libraries behind incgraph, a tool that draws the
// #include graph of a C/C++ source tree.
//
// # Overview
//
// A run walks an input folder, reads every header and source file, keeps the
// #include directives that are not commented out and links each file to the
// files it includes. The resulting graph is handed to Graphviz for layout.
//
// # Architecture
//
//	input folder
//	     ↓
//	[source] (discover and classify files)
//	     ↓
//	[include] (strip comments, extract and normalize include targets)
//	     ↓
//	[graph] (nodes, edges and per-directory clusters)
//	     ↓
//	[render/nodelink] (DOT source, Graphviz layout)
//	     ↓
//	SVG/PNG/JPG/GIF/BMP/PDF, DOT or JSON output
//
// [pipeline] ties the stages together and serves rendered artifacts from
// [cache]. [config] loads the optional .incgraph.toml, and [watch] re-runs
// the pipeline when files change.
//
// # Quick Start
//
//	cfg := config.Default()
//	cfg.Render.Cluster = true
//
//	opts := pipeline.FromConfig("src", cfg)
//	opts.Output = "build/deps"
//
//	result, err := pipeline.NewRunner(nil, nil).Run(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Paths) // [build/deps.svg build/deps]
//
// Using the stages directly:
//
//	files, _ := source.Discover("src", source.DefaultCategories(), source.Options{Exclude: []string{"Test"}})
//	asm := graph.NewAssembler(include.NewExtractor(include.DefaultMarkers()), graph.Options{}, logger)
//	g, _ := asm.Assemble(ctx, files)
//	svg, _ := nodelink.Render(ctx, nodelink.ToDOT(g), render.FormatSVG)
//
// # Testing
//
//	go test ./...                 # All tests
//	go test ./pkg/include/...     # Specific package
//
// [source]: https://pkg.go.dev/github.com/matzehuels/incgraph/pkg/source
// [include]: https://pkg.go.dev/github.com/matzehuels/incgraph/pkg/include
// [graph]: https://pkg.go.dev/github.com/matzehuels/incgraph/pkg/graph
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/incgraph/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/incgraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/incgraph/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/incgraph/pkg/config
// [watch]: https://pkg.go.dev/github.com/matzehuels/incgraph/pkg/watch
package pkg
