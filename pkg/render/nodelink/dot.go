package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/incgraph/pkg/graph"
	"github.com/matzehuels/incgraph/pkg/render"
)

// ToDOT converts an include graph to Graphviz DOT source.
//
// Clustered nodes are declared inside their cluster subgraph, every other
// node at top level. Edges are always declared at top level, in insertion
// order.
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	if g.Strict() {
		buf.WriteString("strict ")
	}
	buf.WriteString("digraph {\n")

	for _, c := range g.Clusters() {
		fmt.Fprintf(&buf, "  subgraph %s {\n", quote(c.ID))
		if c.Label != "" {
			fmt.Fprintf(&buf, "    label=%s;\n", quote(c.Label))
		}
		for _, id := range c.Nodes {
			if n, ok := g.Node(id); ok {
				fmt.Fprintf(&buf, "    %s;\n", fmtNode(n))
			}
		}
		buf.WriteString("  }\n")
	}

	for _, n := range g.Nodes() {
		if n.Cluster == "" {
			fmt.Fprintf(&buf, "  %s;\n", fmtNode(n))
		}
	}

	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %s -> %s%s;\n", quote(e.From), quote(e.To), fmtAttrs("color", e.Color, "style", e.Style))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtNode(n *graph.Node) string {
	return quote(n.ID) + fmtAttrs("color", n.Color)
}

// fmtAttrs renders key/value pairs as a DOT attribute list, skipping empty
// values. It returns "" when every value is empty.
func fmtAttrs(kv ...string) string {
	var attrs []string
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			attrs = append(attrs, kv[i]+"="+quote(kv[i+1]))
		}
	}
	if len(attrs) == 0 {
		return ""
	}
	return " [" + strings.Join(attrs, ", ") + "]"
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// quote returns s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// Render lays out DOT source with Graphviz and encodes it as format.
// The dot and json formats are not layouts and are rejected here.
func Render(ctx context.Context, dot string, format string) ([]byte, error) {
	switch format {
	case render.FormatSVG:
		return renderGraphviz(ctx, dot, graphviz.SVG)
	case render.FormatPNG:
		return renderGraphviz(ctx, dot, graphviz.PNG)
	case render.FormatJPG:
		return renderGraphviz(ctx, dot, graphviz.JPG)
	case render.FormatGIF, render.FormatBMP:
		return renderRaster(ctx, dot, format)
	case render.FormatPDF:
		svg, err := renderGraphviz(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(svg)
	default:
		return nil, fmt.Errorf("unsupported layout format: %s", format)
	}
}

func renderGraphviz(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func renderRaster(ctx context.Context, dot string, format string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	img, err := gv.RenderImage(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if format == render.FormatGIF {
		return render.EncodeGIF(img)
	}
	return render.EncodeBMP(img)
}
