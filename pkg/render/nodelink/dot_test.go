package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/incgraph/pkg/graph"
)

func sample(strict bool) *graph.Graph {
	g := graph.New(strict)
	g.AddNode(graph.Node{ID: "a", Color: "goldenrod"})
	g.AddNode(graph.Node{ID: "b", Color: "black"})
	g.AddEdge(graph.Edge{From: "a", To: "b", Color: "goldenrod", Style: "dashed"})
	return g
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(sample(false))

	if !strings.HasPrefix(dot, "digraph {") {
		t.Errorf("ToDOT() should start with a plain digraph, got %q", dot)
	}
	if !strings.Contains(dot, `"a" [color="goldenrod"];`) {
		t.Error("ToDOT() output missing node a")
	}
	if !strings.Contains(dot, `"b" [color="black"];`) {
		t.Error("ToDOT() output missing node b")
	}
	if !strings.Contains(dot, `"a" -> "b" [color="goldenrod", style="dashed"];`) {
		t.Error("ToDOT() output missing edge")
	}
}

func TestToDOT_Strict(t *testing.T) {
	dot := ToDOT(sample(true))
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("ToDOT() strict graph should start with 'strict digraph', got %q", dot)
	}
}

func TestToDOT_Clusters(t *testing.T) {
	g := graph.New(false)
	lib := g.AddCluster("src/lib")
	lib.Label = "src/lib"
	app := g.AddCluster("src/app")
	g.AddNode(graph.Node{ID: "x", Cluster: lib.ID})
	g.AddNode(graph.Node{ID: "main", Cluster: app.ID})
	g.AddEdge(graph.Edge{From: "main", To: "x"})

	dot := ToDOT(g)

	libBlock := "  subgraph \"cluster_src/lib\" {\n    label=\"src/lib\";\n    \"x\";\n  }\n"
	if !strings.Contains(dot, libBlock) {
		t.Errorf("ToDOT() missing labeled lib cluster:\n%s", dot)
	}
	appBlock := "  subgraph \"cluster_src/app\" {\n    \"main\";\n  }\n"
	if !strings.Contains(dot, appBlock) {
		t.Errorf("ToDOT() missing unlabeled app cluster:\n%s", dot)
	}
	if n := strings.Count(dot, "    \"x\";\n"); n != 1 {
		t.Errorf("clustered node declared %d times inside clusters, want 1", n)
	}
	for _, line := range strings.Split(dot, "\n") {
		if line == "  \"x\";" {
			t.Error("clustered node also declared at top level")
		}
	}
	if !strings.Contains(dot, "  \"main\" -> \"x\";\n") {
		t.Error("ToDOT() missing top-level edge without attributes")
	}
}

func TestToDOT_DuplicateEdges(t *testing.T) {
	g := graph.New(false)
	g.AddNode(graph.Node{ID: "a"})
	g.AddNode(graph.Node{ID: "b"})
	g.AddEdge(graph.Edge{From: "a", To: "b"})
	g.AddEdge(graph.Edge{From: "a", To: "b"})

	if n := strings.Count(ToDOT(g), `"a" -> "b"`); n != 2 {
		t.Errorf("non-strict DOT has %d a->b edges, want 2", n)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`C:\src`, `"C:\\src"`},
		{"two\nlines", `"two\nlines"`},
	}
	for _, tt := range tests {
		if got := quote(tt.in); got != tt.want {
			t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFmtAttrs(t *testing.T) {
	if got := fmtAttrs("color", "", "style", ""); got != "" {
		t.Errorf("fmtAttrs(empty) = %q, want empty", got)
	}
	if got := fmtAttrs("color", "red", "style", ""); got != ` [color="red"]` {
		t.Errorf("fmtAttrs() = %q", got)
	}
}

func TestRender_SVG(t *testing.T) {
	svg, err := Render(t.Context(), ToDOT(sample(true)), "svg")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("Render() output is not SVG")
	}
}

func TestRender_Unsupported(t *testing.T) {
	if _, err := Render(t.Context(), ToDOT(sample(false)), "json"); err == nil {
		t.Error("Render() expected error for json")
	}
}
