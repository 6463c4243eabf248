package graph

import "slices"

// Node is a vertex representing one or more files sharing a normalized name.
type Node struct {
	ID       string // normalized file name
	Path     string // first file registered under ID
	Category string // category name of Path
	Color    string
	Style    string
	Cluster  string // cluster ID, empty at top level
}

// Edge is a directed include relationship.
type Edge struct {
	From  string
	To    string
	Color string
	Style string
}

// Cluster groups the nodes found in one directory.
type Cluster struct {
	ID    string   // "cluster_" + Dir, the prefix Graphviz requires
	Dir   string   // containing directory
	Label string   // empty when unlabeled
	Nodes []string // node IDs in registration order
}

// ClusterPrefix is prepended to a directory to form a cluster ID.
const ClusterPrefix = "cluster_"

type edgeKey struct{ from, to string }

// Graph is an include graph description.
//
// The zero value is not usable; use New. Graph is not safe for concurrent use.
type Graph struct {
	strict   bool
	nodes    map[string]*Node
	order    []string
	edges    []Edge
	seen     map[edgeKey]bool
	clusters []*Cluster
	byID     map[string]*Cluster
}

// New creates an empty graph. A strict graph merges duplicate edges.
func New(strict bool) *Graph {
	return &Graph{
		strict: strict,
		nodes:  make(map[string]*Node),
		seen:   make(map[edgeKey]bool),
		byID:   make(map[string]*Cluster),
	}
}

// Strict reports whether duplicate edges are merged.
func (g *Graph) Strict() bool { return g.strict }

// AddCluster returns the cluster for dir, creating it on first use.
func (g *Graph) AddCluster(dir string) *Cluster {
	id := ClusterPrefix + dir
	if c, ok := g.byID[id]; ok {
		return c
	}
	c := &Cluster{ID: id, Dir: dir}
	g.byID[id] = c
	g.clusters = append(g.clusters, c)
	return c
}

// AddNode registers n. If a node with the same ID exists, the call is a no-op
// and AddNode reports false: the first registration keeps its attributes and
// its cluster. A non-empty n.Cluster must name a cluster created with
// AddCluster.
func (g *Graph) AddNode(n Node) bool {
	if _, ok := g.nodes[n.ID]; ok {
		return false
	}
	node := n
	g.nodes[n.ID] = &node
	g.order = append(g.order, n.ID)
	if c, ok := g.byID[n.Cluster]; ok {
		c.Nodes = append(c.Nodes, n.ID)
	}
	return true
}

// AddEdge appends e. Endpoints are not checked, since an edge may reference
// a node registered later. In a strict graph a repeated (From, To) pair is
// dropped and AddEdge reports false.
func (g *Graph) AddEdge(e Edge) bool {
	k := edgeKey{e.From, e.To}
	if g.strict && g.seen[k] {
		return false
	}
	g.seen[k] = true
	g.edges = append(g.edges, e)
	return true
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in registration order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Clusters returns all clusters in creation order.
func (g *Graph) Clusters() []*Cluster { return slices.Clone(g.clusters) }

// HasEdge reports whether at least one edge from -> to exists.
func (g *Graph) HasEdge(from, to string) bool { return g.seen[edgeKey{from, to}] }

// Children returns the targets of from's outgoing edges in insertion order,
// duplicates included.
func (g *Graph) Children(from string) []string {
	var out []string
	for _, e := range g.edges {
		if e.From == from {
			out = append(out, e.To)
		}
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ClusterCount returns the number of clusters.
func (g *Graph) ClusterCount() int { return len(g.clusters) }
