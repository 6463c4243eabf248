package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// document is the JSON shape of a Graph.
type document struct {
	Strict   bool          `json:"strict"`
	Nodes    []jsonNode    `json:"nodes"`
	Edges    []jsonEdge    `json:"edges"`
	Clusters []jsonCluster `json:"clusters,omitempty"`
}

type jsonNode struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	Category string `json:"category"`
	Color    string `json:"color,omitempty"`
	Style    string `json:"style,omitempty"`
	Cluster  string `json:"cluster,omitempty"`
}

type jsonEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Color string `json:"color,omitempty"`
	Style string `json:"style,omitempty"`
}

type jsonCluster struct {
	ID    string   `json:"id"`
	Dir   string   `json:"dir"`
	Label string   `json:"label,omitempty"`
	Nodes []string `json:"nodes"`
}

// MarshalGraph encodes g as indented JSON.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON writes g as indented JSON to w.
func WriteJSON(g *Graph, w io.Writer) error {
	doc := document{
		Strict: g.Strict(),
		Nodes:  make([]jsonNode, 0, g.NodeCount()),
		Edges:  make([]jsonEdge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, jsonNode{
			ID:       n.ID,
			Path:     n.Path,
			Category: n.Category,
			Color:    n.Color,
			Style:    n.Style,
			Cluster:  n.Cluster,
		})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, jsonEdge(e))
	}
	for _, c := range g.Clusters() {
		doc.Clusters = append(doc.Clusters, jsonCluster{ID: c.ID, Dir: c.Dir, Label: c.Label, Nodes: c.Nodes})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
