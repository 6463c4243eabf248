// Package graph holds the include graph description and the assembler that
// builds it from discovered files.
//
// # Model
//
// A [Graph] is an in-memory description handed to a renderer. It knows
// nothing about layout:
//
//   - [Node]: one per distinct normalized file name, colored by the category
//     of the first file registered under that name.
//   - [Edge]: "From includes To", drawn with the color and style of From.
//   - [Cluster]: an optional grouping of nodes by containing directory.
//
// A strict graph stores each ordered (From, To) pair at most once; a
// non-strict graph keeps duplicate edges.
//
// # Assembly
//
// [Assembler.Assemble] groups files by directory, computes the set of known
// node names up front, then extracts each file's includes and adds an edge
// for every include that names a known node other than the file itself.
// Includes of system headers or excluded files produce no edge.
//
// Files in different directories that share a base name collapse into one
// node. Attributes and cluster membership come from the first one seen.
//
// # Serialization
//
// [WriteJSON] and [MarshalGraph] encode a graph as indented JSON with nodes,
// edges and clusters in insertion order.
package graph
