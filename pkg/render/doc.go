// Package render converts a GFA graph into Graphviz DOT text and
// renders it to SVG or PNG.
//
// The package is a read-only consumer of [gfa.Graph]: it walks the
// segments, links, and traversals but never mutates them. Segments
// become box nodes sized by the order of magnitude of their sequence
// length. When the graph carries paths or walks, edges are derived from
// consecutive traversal steps and colored per path using an evenly
// spaced palette; otherwise the L-line links are drawn directly.
package render
