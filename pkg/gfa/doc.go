// Package gfa parses, represents, edits, and re-serializes sequence
// assembly graphs in the GFA family of text formats (rGFA, GFA1,
// GFA1.1, GFA1.2, GFA2).
//
// # Overview
//
// A GFA file is a newline-delimited list of tab-separated records. The
// leading character of each line selects the record kind: segments (S)
// carry named sequence fragments, links (L) connect two oriented
// segment endpoints, and paths (P) or walks (W) describe ordered
// traversals through the segments. Trailing fields use the GFA optional
// tag syntax `XX:t:value` and are decoded by the tag codec into typed
// Go values.
//
// # Basic Usage
//
// Load a file into a [Graph] with [Load], inspect and mutate it, then
// write it back with [Graph.Save]:
//
//	g, err := gfa.Load("graph.gfa", gfa.StyleGFA1, gfa.Options{KeepSequences: true})
//	if err != nil {
//	    return err
//	}
//	if err := g.Split("1", []string{"10"}, []int{2}); err != nil {
//	    return err
//	}
//	return g.Save("out.gfa", gfa.StyleGFA1)
//
// # Structural Edits
//
// [Graph.Split] and [Graph.Merge] are the two structural edit
// operations. Both rewrite segments, links, and every path or walk in
// one pass so that the cross-referencing invariants hold when they
// return: link endpoints name existing segments, path steps name
// existing segments, and a segment's length field matches its stored
// sequence. Preconditions are validated before any mutation, so a
// failed edit leaves the graph untouched.
//
// # Sub-Versions
//
// [GfaStyle] orders the GFA sub-versions by feature richness. The style
// declared at load time gates which record kinds are accepted; parsing
// a walk under GFA1, for example, fails with
// [IncompatibleVersionError]. [Graph.InferStyle] computes the minimal
// style the loaded content actually requires, which is useful before
// serializing: GFA1 output uses P-line syntax while GFA1.1 and later
// use W-lines.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. The whole file is
// parsed into memory up front; there is no streaming mode.
package gfa
