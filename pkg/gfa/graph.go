package gfa

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Graph is an in-memory GFA file: ordered record collections per kind
// plus the declared sub-version. Within each collection, records keep
// their file order.
//
// Segment names are the primary key of the graph: they are unique, and
// link endpoints and path steps reference them by name. A name→position
// index over Segments is maintained by every mutation so lookups do not
// rescan the slice; Validate checks that the index and the backing
// slice agree.
//
// The zero value is not usable - build a Graph with Load or Parse.
type Graph struct {
	Version GfaStyle

	Headers      []*Record
	Segments     []*Record
	Lines        []*Record
	Containments []*Record
	Paths        []*Record
	Walks        []*Record
	Jumps        []*Record
	Others       []*Record

	segIndex map[string]int
}

// Load reads the file at path and parses every non-empty line into a
// Graph declared to be of the given style. Parsing is all-or-nothing:
// the first offending line aborts with an error naming its line number,
// and no partial graph is returned.
func Load(path string, style GfaStyle, opts Options) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := Parse(f, style, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// Parse decodes newline-delimited GFA records from r into a Graph.
// Use Load for files or pass a strings.Reader for in-memory data.
func Parse(r io.Reader, style GfaStyle, opts Options) (*Graph, error) {
	g := &Graph{Version: style, segIndex: map[string]int{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		rec, err := parseRecord(line, style, opts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		g.add(rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return g, nil
}

// add appends a record to the collection of its kind, updating the
// segment index as needed.
func (g *Graph) add(rec *Record) {
	switch rec.Kind {
	case KindHeader:
		g.Headers = append(g.Headers, rec)
	case KindSegment:
		g.appendSegment(rec)
	case KindLine:
		g.Lines = append(g.Lines, rec)
	case KindContainment:
		g.Containments = append(g.Containments, rec)
	case KindPath:
		g.Paths = append(g.Paths, rec)
	case KindWalk:
		g.Walks = append(g.Walks, rec)
	case KindJump:
		g.Jumps = append(g.Jumps, rec)
	default:
		g.Others = append(g.Others, rec)
	}
}

// appendSegment adds a segment record and indexes it by name.
func (g *Graph) appendSegment(rec *Record) {
	g.Segments = append(g.Segments, rec)
	g.segIndex[rec.Name()] = len(g.Segments) - 1
}

// rebuildSegmentIndex recomputes the name→position index from scratch.
// Deletions call this rather than patching positions one by one.
func (g *Graph) rebuildSegmentIndex() {
	g.segIndex = make(map[string]int, len(g.Segments))
	for i, seg := range g.Segments {
		g.segIndex[seg.Name()] = i
	}
}

// Segment returns the segment record with the given name, or an error
// wrapping [ErrNotFound] when the graph has no such segment.
func (g *Graph) Segment(name string) (*Record, error) {
	i, err := g.SegmentIndex(name)
	if err != nil {
		return nil, err
	}
	return g.Segments[i], nil
}

// SegmentIndex returns the position of the named segment within
// Segments, or an error wrapping [ErrNotFound].
func (g *Graph) SegmentIndex(name string) (int, error) {
	if i, ok := g.segIndex[name]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("segment %q: %w", name, ErrNotFound)
}

// Path returns the path or walk record with the given name, or an
// error wrapping [ErrNotFound].
func (g *Graph) Path(name string) (*Record, error) {
	for _, rec := range g.PathRecords() {
		if rec.Name() == name {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("path %q: %w", name, ErrNotFound)
}

// PathRecords returns all traversals of the graph, paths first and
// then walks, as a single view. Edit operations treat the two kinds
// interchangeably.
func (g *Graph) PathRecords() []*Record {
	out := make([]*Record, 0, len(g.Paths)+len(g.Walks))
	out = append(out, g.Paths...)
	return append(out, g.Walks...)
}

// EdgesTouching returns every link that has the named segment at either
// endpoint. The returned slice holds the graph's own records, so
// endpoint rewrites through it affect the graph.
func (g *Graph) EdgesTouching(name string) []*Record {
	var out []*Record
	for _, e := range g.Lines {
		if e.Touches(name) {
			out = append(out, e)
		}
	}
	return out
}

// EdgePositionsTouching returns the positions within Lines of every
// link that has the named segment at either endpoint.
func (g *Graph) EdgePositionsTouching(name string) []int {
	var out []int
	for i, e := range g.Lines {
		if e.Touches(name) {
			out = append(out, i)
		}
	}
	return out
}

// InferStyle returns the minimal GFA sub-version consistent with the
// record kinds actually present, independent of the style declared at
// load time, and records it as the graph's version:
//
//	out-of-alphabet records ⇒ GFA2
//	jumps                   ⇒ GFA1.2
//	walks                   ⇒ GFA1.1
//	headers or paths        ⇒ GFA1
//	otherwise               ⇒ rGFA
func (g *Graph) InferStyle() GfaStyle {
	var ver GfaStyle
	switch {
	case len(g.Others) > 0:
		ver = StyleGFA2
	case len(g.Jumps) > 0:
		ver = StyleGFA12
	case len(g.Walks) > 0:
		ver = StyleGFA11
	case len(g.Headers) > 0 || len(g.Paths) > 0:
		ver = StyleGFA1
	default:
		ver = StyleRGFA
	}
	g.Version = ver
	return ver
}

// Validate checks the graph's internal consistency: the segment index
// matches the backing slice, every link endpoint and every path step
// names an existing segment, and segment lengths agree with stored
// sequences. Parse does not enforce the reference invariants eagerly;
// call Validate when dangling references should surface before they
// are traversed.
func (g *Graph) Validate() error {
	if len(g.segIndex) != len(g.Segments) {
		return fmt.Errorf("segment index has %d entries for %d segments", len(g.segIndex), len(g.Segments))
	}
	for i, seg := range g.Segments {
		if j, ok := g.segIndex[seg.Name()]; !ok || j != i {
			return fmt.Errorf("segment index out of sync at %q", seg.Name())
		}
		if seq, ok := seg.Seq(); ok && len(seq) != seg.Length() {
			return fmt.Errorf("segment %q: length %d does not match sequence length %d", seg.Name(), seg.Length(), len(seq))
		}
	}
	for _, e := range g.Lines {
		for _, name := range []string{e.Start(), e.End()} {
			if _, ok := g.segIndex[name]; !ok {
				return fmt.Errorf("link endpoint %q: %w", name, ErrNotFound)
			}
		}
	}
	for _, rec := range g.PathRecords() {
		for _, step := range rec.Steps() {
			if _, ok := g.segIndex[step.Name]; !ok {
				return fmt.Errorf("%s %q step %q: %w", rec.Kind, rec.Name(), step.Name, ErrNotFound)
			}
		}
	}
	return nil
}

// String summarizes the graph for logs and debugging.
func (g *Graph) String() string {
	return fmt.Sprintf("GFA graph (version %s) containing %d segments, %d links and %d paths",
		g.Version, len(g.Segments), len(g.Lines), len(g.Paths)+len(g.Walks))
}
