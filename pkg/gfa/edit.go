package gfa

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Split breaks the named segment into multiple fragments at the given
// sequence offsets. newNames and at must have the same length
// ([ErrArityMismatch] otherwise, with at least one entry), and the
// offsets must be ascending positions within the segment's sequence
// ([ErrInvalidOffset]). All preconditions are checked before any
// mutation, so a failed Split leaves the graph unchanged.
//
// The original segment keeps its name and becomes the first fragment,
// truncated to [0, at[0]); each new name takes the next sequence slice,
// with the last fragment running to the end of the sequence. New links
// chain the fragments in order, so any traversal through the original
// segment remains equivalent through the sub-chain. Links leaving the
// segment are redirected to the last fragment; links arriving stay on
// the original name. Every path and walk occurrence of the segment is
// expanded in place into the full fragment chain, carrying the
// orientation observed on the segment's links (forward when the segment
// has no links).
func (g *Graph) Split(name string, newNames []string, at []int) error {
	if len(newNames) != len(at) {
		return fmt.Errorf("split %q: %d names for %d offsets: %w", name, len(newNames), len(at), ErrArityMismatch)
	}
	if len(newNames) == 0 {
		return fmt.Errorf("split %q: at least one new name required: %w", name, ErrArityMismatch)
	}
	seg, err := g.Segment(name)
	if err != nil {
		return err
	}
	seq := seg.SequenceOrFill()
	prev := 0
	for _, off := range at {
		if off < prev || off > len(seq) {
			return fmt.Errorf("split %q at %d (sequence length %d): %w", name, off, len(seq), ErrInvalidOffset)
		}
		prev = off
	}

	// Links leaving the segment move to the last fragment; arriving
	// links keep pointing at the original name. The orientation seen on
	// the segment's own side is carried over to the new chain links and
	// path steps.
	orient := Forward
	for _, e := range g.EdgesTouching(name) {
		from, to := e.Orientations()
		if e.Start() == name {
			orient, _ = parseOrientation(from[0])
			e.Fields[fieldStart] = newNames[len(newNames)-1]
		} else {
			orient, _ = parseOrientation(to[0])
		}
	}

	_, retained := seg.Seq()
	if retained {
		seg.Fields[fieldSeq] = seq[:at[0]]
	}
	seg.Fields[fieldLength] = at[0]

	bounds := append(append(make([]int, 0, len(at)+1), at...), len(seq))
	sym := orient.PathSymbol()
	prevName := name
	for i, newName := range newNames {
		frag := newRecord(g.Version, KindSegment)
		frag.Fields[fieldName] = newName
		frag.Fields[fieldLength] = bounds[i+1] - bounds[i]
		if retained {
			frag.Fields[fieldSeq] = seq[bounds[i]:bounds[i+1]]
		}
		g.appendSegment(frag)

		link := newRecord(g.Version, KindLine)
		link.Fields[fieldStart] = prevName
		link.Fields[fieldEnd] = newName
		link.Fields[fieldOrientation] = sym + "/" + sym
		g.Lines = append(g.Lines, link)
		prevName = newName
	}

	for _, rec := range g.PathRecords() {
		steps := rec.Steps()
		hit := false
		for _, st := range steps {
			if st.Name == name {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		out := make([]Step, 0, len(steps)+len(newNames))
		for _, st := range steps {
			out = append(out, st)
			if st.Name != name {
				continue
			}
			for _, newName := range newNames {
				out = append(out, Step{Name: newName, Orient: orient})
			}
		}
		rec.SetSteps(out)
	}
	return nil
}

// Merge fuses the given segments into the numerically lowest one and
// returns its name. At least two segment names are required
// ([ErrArityMismatch]); all of them must be numeric and present in the
// graph. Preconditions are checked before any mutation.
//
// The lowest-named segment ("left") absorbs the lengths of all the
// others and, when sequences are retained, the concatenation of their
// sequences in numeric order. Links touching the highest-named segment
// ("right") are re-pointed to left; links touching any strictly
// interior segment are deleted along with the interior segments
// themselves. Right stays in the graph so traversals collapsed through
// the merge keep a valid anchor: in every path or walk where both left
// and right occur, the steps from left up to (but excluding) right are
// removed. Traversals containing only one of the two endpoints are left
// untouched.
func (g *Graph) Merge(names ...string) (string, error) {
	if len(names) < 2 {
		return "", fmt.Errorf("merge: at least two segments required, got %d: %w", len(names), ErrArityMismatch)
	}
	ordered := make([]string, len(names))
	copy(ordered, names)
	values := make(map[string]int, len(names))
	for _, name := range ordered {
		v, err := strconv.Atoi(name)
		if err != nil {
			return "", fmt.Errorf("merge: segment name %q is not numeric: %w", name, err)
		}
		values[name] = v
	}
	sort.Slice(ordered, func(i, j int) bool { return values[ordered[i]] < values[ordered[j]] })

	positions := make([]int, len(ordered))
	for i, name := range ordered {
		pos, err := g.SegmentIndex(name)
		if err != nil {
			return "", fmt.Errorf("merge: %w", err)
		}
		positions[i] = pos
	}

	left := g.Segments[positions[0]]
	leftName := left.Name()
	rightName := g.Segments[positions[len(positions)-1]].Name()

	total := 0
	for _, pos := range positions[1:] {
		total += g.Segments[pos].Length()
	}
	left.Fields[fieldLength] = left.Length() + total
	if _, ok := left.Seq(); ok {
		var b strings.Builder
		for _, pos := range positions {
			b.WriteString(g.Segments[pos].SequenceOrFill())
		}
		left.Fields[fieldSeq] = b.String()
	}

	// Anchors of the right-most segment replicate onto the left-most.
	for _, pos := range g.EdgePositionsTouching(rightName) {
		e := g.Lines[pos]
		if e.Start() == rightName {
			e.Fields[fieldStart] = leftName
		} else {
			e.Fields[fieldEnd] = leftName
		}
	}

	interior := make(map[int]struct{}, len(positions))
	dropEdges := map[int]struct{}{}
	for _, pos := range positions[1 : len(positions)-1] {
		interior[pos] = struct{}{}
		for _, ep := range g.EdgePositionsTouching(g.Segments[pos].Name()) {
			dropEdges[ep] = struct{}{}
		}
	}

	for _, rec := range g.PathRecords() {
		steps := rec.Steps()
		li, ri := -1, -1
		for i, st := range steps {
			switch st.Name {
			case leftName:
				li = i
			case rightName:
				ri = i
			}
		}
		if li < 0 || ri < 0 {
			continue
		}
		lo, hi := li, ri
		if hi < lo {
			lo, hi = hi, lo
		}
		rec.SetSteps(append(steps[:lo:lo], steps[hi:]...))
	}

	if len(interior) > 0 {
		kept := g.Segments[:0]
		for i, seg := range g.Segments {
			if _, drop := interior[i]; !drop {
				kept = append(kept, seg)
			}
		}
		g.Segments = kept
		g.rebuildSegmentIndex()
	}
	if len(dropEdges) > 0 {
		kept := g.Lines[:0]
		for i, e := range g.Lines {
			if _, drop := dropEdges[i]; !drop {
				kept = append(kept, e)
			}
		}
		g.Lines = kept
	}
	return leftName, nil
}
