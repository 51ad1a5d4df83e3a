package gfa

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Save writes the graph as GFA text to a file at path. The output style
// defaults to the graph's current version when StyleUnknown is given.
func (g *Graph) Save(path string, style GfaStyle) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := g.Write(f, style); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Write renders the graph as GFA text in the chosen style: header lines
// first (omitted for rGFA, which has none), then all segments, then all
// links, then every path and walk. GFA1 output uses P-line syntax for
// traversals; GFA1.1 and richer styles use W-lines; rGFA output omits
// traversals entirely. Pass StyleUnknown to keep the graph's current
// version. Writing does not mutate the graph.
func (g *Graph) Write(w io.Writer, style GfaStyle) error {
	if style == StyleUnknown {
		style = g.Version
	}
	bw := bufio.NewWriter(w)

	if style != StyleRGFA {
		for _, rec := range g.Headers {
			if err := writeRecord(bw, rec, style, 0); err != nil {
				return err
			}
		}
	}
	for _, rec := range g.Segments {
		if err := writeRecord(bw, rec, style, 0); err != nil {
			return err
		}
	}
	for _, rec := range g.Lines {
		if err := writeRecord(bw, rec, style, 0); err != nil {
			return err
		}
	}
	if style != StyleRGFA {
		for i, rec := range g.PathRecords() {
			if err := writeRecord(bw, rec, style, i); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, rec *Record, style GfaStyle, pathLine int) error {
	line, err := rec.render(style, pathLine)
	if err != nil {
		return err
	}
	if _, err := w.WriteString(line); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

// render spells the record back out as one tab-separated GFA line in
// the given output style, without a trailing newline. pathLine is the
// sequential fallback used for the origin field when a traversal is
// written in walk syntax but carries no stored origin.
func (r *Record) render(style GfaStyle, pathLine int) (string, error) {
	switch r.Kind {
	case KindHeader:
		return r.renderFixed("H"), nil
	case KindSegment:
		return r.renderFixed("S", r.Name(), r.SequenceOrFill()), nil
	case KindLine:
		from, to := r.Orientations()
		return r.renderFixed("L", r.Start(), from, r.End(), to), nil
	case KindContainment:
		return r.renderFixed("C"), nil
	case KindJump:
		return r.renderFixed("J"), nil
	case KindPath, KindWalk:
		return r.renderTraversal(style, pathLine), nil
	}
	return r.renderFixed(""), nil
}

// renderFixed joins the fixed fields with every remaining field: the
// positional ARG<n> overflow fields first in their original order, then
// the tags deterministically ordered by key. Positional field keys
// already spelled by the fixed part are skipped, as is the step list.
func (r *Record) renderFixed(fixed ...string) string {
	skip := map[string]bool{
		fieldName: true, fieldLength: true, fieldSeq: true,
		fieldStart: true, fieldEnd: true, fieldOrientation: true,
		fieldPath: true,
	}
	argKeys := make([]string, 0, len(r.Fields))
	tagKeys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		if skip[k] {
			continue
		}
		if isArgKey(k) {
			argKeys = append(argKeys, k)
		} else {
			tagKeys = append(tagKeys, k)
		}
	}
	// ARG keys carry their field position as a numeric suffix; sorting
	// lexicographically would put ARG10 before ARG2.
	sort.Slice(argKeys, func(i, j int) bool {
		a, _ := strconv.Atoi(argKeys[i][3:])
		b, _ := strconv.Atoi(argKeys[j][3:])
		return a < b
	})
	sort.Strings(tagKeys)

	keys := append(argKeys, tagKeys...)
	parts := make([]string, 0, len(fixed)+len(keys))
	for _, f := range fixed {
		if f != "" {
			parts = append(parts, f)
		}
	}
	for _, k := range keys {
		tag, err := renderTag(k, r.Fields[k])
		if err != nil {
			// Unrepresentable values cannot occur for parsed content;
			// keep the raw formatting rather than dropping the field.
			tag = fmt.Sprintf("%s:Z:%v", k, r.Fields[k])
		}
		parts = append(parts, tag)
	}
	return strings.Join(parts, "\t")
}

// renderTraversal writes a path or walk record in the syntax of the
// output style, downgrading walks to P-lines under GFA1 and upgrading
// paths to W-lines under GFA1.1 and richer styles.
func (r *Record) renderTraversal(style GfaStyle, pathLine int) string {
	steps := r.Steps()
	if style == StyleGFA1 {
		tokens := make([]string, len(steps))
		for i, st := range steps {
			tokens[i] = st.Name + st.Orient.PathSymbol()
		}
		return strings.Join([]string{"P", r.Name(), strings.Join(tokens, ","), "*"}, "\t")
	}

	origin := strconv.Itoa(pathLine)
	if o, ok := r.Fields[fieldOrigin].(int); ok {
		origin = strconv.Itoa(o)
	}
	id := r.Name()
	if s, ok := r.Fields[fieldID].(string); ok && s != "" {
		id = s
	}
	var b strings.Builder
	for _, st := range steps {
		b.WriteString(st.Orient.WalkSymbol())
		b.WriteString(st.Name)
	}
	return strings.Join([]string{
		"W", r.Name(), origin, id,
		r.offsetOr(fieldStartOffset), r.offsetOr(fieldStopOffset),
		b.String(), "*",
	}, "\t")
}

// offsetOr returns a walk offset field, or the `?` placeholder when the
// record carries none (paths upgraded to walk syntax have no offsets).
func (r *Record) offsetOr(key string) string {
	if s, ok := r.Fields[key].(string); ok && s != "" {
		return s
	}
	return "?"
}
