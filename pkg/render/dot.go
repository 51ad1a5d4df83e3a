package render

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gfakit/pkg/gfa"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes the decoded record fields in node labels.
	// When false, only the segment name and length are shown.
	Detailed bool

	// NodePrefix is prepended to every node ID, which keeps IDs unique
	// when several graphs are combined into one diagram.
	NodePrefix string
}

// ToDOT converts a GFA graph to Graphviz DOT format. The resulting
// string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g *gfa.Graph, opts Options) string {
	prefix := ""
	if opts.NodePrefix != "" {
		prefix = opts.NodePrefix + "_"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, color=darkslateblue];\n")
	buf.WriteString("\n")

	for _, seg := range g.Segments {
		label := segmentLabel(seg, opts.Detailed)
		width := 0.6 + math.Log10(float64(max(seg.Length(), 1)))/4
		fmt.Fprintf(&buf, "  %q [label=%q, width=%.2f];\n", prefix+seg.Name(), label, width)
	}
	buf.WriteString("\n")

	if traversals := g.PathRecords(); len(traversals) > 0 {
		colors := PathColors(g)
		for _, rec := range traversals {
			steps := rec.Steps()
			for i := 0; i+1 < len(steps); i++ {
				fmt.Fprintf(&buf, "  %q -> %q [color=%q, label=%q, tooltip=%q];\n",
					prefix+steps[i].Name, prefix+steps[i+1].Name,
					colors[rec.Name()],
					steps[i].Orient.PathSymbol()+"/"+steps[i+1].Orient.PathSymbol(),
					rec.Name())
			}
		}
	} else {
		for _, e := range g.Lines {
			from, to := e.Orientations()
			fmt.Fprintf(&buf, "  %q -> %q [color=darkred, label=%q];\n",
				prefix+e.Start(), prefix+e.End(), from+"/"+to)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// segmentLabel builds the node label: the segment name plus its length,
// and in detailed mode every remaining decoded field in key order.
func segmentLabel(seg *gfa.Record, detailed bool) string {
	label := fmt.Sprintf("%s (%dbp)", seg.Name(), seg.Length())
	if !detailed {
		return label
	}
	keys := make([]string, 0, len(seg.Fields))
	for k := range seg.Fields {
		if k != "name" && k != "length" && k != "seq" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	parts := []string{label}
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, seg.Fields[k]))
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG bytes using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG bytes using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
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
