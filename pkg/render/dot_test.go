package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/gfakit/pkg/gfa"
)

func parseGFA(t *testing.T, text string, style gfa.GfaStyle) *gfa.Graph {
	t.Helper()
	g, err := gfa.Parse(strings.NewReader(text), style, gfa.Options{KeepSequences: true})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return g
}

func TestToDOTLinkEdges(t *testing.T) {
	g := parseGFA(t, "S\t1\tACGT\nS\t2\tGGTT\nL\t1\t+\t2\t-\t*\n", gfa.StyleRGFA)

	dot := ToDOT(g, Options{})
	for _, want := range []string{
		`"1" [label="1 (4bp)"`,
		`"2" [label="2 (4bp)"`,
		`"1" -> "2" [color="darkred", label="+/-"]`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
}

func TestToDOTPathEdges(t *testing.T) {
	g := parseGFA(t, "S\t1\tAC\nS\t2\tGT\nL\t1\t+\t2\t+\t*\nP\tp1\t1+,2+\t*\n", gfa.StyleGFA1)

	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `"1" -> "2"`) {
		t.Fatalf("ToDOT() missing path edge in:\n%s", dot)
	}
	// Path-derived edges replace raw link edges.
	if strings.Contains(dot, "darkred") {
		t.Errorf("ToDOT() fell back to link edges although paths exist:\n%s", dot)
	}
	if !strings.Contains(dot, `tooltip="p1"`) {
		t.Errorf("ToDOT() missing path tooltip in:\n%s", dot)
	}
}

func TestToDOTNodePrefix(t *testing.T) {
	g := parseGFA(t, "S\t1\tAC\n", gfa.StyleRGFA)

	dot := ToDOT(g, Options{NodePrefix: "a"})
	if !strings.Contains(dot, `"a_1"`) {
		t.Errorf("ToDOT() missing prefixed node in:\n%s", dot)
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	g := parseGFA(t, "S\t1\tAC\tSN:Z:chr1\n", gfa.StyleRGFA)

	dot := ToDOT(g, Options{Detailed: true})
	if !strings.Contains(dot, "SN: chr1") {
		t.Errorf("ToDOT() missing tag detail in:\n%s", dot)
	}
}

func TestPalette(t *testing.T) {
	colors := Palette(6)
	if len(colors) != 6 {
		t.Fatalf("Palette(6) = %d colors", len(colors))
	}
	seen := make(map[string]bool)
	for _, c := range colors {
		if !strings.HasPrefix(c, "#") || len(c) != 7 {
			t.Errorf("color %q is not a hex triplet", c)
		}
		if seen[c] {
			t.Errorf("duplicate color %q", c)
		}
		seen[c] = true
	}
}

func TestPathColors(t *testing.T) {
	g := parseGFA(t, "S\t1\tAC\nP\tp1\t1+\t*\nP\tp2\t1+\t*\n", gfa.StyleGFA1)

	colors := PathColors(g)
	if len(colors) != 2 {
		t.Fatalf("PathColors() = %d entries, want 2", len(colors))
	}
	if colors["p1"] == colors["p2"] {
		t.Errorf("paths share color %q", colors["p1"])
	}
}
