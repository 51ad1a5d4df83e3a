package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/gfakit/pkg/gfa"
)

// Palette returns n visually distinct hex colors, evenly spaced around
// the hue circle at fixed saturation and value.
func Palette(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		hue := float64(i) * 360.0 / float64(max(n, 1))
		colors[i] = colorful.Hsv(hue, 0.65, 0.85).Hex()
	}
	return colors
}

// PathColors assigns one palette color to every path and walk of the
// graph, keyed by traversal name. Assignment follows the traversal
// order of [gfa.Graph.PathRecords], so colors are stable for a given
// graph.
func PathColors(g *gfa.Graph) map[string]string {
	traversals := g.PathRecords()
	palette := Palette(len(traversals))
	colors := make(map[string]string, len(traversals))
	for i, rec := range traversals {
		colors[rec.Name()] = palette[i]
	}
	return colors
}
