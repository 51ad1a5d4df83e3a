package gfa_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/gfakit/pkg/gfa"
)

func ExampleParse() {
	text := "S\t1\tACGT\nS\t2\tGGTT\nL\t1\t+\t2\t+\t*\n"
	g, err := gfa.Parse(strings.NewReader(text), gfa.StyleRGFA, gfa.Options{KeepSequences: true})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g)
	// Output:
	// GFA graph (version rGFA) containing 2 segments, 1 links and 0 paths
}

func ExampleGraph_Split() {
	text := "S\t1\tACGT\n"
	g, _ := gfa.Parse(strings.NewReader(text), gfa.StyleRGFA, gfa.Options{KeepSequences: true})

	if err := g.Split("1", []string{"10"}, []int{2}); err != nil {
		fmt.Println(err)
		return
	}
	_ = g.Write(os.Stdout, gfa.StyleRGFA)
	// Output:
	// S	1	AC
	// S	10	GT
	// L	1	+	10	+
}

func ExampleGraph_InferStyle() {
	text := "S\t1\tACGT\nW\tsample\t0\tchr1\t0\t4\t>1\n"
	g, _ := gfa.Parse(strings.NewReader(text), gfa.StyleUnknown, gfa.Options{})

	fmt.Println(g.InferStyle())
	// Output:
	// GFA1.1
}
