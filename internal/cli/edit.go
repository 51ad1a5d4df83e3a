package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gfakit/pkg/gfa"
)

// splitOpts holds the command-line flags for the split command.
type splitOpts struct {
	output string // output file path; empty rewrites the input in place
	into   string // comma-separated names for the new fragments
	at     string // comma-separated cut offsets
	style  string // sub-version to parse as
}

// splitCommand creates the split command for cutting a segment into
// fragments.
func (c *CLI) splitCommand() *cobra.Command {
	var opts splitOpts

	cmd := &cobra.Command{
		Use:   "split [file] [segment]",
		Short: "Cut a segment into fragments at given offsets",
		Long: `Split a segment at one or more sequence offsets. The original segment
keeps its name and the leading fragment; each later fragment becomes a
new segment named by --into, chained to its predecessor by a link.
Edges leaving the segment move to the last fragment, and every path
traversing the segment is rewritten to traverse the whole chain.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runSplit(ctx, args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: rewrite input)")
	cmd.Flags().StringVar(&opts.into, "into", "", "comma-separated names for the new fragments (required)")
	cmd.Flags().StringVar(&opts.at, "at", "", "comma-separated cut offsets (required)")
	cmd.Flags().StringVar(&opts.style, "style", "", "sub-version to parse as (default: infer)")
	_ = cmd.MarkFlagRequired("into")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func (c *CLI) runSplit(ctx context.Context, input, segment string, opts *splitOpts) error {
	newNames := splitList(opts.into)
	at, err := parseOffsets(opts.at)
	if err != nil {
		return err
	}

	g, err := c.loadGraph(ctx, input, opts.style, false)
	if err != nil {
		return err
	}

	if err := g.Split(segment, newNames, at); err != nil {
		return fmt.Errorf("split %s: %w", segment, err)
	}
	printSuccess("Split %s into %d fragments", segment, len(newNames)+1)

	return saveEdited(g, input, opts.output)
}

// mergeCommand creates the merge command for fusing a run of segments.
func (c *CLI) mergeCommand() *cobra.Command {
	var output, style string

	cmd := &cobra.Command{
		Use:   "merge [file] [segment] [segment...]",
		Short: "Fuse a run of segments into one",
		Long: `Merge two or more segments into the left-most one. The left-most
segment absorbs the sequences and lengths of the rest, edges leaving
the right-most segment move to it, interior segments disappear, and
paths traversing the run collapse to a single step.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runMerge(ctx, args[0], args[1:], output, style)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: rewrite input)")
	cmd.Flags().StringVar(&style, "style", "", "sub-version to parse as (default: infer)")

	return cmd
}

func (c *CLI) runMerge(ctx context.Context, input string, segments []string, output, style string) error {
	g, err := c.loadGraph(ctx, input, style, false)
	if err != nil {
		return err
	}

	merged, err := g.Merge(segments...)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	printSuccess("Merged %d segments into %s", len(segments), merged)

	return saveEdited(g, input, output)
}

// parseOffsets parses a comma-separated list of cut positions.
func parseOffsets(s string) ([]int, error) {
	parts := splitList(s)
	offsets := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q", part)
		}
		offsets = append(offsets, n)
	}
	return offsets, nil
}

// saveEdited writes an edited graph to output, defaulting to the input
// path. The graph's own sub-version is kept.
func saveEdited(g *gfa.Graph, input, output string) error {
	if output == "" {
		output = input
	}
	if err := g.Save(output, gfa.StyleUnknown); err != nil {
		return err
	}
	printFile(output)
	return nil
}
