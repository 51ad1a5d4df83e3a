package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// statsCommand creates the stats command for summarizing a graph.
func (c *CLI) statsCommand() *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize a graph's records and inferred sub-version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runStats(ctx, args[0], style)
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "sub-version to parse as (default: infer)")

	return cmd
}

func (c *CLI) runStats(ctx context.Context, input, style string) error {
	g, err := c.loadGraph(ctx, input, style, false)
	if err != nil {
		return err
	}

	var bases int
	for _, seg := range g.Segments {
		bases += seg.Length()
	}

	fmt.Println(StyleTitle.Render(input))
	printKeyValue("Style", g.Version.String())
	printKeyValue("Segments", StyleNumber.Render(fmt.Sprintf("%d", len(g.Segments))))
	printKeyValue("Links", StyleNumber.Render(fmt.Sprintf("%d", len(g.Lines))))
	printCount("Containments", len(g.Containments))
	printCount("Paths", len(g.Paths))
	printCount("Walks", len(g.Walks))
	printCount("Jumps", len(g.Jumps))
	printCount("Headers", len(g.Headers))
	printCount("Other", len(g.Others))
	printKeyValue("Total bases", StyleNumber.Render(fmt.Sprintf("%d", bases)))

	if err := g.Validate(); err != nil {
		printWarning("Graph is inconsistent: %v", err)
		return nil
	}
	printSuccess("Graph is consistent")
	return nil
}

// printCount prints a labeled record count, skipping zero counts to keep
// the summary short.
func printCount(key string, n int) {
	if n == 0 {
		return
	}
	printKeyValue(key, StyleNumber.Render(fmt.Sprintf("%d", n)))
}
