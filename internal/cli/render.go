package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gfakit/pkg/cache"
	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path (default: derived from input)
	format   string // output format: "svg", "png", "dot"
	style    string // sub-version to parse as
	detailed bool   // show decoded record fields in node labels
	noCache  bool   // bypass the artifact cache
}

// validRenderFormats is the set of supported render output formats.
var validRenderFormats = map[string]bool{"svg": true, "png": true, "dot": true}

// renderCommand creates the render command for generating diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph to an SVG or PNG diagram",
		Long: `Render an assembly graph with Graphviz. Segments become boxes sized by
sequence length. When the graph carries paths or walks, edges follow
the traversals and each one gets its own color; otherwise the raw
links are drawn.

Finished artifacts are cached under ~/.cache/gfakit/ keyed by the
input bytes and render options, so re-rendering an unchanged graph is
instant. Use --no-cache to force a fresh render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format == "" {
				opts.format = c.Config.RenderFormat
			}
			if !validRenderFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'dot')", opts.format)
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runRender(ctx, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), png, dot")
	cmd.Flags().StringVar(&opts.style, "style", "", "sub-version to parse as (default: infer)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show decoded record fields in node labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	raw, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = basePath("", input) + "." + opts.format
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	key := cache.Key("render", cache.Hash(raw), opts.format, opts.detailed)
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		logger.Debugf("Cache hit for %s", input)
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return err
		}
		printSuccess("Rendered %s", input)
		printFile(outputPath)
		printDetail(iconCached)
		return nil
	}

	g, err := c.parseForRender(ctx, raw, opts.style)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	data, err := renderGraph(g, opts)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %s (%d bytes)", opts.format, len(data)))

	if err := store.Set(ctx, key, data, 0); err != nil {
		logger.Debugf("Cache write failed: %v", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}
	printSuccess("Rendered %s", input)
	printFile(outputPath)
	printGraphStats(len(g.Segments), len(g.Lines), false)
	return nil
}

// parseForRender parses the already-read input bytes. Sequences are
// never needed for drawing, so they are always dropped.
func (c *CLI) parseForRender(ctx context.Context, raw []byte, styleFlag string) (*gfa.Graph, error) {
	styleName := styleFlag
	if styleName == "" {
		styleName = c.Config.DefaultStyle
	}
	style, err := parseStyleFlag(styleName)
	if err != nil {
		return nil, err
	}
	g, err := gfa.Parse(bytes.NewReader(raw), style, gfa.Options{})
	if err != nil {
		return nil, err
	}
	if g.Version == gfa.StyleUnknown {
		g.InferStyle()
	}
	return g, nil
}

// renderGraph converts the graph to DOT and dispatches on the output
// format.
func renderGraph(g *gfa.Graph, opts *renderOpts) ([]byte, error) {
	dot := render.ToDOT(g, render.Options{Detailed: opts.detailed})
	switch opts.format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		return render.RenderSVG(dot)
	case "png":
		return render.RenderPNG(dot)
	}
	return nil, fmt.Errorf("unknown format: %s", opts.format)
}
