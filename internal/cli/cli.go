// Package cli implements the gfakit command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gfakit/pkg/buildinfo"
	"github.com/matzehuels/gfakit/pkg/cache"
	"github.com/matzehuels/gfakit/pkg/gfa"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gfakit"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gfakit",
		Short:        "Gfakit inspects and edits GFA assembly graphs",
		Long:         `Gfakit is a CLI tool for working with genome assembly graphs in the GFA format family (rGFA, GFA1, GFA1.1, GFA1.2, GFA2): converting between sub-versions, splitting and merging segments, and rendering diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath())
			if err != nil {
				return err
			}
			c.Config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.splitCommand())
	root.AddCommand(c.mergeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/gfakit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Flag Helpers
// =============================================================================

// canonicalStyles are the spellings [gfa.ParseStyle] accepts.
var canonicalStyles = []string{"unknown", "rGFA", "GFA1", "GFA1.1", "GFA1.2", "GFA2"}

// parseStyleFlag converts a --style flag value into a GfaStyle via
// [gfa.ParseStyle], adding a case-insensitive layer on top. The empty
// string and "auto" mean the style is not fixed and should be inferred
// from the content.
func parseStyleFlag(s string) (gfa.GfaStyle, error) {
	if s == "" || strings.EqualFold(s, "auto") {
		return gfa.StyleUnknown, nil
	}
	for _, name := range canonicalStyles {
		if strings.EqualFold(s, name) {
			return gfa.ParseStyle(name)
		}
	}
	return gfa.StyleUnknown, fmt.Errorf("invalid style: %s (must be 'rGFA', 'GFA1', 'GFA1.1', 'GFA1.2', or 'GFA2')", s)
}

// splitList parses a comma-separated flag value into a slice, dropping
// empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// basePath derives a base output path from the output and input file
// paths: the output path with its extension stripped, or the input path
// with its extension stripped when no output was given.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	return strings.TrimSuffix(output, filepath.Ext(output))
}
