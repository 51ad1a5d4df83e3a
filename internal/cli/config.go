package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences read from gfakit.toml. Every field has
// a working default, so the config file is optional.
type Config struct {
	// DefaultStyle fixes the GFA sub-version assumed when a command is
	// run without --style. Empty means infer from the content.
	DefaultStyle string `toml:"default_style"`

	// KeepSequences controls whether segment sequences are retained in
	// memory. Disabling it reduces memory use on large assemblies;
	// saved files then carry N-filled sequences.
	KeepSequences bool `toml:"keep_sequences"`

	// RenderFormat is the default output format of the render command.
	RenderFormat string `toml:"render_format"`
}

// DefaultConfig returns the configuration used when no config file
// exists.
func DefaultConfig() *Config {
	return &Config{
		KeepSequences: true,
		RenderFormat:  "svg",
	}
}

// configPath returns the config file location using XDG standard
// (~/.config/gfakit/gfakit.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "gfakit.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "gfakit.toml")
}

// LoadConfig reads the config file at path on top of the defaults. A
// missing file is not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if cfg.DefaultStyle != "" {
		if _, err := parseStyleFlag(cfg.DefaultStyle); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return cfg, nil
}
