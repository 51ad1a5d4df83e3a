package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.KeepSequences {
		t.Error("default config should keep sequences")
	}
	if cfg.RenderFormat != "svg" {
		t.Errorf("default render format = %q, want svg", cfg.RenderFormat)
	}
	if cfg.DefaultStyle != "" {
		t.Errorf("default style should be empty (infer), got %q", cfg.DefaultStyle)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if !cfg.KeepSequences {
		t.Error("missing file should fall back to defaults")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gfakit.toml")
	content := "default_style = \"GFA1.1\"\nkeep_sequences = false\nrender_format = \"png\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.DefaultStyle != "GFA1.1" {
		t.Errorf("DefaultStyle = %q, want GFA1.1", cfg.DefaultStyle)
	}
	if cfg.KeepSequences {
		t.Error("KeepSequences should be false")
	}
	if cfg.RenderFormat != "png" {
		t.Errorf("RenderFormat = %q, want png", cfg.RenderFormat)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gfakit.toml")
	if err := os.WriteFile(path, []byte("render_format = \"dot\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	// Unset keys keep their defaults
	if !cfg.KeepSequences {
		t.Error("KeepSequences should default to true")
	}
	if cfg.RenderFormat != "dot" {
		t.Errorf("RenderFormat = %q, want dot", cfg.RenderFormat)
	}
}

func TestLoadConfigBadStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gfakit.toml")
	if err := os.WriteFile(path, []byte("default_style = \"GFA9\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should reject an unknown style name")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gfakit.toml")
	if err := os.WriteFile(path, []byte("not toml ="), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should fail on malformed TOML")
	}
}
