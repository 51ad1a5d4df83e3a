package cli

import (
	"io"
	"reflect"
	"testing"

	"github.com/matzehuels/gfakit/pkg/gfa"
)

func TestParseStyleFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    gfa.GfaStyle
		wantErr bool
	}{
		{"", gfa.StyleUnknown, false},
		{"auto", gfa.StyleUnknown, false},
		{"rGFA", gfa.StyleRGFA, false},
		{"rgfa", gfa.StyleRGFA, false},
		{"GFA1", gfa.StyleGFA1, false},
		{"gfa1.1", gfa.StyleGFA11, false},
		{"GFA1.2", gfa.StyleGFA12, false},
		{"GFA2", gfa.StyleGFA2, false},
		{"GFA3", gfa.StyleUnknown, true},
		{"fasta", gfa.StyleUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseStyleFlag(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseStyleFlag(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseStyleFlag(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStyleFlagMatchesParseStyle(t *testing.T) {
	// The flag layer only adds case folding and "auto"; every canonical
	// spelling must resolve exactly as the library does.
	for _, name := range []string{"rGFA", "GFA1", "GFA1.1", "GFA1.2", "GFA2"} {
		want, err := gfa.ParseStyle(name)
		if err != nil {
			t.Fatalf("ParseStyle(%q) error: %v", name, err)
		}
		got, err := parseStyleFlag(name)
		if err != nil {
			t.Fatalf("parseStyleFlag(%q) error: %v", name, err)
		}
		if got != want {
			t.Errorf("parseStyleFlag(%q) = %v, ParseStyle = %v", name, got, want)
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{"a, b , c", []string{"a", "b", "c"}},
		{"a,,b", []string{"a", "b"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseOffsets(t *testing.T) {
	got, err := parseOffsets("2, 5,9")
	if err != nil {
		t.Fatalf("parseOffsets() error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{2, 5, 9}) {
		t.Errorf("parseOffsets() = %v, want [2 5 9]", got)
	}

	if _, err := parseOffsets("2,x"); err == nil {
		t.Error("parseOffsets() should reject non-numeric offsets")
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"convert":    false,
		"stats":      false,
		"split":      false,
		"merge":      false,
		"render":     false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("log level = %v, want debug", c.Logger.GetLevel())
	}
}
