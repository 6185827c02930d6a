package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolate points the search directories at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := ClusterPopConfig{}
	if err := yaml.Unmarshal(defaultClusterPopYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultClusterPopConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultClusterPopConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadClusterPopFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadClusterPop("")
	if err != nil {
		t.Fatalf("LoadClusterPop() failed: %v", err)
	}
	if cfg != DefaultClusterPopConfig() {
		t.Errorf("LoadClusterPop() = %+v, expected defaults", cfg)
	}
}

func TestLoadClusterPopCustomPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "custom.yaml",
			content: `
scoring:
  clear_bonus: 500
display:
  cell_width: 2
`,
		},
		{
			name: "toml",
			file: "custom.toml",
			content: `
[scoring]
clear_bonus = 500

[display]
cell_width = 2
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			writeFile(t, path, tc.content)

			cfg, err := LoadClusterPop(path)
			if err != nil {
				t.Fatalf("LoadClusterPop(%s) failed: %v", tc.file, err)
			}
			if cfg.Scoring.ClearBonus != 500 || cfg.Display.CellWidth != 2 {
				t.Errorf("values not loaded: %+v", cfg)
			}
			// Keys missing from the file keep their defaults
			if cfg.Display.Glyph != string(DefaultGlyph) || !cfg.Controls.MouseEnabled {
				t.Errorf("missing keys should keep defaults: %+v", cfg)
			}
		})
	}
}

func TestLoadClusterPopCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), "display: [not a map")
	writeFile(t, filepath.Join(dir, "cfg.json"), "{}")
	writeFile(t, filepath.Join(dir, "wide.yaml"), "display:\n  cell_width: 9\n")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"broken yaml", filepath.Join(dir, "bad.yaml"), "failed to parse"},
		{"unknown extension", filepath.Join(dir, "cfg.json"), "unsupported extension"},
		{"out of range", filepath.Join(dir, "wide.yaml"), "cell_width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadClusterPop(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadClusterPopSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "clusterpop.toml"), "[board]\nseed = 7\n")
	cfg, err := LoadClusterPop("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.Seed != 7 {
		t.Errorf("local config not used, seed = %d", cfg.Board.Seed)
	}

	// The user directory wins over ./configs
	writeFile(t, filepath.Join(home, ".arcade", "configs", "clusterpop.yaml"), "board:\n  seed: 9\ndisplay:\n  cell_width: 99\n")
	cfg, err = LoadClusterPop("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.Seed != 9 {
		t.Errorf("user config not preferred, seed = %d", cfg.Board.Seed)
	}
	if cfg.Display.CellWidth != MaxCellWidth {
		t.Errorf("searched configs should be clamped, cell_width = %d", cfg.Display.CellWidth)
	}
}

func TestLoadClusterPopSkipsBrokenSearchFiles(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "clusterpop.yaml"), "{{{")

	cfg, err := LoadClusterPop("")
	if err != nil {
		t.Fatalf("broken search files should be skipped, got %v", err)
	}
	if cfg != DefaultClusterPopConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*ClusterPopConfig)
		check func(ClusterPopConfig) bool
	}{
		{
			name:  "narrow cells",
			edit:  func(c *ClusterPopConfig) { c.Display.CellWidth = 0 },
			check: func(c ClusterPopConfig) bool { return c.Display.CellWidth == MinCellWidth },
		},
		{
			name:  "wide cells",
			edit:  func(c *ClusterPopConfig) { c.Display.CellWidth = 12 },
			check: func(c ClusterPopConfig) bool { return c.Display.CellWidth == MaxCellWidth },
		},
		{
			name:  "negative bonus",
			edit:  func(c *ClusterPopConfig) { c.Scoring.ClearBonus = -3 },
			check: func(c ClusterPopConfig) bool { return c.Scoring.ClearBonus == 0 },
		},
		{
			name:  "empty glyph",
			edit:  func(c *ClusterPopConfig) { c.Display.Glyph = "" },
			check: func(c ClusterPopConfig) bool { return c.Display.Glyph == string(DefaultGlyph) },
		},
		{
			name:  "long glyph keeps first rune",
			edit:  func(c *ClusterPopConfig) { c.Display.Glyph = "#@" },
			check: func(c ClusterPopConfig) bool { return c.Display.Glyph == "#" },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultClusterPopConfig()
			tc.edit(&cfg)
			if cfg.Validate() == nil {
				t.Error("Validate() should reject the edited config")
			}

			cfg.Normalize()
			if !tc.check(cfg) {
				t.Errorf("Normalize() result %+v", cfg)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("normalized config should validate: %v", err)
			}
		})
	}
}
