// Package config provides layered YAML/TOML configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Cell width limits in terminal columns, including the one-column gutter.
const (
	MinCellWidth = 2
	MaxCellWidth = 4
)

// ClusterPopConfig contains all configuration for the Cluster Pop game.
type ClusterPopConfig struct {
	Board    ClusterPopBoard    `yaml:"board" toml:"board"`
	Scoring  ClusterPopScoring  `yaml:"scoring" toml:"scoring"`
	Display  ClusterPopDisplay  `yaml:"display" toml:"display"`
	Controls ClusterPopControls `yaml:"controls" toml:"controls"`
}

// ClusterPopBoard defines how boards are generated.
type ClusterPopBoard struct {
	// Seed pins every board to one sequence. 0 uses the runtime seed.
	Seed int64 `yaml:"seed" toml:"seed"`
}

// ClusterPopScoring defines scoring extras on top of size² per pop.
type ClusterPopScoring struct {
	ClearBonus int `yaml:"clear_bonus" toml:"clear_bonus"` // Awarded for emptying the board
}

// ClusterPopDisplay defines how the board is drawn.
type ClusterPopDisplay struct {
	CellWidth   int    `yaml:"cell_width" toml:"cell_width"`
	ShowPreview bool   `yaml:"show_preview" toml:"show_preview"` // Highlight the cluster under the cursor
	Glyph       string `yaml:"glyph" toml:"glyph"`
}

// ClusterPopControls defines input options.
type ClusterPopControls struct {
	MouseEnabled bool `yaml:"mouse_enabled" toml:"mouse_enabled"`
	WrapCursor   bool `yaml:"wrap_cursor" toml:"wrap_cursor"`
}

// GlyphRune returns the rune used for filled cells.
func (d ClusterPopDisplay) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Glyph)
	if r == utf8.RuneError {
		return DefaultGlyph
	}
	return r
}

// Validate reports every out-of-range value in the config.
func (c ClusterPopConfig) Validate() error {
	var errs []error

	if w := c.Display.CellWidth; w < MinCellWidth || w > MaxCellWidth {
		errs = append(errs, fmt.Errorf("display.cell_width %d not in [%d, %d]", w, MinCellWidth, MaxCellWidth))
	}
	if utf8.RuneCountInString(c.Display.Glyph) != 1 {
		errs = append(errs, fmt.Errorf("display.glyph %q must be a single character", c.Display.Glyph))
	}
	if c.Scoring.ClearBonus < 0 {
		errs = append(errs, fmt.Errorf("scoring.clear_bonus %d must not be negative", c.Scoring.ClearBonus))
	}

	return errors.Join(errs...)
}

// Normalize clamps out-of-range values to the nearest usable setting.
func (c *ClusterPopConfig) Normalize() {
	c.Display.CellWidth = min(max(c.Display.CellWidth, MinCellWidth), MaxCellWidth)
	if utf8.RuneCountInString(c.Display.Glyph) != 1 {
		c.Display.Glyph = string(c.Display.GlyphRune())
	}
	c.Scoring.ClearBonus = max(c.Scoring.ClearBonus, 0)
}
