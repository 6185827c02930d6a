package config

import (
	_ "embed"
)

//go:embed defaults/clusterpop.yaml
var defaultClusterPopYAML []byte

// DefaultGlyph is drawn for filled cells when no glyph is configured.
const DefaultGlyph = '●'

// DefaultClusterPopConfig returns the default Cluster Pop configuration.
func DefaultClusterPopConfig() ClusterPopConfig {
	return ClusterPopConfig{
		Board: ClusterPopBoard{
			Seed: 0,
		},
		Scoring: ClusterPopScoring{
			ClearBonus: 0,
		},
		Display: ClusterPopDisplay{
			CellWidth:   3,
			ShowPreview: true,
			Glyph:       string(DefaultGlyph),
		},
		Controls: ClusterPopControls{
			MouseEnabled: true,
			WrapCursor:   true,
		},
	}
}
