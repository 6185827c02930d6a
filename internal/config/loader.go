package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// clusterPopNames are the file names tried in each config directory.
var clusterPopNames = []string{"clusterpop.yaml", "clusterpop.yml", "clusterpop.toml"}

// LoadClusterPop loads Cluster Pop configuration.
// Search order: customPath -> ~/.arcade/configs/clusterpop.{yaml,yml,toml} ->
// ./configs/clusterpop.{yaml,yml,toml} -> embedded default.
//
// Files only need the keys they change; the rest keep their default values.
// An explicit customPath must exist, parse and validate. Files found in the
// search directories are best-effort: broken ones are skipped and values are
// clamped into range.
func LoadClusterPop(customPath string) (ClusterPopConfig, error) {
	if customPath != "" {
		cfg, err := loadClusterPopFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range clusterPopNames {
			cfg, err := loadClusterPopFile(filepath.Join(dir, name))
			if err == nil {
				cfg.Normalize()
				return cfg, nil
			}
		}
	}

	cfg := DefaultClusterPopConfig()
	if err := yaml.Unmarshal(defaultClusterPopYAML, &cfg); err != nil {
		return DefaultClusterPopConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// loadClusterPopFile reads one config file over the defaults.
func loadClusterPopFile(path string) (ClusterPopConfig, error) {
	cfg := DefaultClusterPopConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := decodeByExtension(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// decodeByExtension routes to the decoder for the file format.
func decodeByExtension(data []byte, ext string, v any) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	case ".toml":
		return toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported extension: %q", ext)
	}
}

// searchDirs returns the config directories in priority order.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if userDir := userConfigDir(); userDir != "" {
		dirs = append(dirs, userDir)
	}
	return append(dirs, "configs")
}

// userConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}
