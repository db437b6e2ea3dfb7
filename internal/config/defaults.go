package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Grid: GridConfig{
			Rows: 20,
			Cols: 10,
		},
		Speed: SpeedConfig{
			Initial: 1000,
			Step:    1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
