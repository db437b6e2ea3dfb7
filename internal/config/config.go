// Package config provides YAML-based configuration loading and speed
// presets for the blockfall engine.
package config

// BlockfallConfig contains all configuration for the engine.
type BlockfallConfig struct {
	Grid      GridConfig  `yaml:"grid"`
	Speed     SpeedConfig `yaml:"speed"`
	Debug     DebugConfig `yaml:"debug"`
	Obstacles []Obstacle  `yaml:"obstacles"`
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SpeedConfig defines the fall timer cadence.
type SpeedConfig struct {
	Initial int `yaml:"initial"` // Tick interval is 1_000_000/Initial ms
	Step    int `yaml:"step"`    // Change per speed command
}

// DebugConfig toggles development aids.
type DebugConfig struct {
	Obstacle bool `yaml:"obstacle"` // Seed the 2x2 block at rows 10-11, cols 4-5
}

// Obstacle is a settled cell placed on the background before play.
type Obstacle struct {
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Color string `yaml:"color,omitempty"` // Defaults to cyan
}

// DebugObstacles returns the cells seeded by debug.obstacle.
func DebugObstacles() []Obstacle {
	return []Obstacle{
		{Row: 10, Col: 4, Color: "cyan"},
		{Row: 10, Col: 5, Color: "cyan"},
		{Row: 11, Col: 4, Color: "cyan"},
		{Row: 11, Col: 5, Color: "cyan"},
	}
}

// AllObstacles returns the configured obstacles plus the debug block when enabled.
func (c BlockfallConfig) AllObstacles() []Obstacle {
	obstacles := append([]Obstacle(nil), c.Obstacles...)
	if c.Debug.Obstacle {
		obstacles = append(obstacles, DebugObstacles()...)
	}
	return obstacles
}
