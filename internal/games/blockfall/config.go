package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/config"
)

// BackgroundFromConfig builds the settled grid described by cfg, with the
// configured obstacles and, when enabled, the debug block.
func BackgroundFromConfig(cfg config.BlockfallConfig) (*Grid, error) {
	bg := NewGrid(cfg.Grid.Rows, cfg.Grid.Cols)
	for _, o := range cfg.AllObstacles() {
		if !bg.InBounds(o.Row, o.Col) {
			return nil, fmt.Errorf("obstacle at row %d col %d is outside the %dx%d grid", o.Row, o.Col, bg.Rows(), bg.Cols())
		}
		color, err := config.ObstacleColor(o)
		if err != nil {
			return nil, err
		}
		bg.Set(o.Row, o.Col, Filled(color))
	}
	return bg, nil
}

// NewFromConfig creates a game from a validated configuration. Extra
// options are applied after the configured ones.
func NewFromConfig(cfg config.BlockfallConfig, opts ...Option) (*Game, error) {
	bg, err := BackgroundFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build background: %w", err)
	}
	base := []Option{
		WithBackground(bg),
		WithSpeed(cfg.Speed.Initial),
		WithSpeedStep(cfg.Speed.Step),
	}
	return New(append(base, opts...)...), nil
}
