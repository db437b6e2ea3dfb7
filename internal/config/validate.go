package config

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Smallest playfield that fits every piece in every orientation.
const (
	minRows = 4
	minCols = 4
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks grid dimensions, speed settings and obstacle cells.
// Speeds may be zero or negative at runtime but must start positive.
func (c BlockfallConfig) Validate() error {
	if c.Grid.Rows < minRows || c.Grid.Cols < minCols {
		return ValidationError{
			Code:    "GRID_TOO_SMALL",
			Message: fmt.Sprintf("grid %dx%d is smaller than %dx%d", c.Grid.Rows, c.Grid.Cols, minRows, minCols),
		}
	}
	if c.Speed.Initial <= 0 {
		return ValidationError{
			Code:    "INVALID_SPEED",
			Message: fmt.Sprintf("initial speed must be positive, got %d", c.Speed.Initial),
		}
	}
	if c.Speed.Step <= 0 {
		return ValidationError{
			Code:    "INVALID_SPEED_STEP",
			Message: fmt.Sprintf("speed step must be positive, got %d", c.Speed.Step),
		}
	}

	bounds := core.NewRect(0, 0, c.Grid.Cols, c.Grid.Rows)
	for i, o := range c.AllObstacles() {
		if !bounds.Contains(o.Col, o.Row) {
			return ValidationError{
				Code:    "OBSTACLE_OUT_OF_BOUNDS",
				Message: fmt.Sprintf("obstacle %d at row %d col %d is outside the grid", i, o.Row, o.Col),
			}
		}
		if _, err := ObstacleColor(o); err != nil {
			return err
		}
	}
	return nil
}

// ObstacleColor resolves an obstacle's color, defaulting to cyan.
func ObstacleColor(o Obstacle) (core.Color, error) {
	if o.Color == "" {
		return core.ColorCyan, nil
	}
	c, ok := core.ParseColor(o.Color)
	if !ok || c == core.ColorDefault {
		return core.ColorDefault, ValidationError{
			Code:    "INVALID_COLOR",
			Message: fmt.Sprintf("obstacle at row %d col %d has unknown color %q", o.Row, o.Col, o.Color),
		}
	}
	return c, nil
}
