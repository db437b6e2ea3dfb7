package config

// SpeedPreset represents a named starting speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// InitialSpeedForPreset returns the initial speed for a preset.
// Unknown presets return 0.
func InitialSpeedForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedSlow:
		return 500
	case SpeedNormal:
		return 1000
	case SpeedFast:
		return 4000
	default:
		return 0
	}
}

// ApplySpeedPreset overrides the initial speed. An empty preset is a no-op.
func ApplySpeedPreset(cfg *BlockfallConfig, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	speed := InitialSpeedForPreset(preset)
	if speed == 0 {
		return ValidationError{
			Code:    "UNKNOWN_PRESET",
			Message: "unknown speed preset " + string(preset) + " (want slow, normal or fast)",
		}
	}
	cfg.Speed.Initial = speed
	return nil
}
