package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the runner's config file name.
const FileName = "walk.yaml"

// LoadWalk loads the runner configuration.
// Search order: customPath -> ~/.walk/configs/walk.yaml -> ./configs/walk.yaml -> embedded default
func LoadWalk(customPath string) (WalkConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WalkConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return WalkConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultWalkYAML)
	if err != nil {
		return DefaultWalkConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, so a file only needs the keys it
// changes, and validates the result.
func Parse(data []byte) (WalkConfig, error) {
	cfg := DefaultWalkConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WalkConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return WalkConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c WalkConfig) Validate() error {
	var errs []error
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %d", c.Physics.Gravity))
	}
	if c.Physics.TerminalVelocity < c.Physics.Gravity {
		errs = append(errs, fmt.Errorf("physics.terminal_velocity must be at least gravity, got %d", c.Physics.TerminalVelocity))
	}
	if c.Physics.RunningSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.running_speed must be positive, got %d", c.Physics.RunningSpeed))
	}
	if c.Physics.JumpSpeed >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_speed must be negative, got %d", c.Physics.JumpSpeed))
	}
	if c.Physics.PlayerHeight <= 0 {
		errs = append(errs, fmt.Errorf("physics.player_height must be positive, got %d", c.Physics.PlayerHeight))
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.Physics.Floor+c.Physics.PlayerHeight > c.World.Height {
		errs = append(errs, fmt.Errorf("physics.floor %d puts the player below the world", c.Physics.Floor))
	}
	if c.World.TimelineMinimum <= 0 {
		errs = append(errs, fmt.Errorf("world.timeline_minimum must be positive, got %d", c.World.TimelineMinimum))
	}
	if c.World.ObstacleBuffer < 0 {
		errs = append(errs, fmt.Errorf("world.obstacle_buffer must not be negative, got %d", c.World.ObstacleBuffer))
	}
	if c.World.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("world.tick_rate must be positive, got %d", c.World.TickRate))
	}
	if c.Input.HoldMS <= 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must be positive, got %d", c.Input.HoldMS))
	}
	return errors.Join(errs...)
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".walk", "configs", filename)
}
