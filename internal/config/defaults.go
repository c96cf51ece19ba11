package config

import (
	_ "embed"
)

//go:embed defaults/walk.yaml
var defaultWalkYAML []byte

// DefaultWalkConfig returns the default runner configuration.
func DefaultWalkConfig() WalkConfig {
	return WalkConfig{
		Physics: PhysicsConfig{
			Gravity:          1,
			TerminalVelocity: 20,
			RunningSpeed:     4,
			JumpSpeed:        -25,
			Floor:            479,
			PlayerHeight:     121,
			StartingX:        -20,
		},
		World: WorldConfig{
			Width:           600,
			Height:          600,
			TimelineMinimum: 1000,
			ObstacleBuffer:  20,
			TickRate:        60,
		},
		Input: InputConfig{
			HoldMS: 150,
		},
	}
}
