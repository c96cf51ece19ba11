package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. The empty string is normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyWalkPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyWalkPreset(cfg *WalkConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.RunningSpeed = max(cfg.Physics.RunningSpeed-1, 1)
		cfg.World.ObstacleBuffer += 150
	case DifficultyHard:
		cfg.Physics.RunningSpeed += 2
		cfg.World.ObstacleBuffer = 0
	}
}
