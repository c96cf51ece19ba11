// Package config provides YAML-based configuration loading, difficulty
// presets and live reloading for the runner.
package config

// WalkConfig contains all tuning for the runner.
type WalkConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	World   WorldConfig   `yaml:"world"`
	Input   InputConfig   `yaml:"input"`
	Debug   DebugConfig   `yaml:"debug"`
}

// PhysicsConfig defines the player's motion constants.
type PhysicsConfig struct {
	Gravity          int `yaml:"gravity"`           // Added to vertical velocity every tick
	TerminalVelocity int `yaml:"terminal_velocity"` // Gravity stops accelerating here
	RunningSpeed     int `yaml:"running_speed"`     // World scroll speed while running
	JumpSpeed        int `yaml:"jump_speed"`        // Takeoff velocity, negative is up
	Floor            int `yaml:"floor"`             // Lowest y of the player's position
	PlayerHeight     int `yaml:"player_height"`     // Position to feet distance
	StartingX        int `yaml:"starting_x"`        // Horizontal position of a fresh player
}

// WorldConfig defines the playfield and obstacle stream.
type WorldConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	TimelineMinimum int `yaml:"timeline_minimum"` // Generate more obstacles below this x
	ObstacleBuffer  int `yaml:"obstacle_buffer"`  // Gap before each new segment
	TickRate        int `yaml:"tick_rate"`        // Fixed simulation steps per second
}

// InputConfig defines how terminal key presses become held keys.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long one press counts as held
}

// DebugConfig toggles debug drawing at startup.
type DebugConfig struct {
	Enabled bool `yaml:"enabled"`
}
