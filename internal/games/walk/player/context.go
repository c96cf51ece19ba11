package player

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// Physics holds the tuning constants for the player's motion.
type Physics struct {
	Gravity          int // Added to vertical velocity every tick
	TerminalVelocity int // Gravity stops accelerating at this vertical velocity
	RunningSpeed     int // Horizontal velocity added when the player starts running
	JumpSpeed        int // Vertical velocity at takeoff (negative is up)
	Floor            int // Lowest y the player's position can reach
	Height           int // Distance from the player's position to its feet
	StartX           int // Horizontal position of a fresh player
}

// DefaultPhysics returns the stock tuning.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:          1,
		TerminalVelocity: 20,
		RunningSpeed:     4,
		JumpSpeed:        -25,
		Floor:            479,
		Height:           121,
		StartX:           -20,
	}
}

// Ground returns the y of the surface the player stands on at the floor.
func (p Physics) Ground() int {
	return p.Floor + p.Height
}

// Animation names a sprite animation and how many ticks it spans.
type Animation struct {
	Name   string
	Frames int
}

// Animations used by the player.
var (
	IdleAnimation  = Animation{Name: "Idle", Frames: 29}
	RunAnimation   = Animation{Name: "Run", Frames: 23}
	SlideAnimation = Animation{Name: "Slide", Frames: 14}
	JumpAnimation  = Animation{Name: "Jump", Frames: 35}
	DeadAnimation  = Animation{Name: "Dead", Frames: 29}
)

// Animations lists every animation the player can show.
func Animations() []Animation {
	return []Animation{IdleAnimation, RunAnimation, SlideAnimation, JumpAnimation, DeadAnimation}
}

// Context is the animation and physics state carried by every player state.
// It is a value: transitions build a new context instead of mutating one
// that another state still refers to.
type Context struct {
	Animation Animation
	Frame     int
	Position  core.Point
	Velocity  core.Point
	Hold      bool

	physics   Physics
	audio     engine.Audio
	jumpSound engine.Sound
}

func newContext(phys Physics, audio engine.Audio, jumpSound engine.Sound) Context {
	if audio == nil {
		audio = engine.SilentAudio{}
	}
	return Context{
		Animation: IdleAnimation,
		Position:  core.Point{X: phys.StartX, Y: phys.Floor},
		physics:   phys,
		audio:     audio,
		jumpSound: jumpSound,
	}
}

// Physics returns the tuning this context integrates with.
func (c Context) Physics() Physics {
	return c.physics
}

// Audio returns the audio handle the context plays through.
func (c Context) Audio() engine.Audio {
	return c.audio
}

// JumpSound returns the sound played on takeoff.
func (c Context) JumpSound() engine.Sound {
	return c.jumpSound
}

// framesEnded reports whether the current animation has played through.
func (c Context) framesEnded() bool {
	return c.Frame >= c.Animation.Frames
}

// update advances one fixed tick: animation frame, gravity, vertical
// integration and the floor clamp. The hold flag only survives a single tick.
func (c Context) update() Context {
	c.Hold = false
	if c.Frame < c.Animation.Frames {
		c.Frame++
	} else {
		c.Frame = 0
	}

	if c.Velocity.Y < c.physics.TerminalVelocity {
		c.Velocity.Y += c.physics.Gravity
		if c.Velocity.Y > c.physics.TerminalVelocity {
			c.Velocity.Y = c.physics.TerminalVelocity
		}
	}

	// Horizontal velocity scrolls the world instead of moving the player.
	c.Position.Y += c.Velocity.Y
	if c.Position.Y > c.physics.Floor {
		c.Position.Y = c.physics.Floor
	}
	return c
}

func (c Context) resetFrame(a Animation) Context {
	c.Animation = a
	c.Frame = 0
	return c
}

func (c Context) runRight() Context {
	c.Velocity.X += c.physics.RunningSpeed
	return c
}

func (c Context) setVerticalVelocity(y int) Context {
	c.Velocity.Y = y
	return c
}

// setOn places the player's feet on the surface at y.
func (c Context) setOn(y int) Context {
	c.Position.Y = y - c.physics.Height
	return c
}

func (c Context) stop() Context {
	c.Velocity.X = 0
	if c.Velocity.Y < 0 {
		c.Velocity.Y = 0
	}
	return c
}

func (c Context) playJumpSound() Context {
	if err := c.audio.PlaySound(c.jumpSound); err != nil {
		log.Warn("could not play jump sound", "sound", c.jumpSound.Name, "err", err)
	}
	return c
}
