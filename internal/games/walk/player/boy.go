package player

import (
	"fmt"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// Hit-box inset from the sprite's visual box.
const (
	hitBoxOffsetX     = 18
	hitBoxOffsetY     = 14
	hitBoxWidthInset  = 28
	hitBoxHeightInset = hitBoxOffsetY
)

// RedHatBoy is the player character: the state machine plus the sprite
// sheet it is drawn from.
type RedHatBoy struct {
	machine Machine
	sheet   engine.Sheet
	image   *engine.Image
}

// New creates an Idle player. Every animation frame must exist in sheet.
func New(sheet engine.Sheet, image *engine.Image, phys Physics, audio engine.Audio, jumpSound engine.Sound) (*RedHatBoy, error) {
	if image == nil {
		return nil, fmt.Errorf("player: sprite image is required")
	}
	for _, a := range Animations() {
		for frame := 0; frame <= a.Frames; frame++ {
			if _, err := sheet.Cell(FrameName(a, frame)); err != nil {
				return nil, fmt.Errorf("player: %w", err)
			}
		}
	}
	return &RedHatBoy{
		machine: NewMachine(phys, audio, jumpSound),
		sheet:   sheet,
		image:   image,
	}, nil
}

// Reset builds a fresh Idle player that reuses b's sheet, image, physics and
// audio handles.
func Reset(b *RedHatBoy) *RedHatBoy {
	return ResetWithPhysics(b, b.machine.Context().Physics())
}

// ResetWithPhysics is Reset with new tuning.
func ResetWithPhysics(b *RedHatBoy, phys Physics) *RedHatBoy {
	ctx := b.machine.Context()
	return &RedHatBoy{
		machine: NewMachine(phys, ctx.Audio(), ctx.JumpSound()),
		sheet:   b.sheet,
		image:   b.image,
	}
}

// FrameName returns the sprite cell shown for frame of animation a.
// Each cell is held for three ticks.
func FrameName(a Animation, frame int) string {
	return fmt.Sprintf("%s (%d).png", a.Name, frame/3+1)
}

// Kind returns the active state.
func (b *RedHatBoy) Kind() Kind {
	return b.machine.Kind()
}

// Context returns a copy of the active state's context.
func (b *RedHatBoy) Context() Context {
	return b.machine.Context()
}

// WalkingSpeed returns the horizontal velocity.
func (b *RedHatBoy) WalkingSpeed() int {
	return b.machine.Context().Velocity.X
}

// VelocityY returns the vertical velocity (positive is down).
func (b *RedHatBoy) VelocityY() int {
	return b.machine.Context().Velocity.Y
}

// PositionY returns the vertical position.
func (b *RedHatBoy) PositionY() int {
	return b.machine.Context().Position.Y
}

// KnockedOut reports whether the player reached the terminal state.
func (b *RedHatBoy) KnockedOut() bool {
	return b.machine.KnockedOut()
}

// Apply feeds an event to the state machine.
func (b *RedHatBoy) Apply(ev Event) {
	b.machine = b.machine.Transition(ev)
}

// Update advances one simulation tick.
func (b *RedHatBoy) Update() { b.Apply(Update{}) }

// RunRight starts running.
func (b *RedHatBoy) RunRight() { b.Apply(Run{}) }

// Slide starts or holds a slide.
func (b *RedHatBoy) Slide() { b.Apply(Slide{}) }

// Jump launches the player.
func (b *RedHatBoy) Jump() { b.Apply(Jump{}) }

// LandOn puts the player's feet on a surface whose top is at y.
func (b *RedHatBoy) LandOn(y int) { b.Apply(Land{Y: y}) }

// KnockOut starts the death animation.
func (b *RedHatBoy) KnockOut() { b.Apply(KnockOut{}) }

// FrameName returns the sprite cell for the current frame.
func (b *RedHatBoy) FrameName() string {
	ctx := b.machine.Context()
	return FrameName(ctx.Animation, ctx.Frame)
}

func (b *RedHatBoy) currentCell() engine.Cell {
	// Cells were validated in New, so a miss cannot happen.
	cell, _ := b.sheet.Cell(b.FrameName())
	return cell
}

// DestinationBox returns the world rectangle the current sprite covers.
func (b *RedHatBoy) DestinationBox() core.Rect {
	cell := b.currentCell()
	offset := core.Point{X: cell.SpriteSourceSize.X, Y: cell.SpriteSourceSize.Y}
	return core.RectAt(b.machine.Context().Position.Add(offset), cell.Frame.W, cell.Frame.H)
}

// BoundingBox returns the hit-box used for collisions.
func (b *RedHatBoy) BoundingBox() core.Rect {
	box := b.DestinationBox()
	box.X += hitBoxOffsetX
	box.W -= hitBoxWidthInset
	box.Y += hitBoxOffsetY
	box.H -= hitBoxHeightInset
	return box
}

// Draw renders the current sprite, plus its hit-box when debug is set.
func (b *RedHatBoy) Draw(r engine.Renderer, debug bool) {
	r.DrawImage(b.image, b.currentCell().Frame.Rect(), b.DestinationBox())
	if debug {
		r.DrawOutline(b.BoundingBox())
	}
}
