// Package obstacle implements the things the player can land on or run into.
// The set of obstacle kinds is closed: Platform and Barrier.
package obstacle

import (
	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// Collider is the player as seen by an obstacle.
type Collider interface {
	BoundingBox() core.Rect
	VelocityY() int
	LandOn(y int)
	KnockOut()
}

// Obstacle is implemented only by *Platform and *Barrier.
type Obstacle interface {
	// RightEdge returns the world x of the obstacle's rightmost extent.
	RightEdge() int

	// Translate moves the obstacle horizontally by dx.
	Translate(dx int)

	// CheckCollision resolves contact between the obstacle and c, issuing
	// LandOn or KnockOut to c as needed.
	CheckCollision(c Collider)

	// Boxes returns the obstacle's collision boxes in world coordinates.
	Boxes() []core.Rect

	// Draw renders the obstacle, outlining its boxes when debug is set.
	Draw(r engine.Renderer, debug bool)

	sealed()
}

// Barrier is a single solid image. Touching it always knocks the player out.
type Barrier struct {
	sprite engine.Sprite
}

// NewBarrier places image with its top-left corner at position.
func NewBarrier(image *engine.Image, position core.Point) *Barrier {
	return &Barrier{sprite: engine.NewSprite(image, position)}
}

func (*Barrier) sealed() {}

// RightEdge implements Obstacle.
func (b *Barrier) RightEdge() int {
	return b.sprite.Right()
}

// Translate implements Obstacle.
func (b *Barrier) Translate(dx int) {
	b.sprite.MoveHorizontally(dx)
}

// CheckCollision implements Obstacle.
func (b *Barrier) CheckCollision(c Collider) {
	if c.BoundingBox().Intersects(b.sprite.BoundingBox()) {
		c.KnockOut()
	}
}

// Boxes implements Obstacle.
func (b *Barrier) Boxes() []core.Rect {
	return []core.Rect{b.sprite.BoundingBox()}
}

// Draw implements Obstacle.
func (b *Barrier) Draw(r engine.Renderer, debug bool) {
	b.sprite.Draw(r)
	if debug {
		r.DrawOutline(b.sprite.BoundingBox())
	}
}
