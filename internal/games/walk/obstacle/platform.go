package obstacle

import (
	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// Platform is a row of sprite sheet cells drawn side by side, with its own
// list of collision boxes. The player can land on top of it; hitting it from
// the side or from below is fatal.
type Platform struct {
	sheet    *engine.SpriteSheet
	cells    []engine.Cell
	position core.Point
	boxes    []core.Rect
}

// NewPlatform creates a platform at position. Each box is given relative to
// position and is stored in world coordinates. Box order decides which box
// wins when the player overlaps several.
func NewPlatform(sheet *engine.SpriteSheet, cells []engine.Cell, position core.Point, boxes []core.Rect) *Platform {
	world := make([]core.Rect, len(boxes))
	for i, b := range boxes {
		world[i] = b.Translate(position.X, position.Y)
	}
	return &Platform{
		sheet:    sheet,
		cells:    cells,
		position: position,
		boxes:    world,
	}
}

func (*Platform) sealed() {}

// Position returns the platform's top-left corner.
func (p *Platform) Position() core.Point {
	return p.position
}

// RightEdge implements Obstacle. A platform without boxes reports its left edge.
func (p *Platform) RightEdge() int {
	right := p.position.X
	for _, b := range p.boxes {
		right = max(right, b.Right())
	}
	return right
}

// Translate implements Obstacle.
func (p *Platform) Translate(dx int) {
	p.position.X += dx
	for i := range p.boxes {
		p.boxes[i].X += dx
	}
}

// CheckCollision implements Obstacle. Only the first overlapping box counts.
func (p *Platform) CheckCollision(c Collider) {
	hit := c.BoundingBox()
	for _, box := range p.boxes {
		if !hit.Intersects(box) {
			continue
		}
		if c.VelocityY() >= 0 && hit.Top() < box.Top() {
			c.LandOn(box.Top())
		} else {
			c.KnockOut()
		}
		return
	}
}

// Boxes implements Obstacle.
func (p *Platform) Boxes() []core.Rect {
	out := make([]core.Rect, len(p.boxes))
	copy(out, p.boxes)
	return out
}

// Draw implements Obstacle.
func (p *Platform) Draw(r engine.Renderer, debug bool) {
	x := p.position.X
	for _, cell := range p.cells {
		dst := core.NewRect(x, p.position.Y, cell.Frame.W, cell.Frame.H)
		p.sheet.Draw(r, cell.Frame.Rect(), dst)
		x += cell.Frame.W
	}
	if debug {
		for _, b := range p.boxes {
			r.DrawOutline(b)
		}
	}
}
