package engine

import "github.com/vovakirdan/tui-walk/internal/core"

// Image is an opaque, immutable handle to loaded image data.
// Handles are shared by pointer and never mutated after load.
type Image struct {
	Name   string
	Width  int
	Height int

	// Terminal appearance. Fill is the rune painted over the image area,
	// Stipple > 1 paints only every Nth cell so large images stay readable.
	Fill    rune
	Color   core.Color
	Stipple int
}

// Bounds returns the image extent at the origin.
func (img *Image) Bounds() core.Rect {
	return core.NewRect(0, 0, img.Width, img.Height)
}

// Sprite is an image placed in the world with its own bounding box.
type Sprite struct {
	image       *Image
	boundingBox core.Rect
}

// NewSprite places img with its top-left corner at position.
func NewSprite(img *Image, position core.Point) Sprite {
	return Sprite{
		image:       img,
		boundingBox: core.RectAt(position, img.Width, img.Height),
	}
}

// Image returns the underlying image handle.
func (s *Sprite) Image() *Image {
	return s.image
}

// BoundingBox returns the sprite's world rectangle.
func (s *Sprite) BoundingBox() core.Rect {
	return s.boundingBox
}

// Right returns the x-coordinate of the sprite's right edge.
func (s *Sprite) Right() int {
	return s.boundingBox.Right()
}

// SetX moves the sprite's left edge to x.
func (s *Sprite) SetX(x int) {
	s.boundingBox.X = x
}

// MoveHorizontally shifts the sprite by distance along the x axis.
func (s *Sprite) MoveHorizontally(distance int) {
	s.boundingBox.X += distance
}

// Draw renders the whole image at the sprite position.
func (s *Sprite) Draw(r Renderer) {
	r.DrawEntireImage(s.image, s.boundingBox.Position())
}
