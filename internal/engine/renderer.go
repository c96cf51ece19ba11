// Package engine defines the contracts the runner consumes from its
// collaborators (rendering, sprite sheets, audio, UI) and the fixed-timestep
// loop that drives simulation.
package engine

import "github.com/vovakirdan/tui-walk/internal/core"

// Renderer draws into world coordinates. Implementations decide how world
// units map to output cells or pixels.
type Renderer interface {
	// Clear blanks the given world rectangle.
	Clear(r core.Rect)

	// DrawImage draws the src region of img into the dst world rectangle.
	DrawImage(img *Image, src, dst core.Rect)

	// DrawEntireImage draws img at its natural size with its top-left at pos.
	DrawEntireImage(img *Image, pos core.Point)

	// DrawOutline strokes the edges of the given world rectangle.
	DrawOutline(r core.Rect)

	// DrawText writes text with its baseline start at pos.
	DrawText(text string, pos core.Point) error
}
