package engine

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-walk/internal/core"
)

// ErrCellNotFound is returned when a sprite sheet lacks a required cell.
var ErrCellNotFound = errors.New("engine: sprite cell not found")

// SheetRect is a rectangle as stored in sprite sheet metadata.
type SheetRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Rect converts the sheet rectangle to a core.Rect.
func (r SheetRect) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// Cell describes one named frame in a sprite sheet: where it lives in the
// sheet image and how it is offset when drawn.
type Cell struct {
	Frame            SheetRect `yaml:"frame"`
	SpriteSourceSize SheetRect `yaml:"spriteSourceSize"`
}

// Sheet maps cell names (e.g. "Run (1).png") to cells.
type Sheet struct {
	Frames map[string]Cell `yaml:"frames"`
}

// ParseSheet decodes sprite sheet metadata in the TexturePacker JSON hash
// format. JSON is valid YAML, so the YAML decoder reads it directly.
func ParseSheet(data []byte) (Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return Sheet{}, fmt.Errorf("engine: cannot parse sprite sheet: %w", err)
	}
	if len(sheet.Frames) == 0 {
		return Sheet{}, errors.New("engine: sprite sheet has no frames")
	}
	for name, cell := range sheet.Frames {
		if cell.Frame.W <= 0 || cell.Frame.H <= 0 {
			return Sheet{}, fmt.Errorf("engine: sprite cell %q has empty frame", name)
		}
	}
	return sheet, nil
}

// Cell looks up a cell by name.
func (s Sheet) Cell(name string) (Cell, error) {
	cell, ok := s.Frames[name]
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrCellNotFound, name)
	}
	return cell, nil
}

// SpriteSheet pairs sheet metadata with the image its cells are cut from.
// It is shared read-only between everything drawing from the sheet.
type SpriteSheet struct {
	sheet Sheet
	image *Image
}

// NewSpriteSheet creates a sprite sheet over image.
func NewSpriteSheet(sheet Sheet, image *Image) *SpriteSheet {
	return &SpriteSheet{sheet: sheet, image: image}
}

// Cell looks up a cell by name.
func (s *SpriteSheet) Cell(name string) (Cell, error) {
	return s.sheet.Cell(name)
}

// Image returns the sheet image handle.
func (s *SpriteSheet) Image() *Image {
	return s.image
}

// Draw renders the source region of the sheet into destination.
func (s *SpriteSheet) Draw(r Renderer, source, destination core.Rect) {
	r.DrawImage(s.image, source, destination)
}
