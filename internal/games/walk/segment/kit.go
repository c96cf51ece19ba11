// Package segment generates the obstacle course ahead of the player, one
// randomized segment at a time.
package segment

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-walk/internal/engine"
)

// Tile cell names in the tile sprite sheet.
const (
	TileTopLeft     = "1.png"
	TileTopMid      = "2.png"
	TileTopRight    = "3.png"
	TileBodyLeft    = "4.png"
	TileBodyMid     = "5.png"
	TileBodyRight   = "6.png"
	TileBottomMid   = "9.png"
	TileBottomLeft  = "12.png"
	TileFloatLeft   = "13.png"
	TileFloatMid    = "14.png"
	TileFloatRight  = "15.png"
	TileBottomRight = "16.png"
)

var requiredTiles = []string{
	TileTopLeft, TileTopMid, TileTopRight,
	TileBodyLeft, TileBodyMid, TileBodyRight,
	TileBottomLeft, TileBottomMid, TileBottomRight,
	TileFloatLeft, TileFloatMid, TileFloatRight,
}

// Kit is everything a generator builds obstacles from: the tile sheet with
// its cells resolved up front, the stone image and the playfield height.
type Kit struct {
	tiles       *engine.SpriteSheet
	stone       *engine.Image
	cells       map[string]engine.Cell
	worldHeight int
}

// NewKit resolves every tile the generators use. A missing tile is an error,
// so generation itself can never fail.
func NewKit(tiles *engine.SpriteSheet, stone *engine.Image, worldHeight int) (*Kit, error) {
	if tiles == nil || stone == nil {
		return nil, errors.New("segment: tile sheet and stone image are required")
	}
	if worldHeight <= 0 {
		return nil, fmt.Errorf("segment: invalid world height %d", worldHeight)
	}
	cells := make(map[string]engine.Cell, len(requiredTiles))
	for _, name := range requiredTiles {
		cell, err := tiles.Cell(name)
		if err != nil {
			return nil, fmt.Errorf("segment: %w", err)
		}
		cells[name] = cell
	}
	return &Kit{
		tiles:       tiles,
		stone:       stone,
		cells:       cells,
		worldHeight: worldHeight,
	}, nil
}

// WorldHeight returns the playfield height the kit stacks tiles against.
func (k *Kit) WorldHeight() int {
	return k.worldHeight
}

// row returns the cells for a left cap, mid copies of the middle tile and
// a right cap.
func (k *Kit) row(left, middle, right string, mid int) []engine.Cell {
	out := make([]engine.Cell, 0, mid+2)
	out = append(out, k.cells[left])
	for i := 0; i < mid; i++ {
		out = append(out, k.cells[middle])
	}
	return append(out, k.cells[right])
}
