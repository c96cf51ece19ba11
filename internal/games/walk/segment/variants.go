package segment

import (
	"math/rand"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/games/walk/obstacle"
)

// Generator names.
const (
	FloatingAndStone = "floating_and_stone"
	Mound            = "mound"
	Ceiling          = "ceiling"
)

// Layout constants in world units.
const (
	LowPlatform  = 420
	HighPlatform = 375

	TileWidth  = 128
	TileHeight = 128

	FloatingHeight     = 93
	FloatingEdgeWidth  = 60
	FloatingEdgeHeight = 54

	moundOffset = 200
)

var (
	stoneOffsets    = []int{150, 400}
	platformOffsets = []int{370, 200}
	platformLanes   = []int{HighPlatform, LowPlatform}
)

func init() {
	Register(FloatingAndStone, floatingAndStone)
	Register(Mound, mound)
	Register(Ceiling, ceiling)
}

func choose(rng *rand.Rand, from []int) int {
	return from[rng.Intn(len(from))]
}

// rowWidth is the width of a tile row with mid middle tiles.
func rowWidth(mid int) int {
	return TileWidth * (mid + 2)
}

// floatingPlatform has short collision boxes over its rounded edges and a
// full-height box over its body.
func floatingPlatform(kit *Kit, at core.Point, mid int) *obstacle.Platform {
	width := rowWidth(mid)
	boxes := []core.Rect{
		core.NewRect(0, 0, FloatingEdgeWidth, FloatingEdgeHeight),
		core.NewRect(FloatingEdgeWidth, 0, width-2*FloatingEdgeWidth, FloatingHeight),
		core.NewRect(width-FloatingEdgeWidth, 0, FloatingEdgeWidth, FloatingEdgeHeight),
	}
	cells := kit.row(TileFloatLeft, TileFloatMid, TileFloatRight, mid)
	return obstacle.NewPlatform(kit.tiles, cells, at, boxes)
}

// filledRow is a solid tile row with a single box covering all of it.
func filledRow(kit *Kit, at core.Point, mid int, left, middle, right string) *obstacle.Platform {
	boxes := []core.Rect{core.NewRect(0, 0, rowWidth(mid), TileHeight)}
	return obstacle.NewPlatform(kit.tiles, kit.row(left, middle, right, mid), at, boxes)
}

func bodyRow(kit *Kit, at core.Point, mid int) *obstacle.Platform {
	return filledRow(kit, at, mid, TileBodyLeft, TileBodyMid, TileBodyRight)
}

// floatingAndStone puts a stone on the ground and a floating platform in a
// random lane.
func floatingAndStone(kit *Kit, rng *rand.Rand, offsetX int) []obstacle.Obstacle {
	stoneX := choose(rng, stoneOffsets)
	platformX := choose(rng, platformOffsets)
	lane := choose(rng, platformLanes)
	mid := rng.Intn(4)

	stoneY := kit.worldHeight - kit.stone.Height
	return []obstacle.Obstacle{
		obstacle.NewBarrier(kit.stone, core.Point{X: offsetX + stoneX, Y: stoneY}),
		floatingPlatform(kit, core.Point{X: offsetX + platformX, Y: lane}, mid),
	}
}

// mound stacks up to one body row on the ground and caps it with a top row.
func mound(kit *Kit, rng *rand.Rand, offsetX int) []obstacle.Obstacle {
	mid := rng.Intn(4)
	rows := rng.Intn(2)

	x := offsetX + moundOffset
	y := kit.worldHeight - TileHeight
	out := make([]obstacle.Obstacle, 0, rows+1)
	for i := 0; i < rows; i++ {
		out = append(out, bodyRow(kit, core.Point{X: x, Y: y}, mid))
		y -= TileHeight
	}
	top := filledRow(kit, core.Point{X: x, Y: y}, mid, TileTopLeft, TileTopMid, TileTopRight)
	return append(out, top)
}

// ceiling hangs up to three body rows from the top of the playfield and
// finishes them with a bottom row.
func ceiling(kit *Kit, rng *rand.Rand, offsetX int) []obstacle.Obstacle {
	mid := rng.Intn(4)
	rows := rng.Intn(4)

	x := offsetX + moundOffset
	y := 0
	out := make([]obstacle.Obstacle, 0, rows+1)
	for i := 0; i < rows; i++ {
		out = append(out, bodyRow(kit, core.Point{X: x, Y: y}, mid))
		y += TileHeight
	}
	bottom := filledRow(kit, core.Point{X: x, Y: y}, mid, TileBottomLeft, TileBottomMid, TileBottomRight)
	return append(out, bottom)
}
