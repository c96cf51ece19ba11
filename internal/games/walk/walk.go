package walk

import (
	"math/rand"

	"github.com/vovakirdan/tui-walk/internal/config"
	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
	"github.com/vovakirdan/tui-walk/internal/games/walk/obstacle"
	"github.com/vovakirdan/tui-walk/internal/games/walk/player"
	"github.com/vovakirdan/tui-walk/internal/games/walk/segment"
)

// Walk is the world of one run: the player, two background tiles that
// alternate to scroll forever, and the obstacles ahead.
type Walk struct {
	boy         *player.RedHatBoy
	backgrounds [2]engine.Sprite
	obstacles   []obstacle.Obstacle
	kit         *segment.Kit
	rng         *rand.Rand
	world       config.WorldConfig

	timeline   int  // Rightmost x already populated with obstacles
	lastScroll int  // World velocity applied by the latest step
	debug      bool // Draw hit-boxes and frame rate
	debugHeld  bool // ToggleDebug was held on the previous step

	distance int
	segments int
	ticks    int
}

func newWalk(boy *player.RedHatBoy, background *engine.Image, kit *segment.Kit, rng *rand.Rand, world config.WorldConfig) *Walk {
	w := &Walk{
		boy: boy,
		backgrounds: [2]engine.Sprite{
			engine.NewSprite(background, core.Point{}),
			engine.NewSprite(background, core.Point{X: background.Width}),
		},
		kit:   kit,
		rng:   rng,
		world: world,
	}
	w.startCourse()
	return w
}

// startCourse replaces the obstacles with the opening segment.
func (w *Walk) startCourse() {
	// FloatingAndStone is always registered, so Generate cannot fail.
	seg, _ := segment.Generate(segment.FloatingAndStone, w.kit, w.rng, 0)
	w.obstacles = seg.Obstacles
	w.timeline = seg.RightEdge
	w.segments = 1
}

// reset starts a new run in the same world with a fresh player.
func (w *Walk) reset(phys player.Physics, world config.WorldConfig) *Walk {
	background := w.backgrounds[0].Image()
	next := newWalk(player.ResetWithPhysics(w.boy, phys), background, w.kit, w.rng, world)
	next.debug = w.debug
	return next
}

// Boy returns the player.
func (w *Walk) Boy() *player.RedHatBoy {
	return w.boy
}

// Obstacles returns the live obstacles, oldest first.
func (w *Walk) Obstacles() []obstacle.Obstacle {
	return w.obstacles
}

// Timeline returns the rightmost world x populated with obstacles.
func (w *Walk) Timeline() int {
	return w.timeline
}

// LastScroll returns the world velocity used by the most recent step.
func (w *Walk) LastScroll() int {
	return w.lastScroll
}

// Debug reports whether debug drawing is on.
func (w *Walk) Debug() bool {
	return w.debug
}

// Backgrounds returns the two background tiles.
func (w *Walk) Backgrounds() [2]engine.Sprite {
	return w.backgrounds
}

// velocity is the world's scroll speed: the opposite of the player's.
func (w *Walk) velocity() int {
	return -w.boy.WalkingSpeed()
}

// step runs one Walking tick.
func (w *Walk) step(keys core.KeyState) {
	if keys.IsPressed(core.KeyCrouch) {
		w.boy.Slide()
	}
	if keys.IsPressed(core.KeyJump) {
		w.boy.Jump()
	}
	toggle := keys.IsPressed(core.KeyToggleDebug)
	if toggle && !w.debugHeld {
		w.debug = !w.debug
	}
	w.debugHeld = toggle

	w.boy.Update()

	velocity := w.velocity()
	w.lastScroll = velocity
	w.distance -= velocity
	w.ticks++
	w.scrollBackgrounds(velocity)

	w.pruneObstacles()
	for _, o := range w.obstacles {
		o.Translate(velocity)
		o.CheckCollision(w.boy)
	}

	if w.timeline < w.world.TimelineMinimum {
		w.generateNextSegment()
	} else {
		w.timeline += velocity
	}
}

// scrollBackgrounds moves both tiles and wraps whichever left the screen
// to the right of the other.
func (w *Walk) scrollBackgrounds(velocity int) {
	first, second := &w.backgrounds[0], &w.backgrounds[1]
	first.MoveHorizontally(velocity)
	second.MoveHorizontally(velocity)

	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}
}

// pruneObstacles drops obstacles that are entirely off the left edge.
func (w *Walk) pruneObstacles() {
	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.RightEdge() > 0 {
			kept = append(kept, o)
		}
	}
	clear(w.obstacles[len(kept):])
	w.obstacles = kept
}

func (w *Walk) generateNextSegment() {
	seg := segment.Random(w.kit, w.rng, w.timeline+w.world.ObstacleBuffer)
	w.obstacles = append(w.obstacles, seg.Obstacles...)
	w.timeline = seg.RightEdge
	w.segments++
}

func (w *Walk) draw(r engine.Renderer) {
	for i := range w.backgrounds {
		w.backgrounds[i].Draw(r)
	}
	w.boy.Draw(r, w.debug)
	for _, o := range w.obstacles {
		o.Draw(r, w.debug)
	}
}
