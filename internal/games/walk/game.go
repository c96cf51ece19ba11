// Package walk implements the runner's session: a player crossing an endless,
// procedurally generated obstacle course until a collision ends the run.
package walk

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-walk/internal/assets"
	"github.com/vovakirdan/tui-walk/internal/config"
	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
	"github.com/vovakirdan/tui-walk/internal/games/walk/player"
	"github.com/vovakirdan/tui-walk/internal/games/walk/segment"
)

// ErrAlreadyInitialized is returned by a second call to Initialize.
var ErrAlreadyInitialized = errors.New("walk: game already initialized")

// Options configure a game at initialization.
type Options struct {
	Config config.WalkConfig
	Seed   int64        // 0 picks a time-based seed
	Audio  engine.Audio // nil plays nothing
	UI     engine.UI    // required
}

// Game is what a driver holds: it is Loading until Initialize succeeds,
// then forwards fixed steps to its session.
type Game struct {
	session *Session
	loop    *engine.Loop
	seed    int64
	frame   core.Rect
}

// New creates a game in the Loading state.
func New() *Game {
	return &Game{}
}

// Initialize builds the session from resolved assets. Missing sprite cells
// or tiles abort initialization.
func (g *Game) Initialize(b *assets.Bundle, opts Options) error {
	if g.session != nil {
		return ErrAlreadyInitialized
	}
	if b == nil {
		return errors.New("walk: asset bundle is required")
	}
	if opts.UI == nil {
		return errors.New("walk: UI is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return fmt.Errorf("walk: invalid config: %w", err)
	}
	audio := opts.Audio
	if audio == nil {
		audio = engine.SilentAudio{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	boy, err := player.New(b.PlayerSheet, b.PlayerImage, physicsFrom(opts.Config.Physics), audio, b.JumpSound)
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}
	kit, err := segment.NewKit(b.Tiles, b.Stone, opts.Config.World.Height)
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	w := newWalk(boy, b.Background, kit, rng, opts.Config.World)
	w.debug = opts.Config.Debug.Enabled

	if err := audio.PlayLooping(b.Music); err != nil {
		log.Warn("could not play music", "sound", b.Music.Name, "err", err)
	}

	g.session = newSession(w, opts.UI, opts.Config)
	g.loop = engine.NewLoop(opts.Config.World.TickRate)
	g.seed = seed
	g.frame = core.NewRect(0, 0, opts.Config.World.Width, opts.Config.World.Height)
	log.Debug("walk initialized", "seed", seed, "segment", w.timeline)
	return nil
}

// Loaded reports whether Initialize has succeeded.
func (g *Game) Loaded() bool {
	return g.session != nil
}

// Session returns the running session, or nil while loading.
func (g *Game) Session() *Session {
	return g.session
}

// Tick runs as many fixed steps as elapsed covers, all with the same input.
func (g *Game) Tick(keys core.KeyState, elapsed time.Duration) {
	if g.session == nil {
		return
	}
	g.loop.Advance(elapsed, func() {
		g.session.update(keys)
	})
}

// Step runs exactly one fixed step, bypassing the accumulator.
func (g *Game) Step(keys core.KeyState) {
	if g.session == nil {
		return
	}
	g.session.update(keys)
}

// StageConfig queues cfg for the next new run. Invalid configs are rejected.
func (g *Game) StageConfig(cfg config.WalkConfig) error {
	if g.session == nil {
		return errors.New("walk: game not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("walk: invalid config: %w", err)
	}
	g.session.stage(cfg)
	return nil
}

// Render draws the current frame. Draw failures are logged, never returned.
func (g *Game) Render(r engine.Renderer) {
	if g.session == nil {
		return
	}
	r.Clear(g.frame)
	w := g.session.walk
	w.draw(r)
	if w.debug {
		text := fmt.Sprintf("Frame Rate %d", g.loop.FrameRate())
		if err := r.DrawText(text, core.Point{X: 400, Y: 100}); err != nil {
			log.Warn("could not draw frame rate", "err", err)
		}
	}
}

// State reports the phase and the current run's progress.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: core.PhaseLoading}
	}
	w := g.session.walk
	return core.GameState{
		Phase:    g.session.phase,
		Distance: w.distance,
		Segments: w.segments,
		Ticks:    w.ticks,
		Seed:     g.seed,
	}
}

func physicsFrom(c config.PhysicsConfig) player.Physics {
	return player.Physics{
		Gravity:          c.Gravity,
		TerminalVelocity: c.TerminalVelocity,
		RunningSpeed:     c.RunningSpeed,
		JumpSpeed:        c.JumpSpeed,
		Floor:            c.Floor,
		Height:           c.PlayerHeight,
		StartX:           c.StartingX,
	}
}
