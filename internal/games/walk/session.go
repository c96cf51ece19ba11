package walk

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-walk/internal/config"
	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// Session cycles Ready -> Walking -> GameOver -> Ready over a Walk.
type Session struct {
	phase   core.Phase
	walk    *Walk
	ui      engine.UI
	newGame <-chan struct{}

	cfg     config.WalkConfig
	pending *config.WalkConfig // Applied at the next reset
	runs    int
}

func newSession(w *Walk, ui engine.UI, cfg config.WalkConfig) *Session {
	return &Session{
		phase: core.PhaseReady,
		walk:  w,
		ui:    ui,
		cfg:   cfg,
		runs:  1,
	}
}

// Phase returns the current phase.
func (s *Session) Phase() core.Phase {
	return s.phase
}

// Walk returns the current run's world.
func (s *Session) Walk() *Walk {
	return s.walk
}

// Runs returns how many runs this session has started.
func (s *Session) Runs() int {
	return s.runs
}

// stage remembers cfg for the next reset. A run in progress keeps the
// tuning it started with.
func (s *Session) stage(cfg config.WalkConfig) {
	s.pending = &cfg
}

// update advances the session by one fixed step.
func (s *Session) update(keys core.KeyState) {
	switch s.phase {
	case core.PhaseReady:
		s.walk.boy.Update()
		if keys.IsPressed(core.KeyMoveRight) {
			s.walk.boy.RunRight()
			s.phase = core.PhaseWalking
		}

	case core.PhaseWalking:
		s.walk.step(keys)
		if s.walk.boy.KnockedOut() {
			s.endRun()
		}

	case core.PhaseGameOver:
		select {
		case <-s.newGame:
			s.newRun()
		default:
		}
	}
}

func (s *Session) endRun() {
	s.phase = core.PhaseGameOver
	ch, err := s.ui.ShowNewGame()
	if err != nil {
		log.Error("could not show new game control", "err", err)
	}
	s.newGame = ch
	log.Info("run over", "distance", s.walk.distance, "segments", s.walk.segments, "ticks", s.walk.ticks)
}

func (s *Session) newRun() {
	if err := s.ui.Hide(); err != nil {
		log.Warn("could not hide new game control", "err", err)
	}
	if s.pending != nil {
		s.cfg = *s.pending
		s.pending = nil
		log.Info("applied reloaded config")
	}
	s.walk = s.walk.reset(physicsFrom(s.cfg.Physics), s.cfg.World)
	s.newGame = nil
	s.runs++
	s.phase = core.PhaseReady
}
