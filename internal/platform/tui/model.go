package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-walk/internal/assets"
	"github.com/vovakirdan/tui-walk/internal/config"
	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
	"github.com/vovakirdan/tui-walk/internal/games/walk"
	"github.com/vovakirdan/tui-walk/internal/storage"
)

const (
	chromeHeight = 2                      // Status and help lines under the world
	maxElapsed   = 250 * time.Millisecond // Longer gaps (suspend, slow SSH) are clamped
	localPlayer  = "local"
)

// Options configure a play session.
type Options struct {
	Config        config.WalkConfig
	Seed          int64           // 0 picks a time-based seed
	Player        string          // Recorded with each run, "local" when empty
	Store         *storage.Store  // nil disables run history
	Watcher       *config.Watcher // nil disables live reload
	Audio         engine.Audio    // nil plays nothing
	Width         int
	Height        int
	ScreenshotDir string // Defaults to ~/.walk/screenshots
}

type configMsg struct{ cfg config.WalkConfig }

type configErrMsg struct{ err error }

// Model is the Bubble Tea model that drives one runner game.
type Model struct {
	game     *walk.Game
	ui       *OverlayUI
	tracker  *core.KeyTracker
	renderer *ScreenRenderer
	keys     KeyMap
	help     help.Model
	store    *storage.Store
	watcher  *config.Watcher
	now      func() time.Time

	player        string
	screenshotDir string
	tickRate      int
	width         int
	height        int

	lastTick    time.Time
	runs        int
	pendingHold time.Duration
	best        int
	saved       bool // Whether the current game over has been recorded
	status      string
	quitting    bool
	backToMenu  bool
}

// NewModel initializes a game from b and wraps it in a model.
func NewModel(b *assets.Bundle, opts Options) (Model, error) {
	ui := NewOverlayUI()
	game := walk.New()
	err := game.Initialize(b, walk.Options{
		Config: opts.Config,
		Seed:   opts.Seed,
		Audio:  opts.Audio,
		UI:     ui,
	})
	if err != nil {
		return Model{}, err
	}

	width, height := max(opts.Width, 1), max(opts.Height, chromeHeight+1)
	screen := core.NewScreen(width, height-chromeHeight)

	player := opts.Player
	if player == "" {
		player = localPlayer
	}

	h := help.New()
	h.Width = width

	m := Model{
		game:          game,
		ui:            ui,
		tracker:       core.NewKeyTracker(holdWindow(opts.Config)),
		renderer:      NewScreenRenderer(screen, opts.Config.World.Width, opts.Config.World.Height),
		keys:          DefaultKeyMap(),
		help:          h,
		store:         opts.Store,
		watcher:       opts.Watcher,
		now:           time.Now,
		player:        player,
		screenshotDir: opts.ScreenshotDir,
		tickRate:      opts.Config.World.TickRate,
		width:         width,
		height:        height,
		runs:          game.Session().Runs(),
	}
	if m.store != nil {
		if best, err := m.store.BestDistance(); err == nil {
			m.best = best
		} else {
			log.Warn("could not read best distance", "err", err)
		}
	}
	return m, nil
}

func holdWindow(cfg config.WalkConfig) time.Duration {
	return time.Duration(cfg.Input.HoldMS) * time.Millisecond
}

// waitForConfig delivers the watcher's next reload or reload failure.
func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates():
			if !ok {
				return nil
			}
			return configMsg{cfg: cfg}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

func (m Model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForConfig(m.watcher)
}

// Init starts the tick loop and, when configured, the config watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.tickRate), m.watchCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configMsg:
		m.stageConfig(msg.cfg)
		return m, m.watchCmd()

	case configErrMsg:
		log.Warn("config reload failed", "err", msg.err)
		m.status = "config reload failed"
		return m, m.watchCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.game.State().Phase != core.PhaseWalking {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			log.Warn("could not save screenshot", "err", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + filepath.Base(path)
		}
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		m.ui.Click()
		return m, nil
	}

	if k := m.keys.GameKey(msg); k != core.KeyNone {
		m.tracker.Press(k, m.now())
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, chromeHeight+1)
	m.renderer.Screen().Resize(m.width, m.height-chromeHeight)
	m.help.Width = m.width
}

// handleTick feeds the time since the previous tick to the game loop.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Second / time.Duration(max(m.tickRate, 1))
	if !m.lastTick.IsZero() {
		elapsed = min(max(now.Sub(m.lastTick), 0), maxElapsed)
	}
	m.lastTick = now

	m.game.Tick(m.tracker.Snapshot(now), elapsed)

	if runs := m.game.Session().Runs(); runs != m.runs {
		m.runs = runs
		m.saved = false
		if m.pendingHold > 0 {
			m.tracker = core.NewKeyTracker(m.pendingHold)
			m.pendingHold = 0
		}
	}

	state := m.game.State()
	if state.GameOver() && !m.saved {
		m.saveRun(state)
		m.saved = true
	}

	return m, tickCmd(m.tickRate)
}

// stageConfig queues a reloaded config. It takes effect at the next new game.
func (m *Model) stageConfig(cfg config.WalkConfig) {
	if err := m.game.StageConfig(cfg); err != nil {
		log.Warn("reloaded config rejected", "err", err)
		m.status = "config rejected"
		return
	}
	m.pendingHold = holdWindow(cfg)
	m.status = "config reloaded, applies next run"
	log.Info("config staged", "hold_ms", cfg.Input.HoldMS)
}

// saveRun records a finished run. Runs that never moved are not worth keeping.
func (m *Model) saveRun(state core.GameState) {
	if m.store == nil || state.Distance <= 0 {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		Player:   m.player,
		Distance: state.Distance,
		Segments: state.Segments,
		Ticks:    state.Ticks,
		Seed:     state.Seed,
	})
	if err != nil {
		log.Error("could not save run", "err", err)
		m.status = "run not saved"
		return
	}
	if state.Distance > m.best {
		m.best = state.Distance
		m.status = "new best!"
	}
	log.Info("run saved", "id", id, "player", m.player, "distance", state.Distance)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.renderer)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot locate home directory: %w", err)
		}
		dir = filepath.Join(home, ".walk", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("walk_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen := m.renderer.Screen()
	m.game.Render(m.renderer)
	state := m.game.State()
	if state.Phase == core.PhaseReady {
		screen.DrawTextCentered(1, "Press → to run", textColor)
	}
	m.ui.Draw(screen, "press enter")

	var b strings.Builder
	b.WriteString(RenderScreen(screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine(state)))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(noteStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine(state core.GameState) string {
	return fmt.Sprintf("%-8s  distance %d  segments %d  best %d",
		state.Phase, state.Distance, state.Segments, max(m.best, state.Distance))
}

// State reports the game's current state.
func (m Model) State() core.GameState {
	return m.game.State()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the current terminal until the player quits.
// It reports whether the player asked to go back to the menu instead.
func Run(b *assets.Bundle, opts Options) (backToMenu bool, err error) {
	model, err := NewModel(b, opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(Model)
	if !ok {
		return false, errors.New("tui: unexpected final model")
	}
	return m.BackToMenu(), nil
}
