package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-walk/internal/assets"
	"github.com/vovakirdan/tui-walk/internal/config"
	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/storage"
)

var start = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// driver feeds a model messages on a simulated clock, one frame per tick.
type driver struct {
	t     *testing.T
	m     Model
	clock time.Time
	frame time.Duration
}

func newDriver(t *testing.T, store *storage.Store) *driver {
	t.Helper()
	b, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() failed: %v", err)
	}
	cfg := config.DefaultWalkConfig()
	m, err := NewModel(b, Options{
		Config:        cfg,
		Seed:          11,
		Player:        "tester",
		Store:         store,
		Width:         80,
		Height:        26,
		ScreenshotDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	d := &driver{
		t:     t,
		clock: start,
		frame: time.Second / time.Duration(cfg.World.TickRate),
	}
	m.now = func() time.Time { return d.clock }
	d.m = m
	return d
}

func (d *driver) send(msg tea.Msg) tea.Cmd {
	d.t.Helper()
	next, cmd := d.m.Update(msg)
	m, ok := next.(Model)
	if !ok {
		d.t.Fatalf("Update() returned %T", next)
	}
	d.m = m
	return cmd
}

func (d *driver) tick() {
	d.clock = d.clock.Add(d.frame)
	d.send(TickMsg(d.clock))
}

func (d *driver) tickUntil(limit int, done func() bool) {
	d.t.Helper()
	for i := 0; i < limit && !done(); i++ {
		d.tick()
	}
	if !done() {
		d.t.Fatalf("condition not reached after %d ticks", limit)
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelStartsRunning(t *testing.T) {
	d := newDriver(t, nil)

	d.tick()
	if d.m.State().Phase != core.PhaseReady {
		t.Fatalf("phase = %v before input, expected Ready", d.m.State().Phase)
	}

	d.send(tea.KeyMsg{Type: tea.KeyRight})
	d.tick()
	if d.m.State().Phase != core.PhaseWalking {
		t.Fatalf("phase = %v after right, expected Walking", d.m.State().Phase)
	}
}

func TestModelBackOnlyOutsideARun(t *testing.T) {
	d := newDriver(t, nil)

	d.send(tea.KeyMsg{Type: tea.KeyRight})
	d.tick()
	if cmd := d.send(tea.KeyMsg{Type: tea.KeyEsc}); cmd != nil || d.m.BackToMenu() {
		t.Fatal("esc during a run should be ignored")
	}

	d = newDriver(t, nil)
	if cmd := d.send(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil || !d.m.BackToMenu() {
		t.Error("esc while ready should go back to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	d := newDriver(t, nil)
	if cmd := d.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if !d.m.IsQuitting() || d.m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	d := newDriver(t, store)

	d.send(tea.KeyMsg{Type: tea.KeyRight})
	d.tickUntil(1000, func() bool { return d.m.State().GameOver() })

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	final := d.m.State()
	r := runs[0]
	if r.Player != "tester" || r.Distance != final.Distance || r.Segments != final.Segments || r.Seed != 11 {
		t.Errorf("saved run = %+v, state = %+v", r, final)
	}
	if !d.m.ui.Visible() {
		t.Fatal("game over should show the new game overlay")
	}
	if !strings.Contains(d.m.View(), "New Game") {
		t.Error("view is missing the new game overlay")
	}

	// Staying in game over does not record the run again
	for i := 0; i < 30; i++ {
		d.tick()
	}
	if stats, _ := store.Stats(); stats.Runs != 1 {
		t.Fatalf("recorded %d runs during one game over", stats.Runs)
	}

	d.send(tea.KeyMsg{Type: tea.KeyEnter})
	d.tick()
	if d.m.State().Phase != core.PhaseReady {
		t.Fatalf("phase = %v after enter, expected Ready", d.m.State().Phase)
	}
	if d.m.ui.Visible() {
		t.Error("overlay still visible in the new run")
	}

	d.send(tea.KeyMsg{Type: tea.KeyRight})
	d.tickUntil(1000, func() bool { return d.m.State().GameOver() })
	if stats, _ := store.Stats(); stats.Runs != 2 {
		t.Errorf("recorded %d runs after two game overs, expected 2", stats.Runs)
	}
}

func TestModelStagesReloadedConfig(t *testing.T) {
	d := newDriver(t, nil)
	original := d.m.tracker

	cfg := config.DefaultWalkConfig()
	cfg.Input.HoldMS = 400
	d.send(configMsg{cfg: cfg})
	if d.m.pendingHold != 400*time.Millisecond {
		t.Fatalf("pendingHold = %v", d.m.pendingHold)
	}
	if d.m.tracker != original {
		t.Fatal("hold window changed before the next run")
	}

	bad := config.DefaultWalkConfig()
	bad.Physics.Gravity = 0
	d.send(configMsg{cfg: bad})
	if d.m.status != "config rejected" {
		t.Errorf("status = %q after an invalid config", d.m.status)
	}
	if d.m.pendingHold != 400*time.Millisecond {
		t.Error("rejected config replaced the staged one")
	}

	d.send(tea.KeyMsg{Type: tea.KeyRight})
	d.tickUntil(1000, func() bool { return d.m.State().GameOver() })
	d.send(tea.KeyMsg{Type: tea.KeyEnter})
	d.tick()
	if d.m.tracker == original || d.m.pendingHold != 0 {
		t.Error("staged hold window not applied at the new run")
	}
}

func TestModelHeldKeysExpire(t *testing.T) {
	d := newDriver(t, nil)

	// The press is older than the hold window by the time the tick runs
	d.send(tea.KeyMsg{Type: tea.KeyRight})
	d.clock = d.clock.Add(time.Second)
	d.tick()
	if d.m.State().Phase != core.PhaseReady {
		t.Errorf("phase = %v, a stale press should not start the run", d.m.State().Phase)
	}
}

func TestModelResizeAndView(t *testing.T) {
	d := newDriver(t, nil)

	d.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	s := d.m.renderer.Screen()
	if s.Width() != 100 || s.Height() != 40-chromeHeight {
		t.Fatalf("screen = %dx%d", s.Width(), s.Height())
	}

	view := d.m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 40 {
		t.Errorf("view has %d lines, expected 40", lines)
	}
	if !strings.Contains(view, "Press → to run") {
		t.Error("ready view is missing the start hint")
	}
	if !strings.Contains(view, "distance 0") {
		t.Error("view is missing the status line")
	}
}

func TestModelScreenshot(t *testing.T) {
	d := newDriver(t, nil)

	d.send(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(d.m.status, "saved walk_") {
		t.Fatalf("status = %q", d.m.status)
	}

	entries, err := os.ReadDir(d.m.screenshotDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("screenshot dir has %d entries (err %v)", len(entries), err)
	}
	data, err := os.ReadFile(filepath.Join(d.m.screenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(string(data), "\n") + 1; lines != 26-chromeHeight {
		t.Errorf("screenshot has %d lines", lines)
	}
}
