package walk

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-walk/internal/assets"
	"github.com/vovakirdan/tui-walk/internal/config"
	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
	"github.com/vovakirdan/tui-walk/internal/games/walk/obstacle"
	"github.com/vovakirdan/tui-walk/internal/games/walk/player"
)

type fakeUI struct {
	ch     chan struct{}
	shown  int
	hidden int
}

func (u *fakeUI) ShowNewGame() (<-chan struct{}, error) {
	u.shown++
	u.ch = make(chan struct{}, 1)
	return u.ch, nil
}

func (u *fakeUI) Hide() error {
	u.hidden++
	return nil
}

func (u *fakeUI) click() {
	u.ch <- struct{}{}
}

type recordingAudio struct {
	sounds  []string
	looping []string
}

func (a *recordingAudio) PlaySound(s engine.Sound) error {
	a.sounds = append(a.sounds, s.Name)
	return nil
}

func (a *recordingAudio) PlayLooping(s engine.Sound) error {
	a.looping = append(a.looping, s.Name)
	return nil
}

type recordingRenderer struct {
	clears   []core.Rect
	images   int
	outlines int
	texts    []string
}

func (r *recordingRenderer) Clear(rect core.Rect)                          { r.clears = append(r.clears, rect) }
func (r *recordingRenderer) DrawImage(*engine.Image, core.Rect, core.Rect) { r.images++ }
func (r *recordingRenderer) DrawEntireImage(*engine.Image, core.Point)     { r.images++ }
func (r *recordingRenderer) DrawOutline(core.Rect)                         { r.outlines++ }
func (r *recordingRenderer) DrawText(text string, _ core.Point) error {
	r.texts = append(r.texts, text)
	return nil
}

func loadBundle(t *testing.T) *assets.Bundle {
	t.Helper()
	b, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() failed: %v", err)
	}
	return b
}

func newGame(t *testing.T, seed int64) (*Game, *fakeUI) {
	t.Helper()
	ui := &fakeUI{}
	g := New()
	err := g.Initialize(loadBundle(t), Options{
		Config: config.DefaultWalkConfig(),
		Seed:   seed,
		UI:     ui,
	})
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	return g, ui
}

var (
	noKeys    = core.KeyState{}
	moveRight = core.NewKeyState(core.KeyMoveRight)
)

// runUntil steps g with keys until done reports true or limit steps pass.
func runUntil(t *testing.T, g *Game, keys core.KeyState, limit int, done func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if done() {
			return
		}
		g.Step(keys)
	}
	if !done() {
		t.Fatalf("condition not reached after %d steps", limit)
	}
}

func TestInitialize(t *testing.T) {
	audio := &recordingAudio{}
	g := New()
	if g.Loaded() || g.State().Phase != core.PhaseLoading {
		t.Fatal("a new game should be loading")
	}

	b := loadBundle(t)
	opts := Options{Config: config.DefaultWalkConfig(), Seed: 7, Audio: audio, UI: &fakeUI{}}
	if err := g.Initialize(b, opts); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	state := g.State()
	if state.Phase != core.PhaseReady || state.Seed != 7 || state.Segments != 1 {
		t.Errorf("State() = %+v", state)
	}
	if len(audio.looping) != 1 || audio.looping[0] != assets.BackgroundMusic {
		t.Errorf("looping = %v, expected background music", audio.looping)
	}

	w := g.Session().Walk()
	if len(w.Obstacles()) != 2 {
		t.Errorf("opening segment has %d obstacles, expected stone and platform", len(w.Obstacles()))
	}
	if w.Boy().Kind() != player.Idle {
		t.Errorf("player = %v, expected Idle", w.Boy().Kind())
	}

	err := g.Initialize(b, opts)
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Initialize() = %v, expected ErrAlreadyInitialized", err)
	}
}

func TestInitializeMissingCell(t *testing.T) {
	b := loadBundle(t)
	frames := make(map[string]engine.Cell)
	for name, cell := range b.PlayerSheet.Frames {
		if name != "Dead (10).png" {
			frames[name] = cell
		}
	}
	b.PlayerSheet = engine.Sheet{Frames: frames}

	g := New()
	err := g.Initialize(b, Options{Config: config.DefaultWalkConfig(), Seed: 1, UI: &fakeUI{}})
	if !errors.Is(err, engine.ErrCellNotFound) {
		t.Fatalf("Initialize() = %v, expected ErrCellNotFound", err)
	}
	if g.Loaded() {
		t.Error("a failed Initialize must leave the game loading")
	}
}

func TestInitializeRejectsBadInput(t *testing.T) {
	b := loadBundle(t)

	if err := New().Initialize(b, Options{Config: config.DefaultWalkConfig()}); err == nil {
		t.Error("Initialize() without a UI should fail")
	}
	bad := config.DefaultWalkConfig()
	bad.World.TickRate = 0
	if err := New().Initialize(b, Options{Config: bad, UI: &fakeUI{}}); err == nil {
		t.Error("Initialize() with an invalid config should fail")
	}
}

func TestReadyStartsWalking(t *testing.T) {
	g, _ := newGame(t, 1)

	for i := 0; i < 10; i++ {
		g.Step(noKeys)
	}
	if g.State().Phase != core.PhaseReady {
		t.Fatalf("phase = %v without input, expected Ready", g.State().Phase)
	}

	g.Step(moveRight)
	if g.State().Phase != core.PhaseWalking {
		t.Fatalf("phase = %v after MoveRight, expected Walking", g.State().Phase)
	}
	if g.Session().Walk().Boy().Kind() != player.Running {
		t.Errorf("player = %v, expected Running", g.Session().Walk().Boy().Kind())
	}
}

func TestWalkingScenario(t *testing.T) {
	g, _ := newGame(t, 99)
	g.Step(moveRight)
	minimum := config.DefaultWalkConfig().World.TimelineMinimum

	jump := core.NewKeyState(core.KeyJump)
	for i := 0; i < 3000 && g.State().Phase == core.PhaseWalking; i++ {
		w := g.Session().Walk()
		before := w.Timeline()
		segments := g.State().Segments

		keys := noKeys
		if i%40 == 0 {
			keys = jump
		}
		g.Step(keys)
		if g.State().Phase != core.PhaseWalking {
			break
		}

		for _, o := range w.Obstacles() {
			// Pruning ran before the translation by LastScroll
			if o.RightEdge()-w.LastScroll() <= 0 {
				t.Fatalf("step %d: obstacle with right edge %d survived pruning", i, o.RightEdge()-w.LastScroll())
			}
		}

		switch {
		case before < minimum:
			if g.State().Segments != segments+1 {
				t.Fatalf("step %d: timeline %d below %d but no segment generated", i, before, minimum)
			}
			if w.Timeline() < before {
				t.Fatalf("step %d: timeline moved back from %d to %d", i, before, w.Timeline())
			}
		default:
			if g.State().Segments != segments {
				t.Fatalf("step %d: segment generated with timeline %d", i, before)
			}
			if w.Timeline() != before+w.LastScroll() {
				t.Fatalf("step %d: timeline = %d, expected %d", i, w.Timeline(), before+w.LastScroll())
			}
		}
	}
}

func TestPruneObstacles(t *testing.T) {
	g, _ := newGame(t, 3)
	w := g.Session().Walk()

	stone := &engine.Image{Width: 90, Height: 54}
	w.obstacles = []obstacle.Obstacle{
		obstacle.NewBarrier(stone, core.Point{X: -90, Y: 546}), // right edge 0
		obstacle.NewBarrier(stone, core.Point{X: -89, Y: 546}), // right edge 1
		obstacle.NewBarrier(stone, core.Point{X: -500, Y: 546}),
		obstacle.NewBarrier(stone, core.Point{X: 300, Y: 546}),
	}
	w.pruneObstacles()

	if len(w.obstacles) != 2 {
		t.Fatalf("kept %d obstacles, expected 2", len(w.obstacles))
	}
	for _, o := range w.obstacles {
		if o.RightEdge() <= 0 {
			t.Errorf("kept obstacle with right edge %d", o.RightEdge())
		}
	}
}

func TestBackgroundsStayAdjacent(t *testing.T) {
	g, _ := newGame(t, 5)
	w := g.Session().Walk()
	width := w.backgrounds[0].Image().Width

	for i := 0; i < 2*width; i++ {
		w.scrollBackgrounds(-7)

		a, b := w.backgrounds[0].BoundingBox(), w.backgrounds[1].BoundingBox()
		if a.X+width != b.X && b.X+width != a.X {
			t.Fatalf("step %d: backgrounds at %d and %d are not adjacent", i, a.X, b.X)
		}
		if a.Right() < 0 || b.Right() < 0 {
			t.Fatalf("step %d: a background is entirely off screen", i)
		}
		if min(a.X, b.X) > 0 {
			t.Fatalf("step %d: gap at the left edge", i)
		}
	}
}

func TestDebugToggleIsEdgeTriggered(t *testing.T) {
	g, _ := newGame(t, 2)
	g.Step(moveRight)
	toggle := core.NewKeyState(core.KeyToggleDebug)

	for i := 0; i < 5; i++ {
		g.Step(toggle)
	}
	if !g.Session().Walk().Debug() {
		t.Fatal("holding ToggleDebug should turn debug on once")
	}

	g.Step(noKeys)
	g.Step(toggle)
	if g.Session().Walk().Debug() {
		t.Error("a second press should turn debug off")
	}
}

func TestGameOverAndNewGame(t *testing.T) {
	g, ui := newGame(t, 11)
	g.Step(moveRight)

	// Without jumping the player runs into the opening segment
	runUntil(t, g, noKeys, 1000, func() bool { return g.State().Phase == core.PhaseGameOver })
	if ui.shown != 1 {
		t.Fatalf("ShowNewGame called %d times, expected 1", ui.shown)
	}
	if !g.Session().Walk().Boy().KnockedOut() {
		t.Fatal("game over without a knocked out player")
	}

	final := g.State()
	if final.Distance <= 0 || final.Ticks <= 0 {
		t.Errorf("final state = %+v", final)
	}

	// Gameplay input is ignored until the new game signal
	for i := 0; i < 20; i++ {
		g.Step(moveRight)
	}
	if g.State() != final {
		t.Fatalf("state changed during game over: %+v", g.State())
	}

	ui.click()
	g.Step(noKeys)

	state := g.State()
	if state.Phase != core.PhaseReady {
		t.Fatalf("phase = %v after new game, expected Ready", state.Phase)
	}
	if ui.hidden != 1 {
		t.Errorf("Hide called %d times, expected 1", ui.hidden)
	}
	if state.Distance != 0 || state.Ticks != 0 || state.Segments != 1 {
		t.Errorf("new run state = %+v", state)
	}
	w := g.Session().Walk()
	if w.Boy().Kind() != player.Idle {
		t.Errorf("player = %v, expected Idle", w.Boy().Kind())
	}
	if w.Timeline() <= 0 || len(w.Obstacles()) != 2 {
		t.Errorf("new run timeline %d with %d obstacles", w.Timeline(), len(w.Obstacles()))
	}
	if g.Session().Runs() != 2 {
		t.Errorf("Runs() = %d, expected 2", g.Session().Runs())
	}
}

func TestStagedConfigWaitsForNewRun(t *testing.T) {
	g, ui := newGame(t, 4)
	g.Step(moveRight)

	faster := config.DefaultWalkConfig()
	faster.Physics.RunningSpeed = 6
	if err := g.StageConfig(faster); err != nil {
		t.Fatal(err)
	}
	if speed := g.Session().Walk().Boy().WalkingSpeed(); speed != 4 {
		t.Fatalf("running speed changed mid-run to %d", speed)
	}

	runUntil(t, g, noKeys, 1000, func() bool { return g.State().Phase == core.PhaseGameOver })
	ui.click()
	g.Step(noKeys)
	g.Step(moveRight)

	if speed := g.Session().Walk().Boy().WalkingSpeed(); speed != 6 {
		t.Errorf("running speed = %d after new run, expected 6", speed)
	}

	bad := config.DefaultWalkConfig()
	bad.Physics.Gravity = 0
	if err := g.StageConfig(bad); err == nil {
		t.Error("StageConfig() should reject an invalid config")
	}
}

func TestTickUsesFixedSteps(t *testing.T) {
	g, _ := newGame(t, 8)
	g.Step(moveRight)

	g.Tick(noKeys, 50*time.Millisecond)
	if ticks := g.State().Ticks; ticks != 3 {
		t.Errorf("Ticks = %d after 50ms at 60Hz, expected 3", ticks)
	}

	g.Tick(noKeys, 10*time.Millisecond)
	if ticks := g.State().Ticks; ticks != 3 {
		t.Errorf("Ticks = %d after a partial frame, expected 3", ticks)
	}
	g.Tick(noKeys, 7*time.Millisecond)
	if ticks := g.State().Ticks; ticks != 4 {
		t.Errorf("Ticks = %d once the remainder filled a frame, expected 4", ticks)
	}
}

func TestDeterminism(t *testing.T) {
	play := func() (core.GameState, int) {
		g, _ := newGame(t, 12345)
		g.Step(moveRight)
		for i := 0; i < 1500 && g.State().Phase == core.PhaseWalking; i++ {
			keys := noKeys
			if i%25 == 0 {
				keys = core.NewKeyState(core.KeyJump)
			}
			g.Step(keys)
		}
		return g.State(), g.Session().Walk().Timeline()
	}

	s1, t1 := play()
	s2, t2 := play()
	if s1 != s2 || t1 != t2 {
		t.Errorf("same seed diverged: %+v/%d vs %+v/%d", s1, t1, s2, t2)
	}
}

func TestRender(t *testing.T) {
	g, _ := newGame(t, 6)

	r := &recordingRenderer{}
	g.Render(r)
	if len(r.clears) != 1 || r.clears[0] != core.NewRect(0, 0, 600, 600) {
		t.Errorf("clears = %+v", r.clears)
	}
	// Two backgrounds, the player and the opening segment
	if r.images < 4 {
		t.Errorf("drew %d images", r.images)
	}
	if r.outlines != 0 || len(r.texts) != 0 {
		t.Error("debug output drawn without debug")
	}

	g.Session().Walk().debug = true
	r = &recordingRenderer{}
	g.Render(r)
	if r.outlines == 0 {
		t.Error("debug render drew no hit-boxes")
	}
	if len(r.texts) != 1 {
		t.Errorf("texts = %v, expected the frame rate", r.texts)
	}

	New().Render(r) // loading games draw nothing
}
