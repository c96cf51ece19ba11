package player

import (
	"testing"

	"github.com/vovakirdan/tui-walk/internal/engine"
)

type recordingAudio struct {
	played []string
}

func (a *recordingAudio) PlaySound(s engine.Sound) error {
	a.played = append(a.played, s.Name)
	return nil
}

func (a *recordingAudio) PlayLooping(engine.Sound) error { return nil }

func newRunning() Machine {
	return NewMachine(DefaultPhysics(), nil, engine.Sound{}).Transition(Run{})
}

func TestNewMachineIsIdle(t *testing.T) {
	m := NewMachine(DefaultPhysics(), nil, engine.Sound{})

	if m.Kind() != Idle {
		t.Fatalf("Kind() = %v, expected Idle", m.Kind())
	}
	ctx := m.Context()
	if ctx.Position.X != -20 || ctx.Position.Y != 479 {
		t.Errorf("start position = %+v, expected {-20 479}", ctx.Position)
	}
	if ctx.Animation != IdleAnimation || ctx.Frame != 0 {
		t.Errorf("animation = %+v frame %d", ctx.Animation, ctx.Frame)
	}
}

func TestGravityClamp(t *testing.T) {
	phys := DefaultPhysics()
	m := NewMachine(phys, nil, engine.Sound{})

	for i := 0; i < 20; i++ {
		m = m.Transition(Update{})
	}
	if vy := m.Context().Velocity.Y; vy != phys.TerminalVelocity {
		t.Fatalf("velocity after 20 ticks = %d, expected %d", vy, phys.TerminalVelocity)
	}

	for i := 0; i < 50; i++ {
		m = m.Transition(Update{})
		if vy := m.Context().Velocity.Y; vy > phys.TerminalVelocity {
			t.Fatalf("velocity exceeded terminal: %d", vy)
		}
	}
	if y := m.Context().Position.Y; y != phys.Floor {
		t.Errorf("position.y = %d, expected floor clamp %d", y, phys.Floor)
	}
}

func TestGravityClampOddTerminal(t *testing.T) {
	phys := DefaultPhysics()
	phys.Gravity = 3
	phys.TerminalVelocity = 10
	m := NewMachine(phys, nil, engine.Sound{})

	for i := 0; i < 10; i++ {
		m = m.Transition(Update{})
	}
	if vy := m.Context().Velocity.Y; vy != 10 {
		t.Errorf("velocity = %d, expected 10", vy)
	}
}

func TestRunFromIdle(t *testing.T) {
	m := newRunning()

	if m.Kind() != Running {
		t.Fatalf("Kind() = %v, expected Running", m.Kind())
	}
	ctx := m.Context()
	if ctx.Animation != RunAnimation {
		t.Errorf("animation = %s, expected Run", ctx.Animation.Name)
	}
	if ctx.Velocity.X != DefaultPhysics().RunningSpeed {
		t.Errorf("velocity.x = %d", ctx.Velocity.X)
	}
}

func TestSlidingAutoStand(t *testing.T) {
	m := newRunning().Transition(Slide{})
	if m.Kind() != Sliding {
		t.Fatalf("Kind() = %v, expected Sliding", m.Kind())
	}

	for i := 1; i < SlideAnimation.Frames; i++ {
		m = m.Transition(Update{})
		if m.Kind() != Sliding {
			t.Fatalf("stood up early at tick %d", i)
		}
	}

	m = m.Transition(Update{})
	if m.Kind() != Running {
		t.Fatalf("Kind() = %v after the slide ended, expected Running", m.Kind())
	}
	if m.Context().Animation != RunAnimation || m.Context().Frame != 0 {
		t.Errorf("animation = %s frame %d", m.Context().Animation.Name, m.Context().Frame)
	}
}

func TestSlidingHeld(t *testing.T) {
	m := newRunning().Transition(Slide{})

	for i := 0; i < SlideAnimation.Frames*5; i++ {
		m = m.Transition(Slide{}).Transition(Update{})
		if m.Kind() != Sliding {
			t.Fatalf("held slide ended at tick %d", i)
		}
	}

	// Letting go stands up at the end of the next pass through the animation
	for i := 0; i <= SlideAnimation.Frames+1 && m.Kind() == Sliding; i++ {
		m = m.Transition(Update{})
	}
	if m.Kind() != Running {
		t.Errorf("Kind() = %v after release, expected Running", m.Kind())
	}
}

func TestHoldLastsOneTick(t *testing.T) {
	m := newRunning().Transition(Slide{}).Transition(Slide{})
	if !m.Context().Hold {
		t.Fatal("Slide while sliding should set hold")
	}
	m = m.Transition(Update{})
	if m.Context().Hold {
		t.Error("hold should clear on update")
	}
}

func TestJumpLandRoundTrip(t *testing.T) {
	audio := &recordingAudio{}
	phys := DefaultPhysics()
	m := NewMachine(phys, audio, engine.Sound{Name: "jump"}).
		Transition(Run{}).
		Transition(Jump{})

	if m.Kind() != Jumping {
		t.Fatalf("Kind() = %v, expected Jumping", m.Kind())
	}
	if vy := m.Context().Velocity.Y; vy != phys.JumpSpeed {
		t.Errorf("takeoff velocity = %d, expected %d", vy, phys.JumpSpeed)
	}
	if len(audio.played) != 1 || audio.played[0] != "jump" {
		t.Errorf("played = %v, expected [jump]", audio.played)
	}

	minY := m.Context().Position.Y
	ticks := 0
	for m.Kind() == Jumping && ticks < 200 {
		m = m.Transition(Update{})
		if y := m.Context().Position.Y; y < minY {
			minY = y
		}
		ticks++
	}

	if m.Kind() != Running {
		t.Fatalf("Kind() = %v after %d ticks, expected Running", m.Kind(), ticks)
	}
	ctx := m.Context()
	if ctx.Velocity.Y != 0 {
		t.Errorf("velocity.y = %d after landing, expected 0", ctx.Velocity.Y)
	}
	if ctx.Position.Y != phys.Floor {
		t.Errorf("position.y = %d after landing, expected %d", ctx.Position.Y, phys.Floor)
	}
	if minY >= phys.Floor {
		t.Error("jump never left the floor")
	}
}

func TestLand(t *testing.T) {
	tests := []struct {
		name     string
		machine  Machine
		expected Kind
	}{
		{"running", newRunning(), Running},
		{"sliding", newRunning().Transition(Slide{}), Sliding},
		{"jumping", newRunning().Transition(Jump{}), Running},
		{"falling", newRunning().Transition(KnockOut{}), Falling},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.machine.Transition(Land{Y: 420})
			if m.Kind() != tc.expected {
				t.Errorf("Kind() = %v, expected %v", m.Kind(), tc.expected)
			}
			ctx := m.Context()
			if ctx.Position.Y != 420-DefaultPhysics().Height {
				t.Errorf("position.y = %d, expected %d", ctx.Position.Y, 420-DefaultPhysics().Height)
			}
			if ctx.Velocity.Y != 0 {
				t.Errorf("velocity.y = %d, expected 0", ctx.Velocity.Y)
			}
		})
	}
}

func TestKnockOut(t *testing.T) {
	tests := []struct {
		name    string
		machine Machine
	}{
		{"running", newRunning()},
		{"sliding", newRunning().Transition(Slide{})},
		{"jumping", newRunning().Transition(Jump{})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.machine.Transition(KnockOut{})
			if m.Kind() != Falling {
				t.Fatalf("Kind() = %v, expected Falling", m.Kind())
			}
			ctx := m.Context()
			if ctx.Animation != DeadAnimation || ctx.Frame != 0 {
				t.Errorf("animation = %s frame %d", ctx.Animation.Name, ctx.Frame)
			}
			if ctx.Velocity.X != 0 {
				t.Errorf("velocity.x = %d, expected 0", ctx.Velocity.X)
			}
			if ctx.Velocity.Y < 0 {
				t.Errorf("velocity.y = %d, expected >= 0", ctx.Velocity.Y)
			}
		})
	}
}

func TestFallingBecomesKnockedOut(t *testing.T) {
	m := newRunning().Transition(KnockOut{})

	for i := 1; i < DeadAnimation.Frames; i++ {
		m = m.Transition(Update{})
		if m.Kind() != Falling {
			t.Fatalf("knocked out early at tick %d", i)
		}
	}
	m = m.Transition(Update{})
	if !m.KnockedOut() {
		t.Fatalf("Kind() = %v, expected KnockedOut", m.Kind())
	}
}

func TestKnockedOutAbsorbsEvents(t *testing.T) {
	m := newRunning().Transition(KnockOut{})
	for !m.KnockedOut() {
		m = m.Transition(Update{})
	}

	events := []Event{Run{}, Slide{}, Jump{}, Land{Y: 300}, KnockOut{}, Update{}}
	for _, ev := range events {
		if next := m.Transition(ev); next != m {
			t.Errorf("%T changed a knocked out machine", ev)
		}
	}
}

func TestUndefinedPairsAreNoOps(t *testing.T) {
	idle := NewMachine(DefaultPhysics(), nil, engine.Sound{})
	running := newRunning()
	sliding := running.Transition(Slide{})
	jumping := running.Transition(Jump{})
	falling := running.Transition(KnockOut{})

	tests := []struct {
		name    string
		machine Machine
		event   Event
	}{
		{"idle slide", idle, Slide{}},
		{"idle jump", idle, Jump{}},
		{"idle land", idle, Land{Y: 300}},
		{"idle knock out", idle, KnockOut{}},
		{"running run", running, Run{}},
		{"sliding run", sliding, Run{}},
		{"sliding jump", sliding, Jump{}},
		{"jumping run", jumping, Run{}},
		{"jumping slide", jumping, Slide{}},
		{"jumping jump", jumping, Jump{}},
		{"falling run", falling, Run{}},
		{"falling jump", falling, Jump{}},
		{"falling slide", falling, Slide{}},
		{"falling knock out", falling, KnockOut{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if next := tc.machine.Transition(tc.event); next != tc.machine {
				t.Errorf("Transition(%T) changed the machine", tc.event)
			}
		})
	}
}

func TestTransitionDoesNotMutate(t *testing.T) {
	m := newRunning()
	before := m.Context()

	_ = m.Transition(Jump{})
	_ = m.Transition(Update{})

	if m.Context() != before || m.Kind() != Running {
		t.Error("Transition mutated its receiver")
	}
}
