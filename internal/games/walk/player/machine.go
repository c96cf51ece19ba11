// Package player implements the runner's character: a closed state machine
// over six states, each carrying its own animation and physics context.
package player

import (
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// Kind identifies which of the player's states is active.
type Kind int

const (
	Idle Kind = iota
	Running
	Sliding
	Jumping
	Falling
	KnockedOut
)

// String returns the state name.
func (k Kind) String() string {
	switch k {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Sliding:
		return "Sliding"
	case Jumping:
		return "Jumping"
	case Falling:
		return "Falling"
	case KnockedOut:
		return "KnockedOut"
	default:
		return "Unknown"
	}
}

// Event is something that can happen to the player. The set is closed.
type Event interface {
	isEvent()
}

// Run starts the player running from Idle.
type Run struct{}

// Slide starts a slide, or holds one that is already in progress.
type Slide struct{}

// Jump launches the player from Running.
type Jump struct{}

// Land puts the player's feet on a surface whose top is at Y.
type Land struct {
	Y int
}

// KnockOut starts the death animation.
type KnockOut struct{}

// Update advances one fixed simulation tick.
type Update struct{}

func (Run) isEvent()      {}
func (Slide) isEvent()    {}
func (Jump) isEvent()     {}
func (Land) isEvent()     {}
func (KnockOut) isEvent() {}
func (Update) isEvent()   {}

// Machine is exactly one player state plus the context that state owns.
// It is immutable: Transition returns the next machine.
type Machine struct {
	kind Kind
	ctx  Context
}

// NewMachine creates an Idle player standing at the start position.
func NewMachine(phys Physics, audio engine.Audio, jumpSound engine.Sound) Machine {
	return Machine{kind: Idle, ctx: newContext(phys, audio, jumpSound)}
}

// Kind returns the active state.
func (m Machine) Kind() Kind {
	return m.kind
}

// Context returns a copy of the active state's context.
func (m Machine) Context() Context {
	return m.ctx
}

// KnockedOut reports whether the machine reached its terminal state.
func (m Machine) KnockedOut() bool {
	return m.kind == KnockedOut
}

// Transition applies ev to the machine. It is total: any pair of state and
// event without a rule returns the machine unchanged.
func (m Machine) Transition(ev Event) Machine {
	switch m.kind {
	case Idle:
		switch ev.(type) {
		case Run:
			return m.become(Running, m.ctx.resetFrame(RunAnimation).runRight())
		case Update:
			return m.with(m.ctx.update())
		}

	case Running:
		switch e := ev.(type) {
		case Slide:
			return m.become(Sliding, m.ctx.resetFrame(SlideAnimation))
		case Jump:
			return m.become(Jumping, m.ctx.
				setVerticalVelocity(m.ctx.physics.JumpSpeed).
				resetFrame(JumpAnimation).
				playJumpSound())
		case Land:
			return m.with(m.ctx.setOn(e.Y).setVerticalVelocity(0))
		case KnockOut:
			return m.knockOut()
		case Update:
			return m.with(m.ctx.update())
		}

	case Sliding:
		switch e := ev.(type) {
		case Slide:
			ctx := m.ctx
			ctx.Hold = true
			return m.with(ctx)
		case Land:
			return m.with(m.ctx.setOn(e.Y).setVerticalVelocity(0))
		case KnockOut:
			return m.knockOut()
		case Update:
			return m.updateSliding()
		}

	case Jumping:
		switch e := ev.(type) {
		case Land:
			return m.landJump(e.Y)
		case KnockOut:
			return m.knockOut()
		case Update:
			next := m.with(m.ctx.update())
			if next.ctx.Position.Y >= next.ctx.physics.Floor {
				return next.landJump(next.ctx.physics.Ground())
			}
			return next
		}

	case Falling:
		switch e := ev.(type) {
		case Land:
			return m.with(m.ctx.setOn(e.Y).setVerticalVelocity(0))
		case Update:
			next := m.with(m.ctx.update())
			if next.ctx.framesEnded() {
				return next.become(KnockedOut, next.ctx)
			}
			return next
		}

	case KnockedOut:
		// Terminal: only a fresh machine leaves this state.
	}

	return m
}

func (m Machine) with(ctx Context) Machine {
	return Machine{kind: m.kind, ctx: ctx}
}

func (m Machine) become(kind Kind, ctx Context) Machine {
	return Machine{kind: kind, ctx: ctx}
}

func (m Machine) knockOut() Machine {
	return m.become(Falling, m.ctx.resetFrame(DeadAnimation).stop())
}

func (m Machine) landJump(y int) Machine {
	return m.become(Running, m.ctx.
		resetFrame(RunAnimation).
		setOn(y).
		setVerticalVelocity(0))
}

// updateSliding stands the player back up once the slide animation ends,
// unless a Slide event arrived this tick.
func (m Machine) updateSliding() Machine {
	held := m.ctx.Hold
	next := m.with(m.ctx.update())
	if !held && next.ctx.framesEnded() {
		return next.become(Running, next.ctx.resetFrame(RunAnimation))
	}
	return next
}
