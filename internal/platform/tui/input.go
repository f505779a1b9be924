package tui

import (
	"github.com/vovakirdan/battleship-shooter/internal/core"
)

// Terminals report key presses and autorepeats but never releases, so held
// keys are approximated.
const (
	// DefaultHoldTicks is how long a direction key stays held after its
	// last press or autorepeat.
	DefaultHoldTicks = 15
	// DefaultFireGap is the number of quiet ticks that separate two fire
	// presses; autorepeats closer than that belong to the same press. It
	// exceeds the usual 250-500ms autorepeat delay at 60 ticks per second.
	DefaultFireGap = 32
)

// InputLatch turns the stream of key events between two ticks into one
// InputFrame per tick.
type InputLatch struct {
	HoldTicks int
	FireGap   int

	dir      int // -1, 0, +1
	dirTicks int // Ticks left on the held direction

	firePending bool
	fireIdle    int // Ticks since the last fire key event
	pending     core.InputFrame
}

// NewInputLatch creates a latch with the default timings.
func NewInputLatch() *InputLatch {
	return &InputLatch{
		HoldTicks: DefaultHoldTicks,
		FireGap:   DefaultFireGap,
		fireIdle:  DefaultFireGap + 1,
		pending:   core.NewInputFrame(),
	}
}

// Press records one key event.
func (l *InputLatch) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		l.hold(-1)
	case core.ActionRight:
		l.hold(1)
	case core.ActionFire:
		// Autorepeat of a held key is not a new press.
		if l.fireIdle > l.FireGap {
			l.firePending = true
		}
		l.fireIdle = 0
	case core.ActionNone:
	default:
		l.pending.Set(a)
	}
}

// hold starts or refreshes a direction. The opposite key takes over at once.
func (l *InputLatch) hold(dir int) {
	l.dir = dir
	l.dirTicks = l.HoldTicks
}

// Frame builds the input for the next tick and advances the latch timers.
func (l *InputLatch) Frame() core.InputFrame {
	f := l.pending
	l.pending = core.NewInputFrame()

	if l.dirTicks > 0 {
		switch l.dir {
		case -1:
			f.Set(core.ActionLeft)
		case 1:
			f.Set(core.ActionRight)
		}
		l.dirTicks--
		if l.dirTicks == 0 {
			l.dir = 0
		}
	}

	if l.firePending {
		f.Set(core.ActionFire)
		l.firePending = false
	}
	if l.fireIdle <= l.FireGap {
		l.fireIdle++
	}

	return f
}

// Release drops every held or pending input, e.g. after a restart.
func (l *InputLatch) Release() {
	l.dir = 0
	l.dirTicks = 0
	l.firePending = false
	l.fireIdle = l.FireGap + 1
	l.pending = core.NewInputFrame()
}
