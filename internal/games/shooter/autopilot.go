package shooter

import (
	"github.com/vovakirdan/battleship-shooter/internal/core"
	"github.com/vovakirdan/battleship-shooter/internal/games/shooter/sim"
)

// Autopilot is a deterministic input source for headless runs. It dodges
// enemies about to hit the ship, chases nearby power-ups and otherwise lines
// up under the lowest enemy and fires at a fixed cadence.
type Autopilot struct {
	FireEvery int // Ticks between shots; <= 0 means every 8 ticks
	DodgeZone int // Vertical distance above the ship treated as danger
	tick      int
}

// NewAutopilot creates an autopilot with default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{FireEvery: 8, DodgeZone: 120}
}

// Next chooses the intent for the next tick from the current snapshot.
func (a *Autopilot) Next(snap sim.Snapshot) sim.Intent {
	a.tick++
	every := a.FireEvery
	if every <= 0 {
		every = 8
	}

	var player core.Rect
	for _, e := range snap.Entities {
		if e.Kind == sim.KindPlayer {
			player = e.Rect
		}
	}

	in := sim.Intent{FireEdge: a.tick%every == 0}

	if dir, ok := a.dodge(snap, player); ok {
		in.MoveDir = dir
		return in
	}

	targetX, ok := a.target(snap, player)
	if !ok {
		return in
	}
	in.MoveDir = steer(player.CenterX(), targetX)
	return in
}

// dodge returns a direction away from the lowest enemy inside the danger
// zone above the ship.
func (a *Autopilot) dodge(snap sim.Snapshot, player core.Rect) (int, bool) {
	danger := core.NewRect(player.X-player.W/2, player.Y-a.DodgeZone, player.W*2, a.DodgeZone+player.H)
	found := false
	var threat core.Rect
	for _, e := range snap.Entities {
		if e.Kind != sim.KindEnemy || !e.Rect.Intersects(danger) {
			continue
		}
		if !found || e.Rect.Bottom() > threat.Bottom() {
			found = true
			threat = e.Rect
		}
	}
	if !found {
		return 0, false
	}

	// A centered threat sends the ship toward the wider side.
	goRight := threat.CenterX() < player.CenterX() ||
		(threat.CenterX() == player.CenterX() && player.CenterX() < snap.Width/2)
	switch {
	case goRight && player.Right() < snap.Width:
		return 1, true
	case goRight:
		return -1, true
	case player.X > 0:
		return -1, true
	default:
		return 1, true
	}
}

// target picks the x coordinate to line up with: the lowest power-up still
// above the ship, else the lowest visible enemy.
func (a *Autopilot) target(snap sim.Snapshot, player core.Rect) (int, bool) {
	var pu, enemy core.Rect
	havePU, haveEnemy := false, false
	for _, e := range snap.Entities {
		switch e.Kind {
		case sim.KindPowerUp:
			if e.Rect.Bottom() < player.Y && (!havePU || e.Rect.Y > pu.Y) {
				havePU, pu = true, e.Rect
			}
		case sim.KindEnemy:
			if e.Rect.Bottom() > 0 && (!haveEnemy || e.Rect.Y > enemy.Y) {
				haveEnemy, enemy = true, e.Rect
			}
		}
	}

	switch {
	case havePU:
		return pu.CenterX(), true
	case haveEnemy:
		// Single shots leave 15px right of the ship's center.
		return enemy.CenterX() - 15, true
	default:
		return 0, false
	}
}

func steer(from, to int) int {
	const deadband = 3
	switch {
	case to > from+deadband:
		return 1
	case to < from-deadband:
		return -1
	default:
		return 0
	}
}

// RunHeadless drives a session with the autopilot for at most ticks steps
// and returns the last step result.
func RunHeadless(s *sim.Session, pilot *Autopilot, ticks int) sim.StepResult {
	var res sim.StepResult
	for i := 0; i < ticks && !s.Terminated(); i++ {
		res = s.Step(pilot.Next(s.Snapshot()))
	}
	if s.Terminated() {
		res.Outcome = s.Outcome()
	}
	res.Tick = s.Tick()
	return res
}
