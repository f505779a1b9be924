package shooter

import (
	"testing"

	"github.com/vovakirdan/battleship-shooter/internal/config"
	"github.com/vovakirdan/battleship-shooter/internal/core"
	"github.com/vovakirdan/battleship-shooter/internal/games/shooter/sim"
)

func pilotSnapshot(extra ...sim.EntityView) sim.Snapshot {
	entities := append([]sim.EntityView(nil), extra...)
	entities = append(entities, sim.EntityView{Kind: sim.KindPlayer, Rect: core.NewRect(375, 550, 50, 40)})
	return sim.Snapshot{Width: 800, Height: 600, Entities: entities}
}

func enemyAt(x, y int) sim.EntityView {
	return sim.EntityView{Kind: sim.KindEnemy, ID: 1, Rect: core.NewRect(x, y, 40, 30)}
}

func TestAutopilotSteering(t *testing.T) {
	tests := []struct {
		name string
		snap sim.Snapshot
		want int
	}{
		{"nothing to do", pilotSnapshot(), 0},
		{"chase enemy left", pilotSnapshot(enemyAt(100, 100)), -1},
		{"chase enemy right", pilotSnapshot(enemyAt(700, 100)), 1},
		{"already aligned", pilotSnapshot(enemyAt(395, 100)), 0},
		{"prefer power-up", pilotSnapshot(
			enemyAt(100, 100),
			sim.EntityView{Kind: sim.KindPowerUp, Rect: core.NewRect(600, 300, 20, 20)},
		), 1},
		{"ignore enemies above the screen", pilotSnapshot(enemyAt(100, -60)), 0},
		{"dodge threat from the left", pilotSnapshot(enemyAt(350, 480)), 1},
		{"dodge threat from the right", pilotSnapshot(enemyAt(390, 480)), -1},
		{"dodge centered threat", pilotSnapshot(enemyAt(380, 480)), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAutopilot()
			if got := a.Next(tt.snap).MoveDir; got != tt.want {
				t.Errorf("MoveDir = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAutopilotFireCadence(t *testing.T) {
	a := &Autopilot{FireEvery: 4, DodgeZone: 120}
	shots := 0
	for range 40 {
		if a.Next(pilotSnapshot()).FireEdge {
			shots++
		}
	}
	if shots != 10 {
		t.Errorf("shots = %d, want 10", shots)
	}
}

func TestRunHeadless(t *testing.T) {
	run := func() (sim.StepResult, uint64, int) {
		s, err := sim.NewSeeded(config.DefaultShooterConfig(), 60, 99)
		if err != nil {
			t.Fatalf("NewSeeded: %v", err)
		}
		res := RunHeadless(s, NewAutopilot(), 1500)
		snap := s.Snapshot()
		return res, snap.Hash(), s.Shots()
	}

	r1, h1, shots := run()
	r2, h2, _ := run()
	if h1 != h2 || r1.Tick != r2.Tick || r1.Outcome != r2.Outcome {
		t.Errorf("headless runs differ: %+v vs %+v", r1, r2)
	}
	if shots == 0 {
		t.Error("autopilot never fired")
	}
	if r1.Outcome == sim.OutcomeNone && r1.Tick != 1500 {
		t.Errorf("running session stopped at tick %d", r1.Tick)
	}
}
