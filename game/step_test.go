package game

import (
	"math"
	"math/rand"
	"testing"
)

func newTestWorld() *World {
	return NewWorld(rand.New(rand.NewSource(1)))
}

// parkPowerUps moves the pool into the far corner so scripted players never
// collect anything by accident.
func parkPowerUps(w *World) {
	for i := range w.PowerUps {
		w.PowerUps[i].X = MapWidth - PowerUpRadius
		w.PowerUps[i].Y = MapHeight - PowerUpRadius
	}
}

func place(w *World, id string, x, y float64) *Player {
	p, _ := w.AddPlayer(id, 0)
	p.X, p.Y = x, y
	return p
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestStepMovesPlayerAndAdvancesTick(t *testing.T) {
	w := newTestWorld()
	parkPowerUps(w)
	p := place(w, "p1", 400, 400)
	w.SetDirection("p1", 1, 0)

	Step(w, 0)
	if w.Tick != 1 {
		t.Fatalf("tick after 1 step = %d, want 1", w.Tick)
	}
	if !approx(p.X, 400+BaseSpeed) {
		t.Fatalf("x after 1 step = %f, want %f", p.X, 400+BaseSpeed)
	}

	for i := 0; i < 4; i++ {
		Step(w, 0)
	}
	if w.Tick != 5 {
		t.Fatalf("tick after 5 steps = %d, want 5", w.Tick)
	}
	if !approx(p.X, 400+5*BaseSpeed) || p.Y != 400 {
		t.Fatalf("position after 5 steps = (%f,%f)", p.X, p.Y)
	}
}

func TestStepKeepsPlayersInsideMap(t *testing.T) {
	w := newTestWorld()
	dirs := [][2]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {math.Sqrt2 / 2, -math.Sqrt2 / 2}}
	for i, d := range dirs {
		id := string(rune('a' + i))
		w.AddPlayer(id, 0)
		if !w.SetDirection(id, d[0], d[1]) {
			t.Fatalf("direction %v rejected", d)
		}
		w.Players[id].SpeedBoosts = []int64{1 << 40, 1 << 40, 1 << 40}
	}

	for tick := 0; tick < 2000; tick++ {
		Step(w, int64(tick))
		for id, p := range w.Players {
			if p.X < p.Radius || p.X > MapWidth-p.Radius || p.Y < p.Radius || p.Y > MapHeight-p.Radius {
				t.Fatalf("tick %d: player %s out of bounds at (%f,%f)", tick, id, p.X, p.Y)
			}
		}
	}
}

func TestStepKeepsPowerUpPoolFull(t *testing.T) {
	w := NewWorld(rand.New(rand.NewSource(7)))
	for i := 0; i < 6; i++ {
		id := string(rune('a' + i))
		w.AddPlayer(id, 0)
		a := float64(i)
		w.SetDirection(id, math.Cos(a), math.Sin(a))
	}
	if len(w.PowerUps) != PowerUpPoolSize {
		t.Fatalf("initial pool = %d, want %d", len(w.PowerUps), PowerUpPoolSize)
	}
	w.PowerUps[0].X, w.PowerUps[0].Y = w.Players["a"].X, w.Players["a"].Y

	collected := 0
	for tick := 0; tick < 3000; tick++ {
		res := Step(w, int64(tick)*16)
		collected += len(res.Pickups)
		if len(w.PowerUps) != PowerUpPoolSize {
			t.Fatalf("tick %d: pool = %d, want %d", tick, len(w.PowerUps), PowerUpPoolSize)
		}
	}
	if collected == 0 {
		t.Fatalf("expected at least one pickup over 3000 ticks")
	}
}

func TestPassiveScoring(t *testing.T) {
	w := newTestWorld()
	parkPowerUps(w)
	catcher := place(w, "c", 100, 100)
	runner := place(w, "r", 600, 600)

	for i := 0; i < 10; i++ {
		Step(w, 0)
	}
	if !approx(catcher.Score, -10*CatcherDrainPerTick) {
		t.Fatalf("catcher score = %f, want %f", catcher.Score, -10*CatcherDrainPerTick)
	}
	if !approx(runner.Score, 10*RunnerGainPerTick) {
		t.Fatalf("runner score = %f, want %f", runner.Score, 10*RunnerGainPerTick)
	}
}

func TestStepDoesNotPanicOnEmptyWorld(t *testing.T) {
	w := newTestWorld()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Step panicked on empty world: %v", r)
		}
	}()
	Step(w, 0)
	if w.CatcherID != "" {
		t.Fatalf("catcher = %q on empty world", w.CatcherID)
	}
}
