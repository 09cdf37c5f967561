package game

import (
	"math"
	"math/rand"
	"sort"
)

// Internal truth authoritative game state

type PowerUpType uint8

const (
	PowerUpSpeed PowerUpType = iota
	PowerUpInvisibility
	PowerUpShield
)

var powerUpTypes = []PowerUpType{PowerUpSpeed, PowerUpInvisibility, PowerUpShield}

func (t PowerUpType) String() string {
	switch t {
	case PowerUpSpeed:
		return "speed"
	case PowerUpInvisibility:
		return "invisibility"
	case PowerUpShield:
		return "shield"
	}
	return "unknown"
}

type PowerUp struct {
	Type   PowerUpType
	X, Y   float64
	Radius float64
}

type Player struct {
	ID     string
	Key    uint32
	Color  string
	X, Y   float64
	DirX   float64
	DirY   float64
	Speed  float64 // base speed, boosts are applied on top
	Radius float64
	Score  float64

	ShieldExpiresAt    int64
	InvisibleExpiresAt int64
	// one entry per speed pickup still running
	SpeedBoosts []int64
}

// EffectiveSpeed is the base speed compounded by every running speed boost.
func (p *Player) EffectiveSpeed() float64 {
	return p.Speed * math.Pow(SpeedBoostMult, float64(len(p.SpeedBoosts)))
}

func (p *Player) Shielded(now int64) bool  { return p.ShieldExpiresAt > now }
func (p *Player) Invisible(now int64) bool { return p.InvisibleExpiresAt > now }

// Immune reports whether the player cannot be tagged at now.
func (p *Player) Immune(now int64) bool {
	return p.Shielded(now) || p.Invisible(now)
}

// World is the single owned instance of simulation state. It is not safe for
// concurrent use; the room goroutine is its only writer.
type World struct {
	Tick      int
	Players   map[string]*Player
	PowerUps  []PowerUp
	CatcherID string

	rng *rand.Rand
}

// NewWorld returns an empty world with a full power-up pool.
func NewWorld(rng *rand.Rand) *World {
	w := &World{
		Players:  make(map[string]*Player),
		PowerUps: make([]PowerUp, 0, PowerUpPoolSize),
		rng:      rng,
	}
	for len(w.PowerUps) < PowerUpPoolSize {
		w.PowerUps = append(w.PowerUps, w.spawnPowerUp())
	}
	return w
}

// AddPlayer spawns a player at a random position with a random color. The
// first player to enter an empty world becomes the catcher; becameCatcher
// reports that.
func (w *World) AddPlayer(id string, key uint32) (p *Player, becameCatcher bool) {
	p = &Player{
		ID:     id,
		Key:    key,
		Color:  Colors[w.rng.Intn(len(Colors))],
		X:      randomIn(w.rng, PlayerRadius, MapWidth-PlayerRadius),
		Y:      randomIn(w.rng, PlayerRadius, MapHeight-PlayerRadius),
		Speed:  BaseSpeed,
		Radius: PlayerRadius,
	}
	w.Players[id] = p
	if w.CatcherID == "" {
		w.CatcherID = id
		becameCatcher = true
	}
	return p, becameCatcher
}

// RemovePlayer deletes the player. If it held the catcher role a replacement
// is drawn uniformly from the remaining players and returned as newCatcher;
// newCatcher is empty when the role did not move.
func (w *World) RemovePlayer(id string) (newCatcher string) {
	if _, ok := w.Players[id]; !ok {
		return ""
	}
	delete(w.Players, id)
	if id != w.CatcherID {
		return ""
	}
	w.CatcherID = ""
	if len(w.Players) == 0 {
		return ""
	}
	ids := w.PlayerIDs()
	w.CatcherID = ids[w.rng.Intn(len(ids))]
	return w.CatcherID
}

// PlayerIDs returns the ids of all players in a stable order.
func (w *World) PlayerIDs() []string {
	ids := make([]string, 0, len(w.Players))
	for id := range w.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func randomIn(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
