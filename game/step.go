package game

// Pickup records one power-up collected during a step.
type Pickup struct {
	PlayerID string
	Type     PowerUpType
}

type StepResult struct {
	Pickups []Pickup
}

// Step advances the world by one tick at server time now (ms): expire speed
// boosts, integrate movement, resolve power-up pickups, then apply passive
// scoring. Tagging is not part of the step; see AttemptTag.
func Step(w *World, now int64) StepResult {
	w.Tick++
	var res StepResult

	ids := w.PlayerIDs()
	for _, id := range ids {
		p := w.Players[id]
		expireBoosts(p, now)
		integrate(p)
	}
	for _, id := range ids {
		p, ok := w.Players[id]
		if !ok {
			continue
		}
		res.Pickups = append(res.Pickups, w.collectPowerUps(p, now)...)
	}
	applyPassiveScore(w)
	return res
}

func integrate(p *Player) {
	speed := p.EffectiveSpeed()
	p.X = clamp(p.X+p.DirX*speed, p.Radius, MapWidth-p.Radius)
	p.Y = clamp(p.Y+p.DirY*speed, p.Radius, MapHeight-p.Radius)
}

func expireBoosts(p *Player, now int64) {
	kept := p.SpeedBoosts[:0]
	for _, exp := range p.SpeedBoosts {
		if exp > now {
			kept = append(kept, exp)
		}
	}
	p.SpeedBoosts = kept
}
