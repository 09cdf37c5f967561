package game

import "math"

func (w *World) spawnPowerUp() PowerUp {
	return PowerUp{
		Type:   powerUpTypes[w.rng.Intn(len(powerUpTypes))],
		X:      randomIn(w.rng, PowerUpRadius, MapWidth-PowerUpRadius),
		Y:      randomIn(w.rng, PowerUpRadius, MapHeight-PowerUpRadius),
		Radius: PowerUpRadius,
	}
}

// collectPowerUps removes every power-up p overlaps, replacing each one
// immediately so the pool never shrinks.
func (w *World) collectPowerUps(p *Player, now int64) []Pickup {
	var picked []Pickup
	for i := len(w.PowerUps) - 1; i >= 0; i-- {
		pu := w.PowerUps[i]
		if math.Hypot(p.X-pu.X, p.Y-pu.Y) >= p.Radius+pu.Radius {
			continue
		}
		w.PowerUps = append(w.PowerUps[:i], w.PowerUps[i+1:]...)
		applyEffect(p, pu.Type, now)
		p.Score += PointsPerPowerUp
		w.PowerUps = append(w.PowerUps, w.spawnPowerUp())
		picked = append(picked, Pickup{PlayerID: p.ID, Type: pu.Type})
	}
	return picked
}

func applyEffect(p *Player, t PowerUpType, now int64) {
	switch t {
	case PowerUpSpeed:
		p.SpeedBoosts = append(p.SpeedBoosts, now+EffectDurationMs)
	case PowerUpInvisibility:
		p.InvisibleExpiresAt = now + EffectDurationMs
	case PowerUpShield:
		p.ShieldExpiresAt = now + EffectDurationMs
	}
}
