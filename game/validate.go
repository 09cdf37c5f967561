package game

import "math"

// ValidDirection reports whether (x, y) is close enough to a unit vector to
// be accepted as a heading. NaN and infinite components are rejected.
func ValidDirection(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	l := math.Hypot(x, y)
	return l >= DirectionMinLength && l <= DirectionMaxLength
}

// SetDirection replaces the player's heading if the vector is plausible.
// Rejected vectors and unknown players leave the world untouched.
func (w *World) SetDirection(id string, x, y float64) bool {
	p, ok := w.Players[id]
	if !ok || !ValidDirection(x, y) {
		return false
	}
	p.DirX, p.DirY = x, y
	return true
}
