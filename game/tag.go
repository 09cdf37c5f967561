package game

import "math"

// AttemptTag resolves a tag attempt issued by taggerID at server time now.
// Only the current catcher may tag. The first runner that is not immune and
// lies strictly inside the tag range takes over the catcher role; tagged is
// empty when nothing changed.
func (w *World) AttemptTag(taggerID string, now int64) (tagged string) {
	if taggerID == "" || taggerID != w.CatcherID {
		return ""
	}
	catcher, ok := w.Players[taggerID]
	if !ok {
		return ""
	}
	reach := catcher.Radius * TagRangeFactor
	for id, runner := range w.Players {
		if id == taggerID || runner.Immune(now) {
			continue
		}
		if math.Hypot(runner.X-catcher.X, runner.Y-catcher.Y) >= reach {
			continue
		}
		catcher.Score += PointsPerTag
		runner.Score -= PointsTaggedLoss
		w.CatcherID = id
		return id
	}
	return ""
}
