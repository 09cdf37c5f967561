package game

import "sort"

type LeaderboardEntry struct {
	ID    string
	Score float64
}

func applyPassiveScore(w *World) {
	for id, p := range w.Players {
		if id == w.CatcherID {
			p.Score -= CatcherDrainPerTick
		} else {
			p.Score += RunnerGainPerTick
		}
	}
}

// Leaderboard returns every player ordered by score, highest first. Ties are
// broken by id so the order is stable between snapshots.
func (w *World) Leaderboard() []LeaderboardEntry {
	out := make([]LeaderboardEntry, 0, len(w.Players))
	for id, p := range w.Players {
		out = append(out, LeaderboardEntry{ID: id, Score: p.Score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ResetScores zeroes every score and returns the winner of the finished
// match, or "" when nobody is connected.
func (w *World) ResetScores() (winner string) {
	if board := w.Leaderboard(); len(board) > 0 {
		winner = board[0].ID
	}
	for _, p := range w.Players {
		p.Score = 0
	}
	return winner
}
