package room

import (
	"log"

	"tagarena/game"
	"tagarena/protocol"
)

// send delivers one frame. A failing conn is only marked here; the session
// is torn down by dropFailed once the current step is done with the world.
func (r *Room) send(sess *session, t string, payload any) {
	if _, bad := r.failed[sess.id]; bad {
		return
	}
	b, err := r.codec.Encode(t, payload)
	if err != nil {
		log.Printf("room: encode %s: %v", t, err)
		return
	}
	r.write(sess, b)
}

func (r *Room) write(sess *session, b []byte) {
	if _, bad := r.failed[sess.id]; bad {
		return
	}
	if err := sess.conn.Send(b); err != nil {
		log.Printf("room: send to %s failed: %v", sess.id, err)
		r.failed[sess.id] = struct{}{}
	}
}

func (r *Room) sendTo(id string, t string, payload any) {
	if sess, ok := r.sessions.get(id); ok {
		r.send(sess, t, payload)
	}
}

// broadcast encodes once and fans the frame out to every session.
func (r *Room) broadcast(t string, payload any) {
	b, err := r.codec.Encode(t, payload)
	if err != nil {
		log.Printf("room: encode %s: %v", t, err)
		return
	}
	for _, sess := range r.sessions.byID {
		r.write(sess, b)
	}
}

func (r *Room) broadcastState(now int64) {
	r.broadcast(protocol.MsgUpdatePlayers, r.buildSnapshot(now))
}

func (r *Room) buildSnapshot(now int64) protocol.State {
	snapshot := protocol.State{
		CatcherID: r.world.CatcherID,
		TimeNow:   now,
		Players:   make([]protocol.PlayerSnapshot, 0, len(r.world.Players)),
		PowerUps:  r.powerUpSnapshots(),
	}
	for _, id := range r.world.PlayerIDs() {
		p := r.world.Players[id]
		snapshot.Players = append(snapshot.Players, protocol.PlayerSnapshot{
			ID:        id,
			X:         protocol.ObfuscateCoord(p.X, p.Key),
			Y:         protocol.ObfuscateCoord(p.Y, p.Key),
			Radius:    p.Radius,
			Score:     p.Score,
			Color:     p.Color,
			Speed:     p.EffectiveSpeed(),
			Invisible: p.InvisibleExpiresAt,
			Shield:    p.ShieldExpiresAt,
			Key:       p.Key,
		})
	}
	return snapshot
}

func (r *Room) powerUpSnapshots() []protocol.PowerUpSnapshot {
	out := make([]protocol.PowerUpSnapshot, 0, len(r.world.PowerUps))
	for _, pu := range r.world.PowerUps {
		out = append(out, protocol.PowerUpSnapshot{
			Type:   pu.Type.String(),
			X:      pu.X,
			Y:      pu.Y,
			Radius: pu.Radius,
		})
	}
	return out
}

func playerUpdate(p *game.Player) protocol.PlayerUpdate {
	return protocol.PlayerUpdate{
		X:         protocol.ObfuscateCoord(p.X, p.Key),
		Y:         protocol.ObfuscateCoord(p.Y, p.Key),
		Score:     p.Score,
		Color:     p.Color,
		Radius:    p.Radius,
		Invisible: p.InvisibleExpiresAt,
		Shield:    p.ShieldExpiresAt,
		Key:       p.Key,
		Speed:     p.EffectiveSpeed(),
	}
}

// sendPlayerUpdates sends each player its own fields when they changed since
// the last updatePlayer it received.
func (r *Room) sendPlayerUpdates() {
	for id, sess := range r.sessions.byID {
		p, ok := r.world.Players[id]
		if !ok {
			continue
		}
		u := playerUpdate(p)
		if last, ok := r.lastSent[id]; ok && last == u {
			continue
		}
		r.lastSent[id] = u
		r.send(sess, protocol.MsgUpdatePlayer, u)
	}
}

func (r *Room) broadcastLeaderboard() {
	board := r.world.Leaderboard()
	entries := make([]protocol.LeaderboardEntry, 0, len(board))
	for _, e := range board {
		entries = append(entries, protocol.LeaderboardEntry{ID: e.ID, Score: e.Score})
	}
	r.broadcast(protocol.MsgUpdateLeaderboard, protocol.Leaderboard{Entries: entries})
}
