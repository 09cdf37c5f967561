package room

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"tagarena/game"
	"tagarena/protocol"
)

type Options struct {
	Codec protocol.Codec
	// MatchDuration of zero plays one endless match.
	MatchDuration time.Duration
	// Now returns server time in ms. Defaults to the wall clock.
	Now  func() int64
	Rand *rand.Rand
}

// Room is the single writer of the world. Everything that touches it,
// commands and ticks alike, runs on the Run goroutine.
type Room struct {
	Inbox chan any

	codec         protocol.Codec
	world         *game.World
	sessions      *sessions
	lastSent      map[string]protocol.PlayerUpdate
	failed        map[string]struct{}
	now           func() int64
	matchDuration int64
	matchEndsAt   int64

	quit     chan struct{}
	stopOnce sync.Once
}

func New(opts Options) *Room {
	if opts.Codec == nil {
		opts.Codec = protocol.JSON
	}
	if opts.Now == nil {
		opts.Now = func() int64 { return time.Now().UnixMilli() }
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r := &Room{
		Inbox:         make(chan any, 256),
		codec:         opts.Codec,
		world:         game.NewWorld(opts.Rand),
		sessions:      newSessions(),
		lastSent:      make(map[string]protocol.PlayerUpdate),
		failed:        make(map[string]struct{}),
		now:           opts.Now,
		matchDuration: opts.MatchDuration.Milliseconds(),
		quit:          make(chan struct{}),
	}
	if r.matchDuration > 0 {
		r.matchEndsAt = r.now() + r.matchDuration
	}
	return r
}

func (r *Room) Codec() protocol.Codec { return r.codec }

func (r *Room) Stop() {
	r.stopOnce.Do(func() { close(r.quit) })
}

// Submit queues a command for the room goroutine. It reports false once the
// room has stopped.
func (r *Room) Submit(cmd any) bool {
	select {
	case <-r.quit:
		return false
	default:
	}
	select {
	case r.Inbox <- cmd:
		return true
	case <-r.quit:
		return false
	}
}

// Run drives the fixed-rate simulation. A slow step delays the next one;
// missed ticks are dropped by the ticker rather than replayed.
func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / protocol.SimTickHz)
	defer ticker.Stop()
	board := time.NewTicker(protocol.LeaderboardInterval)
	defer board.Stop()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.tick()
		case <-board.C:
			r.broadcastLeaderboard()
		}
		r.dropFailed()
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		r.handleJoin(c)
	case SetDirection:
		r.world.SetDirection(c.PlayerID, c.X, c.Y)
	case AttemptTag:
		r.handleAttemptTag(c.PlayerID)
	case Leave:
		r.removePlayer(c.PlayerID)
	case Inspect:
		if c.Reply != nil {
			c.Reply <- r.debugState()
		}
	default:
		log.Printf("room: ignoring unknown command %T", cmd)
	}
}

func (r *Room) handleJoin(c Join) {
	sess, err := r.sessions.open(c.Conn)
	if err != nil {
		log.Printf("room: join failed: %v", err)
		_ = c.Conn.Close()
		if c.Reply != nil {
			c.Reply <- JoinResult{}
		}
		return
	}
	p, becameCatcher := r.world.AddPlayer(sess.id, sess.key)
	log.Printf("room: player %s joined (%d connected)", sess.id, r.sessions.len())

	if becameCatcher {
		r.send(sess, protocol.MsgYouAreCatcher, nil)
	}
	r.send(sess, protocol.MsgInitialize, protocol.Initialize{
		ID:        p.ID,
		X:         p.X,
		Y:         p.Y,
		Radius:    p.Radius,
		Color:     p.Color,
		Speed:     p.EffectiveSpeed(),
		Score:     p.Score,
		Invisible: p.InvisibleExpiresAt,
		Shield:    p.ShieldExpiresAt,
		Key:       p.Key,
	})
	if c.Reply != nil {
		c.Reply <- JoinResult{PlayerID: sess.id, Key: sess.key}
	}
	r.broadcastState(r.now())
}

func (r *Room) handleAttemptTag(id string) {
	if id == "" || id != r.world.CatcherID {
		return
	}
	if tagged := r.world.AttemptTag(id, r.now()); tagged != "" {
		log.Printf("room: %s tagged %s", id, tagged)
		r.sendTo(tagged, protocol.MsgYouAreCatcher, nil)
	}
	r.broadcastState(r.now())
}

// removePlayer drops a session and its player. Unknown ids are a no-op so a
// stale Leave after a failed send is harmless.
func (r *Room) removePlayer(id string) {
	sess, ok := r.sessions.remove(id)
	if !ok {
		return
	}
	_ = sess.conn.Close()
	delete(r.lastSent, id)
	delete(r.failed, id)
	next := r.world.RemovePlayer(id)
	log.Printf("room: player %s left (%d connected)", id, r.sessions.len())
	if next != "" {
		log.Printf("room: catcher role passed to %s", next)
		r.sendTo(next, protocol.MsgYouAreCatcher, nil)
	}
	r.broadcastState(r.now())
}

// dropFailed removes every session whose last send failed. Removal
// broadcasts again, so it loops until nothing new fails.
func (r *Room) dropFailed() {
	for len(r.failed) > 0 {
		for id := range r.failed {
			delete(r.failed, id)
			r.removePlayer(id)
		}
	}
}

func (r *Room) tick() {
	now := r.now()
	res := game.Step(r.world, now)
	for _, pk := range res.Pickups {
		r.sendTo(pk.PlayerID, protocol.MsgPowerUpCollected, protocol.PowerUpCollected{
			ID:   pk.PlayerID,
			Type: pk.Type.String(),
		})
	}
	if r.matchDuration > 0 && now >= r.matchEndsAt {
		r.endMatch(now)
	}
	r.broadcastState(now)
	if len(res.Pickups) > 0 {
		r.broadcast(protocol.MsgUpdatePowerUps, protocol.PowerUps{PowerUps: r.powerUpSnapshots()})
	}
	r.sendPlayerUpdates()
}

func (r *Room) endMatch(now int64) {
	winner := r.world.ResetScores()
	log.Printf("room: match over, winner %q", winner)
	r.broadcast(protocol.MsgGameOver, protocol.GameOver{Winner: winner})
	r.matchEndsAt = now + r.matchDuration
}

func (r *Room) debugState() DebugState {
	now := r.now()
	out := DebugState{
		Tick:      r.world.Tick,
		TimeNow:   now,
		CatcherID: r.world.CatcherID,
		Players:   make([]DebugPlayer, 0, len(r.world.Players)),
		PowerUps:  r.powerUpSnapshots(),
	}
	for _, id := range r.world.PlayerIDs() {
		p := r.world.Players[id]
		out.Players = append(out.Players, DebugPlayer{
			ID:     id,
			X:      p.X,
			Y:      p.Y,
			DirX:   p.DirX,
			DirY:   p.DirY,
			Speed:  p.EffectiveSpeed(),
			Score:  p.Score,
			Color:  p.Color,
			Immune: p.Immune(now),
		})
	}
	return out
}
