package room

import "tagarena/protocol"

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once per connection, before any other command
type Join struct {
	Conn  Conn
	Reply chan<- JoinResult
}

type JoinResult struct {
	PlayerID string
	Key      uint32
}

// SetDirection: raw heading from the client, validated inside the room
type SetDirection struct {
	PlayerID string
	X, Y     float64
}

// AttemptTag: only acted on when PlayerID is the current catcher
type AttemptTag struct {
	PlayerID string
}

// Leave: issued on disconnect
type Leave struct {
	PlayerID string
}

// Inspect asks for a clear-text copy of the world for diagnostics.
type Inspect struct {
	Reply chan<- DebugState
}

type DebugState struct {
	Tick      int                        `json:"tick"`
	TimeNow   int64                      `json:"timeNow"`
	CatcherID string                     `json:"catcherId"`
	Players   []DebugPlayer              `json:"players"`
	PowerUps  []protocol.PowerUpSnapshot `json:"powerUps"`
}

type DebugPlayer struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DirX   float64 `json:"dirX"`
	DirY   float64 `json:"dirY"`
	Speed  float64 `json:"speed"`
	Score  float64 `json:"score"`
	Color  string  `json:"color"`
	Immune bool    `json:"immune"`
}
