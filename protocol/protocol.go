package protocol

import (
	"encoding/json"
	"time"
)

// Inbound
const (
	MsgSetDirection = "setDirection"
	MsgAttemptTag   = "attemptTag"
)

// Outbound
const (
	MsgInitialize        = "initialize"
	MsgUpdatePlayers     = "updatePlayers"
	MsgUpdatePlayer      = "updatePlayer"
	MsgUpdatePowerUps    = "updatePowerUps"
	MsgYouAreCatcher     = "youAreCatcher"
	MsgPowerUpCollected  = "powerUpCollected"
	MsgUpdateLeaderboard = "updateLeaderboard"
	MsgGameOver          = "gameOver"
)

const (
	SimTickHz           = 60
	LeaderboardInterval = 5 * time.Second
)

// Envelope is a decoded frame. P holds the payload still encoded in the
// codec the frame arrived in.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"`
}
