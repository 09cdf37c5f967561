package protocol

// Initialize is sent once to a session right after it joins. X and Y are in
// the clear; every later position is obfuscated with Key.
type Initialize struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Radius    float64 `json:"radius"`
	Color     string  `json:"color"`
	Speed     float64 `json:"speed"`
	Score     float64 `json:"score"`
	Invisible int64   `json:"invisible"`
	Shield    int64   `json:"shield"`
	Key       uint32  `json:"key"`
}

// State is the full world snapshot broadcast as updatePlayers.
type State struct {
	CatcherID string            `json:"catcherId"`
	TimeNow   int64             `json:"timeNow"`
	Players   []PlayerSnapshot  `json:"players"`
	PowerUps  []PowerUpSnapshot `json:"powerUps"`
}

type PlayerSnapshot struct {
	ID        string  `json:"id"`
	X         uint64  `json:"x"` // obfuscated, see RevealCoord
	Y         uint64  `json:"y"`
	Radius    float64 `json:"radius"`
	Score     float64 `json:"score"`
	Color     string  `json:"color"`
	Speed     float64 `json:"speed"`
	Invisible int64   `json:"invisible"`
	Shield    int64   `json:"shield"`
	Key       uint32  `json:"key"`
}

// PlayerUpdate is the owner-only view sent as updatePlayer.
type PlayerUpdate struct {
	X         uint64  `json:"x"`
	Y         uint64  `json:"y"`
	Score     float64 `json:"score"`
	Color     string  `json:"color"`
	Radius    float64 `json:"radius"`
	Invisible int64   `json:"invisible"`
	Shield    int64   `json:"shield"`
	Key       uint32  `json:"key"`
	Speed     float64 `json:"speed"`
}

type PowerUpSnapshot struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

type PowerUps struct {
	PowerUps []PowerUpSnapshot `json:"powerUps"`
}

type PowerUpCollected struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type LeaderboardEntry struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

type GameOver struct {
	Winner string `json:"winner"`
}
