package game

const (
	MapWidth            = 1600.0
	MapHeight           = 1200.0
	PlayerRadius        = 50.0
	PowerUpRadius       = 10.0
	BaseSpeed           = 2.0 // units per tick
	PowerUpPoolSize     = 5
	DirectionMinLength  = 0.9
	DirectionMaxLength  = 1.1
	TagRangeFactor      = 2.0 // tag when distance < catcher radius * factor
	SpeedBoostMult      = 1.5
	EffectDurationMs    = 5000
	PointsPerTag        = 10.0
	PointsTaggedLoss    = 20.0
	PointsPerPowerUp    = 5.0
	CatcherDrainPerTick = 0.05
	RunnerGainPerTick   = 0.01
)

// Colors is the palette new players are painted from.
var Colors = []string{"blue", "red", "green", "purple", "yellow"}
