package core

// RuntimeConfig carries what a drill needs from its host: the screen it
// draws into, the tick rate and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState holds the counters of a session.
type GameState struct {
	Score      int     // Hits so far
	ShotsFired int     // Fire events accepted so far
	Accuracy   float64 // 100 * Score / max(1, ShotsFired)
	Terminated bool    // Whether a quit was received
}

// StepResult reports one tick.
type StepResult struct {
	State   GameState
	Hits    int // Projectiles that hit the target this tick
	Expired int // Projectiles that left the arena this tick
}
