// Package skillshot implements the skill shot trainer: a target bouncing
// around a bounded arena and projectiles fired at points chosen by the
// player. Hits reset the target and score a point; accuracy is hits over
// shots fired.
package skillshot

import (
	"github.com/vovakirdan/skillshot/internal/config"
	"github.com/vovakirdan/skillshot/internal/core"
	"github.com/vovakirdan/skillshot/internal/registry"
)

// Drill identifiers
const (
	DrillStandard = "skillshot"
	DrillClassic  = "skillshot-classic"
)

// Game adapts a Session to the registry.Game interface.
type Game struct {
	id       string
	title    string
	mode     config.OriginMode // Forced origin mode, empty to keep the config's
	cfg      config.TrainerConfig
	session  *Session
	snapshot Snapshot
}

// New creates a drill. A non-empty mode overrides the configured origin mode.
func New(id, title string, mode config.OriginMode) *Game {
	g := &Game{id: id, title: title, mode: mode}
	g.Configure(config.DefaultTrainerConfig())
	return g
}

// ID returns the unique identifier for this drill.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this drill.
func (g *Game) Title() string {
	return g.title
}

// Configure sets the trainer config used by the next Reset.
func (g *Game) Configure(cfg config.TrainerConfig) {
	if g.mode != "" {
		cfg.Projectile.Origin.Mode = g.mode
	}
	g.cfg = cfg
}

// Config returns the trainer config in effect.
func (g *Game) Config() config.TrainerConfig {
	return g.cfg
}

// Reset starts a fresh session seeded from the runtime config.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.session = NewSession(g.cfg, rc.Seed)
	g.snapshot = g.session.Snapshot()
}

// Step drains the frame and advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	g.snapshot = g.session.Step(in)
	return core.StepResult{
		State:   g.session.Counters(),
		Hits:    g.snapshot.Hits,
		Expired: g.snapshot.Expired,
	}
}

// Render draws the latest snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.snapshot)
}

// State returns the current counters.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return g.session.Counters()
}

// Snapshot returns the state produced by the latest tick.
func (g *Game) Snapshot() Snapshot {
	return g.snapshot
}

// Register the drills with the registry
func init() {
	registry.Register(DrillStandard, func() registry.Game {
		return New(DrillStandard, "Skill Shot Trainer", "")
	})
	registry.Register(DrillClassic, func() registry.Game {
		return New(DrillClassic, "Skill Shot Trainer (classic: shots spawn on the cursor)", config.OriginClick)
	})
}
