package skillshot

import (
	"github.com/vovakirdan/skillshot/internal/config"
	"github.com/vovakirdan/skillshot/internal/core"
)

// Body is the renderable part of a circular entity.
type Body struct {
	Position core.Vec2
	Radius   float64
}

// Snapshot is a read-only copy of the session state after a tick, handed to
// presentation adapters. Mutating it has no effect on the session.
type Snapshot struct {
	Tick        uint64
	Arena       core.Size
	Target      Body
	Projectiles []Body // Insertion order
	Origin      core.Vec2
	FixedOrigin bool // Whether Origin is a fixed shooter point worth drawing

	Score      int
	ShotsFired int
	Accuracy   float64

	Hits       int // Hits registered by the last tick
	Expired    int // Projectiles that left the arena in the last tick
	Terminated bool
}

// Snapshot returns the current state without advancing the simulation.
func (s *Session) Snapshot() Snapshot {
	bodies := make([]Body, len(s.projectiles))
	for i, p := range s.projectiles {
		bodies[i] = Body{Position: p.Position, Radius: p.Radius}
	}

	return Snapshot{
		Tick:        s.tick,
		Arena:       s.arena,
		Target:      Body{Position: s.target.Position, Radius: s.target.Radius},
		Projectiles: bodies,
		Origin:      s.Origin(core.Vec2{}),
		FixedOrigin: s.cfg.Projectile.Origin.Mode == config.OriginFixed,
		Score:       s.score,
		ShotsFired:  s.shotsFired,
		Accuracy:    Accuracy(s.score, s.shotsFired),
		Hits:        s.hits,
		Expired:     s.expired,
		Terminated:  s.state == StateTerminated,
	}
}
