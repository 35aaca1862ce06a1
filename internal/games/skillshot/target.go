package skillshot

import (
	"math/rand"

	"github.com/vovakirdan/skillshot/internal/config"
	"github.com/vovakirdan/skillshot/internal/core"
)

// fallbackDirection replaces a randomly drawn direction of zero length.
var fallbackDirection = core.V(1, 0)

// Target is the moving circle the player shoots at.
type Target struct {
	Position  core.Vec2
	Radius    float64
	Direction core.Vec2 // Unit length for the target's whole life
	Speed     float64   // Units per tick, drawn once at creation
}

// newTarget creates a target with a random speed, direction and position.
func newTarget(arena core.Size, cfg config.TargetConfig, rng *rand.Rand) Target {
	t := Target{
		Radius: cfg.Radius,
		Speed:  cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed),
	}

	raw := core.V(rng.Float64()*2-1, rng.Float64()*2-1)
	dir, ok := raw.Normalized()
	if !ok {
		dir = fallbackDirection
	}
	t.Direction = dir

	t.reset(arena, rng)
	return t
}

// advance moves the target one tick and reflects it off the arena walls.
// Each axis is tested independently so a corner flips both components.
// Position is not clamped back inside; the reflected motion pulls it in.
func (t *Target) advance(arena core.Size) {
	t.Position = t.Position.Add(t.Direction.Scale(t.Speed))

	if t.Position.X-t.Radius < 0 || t.Position.X+t.Radius > arena.W {
		t.Direction.X = -t.Direction.X
	}
	if t.Position.Y-t.Radius < 0 || t.Position.Y+t.Radius > arena.H {
		t.Direction.Y = -t.Direction.Y
	}
}

// reset moves the target to a random point where the whole circle fits in
// the arena. Direction and speed are kept.
func (t *Target) reset(arena core.Size, rng *rand.Rand) {
	t.Position = core.V(
		t.Radius+rng.Float64()*(arena.W-2*t.Radius),
		t.Radius+rng.Float64()*(arena.H-2*t.Radius),
	)
}

// contains reports whether p lies strictly inside the target circle.
func (t *Target) contains(p core.Vec2) bool {
	return p.Distance(t.Position) < t.Radius
}
