package skillshot

import "github.com/vovakirdan/skillshot/internal/core"

// Projectile is a shot travelling in a straight line at constant velocity.
type Projectile struct {
	Position core.Vec2
	Velocity core.Vec2
	Radius   float64
}

// newProjectile creates a projectile at origin heading toward aim.
// When aim equals origin there is no direction to fly in and the projectile
// stays where it was fired.
func newProjectile(origin, aim core.Vec2, speed, radius float64) Projectile {
	p := Projectile{Position: origin, Radius: radius}
	if dir, ok := aim.Sub(origin).Normalized(); ok {
		p.Velocity = dir.Scale(speed)
	}
	return p
}

// advance moves the projectile one tick.
func (p *Projectile) advance() {
	p.Position = p.Position.Add(p.Velocity)
}

// outOfBounds tests the center point against the arena, not the radius.
func (p *Projectile) outOfBounds(arena core.Size) bool {
	return p.Position.X < 0 || p.Position.X > arena.W ||
		p.Position.Y < 0 || p.Position.Y > arena.H
}
