// Package config provides YAML-based trainer configuration loading and
// validation.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// TrainerConfig contains all tunable constants of a training session.
type TrainerConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Simulation SimulationConfig `yaml:"simulation"`
	Target     TargetConfig     `yaml:"target"`
	Projectile ProjectileConfig `yaml:"projectile"`
}

// ArenaConfig defines the bounded region entities move in, in world units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SimulationConfig defines simulation pacing.
type SimulationConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// TargetConfig defines the moving target.
type TargetConfig struct {
	Radius   float64 `yaml:"radius"`
	MinSpeed float64 `yaml:"min_speed"` // Inclusive, units per tick
	MaxSpeed float64 `yaml:"max_speed"` // Exclusive, units per tick
}

// ProjectileConfig defines fired projectiles.
type ProjectileConfig struct {
	Speed  float64      `yaml:"speed"` // Units per tick
	Radius float64      `yaml:"radius"`
	Origin OriginConfig `yaml:"origin"`
}

// OriginMode selects where a fired projectile starts.
type OriginMode string

const (
	// OriginFixed fires from a fixed shooter point toward the click.
	OriginFixed OriginMode = "fixed"
	// OriginClick starts the projectile on the click point itself, aimed at
	// that same point, which leaves it stationary.
	OriginClick OriginMode = "click"
)

// OriginConfig defines the shooter position for OriginFixed.
type OriginConfig struct {
	Mode OriginMode `yaml:"mode"`
	X    float64    `yaml:"x"`
	Y    float64    `yaml:"y"`
}

// Validate checks that the configuration describes a playable session.
// The simulation assumes a config that passed validation.
func (c TrainerConfig) Validate() error {
	if err := c.checkFinite(); err != nil {
		return err
	}

	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return invalid("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	case c.Simulation.TickRate <= 0:
		return invalid("tick_rate must be positive, got %d", c.Simulation.TickRate)
	case c.Target.Radius <= 0:
		return invalid("target radius must be positive, got %v", c.Target.Radius)
	case 2*c.Target.Radius > c.Arena.Width || 2*c.Target.Radius > c.Arena.Height:
		return invalid("target of radius %v does not fit in a %vx%v arena",
			c.Target.Radius, c.Arena.Width, c.Arena.Height)
	case c.Target.MinSpeed < 0:
		return invalid("target min_speed must not be negative, got %v", c.Target.MinSpeed)
	case c.Target.MinSpeed > c.Target.MaxSpeed:
		return invalid("target min_speed %v exceeds max_speed %v", c.Target.MinSpeed, c.Target.MaxSpeed)
	case c.Projectile.Speed <= 0:
		return invalid("projectile speed must be positive, got %v", c.Projectile.Speed)
	case c.Projectile.Radius <= 0:
		return invalid("projectile radius must be positive, got %v", c.Projectile.Radius)
	}

	switch c.Projectile.Origin.Mode {
	case OriginClick:
	case OriginFixed:
		o := c.Projectile.Origin
		if o.X < 0 || o.X > c.Arena.Width || o.Y < 0 || o.Y > c.Arena.Height {
			return invalid("fixed origin (%v, %v) lies outside the arena", o.X, o.Y)
		}
	default:
		return invalid("unknown origin mode %q", c.Projectile.Origin.Mode)
	}
	return nil
}

func (c TrainerConfig) checkFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"arena width", c.Arena.Width},
		{"arena height", c.Arena.Height},
		{"target radius", c.Target.Radius},
		{"target min_speed", c.Target.MinSpeed},
		{"target max_speed", c.Target.MaxSpeed},
		{"projectile speed", c.Projectile.Speed},
		{"projectile radius", c.Projectile.Radius},
		{"origin x", c.Projectile.Origin.X},
		{"origin y", c.Projectile.Origin.Y},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalid("%s must be finite, got %v", f.name, f.value)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
