package config

import (
	_ "embed"
)

//go:embed defaults/trainer.yaml
var defaultTrainerYAML []byte

// DefaultTrainerConfig returns the default trainer configuration.
func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Simulation: SimulationConfig{
			TickRate: 60,
		},
		Target: TargetConfig{
			Radius:   20,
			MinSpeed: 2,
			MaxSpeed: 4,
		},
		Projectile: ProjectileConfig{
			Speed:  10,
			Radius: 5,
			Origin: OriginConfig{
				Mode: OriginFixed,
				X:    400,
				Y:    600,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTrainerYAML
}
