package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultTrainerConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultTrainerConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultTrainerConfig())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TrainerConfig)
		substr string
	}{
		{"zero arena", func(c *TrainerConfig) { c.Arena.Width = 0 }, "arena size"},
		{"zero tick rate", func(c *TrainerConfig) { c.Simulation.TickRate = 0 }, "tick_rate"},
		{"target too big", func(c *TrainerConfig) { c.Target.Radius = 301 }, "does not fit"},
		{"negative radius", func(c *TrainerConfig) { c.Target.Radius = -1 }, "target radius"},
		{"inverted speeds", func(c *TrainerConfig) { c.Target.MinSpeed = 5 }, "exceeds max_speed"},
		{"negative min speed", func(c *TrainerConfig) { c.Target.MinSpeed = -1 }, "min_speed"},
		{"zero projectile speed", func(c *TrainerConfig) { c.Projectile.Speed = 0 }, "projectile speed"},
		{"zero projectile radius", func(c *TrainerConfig) { c.Projectile.Radius = 0 }, "projectile radius"},
		{"origin outside", func(c *TrainerConfig) { c.Projectile.Origin.Y = 601 }, "outside the arena"},
		{"unknown mode", func(c *TrainerConfig) { c.Projectile.Origin.Mode = "turret" }, "unknown origin mode"},
		{"nan arena width", func(c *TrainerConfig) { c.Arena.Width = math.NaN() }, "arena width must be finite"},
		{"infinite arena", func(c *TrainerConfig) { c.Arena.Width, c.Arena.Height = math.Inf(1), math.Inf(1) }, "arena width must be finite"},
		{"infinite max speed", func(c *TrainerConfig) { c.Target.MaxSpeed = math.Inf(1) }, "max_speed must be finite"},
		{"nan projectile speed", func(c *TrainerConfig) { c.Projectile.Speed = math.NaN() }, "projectile speed must be finite"},
		{"negative infinite radius", func(c *TrainerConfig) { c.Target.Radius = math.Inf(-1) }, "target radius must be finite"},
		{"nan click origin", func(c *TrainerConfig) {
			c.Projectile.Origin = OriginConfig{Mode: OriginClick, X: math.NaN()}
		}, "origin x must be finite"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTrainerConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("error %q should mention %q", err, tc.substr)
			}
		})
	}
}

func TestParseRejectsNonFinite(t *testing.T) {
	docs := []string{
		"arena: {width: .nan}",
		"arena: {width: .inf, height: .inf}",
		"target: {max_speed: .inf}",
		"projectile: {speed: .nan}",
		"projectile: {origin: {y: -.inf}}",
	}

	for _, doc := range docs {
		if _, err := Parse([]byte(doc)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Parse(%q) error = %v, expected ErrInvalidConfig", doc, err)
		}
	}
}

func TestValidateClickModeIgnoresOrigin(t *testing.T) {
	cfg := DefaultTrainerConfig()
	cfg.Projectile.Origin = OriginConfig{Mode: OriginClick, X: -100, Y: -100}
	if err := cfg.Validate(); err != nil {
		t.Errorf("click mode should not check the fixed origin: %v", err)
	}
}

func TestLoadTrainerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trainer.yaml")
	data := []byte("target:\n  radius: 30\nprojectile:\n  origin:\n    mode: click\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTrainer(path)
	if err != nil {
		t.Fatalf("LoadTrainer() failed: %v", err)
	}
	if cfg.Target.Radius != 30 {
		t.Errorf("Target.Radius = %v, expected 30", cfg.Target.Radius)
	}
	if cfg.Projectile.Origin.Mode != OriginClick {
		t.Errorf("Origin.Mode = %q, expected click", cfg.Projectile.Origin.Mode)
	}
	// Keys absent from the file keep their defaults
	if cfg.Arena.Width != 800 || cfg.Projectile.Speed != 10 {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
}

func TestLoadTrainerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTrainer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTrainer(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalidPath := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalidPath, []byte("arena:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadTrainer(invalidPath)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultTrainerConfig()
	cfg.Target.Radius = 25

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "tick_rate: 60") {
		t.Errorf("marshalled config should use yaml keys:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}
