package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TrainerFile is the configuration file name looked up in config directories.
const TrainerFile = "trainer.yaml"

// LoadTrainer loads the trainer configuration.
// Search order: customPath -> ~/.skillshot/configs/trainer.yaml -> ./configs/trainer.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
// The result is validated; a custom path that is missing, malformed or
// invalid is an error, while broken files on the implicit search path are skipped.
func LoadTrainer(customPath string) (TrainerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TrainerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TrainerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(TrainerFile), filepath.Join("configs", TrainerFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTrainerYAML)
	if err != nil {
		return DefaultTrainerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (TrainerConfig, error) {
	cfg := DefaultTrainerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TrainerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TrainerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg TrainerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skillshot", "configs", filename)
}
