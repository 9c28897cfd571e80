package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBalloons loads Balloon Pop configuration.
// Search order: customPath -> ~/.mathday/configs/balloons.yaml -> ./configs/balloons.yaml -> embedded default
func LoadBalloons(customPath string) (BalloonsConfig, error) {
	var cfg BalloonsConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("balloons.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/balloons.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBalloonsYAML, &cfg); err != nil {
		return DefaultBalloonsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadParcels loads Parcel Drop configuration.
// Search order: customPath -> ~/.mathday/configs/parcels.yaml -> ./configs/parcels.yaml -> embedded default
func LoadParcels(customPath string) (ParcelsConfig, error) {
	var cfg ParcelsConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("parcels.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/parcels.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultParcelsYAML, &cfg); err != nil {
		return DefaultParcelsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadPowercells loads Power Cells configuration.
// Search order: customPath -> ~/.mathday/configs/powercells.yaml -> ./configs/powercells.yaml -> embedded default
func LoadPowercells(customPath string) (PowercellsConfig, error) {
	var cfg PowercellsConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("powercells.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/powercells.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPowercellsYAML, &cfg); err != nil {
		return DefaultPowercellsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mathday", "configs", filename)
}

// ApplyBalloonsPreset modifies the config based on a difficulty preset.
func ApplyBalloonsPreset(cfg *BalloonsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Quiz.MaxMistakes = 5
		cfg.Quiz.OperandStart = 6
		cfg.Physics.RiseSpeed = 1.1
	case DifficultyHard:
		cfg.Quiz.MaxMistakes = 2
		cfg.Quiz.Ops = []string{"+", "-", "x"}
		cfg.Physics.RiseSpeed = 2.2
	}
}

// ApplyParcelsPreset modifies the config based on a difficulty preset.
func ApplyParcelsPreset(cfg *ParcelsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Quiz.MaxMistakes = 5
		cfg.Quiz.OperandStart = 6
		cfg.Physics.FallSpeedMax = 1.8
	case DifficultyHard:
		cfg.Quiz.MaxMistakes = 2
		cfg.Quiz.ChoiceCount = 4
		cfg.Physics.FallSpeedMin = 1.8
		cfg.Physics.FallSpeedMax = 3.2
	}
}

// ApplyPowercellsPreset modifies the config based on a difficulty preset.
func ApplyPowercellsPreset(cfg *PowercellsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Quiz.MaxMistakes = 5
		cfg.Tokens.Count = 5
		cfg.Tokens.MaxParts = 2
		cfg.Tokens.MaxAddend = 6
	case DifficultyHard:
		cfg.Quiz.MaxMistakes = 2
		cfg.Tokens.Count = 7
		cfg.Tokens.MinParts = 3
		cfg.Tokens.MaxParts = 3
	}
}
